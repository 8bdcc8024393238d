package etree

import "log"

var (
	_ Logger = (*nopLogger)(nil)
	_ Logger = (*stdLogger)(nil)
)

// Logger is used by Tree to report structural repairs. The default logger
// discards everything.
type Logger interface {
	Log(format string, args ...interface{})
}

type nopLogger struct{}

func (n *nopLogger) Log(format string, args ...interface{}) {}

type stdLogger struct {
	prefix string
}

// NewStdLogger returns a Logger which writes through the standard log
// package, every line starts with prefix.
func NewStdLogger(prefix string) Logger {
	return &stdLogger{prefix: prefix}
}

func (s *stdLogger) Log(format string, args ...interface{}) {
	if format == "" || format[len(format)-1] != '\n' {
		format += "\n"
	}
	log.Printf(s.prefix+format, args...)
}
