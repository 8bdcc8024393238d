package etree

type options struct {
	// logger receives a line for every structural repair made by Delete.
	// The default logger discards everything.
	logger Logger

	// printValues controls whether Print and String render values next to
	// keys. The default value is true.
	printValues bool
}

func defaultOptions() *options {
	return &options{
		logger:      &nopLogger{},
		printValues: true,
	}
}

type Option interface {
	apply(*options)
}

type funcOption struct {
	fn func(*options)
}

func (funcOpt funcOption) apply(o *options) {
	funcOpt.fn(o)
}

func newFuncOption(fn func(*options)) *funcOption {
	return &funcOption{
		fn: fn,
	}
}

// WithLogger set the logger used to report deletion repairs.
// A nil logger falls back to the no-op logger.
func WithLogger(logger Logger) Option {
	return newFuncOption(func(o *options) {
		if logger == nil {
			logger = &nopLogger{}
		}
		o.logger = logger
	})
}

// WithPrintValues set whether Print renders values next to keys.
func WithPrintValues(printValues bool) Option {
	return newFuncOption(func(o *options) {
		o.printValues = printValues
	})
}
