package script

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Op is the operation of a command.
type Op string

const (
	OpInsert Op = "insert"
	OpFind   Op = "find"
	OpDelete Op = "delete"
	OpEmpty  Op = "empty"
	OpLen    Op = "len"
	OpExpect Op = "expect"
	OpVerify Op = "verify"
	OpPrint  Op = "print"
)

// Absent is the value an expect command uses to assert that a key is not
// present.
const Absent = "-"

var (
	aliases = map[string]Op{
		"set": OpInsert,
		"get": OpFind,
		"del": OpDelete,
	}

	arity = map[Op]int{
		OpInsert: 2,
		OpFind:   1,
		OpDelete: 1,
		OpEmpty:  0,
		OpLen:    0,
		OpExpect: 2,
		OpVerify: 0,
		OpPrint:  0,
	}
)

// Command is a single parsed script line.
type Command struct {
	Line int // 1-based line number in the script
	Op   Op
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Op)
	}

	return string(c.Op) + " " + strings.Join(c.Args, " ")
}

func parseOp(word string) (Op, bool) {
	word = strings.ToLower(word)
	if op, ok := aliases[word]; ok {
		return op, true
	}

	op := Op(word)
	_, ok := arity[op]
	return op, ok
}

// Parse reads commands from r until EOF.
func Parse(r io.Reader) ([]Command, error) {
	cmds := make([]Command, 0, 16)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		op, ok := parseOp(fields[0])
		if !ok {
			return nil, errors.Wrapf(ErrUnknownCommand, "line %d: %q", line, fields[0])
		}

		args := fields[1:]
		if want := arity[op]; len(args) != want {
			return nil, errors.Wrapf(ErrBadArguments, "line %d: %s takes %d arguments, got %d", line, op, want, len(args))
		}

		cmds = append(cmds, Command{Line: line, Op: op, Args: args})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read script failed")
	}

	return cmds, nil
}
