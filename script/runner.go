package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	etree "github.com/yeqown/enchanted-tree"
)

const nilValue = "(nil)"

// Runner executes commands against a tree and writes their results to out,
// one line per command.
type Runner struct {
	tree *etree.Tree[string, string]
	out  io.Writer
}

func NewRunner(tree *etree.Tree[string, string], out io.Writer) *Runner {
	return &Runner{
		tree: tree,
		out:  out,
	}
}

// Run executes cmds in order and stops at the first failure.
func (r *Runner) Run(cmds []Command) error {
	for _, cmd := range cmds {
		if err := r.exec(cmd); err != nil {
			return errors.Wrapf(err, "line %d: %s", cmd.Line, cmd)
		}
	}

	return nil
}

func (r *Runner) exec(cmd Command) error {
	switch cmd.Op {
	case OpInsert:
		r.tree.Insert(cmd.Args[0], cmd.Args[1])
		return r.println("OK")
	case OpFind:
		v, ok := r.tree.Find(cmd.Args[0])
		if !ok {
			return r.println(nilValue)
		}
		return r.println(v)
	case OpDelete:
		if err := r.tree.Delete(cmd.Args[0]); err != nil {
			return r.println("(error) " + err.Error())
		}
		return r.println("OK")
	case OpEmpty:
		return r.println(strconv.FormatBool(r.tree.IsEmpty()))
	case OpLen:
		return r.println(strconv.Itoa(r.tree.Len()))
	case OpExpect:
		return r.expect(cmd.Args[0], cmd.Args[1])
	case OpVerify:
		if err := r.tree.Verify(); err != nil {
			return errors.Wrapf(ErrExpectationFailed, "verify: %v", err)
		}
		return r.println("OK")
	case OpPrint:
		return r.tree.Print(r.out)
	}

	return errors.Wrapf(ErrUnknownCommand, "%q", cmd.Op)
}

func (r *Runner) expect(key, want string) error {
	got, ok := r.tree.Find(key)
	switch {
	case want == Absent && ok:
		return errors.Wrapf(ErrExpectationFailed, "find(%s) = %s, want absent", key, got)
	case want != Absent && !ok:
		return errors.Wrapf(ErrExpectationFailed, "find(%s) is absent, want %s", key, want)
	case want != Absent && got != want:
		return errors.Wrapf(ErrExpectationFailed, "find(%s) = %s, want %s", key, got, want)
	}

	return r.println("OK")
}

func (r *Runner) println(s string) error {
	if _, err := fmt.Fprintln(r.out, s); err != nil {
		return errors.Wrap(err, "write output failed")
	}

	return nil
}
