package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	cli "github.com/urfave/cli/v2"

	etree "github.com/yeqown/enchanted-tree"
	"github.com/yeqown/enchanted-tree/script"
)

// etree-ctl drives an in-memory enchanted-tree from scripts.
// Usage:
// $ etree-ctl [global flags] sub-command [sub-command flags]
// It has sub-commands:
// - demo: etree-ctl demo
// - run:  etree-ctl run --file path/to/script [--verify] [--print]
//
// Global flags:
// - debug: log every deletion repair made by the tree

func main() {
	app := newCliApp(afero.NewOsFs(), os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "etree-ctl failed: %v\n", err)
		os.Exit(1)
	}
}

func newCliApp(fs afero.Fs, in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "etree-ctl"
	app.Usage = "enchanted-tree control tool"
	app.Version = "0.0.1"
	app.Reader = in
	app.Writer = out
	app.Commands = []*cli.Command{
		newDemoCommand(),
		newRunCommand(fs),
	}
	app.Before = func(c *cli.Context) error {
		var options []etree.Option
		if c.Bool("debug") {
			options = append(options, etree.WithLogger(etree.NewStdLogger("etree: ")))
		}

		c.Context = contextWithTree(c.Context, etree.New[string, string](options...))
		return nil
	}
	// global flags
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "log deletion repairs",
		},
	}

	return app
}

func newDemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "run the built-in insert/find/delete walkthrough",
		Action: func(c *cli.Context) error {
			cmds, err := script.Parse(strings.NewReader(demoScript))
			if err != nil {
				return errors.Wrap(err, "parse demo script")
			}

			tree := treeFromContext(c.Context)
			return script.NewRunner(tree, c.App.Writer).Run(cmds)
		},
	}
}

func newRunCommand(fs afero.Fs) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run a script against an empty tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to the script, - reads stdin",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "verify the tree after the script finished",
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "print the tree after the script finished",
			},
		},
		Action: func(c *cli.Context) error {
			var (
				cmds []script.Command
				err  error
			)
			if filename := c.String("file"); filename == "-" {
				cmds, err = script.Parse(c.App.Reader)
			} else {
				cmds, err = script.Load(fs, filename)
			}
			if err != nil {
				return err
			}

			tree := treeFromContext(c.Context)
			if err = script.NewRunner(tree, c.App.Writer).Run(cmds); err != nil {
				return err
			}

			if c.Bool("verify") {
				if err = tree.Verify(); err != nil {
					return errors.Wrap(err, "verify tree")
				}
			}
			if c.Bool("print") {
				return tree.Print(c.App.Writer)
			}

			return nil
		},
	}
}
