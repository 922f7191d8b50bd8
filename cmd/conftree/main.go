package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

const usageText = `conftree - inspect and edit structured configuration trees

Usage:
  conftree get <file> <path>                      Print the subtree at path
  conftree copy <src> <path> <dst> <dst-path>     Copy a subtree between files
  conftree dump [file...]                         Render config trees
  conftree diff <a> <b>                           Compare two config trees

Files are decoded by extension: .yaml/.yml or .toml.
Paths address group children by name and elements by index, e.g.
"application.window.size[0]". The path "." names the document root.

Examples:
  conftree get app.yaml application.window.title
  conftree copy base.yaml defaults.logging app.yaml application
  conftree dump app.yaml
  conftree diff old.yaml new.yaml`

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

// MainCommand returns the root command for conftree.
func MainCommand() *cli.Command {
	return cli.NewCommand("conftree").
		WithSynopsis("conftree - inspect and edit structured configuration trees").
		WithDescription(usageText).
		WithSubs(
			GetCommand(),
			CopyCommand(),
			DumpCommand(),
			DiffCommand(),
		)
}
