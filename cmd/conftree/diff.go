package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/conftree/go-conftree/diff"
)

type diffConfig struct {
	*cli.Command
}

// DiffCommand returns the diff subcommand.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <a> <b> - compare two config trees").
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	from, err := loadFile(args[0])
	if err != nil {
		return err
	}
	to, err := loadFile(args[1])
	if err != nil {
		return err
	}
	ds := diff.Diff(from, to)
	for _, d := range ds {
		path := d.Path
		if path == "" {
			path = "."
		}
		if d.Text != "" {
			fmt.Fprintf(cc.Out, "%s %s: %s\n", d.Kind, path, d.Text)
			continue
		}
		fmt.Fprintf(cc.Out, "%s %s\n", d.Kind, path)
	}
	if len(ds) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
