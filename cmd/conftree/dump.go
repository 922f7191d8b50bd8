package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/conftree/go-conftree/dump"
)

type dumpConfig struct {
	*cli.Command
	NoColor bool `cli:"name=no-color desc='disable colored output'"`
	Depth   int  `cli:"name=depth aliases=d desc='limit rendering depth (negative: unlimited)'"`
}

// DumpCommand returns the dump subcommand.
func DumpCommand() *cli.Command {
	cfg := &dumpConfig{Depth: -1}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "dump").
		WithSynopsis("dump [file...] - render config trees").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *dumpConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: dump requires at least one file", cli.ErrUsage)
	}
	opts := []dump.Option{dump.MaxDepth(cfg.Depth)}
	if !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd()) {
		opts = append(opts, dump.WithColors(dump.DefaultColors()))
	}
	for i, file := range args {
		root, err := loadFile(file)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s:\n", file)
		}
		if err := dump.Dump(cc.Out, root, opts...); err != nil {
			return err
		}
	}
	return nil
}
