package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/conftree/go-conftree/dump"
)

type getConfig struct {
	*cli.Command
}

// GetCommand returns the get subcommand.
func GetCommand() *cli.Command {
	cfg := &getConfig{}
	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get <file> <path> - print the subtree at path").
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires <file> <path>", cli.ErrUsage)
	}
	root, err := loadFile(args[0])
	if err != nil {
		return err
	}
	s, err := resolve(root, args[1])
	if err != nil {
		return fmt.Errorf("error resolving %q in %s: %w", args[1], args[0], err)
	}
	return dump.Dump(cc.Out, s)
}
