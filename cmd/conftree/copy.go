package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	conftree "github.com/conftree/go-conftree"
)

type copyConfig struct {
	*cli.Command
	Output string `cli:"name=output aliases=o desc='write the result here instead of in place'"`
}

// CopyCommand returns the copy subcommand.
func CopyCommand() *cli.Command {
	cfg := &copyConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "copy").
		WithSynopsis("copy <src-file> <src-path> <dst-file> <dst-path> - copy a subtree").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *copyConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: copy requires <src-file> <src-path> <dst-file> <dst-path>",
			cli.ErrUsage)
	}
	srcFile, srcPath, dstFile, dstPath := args[0], args[1], args[2], args[3]

	srcRoot, err := loadFile(srcFile)
	if err != nil {
		return err
	}
	src, err := resolve(srcRoot, srcPath)
	if err != nil {
		return fmt.Errorf("error resolving %q in %s: %w", srcPath, srcFile, err)
	}
	dstRoot, err := loadFile(dstFile)
	if err != nil {
		return err
	}
	dst, err := resolve(dstRoot, dstPath)
	if err != nil {
		return fmt.Errorf("error resolving %q in %s: %w", dstPath, dstFile, err)
	}
	if !conftree.Copy(dst, src) {
		return fmt.Errorf("cannot copy into %q: destination is a %s, not a group or list",
			dstPath, dst.Type())
	}
	out := cfg.Output
	if out == "" {
		out = dstFile
	}
	return saveFile(out, dstRoot)
}
