package main

import (
	"fmt"

	"github.com/minoritea/jsonparser/encode"
	"github.com/minoritea/jsonparser/parse"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputArgs(args) {
		if err := fmtArg(cfg.MainConfig, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtArg(cfg *MainConfig, cc *cli.Context, arg string) error {
	d, err := readArg(cc, arg)
	if err != nil {
		return err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
