package main

import (
	"fmt"

	"github.com/minoritea/jsonparser/parse"

	"github.com/scott-cotton/cli"
)

func checkRun(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	for _, arg := range inputArgs(args) {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d); err != nil {
			bad++
			if !cfg.Quiet {
				theLog.Error("invalid document", "file", arg, "err", err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
