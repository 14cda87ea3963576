package main

import (
	"fmt"

	"github.com/minoritea/jsonparser/encode"
	"github.com/minoritea/jsonparser/ir"
	"github.com/minoritea/jsonparser/parse"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := loadArg(cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadArg(cc, args[1])
	if err != nil {
		return err
	}
	if !cfg.Text && ir.Compare(a, b) == 0 {
		return nil
	}
	aText := encode.MustString(a) + "\n"
	bText := encode.MustString(b) + "\n"
	if aText == bText {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(aText, bText, false)
	if cfg.Color {
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	} else {
		fmt.Fprint(cc.Out, diffCfg.PatchToText(diffCfg.PatchMake(aText, diffs)))
	}
	return cli.ExitCodeErr(1)
}

func loadArg(cc *cli.Context, arg string) (*ir.Node, error) {
	d, err := readArg(cc, arg)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}
