package main

import (
	"fmt"

	"github.com/minoritea/jsonparser/token"

	"github.com/scott-cotton/cli"
)

func tokensRun(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputArgs(args) {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		toks, err := token.Tokenize(nil, d)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", arg, err)
		}
		for i := range toks {
			t := &toks[i]
			if t.Type.IsWhite() && !cfg.White {
				continue
			}
			fmt.Fprintln(cc.Out, t.Info())
		}
	}
	return nil
}
