package main

import (
	"io"
	"os"

	"github.com/minoritea/jsonparser/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='output in compact format'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Indent  int  `cli:"name=indent desc='spaces per indent level'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.Compact(cfg.Compact),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='suppress per-file output'"`

	Check *cli.Command
}

type TokensConfig struct {
	*MainConfig
	White bool `cli:"name=w aliases=white desc='include whitespace tokens'"`

	Tokens *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=t aliases=text desc='diff rendered text instead of structure'"`

	Diff *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	YAML *cli.Command
}
