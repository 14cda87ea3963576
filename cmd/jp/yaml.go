package main

import (
	"fmt"
	"strconv"

	"github.com/minoritea/jsonparser/encode"
	"github.com/minoritea/jsonparser/ir"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func yamlRun(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		cfg.YAML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputArgs(args) {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		var v any
		if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		node, err := fromGo(v)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func fromGo(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromNumber(strconv.Itoa(t)), nil
	case int64:
		return ir.FromNumber(strconv.FormatInt(t, 10)), nil
	case uint64:
		return ir.FromNumber(strconv.FormatUint(t, 10)), nil
	case float64:
		return ir.FromNumber(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case []any:
		vs := make([]*ir.Node, 0, len(t))
		for _, e := range t {
			n, err := fromGo(e)
			if err != nil {
				return nil, err
			}
			vs = append(vs, n)
		}
		return ir.FromSlice(vs), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported key type %T", item.Key)
			}
			val, err := fromGo(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
