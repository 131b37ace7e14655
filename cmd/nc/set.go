package main

import (
	"fmt"

	"github.com/signadot/nodeconf/codec"
	"github.com/signadot/nodeconf/config"
	"github.com/signadot/nodeconf/ir"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: set requires a path, a type tag, a value and a file", cli.ErrUsage)
	}
	path, tag, value, file := args[0], args[1], args[2], args[3]
	reg := cfg.registry()
	f, err := openFile(cfg.MainConfig, reg, file, true)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := setValue(f.Store, path, tag, value, cfg.Index, cfg.Override); err != nil {
		return err
	}
	return f.Save()
}

// parseValue reads s as a value of the scalar type tag, the way it would
// be read from a value attribute.
func parseValue(reg *codec.Registry, tag, s string) (any, error) {
	p := reg.ByTag(tag)
	if p == nil {
		return nil, fmt.Errorf("%w for tag %q", codec.ErrNoParser, tag)
	}
	if p.CanParseChildren() {
		return nil, fmt.Errorf("%w: %s values can not be given on the command line", cli.ErrUsage, tag)
	}
	node := ir.New("value").
		WithAttr(codec.AttrType, tag).
		WithAttr(codec.AttrValue, s)
	v, ok := reg.Decode(node)
	if !ok {
		return nil, fmt.Errorf("can not read %q as %s", s, tag)
	}
	return v, nil
}

func setValue(s *config.Store, path, tag, value string, index int, override bool) error {
	v, err := parseValue(s.Registry(), tag, value)
	if err != nil {
		return err
	}
	opts := []config.SetOption{config.At(index)}
	if override {
		opts = append(opts, config.AllowTypeOverride())
	}
	return s.Set(path, v, opts...)
}
