package main

import (
	"fmt"
	"io"

	"github.com/signadot/nodeconf/codec"

	"github.com/scott-cotton/cli"
)

func tags(cfg *TagsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tags.Parse(cc, args)
	if err != nil {
		cfg.Tags.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: tags takes no arguments", cli.ErrUsage)
	}
	return listTags(cc.Out, cfg.registry())
}

func listTags(w io.Writer, reg *codec.Registry) error {
	for _, p := range reg.Parsers() {
		var flags string
		if p.HasGenericComponents() {
			flags += " generic"
		}
		if p.CanParseChildren() {
			flags += " children"
		}
		if _, err := fmt.Fprintf(w, "%-8s %s%s\n", p.Tag(), p.Type(), flags); err != nil {
			return err
		}
	}
	return nil
}
