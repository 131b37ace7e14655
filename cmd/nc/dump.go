package main

import (
	"fmt"
	"io"

	"github.com/signadot/nodeconf/config"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: dump requires at least one file", cli.ErrUsage)
	}
	reg := cfg.registry()
	for _, arg := range args {
		f, err := openFile(cfg.MainConfig, reg, arg, false)
		if err != nil {
			return err
		}
		err = dumpStore(cc.Out, f.Store, cfg.format(), cfg.color(cc.Out))
		f.Close()
		if err != nil {
			return fmt.Errorf("error dumping %s: %w", arg, err)
		}
	}
	return nil
}

func dumpStore(w io.Writer, s *config.Store, format outFormat, colored bool) error {
	switch format {
	case textFormat:
		dumpText(w, s, "", colorFor(colored, color.FgBlue))
		return nil
	case yamlFormat:
		return writeValue(w, format, "", flat(s))
	default:
		return writeValue(w, format, "", flatMap(s))
	}
}

// dumpText writes one line per value. The settings of a sub-configuration
// are written below the name of the sub-configuration.
func dumpText(w io.Writer, s *config.Store, prefix string, c *color.Color) {
	for _, path := range s.Paths() {
		for i, v := range s.Values(path) {
			name := fmt.Sprintf("%s%s[%d]", prefix, path, i)
			if sub, ok := v.(*config.Sub); ok {
				dumpText(w, sub.Store, name+".", c)
				continue
			}
			fmt.Fprintf(w, "%s = %v\n", c.Sprint(name), plain(v))
		}
	}
}
