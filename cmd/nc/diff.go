package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/nodeconf/config"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files", cli.ErrUsage)
	}
	reg := cfg.registry()
	var stores [2]*config.File
	for i, arg := range args {
		f, err := openFile(cfg.MainConfig, reg, arg, false)
		if err != nil {
			return err
		}
		defer f.Close()
		stores[i] = f
	}
	var differ bool
	if cfg.Text {
		var texts [2]string
		for i, f := range stores {
			d, err := formatted(f)
			if err != nil {
				return fmt.Errorf("error formatting %s: %w", args[i], err)
			}
			texts[i] = string(d)
		}
		differ = diffText(cc.Out, texts[0], texts[1], cfg.color(cc.Out))
	} else {
		differ, err = diffStores(cc.Out, stores[0].Store, stores[1].Store)
		if err != nil {
			return err
		}
	}
	if differ {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffStores writes the JSON merge patch which turns the settings of a
// into those of b. It reports whether there is any difference.
func diffStores(w io.Writer, a, b *config.Store) (bool, error) {
	from, err := json.Marshal(flatMap(a))
	if err != nil {
		return false, err
	}
	to, err := json.Marshal(flatMap(b))
	if err != nil {
		return false, err
	}
	patch, err := jsonpatch.CreateMergePatch(from, to)
	if err != nil {
		return false, err
	}
	if string(patch) == "{}" {
		return false, nil
	}
	_, err = fmt.Fprintf(w, "%s\n", patch)
	return true, err
}

// diffText writes a line diff of a and b and reports whether they differ.
func diffText(w io.Writer, a, b string, colored bool) bool {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var (
		del    = colorFor(colored, color.FgRed)
		ins    = colorFor(colored, color.FgGreen)
		differ bool
	)
	for _, d := range diffs {
		prefix, c := "  ", (*color.Color)(nil)
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, c, differ = "- ", del, true
		case diffpatch.DiffInsert:
			prefix, c, differ = "+ ", ins, true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = prefix + strings.TrimSuffix(line, "\n")
			if c != nil {
				line = c.Sprint(line)
			}
			fmt.Fprintln(w, line)
		}
	}
	return differ
}
