package main

import (
	"fmt"
	"os"

	"github.com/signadot/nodeconf/config"

	"github.com/scott-cotton/cli"
)

func fmtFile(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: fmt requires 1 file", cli.ErrUsage)
	}
	f, err := openFile(cfg.MainConfig, cfg.registry(), args[0], false)
	if err != nil {
		return err
	}
	defer f.Close()
	d, err := formatted(f)
	if err != nil {
		return err
	}
	if !cfg.Diff {
		_, err = cc.Out.Write(d)
		return err
	}
	orig, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if diffText(cc.Out, string(orig), string(d), cfg.color(cc.Out)) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// formatted returns the document of f as a save would write it. The
// file itself is left alone.
func formatted(f *config.File) ([]byte, error) {
	doc := f.Document()
	s := config.NewStore(doc.Root, f.Registry(), config.Writable())
	s.Load()
	if err := s.Save(); err != nil {
		return nil, err
	}
	return doc.Bytes()
}
