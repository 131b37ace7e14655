package main

import (
	"fmt"

	"github.com/signadot/nodeconf/config"

	"github.com/scott-cotton/cli"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: rm requires a path and a file", cli.ErrUsage)
	}
	f, err := openFile(cfg.MainConfig, cfg.registry(), args[1], true)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := removeValue(f.Store, args[0], cfg.Index, cfg.All); err != nil {
		return err
	}
	return f.Save()
}

func removeValue(s *config.Store, path string, index int, all bool) error {
	if all {
		return s.DeleteAll(path)
	}
	if _, ok := s.Value(path, index); !ok {
		return fmt.Errorf("%w: %s[%d]", errNotFound, path, index)
	}
	return s.Delete(path, index)
}
