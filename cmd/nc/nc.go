package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/nodeconf/codec"
	"github.com/signadot/nodeconf/config"

	"github.com/scott-cotton/cli"
)

func ncMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y, cfg.T) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml] -t[oml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

// openFile opens and loads a configuration file.
func openFile(cfg *MainConfig, reg *codec.Registry, path string, writable bool) (*config.File, error) {
	f, err := config.OpenFile(path, reg, cfg.fileOpts(writable)...)
	if err != nil {
		return nil, err
	}
	if err := f.Load(); err != nil {
		f.Close()
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return f, nil
}
