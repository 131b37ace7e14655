package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/nodeconf/config"

	"github.com/scott-cotton/cli"
)

var errNotFound = errors.New("not found")

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a path and a file", cli.ErrUsage)
	}
	f, err := openFile(cfg.MainConfig, cfg.registry(), args[1], false)
	if err != nil {
		return err
	}
	defer f.Close()
	return getValue(cc.Out, f.Store, args[0], cfg.Index, cfg.format())
}

func getValue(w io.Writer, s *config.Store, path string, index int, format outFormat) error {
	v, ok := s.Value(path, index)
	if !ok {
		return fmt.Errorf("%w: %s[%d]", errNotFound, path, index)
	}
	return writeValue(w, format, path, plain(v))
}
