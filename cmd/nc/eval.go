package main

import (
	"fmt"
	"io"

	"github.com/signadot/nodeconf/config"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eval requires an expression and a file", cli.ErrUsage)
	}
	f, err := openFile(cfg.MainConfig, cfg.registry(), args[1], false)
	if err != nil {
		return err
	}
	defer f.Close()
	return evalExpr(cc.Out, f.Store, args[0], cfg.format())
}

// evalExpr runs src with the settings of s as environment. Dotted paths
// are reached through their segments, as in net.port.
func evalExpr(w io.Writer, s *config.Store, src string, format outFormat) error {
	env := nested(s)
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return err
	}
	return writeValue(w, format, "result", res)
}
