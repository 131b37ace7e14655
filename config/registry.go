package config

import (
	"github.com/signadot/nodeconf/codec"
)

// RegisterParsers registers the built-in parsers of package codec followed
// by the sub-configuration parser.
func RegisterParsers(reg *codec.Registry) error {
	if err := codec.RegisterBuiltins(reg); err != nil {
		return err
	}
	return reg.Register(NewSubParser(reg))
}

// NewDefaultRegistry returns a registry with every parser of this module.
func NewDefaultRegistry() *codec.Registry {
	reg := codec.NewRegistry()
	if err := RegisterParsers(reg); err != nil {
		panic(err)
	}
	return reg
}
