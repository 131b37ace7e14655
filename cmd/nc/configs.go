package main

import (
	"io"
	"os"

	"github.com/signadot/nodeconf/codec"
	"github.com/signadot/nodeconf/config"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Root      string `cli:"name=root desc='name of the root element'"`
	NoVersion bool   `cli:"name=noversion desc='accept any format version'"`
	Color     bool   `cli:"name=color desc='output with color'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	T bool `cli:"name=t aliases=toml desc='output toml'"`

	Main *cli.Command
}

func (cfg *MainConfig) registry() *codec.Registry {
	return config.NewDefaultRegistry()
}

func (cfg *MainConfig) fileOpts(writable bool) []config.Option {
	var res []config.Option
	if cfg.Root != "" {
		res = append(res, config.RootName(cfg.Root))
	}
	if cfg.NoVersion {
		res = append(res, config.IgnoreVersion())
	}
	if writable {
		res = append(res, config.Writable())
	}
	return res
}

func (cfg *MainConfig) format() outFormat {
	switch {
	case cfg.J:
		return jsonFormat
	case cfg.Y:
		return yamlFormat
	case cfg.T:
		return tomlFormat
	}
	return textFormat
}

func (cfg *MainConfig) color(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig
	Index int `cli:"name=i desc='index of the value'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Index    int  `cli:"name=i desc='index of the value, -1 appends'"`
	Override bool `cli:"name=override desc='allow replacing a value of another type'"`

	Set *cli.Command
}

type RmConfig struct {
	*MainConfig
	Index int  `cli:"name=i desc='index of the value'"`
	All   bool `cli:"name=all desc='remove every value of the path'"`

	Rm *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=text desc='diff the documents as text'"`

	Diff *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Diff bool `cli:"name=d desc='print a diff against the input'"`

	Fmt *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Eval *cli.Command
}

type TagsConfig struct {
	*MainConfig
	Tags *cli.Command
}
