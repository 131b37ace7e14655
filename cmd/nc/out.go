package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// writeValue writes v in format. TOML documents are tables, so a value
// which is not a table is written under key.
func writeValue(w io.Writer, format outFormat, key string, v any) error {
	var (
		d   []byte
		err error
	)
	switch format {
	case jsonFormat:
		d, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			d = append(d, '\n')
		}
	case yamlFormat:
		d, err = yaml.Marshal(v)
	case tomlFormat:
		switch v.(type) {
		case map[string]any, group:
		default:
			v = map[string]any{key: v}
		}
		d, err = toml.Marshal(v)
	default:
		_, err = fmt.Fprintln(w, v)
		return err
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", format, err)
	}
	_, err = w.Write(d)
	return err
}

func colorFor(on bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
