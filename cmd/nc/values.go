package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/signadot/nodeconf/config"
	"github.com/signadot/nodeconf/debug"

	"github.com/goccy/go-yaml"
)

type outFormat int

const (
	textFormat outFormat = iota
	jsonFormat
	yamlFormat
	tomlFormat
)

func (f outFormat) String() string {
	switch f {
	case jsonFormat:
		return "json"
	case yamlFormat:
		return "yaml"
	case tomlFormat:
		return "toml"
	default:
		return "text"
	}
}

// plain converts a stored value to strings, numbers, bools, slices and
// maps. Enum values become their names and sub-configurations become
// nested maps.
func plain(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *config.Sub:
		return nested(x.Store)
	case fmt.Stringer:
		return x.String()
	case string, bool, int, float64:
		return x
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return fmt.Sprint(v)
	}
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = plain(rv.Index(i).Interface())
	}
	return res
}

// settingValue is the plain form of the values of a path: the single
// value itself, or a list when there are several.
func settingValue(vs []any) any {
	if len(vs) == 1 {
		return plain(vs[0])
	}
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = plain(v)
	}
	return res
}

// flat maps every non-empty path of s to its plain value, in store order.
func flat(s *config.Store) yaml.MapSlice {
	var res yaml.MapSlice
	for _, path := range s.Paths() {
		vs := s.Values(path)
		if len(vs) == 0 {
			continue
		}
		res = append(res, yaml.MapItem{Key: path, Value: settingValue(vs)})
	}
	return res
}

// flatMap is flat as a map.
func flatMap(s *config.Store) map[string]any {
	res := map[string]any{}
	for _, item := range flat(s) {
		res[item.Key.(string)] = item.Value
	}
	return res
}

// group holds the settings below a path segment. It is distinct from the
// map of a sub-configuration, which is a single setting.
type group map[string]any

// nested maps the settings of s into maps keyed by path segments, so that
// "net.port" is found under "net" and then "port". A setting whose path
// collides with a group of other settings is left out.
func nested(s *config.Store) map[string]any {
	res := group{}
	for _, item := range flat(s) {
		path := item.Key.(string)
		if !insert(res, strings.Split(path, "."), item.Value) {
			debug.Warnf("%s is both a setting and a group, left out", path)
		}
	}
	return res
}

func insert(m group, segs []string, v any) bool {
	for _, seg := range segs[:len(segs)-1] {
		x, present := m[seg]
		if !present {
			sub := group{}
			m[seg] = sub
			m = sub
			continue
		}
		sub, ok := x.(group)
		if !ok {
			return false
		}
		m = sub
	}
	last := segs[len(segs)-1]
	if _, present := m[last]; present {
		return false
	}
	m[last] = v
	return true
}
