package config

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/nodeconf/debug"
	"github.com/signadot/nodeconf/ir"
)

// Getter gives read access to stored values. *Store, *Sub and *File
// implement it.
type Getter interface {
	Value(path string, index int) (any, bool)
}

// Get returns the first value at path if it has type T, otherwise def.
func Get[T any](g Getter, path string, def T) T {
	return GetAt(g, path, 0, def)
}

// GetAt returns the index-th value at path if it has type T, otherwise
// def.
func GetAt[T any](g Getter, path string, index int, def T) T {
	v, ok := g.Value(path, index)
	if !ok {
		return def
	}
	t, ok := v.(T)
	if !ok {
		return def
	}
	return t
}

// Set stores v at path, by default at index 0.
//
// On a new path v becomes the only value; the index must then be 0 or
// -1. On an existing path, an index equal to the number of values or -1
// appends, a nil v removes the value at the index and any other v replaces
// it. A replacement must have the type of the value it replaces unless
// AllowTypeOverride is given. Indices past the end are rejected.
func (s *Store) Set(path string, v any, opts ...SetOption) error {
	o := &setOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if !s.writable {
		debug.Errorf("can not set %s: the configuration is read only", path)
		return fmt.Errorf("%w: can not set %s", ErrReadOnly, path)
	}
	if _, err := ir.ParsePath(path); err != nil {
		return err
	}
	if o.index < -1 {
		return fmt.Errorf("%w: invalid index %d for %s", ErrIndexGap, o.index, path)
	}
	vs, present := s.values[path]
	if !present {
		if v == nil {
			return nil
		}
		if o.index > 0 {
			debug.Errorf("can not set %s[%d]: there is no value %s[%d]", path, o.index, path, o.index-1)
			return fmt.Errorf("%w: %s[%d]", ErrIndexGap, path, o.index)
		}
		s.add(path, v)
		return nil
	}
	n := len(vs)
	switch {
	case o.index >= 0 && o.index < n && v != nil && !o.override &&
		reflect.TypeOf(vs[o.index]) != reflect.TypeOf(v):
		debug.Errorf("can not set %s[%d]: the existing value has type %T", path, o.index, vs[o.index])
		return fmt.Errorf("%w: %s[%d] holds %T, not %T", ErrTypeMismatch, path, o.index, vs[o.index], v)
	case o.index > n:
		debug.Errorf("can not set %s[%d]: there is no value %s[%d]", path, o.index, path, o.index-1)
		return fmt.Errorf("%w: %s[%d]", ErrIndexGap, path, o.index)
	case o.index == n || o.index == -1:
		if v != nil {
			s.values[path] = append(vs, v)
		}
	case v == nil:
		s.values[path] = slices.Delete(vs, o.index, o.index+1)
	default:
		vs[o.index] = v
	}
	return nil
}

// Delete removes the index-th value at path. Deleting at an unknown path
// or at the index just past the last value does nothing; larger indices
// are rejected like in Set.
func (s *Store) Delete(path string, index int) error {
	return s.Set(path, nil, At(index))
}

// DeleteAll removes every value at path. The path itself stays known.
func (s *Store) DeleteAll(path string) error {
	if !s.writable {
		debug.Errorf("can not delete %s: the configuration is read only", path)
		return fmt.Errorf("%w: can not delete %s", ErrReadOnly, path)
	}
	if _, present := s.values[path]; present {
		s.values[path] = []any{}
	}
	return nil
}
