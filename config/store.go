package config

import (
	"slices"

	"github.com/signadot/nodeconf/codec"
	"github.com/signadot/nodeconf/debug"
	"github.com/signadot/nodeconf/ir"
)

// Store is a flat view of the settings below a root node. Every typed
// node is a setting addressed by the dotted names of its untyped
// ancestors and its own name. Same-named settings are kept in document
// order under one path.
//
// A Store is not safe for concurrent use.
type Store struct {
	root     *ir.Node
	reg      *codec.Registry
	values   map[string][]any
	keys     []string
	writable bool
	valid    bool
}

// NewStore returns an empty store over root. Call Load to read the
// settings of root. Only the Writable option applies.
func NewStore(root *ir.Node, reg *codec.Registry, opts ...Option) *Store {
	o := optsFrom(opts...)
	return &Store{
		root:     root,
		reg:      reg,
		values:   map[string][]any{},
		writable: o.writable,
		valid:    root != nil,
	}
}

func (s *Store) Root() *ir.Node            { return s.root }
func (s *Store) Registry() *codec.Registry { return s.reg }
func (s *Store) CanWrite() bool            { return s.writable }
func (s *Store) Valid() bool               { return s.valid }

// Count returns the number of values over all paths.
func (s *Store) Count() int {
	n := 0
	for _, vs := range s.values {
		n += len(vs)
	}
	return n
}

// Len returns the number of values at path.
func (s *Store) Len(path string) int {
	return len(s.values[path])
}

// Paths returns the known paths in store order: load order, then the
// order in which new paths were set. Paths emptied by DeleteAll are
// included.
func (s *Store) Paths() []string {
	return slices.Clone(s.keys)
}

// Values returns a copy of the values at path.
func (s *Store) Values(path string) []any {
	return slices.Clone(s.values[path])
}

// Value returns the index-th value at path.
func (s *Store) Value(path string, index int) (any, bool) {
	vs := s.values[path]
	if index < 0 || index >= len(vs) {
		return nil, false
	}
	return vs[index], true
}

// Load replaces the content of s by the settings found below its root.
// Settings which cannot be decoded are logged and skipped.
func (s *Store) Load() {
	s.values = map[string][]any{}
	s.keys = nil
	if s.root == nil || !s.valid {
		return
	}
	s.load(s.root, "")
}

func (s *Store) load(node *ir.Node, path string) {
	for _, c := range node.Children {
		p := ir.Join(path, c.Name)
		if c.AttrValue(codec.AttrType) == "" {
			s.load(c, p)
			continue
		}
		v, ok := s.reg.Decode(c)
		if !ok {
			continue
		}
		if debug.Load() {
			debug.Logf("loaded %s[%d]: %T", p, len(s.values[p]), v)
		}
		s.add(p, v)
	}
}

func (s *Store) add(path string, v any) {
	vs, present := s.values[path]
	if !present {
		s.keys = append(s.keys, path)
	}
	s.values[path] = append(vs, v)
}
