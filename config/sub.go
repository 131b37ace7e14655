package config

import (
	"fmt"
	"reflect"

	"github.com/signadot/nodeconf/codec"
	"github.com/signadot/nodeconf/debug"
	"github.com/signadot/nodeconf/ir"
)

// Sub is a store rooted at an interior node of another document. It is
// always valid and writable.
type Sub struct {
	*Store
}

func NewSub(root *ir.Node, reg *codec.Registry) *Sub {
	return &Sub{Store: NewStore(root, reg, Writable())}
}

// SubParser stores a *Sub as a node of type "config" whose children are
// the settings of the sub-configuration.
type SubParser struct {
	reg *codec.Registry
}

func NewSubParser(reg *codec.Registry) *SubParser {
	return &SubParser{reg: reg}
}

func (p *SubParser) Tag() string                { return "config" }
func (p *SubParser) Type() reflect.Type         { return reflect.TypeFor[*Sub]() }
func (p *SubParser) HasGenericComponents() bool { return false }
func (p *SubParser) CanParseChildren() bool     { return false }

// Decode loads a Sub rooted at node. Later saves of the Sub write into
// node directly.
func (p *SubParser) Decode(node *ir.Node) (any, bool) {
	sub := NewSub(node, p.reg)
	sub.Load()
	return sub, true
}

// Encode saves the Sub and makes node hold its settings. A Sub rooted
// elsewhere is saved into a copy of its root, leaving its own root as
// it was. Failures of single settings inside the Sub are logged by its
// Save and do not fail the Sub as a whole.
func (p *SubParser) Encode(node *ir.Node, v any) error {
	sub, ok := v.(*Sub)
	if !ok || sub == nil || sub.root == nil {
		return fmt.Errorf("%w: %T is not a sub-configuration", codec.ErrEncode, v)
	}
	if sub.root == node {
		node.Attrs = nil
		node.SetAttr(codec.AttrType, p.Tag())
		if err := sub.Save(); err != nil {
			debug.Warnf("sub-configuration %s saved with errors: %v", node.Path(), err)
		}
		return nil
	}
	// sub.root may be a node of the document being saved, even one
	// already rewritten by this save, so it is saved into a copy.
	tmp := sub.detached()
	if err := tmp.Save(); err != nil {
		debug.Warnf("sub-configuration %s saved with errors: %v", node.Path(), err)
	}
	node.RemoveAll()
	node.SetAttr(codec.AttrType, p.Tag())
	for _, c := range tmp.root.Children {
		node.Import(c)
	}
	return nil
}

// detached returns a writable store with the settings of s over a copy of
// its root.
func (s *Store) detached() *Store {
	root := s.root.Clone()
	root.Parent = nil
	return &Store{
		root:     root,
		reg:      s.reg,
		values:   s.values,
		keys:     s.keys,
		writable: true,
		valid:    true,
	}
}

// CreateChild stores a new empty Sub at path and index and returns it.
// The Sub gets its own node, which is copied into the document on Save.
func (s *Store) CreateChild(path string, index int) (*Sub, error) {
	segs, err := ir.ParsePath(path)
	if err != nil {
		return nil, err
	}
	sub := NewSub(ir.New(segs[len(segs)-1]), s.reg)
	sub.Load()
	if err := s.Set(path, sub, At(index)); err != nil {
		return nil, err
	}
	return sub, nil
}

// SubConfig returns the Sub at path and index. If there is none and s is
// writable a new one is created there; otherwise SubConfig returns nil.
func (s *Store) SubConfig(path string, index int) *Sub {
	if sub := GetAt[*Sub](s, path, index, nil); sub != nil {
		return sub
	}
	if !s.writable {
		return nil
	}
	sub, err := s.CreateChild(path, index)
	if err != nil {
		return nil
	}
	return sub
}
