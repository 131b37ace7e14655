package config

import (
	"errors"
	"fmt"

	"github.com/signadot/nodeconf/codec"
	"github.com/signadot/nodeconf/debug"
	"github.com/signadot/nodeconf/ir"
)

type mark int

const (
	unmarked mark = iota
	// applied nodes lead to a written setting; their children are pruned.
	applied
	// appliedRecursive nodes hold a written setting and are kept whole.
	appliedRecursive
)

// merge holds the state of one Save.
type merge struct {
	reg   *codec.Registry
	root  *ir.Node
	marks map[*ir.Node]mark
}

// Save writes every stored value back below the root and removes the
// nodes which no longer hold a value.
//
// The index-th value of a path goes into the index-th node that Load
// would read for that path, so unchanged settings keep their nodes.
// Missing nodes are appended after the last existing one. The index
// counts leaves over all repeated grouping nodes on the path: with two g
// elements holding one setting a each, g.a[1] goes into the second g and
// a new g.a[2] is appended to that second g, not to a new third one.
// Values which fail to encode are logged and their nodes dropped; Save
// goes on with the other values and returns all such errors joined.
func (s *Store) Save() error {
	if !s.valid || !s.writable {
		debug.Warnf("can not save configuration: valid=%t, writable=%t", s.valid, s.writable)
		if !s.valid {
			return fmt.Errorf("%w: not saved", ErrInvalidConfig)
		}
		return fmt.Errorf("%w: not saved", ErrReadOnly)
	}
	if debug.Save() {
		debug.LogAny(s.keys)
	}
	m := &merge{reg: s.reg, root: s.root, marks: map[*ir.Node]mark{}}
	var errs []error
	for _, path := range s.keys {
		segs, err := ir.ParsePath(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for i, v := range s.values[path] {
			if err := m.write(segs, i, v); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", path, i, err))
			}
		}
	}
	m.prune(s.root)
	return errors.Join(errs...)
}

// descend reports whether node is a grouping node load would walk into.
func (m *merge) descend(node *ir.Node) bool {
	return node.AttrValue(codec.AttrType) == "" && m.marks[node] != appliedRecursive
}

// slots returns the nodes holding the values of segs, in document order.
func (m *merge) slots(segs []string) []*ir.Node {
	all := m.root.ListPath(nil, segs, m.descend)
	res := all[:0]
	for _, n := range all {
		if m.marks[n] == applied {
			continue
		}
		res = append(res, n)
	}
	return res
}

// parent returns the node under which new slots for segs are created.
func (m *merge) parent(segs []string, slots []*ir.Node) *ir.Node {
	if len(slots) != 0 {
		return slots[len(slots)-1].Parent
	}
	res := m.root
	for _, seg := range segs[:len(segs)-1] {
		var next *ir.Node
		for _, c := range res.Children {
			if c.Name == seg && m.descend(c) {
				next = c
				break
			}
		}
		if next == nil {
			next = res.NewChild(seg)
			if debug.Save() {
				debug.Logf("created group %s", next.Path())
			}
		}
		res = next
	}
	return res
}

func (m *merge) write(segs []string, index int, v any) error {
	slots := m.slots(segs)
	if index >= len(slots) {
		parent := m.parent(segs, slots)
		name := segs[len(segs)-1]
		for len(slots) <= index {
			slots = append(slots, parent.NewChild(name))
		}
	}
	node := slots[index]
	for p := node.Parent; p != nil && p != m.root; p = p.Parent {
		if m.marks[p] == unmarked {
			m.marks[p] = applied
		}
	}
	if err := m.reg.Encode(node, v); err != nil {
		return err
	}
	m.marks[node] = appliedRecursive
	if debug.Save() {
		debug.Logf("saved %s[%d]", node.Path(), index)
	}
	return nil
}

func (m *merge) prune(node *ir.Node) {
	for i := 0; i < len(node.Children); {
		c := node.Children[i]
		switch m.marks[c] {
		case appliedRecursive:
			i++
		case applied:
			m.prune(c)
			i++
		default:
			if debug.Save() {
				debug.Logf("pruned %s", c.Path())
			}
			node.Remove(c)
		}
	}
}
