package ir

import (
	"fmt"
	"strings"
)

// Sep separates the segments of a dotted path.
const Sep = "."

// Path returns the dotted path of y below its root. The root itself has
// the empty path.
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	prefix := y.Parent.Path()
	if prefix == "" {
		return y.Name
	}
	return prefix + Sep + y.Name
}

// Join appends name to a dotted path.
func Join(path, name string) string {
	if path == "" {
		return name
	}
	return path + Sep + name
}

// ParsePath splits a dotted path into its segments. Literal dots cannot be
// escaped.
func ParsePath(p string) ([]string, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}
	segs := strings.Split(p, Sep)
	for i, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrPath, i, p)
		}
	}
	return segs, nil
}

// ListPath appends to dst the nodes reached from y by following segs in
// document order. Intermediate nodes are only descended into when descend
// returns true for them; a nil descend descends everywhere.
func (y *Node) ListPath(dst []*Node, segs []string, descend func(*Node) bool) []*Node {
	if len(segs) == 0 {
		return append(dst, y)
	}
	for _, c := range y.Children {
		if c.Name != segs[0] {
			continue
		}
		if len(segs) == 1 {
			dst = append(dst, c)
			continue
		}
		if descend != nil && !descend(c) {
			continue
		}
		dst = c.ListPath(dst, segs[1:], descend)
	}
	return dst
}

// GetPath returns the first node reached by the dotted path p, or nil.
func (y *Node) GetPath(p string) (*Node, error) {
	segs, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := y
	for _, seg := range segs {
		res = res.Child(seg)
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}
