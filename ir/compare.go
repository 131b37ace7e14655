package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two trees.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Attribute order is significant.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := compareAttrs(a.Attrs, b.Attrs); c != 0 {
		return c
	}
	return compareChildren(a.Children, b.Children)
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareAttrs(a, b []Attr) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a[i].Name, b[i].Name); c != 0 {
			return c
		}
		if c := strings.Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareChildren(a, b []*Node) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
