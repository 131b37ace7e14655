package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
		err  bool
	}{
		{"a", []string{"a"}, false},
		{"a.b.c", []string{"a", "b", "c"}, false},
		{"", nil, true},
		{"a..b", nil, true},
		{".a", nil, true},
		{"a.", nil, true},
	}
	for _, tc := range tests {
		got, err := ParsePath(tc.in)
		if tc.err {
			if !errors.Is(err, ErrPath) {
				t.Errorf("%q: expected ErrPath, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestPathJoin(t *testing.T) {
	r := New("r")
	c := r.NewChild("a").NewChild("b").NewChild("c")
	if r.Path() != "" {
		t.Errorf("root path %q", r.Path())
	}
	if got := c.Path(); got != "a.b.c" {
		t.Errorf("path %q", got)
	}
	if got := Join(Join("", "a"), "b"); got != "a.b" {
		t.Errorf("join %q", got)
	}
}

func TestListPath(t *testing.T) {
	r := New("r").WithChildren(
		New("g").WithChildren(New("x").WithAttr("n", "1"), New("x").WithAttr("n", "2")),
		New("x").WithAttr("n", "top"),
		New("g").WithAttr("type", "config").WithChildren(New("x").WithAttr("n", "hidden")),
		New("g").WithChildren(New("x").WithAttr("n", "3")),
	)
	values := func(ns []*Node) []string {
		var res []string
		for _, n := range ns {
			res = append(res, n.AttrValue("n"))
		}
		return res
	}
	all := r.ListPath(nil, []string{"g", "x"}, nil)
	if diff := cmp.Diff([]string{"1", "2", "hidden", "3"}, values(all)); diff != "" {
		t.Errorf("ListPath mismatch (-want +got):\n%s", diff)
	}
	untyped := func(n *Node) bool { return n.AttrValue("type") == "" }
	got := r.ListPath(nil, []string{"g", "x"}, untyped)
	if diff := cmp.Diff([]string{"1", "2", "3"}, values(got)); diff != "" {
		t.Errorf("filtered ListPath mismatch (-want +got):\n%s", diff)
	}
	if got := r.ListPath(nil, []string{"x"}, untyped); len(got) != 1 {
		t.Errorf("top level: %d nodes", len(got))
	}
	if got := r.ListPath(nil, nil, nil); len(got) != 1 || got[0] != r {
		t.Errorf("empty path must yield the node itself")
	}
}

func TestGetPath(t *testing.T) {
	r := New("r").WithChildren(
		New("g").WithChildren(New("x").WithAttr("n", "1")),
		New("g").WithChildren(New("x").WithAttr("n", "2")),
	)
	n, err := r.GetPath("g.x")
	if err != nil || n == nil || n.AttrValue("n") != "1" {
		t.Errorf("GetPath: %v %v", n, err)
	}
	if n, err := r.GetPath("g.y"); err != nil || n != nil {
		t.Errorf("missing: %v %v", n, err)
	}
	if _, err := r.GetPath("g..x"); !errors.Is(err, ErrPath) {
		t.Errorf("expected ErrPath, got %v", err)
	}
}
