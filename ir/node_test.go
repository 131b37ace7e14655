package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(ns []*Node) []string {
	var res []string
	for _, n := range ns {
		res = append(res, n.Name)
	}
	return res
}

func checkLinks(t *testing.T, n *Node) {
	t.Helper()
	for i, c := range n.Children {
		if c.Parent != n || c.ParentIndex != i {
			t.Errorf("%s: bad links at %d", c.Path(), i)
		}
		checkLinks(t, c)
	}
}

func TestAttrs(t *testing.T) {
	n := New("a").WithAttr("type", "int").WithAttr("value", "1")
	n.SetAttr("type", "string")
	want := []Attr{{"type", "string"}, {"value", "1"}}
	if diff := cmp.Diff(want, n.Attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
	if v, ok := n.Attr("missing"); ok || v != "" {
		t.Errorf("missing attr: %q %t", v, ok)
	}
	if !n.RemoveAttr("type") || n.RemoveAttr("type") {
		t.Errorf("RemoveAttr")
	}
	if diff := cmp.Diff([]Attr{{"value", "1"}}, n.Attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestChildren(t *testing.T) {
	r := New("r")
	a := r.NewChild("a")
	b := r.NewChild("b")
	a2 := r.NewChild("a")
	checkLinks(t, r)
	if diff := cmp.Diff([]string{"a", "a"}, names(r.ChildrenNamed("a"))); diff != "" {
		t.Errorf("ChildrenNamed mismatch (-want +got):\n%s", diff)
	}
	if r.Child("a") != a || r.Child("c") != nil {
		t.Errorf("Child")
	}

	if !r.Remove(b) || r.Remove(b) {
		t.Errorf("Remove")
	}
	if b.Parent != nil {
		t.Errorf("removed node keeps its parent")
	}
	checkLinks(t, r)

	// appending moves a node
	other := New("o")
	other.Append(a2)
	if len(r.Children) != 1 || a2.Parent != other {
		t.Errorf("Append did not detach")
	}
	checkLinks(t, r)
	checkLinks(t, other)

	imp := r.Import(other)
	if imp == other || imp.Parent != r || other.Parent != nil {
		t.Errorf("Import did not copy")
	}
	checkLinks(t, r)
	if imp.Root() != r || a.Root() != r {
		t.Errorf("Root")
	}

	r.WithAttr("x", "y").RemoveAll()
	if len(r.Attrs) != 0 || len(r.Children) != 0 || a.Parent != nil {
		t.Errorf("RemoveAll")
	}
}

func TestVisit(t *testing.T) {
	r := New("r").WithChildren(New("a").WithChildren(New("b")), New("c"))
	var got []string
	err := r.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			got = append(got, "/"+n.Name)
			return true, nil
		}
		got = append(got, n.Name)
		return n.Name != "a", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"r", "a", "/a", "c", "/c", "/r"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	r := New("r").WithChildren(New("g").WithChildren(leaf("b", "int", "1")))
	d, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"r","children":[{"name":"g","children":[{"name":"b","attrs":[{"name":"type","value":"int"},{"name":"value","value":"1"}]}]}]}`
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(r, back) {
		t.Errorf("json round trip changed the tree")
	}
	checkLinks(t, back)
	if got := back.Children[0].Children[0].Path(); got != "g.b" {
		t.Errorf("path %q", got)
	}
}
