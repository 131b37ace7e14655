package ir

import (
	"testing"
)

func leaf(name, typ, value string) *Node {
	return New(name).WithAttr("type", typ).WithAttr("value", value)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"nil < node", nil, New("a"), -1},
		{"name", New("a"), New("b"), -1},
		{"same name", New("a"), New("a"), 0},

		// Attributes are compared in order
		{"no attrs < attrs", New("a"), New("a").WithAttr("x", "1"), -1},
		{"attr name", New("a").WithAttr("x", "1"), New("a").WithAttr("y", "1"), -1},
		{"attr value", New("a").WithAttr("x", "1"), New("a").WithAttr("x", "2"), -1},
		{"attr order",
			New("a").WithAttr("type", "int").WithAttr("value", "1"),
			New("a").WithAttr("value", "1").WithAttr("type", "int"),
			-1},

		// Children
		{"fewer children", New("a").WithChildren(New("b")), New("a").WithChildren(New("b"), New("c")), -1},
		{"child", New("a").WithChildren(leaf("b", "int", "1")), New("a").WithChildren(leaf("b", "int", "2")), -1},
		{"equal trees",
			New("a").WithChildren(New("g").WithChildren(leaf("b", "int", "1"))),
			New("a").WithChildren(New("g").WithChildren(leaf("b", "int", "1"))),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqualClone(t *testing.T) {
	a := New("r").WithChildren(New("g").WithChildren(leaf("b", "int", "1"), leaf("b", "int", "2")))
	c := a.Clone()
	if !Equal(a, c) {
		t.Fatal("clone differs")
	}
	c.Children[0].Children[1].SetAttr("value", "3")
	if Equal(a, c) {
		t.Error("clone shares attributes")
	}
	if a.Children[0].Children[1].AttrValue("value") != "2" {
		t.Error("original changed")
	}
}
