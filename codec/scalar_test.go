package codec

import (
	"testing"

	"github.com/signadot/nodeconf/ir"

	"github.com/google/go-cmp/cmp"
)

func TestScalarDecode(t *testing.T) {
	reg := newTestRegistry(t)
	captureLog(t)
	tests := []struct {
		name   string
		node   *ir.Node
		want   any
		wantOK bool
	}{
		{"int", leaf("int", "12"), 12, true},
		{"int spaces", leaf("int", " 12 "), 12, true},
		{"int malformed", leaf("int", "twelve"), nil, false},
		{"int missing", ir.New("x").WithAttr(AttrType, "int"), nil, false},
		{"string", leaf("string", "a string value"), "a string value", true},
		{"string empty", leaf("string", ""), "", true},
		{"string missing", ir.New("x").WithAttr(AttrType, "string"), nil, false},
		{"bool", leaf("bool", "true"), true, true},
		{"bool malformed", leaf("bool", "yes please"), nil, false},
		{"float", leaf("float", "2.5"), 2.5, true},
		{"float malformed", leaf("float", "2,5"), nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.Decode(tc.node)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScalarEncodeReplacesContent(t *testing.T) {
	reg := newTestRegistry(t)
	node := ir.New("x").WithAttr("stale", "1").WithChildren(ir.New("junk"))
	if err := reg.Encode(node, 21); err != nil {
		t.Fatal(err)
	}
	want := leaf("int", "21")
	if !ir.Equal(want, node) {
		t.Errorf("got %+v", node.Attrs)
	}
	if len(node.Children) != 0 {
		t.Errorf("children not cleared")
	}
}

func TestScalarRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)
	for _, v := range []any{0, -3, "", "x y", true, false, 0.125, 1e300} {
		node := ir.New("x")
		if err := reg.Encode(node, v); err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		got, ok := reg.Decode(node)
		if !ok {
			t.Fatalf("%v: decode failed", v)
		}
		if diff := cmp.Diff(v, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestScalarEncodeWrongType(t *testing.T) {
	if err := NewIntParser().Encode(ir.New("x"), "1"); err == nil {
		t.Errorf("expected error")
	}
}

func leaf(tag, value string) *ir.Node {
	return ir.New("x").WithAttr(AttrType, tag).WithAttr(AttrValue, value)
}
