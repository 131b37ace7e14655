package codec

import (
	"errors"
	"reflect"
	"testing"

	"github.com/signadot/nodeconf/ir"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeVisual
)

func (m mode) String() string {
	switch m {
	case modeNormal:
		return "Normal"
	case modeInsert:
		return "Insert"
	case modeVisual:
		return "Visual"
	}
	return "mode?"
}

const modeDef = "github.com/signadot/nodeconf/codec.mode"

func TestEnumDefinition(t *testing.T) {
	if got := Definition(reflect.TypeFor[mode]()); got != modeDef {
		t.Errorf("got %q", got)
	}
}

func TestEnum(t *testing.T) {
	captureLog(t)
	reg := newTestRegistry(t)
	if err := reg.DefineEnum(modeNormal, modeInsert, modeVisual); err != nil {
		t.Fatal(err)
	}
	node := ir.New("mode").WithAttr(AttrType, "enum").
		WithAttr(AttrDefinition, modeDef).
		WithAttr(AttrValue, "Insert")
	v, ok := reg.Decode(node)
	if !ok || v != modeInsert {
		t.Fatalf("got %v %v", v, ok)
	}

	node.SetAttr(AttrValue, "2")
	if v, ok := reg.Decode(node); !ok || v != modeVisual {
		t.Errorf("numeric value: got %v %v", v, ok)
	}
	node.SetAttr(AttrValue, "Replace")
	if _, ok := reg.Decode(node); ok {
		t.Errorf("undefined member decoded")
	}
	node.SetAttr(AttrDefinition, "other.mode")
	node.SetAttr(AttrValue, "Insert")
	if _, ok := reg.Decode(node); ok {
		t.Errorf("undefined enum decoded")
	}

	out := ir.New("mode")
	if err := reg.Encode(out, modeVisual); err != nil {
		t.Fatal(err)
	}
	want := ir.New("mode").WithAttr(AttrType, "enum").
		WithAttr(AttrDefinition, modeDef).
		WithAttr(AttrValue, "Visual")
	if !ir.Equal(want, out) {
		t.Errorf("got %+v", out.Attrs)
	}
}

type undefined int

func (undefined) String() string { return "u" }

func TestEnumUndefinedEncode(t *testing.T) {
	captureLog(t)
	reg := newTestRegistry(t)
	if err := reg.Encode(ir.New("x"), undefined(1)); !errors.Is(err, ErrUnknownEnum) {
		t.Errorf("expected ErrUnknownEnum, got %v", err)
	}
}

type ptrStringer struct{}

func (*ptrStringer) String() string { return "" }

func TestEnumDefineErrors(t *testing.T) {
	p := NewEnumParser()
	if err := p.Define(); err == nil {
		t.Errorf("empty definition accepted")
	}
	if err := p.Define(&ptrStringer{}); err == nil {
		t.Errorf("non integer enum accepted")
	}
	if err := p.Define(modeNormal, undefined(0)); err == nil {
		t.Errorf("mixed enum accepted")
	}
	if err := NewRegistry().DefineEnum(modeNormal); !errors.Is(err, ErrNoParser) {
		t.Errorf("expected ErrNoParser, got %v", err)
	}
}
