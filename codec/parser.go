package codec

import (
	"reflect"

	"github.com/signadot/nodeconf/ir"
)

// Attribute and element names of the persisted form.
const (
	AttrType       = "type"
	AttrValue      = "value"
	AttrDefinition = "definition"
	AttrContent    = "content"
	ItemName       = "item"
)

// Parser decodes nodes of one type tag into Go values of one type and
// encodes such values back.
type Parser interface {
	// Tag is the value of the type attribute handled by the parser.
	Tag() string
	// Type is the Go type produced by Decode and accepted by Encode.
	Type() reflect.Type
	// HasGenericComponents reports whether decoded values are
	// parameterized by their content, as a list is by its items.
	HasGenericComponents() bool
	// CanParseChildren reports whether the parser also serves values whose
	// type is only accepted by Type, see Accepts. It is consulted only
	// when no parser is registered for the exact type.
	CanParseChildren() bool

	// Decode reads node. Malformed content yields (nil, false).
	Decode(node *ir.Node) (any, bool)
	// Encode replaces the content of node with v.
	Encode(node *ir.Node, v any) error
}

type parser struct {
	tag      string
	typ      reflect.Type
	generic  bool
	children bool
}

func (p *parser) Tag() string                { return p.tag }
func (p *parser) Type() reflect.Type         { return p.typ }
func (p *parser) HasGenericComponents() bool { return p.generic }
func (p *parser) CanParseChildren() bool     { return p.children }

func (p *parser) String() string {
	return p.tag
}

// Accepts reports whether values of type actual may be handled by a parser
// declared for type declared: the types are identical, declared is an
// interface implemented by actual, or both are slices (or actual is an
// array) whose element types are accepted in turn.
func Accepts(declared, actual reflect.Type) bool {
	if declared == nil || actual == nil {
		return false
	}
	if declared == actual {
		return true
	}
	switch declared.Kind() {
	case reflect.Interface:
		return actual.Implements(declared)
	case reflect.Slice:
		switch actual.Kind() {
		case reflect.Slice, reflect.Array:
			return Accepts(declared.Elem(), actual.Elem())
		}
	}
	return false
}

// reset replaces the content of node with a bare type attribute.
func reset(node *ir.Node, tag string) {
	node.RemoveAll()
	node.SetAttr(AttrType, tag)
}
