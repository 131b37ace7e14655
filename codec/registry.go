package codec

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/signadot/nodeconf/debug"
	"github.com/signadot/nodeconf/ir"
)

// Registry holds the parsers known to a process, indexed by type tag and
// by Go type.
type Registry struct {
	mu     sync.RWMutex
	byTag  map[string]Parser
	byType map[reflect.Type]Parser
	order  []Parser
}

func NewRegistry() *Registry {
	return &Registry{
		byTag:  map[string]Parser{},
		byType: map[reflect.Type]Parser{},
	}
}

// Register adds p under its tag and type. If either is taken, p is
// discarded, a warning is logged and ErrParserExists returned; the first
// registrant stays in place.
func (r *Registry) Register(p Parser) error {
	tag, t := p.Tag(), p.Type()
	r.mu.Lock()
	defer r.mu.Unlock()
	_, tagPresent := r.byTag[tag]
	_, typePresent := r.byType[t]
	if tagPresent || typePresent {
		debug.Warnf("more than one parser for %q (%s), additional parsers will be ignored", tag, t)
		return fmt.Errorf("%q (%s): %w", tag, t, ErrParserExists)
	}
	if debug.Registry() {
		debug.Logf("parser registered: %T, target %s, type attribute %q", p, t, tag)
	}
	r.byTag[tag] = p
	r.byType[t] = p
	r.order = append(r.order, p)
	return nil
}

// ByTag returns the parser for tag or nil.
func (r *Registry) ByTag(tag string) Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byTag[tag]
}

// ByValue returns the parser for the dynamic type of v. Without an exact
// match, the first parser in registration order which can parse children
// and accepts the type is returned. Which one wins among several such
// parsers depends only on registration order.
func (r *Registry) ByValue(v any) Parser {
	if v == nil {
		return nil
	}
	return r.lookupType(reflect.TypeOf(v))
}

func (r *Registry) lookupType(t reflect.Type) Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.byType[t]; ok {
		return p
	}
	for _, p := range r.order {
		if p.CanParseChildren() && Accepts(p.Type(), t) {
			return p
		}
	}
	return nil
}

// TagFor returns the tag under which values of type t are written.
func (r *Registry) TagFor(t reflect.Type) (string, bool) {
	p := r.lookupType(t)
	if p == nil {
		return "", false
	}
	return p.Tag(), true
}

// TypeFor returns the type declared by the parser for tag, or nil.
func (r *Registry) TypeFor(tag string) reflect.Type {
	p := r.ByTag(tag)
	if p == nil {
		return nil
	}
	return p.Type()
}

// HasGenericComponents reports the capability of the parser for tag; it is
// false for unknown tags.
func (r *Registry) HasGenericComponents(tag string) bool {
	p := r.ByTag(tag)
	return p != nil && p.HasGenericComponents()
}

// Parsers returns the registered parsers in registration order.
func (r *Registry) Parsers() []Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Parser, len(r.order))
	copy(res, r.order)
	return res
}

// Decode reads node with the parser named by its type attribute. Every
// failure, including a panicking parser, is logged and reported as
// (nil, false).
func (r *Registry) Decode(node *ir.Node) (v any, ok bool) {
	tag := node.AttrValue(AttrType)
	if tag == "" {
		return nil, false
	}
	p := r.ByTag(tag)
	if p == nil {
		debug.Errorf("the key %s of type %s could not be read: unknown data type", node.Path(), tag)
		return nil, false
	}
	defer func() {
		if x := recover(); x != nil {
			debug.Errorf("an error occurred while reading %s: %v", node.Path(), x)
			v, ok = nil, false
		}
	}()
	v, ok = p.Decode(node)
	if !ok {
		debug.Warnf("the key %s could not be read with type %s", node.Path(), tag)
		return nil, false
	}
	if debug.Parse() {
		debug.Logf("decoded %s as %T", node.Path(), v)
	}
	return v, true
}

// Encode writes v into node with the parser resolved by ByValue.
func (r *Registry) Encode(node *ir.Node, v any) (err error) {
	p := r.ByValue(v)
	if p == nil {
		debug.Errorf("there is no suitable parser for values of type %T", v)
		return fmt.Errorf("%w for %T", ErrNoParser, v)
	}
	defer func() {
		if x := recover(); x != nil {
			debug.Errorf("an error occurred while writing %T: %v", v, x)
			err = fmt.Errorf("%w: writing %T: %v", ErrEncode, v, x)
		}
	}()
	if err := p.Encode(node, v); err != nil {
		debug.Errorf("an error occurred while writing %T: %v", v, err)
		return fmt.Errorf("writing %T at %q: %w", v, node.Path(), err)
	}
	if debug.Parse() {
		debug.Logf("encoded %T with %q into %s", v, p.Tag(), node.Path())
	}
	return nil
}
