package codec

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/signadot/nodeconf/ir"
)

// EnumParser handles named integer types with a String method, the Go
// rendition of an enumeration. A type must be defined with its values
// before it can be read; see Define.
type EnumParser struct {
	parser

	mu     sync.RWMutex
	defs   map[string][]fmt.Stringer
	byType map[reflect.Type]string
}

func NewEnumParser() *EnumParser {
	return &EnumParser{
		parser: parser{
			tag:      "enum",
			typ:      reflect.TypeFor[fmt.Stringer](),
			children: true,
		},
		defs:   map[string][]fmt.Stringer{},
		byType: map[reflect.Type]string{},
	}
}

// Definition is the name under which values of t are persisted.
func Definition(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// Define declares the complete set of values of one enum type.
func (p *EnumParser) Define(values ...fmt.Stringer) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no values", ErrUnknownEnum)
	}
	t := reflect.TypeOf(values[0])
	if !isInteger(t) {
		return fmt.Errorf("%w: %s is not an integer type", ErrUnknownEnum, t)
	}
	for _, v := range values[1:] {
		if reflect.TypeOf(v) != t {
			return fmt.Errorf("%w: mixed types %s and %T", ErrUnknownEnum, t, v)
		}
	}
	def := Definition(t)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defs[def] = append([]fmt.Stringer(nil), values...)
	p.byType[t] = def
	return nil
}

func (p *EnumParser) Decode(node *ir.Node) (any, bool) {
	value := node.AttrValue(AttrValue)
	def := node.AttrValue(AttrDefinition)
	if value == "" || def == "" {
		return nil, false
	}
	p.mu.RLock()
	values := p.defs[def]
	p.mu.RUnlock()
	if values == nil {
		return nil, false
	}
	for _, v := range values {
		if v.String() == value {
			return v, true
		}
	}
	// numeric values name a member by its integer value
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil, false
	}
	for _, v := range values {
		if intValue(v) == n {
			return v, true
		}
	}
	return nil, false
}

func (p *EnumParser) Encode(node *ir.Node, v any) error {
	s, ok := v.(fmt.Stringer)
	if !ok {
		return fmt.Errorf("%w: enum parser given %T", ErrEncode, v)
	}
	p.mu.RLock()
	def, ok := p.byType[reflect.TypeOf(v)]
	p.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownEnum, v)
	}
	reset(node, p.tag)
	node.SetAttr(AttrDefinition, def)
	node.SetAttr(AttrValue, s.String())
	return nil
}

// DefineEnum declares an enum type with the registry's enum parser.
func (r *Registry) DefineEnum(values ...fmt.Stringer) error {
	p, ok := r.ByTag("enum").(*EnumParser)
	if !ok {
		return fmt.Errorf("%w for enum", ErrNoParser)
	}
	return p.Define(values...)
}

func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func intValue(v any) int64 {
	rv := reflect.ValueOf(v)
	if rv.CanInt() {
		return rv.Int()
	}
	return int64(rv.Uint())
}
