package codec

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/nodeconf/ir"
)

// ScalarParser handles values stored in a single value attribute.
type ScalarParser[T any] struct {
	parser
	parse  func(string) (T, error)
	format func(T) string
}

func newScalar[T any](tag string, parse func(string) (T, error), format func(T) string) *ScalarParser[T] {
	return &ScalarParser[T]{
		parser: parser{tag: tag, typ: reflect.TypeFor[T]()},
		parse:  parse,
		format: format,
	}
}

func NewIntParser() *ScalarParser[int] {
	return newScalar("int", func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}, strconv.Itoa)
}

func NewStringParser() *ScalarParser[string] {
	return newScalar("string", func(s string) (string, error) {
		return s, nil
	}, func(s string) string { return s })
}

func NewBoolParser() *ScalarParser[bool] {
	return newScalar("bool", func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}, strconv.FormatBool)
}

func NewFloatParser() *ScalarParser[float64] {
	return newScalar("float", func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}, func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	})
}

func (p *ScalarParser[T]) Decode(node *ir.Node) (any, bool) {
	s, ok := node.Attr(AttrValue)
	if !ok {
		return nil, false
	}
	v, err := p.parse(s)
	if err != nil {
		return nil, false
	}
	return v, true
}

func (p *ScalarParser[T]) Encode(node *ir.Node, v any) error {
	x, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: %s parser given %T", ErrEncode, p.tag, v)
	}
	reset(node, p.tag)
	node.SetAttr(AttrValue, p.format(x))
	return nil
}
