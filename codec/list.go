package codec

import (
	"fmt"
	"reflect"

	"github.com/signadot/nodeconf/ir"
)

// ListParser handles homogeneous slices. Each element is stored in an
// item child encoded by the registry; the content attribute names the
// element tag.
type ListParser struct {
	parser
	reg *Registry
}

func NewListParser(reg *Registry) *ListParser {
	return &ListParser{
		parser: parser{
			tag:      "list",
			typ:      reflect.TypeFor[[]any](),
			generic:  true,
			children: true,
		},
		reg: reg,
	}
}

// Decode reads the items of node. The first item fixes the element type:
// the type declared for the content tag or, when that tag is generic, the
// type of the first decoded item. Every item must decode to exactly that
// type, otherwise the whole list is rejected.
func (p *ListParser) Decode(node *ir.Node) (any, bool) {
	content := node.AttrValue(AttrContent)
	if content == "" {
		return nil, false
	}
	generic := p.reg.HasGenericComponents(content)
	if len(node.Children) == 0 {
		if generic {
			return nil, false
		}
		elemType := p.reg.TypeFor(content)
		if elemType == nil {
			return nil, false
		}
		return reflect.MakeSlice(reflect.SliceOf(elemType), 0, 0).Interface(), true
	}

	var (
		res      reflect.Value
		elemType reflect.Type
	)
	for i, item := range node.Children {
		if item.Name != ItemName {
			return nil, false
		}
		v, ok := p.reg.Decode(item)
		if !ok {
			return nil, false
		}
		if i == 0 {
			if generic {
				if item.AttrValue(AttrType) != content {
					return nil, false
				}
				elemType = reflect.TypeOf(v)
			} else {
				elemType = p.reg.TypeFor(content)
			}
			if elemType == nil {
				return nil, false
			}
			res = reflect.MakeSlice(reflect.SliceOf(elemType), 0, len(node.Children))
		}
		if reflect.TypeOf(v) != elemType {
			return nil, false
		}
		res = reflect.Append(res, reflect.ValueOf(v))
	}
	return res.Interface(), true
}

func (p *ListParser) Encode(node *ir.Node, v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return fmt.Errorf("%w: %T", ErrNotList, v)
	}
	elemType := rv.Type().Elem()
	content, ok := p.reg.TagFor(elemType)
	if !ok {
		return fmt.Errorf("%w for list elements of type %s", ErrNoParser, elemType)
	}
	reset(node, p.tag)
	node.SetAttr(AttrContent, content)
	for i := 0; i < rv.Len(); i++ {
		item := node.NewChild(ItemName)
		if err := p.reg.Encode(item, rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
