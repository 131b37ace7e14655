package xmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/signadot/nodeconf/ir"
)

// DefaultDecl is the declaration written for documents which were not
// read with one.
const DefaultDecl = `version="1.0" encoding="utf-8"`

type Document struct {
	Root *ir.Node
	// Decl holds the instruction of the xml declaration.
	Decl string
}

func New(root *ir.Node) *Document {
	return &Document{Root: root, Decl: DefaultDecl}
}

func Parse(d []byte) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.ValidateInput = true
	// validation rejects any token after the root element, including the
	// final newline WriteTo produces.
	if err := doc.ReadFromBytes(bytes.TrimRight(d, " \t\r\n")); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		}
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	res := &Document{Decl: DefaultDecl}
	for _, t := range doc.Child {
		if pi, ok := t.(*etree.ProcInst); ok && pi.Target == "xml" {
			res.Decl = pi.Inst
			break
		}
	}
	res.Root = fromElement(root)
	return res, nil
}

func Read(r io.Reader) (*Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d)
}

func fromElement(e *etree.Element) *ir.Node {
	res := ir.New(e.FullTag())
	for i := range e.Attr {
		res.SetAttr(e.Attr[i].FullKey(), e.Attr[i].Value)
	}
	for _, c := range e.ChildElements() {
		res.Append(fromElement(c))
	}
	return res
}

func toElement(n *ir.Node) *etree.Element {
	res := etree.NewElement(n.Name)
	for _, a := range n.Attrs {
		res.CreateAttr(a.Name, a.Value)
	}
	for _, c := range n.Children {
		res.AddChild(toElement(c))
	}
	return res
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.Root == nil {
		return 0, ErrNoRoot
	}
	doc := etree.NewDocument()
	decl := d.Decl
	if decl == "" {
		decl = DefaultDecl
	}
	doc.CreateProcInst("xml", decl)
	doc.SetRoot(toElement(d.Root))
	doc.Indent(2)
	n, err := doc.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("writing <%s>: %w", d.Root.Name, err)
	}
	return n, nil
}

func (d *Document) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := d.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
