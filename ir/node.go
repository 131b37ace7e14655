package ir

import "slices"

// Attr is a single named attribute of a Node.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is an element of a document tree.
type Node struct {
	Name        string
	Attrs       []Attr
	Children    []*Node
	Parent      *Node
	ParentIndex int
}

func New(name string) *Node {
	return &Node{Name: name}
}

func (y *Node) WithAttr(name, value string) *Node {
	y.SetAttr(name, value)
	return y
}

func (y *Node) WithChildren(cs ...*Node) *Node {
	for _, c := range cs {
		y.Append(c)
	}
	return y
}

// Attr returns the value of the named attribute and whether it is present.
func (y *Node) Attr(name string) (string, bool) {
	for i := range y.Attrs {
		if y.Attrs[i].Name == name {
			return y.Attrs[i].Value, true
		}
	}
	return "", false
}

// AttrValue returns the named attribute, or "" when it is absent.
func (y *Node) AttrValue(name string) string {
	v, _ := y.Attr(name)
	return v
}

// SetAttr sets an attribute, keeping the position of an existing one.
func (y *Node) SetAttr(name, value string) {
	for i := range y.Attrs {
		if y.Attrs[i].Name == name {
			y.Attrs[i].Value = value
			return
		}
	}
	y.Attrs = append(y.Attrs, Attr{Name: name, Value: value})
}

func (y *Node) RemoveAttr(name string) bool {
	for i := range y.Attrs {
		if y.Attrs[i].Name == name {
			y.Attrs = slices.Delete(y.Attrs, i, i+1)
			return true
		}
	}
	return false
}

// ChildrenNamed returns the children with the given name in document order.
func (y *Node) ChildrenNamed(name string) []*Node {
	var res []*Node
	for _, c := range y.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// Child returns the first child with the given name or nil.
func (y *Node) Child(name string) *Node {
	for _, c := range y.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// NewChild creates a child named name and appends it to y.
func (y *Node) NewChild(name string) *Node {
	c := New(name)
	y.Append(c)
	return c
}

// Append attaches c as the last child of y, detaching it from any
// previous parent.
func (y *Node) Append(c *Node) {
	if c.Parent != nil {
		c.Parent.Remove(c)
	}
	c.Parent = y
	c.ParentIndex = len(y.Children)
	y.Children = append(y.Children, c)
}

// Remove detaches c from y. It reports whether c was a child of y.
func (y *Node) Remove(c *Node) bool {
	if c.Parent != y {
		return false
	}
	i := c.ParentIndex
	if i < 0 || i >= len(y.Children) || y.Children[i] != c {
		i = slices.Index(y.Children, c)
		if i == -1 {
			return false
		}
	}
	y.Children = slices.Delete(y.Children, i, i+1)
	for j := i; j < len(y.Children); j++ {
		y.Children[j].ParentIndex = j
	}
	c.Parent = nil
	c.ParentIndex = 0
	return true
}

// RemoveAll drops every attribute and child of y.
func (y *Node) RemoveAll() {
	for _, c := range y.Children {
		c.Parent = nil
		c.ParentIndex = 0
	}
	y.Attrs = nil
	y.Children = nil
}

// Import appends a deep copy of o to y and returns the copy.
func (y *Node) Import(o *Node) *Node {
	c := o.Clone()
	c.Parent = nil
	y.Append(c)
	return c
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Name = y.Name
	dst.Attrs = slices.Clone(y.Attrs)
	dst.Children = make([]*Node, len(y.Children))
	for i, yc := range y.Children {
		dstI := &Node{}
		yc.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Children[i] = dstI
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
