package ir

import "encoding/json"

type irBase struct {
	Name     string  `json:"name"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&irBase{
		Name:     y.Name,
		Attrs:    y.Attrs,
		Children: y.Children,
	})
}

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Name = tmp.Name
	y.Attrs = tmp.Attrs
	y.Children = tmp.Children
	for i, c := range y.Children {
		c.Parent = y
		c.ParentIndex = i
	}
	return nil
}
