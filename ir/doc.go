// Package ir provides the in-memory document tree used by nodeconf.
//
// # Overview
//
// A document is a tree of *Node values. Each node has a name, an ordered
// list of string attributes and an ordered list of named children. Nodes
// keep a pointer to their parent and their index within it, so a node can
// report its dotted path:
//
//	root := ir.New("nodeconf")
//	editor := root.NewChild("editor")
//	tab := editor.NewChild("tabSize").WithAttr("type", "int").WithAttr("value", "4")
//	tab.Path() // "editor.tabSize"
//
// The tree carries no text content, comments or namespaces; it is purely the
// element structure that settings are read from and written back into.
//
// # Attributes
//
// Attributes keep their insertion order so that writing a tree back out is
// deterministic. SetAttr replaces the value of an existing attribute in
// place.
//
// # Paths
//
// Dotted paths join node names with Sep. Names containing a literal dot are
// not representable. ListPath collects every node reached by a path in
// document order, which is the order in which same-named siblings are
// addressed by index.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
package ir
