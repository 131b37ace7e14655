// Package codec maps between Go values and type-tagged document nodes.
//
// # Overview
//
// A setting is persisted as a node whose type attribute names its
// encoding:
//
//	<tabSize type="int" value="4"/>
//	<mode type="enum" definition="example.com/editor.Mode" value="Insert"/>
//	<recent type="list" content="string">
//	  <item type="string" value="a.txt"/>
//	  <item type="string" value="b.txt"/>
//	</recent>
//
// Each encoding is implemented by a Parser. A Registry indexes parsers by
// tag, for reading, and by Go type, for writing:
//
//	reg := codec.NewRegistry()
//	if err := codec.RegisterBuiltins(reg); err != nil {
//	    return err
//	}
//	v, ok := reg.Decode(node)
//	err := reg.Encode(node, []string{"a.txt", "b.txt"})
//
// # Subtype fallback
//
// Values whose exact type has no parser are offered to the parsers that
// can parse children, in registration order. A parser accepts a type when
// its declared type is an interface the type implements, or when both are
// slices with accepted element types; see Accepts. This is how any
// fmt.Stringer enum reaches the enum parser and any slice reaches the list
// parser. When several parsers accept a type, the first registered wins.
//
// # Failures
//
// Decoding never fails loudly: malformed nodes, unknown tags and parser
// panics are logged through package debug and reported as (nil, false).
// Encoding failures are logged and returned as errors.
//
// # Thread Safety
//
// A Registry may be used from multiple goroutines. Registration is
// normally done once at startup.
package codec
