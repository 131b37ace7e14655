// Package xmldoc reads and writes XML documents as *ir.Node trees.
//
// Only elements and attributes are carried over. Character data, comments
// and directives are dropped on Parse; the XML declaration is kept and
// written back by WriteTo, which indents nested elements by two spaces.
package xmldoc
