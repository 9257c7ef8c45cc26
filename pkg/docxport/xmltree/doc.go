// Package xmltree provides a schema-less XML tree representation for DOCX parts.
//
// DOCX parts such as headers and footers contain XML the importer does not
// interpret (drawings, field codes, vendor extensions). To re-emit those parts
// without data loss, this package converts arbitrary XML into an untyped,
// ordered tree of Node values and back, preserving element names, attribute
// sets and child order even for elements nothing else in the importer
// understands.
//
// # Key Concepts
//
// Value is the tagged union of shapes a schema-less XML parse can yield:
// Sequence (repeated sibling elements), Object (ordered keyed structure),
// Text (scalar character content) and Empty (no content). The upstream parser
// adapter in parse.go produces these from etree documents.
//
// Node is one XML element: a name, an ordered attribute list and an ordered
// list of children, each either a nested *Node or a TextContent fragment.
//
// Convert translates a Value into Nodes; Serializable is its inverse. Within
// an Object, an element's attribute set travels under the reserved AttrKey
// field because the downstream serializer only understands ordered field
// lists. Internally attributes always live in the typed Node.Attrs slice,
// never in the children list.
package xmltree
