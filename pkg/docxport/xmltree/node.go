package xmltree

import "strings"

// Attr is a single attribute. The parse order is preserved.
type Attr struct {
	Name  string
	Value string
}

// Child represents any entry in a node's ordered child list
type Child interface {
	isChild()
}

// TextContent is a raw text fragment child.
type TextContent string

// Node is one XML element in the schema-less tree. The tree shape is fixed
// after conversion, except that callers may append further children to splice
// in resolved relationship content.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []Child
}

func (*Node) isChild()       {}
func (TextContent) isChild() {}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds children to the end of the child list.
func (n *Node) Append(children ...Child) {
	n.Children = append(n.Children, children...)
}

// Text returns the concatenated text content of the node's direct children.
func (n *Node) Text() string {
	var b strings.Builder
	for _, c := range n.Children {
		if t, ok := c.(TextContent); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// ChildElements returns the element children in order, skipping text.
func (n *Node) ChildElements() []*Node {
	var elems []*Node
	for _, c := range n.Children {
		if e, ok := c.(*Node); ok {
			elems = append(elems, e)
		}
	}
	return elems
}

// FindFirst returns the first descendant element reached by following the
// given child names from this node, depth-first through the named path.
func (n *Node) FindFirst(path ...string) *Node {
	cur := n
	for _, name := range path {
		var next *Node
		for _, e := range cur.ChildElements() {
			if e.Name == name {
				next = e
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
