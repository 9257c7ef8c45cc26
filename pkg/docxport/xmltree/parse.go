package xmltree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoRoot is returned when a part contains no document element.
	ErrNoRoot = errors.New("no root element")
	// ErrMultipleRoots is returned when a part contains more than one
	// document element; a single XML part must have exactly one.
	ErrMultipleRoots = errors.New("multiple root elements")
)

// FromSerializedText parses the XML text of one part and converts it into a
// single root node.
func FromSerializedText(text string) (*Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}

	roots := doc.ChildElements()
	if len(roots) == 0 {
		return nil, ErrNoRoot
	}
	if len(roots) > 1 {
		return nil, ErrMultipleRoots
	}

	root := roots[0]
	nodes, err := Convert(root.FullTag(), valueOf(root))
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, ErrMultipleRoots
	}
	return nodes[0], nil
}

// valueOf adapts an etree element into the parser-shape tagged union.
// Consecutive same-named siblings group into a Sequence under one field, the
// way a schema-less parser folds repeated elements into list-valued keys.
func valueOf(el *etree.Element) Value {
	var fields []Field

	if len(el.Attr) > 0 {
		attrFields := make([]Field, len(el.Attr))
		for i, a := range el.Attr {
			attrFields[i] = Field{Name: a.FullKey(), Value: Text(a.Value)}
		}
		fields = append(fields, Field{Name: AttrKey, Value: Object{Fields: attrFields}})
	}

	hasElem := false
	for _, tok := range el.Child {
		if _, ok := tok.(*etree.Element); ok {
			hasElem = true
			break
		}
	}

	var run []*etree.Element
	flush := func() {
		if len(run) == 0 {
			return
		}
		if len(run) == 1 {
			fields = append(fields, Field{Name: run[0].FullTag(), Value: valueOf(run[0])})
		} else {
			seq := make(Sequence, len(run))
			for i, e := range run {
				seq[i] = valueOf(e)
			}
			fields = append(fields, Field{Name: run[0].FullTag(), Value: seq})
		}
		run = nil
	}
	for _, tok := range el.Child {
		switch c := tok.(type) {
		case *etree.Element:
			if len(run) > 0 && run[len(run)-1].FullTag() != c.FullTag() {
				flush()
			}
			run = append(run, c)
		case *etree.CharData:
			// Indentation between element children is formatting, not
			// content. Text is only significant when the element holds no
			// element children, or when it is non-blank mixed content.
			if hasElem && strings.TrimSpace(c.Data) == "" {
				continue
			}
			if c.Data == "" {
				continue
			}
			flush()
			fields = append(fields, Field{Name: "", Value: Text(c.Data)})
		}
	}
	flush()

	if len(fields) == 0 {
		return Empty{}
	}
	if len(fields) == 1 && fields[0].Name == "" {
		return fields[0].Value
	}
	return Object{Fields: fields}
}

// Element renders the node as an etree element ready for the downstream
// serializer. Attributes become real XML attributes again; children are
// emitted in their original order.
func (n *Node) Element() *etree.Element {
	el := etree.NewElement(n.Name)
	for _, a := range n.Attrs {
		el.CreateAttr(a.Name, a.Value)
	}
	for _, c := range n.Children {
		switch child := c.(type) {
		case *Node:
			el.AddChild(child.Element())
		case TextContent:
			el.CreateText(string(child))
		}
	}
	return el
}

// XML serializes the node as a standalone XML part body.
func (n *Node) XML() (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(n.Element())
	return doc.WriteToString()
}
