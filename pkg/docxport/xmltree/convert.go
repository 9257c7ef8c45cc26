package xmltree

import "fmt"

// Convert translates a parsed value into generic nodes named after the
// element that produced it. A Sequence fans out into one node per entry,
// flattened a single level; an Object becomes one node carrying the reserved
// attribute field as its attribute set and every remaining field as children;
// non-empty Text becomes one node with a single text child; Empty and empty
// Text become a childless node.
func Convert(name string, v Value) ([]*Node, error) {
	switch val := v.(type) {
	case Sequence:
		nodes := make([]*Node, 0, len(val))
		for _, item := range val {
			converted, err := Convert(name, item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, converted...)
		}
		return nodes, nil
	case Object:
		n := &Node{Name: name}
		for _, f := range val.Fields {
			switch {
			case f.Name == AttrKey:
				attrs, err := attrsFromValue(f.Value)
				if err != nil {
					return nil, fmt.Errorf("element %q: %w", name, err)
				}
				n.Attrs = attrs
			case f.Name == "":
				if t, ok := f.Value.(Text); ok && t != "" {
					n.Children = append(n.Children, TextContent(t))
				}
			default:
				kids, err := Convert(f.Name, f.Value)
				if err != nil {
					return nil, err
				}
				for _, k := range kids {
					n.Children = append(n.Children, k)
				}
			}
		}
		return []*Node{n}, nil
	case Text:
		n := &Node{Name: name}
		if val != "" {
			n.Children = []Child{TextContent(val)}
		}
		return []*Node{n}, nil
	case Empty, nil:
		return []*Node{{Name: name}}, nil
	default:
		return nil, fmt.Errorf("element %q: unsupported parsed value %T", name, v)
	}
}

// Serializable converts a node back into the shape the downstream serializer
// expects: Empty for a bare node, Text for a pure text node without
// attributes, and otherwise an Object whose first field is the reserved
// attribute entry when attributes are present. Consecutive children sharing a
// name collapse back into a Sequence so that Convert(Serializable(n))
// reproduces n.
func Serializable(n *Node) Value {
	if len(n.Attrs) == 0 && len(n.Children) == 0 {
		return Empty{}
	}
	if len(n.Attrs) == 0 && len(n.Children) == 1 {
		if t, ok := n.Children[0].(TextContent); ok {
			return Text(t)
		}
	}

	var fields []Field
	if len(n.Attrs) > 0 {
		fields = append(fields, Field{Name: AttrKey, Value: attrValue(n.Attrs)})
	}

	// Collapse runs of same-named element children into sequences. Only
	// consecutive runs collapse: regrouping across other children would
	// reorder the document.
	var run []*Node
	flush := func() {
		if len(run) == 0 {
			return
		}
		if len(run) == 1 {
			fields = append(fields, Field{Name: run[0].Name, Value: Serializable(run[0])})
		} else {
			seq := make(Sequence, len(run))
			for i, e := range run {
				seq[i] = Serializable(e)
			}
			fields = append(fields, Field{Name: run[0].Name, Value: seq})
		}
		run = nil
	}
	for _, c := range n.Children {
		switch child := c.(type) {
		case *Node:
			if len(run) > 0 && run[len(run)-1].Name != child.Name {
				flush()
			}
			run = append(run, child)
		case TextContent:
			flush()
			fields = append(fields, Field{Name: "", Value: Text(child)})
		}
	}
	flush()

	return Object{Fields: fields}
}

func attrsFromValue(v Value) ([]Attr, error) {
	obj, ok := v.(Object)
	if !ok {
		return nil, fmt.Errorf("attribute set must be a keyed structure, got %T", v)
	}
	attrs := make([]Attr, 0, len(obj.Fields))
	for _, f := range obj.Fields {
		t, ok := f.Value.(Text)
		if !ok {
			return nil, fmt.Errorf("attribute %q must be scalar, got %T", f.Name, f.Value)
		}
		attrs = append(attrs, Attr{Name: f.Name, Value: string(t)})
	}
	return attrs, nil
}

func attrValue(attrs []Attr) Object {
	fields := make([]Field, len(attrs))
	for i, a := range attrs {
		fields[i] = Field{Name: a.Name, Value: Text(a.Value)}
	}
	return Object{Fields: fields}
}
