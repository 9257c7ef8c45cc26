package xmltree

// AttrKey is the reserved field name under which an element's attribute set
// travels inside an Object. It is not a valid XML element name, so it can
// never collide with a real child element.
const AttrKey = "__attrs__"

// Value is the schema-less shape produced by the upstream XML parser adapter.
// Exactly four shapes exist; the converter pattern-matches all of them.
type Value interface {
	isValue()
}

// Sequence models repeated sibling elements sharing one name.
type Sequence []Value

// Field is one named entry of an Object, in source order. A Field with an
// empty Name carries character data interleaved with element children.
type Field struct {
	Name  string
	Value Value
}

// Object is an ordered keyed structure: an element's attribute set (under
// AttrKey) followed by its children.
type Object struct {
	Fields []Field
}

// Text is scalar character content.
type Text string

// Empty marks an element with no attributes and no content.
type Empty struct{}

func (Sequence) isValue() {}
func (Object) isValue()   {}
func (Text) isValue()     {}
func (Empty) isValue()    {}

// Get returns the first field with the given name.
func (o Object) Get(name string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
