// Package climodel holds the language-agnostic model of a command-line
// tool's interface: its invocation tokens, its arguments, and the abstract
// value types those arguments accept. The model is produced by an external
// introspection step (or loaded from a model file, see load.go) and is
// read-only input to the generator.
package climodel

import "strings"

// Kind identifies one variant of the abstract value-type system.
type Kind string

const (
	KindString    Kind = "string"
	KindInteger   Kind = "integer"
	KindFloat     Kind = "float"
	KindBoolean   Kind = "boolean"
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
	KindEnum      Kind = "enum"
	KindList      Kind = "list"
	KindTuple     Kind = "tuple"
	KindDict      Kind = "dict"
)

// ValueType is one node in an abstract type tree. Exactly one of the
// parameter fields is populated depending on Kind: Element for lists,
// Elements for tuples, Key/Value for dicts. Scalar kinds carry none.
type ValueType struct {
	Kind Kind

	// Element is the element type of a list.
	Element *ValueType
	// Elements are the ordered element types of a tuple.
	Elements []*ValueType
	// Key and Value parameterize a dict.
	Key   *ValueType
	Value *ValueType

	// Homogenous is true iff all tuple elements are structurally
	// identical. Computed at construction time and trusted downstream.
	Homogenous bool

	// Choices are the known members of an enum, when the model recorded
	// them. Informational only; enums lower to strings.
	Choices []string
}

// Scalar returns an unparameterized type of the given kind.
func Scalar(kind Kind) *ValueType {
	return &ValueType{Kind: kind}
}

// List returns a list type with the given element type.
func List(element *ValueType) *ValueType {
	return &ValueType{Kind: KindList, Element: element}
}

// Tuple returns a tuple type over the given element types, computing the
// homogeneity flag from their structural equality.
func Tuple(elements ...*ValueType) *ValueType {
	t := &ValueType{Kind: KindTuple, Elements: elements, Homogenous: true}
	for _, e := range elements {
		if !e.Equal(elements[0]) {
			t.Homogenous = false
			break
		}
	}
	return t
}

// Dict returns a dict type with the given key and value types.
func Dict(key, value *ValueType) *ValueType {
	return &ValueType{Kind: KindDict, Key: key, Value: value}
}

// Equal reports structural equality of two type trees. Enum choices do
// not participate: two enums are the same type regardless of members.
func (t *ValueType) Equal(o *ValueType) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind || len(t.Elements) != len(o.Elements) {
		return false
	}
	if !t.Element.Equal(o.Element) || !t.Key.Equal(o.Key) || !t.Value.Equal(o.Value) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// String renders the type tree in a compact human-readable form, e.g.
// "list[tuple[integer, float]]". Used by inspect output and error text.
func (t *ValueType) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindList:
		return "list[" + t.Element.String() + "]"
	case KindTuple:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = e.String()
		}
		return "tuple[" + strings.Join(parts, ", ") + "]"
	case KindDict:
		return "dict[" + t.Key.String() + ", " + t.Value.String() + "]"
	default:
		return string(t.Kind)
	}
}
