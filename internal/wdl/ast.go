// Package wdl models the subset of WDL 1.0 documents taskgen emits and
// renders them to text. It plays the role the target language's own AST
// library would: the generator hands it a finished task and never touches
// serialization itself.
package wdl

import "strings"

// PrimitiveKind names a WDL primitive type.
type PrimitiveKind string

const (
	String    PrimitiveKind = "String"
	Int       PrimitiveKind = "Int"
	Float     PrimitiveKind = "Float"
	Boolean   PrimitiveKind = "Boolean"
	File      PrimitiveKind = "File"
	Directory PrimitiveKind = "Directory"
)

// Type is a WDL type expression: a primitive when Item is nil, otherwise
// Array[Item]. Optional renders the ? quantifier; NonEmpty renders the +
// quantifier on arrays. The two are mutually exclusive in WDL and the
// generator never sets both.
type Type struct {
	Primitive PrimitiveKind
	Item      *Type
	Optional  bool
	NonEmpty  bool
}

// PrimitiveType constructs a scalar type expression.
func PrimitiveType(kind PrimitiveKind, optional bool) Type {
	return Type{Primitive: kind, Optional: optional}
}

// ArrayType constructs an Array over item. A required array carries the
// non-empty quantifier; an optional one carries ? instead.
func ArrayType(item Type, optional bool) Type {
	return Type{Item: &item, Optional: optional, NonEmpty: !optional}
}

// String renders the type expression, e.g. "Array[Array[Int]+]?".
func (t Type) String() string {
	var b strings.Builder
	if t.Item != nil {
		b.WriteString("Array[")
		b.WriteString(t.Item.String())
		b.WriteString("]")
		if t.NonEmpty {
			b.WriteString("+")
		}
	} else {
		b.WriteString(string(t.Primitive))
	}
	if t.Optional {
		b.WriteString("?")
	}
	return b.String()
}
