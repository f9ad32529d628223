package wdlgen

import (
	"errors"
	"testing"

	"github.com/tcollier/taskgen/internal/climodel"
)

func TestMapTypeScalars(t *testing.T) {
	tests := []struct {
		name     string
		typ      *climodel.ValueType
		optional bool
		want     string
	}{
		{name: "string", typ: climodel.Scalar(climodel.KindString), want: "String"},
		{name: "integer", typ: climodel.Scalar(climodel.KindInteger), want: "Int"},
		{name: "float", typ: climodel.Scalar(climodel.KindFloat), want: "Float"},
		{name: "boolean", typ: climodel.Scalar(climodel.KindBoolean), want: "Boolean"},
		{name: "file", typ: climodel.Scalar(climodel.KindFile), want: "File"},
		{name: "directory", typ: climodel.Scalar(climodel.KindDirectory), want: "Directory"},
		{name: "enum degrades to string", typ: climodel.Scalar(climodel.KindEnum), want: "String"},
		{name: "optional file", typ: climodel.Scalar(climodel.KindFile), optional: true, want: "File?"},
		{name: "dict stringifies", typ: climodel.Dict(climodel.Scalar(climodel.KindString), climodel.Scalar(climodel.KindInteger)), want: "String"},
		{name: "unknown kind stringifies", typ: &climodel.ValueType{Kind: "uuid"}, want: "String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapType(tt.typ, tt.optional)
			if err != nil {
				t.Fatalf("MapType() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("MapType() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestMapTypeNestedLists(t *testing.T) {
	typ := climodel.List(climodel.List(climodel.Scalar(climodel.KindInteger)))

	got, err := MapType(typ, true)
	if err != nil {
		t.Fatalf("MapType() error = %v", err)
	}

	// The outer wrapper is optional; nested elements are not.
	if want := "Array[Array[Int]+]?"; got.String() != want {
		t.Errorf("MapType() = %q, want %q", got.String(), want)
	}
	if !got.Optional {
		t.Error("outer array should be optional")
	}
	if got.Item.Optional || got.Item.Item.Optional {
		t.Error("nested types should not inherit optionality")
	}
}

func TestMapTypeTuples(t *testing.T) {
	tests := []struct {
		name     string
		typ      *climodel.ValueType
		optional bool
		want     string
	}{
		{
			name: "homogenous tuple",
			typ:  climodel.Tuple(climodel.Scalar(climodel.KindString), climodel.Scalar(climodel.KindString)),
			want: "Array[String]+",
		},
		{
			name: "heterogeneous numeric tuple lowers to float",
			typ:  climodel.Tuple(climodel.Scalar(climodel.KindInteger), climodel.Scalar(climodel.KindFloat)),
			want: "Array[Float]+",
		},
		{
			name:     "optional tuple",
			typ:      climodel.Tuple(climodel.Scalar(climodel.KindInteger), climodel.Scalar(climodel.KindInteger)),
			optional: true,
			want:     "Array[Int]?",
		},
		{
			name: "heterogeneous scalar tuple stringifies",
			typ:  climodel.Tuple(climodel.Scalar(climodel.KindString), climodel.Scalar(climodel.KindBoolean)),
			want: "Array[String]+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapType(tt.typ, tt.optional)
			if err != nil {
				t.Fatalf("MapType() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("MapType() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestMapTypeTupleNoCommonType(t *testing.T) {
	typ := climodel.Tuple(climodel.Scalar(climodel.KindFile), climodel.Scalar(climodel.KindString))

	_, err := MapType(typ, false)
	var nct *NoCommonTypeError
	if !errors.As(err, &nct) {
		t.Fatalf("MapType() error = %v, want NoCommonTypeError", err)
	}
}
