package wdlgen

import (
	"github.com/tcollier/taskgen/internal/climodel"
	"github.com/tcollier/taskgen/internal/wdl"
)

// MapType converts an abstract value type to the closest WDL type
// expression. Every kind has a mapping; kinds this version does not know
// (a newer model file, say) fall back to String so old binaries keep
// generating. The only failure path is a heterogeneous tuple whose
// element types cannot be lowered.
func MapType(t *climodel.ValueType, optional bool) (wdl.Type, error) {
	switch t.Kind {
	case climodel.KindString, climodel.KindEnum:
		// Enums have no WDL counterpart and degrade to their textual form.
		return wdl.PrimitiveType(wdl.String, optional), nil
	case climodel.KindInteger:
		return wdl.PrimitiveType(wdl.Int, optional), nil
	case climodel.KindFloat:
		return wdl.PrimitiveType(wdl.Float, optional), nil
	case climodel.KindBoolean:
		return wdl.PrimitiveType(wdl.Boolean, optional), nil
	case climodel.KindFile:
		return wdl.PrimitiveType(wdl.File, optional), nil
	case climodel.KindDirectory:
		return wdl.PrimitiveType(wdl.Directory, optional), nil
	case climodel.KindList:
		elem, err := MapType(t.Element, false)
		if err != nil {
			return wdl.Type{}, err
		}
		return wdl.ArrayType(elem, optional), nil
	case climodel.KindTuple:
		// WDL has no fixed-arity structural type; tuples degrade to
		// arrays of one element type, lowered first when heterogeneous.
		if len(t.Elements) == 0 {
			return wdl.ArrayType(wdl.PrimitiveType(wdl.String, false), optional), nil
		}
		elemType := t.Elements[0]
		if !t.Homogenous {
			lowered, err := LowerCommonType(t.Elements)
			if err != nil {
				return wdl.Type{}, err
			}
			elemType = lowered
		}
		elem, err := MapType(elemType, false)
		if err != nil {
			return wdl.Type{}, err
		}
		return wdl.ArrayType(elem, optional), nil
	default:
		// KindDict included: no WDL mapping exists, stringify.
		return wdl.PrimitiveType(wdl.String, optional), nil
	}
}
