// Package wdlgen is the WDL backend: it lowers abstract value types onto
// WDL's type grammar, names inputs, rebuilds the invocation as a command
// template, and assembles the final task document.
package wdlgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tcollier/taskgen/internal/climodel"
)

// NoCommonTypeError reports a heterogeneous element set with no safe
// common representation. Generation of the whole document aborts rather
// than emitting a partially-typed task.
type NoCommonTypeError struct {
	// Kinds are the distinct offending kinds, sorted for stable text.
	Kinds []climodel.Kind
}

func (e *NoCommonTypeError) Error() string {
	names := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		names[i] = string(k)
	}
	return "no common type between " + strings.Join(names, ", ")
}

// structuredKinds cannot be coerced into one another, or into a scalar,
// without loss.
var structuredKinds = map[climodel.Kind]bool{
	climodel.KindDirectory: true,
	climodel.KindDict:      true,
	climodel.KindFile:      true,
	climodel.KindTuple:     true,
	climodel.KindList:      true,
}

// LowerCommonType reduces a non-empty set of value types to one type that
// can safely stand in for all of them, in strict priority order: a single
// distinct kind is returned unchanged, an integer/float mix widens to
// float, any structured kind refuses unification, and remaining scalar
// mixes fall back to string (every scalar has a lossless textual form).
// The result is invariant under reordering of the input.
func LowerCommonType(types []*climodel.ValueType) (*climodel.ValueType, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("no types to lower")
	}

	distinct := make(map[climodel.Kind]bool, len(types))
	for _, t := range types {
		distinct[t.Kind] = true
	}

	if len(distinct) == 1 {
		return types[0], nil
	}

	if len(distinct) == 2 && distinct[climodel.KindInteger] && distinct[climodel.KindFloat] {
		return climodel.Scalar(climodel.KindFloat), nil
	}

	for k := range distinct {
		if structuredKinds[k] {
			return nil, &NoCommonTypeError{Kinds: sortedKinds(distinct)}
		}
	}

	return climodel.Scalar(climodel.KindString), nil
}

func sortedKinds(set map[climodel.Kind]bool) []climodel.Kind {
	kinds := make([]climodel.Kind, 0, len(set))
	for k := range set {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
