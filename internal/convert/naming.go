package convert

import (
	"strconv"

	"github.com/tcollier/taskgen/internal/climodel"
	"github.com/tcollier/taskgen/internal/nlp"
)

// ReservedWords is a target language's keyword set, stored by segmented
// word tuple so that "fileName" and "file_name" both collide with a
// keyword spelled either way. Immutable after construction; safe to share
// across concurrent generation runs.
type ReservedWords map[string]struct{}

// NewReservedWords segments each keyword and builds the comparison set.
func NewReservedWords(words []string) ReservedWords {
	set := make(ReservedWords, len(words))
	for _, w := range words {
		set[segmentKey(w)] = struct{}{}
	}
	return set
}

// Collides reports whether the candidate's word tuple equals that of any
// reserved word.
func (r ReservedWords) Collides(candidate string) bool {
	_, ok := r[segmentKey(candidate)]
	return ok
}

func segmentKey(s string) string {
	key := ""
	for i, w := range nlp.Segment(s) {
		if i > 0 {
			key += " "
		}
		key += w
	}
	return key
}

// NamedArgument pairs a model argument with the identifier chosen for it
// in one generation run. Never persisted; names are not stable across
// runs if the model changes.
type NamedArgument struct {
	Arg  climodel.Argument
	Name string
}

// ChooseNames assigns every argument a legal, unique identifier in the
// convention that is not a reserved word. Arguments whose names sanitize
// to nothing get a synthetic name from their kind and slot. Reserved
// words take an "arg" suffix; duplicates take a numeric suffix in
// first-seen order, the first occurrence keeping the bare name.
func ChooseNames(args []climodel.Argument, conv Convention, reserved ReservedWords) []NamedArgument {
	taken := make(map[string]bool, len(args))
	named := make([]NamedArgument, 0, len(args))

	for i, arg := range args {
		base := ArgumentName(arg.Name(), conv)
		if base == "" {
			base = syntheticName(arg, i, conv)
		}
		if reserved.Collides(base) {
			base = conv.Join(append(nlp.Segment(base), "arg"))
		}

		name := base
		for n := 2; taken[name] || reserved.Collides(name); n++ {
			name = conv.Join(append(nlp.Segment(base), strconv.Itoa(n)))
		}
		taken[name] = true
		named = append(named, NamedArgument{Arg: arg, Name: name})
	}
	return named
}

// syntheticName covers arguments whose raw names hold no legal
// characters at all.
func syntheticName(arg climodel.Argument, ordinal int, conv Convention) string {
	if p, ok := arg.(*climodel.Positional); ok {
		return conv.Join([]string{"pos", strconv.Itoa(p.Position)})
	}
	return conv.Join([]string{"arg", strconv.Itoa(ordinal)})
}
