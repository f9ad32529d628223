package climodel

import "sort"

// Argument is one modeled CLI argument: either a *Flag or a *Positional.
// The set of implementations is closed; consumers dispatch with a type
// switch.
type Argument interface {
	// Name is the human-readable name recorded by the model, free text.
	Name() string
	// Description is the model's help text for the argument.
	Description() string
	// Type is the abstract value type the argument accepts.
	Type() *ValueType
	// Optional reports whether the argument may be omitted at invocation.
	Optional() bool

	argument()
}

// Flag is an argument introduced on the command line by one of its
// synonyms (e.g. -o / --output).
type Flag struct {
	RawName   string
	Desc      string
	ValueType *ValueType
	Opt       bool

	// Synonyms are the recorded spellings in first-seen order.
	Synonyms []string
	// TakesValue is false for bare boolean switches.
	TakesValue bool
}

func (f *Flag) Name() string {
	if f.RawName != "" {
		return f.RawName
	}
	return f.LongestSynonym()
}

func (f *Flag) Description() string { return f.Desc }
func (f *Flag) Type() *ValueType    { return f.ValueType }
func (f *Flag) Optional() bool      { return f.Opt }
func (f *Flag) argument()           {}

// LongestSynonym returns the spelling with the greatest character length,
// keeping the first-seen spelling on ties. The longer form is the more
// descriptive one and is what generated documents embed.
func (f *Flag) LongestSynonym() string {
	best := ""
	for _, s := range f.Synonyms {
		if len(s) > len(best) {
			best = s
		}
	}
	return best
}

// Positional is an argument identified by its slot in the invocation.
type Positional struct {
	RawName   string
	Desc      string
	ValueType *ValueType
	Opt       bool

	// Position is the zero-based slot index.
	Position int
}

func (p *Positional) Name() string        { return p.RawName }
func (p *Positional) Description() string { return p.Desc }
func (p *Positional) Type() *ValueType    { return p.ValueType }
func (p *Positional) Optional() bool      { return p.Opt }
func (p *Positional) argument()           {}

// Command is the invocation template of one modeled tool: the literal
// tokens (executable plus static subcommand words) and the arguments.
// Immutable input to the generator.
type Command struct {
	Tokens    []string
	Arguments []Argument
}

// Flags returns the flag-style arguments in model order.
func (c *Command) Flags() []*Flag {
	var flags []*Flag
	for _, a := range c.Arguments {
		if f, ok := a.(*Flag); ok {
			flags = append(flags, f)
		}
	}
	return flags
}

// Positionals returns the positional arguments ordered by slot.
func (c *Command) Positionals() []*Positional {
	var pos []*Positional
	for _, a := range c.Arguments {
		if p, ok := a.(*Positional); ok {
			pos = append(pos, p)
		}
	}
	sort.SliceStable(pos, func(i, j int) bool { return pos[i].Position < pos[j].Position })
	return pos
}
