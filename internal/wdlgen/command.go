package wdlgen

import (
	"sort"
	"strings"

	"github.com/tcollier/taskgen/internal/climodel"
	"github.com/tcollier/taskgen/internal/convert"
	"github.com/tcollier/taskgen/internal/wdl"
)

// buildCommand rebuilds the literal invocation as a command template:
// stripped literal tokens, then positional placeholders ordered by slot,
// then flag placeholders in model order.
func buildCommand(cmd *climodel.Command, named []convert.NamedArgument) wdl.Command {
	tokens := make([]string, 0, len(cmd.Tokens))
	for _, tok := range cmd.Tokens {
		// Tokens with no legal characters would leave stray spaces.
		if stripped := convert.SanitizeIdentifier(tok); stripped != "" {
			tokens = append(tokens, stripped)
		}
	}

	var positionals, flags []wdl.CommandInput
	for _, na := range named {
		switch na.Arg.(type) {
		case *climodel.Positional:
			positionals = append(positionals, commandInput(na))
		case *climodel.Flag:
			flags = append(flags, commandInput(na))
		}
	}
	sortByPosition(positionals)

	return wdl.Command{
		Base:      strings.Join(tokens, " "),
		Inputs:    positionals,
		Arguments: flags,
	}
}

// commandInput builds the placeholder for one named argument. A bare
// switch records its longest synonym as the "true" token; a valued flag
// records it as the prefix concatenated with the bound value. Positional
// slots are structural and never optional here, whatever the model says
// about the value.
func commandInput(na convert.NamedArgument) wdl.CommandInput {
	switch arg := na.Arg.(type) {
	case *climodel.Flag:
		ci := wdl.CommandInput{Name: na.Name, Optional: arg.Opt}
		if arg.TakesValue {
			ci.Prefix = arg.LongestSynonym()
		} else {
			ci.True = arg.LongestSynonym()
			ci.False = ""
		}
		return ci
	case *climodel.Positional:
		return wdl.CommandInput{Name: na.Name, Position: arg.Position, Optional: false}
	default:
		return wdl.CommandInput{Name: na.Name}
	}
}

func sortByPosition(inputs []wdl.CommandInput) {
	sort.SliceStable(inputs, func(i, j int) bool { return inputs[i].Position < inputs[j].Position })
}
