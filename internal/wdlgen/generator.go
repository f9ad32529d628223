package wdlgen

import (
	"fmt"

	"github.com/tcollier/taskgen/internal/climodel"
	"github.com/tcollier/taskgen/internal/convert"
	"github.com/tcollier/taskgen/internal/wdl"
)

// reservedWords is the WDL 1.0 keyword list, segmented for word-level
// comparison. Read-only after init; shared across concurrent runs.
var reservedWords = convert.NewReservedWords([]string{
	"version", "import", "as", "alias", "task", "workflow", "struct",
	"call", "if", "then", "else", "scatter", "in", "input", "output",
	"command", "runtime", "meta", "parameter_meta", "hints",
	"true", "false", "object", "left", "right",
	"Int", "Float", "Boolean", "String", "File", "Directory",
	"Array", "Map", "Pair", "Object", "None",
})

// Options configure a Generator. Fixed at construction; a Generator is
// stateless across Task calls.
type Options struct {
	// Convention is the identifier style for input names. Defaults to
	// snake_case, the WDL idiom.
	Convention convert.Convention
	// IgnorePositionals drops positional arguments from the generated
	// inputs, leaving only flags.
	IgnorePositionals bool
}

// Generator turns abstract CLI models into WDL task documents.
type Generator struct {
	opts Options
}

// New constructs a Generator, defaulting the naming convention.
func New(opts Options) *Generator {
	if opts.Convention == "" {
		opts.Convention = convert.Snake
	}
	return &Generator{opts: opts}
}

// Task generates the WDL task for one modeled command. Generation is
// atomic: if any argument's type cannot be represented, the whole
// document fails with the offending argument named, and nothing partial
// is returned. The output holds no references back into the model.
func (g *Generator) Task(cmd *climodel.Command) (*wdl.Task, error) {
	args := g.selectInputs(cmd)
	named := convert.ChooseNames(args, g.opts.Convention, reservedWords)

	inputs := make([]wdl.Input, 0, len(named))
	meta := make([]wdl.MetaEntry, 0, len(named))
	for _, na := range named {
		typ, err := MapType(na.Arg.Type(), na.Arg.Optional())
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", na.Arg.Name(), err)
		}
		inputs = append(inputs, wdl.Input{Type: typ, Name: na.Name})
		meta = append(meta, wdl.MetaEntry{Name: na.Name, Help: wdl.EscapeString(na.Arg.Description())})
	}

	name := convert.TaskName(cmd.Tokens)
	if name == "" {
		name = "Tool"
	}

	return &wdl.Task{
		Name:          name,
		Version:       "1.0",
		Inputs:        inputs,
		Command:       buildCommand(cmd, named),
		ParameterMeta: meta,
	}, nil
}

// selectInputs picks the arguments that become task inputs: all flags,
// plus positionals unless configured out. Flags first, positionals by
// slot, matching the command template's placeholder order.
func (g *Generator) selectInputs(cmd *climodel.Command) []climodel.Argument {
	var args []climodel.Argument
	for _, f := range cmd.Flags() {
		args = append(args, f)
	}
	if !g.opts.IgnorePositionals {
		for _, p := range cmd.Positionals() {
			args = append(args, p)
		}
	}
	return args
}
