package wdl

import (
	"fmt"
	"strings"
)

// Input declares one task input.
type Input struct {
	Type Type
	Name string
}

// CommandInput is one argument placeholder inside the command block.
// Exactly one shape is populated: True/False for a bare switch, Prefix
// for a valued flag, neither for a positional slot.
type CommandInput struct {
	Name     string
	Optional bool
	// Prefix is the literal flag text prepended to the bound value.
	Prefix string
	// True and False are the tokens emitted for a boolean switch.
	True  string
	False string
	// Position is the slot index for positionals.
	Position int
}

// Command is a task's command block: the literal invocation followed by
// positional placeholders, then flag placeholders.
type Command struct {
	Base      string
	Inputs    []CommandInput
	Arguments []CommandInput
}

// MetaEntry is one parameter_meta line. Order is preserved as declared.
type MetaEntry struct {
	Name string
	Help string
}

// Task is a complete WDL task document.
type Task struct {
	Name          string
	Version       string
	Inputs        []Input
	Command       Command
	ParameterMeta []MetaEntry
}

// EscapeString escapes literal quotes so text can sit inside a WDL string
// literal. No other transformation is applied.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Document renders the task as WDL 1.0 source text.
func (t *Task) Document() string {
	var b strings.Builder

	fmt.Fprintf(&b, "version %s\n\n", t.Version)
	fmt.Fprintf(&b, "task %s {\n", t.Name)

	if len(t.Inputs) > 0 {
		b.WriteString("  input {\n")
		for _, in := range t.Inputs {
			fmt.Fprintf(&b, "    %s %s\n", in.Type.String(), in.Name)
		}
		b.WriteString("  }\n")
	}

	b.WriteString("  command <<<\n")
	b.WriteString("    " + t.Command.render())
	b.WriteString("\n  >>>\n")

	if len(t.ParameterMeta) > 0 {
		b.WriteString("  parameter_meta {\n")
		for _, m := range t.ParameterMeta {
			fmt.Fprintf(&b, "    %s: \"%s\"\n", m.Name, m.Help)
		}
		b.WriteString("  }\n")
	}

	b.WriteString("}\n")
	return b.String()
}

func (c *Command) render() string {
	lines := []string{c.Base}
	for _, ci := range c.Inputs {
		lines = append(lines, ci.placeholder())
	}
	for _, ci := range c.Arguments {
		lines = append(lines, ci.placeholder())
	}
	return strings.Join(lines, " \\\n      ")
}

func (ci CommandInput) placeholder() string {
	switch {
	case ci.True != "":
		return fmt.Sprintf("~{true=%q false=%q %s}", ci.True, ci.False, ci.Name)
	case ci.Prefix != "":
		// Concatenation with an unset optional yields the empty string
		// in a command block, so absent flags vanish from the line.
		return fmt.Sprintf("~{%q + %s}", ci.Prefix+" ", ci.Name)
	default:
		return fmt.Sprintf("~{%s}", ci.Name)
	}
}
