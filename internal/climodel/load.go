package climodel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rawModel mirrors the on-disk model file layout.
type rawModel struct {
	Tool      rawTool       `yaml:"tool"`
	Arguments []rawArgument `yaml:"arguments"`
}

type rawTool struct {
	Command []string `yaml:"command"`
}

type rawArgument struct {
	Kind        string   `yaml:"kind"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Optional    bool     `yaml:"optional"`
	Synonyms    []string `yaml:"synonyms"`
	TakesValue  *bool    `yaml:"takes_value"`
	Position    *int     `yaml:"position"`
	Type        *rawType `yaml:"type"`
}

type rawType struct {
	Kind     string     `yaml:"kind"`
	Element  *rawType   `yaml:"element"`
	Elements []*rawType `yaml:"elements"`
	Key      *rawType   `yaml:"key"`
	Value    *rawType   `yaml:"value"`
	Choices  []string   `yaml:"choices"`
}

// Load reads and parses a YAML model file.
func Load(path string) (*Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML model into a Command, validating kind tags and
// recomputing tuple homogeneity. The homogeneity flag is derived state
// and is never read from the file.
func Parse(data []byte) (*Command, error) {
	var raw rawModel
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}

	if len(raw.Tool.Command) == 0 {
		return nil, fmt.Errorf("model error: missing 'tool.command'\n\nHint: List the invocation tokens, e.g.\n  tool:\n    command: [\"bwa\", \"mem\"]")
	}

	cmd := &Command{Tokens: raw.Tool.Command}
	for i, ra := range raw.Arguments {
		arg, err := buildArgument(ra)
		if err != nil {
			return nil, fmt.Errorf("model error: argument %d: %w", i, err)
		}
		cmd.Arguments = append(cmd.Arguments, arg)
	}

	if err := validatePositions(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func buildArgument(ra rawArgument) (Argument, error) {
	typ, err := buildType(ra.Type)
	if err != nil {
		return nil, err
	}

	switch ra.Kind {
	case "flag":
		if len(ra.Synonyms) == 0 {
			return nil, fmt.Errorf("flag %q has no synonyms\n\nHint: Record at least one spelling, e.g.\n  synonyms: [\"-o\", \"--output\"]", ra.Name)
		}
		takesValue := typ != nil
		if ra.TakesValue != nil {
			takesValue = *ra.TakesValue
		}
		if typ == nil {
			// A bare switch is a boolean.
			typ = Scalar(KindBoolean)
		}
		return &Flag{
			RawName:    ra.Name,
			Desc:       ra.Description,
			ValueType:  typ,
			Opt:        ra.Optional,
			Synonyms:   ra.Synonyms,
			TakesValue: takesValue,
		}, nil
	case "positional":
		if ra.Position == nil {
			return nil, fmt.Errorf("positional %q has no position\n\nHint: Give the zero-based slot, e.g.\n  position: 0", ra.Name)
		}
		if *ra.Position < 0 {
			return nil, fmt.Errorf("positional %q has negative position %d", ra.Name, *ra.Position)
		}
		if typ == nil {
			typ = Scalar(KindString)
		}
		return &Positional{
			RawName:   ra.Name,
			Desc:      ra.Description,
			ValueType: typ,
			Opt:       ra.Optional,
			Position:  *ra.Position,
		}, nil
	default:
		return nil, fmt.Errorf("unknown argument kind %q\n\nHint: Valid kinds are \"flag\" and \"positional\"", ra.Kind)
	}
}

func buildType(rt *rawType) (*ValueType, error) {
	if rt == nil {
		return nil, nil
	}
	switch Kind(rt.Kind) {
	case KindString, KindInteger, KindFloat, KindBoolean, KindFile, KindDirectory:
		return Scalar(Kind(rt.Kind)), nil
	case KindEnum:
		t := Scalar(KindEnum)
		t.Choices = rt.Choices
		return t, nil
	case KindList:
		if rt.Element == nil {
			return nil, fmt.Errorf("list type has no element")
		}
		elem, err := buildType(rt.Element)
		if err != nil {
			return nil, err
		}
		return List(elem), nil
	case KindTuple:
		if len(rt.Elements) == 0 {
			return nil, fmt.Errorf("tuple type has no elements")
		}
		elems := make([]*ValueType, 0, len(rt.Elements))
		for _, re := range rt.Elements {
			e, err := buildType(re)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		return Tuple(elems...), nil
	case KindDict:
		if rt.Key == nil || rt.Value == nil {
			return nil, fmt.Errorf("dict type needs both key and value")
		}
		key, err := buildType(rt.Key)
		if err != nil {
			return nil, err
		}
		val, err := buildType(rt.Value)
		if err != nil {
			return nil, err
		}
		return Dict(key, val), nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", rt.Kind)
	}
}

func validatePositions(cmd *Command) error {
	seen := make(map[int]string)
	for _, p := range cmd.Positionals() {
		if prev, ok := seen[p.Position]; ok {
			return fmt.Errorf("model error: positionals %q and %q share position %d", prev, p.RawName, p.Position)
		}
		seen[p.Position] = p.RawName
	}
	return nil
}
