package wdlgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tcollier/taskgen/internal/climodel"
	"github.com/tcollier/taskgen/internal/convert"
)

func sampleCommand() *climodel.Command {
	return &climodel.Command{
		Tokens: []string{"my@tool", "run"},
		Arguments: []climodel.Argument{
			&climodel.Flag{
				RawName:    "output file",
				Desc:       `write "all" output here`,
				ValueType:  climodel.Scalar(climodel.KindFile),
				Opt:        true,
				Synonyms:   []string{"-o", "--output"},
				TakesValue: true,
			},
			&climodel.Flag{
				RawName:   "verbose",
				Desc:      "chatty logging",
				ValueType: climodel.Scalar(climodel.KindBoolean),
				Opt:       true,
				Synonyms:  []string{"-v"},
			},
			&climodel.Flag{
				RawName:    "input",
				Desc:       "query name",
				ValueType:  climodel.Scalar(climodel.KindString),
				Opt:        true,
				Synonyms:   []string{"-i", "--input"},
				TakesValue: true,
			},
			&climodel.Positional{
				RawName:   "reference",
				Desc:      "reference genome",
				ValueType: climodel.Scalar(climodel.KindFile),
				Opt:       true,
				Position:  0,
			},
		},
	}
}

func TestGenerateTask(t *testing.T) {
	task, err := New(Options{}).Task(sampleCommand())
	require.NoError(t, err)

	require.Equal(t, "MytoolRun", task.Name)
	require.Equal(t, "1.0", task.Version)
	require.Equal(t, "mytool run", task.Command.Base)

	names := make([]string, len(task.Inputs))
	for i, in := range task.Inputs {
		names[i] = in.Name
	}
	require.Equal(t, []string{"output_file", "verbose", "input_arg", "reference"}, names)

	require.Equal(t, "File?", task.Inputs[0].Type.String())
	require.Equal(t, "Boolean?", task.Inputs[1].Type.String())
	// The optional positional keeps value-level optionality in its type;
	// only its command placeholder is structural (checked below).
	require.Equal(t, "File?", task.Inputs[3].Type.String())

	// Valued flags carry their longest synonym as prefix; switches carry
	// it as the true token.
	require.Equal(t, "--output", task.Command.Arguments[0].Prefix)
	require.Equal(t, "-v", task.Command.Arguments[1].True)
	require.Equal(t, "", task.Command.Arguments[1].False)

	// Positional slots are structural: never optional in the template,
	// whatever the model's optional flag said.
	require.Len(t, task.Command.Inputs, 1)
	require.False(t, task.Command.Inputs[0].Optional)
	require.Equal(t, 0, task.Command.Inputs[0].Position)

	// Descriptions are quote-escaped and keyed by chosen name.
	require.Equal(t, "output_file", task.ParameterMeta[0].Name)
	require.Equal(t, `write \"all\" output here`, task.ParameterMeta[0].Help)
}

func TestGenerateTaskNoReservedOrDuplicateNames(t *testing.T) {
	task, err := New(Options{}).Task(sampleCommand())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, in := range task.Inputs {
		require.NotEmpty(t, in.Name)
		require.False(t, seen[in.Name], "duplicate input name %q", in.Name)
		require.False(t, reservedWords.Collides(in.Name), "reserved input name %q", in.Name)
		seen[in.Name] = true
	}
}

func TestGenerateTaskCollidingRawNames(t *testing.T) {
	cmd := &climodel.Command{
		Tokens: []string{"tool"},
		Arguments: []climodel.Argument{
			&climodel.Flag{RawName: "out file", Synonyms: []string{"-a"}, ValueType: climodel.Scalar(climodel.KindString), TakesValue: true},
			&climodel.Flag{RawName: "out-file", Synonyms: []string{"-b"}, ValueType: climodel.Scalar(climodel.KindString), TakesValue: true},
		},
	}

	task, err := New(Options{}).Task(cmd)
	require.NoError(t, err)
	require.Equal(t, "out_file", task.Inputs[0].Name)
	require.Equal(t, "out_file_2", task.Inputs[1].Name)
}

func TestGenerateTaskSynonymTieBreak(t *testing.T) {
	cmd := &climodel.Command{
		Tokens: []string{"tool"},
		Arguments: []climodel.Argument{
			&climodel.Flag{RawName: "axis", Synonyms: []string{"-x", "-y"}, ValueType: climodel.Scalar(climodel.KindString), TakesValue: true},
		},
	}

	task, err := New(Options{}).Task(cmd)
	require.NoError(t, err)
	require.Equal(t, "-x", task.Command.Arguments[0].Prefix)
}

func TestGenerateTaskAbortsOnNoCommonType(t *testing.T) {
	cmd := &climodel.Command{
		Tokens: []string{"tool"},
		Arguments: []climodel.Argument{
			&climodel.Flag{
				RawName:    "span",
				Synonyms:   []string{"--span"},
				ValueType:  climodel.Tuple(climodel.Scalar(climodel.KindFile), climodel.Scalar(climodel.KindString)),
				TakesValue: true,
			},
		},
	}

	task, err := New(Options{}).Task(cmd)
	require.Nil(t, task)
	var nct *NoCommonTypeError
	require.True(t, errors.As(err, &nct))
	require.Contains(t, err.Error(), `"span"`)
}

func TestGenerateTaskIgnorePositionals(t *testing.T) {
	task, err := New(Options{IgnorePositionals: true}).Task(sampleCommand())
	require.NoError(t, err)

	for _, in := range task.Inputs {
		require.NotEqual(t, "reference", in.Name)
	}
	require.Empty(t, task.Command.Inputs)
}

func TestGenerateTaskCamelConvention(t *testing.T) {
	task, err := New(Options{Convention: convert.Camel}).Task(sampleCommand())
	require.NoError(t, err)
	require.Equal(t, "outputFile", task.Inputs[0].Name)
	require.Equal(t, "inputArg", task.Inputs[2].Name)
}

func TestGenerateTaskDocumentRenders(t *testing.T) {
	task, err := New(Options{}).Task(sampleCommand())
	require.NoError(t, err)

	doc := task.Document()
	require.True(t, strings.HasPrefix(doc, "version 1.0\n"))
	require.Contains(t, doc, "task MytoolRun {")
	require.Contains(t, doc, "File? output_file")
	require.Contains(t, doc, `~{"--output " + output_file}`)
	require.Contains(t, doc, `~{true="-v" false="" verbose}`)
	require.Contains(t, doc, "~{reference}")
}

func TestGenerateTaskDropsUnsanitizableTokens(t *testing.T) {
	cmd := &climodel.Command{Tokens: []string{"my@tool", "@@", "run"}}
	task, err := New(Options{}).Task(cmd)
	require.NoError(t, err)
	require.Equal(t, "mytool run", task.Command.Base)
}

func TestGenerateTaskEmptyTokensFallback(t *testing.T) {
	cmd := &climodel.Command{Tokens: []string{"@@"}}
	task, err := New(Options{}).Task(cmd)
	require.NoError(t, err)
	require.Equal(t, "Tool", task.Name)
}
