package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tcollier/taskgen/internal/climodel"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <model.yaml>",
	Short: "Print the parsed tool model for debugging model files",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	model, err := climodel.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "command: %s\n", strings.Join(model.Tokens, " "))

	for _, f := range model.Flags() {
		fmt.Fprintf(out, "flag       %-20s %-24s optional=%-5v synonyms=%s\n",
			f.Name(), f.Type().String(), f.Optional(), strings.Join(f.Synonyms, ","))
	}
	for _, p := range model.Positionals() {
		fmt.Fprintf(out, "positional %-20s %-24s optional=%-5v position=%d\n",
			p.Name(), p.Type().String(), p.Optional(), p.Position)
	}
	return nil
}
