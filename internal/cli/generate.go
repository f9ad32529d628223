package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/tcollier/taskgen/internal/cache"
	"github.com/tcollier/taskgen/internal/checksum"
	"github.com/tcollier/taskgen/internal/climodel"
	"github.com/tcollier/taskgen/internal/convert"
	"github.com/tcollier/taskgen/internal/wdlgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <model.yaml> [model.yaml ...]",
	Short: "Generate WDL tasks from tool model files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("out-dir", "o", ".", "Directory to write generated .wdl files")
	generateCmd.Flags().String("convention", "snake", "Identifier convention for input names (snake, camel)")
	generateCmd.Flags().Bool("no-positionals", false, "Exclude positional arguments from task inputs")
	generateCmd.Flags().String("cache", "", "Path to a generation cache database (created if missing)")
	generateCmd.Flags().Bool("force", false, "Regenerate even when the cache says a model is unchanged")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	outDir, _ := cmd.Flags().GetString("out-dir")
	conventionName, _ := cmd.Flags().GetString("convention")
	noPositionals, _ := cmd.Flags().GetBool("no-positionals")
	cachePath, _ := cmd.Flags().GetString("cache")
	force, _ := cmd.Flags().GetBool("force")

	convention := convert.Convention(conventionName)
	if !convention.Valid() {
		return fmt.Errorf("unknown convention %q (want snake or camel)", conventionName)
	}

	gen := wdlgen.New(wdlgen.Options{
		Convention:        convention,
		IgnorePositionals: noPositionals,
	})

	var store *cache.Cache
	if cachePath != "" {
		var err error
		store, err = cache.Open(cachePath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, path := range args {
		if err := generateOne(logger, gen, store, force, outDir, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func generateOne(logger *slog.Logger, gen *wdlgen.Generator, store *cache.Cache, force bool, outDir, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fingerprint := checksum.Bytes(data)
	if store != nil && !force {
		entry, err := store.Get(fingerprint)
		if err != nil {
			return err
		}
		if entry != nil {
			logger.Info("model unchanged, skipping", "model", path, "task", entry.TaskName)
			return nil
		}
	}

	model, err := climodel.Parse(data)
	if err != nil {
		return err
	}

	task, err := gen.Task(model)
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, task.Name+".wdl")
	if err := os.WriteFile(outPath, []byte(task.Document()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	if store != nil {
		err := store.Put(fingerprint, cache.Entry{
			TaskName:    task.Name,
			OutputPath:  outPath,
			GeneratedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
	}

	logger.Info("wrote task", "model", path, "task", task.Name, "path", outPath)
	return nil
}
