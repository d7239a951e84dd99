package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"nbdiff/internal/config"
	"nbdiff/internal/notebook"
)

var extractCmd = &cobra.Command{
	Use:   "extract <input-dir> <output-dir>",
	Short: "Extract input cells from every notebook under a directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		return extractTree(cmd.Context(), cfg, args[0], args[1])
	},
}

// extractTree walks inDir, extracts the input cells of each notebook it
// finds, and writes a mirrored .txt listing under outDir. Notebooks that
// fail to extract are reported and skipped rather than aborting the walk.
func extractTree(ctx context.Context, cfg config.AppConfig, inDir, outDir string) error {
	ex := notebook.NewExtractor(cfg.ExtractorCommand)

	var extracted, failed int
	err := filepath.WalkDir(inDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != inDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !notebook.IsNotebook(path) {
			return nil
		}

		rel, err := filepath.Rel(inDir, path)
		if err != nil {
			return err
		}

		inputs, err := ex.ExtractInputs(ctx, path)
		if err != nil {
			log.Printf("skipping %s: %v", rel, err)
			failed++
			return nil
		}

		out := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".txt")
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(notebook.FormatBatch(inputs)), 0o644); err != nil {
			return err
		}

		extracted++
		log.Printf("extracted %s (%d cells)", rel, len(inputs))
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", inDir, err)
	}

	log.Printf("done: %d extracted, %d failed", extracted, failed)
	if failed > 0 {
		return fmt.Errorf("%d notebook(s) could not be extracted", failed)
	}
	return nil
}
