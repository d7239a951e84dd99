package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nbdiff/internal/config"
	"nbdiff/internal/export"
	"nbdiff/internal/notebook"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <left> <right>",
	Short: "Render the comparison as a unified diff or an HTML report",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}

		ctx := cmd.Context()
		ex := notebook.NewExtractor(cfg.ExtractorCommand)
		leftText, err := notebook.Load(ctx, ex, args[0])
		if err != nil {
			return err
		}
		rightText, err := notebook.Load(ctx, ex, args[1])
		if err != nil {
			return err
		}

		leftName := filepath.Base(args[0])
		rightName := filepath.Base(args[1])

		var out []byte
		switch exportFormat {
		case "unified":
			s, err := export.Unified(leftName, rightName, leftText, rightText)
			if err != nil {
				return err
			}
			out = []byte(s)
		case "html":
			out, err = export.HTML(leftName, rightName, leftText, rightText)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (want unified or html)", exportFormat)
		}

		if exportOut == "" || exportOut == "-" {
			_, err := os.Stdout.Write(out)
			return err
		}
		if err := os.WriteFile(exportOut, out, 0o644); err != nil {
			return err
		}
		log.Printf("wrote %s (%d bytes)", exportOut, len(out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "unified", "output format: unified or html")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write to a file instead of stdout")
}
