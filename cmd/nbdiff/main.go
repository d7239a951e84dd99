package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nbdiff/internal/app"
	"nbdiff/internal/config"
)

var watchFlag bool

var rootCmd = &cobra.Command{
	Use:          "nbdiff <left> <right>",
	Short:        "Side-by-side diff for notebook input cells",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}

		model := app.NewModel(app.Options{
			LeftPath:  args[0],
			RightPath: args[1],
			Config:    cfg,
			Watch:     watchFlag,
		})

		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("application error: %w", err)
		}
		return nil
	},
}

func main() {
	log.SetFlags(0)

	rootCmd.Flags().BoolVar(&watchFlag, "watch", false, "reload when either file changes on disk")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
