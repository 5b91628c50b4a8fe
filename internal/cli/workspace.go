package cli

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/veritext/veritext/internal/logging"
	"github.com/veritext/veritext/internal/model"
	"github.com/veritext/veritext/internal/tui"
	"github.com/veritext/veritext/internal/workspace"
)

// workspaceCmd represents the workspace command
var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Open the interactive workspace",
	Long: `Open the full-screen workspace: browse your documents, edit them,
run fact-checking analysis, and review flagged sentences inline.

Logs go to a file rather than the terminal while the workspace is open
(default: ~/.veritext/veritext.log).`,
	RunE: runWorkspace,
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
}

func runWorkspace(cmd *cobra.Command, args []string) error {
	user, _, err := requireUser()
	if err != nil {
		return err
	}

	cfg := loadConfig()

	// The terminal is the UI surface, so logs must go elsewhere.
	logFile := cfg.Output.LogFile
	if logFile == "" {
		dir, err := model.ConfigDir()
		if err != nil {
			return fmt.Errorf("locate config directory: %w", err)
		}
		logFile = filepath.Join(dir, "veritext.log")
	}
	if err := logging.Setup(cfg.Output.Verbose, logFile); err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}

	client := newClient(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	library := workspace.NewLibrary(client, cfg.Cache, cfg.Concurrency.PreviewWorkers, logging.Component("library"))
	analyzer := workspace.NewAnalyzer(client, cfg.Concurrency.CorrectionWorkers, logging.Component("analyzer"))

	m := tui.New(ctx, *user, client, library, analyzer, logging.Component("tui"))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("workspace exited with error: %w", err)
	}
	return nil
}
