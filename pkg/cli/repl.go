package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/computor/pkg/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Long: `Start an interactive prompt. Each line is one equation.

  enter             solve the line
  quit, exit, esc   leave the prompt
  ctrl+c, ctrl+d    leave the prompt`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}

	m, err := repl.Run(e, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	solved, failed := m.Counts()
	e.Logger().Debug("prompt closed", "solved", solved, "failed", failed)
	return nil
}
