package cli

import (
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve equation...",
	Short: "Solve each equation given as an argument",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

// runSolve solves every argument independently; one failure does not stop
// the rest.
func runSolve(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, input := range args {
		r, err := e.Solve(input)
		if err != nil {
			failed++
		}
		if err := e.Write(out, r); err != nil {
			return err
		}
	}

	if failed > 0 {
		return ErrFailed
	}
	return nil
}
