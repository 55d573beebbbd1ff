package cli

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "0.1.0"

// NewRootCmd assembles the veitch command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "veitch",
		Short: "veitch - Karnaugh map renderer",
		Long: `veitch renders Karnaugh maps for boolean functions of 2-4 variables.

Functions are given in canonical Σ/Π notation, e.g. "F(a,b,c) = Σm(1,2,5)"
or "G(x,y) = ΠM(0,3)". Cells follow the Gray-code layout, so every pair of
adjacent cells (wrap-around included) differs in exactly one bit.

Simplification groups come from an external minimizer; pass them with
repeated --group flags and veitch draws their toroidal outlines.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("marker", "X", "don't-care marker to display")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable terminal colors")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newLabelsCmd())

	return rootCmd
}

// Execute runs the root command; main reports the exit code.
func Execute() error {
	return NewRootCmd().Execute()
}
