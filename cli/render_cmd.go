package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/veitch/groups"
	"github.com/katalvlaran/veitch/kmap"
	"github.com/katalvlaran/veitch/notation"
	"github.com/katalvlaran/veitch/render"
)

// newRenderCmd builds the render subcommand: parse, assemble, outline, draw.
func newRenderCmd() *cobra.Command {
	var (
		dontcareFlag string
		groupFlags   []string
	)

	cmd := &cobra.Command{
		Use:   "render <notation>",
		Short: "Render the Karnaugh map for a Σ/Π function",
		Example: `  veitch render "F(a,b,c) = Σm(1,2,5)"
  veitch render "G(x,y) = pi M(0,3)" --group 1,2
  veitch render "F(a,b,c,d) = Σm(4,5,6,7)" --dontcare 0,2 --group 4,5,6,7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			fn, err := notation.Parse(args[0])
			if err != nil {
				return err
			}

			dontcares, err := parseTermList(dontcareFlag)
			if err != nil {
				return err
			}

			grid, err := kmap.Assemble(fn, dontcares)
			if err != nil {
				return err
			}

			grps := make([][]int, 0, len(groupFlags))
			for _, gf := range groupFlags {
				g, err := parseTermList(gf)
				if err != nil {
					return err
				}
				grps = append(grps, g)
			}
			borders, err := groups.Borders(grps, len(fn.Variables))
			if err != nil {
				return err
			}

			r := render.New(render.Options{Marker: cfg.Marker, NoColor: cfg.NoColor})
			fmt.Fprintln(cmd.OutOrStdout(), r.Map(grid, borders))
			if len(grps) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), r.Summary(grps, fn, dontcares))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dontcareFlag, "dontcare", "", "comma-separated don't-care terms")
	cmd.Flags().StringArrayVar(&groupFlags, "group", nil, "comma-separated group of terms (repeatable)")

	return cmd
}

// newLabelsCmd builds the labels subcommand: show the Gray-ordered axis
// layout for a variable count without assembling a grid.
func newLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels <variables>",
		Short: "Show the Gray-ordered axis labels for 2-4 variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("cli: variable count %q is not a number", args[0])
			}
			labels, err := kmap.AxisLabels(n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rows (%d var): %s\n", labels.RowVarCount, strings.Join(labels.RowLabels, " "))
			fmt.Fprintf(out, "cols (%d var): %s\n", labels.ColVarCount, strings.Join(labels.ColLabels, " "))

			return nil
		},
	}
}

// parseTermList parses a comma-separated decimal list; empty input is an
// empty list.
func parseTermList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		t, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("cli: term %q is not a number", f)
		}
		out = append(out, t)
	}

	return out, nil
}
