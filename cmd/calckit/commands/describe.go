package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"calckit/internal/domain"
)

// describe <slug>: print a calculator's inputs.
func describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <slug>",
		Short: "Show a calculator's inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Calculators.Describe(cmd.Context(), domain.Slug(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n%s\n\n", c.Title, c.Category.Title(), c.Summary)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tKIND\tDEFAULT\tLABEL")
			for _, f := range c.Fields {
				def := f.Default
				if def == "" {
					def = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Kind, def, f.Label)
				if len(f.Options) > 0 {
					vals := make([]string, len(f.Options))
					for i, o := range f.Options {
						vals[i] = o.Value
					}
					fmt.Fprintf(tw, "\t\t\toptions: %s\n", strings.Join(vals, ", "))
				}
			}
			return tw.Flush()
		},
	}
}
