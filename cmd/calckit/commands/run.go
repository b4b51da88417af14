package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calckit/internal/domain"
)

// run <slug> [name=value...]: compute one calculator.
func runCmd() *cobra.Command {
	var (
		sets   []string
		output string
		save   bool
	)
	cmd := &cobra.Command{
		Use:   "run <slug> [name=value...]",
		Short: "Run a calculator",
		Long: "Run a calculator. Inputs are given as name=value pairs, either with\n" +
			"--set or as extra arguments. Missing inputs take their defaults.",
		Example: "  calckit run loan-payment --set amount=25000 --set rate=6.5 --set years=5\n" +
			"  calckit run roman-numerals value=1994 -o json",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := domain.Slug(args[0])
			in, err := parseInputs(append(sets, args[1:]...))
			if err != nil {
				return err
			}
			res, err := appCtx.Calculators.Run(cmd.Context(), slug, in)
			if err != nil {
				return err
			}
			if err := printResult(cmd.OutOrStdout(), output, res); err != nil {
				return err
			}
			if save {
				entry, err := appCtx.History.Record(cmd.Context(), slug, in, res)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", entry.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "input as name=value (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&save, "save", false, "save the computation to history")
	return cmd
}

// parseInputs reads name=value pairs. Values may contain '='.
func parseInputs(pairs []string) (domain.Inputs, error) {
	in := domain.Inputs{}
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("input %q is not name=value", p)
		}
		in[name] = value
	}
	return in, nil
}
