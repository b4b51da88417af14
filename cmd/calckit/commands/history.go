package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"calckit/internal/domain"
	"calckit/internal/store"
)

// errNoLocalStore is returned by export/import when history is remote or off.
var errNoLocalStore = errors.New("export and import need local history; unset --remote and enable history")

func historyCmd() *cobra.Command {
	var (
		slug   string
		limit  int
		output string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved computations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.History.History(cmd.Context(), domain.HistoryFilter{Slug: domain.Slug(slug), Limit: limit})
			if err != nil {
				return err
			}
			if output != "text" {
				if entries == nil {
					entries = []domain.HistoryEntry{}
				}
				return encode(cmd.OutOrStdout(), output, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved computations")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Slug, e.Summary)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&slug, "slug", "", "only show this calculator")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum entries (default from history.limit)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")

	cmd.AddCommand(historyClearCmd(), historyExportCmd(), historyImportCmd())
	return cmd
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved computations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.History.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}
}

func historyExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write history to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Store == nil {
				return errNoLocalStore
			}
			n, err := store.ExportJSON(cmd.Context(), appCtx.Store, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d entries to %s\n", n, args[0])
			return nil
		},
	}
}

func historyImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON export into history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Store == nil {
				return errNoLocalStore
			}
			n, err := store.ImportJSON(cmd.Context(), appCtx.Store, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries from %s\n", n, args[0])
			return nil
		},
	}
}
