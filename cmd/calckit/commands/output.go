package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"calckit/internal/domain"
)

// encode writes v as json or yaml.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func printResult(w io.Writer, format string, res domain.Result) error {
	if format != "text" {
		return encode(w, format, res)
	}

	fmt.Fprintln(w, res.Summary)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(res.Values) > 0 {
		fmt.Fprintln(tw)
		for _, v := range res.Values {
			fmt.Fprintf(tw, "%s:\t%s\n", v.Label, v.Value)
		}
	}
	if t := res.Table; t != nil {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, strings.Join(t.Columns, "\t")+"\t")
		for _, row := range t.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(res.Steps) > 0 {
		fmt.Fprintln(w)
		for i, s := range res.Steps {
			fmt.Fprintf(w, "%d. %s\n", i+1, s)
		}
	}
	for _, n := range res.Notes {
		fmt.Fprintf(w, "\nnote: %s\n", n)
	}
	return nil
}
