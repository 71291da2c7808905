package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/teachassist/internal/tools"
	"github.com/abhisek/teachassist/internal/ui/theme"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Browse the tool catalog",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tool by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := tools.NewRegistry()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range tools.Categories {
			fmt.Fprintln(out, theme.Heading.Render(string(c)))
			for _, t := range registry.ByCategory(c) {
				fmt.Fprintf(out, "  %s  %s\n",
					theme.PadRight(theme.Name.Render(t.Slug), 28),
					theme.Dim.Render(t.Description))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var toolsShowCmd = &cobra.Command{
	Use:   "show <tool>",
	Short: "Show a tool's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := tools.NewRegistry()
		if err != nil {
			return err
		}
		t, err := registry.Lookup(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(t.Name), theme.Dim.Render("("+string(t.Category)+")"))
		fmt.Fprintln(out, t.Description)
		if t.Local {
			fmt.Fprintln(out, theme.Hint.Render("Runs locally; no API key needed."))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Rule(72))
		for _, f := range t.Fields {
			name := f.Name
			if f.Required {
				name += "*"
			}
			fmt.Fprintf(out, "%s  %s\n", theme.PadRight(theme.Label.Render(name), 24), f.Label)
			if detail := fieldDetail(f); detail != "" {
				fmt.Fprintf(out, "%s  %s\n", strings.Repeat(" ", 24), theme.Dim.Render(detail))
			}
		}
		fmt.Fprintln(out, theme.Rule(72))
		fmt.Fprintln(out, theme.Hint.Render("* required. Set values with --set name=value."))
		return nil
	},
}

func fieldDetail(f tools.Field) string {
	switch f.Kind {
	case tools.KindSelect:
		return "one of: " + strings.Join(f.Options, " | ")
	case tools.KindMultiSelect:
		return "comma-separated: " + strings.Join(f.Options, " | ")
	case tools.KindList:
		return "comma-separated list"
	case tools.KindNumber:
		return fmt.Sprintf("number %g..%g step %g", f.Min, f.Max, f.Step)
	case tools.KindToggle:
		return "true | false"
	}
	return ""
}

// addInputFlags registers the flags read by readToolRequest.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("set", "s", nil, "Field value as name=value (repeatable)")
	cmd.Flags().StringP("input", "i", "", "JSON object of field values; - reads stdin")
}

// readToolRequest merges --input and --set; --set wins.
func readToolRequest(cmd *cobra.Command) (tools.Request, error) {
	req := tools.Request{}

	if path, _ := cmd.Flags().GetString("input"); path != "" {
		var r io.Reader
		if path == "-" {
			r = cmd.InOrStdin()
		} else {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			r = f
		}
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
	}

	sets, _ := cmd.Flags().GetStringArray("set")
	for _, kv := range sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --set %q, want name=value", kv)
		}
		req[strings.TrimSpace(name)] = value
	}
	return req, nil
}

func init() {
	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsShowCmd)
}
