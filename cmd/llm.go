package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/teachassist/internal/llm"
	"github.com/abhisek/teachassist/internal/store"
	"github.com/abhisek/teachassist/internal/tools"
	"github.com/abhisek/teachassist/internal/ui/theme"
)

const eventTimeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the generation audit log",
	Long: "Every model call made by serve or generate is written to the local database " +
		"with its tool, model, token counts and latency. These commands read that log.",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generation calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		opts := store.QueryOpts{Limit: limit}

		if name, _ := cmd.Flags().GetString("tool"); name != "" {
			purpose, err := toolPurpose(name)
			if err != nil {
				return err
			}
			opts.Purpose = purpose
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, theme.Dim.Render("No generation calls recorded."))
			return nil
		}
		writeEventTable(out, events)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one call with its captured request and response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		e, err := st.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		writeEventDetail(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage per tool and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.EventRepo()
		byTool, err := repo.LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query tool usage: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(byTool) == 0 {
			fmt.Fprintln(out, theme.Dim.Render("No generation calls recorded."))
			return nil
		}
		byModel, err := repo.LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		writeToolUsage(out, byTool)
		fmt.Fprintln(out)
		writeModelCost(out, byModel)
		return nil
	},
}

// toolPurpose maps a slug or display name to the label stored with each event.
func toolPurpose(name string) (string, error) {
	registry, err := tools.NewRegistry()
	if err != nil {
		return "", err
	}
	t, err := registry.Lookup(name)
	if err != nil {
		return "", err
	}
	return t.Name, nil
}

func writeEventTable(w io.Writer, events []store.LLMRequestEvent) {
	fmt.Fprintln(w, theme.Label.Render(fmt.Sprintf("%-5s  %-19s  %-24s  %-24s  %6s  %6s  %7s  %s",
		"ID", "Time", "Tool", "Model", "In", "Out", "Ms", "OK")))
	fmt.Fprintln(w, theme.Rule(108))
	for _, e := range events {
		fmt.Fprintf(w, "%-5d  %-19s  %-24s  %-24s  %6d  %6d  %7d  %s\n",
			e.ID, e.Timestamp.Local().Format(eventTimeLayout),
			truncate(e.Purpose, 24), truncate(e.Model, 24),
			e.InputTokens, e.OutputTokens, e.LatencyMs, successMark(e.Success))
	}
}

func writeEventDetail(w io.Writer, e *store.LLMRequestEvent) {
	rows := [][2]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format(eventTimeLayout)},
		{"Tool", e.Purpose},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Result", successMark(e.Success)},
	}
	if e.ErrorMessage != "" {
		rows = append(rows, [2]string{"Error", theme.Fail.Render(e.ErrorMessage)})
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", theme.PadRight(theme.Label.Render(r[0]+":"), 10), r[1])
	}

	for _, section := range []struct{ title, body string }{
		{"Request", e.RequestBody},
		{"Response", e.ResponseBody},
	} {
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Heading.Render(section.title))
		fmt.Fprintln(w, theme.Rule(60))
		if section.body == "" {
			fmt.Fprintln(w, theme.Dim.Render("(not captured)"))
			continue
		}
		fmt.Fprintln(w, section.body)
	}
}

func writeToolUsage(w io.Writer, usage []store.PurposeUsage) {
	fmt.Fprintln(w, theme.Title.Render("Usage by tool"))
	fmt.Fprintln(w, theme.Label.Render(fmt.Sprintf("%-28s  %6s  %10s  %10s  %8s",
		"Tool", "Calls", "Input", "Output", "Avg ms")))
	fmt.Fprintln(w, theme.Rule(70))

	var calls, in, out int
	for _, u := range usage {
		fmt.Fprintf(w, "%-28s  %6d  %10d  %10d  %8d\n",
			truncate(u.Purpose, 28), u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	fmt.Fprintln(w, theme.Rule(70))
	fmt.Fprintf(w, "%-28s  %6d  %10d  %10d\n", "Total", calls, in, out)
}

func writeModelCost(w io.Writer, usage []store.ModelUsage) {
	fmt.Fprintln(w, theme.Title.Render("Estimated cost (USD)"))
	fmt.Fprintln(w, theme.Label.Render(fmt.Sprintf("%-28s  %6s  %10s  %10s  %9s",
		"Model", "Calls", "Input", "Output", "Cost")))
	fmt.Fprintln(w, theme.Rule(70))

	var total float64
	var unpriced []string
	for _, u := range usage {
		cost := "?"
		if price := llm.LookupCost(u.Model); price != nil {
			c := price.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		fmt.Fprintf(w, "%-28s  %6d  %10d  %10d  %9s\n",
			truncate(u.Model, 28), u.Calls, u.InputTokens, u.OutputTokens, cost)
	}
	fmt.Fprintln(w, theme.Rule(70))

	label := "Total"
	if len(unpriced) > 0 {
		label = "Total (partial)"
	}
	fmt.Fprintf(w, "%-28s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintln(w, theme.Hint.Render("No pricing for: "+strings.Join(unpriced, ", ")))
	}
}

func successMark(ok bool) string {
	if ok {
		return theme.Ok.Render("✓")
	}
	return theme.Fail.Render("✗")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("tool", "t", "", "Only calls made by this tool (slug or name)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
