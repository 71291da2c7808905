package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/teachassist/internal/readability"
	"github.com/abhisek/teachassist/internal/tools"
	"github.com/abhisek/teachassist/internal/ui/theme"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <tool>",
	Short: "Render a tool's prompt without calling a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := readToolRequest(cmd)
		if err != nil {
			return err
		}
		registry, err := tools.NewRegistry()
		if err != nil {
			return err
		}
		p, err := registry.Prepare(args[0], req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprintln(out, p.Prompt)
			return nil
		}

		fmt.Fprintln(out, theme.Title.Render(p.Tool.TitleFor(p.Values)))
		if p.Readability != nil {
			printReadability(cmd, *p.Readability)
		}
		for _, s := range p.Strategies {
			fmt.Fprintln(out, theme.Dim.Render("strategy: "+s))
		}
		fmt.Fprintln(out, theme.Card.Render(p.Prompt))
		return nil
	},
}

var readabilityCmd = &cobra.Command{
	Use:   "readability <score>",
	Short: "Show the text metrics for a Lexile target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[0], err)
		}
		params, err := readability.Estimate(score)
		if err != nil {
			return err
		}
		printReadability(cmd, params)
		return nil
	},
}

func printReadability(cmd *cobra.Command, p readability.Params) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Heading.Render(fmt.Sprintf("Lexile %g", p.InputScore)))
	for _, line := range p.PromptLines() {
		fmt.Fprintln(out, "  "+line)
	}
}

func init() {
	addInputFlags(promptCmd)
	promptCmd.Flags().Bool("raw", false, "Print only the prompt text")
}
