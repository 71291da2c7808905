package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/teachassist/internal/assistant"
	"github.com/abhisek/teachassist/internal/ledger"
	"github.com/abhisek/teachassist/internal/llm"
	"github.com/abhisek/teachassist/internal/session"
	"github.com/abhisek/teachassist/internal/tools"
	"github.com/abhisek/teachassist/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate <tool>",
	Short: "Run a tool once against the configured model",
	Long: "Run a tool once against the configured model. The API key comes from --api-key, " +
		"TEACHASSIST_DEFAULT_API_KEY, or the first of GEMINI_API_KEY, OPENAI_API_KEY, " +
		"ANTHROPIC_API_KEY and OPENROUTER_API_KEY that is set.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := readToolRequest(cmd)
		if err != nil {
			return err
		}

		llmCfg := resolveLLMConfig()
		if p, _ := cmd.Flags().GetString("provider"); p != "" {
			llmCfg.Provider = p
		}
		if err := llmCfg.Validate(); err != nil {
			return err
		}
		credential := llmCfg.DefaultAPIKey
		if k, _ := cmd.Flags().GetString("api-key"); k != "" {
			credential = k
		}

		logger, err := newLogger(cmd, "warn")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		registry, err := tools.NewRegistry()
		if err != nil {
			return err
		}
		client := llm.NewClient(llmCfg, llm.WithEventRepo(st.EventRepo()), llm.WithLogger(logger))
		svc, err := assistant.New(registry, client, assistant.WithLogger(logger))
		if err != nil {
			return err
		}

		sess := session.NewStore().Create()
		sess.SetCredential(credential)

		outcome, err := svc.Run(cmd.Context(), sess, args[0], req)
		if err != nil {
			var gerr *llm.GenerationError
			if errors.As(err, &gerr) {
				return fmt.Errorf("%s", gerr.Message())
			}
			return err
		}

		printOutcome(cmd, outcome)

		if path, _ := cmd.Flags().GetString("export"); path != "" {
			if err := exportLedger(sess.Ledger, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), theme.Ok.Render("✓"), "history written to", path)
		}
		return nil
	},
}

// resolveLLMConfig reads TEACHASSIST_LLM_* and falls back to whichever
// provider key is present in the environment.
func resolveLLMConfig() llm.Config {
	cfg := llm.ConfigFromEnv()
	if cfg.DefaultAPIKey != "" || os.Getenv("TEACHASSIST_LLM_PROVIDER") != "" {
		return cfg
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		discovered.Timeout = cfg.Timeout
		discovered.MaxTokens = cfg.MaxTokens
		return discovered
	}
	return cfg
}

func printOutcome(cmd *cobra.Command, o *assistant.Outcome) {
	out := cmd.OutOrStdout()
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Fprintln(out, o.Result)
		return
	}

	fmt.Fprintln(out, theme.Title.Render(o.Title))
	fmt.Fprintln(out, theme.Card.Render(strings.TrimRight(o.Result, "\n")))

	var notes []string
	if o.Metrics.WordCount != nil {
		notes = append(notes, fmt.Sprintf("%d words", *o.Metrics.WordCount))
	}
	if d := o.Metrics.Rewrite; d != nil {
		note := fmt.Sprintf("%d → %d words", d.OriginalWords, d.NewWords)
		if d.Defined {
			note += fmt.Sprintf(" (%+.1f%%)", d.Percent)
		}
		notes = append(notes, note)
	}
	if o.Usage != nil {
		notes = append(notes, fmt.Sprintf("%d in / %d out tokens", o.Usage.InputTokens, o.Usage.OutputTokens))
	}
	if len(notes) > 0 {
		fmt.Fprintln(out, theme.Dim.Render(strings.Join(notes, " · ")))
	}
}

func exportLedger(l *ledger.Ledger, path string) error {
	format, err := ledger.ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := l.Export(f, format); err != nil {
		f.Close()
		return fmt.Errorf("write export: %w", err)
	}
	return f.Close()
}

func init() {
	addInputFlags(generateCmd)
	generateCmd.Flags().String("api-key", "", "API key for this run (never stored)")
	generateCmd.Flags().String("provider", "", "Override TEACHASSIST_LLM_PROVIDER")
	generateCmd.Flags().Bool("raw", false, "Print only the generated text")
	generateCmd.Flags().String("export", "", "Write the run's history entry to a .json or .yaml file")
}
