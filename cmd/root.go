package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/config"
	"github.com/abhisek/teachassist/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "teachassist",
	Short: "AI teaching assistant",
	Long: "teachassist runs prompt-templated classroom tools (lesson plans, quizzes, rubrics, " +
		"parent emails and more) served over HTTP, MCP and the command line.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		return config.LoadDotEnv(envFile)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TEACHASSIST_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides TEACHASSIST_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Environment file loaded before reading configuration")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(readabilityCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TEACHASSIST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event database named by the flags and environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger builds the process logger; --log-level beats the config value.
func newLogger(cmd *cobra.Command, fallback string) (*zap.Logger, error) {
	level := fallback
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		level = l
	}
	return config.NewLogger(level)
}
