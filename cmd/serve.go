package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/teachassist/internal/assistant"
	"github.com/abhisek/teachassist/internal/config"
	"github.com/abhisek/teachassist/internal/llm"
	"github.com/abhisek/teachassist/internal/mcp"
	"github.com/abhisek/teachassist/internal/ratelimit"
	"github.com/abhisek/teachassist/internal/render"
	"github.com/abhisek/teachassist/internal/server"
	"github.com/abhisek/teachassist/internal/session"
	"github.com/abhisek/teachassist/internal/telemetry"
	"github.com/abhisek/teachassist/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and MCP endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		llmCfg := llm.ConfigFromEnv()
		if err := llmCfg.Validate(); err != nil {
			return err
		}

		logger, err := newLogger(cmd, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cmd, cfg, llmCfg, logger)
	},
}

func serve(ctx context.Context, cmd *cobra.Command, cfg config.Config, llmCfg llm.Config, logger *zap.Logger) error {
	otelShutdown, err := telemetry.Init(ctx, cfg.OTELEndpoint, version, cfg.OTELInsecure)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	registry, err := tools.NewRegistry()
	if err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}

	client := llm.NewClient(llmCfg, llm.WithEventRepo(st.EventRepo()), llm.WithLogger(logger))
	svc, err := assistant.New(registry, client,
		assistant.WithLogger(logger),
		assistant.WithMarkdown(render.NewMarkdown()),
	)
	if err != nil {
		return fmt.Errorf("build assistant: %w", err)
	}

	tokens, err := session.NewTokens([]byte(cfg.SessionSecret), cfg.SessionTTL)
	if err != nil {
		return err
	}
	if cfg.SessionSecret == "" {
		logger.Warn("TEACHASSIST_SESSION_SECRET not set; sessions will not survive a restart")
	}

	var storeOpts []session.StoreOption
	if llmCfg.DefaultAPIKey != "" {
		storeOpts = append(storeOpts, session.WithDefaultCredential(llmCfg.DefaultAPIKey))
	}
	sessions := session.NewStore(storeOpts...)

	limiter := ratelimit.New(cfg.RateLimit, cfg.RateBurst)
	defer func() { _ = limiter.Close() }()

	handler := server.NewRouter(&server.Dependencies{
		Assistant:    svc,
		Sessions:     sessions,
		Tokens:       tokens,
		Limiter:      limiter,
		MCP:          mcp.New(registry, logger, version),
		Logger:       logger,
		MaxBodyBytes: cfg.MaxBodyBytes,
		CookieSecure: cfg.CookieSecure,
		Version:      version,
	})
	srv := server.NewHTTPServer(cfg.Addr, handler, cfg.ReadTimeout, cfg.WriteTimeout)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("teachassist listening",
			zap.String("addr", cfg.Addr),
			zap.String("provider", client.ProviderName()),
			zap.String("model", client.ModelName()),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return sessions.RunJanitor(gctx, cfg.SweepInterval, cfg.SessionTTL, func(n int) {
			logger.Info("expired idle sessions", zap.Int("count", n))
		})
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("teachassist shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown error", zap.Error(err))
		}
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("teachassist stopped")
	return nil
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides TEACHASSIST_ADDR)")
}
