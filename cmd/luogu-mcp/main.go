package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/a48zhang/luogu-mcp/internal/config"
	"github.com/a48zhang/luogu-mcp/luogu"
	"github.com/a48zhang/luogu-mcp/mcp"
	"github.com/a48zhang/luogu-mcp/web"
)

var rootCmd = &cobra.Command{
	Use:   "luogu-mcp",
	Short: "An MCP server for Luogu problem metadata",
	Long: `luogu-mcp exposes Luogu problem statements as structured data, over an
MCP (JSON-RPC 2.0) endpoint and a small REST facade. It fetches problem
pages on demand and keeps no state between calls.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP and REST over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		client := newClient(cfg, logger)
		dispatcher := newDispatcher(cfg, client, logger)

		shell := web.NewServer(client, dispatcher, web.WithLogger(logger))
		httpServer := &http.Server{
			Addr:              cfg.Addr,
			Handler:           shell.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			logger.Info("listening", "addr", cfg.Addr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		client := newClient(cfg, logger)
		server := newMCPServer(cfg, client, logger)

		transport := mcp.NewStdioTransport(server, os.Stdin, os.Stdout, os.Stderr)
		if err := transport.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// setup loads configuration and builds the process logger, applying flag
// overrides on top of file and environment settings.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	// A missing .env is fine; it only seeds the environment when present.
	_ = godotenv.Load()

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	if cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}
	if cmd.Flags().Changed("retries") {
		cfg.Retries = retries
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeout
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return cfg, logger, nil
}

func newClient(cfg config.Config, logger *slog.Logger) *luogu.Client {
	opts := []luogu.ClientOption{
		luogu.WithBaseURL(cfg.BaseURL),
		luogu.WithRetries(cfg.Retries),
		luogu.WithTimeout(cfg.Timeout),
		luogu.WithLogger(logger),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, luogu.WithUserAgent(cfg.UserAgent))
	}
	return luogu.NewClient(opts...)
}

func newMCPServer(cfg config.Config, client *luogu.Client, logger *slog.Logger) *mcp.Server {
	registry := mcp.NewRegistry()
	registry.Register(luogu.GetProblemTool(client))

	return mcp.NewServer(
		mcp.WithServerInfo(mcp.ServerInfo{Name: "luogu-mcp", Version: version}),
		mcp.WithRegistry(registry),
		mcp.WithLogger(logger),
		mcp.WithVersionEcho(cfg.EchoVersion),
	)
}

func newDispatcher(cfg config.Config, client *luogu.Client, logger *slog.Logger) http.Handler {
	return mcp.NewHTTPHandler(newMCPServer(cfg, client, logger),
		mcp.WithNotificationStatus(cfg.NotificationStatus),
		mcp.WithHTTPLogger(logger))
}

var (
	configPath string
	addr       string
	verbose    bool
	retries    int
	timeout    time.Duration

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "luogu-mcp.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 2, "Maximum number of retries for failed page fetches")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Page fetch timeout")

	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")

	rootCmd.AddCommand(serveCmd, stdioCmd)
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
