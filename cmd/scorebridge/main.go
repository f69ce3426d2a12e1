// Command scorebridge serves Sportradar sports statistics over MCP.
//
// Usage:
//
//	scorebridge serve --api-key <key>
//	scorebridge serve --api-key <key> --transport http --port 8000
//
// The API key can also come from SPORTRADAR_API_KEY (or a .env file).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scorebridge/scorebridge/internal/api"
	"github.com/scorebridge/scorebridge/internal/cache"
	"github.com/scorebridge/scorebridge/internal/config"
	"github.com/scorebridge/scorebridge/internal/geocode"
	"github.com/scorebridge/scorebridge/internal/mcpserver"
	"github.com/scorebridge/scorebridge/internal/parser"
	"github.com/scorebridge/scorebridge/internal/provider/sportradar"
)

// stdout carries the stdio MCP transport, so logs go to stderr.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "scorebridge",
		Short: "Accurate and up-to-date sports stats via Sportradar, served over MCP",
	}

	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var (
		apiKey    string
		transport string
		host      string
		port      int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if apiKey != "" {
				cfg.APIKey = apiKey
			}
			if transport != "" {
				cfg.Transport = transport
			}
			if host != "" {
				cfg.Host = host
			}
			if port != 0 {
				cfg.Port = port
			}

			if cfg.APIKey == "" {
				return fmt.Errorf("a Sportradar API key is required (--api-key or SPORTRADAR_API_KEY)")
			}

			return runServer(cfg)
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for Sportradar")
	cmd.Flags().StringVar(&transport, "transport", "", "MCP transport: stdio or http (default stdio)")
	cmd.Flags().StringVar(&host, "host", "", "Bind address for the http transport")
	cmd.Flags().IntVar(&port, "port", 0, "Port for the http transport")
	return cmd
}

func runServer(cfg *config.Config) error {
	slog.SetDefault(logger)

	store := cache.New(cfg.CacheEnabled)
	client := sportradar.NewClient(sportradar.APIHost, cfg.APIKey, sportradar.Settings{
		Format:      cfg.Format,
		AccessLevel: cfg.AccessLevel,
		Language:    cfg.Language,
	}, cfg.FetchInterval, cfg.HTTPTimeout, logger)
	p := parser.New(store, logger)
	srv := mcpserver.New(client, p, store, geocode.NewClient(geocode.DefaultBaseURL), logger)

	switch cfg.Transport {
	case "stdio":
		logger.Info("serving MCP over stdio")
		return srv.ServeStdio()
	case "http":
		return serveHTTP(cfg, store, srv)
	default:
		return fmt.Errorf("transport %q is not valid (want stdio or http)", cfg.Transport)
	}
}

func serveHTTP(cfg *config.Config, store *cache.Store, srv *mcpserver.Server) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	baseURL := fmt.Sprintf("http://%s", addr)
	router := api.NewRouter(srv.SSEHandler(baseURL), store, cfg)

	httpSrv := &http.Server{
		Addr:        addr,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("serving MCP over http", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
