// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

// Package main is the entry point for the Reelpin server.
//
// Reelpin serves a small embedded movie catalog with preference-based
// recommendations, search, ratings, a watchlist, and an optional chat
// widget integration.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: settings from environment variables and config files (Koanf v2)
//  2. Store: BadgerDB-backed preference and watchlist persistence
//  3. Chat widget (optional): websocket connection to the chat service
//  4. HTTP Server: REST API under /api/v1
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (REELPIN_ prefix)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the chat connection and the store
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelpin/internal/api"
	"github.com/tomtom215/reelpin/internal/catalog"
	"github.com/tomtom215/reelpin/internal/chat"
	"github.com/tomtom215/reelpin/internal/config"
	"github.com/tomtom215/reelpin/internal/logging"
	"github.com/tomtom215/reelpin/internal/store"
	"github.com/tomtom215/reelpin/internal/supervisor"
	"github.com/tomtom215/reelpin/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("store_path", cfg.Storage.Path).
		Int("catalog_size", catalog.Size()).
		Bool("chat_enabled", cfg.Chat.Enabled).
		Msg("Starting Reelpin")

	st, err := store.Open(store.Config{
		Path:     cfg.Storage.Path,
		InMemory: cfg.Storage.InMemory,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	var widget api.ChatWidget
	if cfg.Chat.Enabled {
		client := chat.NewClient(chat.Config{
			URL:              cfg.Chat.URL,
			HandshakeTimeout: cfg.Chat.HandshakeTimeout,
			QueueSize:        cfg.Chat.QueueSize,
			FailureThreshold: cfg.Chat.FailureThreshold,
			BreakerTimeout:   cfg.Chat.BreakerTimeout,
		})
		client.OnIncoming(func(msg chat.Message) {
			logging.Debug().Str("text", msg.Text).Msg("Chat message received")
		})
		tree.AddChatService(client)
		widget = client
		logging.Info().Str("url", cfg.Chat.URL).Msg("Chat widget enabled")
	} else {
		logging.Info().Msg("Chat widget disabled")
	}

	handler := api.NewHandler(st, widget, cfg.Engine)
	router := api.NewRouter(handler, cfg.Server)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor finishes
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
