// Package main runs the pull-request relay server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/nathantilsley/pr-relay/internal/config"
	ghapi "github.com/nathantilsley/pr-relay/internal/relay/adapters/gh_api"
	httpapi "github.com/nathantilsley/pr-relay/internal/relay/adapters/http_api"
	"github.com/nathantilsley/pr-relay/internal/relay/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "Path to a TOML config file (optional)")
		addr       = flag.String("addr", "", "Listen address (overrides config)")
		token      = flag.String("token", "", "GitHub token (or use GITHUB_TOKEN env var)")
	)
	flag.Parse()

	result, err := config.NewDefaultLoader().Load(*configPath)
	if err != nil {
		return err
	}
	cfg := result.Config

	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *token != "" {
		cfg.GitHub.Token = *token
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "pr-relay",
	})
	if result.SourcePath != "" {
		logger.Debug("loaded config file", "path", result.SourcePath)
	}

	if !cfg.GitHub.UsesAppAuth() && cfg.GitHub.Token == "" {
		cfg.GitHub.Token = config.PlaceholderToken
		logger.Warn("no GitHub credential configured; upstream calls will send the placeholder token",
			"env", "GITHUB_TOKEN",
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ghapi.NewClient(ctx, ghapi.ClientConfig{
		Token:          cfg.GitHub.Token,
		AppID:          cfg.GitHub.AppID,
		InstallationID: cfg.GitHub.InstallationID,
		PrivateKeyPath: cfg.GitHub.PrivateKeyPath,
		BaseURL:        cfg.GitHub.BaseURL,
	})
	if err != nil {
		return errors.Wrap(err, "initializing GitHub client")
	}

	service := app.NewService(ghapi.New(client))
	router := httpapi.NewRouter(logger, &httpapi.PullsController{
		Service: service,
		Logger:  logger,
	})

	server := httpapi.NewServer(cfg.Server.Addr, logger, router)
	return server.Run(ctx)
}
