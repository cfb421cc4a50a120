package main

import (
	"context"
	"errors"
	"os"

	"github.com/cratedig/cratedig/internal/services"
	"github.com/cratedig/cratedig/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx := context.Background()
	logger := shared.NewLogger(nil)

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		loadedConfig, err := shared.LoadConfig(configPath)
		if err != nil {
			logger.Warn("falling back to default config", "path", configPath, "error", err)
		} else {
			config = loadedConfig
		}
	}

	var catalog services.CatalogFetcher
	var social services.SocialFetcher

	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		svc, err := services.NewSpotifyService(
			config.Credentials.Spotify.ClientID,
			config.Credentials.Spotify.ClientSecret,
			config.Explore.RateLimit,
		)
		if err != nil {
			logger.Warn("catalog service unavailable", "error", err)
		} else {
			svc.Authenticate(ctx)
			catalog = svc
		}
	}

	svc, err := services.NewTwitterService(
		config.Credentials.Twitter.BearerToken,
		config.Credentials.Twitter.APIKey,
		config.Credentials.Twitter.APISecret,
	)
	if err != nil {
		if config.Credentials.Twitter.BearerToken != "" || config.Credentials.Twitter.APIKey != "" {
			logger.Warn("social service unavailable", "error", err)
		}
	} else {
		svc.Authenticate(ctx)
		social = svc
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Catalog:    catalog,
		Social:     social,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "cratedig",
		Usage:    "Explore and cache music metadata locally",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(ctx, os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
