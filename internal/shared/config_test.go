package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./cratedig.db" {
			t.Errorf("expected database path ./cratedig.db, got %s", config.Database.Path)
		}

		if config.Explore.FeaturedLimit != 5 {
			t.Errorf("expected featured limit 5, got %d", config.Explore.FeaturedLimit)
		}

		if config.Explore.PostLimit != 100 {
			t.Errorf("expected post limit 100, got %d", config.Explore.PostLimit)
		}

		if config.Credentials.Spotify.ClientID != "your_spotify_client_id" {
			t.Errorf("expected spotify client_id your_spotify_client_id, got %s", config.Credentials.Spotify.ClientID)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[credentials.spotify]
client_id = "abc123"
client_secret = "shhh"

[credentials.twitter]
bearer_token = "token"

[database]
path = "/tmp/test.db"
max_open_conns = 2
max_idle_conns = 1

[explore]
featured_limit = 3
post_limit = 25
rate_limit = 2.5
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Credentials.Spotify.ClientID != "abc123" {
			t.Errorf("expected client_id abc123, got %s", config.Credentials.Spotify.ClientID)
		}

		if config.Credentials.Twitter.BearerToken != "token" {
			t.Errorf("expected bearer token, got %s", config.Credentials.Twitter.BearerToken)
		}

		if config.Database.Path != "/tmp/test.db" {
			t.Errorf("expected database path /tmp/test.db, got %s", config.Database.Path)
		}

		if config.Explore.FeaturedLimit != 3 {
			t.Errorf("expected featured limit 3, got %d", config.Explore.FeaturedLimit)
		}

		if config.Explore.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %f", config.Explore.RateLimit)
		}
	})

	t.Run("LoadConfigMissing", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("loading a missing config file should fail")
		}
	})
}
