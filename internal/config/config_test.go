package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file creates defaults", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)

		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, 25, cfg.MaxVideos)
		assert.Equal(t, "local", cfg.ActiveClassifier)
		assert.FileExists(t, filepath.Join(tmpDir, ".vidcommit", "config.json"))
	})

	t.Run("existing file is loaded and backfilled", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		content := `{"language": "es", "youtube_api_key": "yt-key"}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		cfg, err := LoadConfig(configPath)

		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "yt-key", cfg.YouTubeAPIKey)
		// unset fields fall back to defaults
		assert.Equal(t, 25, cfg.MaxVideos)
		assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
		assert.Equal(t, configPath, cfg.PathFile)
	})

	t.Run("invalid json fails", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0644))

		_, err := LoadConfig(configPath)

		assert.Error(t, err)
	})

	t.Run("gemini classifier without key fails validation", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		content := `{"language": "en", "active_classifier": "gemini"}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		_, err := LoadConfig(configPath)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "gemini API key")
	})

	t.Run("remote classifier without base URL fails validation", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		content := `{"language": "en", "active_classifier": "remote"}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		_, err := LoadConfig(configPath)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "analyzer base URL")
	})

	t.Run("unknown classifier fails validation", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		content := `{"language": "en", "active_classifier": "oracle"}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

		_, err := LoadConfig(configPath)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported classifier provider")
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfg, err := LoadConfig(tmpDir)
		require.NoError(t, err)

		cfg.Language = "es"
		cfg.YouTubeAPIKey = "yt-key"
		require.NoError(t, SaveConfig(cfg))

		loaded, err := LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, "es", loaded.Language)
		assert.Equal(t, "yt-key", loaded.YouTubeAPIKey)
	})

	t.Run("missing path fails", func(t *testing.T) {
		cfg := &Config{Language: "en", MaxVideos: 10, ActiveClassifier: "local"}

		err := SaveConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file path")
	})

	t.Run("invalid config is rejected before writing", func(t *testing.T) {
		cfg := &Config{Language: "en", MaxVideos: 0, ActiveClassifier: "local", PathFile: "ignored.json"}

		err := SaveConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_videos")
	})
}
