package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type (
	Config struct {
		Language         string `json:"language"`
		MaxVideos        int    `json:"max_videos"`
		ActiveClassifier string `json:"active_classifier"` // "local", "gemini", "remote"
		YouTubeAPIKey    string `json:"youtube_api_key"`
		PathFile         string `json:"path_file"`

		Gemini      GeminiConfig      `json:"gemini_config"`
		Analyzer    AnalyzerConfig    `json:"analyzer_config"`
		HuggingFace HuggingFaceConfig `json:"huggingface_config"`
	}

	GeminiConfig struct {
		APIKey string `json:"api_key,omitempty"`
		Model  string `json:"model,omitempty"`
	}

	// AnalyzerConfig points at the remote commit-analysis service.
	AnalyzerConfig struct {
		BaseURL string `json:"base_url,omitempty"`
		// Secret signs the short-lived request tokens; empty disables auth.
		Secret            string `json:"secret,omitempty"`
		RequestsPerMinute int    `json:"requests_per_minute,omitempty"`
	}

	HuggingFaceConfig struct {
		Token string `json:"token,omitempty"`
		Model string `json:"model,omitempty"`
	}
)

const (
	defaultLang              = "en"
	defaultMaxVideos         = 25
	defaultClassifier        = "local"
	defaultGeminiModel       = "gemini-1.5-flash"
	defaultHFModel           = "piyushcoderhack/Commit_analysis"
	defaultRequestsPerMinute = 30
)

// ClassifierProviders lists the accepted active_classifier values.
var ClassifierProviders = []string{"local", "gemini", "remote"}

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".vidcommit")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	config.PathFile = configPath
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded config is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:         defaultLang,
		MaxVideos:        defaultMaxVideos,
		ActiveClassifier: defaultClassifier,
		PathFile:         path,

		Gemini: GeminiConfig{
			Model: defaultGeminiModel,
		},
		Analyzer: AnalyzerConfig{
			RequestsPerMinute: defaultRequestsPerMinute,
		},
		HuggingFace: HuggingFaceConfig{
			Model: defaultHFModel,
		},
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.MaxVideos == 0 {
		config.MaxVideos = defaultMaxVideos
	}
	if config.ActiveClassifier == "" {
		config.ActiveClassifier = defaultClassifier
	}
	if config.Gemini.Model == "" {
		config.Gemini.Model = defaultGeminiModel
	}
	if config.HuggingFace.Model == "" {
		config.HuggingFace.Model = defaultHFModel
	}
	if config.Analyzer.RequestsPerMinute == 0 {
		config.Analyzer.RequestsPerMinute = defaultRequestsPerMinute
	}
}

func validateConfig(config *Config) error {
	if config.MaxVideos <= 0 {
		return errors.New("max_videos must be greater than 0")
	}
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}

	switch config.ActiveClassifier {
	case "local":
		// the built-in heuristic needs nothing
	case "gemini":
		if config.Gemini.APIKey == "" {
			return errors.New("gemini API key is not configured")
		}
	case "remote":
		if config.Analyzer.BaseURL == "" {
			return errors.New("analyzer base URL is not configured")
		}
	default:
		return fmt.Errorf("unsupported classifier provider: %s", config.ActiveClassifier)
	}
	return nil
}
