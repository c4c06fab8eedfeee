package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/domain/ports"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/analyzer"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/huggingface"
)

// ClassifierFactory builds a commit classifier for one provider.
type ClassifierFactory interface {
	CreateClassifier(ctx context.Context, cfg *config.Config) (ports.CommitClassifier, error)

	// ValidateConfig checks that the config carries what this provider needs.
	ValidateConfig(cfg *config.Config) error

	Name() string
}

// ClassifierRegistry keeps the available classifier providers by name.
type ClassifierRegistry struct {
	mu        sync.RWMutex
	factories map[string]ClassifierFactory
}

func NewClassifierRegistry() *ClassifierRegistry {
	return &ClassifierRegistry{
		factories: make(map[string]ClassifierFactory),
	}
}

// NewDefaultRegistry returns a registry with every built-in provider.
func NewDefaultRegistry() *ClassifierRegistry {
	r := NewClassifierRegistry()
	// registering built-ins cannot collide
	_ = r.Register("local", &LocalFactory{})
	_ = r.Register("gemini", &GeminiFactory{})
	_ = r.Register("remote", &RemoteFactory{})
	return r
}

func (r *ClassifierRegistry) Register(name string, factory ClassifierFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("classifier provider '%s' is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *ClassifierRegistry) Get(name string) (ClassifierFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("classifier provider '%s' not found in the registry", name)
	}

	return factory, nil
}

func (r *ClassifierRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	sort.Strings(providers)
	return providers
}

func (r *ClassifierRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// LocalFactory builds the keyword classifier, with Hugging Face sentiment
// when a token is configured.
type LocalFactory struct{}

func (f *LocalFactory) CreateClassifier(_ context.Context, cfg *config.Config) (ports.CommitClassifier, error) {
	var scorer ports.SentimentScorer
	if cfg.HuggingFace.Token != "" {
		scorer = huggingface.NewScorer(cfg, nil)
	}
	return analyzer.NewLocalClassifier(scorer), nil
}

func (f *LocalFactory) ValidateConfig(_ *config.Config) error {
	return nil
}

func (f *LocalFactory) Name() string {
	return "local"
}

// GeminiFactory builds the Gemini-backed classifier.
type GeminiFactory struct{}

func (f *GeminiFactory) CreateClassifier(ctx context.Context, cfg *config.Config) (ports.CommitClassifier, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return gemini.NewClassifier(ctx, cfg)
}

func (f *GeminiFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini API key is not configured")
	}
	return nil
}

func (f *GeminiFactory) Name() string {
	return "gemini"
}

// RemoteFactory builds the classifier backed by the analysis service.
type RemoteFactory struct{}

func (f *RemoteFactory) CreateClassifier(_ context.Context, cfg *config.Config) (ports.CommitClassifier, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return analyzer.NewRemoteClassifier(cfg, httpclient.NewDefaultHTTPClient()), nil
}

func (f *RemoteFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.Analyzer.BaseURL == "" {
		return fmt.Errorf("analyzer base URL is not configured")
	}
	return nil
}

func (f *RemoteFactory) Name() string {
	return "remote"
}
