package llmprovider

import (
	"context"
	"errors"
	"testing"

	"github.com/pKa1/loveSonia/config"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantNames []string
		wantErr   error
	}{
		{
			name: "sorted by priority",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 2, APIKey: "k2", Model: "gpt-4o-mini"},
				{Name: "aitunnel", Enabled: true, Priority: 1, APIKey: "k1", Model: "gpt-5-nano"},
			}},
			wantNames: []string{"aitunnel", "openai"},
		},
		{
			name: "disabled filtered out",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "aitunnel", Enabled: true, Priority: 1, APIKey: "k1", Model: "gpt-5-nano"},
				{Name: "deepseek", Enabled: false, Priority: 2, APIKey: "k2", Model: "deepseek-chat"},
			}},
			wantNames: []string{"aitunnel"},
		},
		{
			name: "broken provider skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "aitunnel", Enabled: true, Priority: 1, Model: "gpt-5-nano"},
				{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k2", Model: "deepseek-chat"},
			}},
			wantNames: []string{"deepseek"},
		},
		{
			name:    "nothing enabled",
			cfg:     &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "aitunnel"}}},
			wantErr: ErrNoProvidersConfigured,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: ErrNoProvidersConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := InitializeProviders(context.Background(), tt.cfg, &mockLogger{})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(providers) != len(tt.wantNames) {
				t.Fatalf("expected %d providers, got %d", len(tt.wantNames), len(providers))
			}
			for i, name := range tt.wantNames {
				if providers[i].Name() != name {
					t.Errorf("provider %d: expected %s, got %s", i, name, providers[i].Name())
				}
			}
		})
	}
}

func TestCreateProvider_UnknownNameNeedsBaseURL(t *testing.T) {
	_, err := createProvider(config.ProviderConfig{Name: "local", APIKey: "k", Model: "m"})
	if err == nil {
		t.Fatal("expected error for unknown provider without base_url")
	}

	p, err := createProvider(config.ProviderConfig{Name: "local", APIKey: "k", Model: "m", BaseURL: "http://localhost:8080/v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Model() != "m" {
		t.Errorf("expected model m, got %s", p.Model())
	}
}

func TestCreateProvider_InvalidTimeout(t *testing.T) {
	_, err := createProvider(config.ProviderConfig{Name: "aitunnel", APIKey: "k", Model: "m", Timeout: "soon"})
	if err == nil {
		t.Fatal("expected error for invalid timeout")
	}
}
