package config

import (
	"testing"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid single provider",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "aitunnel", Enabled: true, Priority: 1, Model: "gpt-5-nano"},
			}},
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "aitunnel", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "aitunnel", Enabled: true, Priority: 1, Model: "a"},
				{Name: "openai", Enabled: true, Priority: 1, Model: "b"},
			}},
			wantErr: true,
		},
		{
			name: "nothing enabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "aitunnel", Priority: 1, Model: "a"},
			}},
			wantErr: true,
		},
		{
			name: "disabled providers are not checked for priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "aitunnel", Enabled: true, Priority: 1, Model: "a"},
				{Name: "openai", Priority: 0, Model: "b"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("LOVESONIA_TEST_KEY", "secret")

	if got := expandEnvVar("${LOVESONIA_TEST_KEY}"); got != "secret" {
		t.Errorf("expandEnvVar() = %q, want %q", got, "secret")
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expandEnvVar() = %q, want %q", got, "plain")
	}
	if got := expandEnvVar("${LOVESONIA_MISSING_KEY}"); got != "" {
		t.Errorf("expandEnvVar() of unset var = %q, want empty", got)
	}
}
