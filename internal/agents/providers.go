package agents

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProviderKind selects the wire protocol a provider speaks.
type ProviderKind string

const (
	// KindOpenAI is the OpenAI-compatible chat completions API, also spoken
	// by OpenRouter, Moonshot and most self-hosted gateways.
	KindOpenAI ProviderKind = "openai"
	// KindAnthropic is the Anthropic messages API.
	KindAnthropic ProviderKind = "anthropic"
)

// ProviderDefinition describes one LLM provider endpoint.
type ProviderDefinition struct {
	Name         string            `yaml:"name"`
	Kind         ProviderKind      `yaml:"kind"`
	BaseURL      string            `yaml:"base-url"`
	APIKeyEnv    string            `yaml:"api-key-env"`
	ModelAliases map[string]string `yaml:"model-aliases"`
}

type providersFile struct {
	Providers []ProviderDefinition `yaml:"providers"`
}

// ProviderRegistry maps provider names to their definitions.
type ProviderRegistry struct {
	Providers map[string]ProviderDefinition
}

// DefaultProviders returns the built-in provider set, used when no providers
// file is supplied.
func DefaultProviders() *ProviderRegistry {
	return registryFromList([]ProviderDefinition{
		{Name: "openai", Kind: KindOpenAI, BaseURL: "https://api.openai.com/v1", APIKeyEnv: "OPENAI_API_KEY"},
		{Name: "openrouter", Kind: KindOpenAI, BaseURL: "https://openrouter.ai/api/v1", APIKeyEnv: "OPENROUTER_API_KEY"},
		{Name: "kimi", Kind: KindOpenAI, BaseURL: "https://api.moonshot.cn/v1", APIKeyEnv: "KIMI_API_KEY"},
		{
			Name: "anthropic", Kind: KindAnthropic, BaseURL: "https://api.anthropic.com", APIKeyEnv: "ANTHROPIC_API_KEY",
			ModelAliases: map[string]string{
				"claude-3-5-sonnet": "claude-3-5-sonnet-20240620",
				"claude-3-opus":     "claude-3-opus-20240229",
				"claude-3-haiku":    "claude-3-haiku-20240307",
			},
		},
	})
}

// LoadProviders reads a providers YAML file.
func LoadProviders(path string) (*ProviderRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf providersFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, p := range pf.Providers {
		if p.Name == "" {
			return nil, fmt.Errorf("provider with empty name in %s", path)
		}
		if p.BaseURL == "" {
			return nil, fmt.Errorf("provider %q in %s has no base-url", p.Name, path)
		}
	}
	return registryFromList(pf.Providers), nil
}

func registryFromList(defs []ProviderDefinition) *ProviderRegistry {
	reg := &ProviderRegistry{Providers: map[string]ProviderDefinition{}}
	for _, p := range defs {
		if p.Kind == "" {
			p.Kind = KindOpenAI
		}
		reg.Providers[p.Name] = p
	}
	return reg
}

// Resolve parses a "provider:model" spec, applies model aliases, and returns
// the provider definition plus the resolved model name.
func (r *ProviderRegistry) Resolve(spec string) (ProviderDefinition, string, error) {
	providerName, model, found := strings.Cut(spec, ":")
	providerName = strings.TrimSpace(providerName)
	model = strings.TrimSpace(model)
	if !found || providerName == "" || model == "" {
		return ProviderDefinition{}, "", fmt.Errorf("llm spec %q must be in the form provider:model, e.g. openai:gpt-4o-mini", spec)
	}
	p, ok := r.Providers[providerName]
	if !ok {
		return ProviderDefinition{}, "", fmt.Errorf("unknown provider %q", providerName)
	}
	if alias, ok := p.ModelAliases[strings.ToLower(model)]; ok {
		model = alias
	}
	return p, model, nil
}
