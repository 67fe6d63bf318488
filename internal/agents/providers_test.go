package agents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultProvidersResolve(t *testing.T) {
	t.Parallel()

	reg := DefaultProviders()
	p, model, err := reg.Resolve("openai:gpt-4o-mini")
	require.NoError(t, err)
	require.Equal(t, KindOpenAI, p.Kind)
	require.Equal(t, "gpt-4o-mini", model)
	require.Equal(t, "OPENAI_API_KEY", p.APIKeyEnv)
}

func TestResolveAppliesModelAliases(t *testing.T) {
	t.Parallel()

	reg := DefaultProviders()
	p, model, err := reg.Resolve("anthropic:claude-3-5-sonnet")
	require.NoError(t, err)
	require.Equal(t, KindAnthropic, p.Kind)
	require.Equal(t, "claude-3-5-sonnet-20240620", model)
}

func TestResolveRejectsBadSpecs(t *testing.T) {
	t.Parallel()

	reg := DefaultProviders()
	for _, spec := range []string{"", "openai", ":gpt-4", "openai:", "nope:gpt-4"} {
		_, _, err := reg.Resolve(spec)
		require.Error(t, err, "spec %q", spec)
	}
}

func TestLoadProviders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "llms.yml")
	content := `providers:
  - name: local
    base-url: http://localhost:8080/v1
    api-key-env: LOCAL_API_KEY
  - name: claude
    kind: anthropic
    base-url: https://api.anthropic.com
    api-key-env: ANTHROPIC_API_KEY
    model-aliases:
      fast: claude-3-haiku-20240307
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg, err := LoadProviders(path)
	require.NoError(t, err)

	p, model, err := reg.Resolve("local:llama3")
	require.NoError(t, err)
	require.Equal(t, KindOpenAI, p.Kind, "kind defaults to openai-compatible")
	require.Equal(t, "llama3", model)

	_, model, err = reg.Resolve("claude:fast")
	require.NoError(t, err)
	require.Equal(t, "claude-3-haiku-20240307", model)
}

func TestLoadProvidersRejectsIncomplete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "llms.yml")
	require.NoError(t, os.WriteFile(path, []byte("providers:\n  - name: broken\n"), 0o644))

	_, err := LoadProviders(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "base-url")
}
