package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"wikibench/internal/eval"
)

const (
	llmTimeout     = 120 * time.Second
	llmMaxTokens   = 800
	llmTemperature = 0.1

	anthropicVersion = "2023-06-01"
)

// chatAgent asks a chat-completion model for a conceptual path. Chat-only
// models cannot browse, so in tool-use mode it returns no path and is scored
// as having given up.
type chatAgent struct {
	provider   ProviderDefinition
	model      string
	targetPage string
	httpClient *http.Client
}

func NewChat(provider ProviderDefinition, model, targetPage string) eval.Agent {
	return &chatAgent{
		provider:   provider,
		model:      model,
		targetPage: targetPage,
		httpClient: &http.Client{Timeout: llmTimeout},
	}
}

func (a *chatAgent) Name() string {
	return fmt.Sprintf("llm-%s:%s", a.provider.Name, a.model)
}

func (a *chatAgent) Solve(ctx context.Context, startPage, startURL string, mode eval.Mode) ([]string, error) {
	if mode == eval.ModeToolUse {
		return nil, nil
	}
	text, err := a.complete(ctx, a.prompt(startPage))
	if err != nil {
		return nil, err
	}
	return ExtractPath(text, startPage, a.targetPage), nil
}

func (a *chatAgent) prompt(startPage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Find a path from the Wikipedia page %q to %q by following only on-wiki links.\n\n", startPage, a.targetPage)
	fmt.Fprintf(&b, "Starting page: %s\nTarget page: %s\n\n", startPage, a.targetPage)
	b.WriteString("Output format (strict):\n")
	b.WriteString("- Only the list of Wikipedia page titles, one per line\n")
	b.WriteString("- Do NOT include the starting page in your list\n")
	b.WriteString("- The last line MUST be the target page\n")
	b.WriteString("- No bullets, numbers, dashes, or commentary\n")
	return b.String()
}

func (a *chatAgent) complete(ctx context.Context, prompt string) (string, error) {
	switch a.provider.Kind {
	case KindAnthropic:
		return a.completeAnthropic(ctx, prompt)
	default:
		return a.completeOpenAI(ctx, prompt)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (a *chatAgent) completeOpenAI(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":       a.model,
		"messages":    []chatMessage{{Role: "user", Content: prompt}},
		"temperature": llmTemperature,
		"max_tokens":  llmMaxTokens,
	}
	var parsed struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	endpoint := strings.TrimRight(a.provider.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{}
	if key := a.apiKey(); key != "" {
		headers["Authorization"] = "Bearer " + key
	}
	if err := a.post(ctx, endpoint, headers, body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", a.provider.Name)
	}
	return parsed.Choices[0].Message.Content, nil
}

func (a *chatAgent) completeAnthropic(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":       a.model,
		"messages":    []chatMessage{{Role: "user", Content: prompt}},
		"temperature": llmTemperature,
		"max_tokens":  llmMaxTokens,
	}
	var parsed struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	endpoint := strings.TrimRight(a.provider.BaseURL, "/") + "/v1/messages"
	headers := map[string]string{"anthropic-version": anthropicVersion}
	if key := a.apiKey(); key != "" {
		headers["x-api-key"] = key
	}
	if err := a.post(ctx, endpoint, headers, body, &parsed); err != nil {
		return "", err
	}
	var parts []string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%s returned no text content", a.provider.Name)
	}
	return strings.Join(parts, "\n"), nil
}

func (a *chatAgent) post(ctx context.Context, endpoint string, headers map[string]string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s: %s", a.provider.Name, resp.Status, truncate(string(data), 200))
	}
	return json.Unmarshal(data, out)
}

func (a *chatAgent) apiKey() string {
	if a.provider.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(a.provider.APIKeyEnv)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
