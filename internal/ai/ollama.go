package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Ollama talks to a local model server through /api/generate.
type Ollama struct {
	baseURL    string
	model      string
	language   string
	httpClient *http.Client
}

var _ Provider = (*Ollama)(nil)

func NewOllama(baseURL, model, language string, httpClient *http.Client) *Ollama {
	return &Ollama{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		language:   language,
		httpClient: httpClient,
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
	NumCtx      int     `json:"num_ctx"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (c *Ollama) Summarize(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, summaryPrompt(c.language, text), 500)
}

func (c *Ollama) TranslateTitle(ctx context.Context, title string) (string, error) {
	return c.generate(ctx, translatePrompt(c.language, title), 120)
}

func (c *Ollama) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, 1000)
}

func (c *Ollama) GenerateImage(context.Context, string) ([]byte, error) {
	return nil, ErrUnsupported
}

func (c *Ollama) generate(ctx context.Context, prompt string, numPredict int) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: 0.2,
			NumPredict:  numPredict,
			NumCtx:      8192,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("ollama error %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	text := clean(out.Response)
	if text == "" {
		return "", ErrNoResult
	}
	return text, nil
}
