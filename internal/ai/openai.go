package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OpenAI talks to an OpenAI-compatible chat completions and images API.
type OpenAI struct {
	baseURL    string
	apiKey     string
	model      string
	imageModel string
	language   string
	httpClient *http.Client
}

var _ Provider = (*OpenAI)(nil)

func NewOpenAI(baseURL, apiKey, model, imageModel, language string, httpClient *http.Client) *OpenAI {
	return &OpenAI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		imageModel: imageModel,
		language:   language,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

func (c *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	return c.chat(ctx, "You are a news editor who writes faithful summaries.", summaryPrompt(c.language, text))
}

func (c *OpenAI) TranslateTitle(ctx context.Context, title string) (string, error) {
	return c.chat(ctx, "You are a professional news translator.", translatePrompt(c.language, title))
}

func (c *OpenAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.chat(ctx, "You are a helpful assistant.", prompt)
}

func (c *OpenAI) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	var resp imageResponse
	err := c.post(ctx, "/images/generations", imageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, ErrNoResult
	}

	img, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func (c *OpenAI) chat(ctx context.Context, system, user string) (string, error) {
	var resp chatResponse
	err := c.post(ctx, "/chat/completions", chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
	}, &resp)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoResult
	}

	out := clean(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrNoResult
	}
	return out, nil
}

func (c *OpenAI) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("openai error %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
