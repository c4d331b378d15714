package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds model service settings.
type Config struct {
	APIKey      string        // Gemini API key
	Model       string        // e.g. "gemini-2.0-flash"
	BaseURL     string        // Optional override (default: https://generativelanguage.googleapis.com)
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// ModelClient is the interface to a generative model provider.
type ModelClient interface {
	GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// newModelClient creates a model client based on config.
func newModelClient(config Config) (ModelClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}

	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	model := config.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GeminiClient{
		APIKey:      config.APIKey,
		Model:       model,
		BaseURL:     baseURL,
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
		Timeout:     timeout,
	}, nil
}

// MockModelClient is a mock model client for testing.
type MockModelClient struct {
	Response string // Set this for testing
	Error    error  // Set this to simulate errors
}

func (m *MockModelClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if m.Error != nil {
		return "", m.Error
	}
	if m.Response != "" {
		return m.Response, nil
	}
	// Default mock response
	return `{"columns":[{"id":"1","name":"Name","type":"name"}],"data":[{"Name":"Jane Smith"}]}`, nil
}

// GeminiClient implements ModelClient against the generateContent API.
type GeminiClient struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

func (c *GeminiClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	type part struct {
		Text string `json:"text"`
	}
	type content struct {
		Parts []part `json:"parts"`
	}
	type generationConfig struct {
		Temperature     float64 `json:"temperature,omitempty"`
		MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	}
	type reqBody struct {
		Contents         []content        `json:"contents"`
		GenerationConfig generationConfig `json:"generationConfig"`
	}

	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 8192
	}
	body := reqBody{
		Contents: []content{{Parts: []part{
			{Text: systemPrompt},
			{Text: userPrompt},
		}}},
		GenerationConfig: generationConfig{
			Temperature:     c.Temperature,
			MaxOutputTokens: maxTokens,
		},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: c.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model service: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model service returned %d: %s", resp.StatusCode, truncate(string(payload), 200))
	}

	var decoded struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in model response")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
