package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tuanpmle/studyflow/internal/config"
	"github.com/tuanpmle/studyflow/internal/logger"
)

type implGenerator struct {
	cfg    config.OllamaConfig
	client *http.Client
	logger logger.Logger
}

// New creates a Generator backed by a local Ollama server.
func New(cfg config.OllamaConfig, log logger.Logger) Generator {
	return &implGenerator{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: log,
	}
}

// IsAvailable checks if the Ollama server is reachable.
func (g *implGenerator) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+"/api/tags", http.NoBody)
	if err != nil {
		return false
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Pull asks the server to download a model. Called fire-and-forget at
// startup; a pipeline run against a model still being pulled fails like any
// other generation error.
func (g *implGenerator) Pull(ctx context.Context, model string) error {
	if model == "" {
		model = g.cfg.Model
	}

	body, err := json.Marshal(map[string]any{"name": model, "stream": false})
	if err != nil {
		return fmt.Errorf("marshal pull request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/api/pull", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create pull request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("pull model %s: %w", model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pull model %s: status %d: %s", model, resp.StatusCode, string(respBody))
	}
	return nil
}

// --- internal Ollama API types ---

type ollamaGenerateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
	Stream      bool    `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// complete sends one completion request and returns the response text.
func (g *implGenerator) complete(ctx context.Context, model, prompt string, temperature float64) (string, error) {
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:       model,
		Prompt:      prompt,
		Temperature: temperature,
		NumPredict:  g.cfg.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var decoded ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	text := strings.TrimSpace(decoded.Response)
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
