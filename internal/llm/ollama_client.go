package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"healthme-backend/utilities"
)

// OllamaClient generates narrative text against a self-hosted Ollama
// instance (/api/generate).
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaClient creates an Ollama-backed client from explicit
// configuration.
func NewOllamaClient(cfg Config) *OllamaClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 600 * time.Second
	}
	model := cfg.Model
	if model == "" {
		model = "mistral"
	}
	return &OllamaClient{
		baseURL: cfg.BaseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (o *OllamaClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	requestBody, _ := json.Marshal(map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	fullBody := string(bodyBytes)

	// Ollama may stream the answer as newline-separated JSON objects even
	// on a non-streaming request; aggregate those into one string.
	if strings.Contains(fullBody, "\n") {
		return AggregateStreamedResponse(fullBody), nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", err
	}
	if responseText, ok := result["response"].(string); ok {
		return responseText, nil
	}

	return "", errors.New("invalid response from Ollama")
}

type streamChunk struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// AggregateStreamedResponse concatenates the "response" fields of a body
// containing multiple newline-separated JSON chunks into one final string.
func AggregateStreamedResponse(body string) string {
	lines := strings.Split(body, "\n")
	var builder strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		var chunk streamChunk
		if err := json.Unmarshal([]byte(trimmed), &chunk); err != nil {
			utilities.Warn("Skipping malformed stream chunk: %v", err)
			continue
		}
		builder.WriteString(chunk.Response)
	}
	return builder.String()
}
