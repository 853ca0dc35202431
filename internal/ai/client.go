// Package ai wraps the external chat-completion endpoint (an Ollama-style
// /api/chat API). The endpoint is treated as an opaque text-in/text-out
// service; callers decide what to do when it fails.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Message struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

type Options struct {
	Temperature float64 `json:"temperature"`
}

type ChatRequest struct {
	Messages []Message
	// Format, when set to "json", asks the model to emit a JSON object.
	Format  string
	Options Options
}

type chatPayload struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
	Format   string    `json:"format,omitempty"`
	Options  *Options  `json:"options,omitempty"`
}

type chatResponse struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}

type Client struct {
	host       string
	model      string
	httpClient *http.Client
}

// NewClient builds a chat client from explicit configuration. The timeout
// bounds the whole completion call so a hung model never hangs a request.
func NewClient(host, model string, timeout time.Duration) *Client {
	return &Client{
		host:       host,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Chat sends the messages to the completion endpoint and returns the raw
// response text.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	payload := chatPayload{
		Model:    c.model,
		Messages: req.Messages,
		Stream:   false,
		Format:   req.Format,
	}
	if req.Options != (Options{}) {
		payload.Options = &req.Options
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	return chatResp.Message.Content, nil
}
