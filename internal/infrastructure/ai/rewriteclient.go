// Package ai calls the external chat-completion API that rewrites CVs.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	convusecases "github.com/resumelift/resumelift/internal/application/conversion/usecases"
	"github.com/resumelift/resumelift/internal/shared/config"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

const systemPrompt = "You are a professional CV writer. Rewrite the given CV " +
	"so it is tailored to the target role. Keep every fact truthful, improve " +
	"wording and structure, and return the result as markdown."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type RewriteClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewRewriteClient(cfg *config.AIConfig, logger logger.Interface) *RewriteClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &RewriteClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Rewrite sends the CV and target role to the chat-completion endpoint and
// returns the rewritten markdown.
func (c *RewriteClient) Rewrite(ctx context.Context, sourceText, targetRole string) (convusecases.RewriteResult, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Target role: %s\n\nCV:\n%s", targetRole, sourceText)},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return convusecases.RewriteResult{}, fmt.Errorf("failed to marshal rewrite request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return convusecases.RewriteResult{}, fmt.Errorf("failed to build rewrite request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return convusecases.RewriteResult{}, fmt.Errorf("rewrite request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return convusecases.RewriteResult{}, fmt.Errorf("failed to read rewrite response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("rewrite API returned non-200", "status", resp.StatusCode)
		return convusecases.RewriteResult{}, fmt.Errorf("rewrite API returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return convusecases.RewriteResult{}, fmt.Errorf("failed to decode rewrite response: %w", err)
	}
	if parsed.Error != nil {
		return convusecases.RewriteResult{}, fmt.Errorf("rewrite API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return convusecases.RewriteResult{}, fmt.Errorf("rewrite API returned no content")
	}

	return convusecases.RewriteResult{
		Text:  parsed.Choices[0].Message.Content,
		Model: c.model,
	}, nil
}
