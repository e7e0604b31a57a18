// Package generate turns raw change bullets into a PatchStructure,
// either via an Ollama-compatible chat endpoint or, when the model is
// unavailable or returns garbage, via a deterministic local fallback.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/KhanNadman/llm-patchsmith/internal/notes"
	"github.com/KhanNadman/llm-patchsmith/internal/safety"
)

const (
	defaultBaseURL = "http://localhost:11434/api/chat"
	defaultModel   = "gemma3:1b"

	// Single attempt, generous timeout. The fallback covers failures,
	// so there is no retry loop here.
	requestTimeout = 120 * time.Second
)

// Client talks to an Ollama-compatible /api/chat endpoint.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the chat endpoint URL.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a generator client. Defaults to localhost:11434
// with gemma3:1b.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		model:   defaultModel,
		client:  &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ModelName is the identifier recorded in telemetry.
func (c *Client) ModelName() string {
	return "ollama-" + c.model
}

// chatRequest is the Ollama /api/chat request body.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the Ollama /api/chat response body.
type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// wireStructure mirrors notes.PatchStructure but keeps needs_date as a
// pointer: a model response that omits the key means "include a date".
type wireStructure struct {
	VersionSuggestion string          `json:"version_suggestion"`
	Summary           string          `json:"summary"`
	Sections          []notes.Section `json:"sections"`
	NeedsDate         *bool           `json:"needs_date"`
}

// Generate produces a PatchStructure for the given bullets. It never
// fails: any model or parse error falls back to the local heuristic
// structure.
func (c *Client) Generate(ctx context.Context, bullets string) notes.PatchStructure {
	st, err := c.generate(ctx, bullets)
	if err != nil {
		log.Printf("generate: model call failed, using fallback: %v", err)
		return Fallback(bullets)
	}
	return st
}

func (c *Client) generate(ctx context.Context, bullets string) (notes.PatchStructure, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: safety.SystemPrompt},
			{Role: "user", Content: BuildUserPrompt(bullets)},
		},
		Stream: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return notes.PatchStructure{}, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return notes.PatchStructure{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return notes.PatchStructure{}, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return notes.PatchStructure{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return notes.PatchStructure{}, fmt.Errorf("chat error (%d): %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return notes.PatchStructure{}, fmt.Errorf("decode chat response: %w", err)
	}

	return parseStructure(chatResp.Message.Content)
}

// parseStructure parses the model's text output, stripping an optional
// code fence first.
func parseStructure(content string) (notes.PatchStructure, error) {
	cleaned := stripCodeFence(content)

	var wire wireStructure
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return notes.PatchStructure{}, fmt.Errorf("parse structure JSON: %w", err)
	}

	needsDate := true
	if wire.NeedsDate != nil {
		needsDate = *wire.NeedsDate
	}

	return notes.PatchStructure{
		VersionSuggestion: wire.VersionSuggestion,
		Summary:           wire.Summary,
		Sections:          wire.Sections,
		NeedsDate:         needsDate,
	}, nil
}

// stripCodeFence removes a leading/trailing ``` fence if the model
// wrapped its JSON in one.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.HasPrefix(lines[len(lines)-1], "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
