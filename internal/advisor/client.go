package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smartboutique/internal/services"
)

const defaultHTTPTimeout = 30 * time.Second

// Config captures the runtime settings required to talk to the
// text-generation endpoint.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

// Client wraps the generative language API's generateContent call.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs an advisor client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			Model:          strings.TrimSpace(cfg.Model),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents          []generateContent `json:"contents"`
	SystemInstruction *generateContent  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one text-generation request and returns the first
// candidate's text. Failures are never retried; the caller falls back to a
// fixed message.
func (c *Client) Generate(ctx context.Context, systemPrompt, userQuery string) (string, error) {
	userQuery = strings.TrimSpace(userQuery)
	if userQuery == "" {
		return "", errors.New("advisor generate: user query required")
	}

	payload := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: userQuery}}}},
	}
	if systemPrompt = strings.TrimSpace(systemPrompt); systemPrompt != "" {
		payload.SystemInstruction = &generateContent{Parts: []generatePart{{Text: systemPrompt}}}
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("advisor generate: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("advisor generate: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id, ok := services.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrTransport, "advisor", "generate", "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", services.Wrap(services.ErrTransport, "advisor", "generate", "read body", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", services.Wrap(services.ErrTransport, "advisor", "generate",
			fmt.Sprintf("http %d: %s", resp.StatusCode, summarize(body)), nil)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", services.Wrap(services.ErrMalformedResponse, "advisor", "generate", "decode response", err)
	}
	if decoded.Error != nil {
		return "", services.Wrap(services.ErrTransport, "advisor", "generate",
			strings.TrimSpace(decoded.Error.Message), nil)
	}

	text := extractText(decoded)
	if text == "" {
		return "", services.Wrap(services.ErrMalformedResponse, "advisor", "generate",
			fmt.Sprintf("no text in response: %s", summarize(body)), nil)
	}
	return text, nil
}

func (c *Client) endpoint() string {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	if c.cfg.APIKey != "" {
		endpoint += "?key=" + url.QueryEscape(c.cfg.APIKey)
	}
	return endpoint
}

func extractText(resp generateResponse) string {
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				return text
			}
		}
	}
	return ""
}

func summarize(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "<empty>"
	}
	clean := strings.Join(strings.Fields(trimmed), " ")
	const limit = 160
	runes := []rune(clean)
	if len(runes) > limit {
		clean = string(runes[:limit]) + "..."
	}
	return clean
}
