// Package murf talks to the voice runtime's TTS control endpoint so agents
// can switch speaking personas mid-conversation.
package murf

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
)

type Config struct {
	URL     string        `split_words:"true" required:"true"`
	APIKey  string        `envconfig:"API_KEY" required:"true"`
	Timeout time.Duration `split_words:"true" default:"10s"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.URL)
	if baseURL == "" {
		return nil, errors.New("murf url is required")
	}

	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	return client, nil
}

func MustNew(cfg Config) *Client {
	client, err := NewClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

type updateVoiceRequest struct {
	Voice string `json:"voice"`
	Style string `json:"style"`
}

// UpdateVoice asks the TTS engine to switch to a new voice and delivery
// style. Callers treat a failure as non-fatal.
func (c *Client) UpdateVoice(ctx context.Context, voice, style string) error {
	voice = strings.TrimSpace(voice)
	if voice == "" {
		return errors.New("voice is required")
	}

	payload, err := json.Marshal(updateVoiceRequest{Voice: voice, Style: style})
	if err != nil {
		return fmt.Errorf("marshal voice update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/voice", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build voice update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("voice update request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("voice update returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
