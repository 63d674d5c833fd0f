package enrich

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ClientConfig configures a Client for an Ollama-compatible local
// inference service.
type ClientConfig struct {
	BaseURL     string
	TextModel   string
	VisionModel string // empty disables vision

	TextTimeout   time.Duration
	VisionTimeout time.Duration
}

// DefaultClientConfig returns the standard local-service configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:       "http://localhost:11434",
		TextModel:     "llama3.2",
		VisionModel:   "llama3.2-vision",
		TextTimeout:   60 * time.Second,
		VisionTimeout: 120 * time.Second,
	}
}

// Client talks to an Ollama-compatible inference service over HTTP.
// It implements Capability.
type Client struct {
	config ClientConfig
	http   *http.Client
}

// NewClient creates a client with the default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultClientConfig())
}

// NewClientWithConfig creates a client with a custom configuration.
func NewClientWithConfig(config ClientConfig) *Client {
	if config.TextTimeout == 0 {
		config.TextTimeout = DefaultClientConfig().TextTimeout
	}
	if config.VisionTimeout == 0 {
		config.VisionTimeout = DefaultClientConfig().VisionTimeout
	}
	return &Client{
		config: config,
		http:   &http.Client{},
	}
}

// Name identifies the client by its endpoint.
func (c *Client) Name() string {
	return "ollama:" + c.config.BaseURL
}

// Available probes the model listing endpoint.
func (c *Client) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(c.config.BaseURL, "/")+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// CanDescribeImages reports whether a vision model is configured.
func (c *Client) CanDescribeImages() bool {
	return c.config.VisionModel != ""
}

type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Stream bool     `json:"stream"`
	Images []string `json:"images,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// CompleteText sends a prompt to the text model.
func (c *Client) CompleteText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.TextTimeout)
	defer cancel()
	return c.generate(ctx, generateRequest{
		Model:  c.config.TextModel,
		Prompt: prompt,
	})
}

// DescribeImage sends an image with a prompt to the vision model.
func (c *Client) DescribeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	if !c.CanDescribeImages() {
		return "", ErrNoVision
	}
	ctx, cancel := context.WithTimeout(ctx, c.config.VisionTimeout)
	defer cancel()
	return c.generate(ctx, generateRequest{
		Model:  c.config.VisionModel,
		Prompt: prompt,
		Images: []string{base64.StdEncoding.EncodeToString(image)},
	})
}

func (c *Client) generate(ctx context.Context, genReq generateRequest) (string, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.config.BaseURL, "/")+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", c.Name(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s returned status %d", c.Name(), resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.Unmarshal(data, &genResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if genResp.Error != "" {
		return "", fmt.Errorf("%s: %s", c.Name(), genResp.Error)
	}
	return strings.TrimSpace(genResp.Response), nil
}
