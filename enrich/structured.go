package enrich

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tsawler/lectern/analysis"
)

// AnalysisClientConfig configures the document layout analysis service
// client.
type AnalysisClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultAnalysisClientConfig returns the standard configuration.
func DefaultAnalysisClientConfig() AnalysisClientConfig {
	return AnalysisClientConfig{
		BaseURL: "http://localhost:5001",
		Timeout: 300 * time.Second,
	}
}

// AnalysisClient submits a presentation container to an external layout
// analysis service and returns its validated result. Analysis covers a
// whole document and can take minutes on large decks, hence the generous
// default timeout.
type AnalysisClient struct {
	config AnalysisClientConfig
	http   *http.Client
}

// NewAnalysisClient creates a client with the default configuration.
func NewAnalysisClient() *AnalysisClient {
	return NewAnalysisClientWithConfig(DefaultAnalysisClientConfig())
}

// NewAnalysisClientWithConfig creates a client with a custom
// configuration.
func NewAnalysisClientWithConfig(config AnalysisClientConfig) *AnalysisClient {
	if config.Timeout == 0 {
		config.Timeout = DefaultAnalysisClientConfig().Timeout
	}
	return &AnalysisClient{config: config, http: &http.Client{}}
}

// Available probes the service's health endpoint.
func (c *AnalysisClient) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(c.config.BaseURL, "/")+"/health", nil)
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

// Analyze submits the container at path and returns the validated
// analysis document.
func (c *AnalysisClient) Analyze(ctx context.Context, path string) (*analysis.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.config.BaseURL, "/")+"/v1/analyze", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.presentationml.presentation")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling analysis service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading analysis response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	return analysis.Decode(body)
}
