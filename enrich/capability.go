package enrich

import (
	"context"
	"errors"
	"time"
)

// ErrNoVision is returned by DescribeImage on capabilities that only
// handle text.
var ErrNoVision = errors.New("capability has no vision support")

// probeTimeout bounds each availability check during Resolve.
const probeTimeout = 5 * time.Second

// Capability is an external AI service the pipeline may consult.
// Implementations must be safe to call after a failed Available check;
// callers treat every error as "skip this enhancement".
type Capability interface {
	// Name identifies the capability in reports and errors.
	Name() string

	// Available probes the service. It must return quickly and never
	// panic; the context carries the probe deadline.
	Available(ctx context.Context) bool

	// CompleteText sends a text prompt and returns the raw response.
	CompleteText(ctx context.Context, prompt string) (string, error)

	// DescribeImage sends an image with a prompt and returns the raw
	// response. Returns ErrNoVision when unsupported.
	DescribeImage(ctx context.Context, image []byte, prompt string) (string, error)

	// CanDescribeImages reports whether DescribeImage is supported.
	CanDescribeImages() bool
}

// Resolve probes the given capabilities in rank order and returns the
// first one that answers, or nil when none do. Rank the structure-aware
// service first when both it and a plain completion service are
// configured.
func Resolve(ctx context.Context, capabilities ...Capability) Capability {
	for _, c := range capabilities {
		if c == nil {
			continue
		}
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		ok := c.Available(probeCtx)
		cancel()
		if ok {
			return c
		}
	}
	return nil
}
