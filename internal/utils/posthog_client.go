package utils

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultPosthogEndpoint is used when no endpoint is configured.
const DefaultPosthogEndpoint = "https://eu.i.posthog.com"

// PosthogClient sends API usage events to PostHog. A client built without an API key,
// like a nil one, drops every event.
type PosthogClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewPosthogClient returns a disabled client when apiKey is empty.
func NewPosthogClient(apiKey, endpoint string, logger *slog.Logger) (*PosthogClient, error) {
	if apiKey == "" {
		logger.Info("PostHog API key not set, API event tracking disabled.")
		return &PosthogClient{logger: logger}, nil
	}
	if endpoint == "" {
		endpoint = DefaultPosthogEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("failed to create posthog client: %w", err)
	}
	logger.Info("PostHog event tracking enabled", slog.String("endpoint", endpoint))
	return &PosthogClient{client: client, logger: logger}, nil
}

func (p *PosthogClient) Enabled() bool {
	return p != nil && p.client != nil
}

// Track enqueues one event. Delivery is batched by the PostHog client.
func (p *PosthogClient) Track(distinctID, event string, properties map[string]any) {
	if !p.Enabled() {
		return
	}
	err := p.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		p.logger.Warn("Failed to enqueue event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (p *PosthogClient) Close() {
	if !p.Enabled() {
		return
	}
	if err := p.client.Close(); err != nil {
		p.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
