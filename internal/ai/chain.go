package ai

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Chain tries providers in order, advancing only on retryable failures.
// A non-retryable failure (bad credentials, rejected request) stops the
// chain immediately since later providers would fail the same way.
type Chain struct {
	providers []Provider
}

// NewChain builds a chain from the given providers; nil entries are skipped.
func NewChain(providers ...Provider) *Chain {
	kept := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return &Chain{providers: kept}
}

// Name implements Provider.
func (c *Chain) Name() string { return "chain" }

// Complete runs the request through the chain and returns the first success.
func (c *Chain) Complete(ctx context.Context, req Request) (string, error) {
	if len(c.providers) == 0 {
		return "", ErrNoProvider
	}
	var lastErr error
	for _, p := range c.providers {
		text, err := p.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		if !IsRetryable(err) {
			return "", err
		}
		log.Warn().Err(err).Str("provider", p.Name()).Msg("provider failed, trying next")
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", lastErr
}
