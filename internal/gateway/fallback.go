package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"bloom/internal/logger"
	"bloom/internal/port"
)

// circuitState tracks rate-limit backoff for a single provider.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackGateway tries gateways in order, skipping those with open circuits.
// Each provider is called at most once per Generate.
type FallbackGateway struct {
	gateways []port.ModelGateway
	circuits []*circuitState
	names    []string
	now      func() time.Time
}

// NewFallbackGateway creates a FallbackGateway from an ordered list of gateways and their names.
func NewFallbackGateway(gateways []port.ModelGateway, names []string) *FallbackGateway {
	circuits := make([]*circuitState, len(gateways))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackGateway{
		gateways: gateways,
		circuits: circuits,
		names:    names,
		now:      time.Now,
	}
}

// Model reports the first provider's model.
func (f *FallbackGateway) Model() string {
	if len(f.gateways) == 0 {
		return ""
	}
	return f.gateways[0].Model()
}

func (f *FallbackGateway) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.Get()
	now := f.now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, gw := range f.gateways {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			log.Info("skipping model provider, circuit open",
				zap.String("provider", f.names[i]),
				zap.Time("reset_at", resetAt))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		reply, err := gw.Generate(ctx, prompt)
		if err == nil {
			return reply, nil
		}

		log.Warn("model provider failed", zap.String("provider", f.names[i]), zap.Error(err))
		lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	if lastErr == nil || allRateLimited {
		retryAfter := earliestReset.Sub(f.now())
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return "", NewRateLimitError("all", f.Model(), fmt.Errorf("all providers rate limited"), retryAfter)
	}

	return "", fmt.Errorf("all providers failed: %w", lastErr)
}
