package anthropic

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
)

// retryConfig bounds the retry loop around message creation. Only transient
// failures (rate limits, server errors, network timeouts) are retried.
type retryConfig struct {
	maxAttempts    int
	initialBackoff time.Duration
	multiplier     float64
}

var defaultRetry = retryConfig{
	maxAttempts:    3,
	initialBackoff: 500 * time.Millisecond,
	multiplier:     2.0,
}

// isTransient reports whether an error is worth retrying: network timeouts
// plus the rate-limit and server-side failure modes the API surfaces.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"429",
		"rate limit",
		"overloaded",
		"internal server error",
		"bad gateway",
		"service unavailable",
		"gateway timeout",
		"connection reset by peer",
		"i/o timeout",
		"tls handshake timeout",
	}
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// withRetry runs fn with bounded exponential backoff. Context cancellation
// and non-transient errors stop immediately.
func withRetry(ctx context.Context, cfg retryConfig, fn func(ctx context.Context) (*MessageResponse, error)) (*MessageResponse, error) {
	backoff := cfg.initialBackoff

	var resp *MessageResponse
	var err error
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		resp, err = fn(ctx)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil || !isTransient(err) || attempt == cfg.maxAttempts {
			return nil, err
		}

		zap.L().Warn("anthropic call failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff = time.Duration(float64(backoff) * cfg.multiplier)
	}
	return nil, err
}
