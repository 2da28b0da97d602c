package anthropic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) retryConfig {
	return retryConfig{maxAttempts: attempts, initialBackoff: time.Millisecond, multiplier: 1.0}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(errors.New("anthropic: create message: 429 rate limit exceeded")))
	assert.True(t, isTransient(errors.New("api error: overloaded_error")))
	assert.True(t, isTransient(errors.New("read tcp: i/o timeout")))
	assert.False(t, isTransient(errors.New("401 unauthorized")))
	assert.False(t, isTransient(errors.New("invalid request body")))
	assert.False(t, isTransient(nil))
}

func TestWithRetry_SucceedsAfterTransientFailure(t *testing.T) {
	calls := 0
	resp, err := withRetry(context.Background(), fastRetry(3), func(ctx context.Context) (*MessageResponse, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("503 service unavailable")
		}
		return &MessageResponse{ID: "msg_1"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "msg_1", resp.ID)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_NonTransientStopsImmediately(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), fastRetry(3), func(ctx context.Context) (*MessageResponse, error) {
		calls++
		return nil, errors.New("400 invalid request")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), fastRetry(2), func(ctx context.Context) (*MessageResponse, error) {
		calls++
		return nil, errors.New("502 bad gateway")
	})

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := withRetry(ctx, fastRetry(3), func(ctx context.Context) (*MessageResponse, error) {
		calls++
		return nil, errors.New("503 service unavailable")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestMessageResponse_Text(t *testing.T) {
	resp := &MessageResponse{Content: []ContentBlock{
		{Type: "text", Text: "hello "},
		{Type: "tool_use"},
		{Type: "text", Text: "world"},
	}}
	assert.Equal(t, "hello world", resp.Text())
}
