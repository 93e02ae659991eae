package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsSameInstance(t *testing.T) {
	first := Get()
	second := Get()
	assert.Same(t, first, second)
}

func TestFromCtxPrefersAttachedLogger(t *testing.T) {
	base := Get()
	attached := base.With("component", "test")

	ctx := WithCtx(context.Background(), attached)
	got := FromCtx(ctx)
	assert.NotNil(t, got)

	// Attaching the same logger again should not grow the context chain.
	again := WithCtx(ctx, attached)
	assert.Equal(t, ctx, again)
}

func TestFromCtxFallsBackToDefault(t *testing.T) {
	got := FromCtx(context.Background())
	assert.NotNil(t, got)
}
