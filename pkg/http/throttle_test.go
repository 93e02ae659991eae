package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"strmsync/pkg/http/mocks"
)

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBuffer(nil)),
	}
}

func TestThrottle_Do(t *testing.T) {
	t.Run("enforces minimum interval between requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(okResponse(), nil).Times(2)

		interval := 50 * time.Millisecond
		throttle := NewThrottle(mhttp, interval)

		start := time.Now()
		_, err = throttle.Do(req)
		require.NoError(t, err)
		_, err = throttle.Do(req)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, time.Since(start), interval)
	})

	t.Run("zero interval does not wait", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(okResponse(), nil).Times(2)

		throttle := NewThrottle(mhttp, 0)
		_, err = throttle.Do(req)
		require.NoError(t, err)
		_, err = throttle.Do(req)
		require.NoError(t, err)
	})

	t.Run("cancelled context aborts the wait", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		throttle := NewThrottle(mhttp, time.Minute)

		first, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)
		mhttp.EXPECT().Do(first).Return(okResponse(), nil)
		_, err = throttle.Do(first)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		second, err := http.NewRequestWithContext(ctx, "GET", "https://example.com", nil)
		require.NoError(t, err)

		_, err = throttle.Do(second)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
