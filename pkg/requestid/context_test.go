package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"request-uuid/pkg/requestid"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	t.Parallel()

	t.Run("set, read and clear in sequence", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithScope(context.Background())

		_, ok := requestid.Current(ctx)
		assert.False(t, ok)

		requestid.SetCurrent(ctx, "test-id-123")
		id, ok := requestid.Current(ctx)
		require.True(t, ok)
		assert.Equal(t, "test-id-123", id)

		requestid.SetCurrent(ctx, "test-id-456")
		id, _ = requestid.Current(ctx)
		assert.Equal(t, "test-id-456", id)

		requestid.ClearCurrent(ctx)
		id, ok = requestid.Current(ctx)
		assert.False(t, ok)
		assert.Empty(t, id)
	})

	t.Run("clearing an empty slot is a no-op", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithScope(context.Background())
		assert.NotPanics(t, func() {
			requestid.ClearCurrent(ctx)
			requestid.ClearCurrent(ctx)
		})
		_, ok := requestid.Current(ctx)
		assert.False(t, ok)
	})

	t.Run("absent without a scope", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		requestid.SetCurrent(ctx, "ignored")
		_, ok := requestid.Current(ctx)
		assert.False(t, ok)
		assert.NotPanics(t, func() { requestid.ClearCurrent(ctx) })
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()
		_, ok := requestid.Current(nil)
		assert.False(t, ok)
	})

	t.Run("shared with goroutines using the same context", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithScope(context.Background())
		requestid.SetCurrent(ctx, "shared")

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, ok := requestid.Current(ctx)
				assert.True(t, ok)
				assert.Equal(t, "shared", id)
			}()
		}
		wg.Wait()
	})
}

func TestWithScope(t *testing.T) {
	t.Parallel()
	ctx := requestid.WithScope(context.Background())
	assert.Equal(t, ctx, requestid.WithScope(ctx), "existing scope must be kept")

	requestid.SetRequestID(ctx, "outer")
	id, ok := requestid.FromContext(requestid.WithScope(ctx))
	require.True(t, ok)
	assert.Equal(t, requestid.ID("outer"), id)
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("creates a full UUID once and keeps it", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(requestid.WithScope(req.Context()))

		first := requestid.FromRequest(req)
		require.Len(t, first.String(), 36)
		_, err := uuid.Parse(first.String())
		require.NoError(t, err)

		assert.Equal(t, first, requestid.FromRequest(req))
		stored, ok := requestid.FromContext(req.Context())
		require.True(t, ok)
		assert.Equal(t, first, stored)
	})

	t.Run("returns a pre-populated ID unchanged", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(requestid.WithScope(req.Context()))
		requestid.SetRequestID(req.Context(), "pre-existing-request-id")

		assert.Equal(t, requestid.ID("pre-existing-request-id"), requestid.FromRequest(req))
	})

	t.Run("cannot store without a scope", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		first := requestid.FromRequest(req)
		assert.Len(t, first.String(), 36)
		assert.NotEqual(t, first, requestid.FromRequest(req))
		_, ok := requestid.FromContext(req.Context())
		assert.False(t, ok)
	})
}

func TestSetRequestID(t *testing.T) {
	t.Parallel()
	ctx := requestid.WithScope(context.Background())
	requestid.SetRequestID(ctx, "first")
	requestid.SetRequestID(ctx, "second")

	id, ok := requestid.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, requestid.ID("second"), id)

	assert.NotPanics(t, func() { requestid.SetRequestID(context.Background(), "dropped") })
}

func TestIDString(t *testing.T) {
	t.Parallel()
	id := requestid.ID("test-request-id-123")
	assert.Equal(t, "test-request-id-123", id.String())
	assert.Equal(t, requestid.ID("test-request-id-123"), id)
}
