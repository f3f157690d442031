package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackends(t *testing.T) {
	for _, backend := range []string{BackendFile, BackendSQLite, ""} {
		t.Run("backend="+backend, func(t *testing.T) {
			s, err := Open(backend, t.TempDir())
			require.NoError(t, err)
			defer s.Close()

			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "slot", []byte(`{"a":1}`)))
			b, ok, err := s.Get(ctx, "slot")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `{"a":1}`, string(b))
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
