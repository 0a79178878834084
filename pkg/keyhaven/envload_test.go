package keyhaven

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEnviron captures Setenv calls without touching the real process
// environment.
type recordingEnviron struct {
	values  map[string]string
	failOn  string
	written int
}

func (r *recordingEnviron) Setenv(key, value string) error {
	if key == r.failOn {
		return errors.New("environment table full")
	}
	r.values[key] = value
	r.written++
	return nil
}

func TestLoadEnv_WritesAllSecrets(t *testing.T) {
	environ := &recordingEnviron{values: make(map[string]string)}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"key":"DATABASE_URL","value":"postgres://localhost/db"},{"key":"API_KEY","value":"abc123"}]`))
	}), WithEnviron(environ))

	count, err := client.LoadEnv(context.Background(), "proj_123", "production")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "postgres://localhost/db", environ.values["DATABASE_URL"])
	assert.Equal(t, "abc123", environ.values["API_KEY"])
}

func TestLoadEnv_StopsOnWriteFailure(t *testing.T) {
	environ := &recordingEnviron{values: make(map[string]string), failOn: "B"}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"key":"A","value":"1"},{"key":"B","value":"2"},{"key":"C","value":"3"}]`))
	}), WithEnviron(environ))

	count, err := client.LoadEnv(context.Background(), "proj_123", "production")
	require.Error(t, err)
	assert.Equal(t, 1, count, "count reflects writes completed before the failure")
	assert.NotContains(t, environ.values, "C")
}

func TestLoadEnv_ExportFailurePropagates(t *testing.T) {
	environ := &recordingEnviron{values: make(map[string]string)}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}), WithEnviron(environ))

	count, err := client.LoadEnv(context.Background(), "proj_123", "production")
	require.Error(t, err)
	assert.Zero(t, count)
	assert.Zero(t, environ.written)
}
