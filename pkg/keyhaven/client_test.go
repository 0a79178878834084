package keyhaven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins up an httptest server and a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)
	client, err := New("tok_test", opts...)
	require.NoError(t, err)
	return client
}

// fakeClock is an adjustable wall clock for TTL tests.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time { return f.current }

func (f *fakeClock) advance(d time.Duration) { f.current = f.current.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)}
}

// ─── Construction ─────────────────────────────────────────────────────────────

func TestNew_EmptyTokenRejected(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestNew_BaseURLFromEnvironment(t *testing.T) {
	var hit bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hit = true
		_, _ = w.Write([]byte(`{"id":"u_1","email":"dev@example.com"}`))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("KEYHAVEN_API_URL", srv.URL)

	client, err := New("tok_test")
	require.NoError(t, err)

	_, err = client.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestNew_CacheTTLFromEnvironment(t *testing.T) {
	t.Setenv("KEYHAVEN_CACHE_TTL", "300")

	var requests int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.Export(context.Background(), "proj_123", "production")
	require.NoError(t, err)
	_, err = client.Export(context.Background(), "proj_123", "production")
	require.NoError(t, err)
	assert.Equal(t, 1, requests, "second export within TTL must be served from cache")
}

// ─── Users ────────────────────────────────────────────────────────────────────

func TestMe(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/me", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"data":{"id":"u_1","email":"dev@example.com","name":"Dev"}}`))
	}))

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u_1", user.ID)
	assert.Equal(t, "dev@example.com", user.Email)
	assert.Equal(t, "Dev", user.Name)
}

// ─── Projects ─────────────────────────────────────────────────────────────────

func TestListProjects(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":"proj_123","name":"backend"},{"id":"proj_456","name":"frontend"}]}`))
	}))

	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "backend", projects[0].Name)
}

func TestGetProject_IncludesEnvironments(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects/proj_123", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"proj_123","name":"backend","environments":[{"name":"development","project_id":"proj_123"},{"name":"production","project_id":"proj_123"}]}`))
	}))

	project, err := client.GetProject(context.Background(), "proj_123")
	require.NoError(t, err)
	assert.Equal(t, "backend", project.Name)
	require.Len(t, project.Environments, 2)
	assert.Equal(t, "production", project.Environments[1].Name)
}

func TestCreateProject(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"proj_789","name":"infra","description":"terraform state"}`))
	}))

	project, err := client.CreateProject(context.Background(), "infra", "terraform state")
	require.NoError(t, err)
	assert.Equal(t, "proj_789", project.ID)
}

func TestDeleteProject_NoContent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteProject(context.Background(), "proj_123"))
}

// ─── Environments ─────────────────────────────────────────────────────────────

func TestListEnvironments(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects/proj_123/environments", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name":"development","project_id":"proj_123"}]`))
	}))

	environments, err := client.ListEnvironments(context.Background(), "proj_123")
	require.NoError(t, err)
	require.Len(t, environments, 1)
	assert.Equal(t, "development", environments[0].Name)
}

func TestCreateEnvironment(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name":"staging","project_id":"proj_123"}`))
	}))

	environment, err := client.CreateEnvironment(context.Background(), "proj_123", "staging")
	require.NoError(t, err)
	assert.Equal(t, "staging", environment.Name)
}

func TestDeleteEnvironment(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects/proj_123/environments/staging", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteEnvironment(context.Background(), "proj_123", "staging"))
}
