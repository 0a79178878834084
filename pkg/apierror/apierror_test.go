package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForStatus(t *testing.T) {
	assert.Equal(t, KindAuthentication, KindForStatus(401))
	assert.Equal(t, KindNotFound, KindForStatus(404))
	assert.Equal(t, KindValidation, KindForStatus(422))
	assert.Equal(t, KindRateLimit, KindForStatus(429))

	// Everything else is the generic API kind.
	for _, status := range []int{400, 403, 409, 500, 502, 503} {
		assert.Equal(t, KindAPI, KindForStatus(status), "status %d", status)
	}
}

func TestErrorDisplayIncludesStatus(t *testing.T) {
	err := New(404, "", "Secret not found", nil)
	assert.Equal(t, "keyhaven: Secret not found (status 404)", err.Error())
}

func TestErrorDisplayOmitsUnknownStatus(t *testing.T) {
	err := Connection("connection failed: no such host")
	assert.NotContains(t, err.Error(), "status")
}

func TestTimeoutCarries408(t *testing.T) {
	err := Timeout("request timed out")
	assert.Equal(t, KindTimeout, err.Kind)
	assert.Equal(t, http.StatusRequestTimeout, err.Status)
}

func TestPredicatesMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("get secret: %w", New(404, "", "Secret not found", nil))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsAuthentication(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsRateLimit(wrapped))
	assert.False(t, IsTimeout(wrapped))
	assert.False(t, IsConnection(wrapped))
}

func TestPredicatesRejectForeignErrors(t *testing.T) {
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.Nil(t, AsError(errors.New("plain")))
}

func TestAsErrorExposesFields(t *testing.T) {
	err := New(422, "invalid_key", "key is invalid", map[string]any{"field": "key"})

	apiErr := AsError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "invalid_key", apiErr.Code)
	assert.Equal(t, "key", apiErr.Details["field"])
}
