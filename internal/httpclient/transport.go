// Package httpclient implements the single-attempt HTTP transport used by
// the Keyhaven client. It builds authenticated requests, enforces the
// configured connect/read timeout, and classifies every outcome into a JSON
// payload or a typed apierror failure.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/keyhaven/keyhaven-go/internal/metrics"
	"github.com/keyhaven/keyhaven-go/pkg/apierror"
	"github.com/keyhaven/keyhaven-go/pkg/version"
)

// fallbackMessage is used when an error response carries no "error" field.
const fallbackMessage = "API request failed"

// Transport executes one HTTP request per call against the Keyhaven API.
// There is no retry, no backoff, and no rate limiting: every non-2xx
// response or transport-level fault is surfaced to the caller unchanged.
type Transport struct {
	logger  *zap.Logger
	http    *http.Client
	baseURL string
	token   string
}

// New creates a Transport with a dedicated http.Client whose overall timeout
// and dial timeout are both set to timeout, so connection establishment and
// response reading are each bounded.
func New(logger *zap.Logger, baseURL, token string, timeout time.Duration) *Transport {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: timeout}).DialContext,
		},
	}
	return NewWithClient(logger, baseURL, token, client)
}

// NewWithClient creates a Transport around an injected http.Client.
func NewWithClient(logger *zap.Logger, baseURL, token string, client *http.Client) *Transport {
	return &Transport{
		logger:  logger,
		http:    client,
		baseURL: baseURL,
		token:   token,
	}
}

// Send issues a single method request for path (relative to the base URL),
// serializing body as JSON when non-nil. On a 2xx response it returns the
// decoded payload with any top-level "data" envelope already unwrapped; a
// 204 returns nil. Every failure is an *apierror.Error.
func (t *Transport) Send(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	url := t.baseURL + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		return nil, t.classifyTransportError(method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, t.classifyTransportError(method, url, err)
	}
	elapsed := time.Since(start)
	metrics.IncRequest(method, resp.StatusCode)
	metrics.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseErrorBody(resp.StatusCode, respBody)
		t.logger.Warn("keyhaven.api_error",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("kind", string(apiErr.Kind)))
		return nil, apiErr
	}

	t.logger.Debug("keyhaven.request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return json.RawMessage("{}"), nil
	}

	payload, ok := unwrapData(respBody)
	if !ok {
		// 2xx with a body that is not JSON at all.
		return nil, &apierror.Error{
			Kind:    apierror.KindAPI,
			Status:  resp.StatusCode,
			Message: string(respBody),
		}
	}
	return payload, nil
}

// classifyTransportError distinguishes deadline faults (Timeout, treated as
// status 408) from DNS/connection faults (Connection, status 0).
func (t *Transport) classifyTransportError(method, url string, err error) *apierror.Error {
	metrics.IncRequest(method, 0)

	var netErr net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())

	if timedOut {
		t.logger.Warn("keyhaven.request_timeout",
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err))
		return apierror.Timeout("request timed out: " + err.Error())
	}

	t.logger.Warn("keyhaven.request_failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Error(err))
	return apierror.Connection("connection failed: " + err.Error())
}

// errorBody is the JSON shape of a Keyhaven error response.
type errorBody struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details"`
}

// parseErrorBody maps a non-2xx response to its typed failure. A body that
// is not valid JSON falls back to a generic API error carrying the raw text.
func parseErrorBody(status int, body []byte) *apierror.Error {
	if len(bytes.TrimSpace(body)) == 0 {
		return apierror.New(status, "", fallbackMessage, nil)
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &apierror.Error{
			Kind:    apierror.KindAPI,
			Status:  status,
			Message: string(body),
		}
	}

	message := parsed.Error
	if message == "" {
		message = fallbackMessage
	}
	return apierror.New(status, parsed.Code, message, parsed.Details)
}

// unwrapData returns the payload nested under a top-level "data" field when
// present, or the whole body otherwise. It applies uniformly to list and
// single-object responses. ok is false when body is not valid JSON.
func unwrapData(body []byte) (json.RawMessage, bool) {
	if !json.Valid(body) {
		return nil, false
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if data, found := envelope["data"]; found {
			return data, true
		}
	}
	return json.RawMessage(body), true
}
