package keyhaven

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/keyhaven/keyhaven-go/internal/metrics"
	"github.com/keyhaven/keyhaven-go/pkg/apierror"
)

func secretsPath(projectID, environment string) string {
	return fmt.Sprintf("%s/projects/%s/environments/%s/secrets", apiPrefix, projectID, environment)
}

// ListSecrets returns secret metadata (no values) for an environment.
func (c *Client) ListSecrets(ctx context.Context, projectID, environment string) ([]Secret, error) {
	var secrets []Secret
	if err := c.get(ctx, secretsPath(projectID, environment), &secrets); err != nil {
		return nil, err
	}
	return secrets, nil
}

// GetSecret returns one secret including its decrypted value.
func (c *Client) GetSecret(ctx context.Context, projectID, environment, key string) (SecretWithValue, error) {
	var secret SecretWithValue
	path := secretsPath(projectID, environment) + "/" + key
	if err := c.get(ctx, path, &secret); err != nil {
		return SecretWithValue{}, err
	}
	return secret, nil
}

// CreateSecret creates a secret. The environment's cached export is dropped
// on success.
func (c *Client) CreateSecret(ctx context.Context, projectID, environment, key, value string) (Secret, error) {
	body := map[string]string{"key": key, "value": value}
	var secret Secret
	if err := c.call(ctx, http.MethodPost, secretsPath(projectID, environment), body, &secret); err != nil {
		return Secret{}, err
	}
	c.cache.invalidate(projectID, environment)
	return secret, nil
}

// UpdateSecret replaces the value of an existing secret. The environment's
// cached export is dropped on success.
func (c *Client) UpdateSecret(ctx context.Context, projectID, environment, key, value string) (Secret, error) {
	body := map[string]string{"value": value}
	path := secretsPath(projectID, environment) + "/" + key
	var secret Secret
	if err := c.call(ctx, http.MethodPut, path, body, &secret); err != nil {
		return Secret{}, err
	}
	c.cache.invalidate(projectID, environment)
	return secret, nil
}

// DeleteSecret removes a secret. The environment's cached export is dropped
// on success.
func (c *Client) DeleteSecret(ctx context.Context, projectID, environment, key string) error {
	path := secretsPath(projectID, environment) + "/" + key
	if err := c.call(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(projectID, environment)
	return nil
}

// SetSecret upserts: it attempts an update and falls back to create when
// the update fails with NotFound. Any other update failure propagates
// without a create attempt.
func (c *Client) SetSecret(ctx context.Context, projectID, environment, key, value string) (Secret, error) {
	secret, err := c.UpdateSecret(ctx, projectID, environment, key, value)
	if err == nil {
		return secret, nil
	}
	if !apierror.IsNotFound(err) {
		return Secret{}, err
	}
	return c.CreateSecret(ctx, projectID, environment, key, value)
}

// Export returns every secret of an environment with values. When the
// client was built with a cache TTL, a fresh cached entry for the exact
// (project, environment) pair is returned without a request.
func (c *Client) Export(ctx context.Context, projectID, environment string) ([]SecretWithValue, error) {
	if c.cacheTTL > 0 {
		if secrets, ok := c.cache.get(projectID, environment, c.now()); ok {
			metrics.ExportCacheHits.Inc()
			c.logger.Debug("keyhaven.export_cache_hit",
				zap.String("project_id", projectID),
				zap.String("environment", environment))
			return secrets, nil
		}
	}
	metrics.ExportCacheMisses.Inc()

	var secrets []SecretWithValue
	if err := c.get(ctx, secretsPath(projectID, environment)+"/export", &secrets); err != nil {
		return nil, err
	}
	if c.cacheTTL > 0 {
		c.cache.put(projectID, environment, secrets, c.now().Add(c.cacheTTL))
	}
	return secrets, nil
}

// ExportMap projects Export into a key→value map. Keys are unique upstream;
// if a duplicate ever appears the last one wins.
func (c *Client) ExportMap(ctx context.Context, projectID, environment string) (map[string]string, error) {
	secrets, err := c.Export(ctx, projectID, environment)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(secrets))
	for _, secret := range secrets {
		values[secret.Key] = secret.Value
	}
	return values, nil
}

// BulkImport creates or updates many secrets in one call. The environment's
// cached export is dropped on success.
func (c *Client) BulkImport(ctx context.Context, projectID, environment string, secrets map[string]string) (BulkImportResult, error) {
	body := map[string]any{"secrets": secrets}
	var result BulkImportResult
	if err := c.call(ctx, http.MethodPost, secretsPath(projectID, environment)+"/import", body, &result); err != nil {
		return BulkImportResult{}, err
	}
	c.cache.invalidate(projectID, environment)
	return result, nil
}

// SecretHistory returns prior versions of one secret, newest first.
func (c *Client) SecretHistory(ctx context.Context, projectID, environment, key string) ([]SecretHistoryEntry, error) {
	var history []SecretHistoryEntry
	path := secretsPath(projectID, environment) + "/" + key + "/history"
	if err := c.get(ctx, path, &history); err != nil {
		return nil, err
	}
	return history, nil
}
