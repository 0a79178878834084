package keyhaven

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Environ writes variables into an environment table. The default
// implementation mutates the real process environment; tests substitute a
// fake via WithEnviron.
type Environ interface {
	Setenv(key, value string) error
}

type osEnviron struct{}

func (osEnviron) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// LoadEnv exports an environment's secrets and writes each key/value into
// the configured Environ, returning the count written. This mutates global
// process state with the default Environ and is not safe to call
// concurrently against the same process environment.
func (c *Client) LoadEnv(ctx context.Context, projectID, environment string) (int, error) {
	secrets, err := c.Export(ctx, projectID, environment)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, secret := range secrets {
		if err := c.environ.Setenv(secret.Key, secret.Value); err != nil {
			return written, fmt.Errorf("set %s: %w", secret.Key, err)
		}
		written++
	}
	c.logger.Debug("keyhaven.env_loaded",
		zap.String("project_id", projectID),
		zap.String("environment", environment),
		zap.Int("count", written))
	return written, nil
}
