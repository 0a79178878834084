package keyhaven

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvFileContent exports an environment's secrets and renders them as .env
// file content: a header comment block followed by one KEY=value line per
// secret, ending with a trailing newline.
func (c *Client) EnvFileContent(ctx context.Context, projectID, environment string) (string, error) {
	secrets, err := c.Export(ctx, projectID, environment)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Generated by keyhaven-go\n")
	fmt.Fprintf(&b, "# Environment: %s\n", environment)
	fmt.Fprintf(&b, "# Generated at %s\n", c.now().UTC().Format(time.RFC3339))
	for _, secret := range secrets {
		fmt.Fprintf(&b, "%s=%s\n", secret.Key, renderEnvValue(secret.Value))
	}
	return b.String(), nil
}

// ImportEnvFile parses a .env file and bulk-imports its pairs into the
// given environment.
func (c *Client) ImportEnvFile(ctx context.Context, projectID, environment, path string) (BulkImportResult, error) {
	pairs, err := godotenv.Read(path)
	if err != nil {
		return BulkImportResult{}, fmt.Errorf("read env file %s: %w", path, err)
	}
	return c.BulkImport(ctx, projectID, environment, pairs)
}

var envValueEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	`$`, `\$`,
)

// renderEnvValue emits the value bare unless it contains a newline, double
// quote, single quote, space or dollar sign, in which case it is wrapped in
// double quotes with backslash, double-quote, newline and dollar escaped.
func renderEnvValue(value string) string {
	if !strings.ContainsAny(value, "\n\"' $") {
		return value
	}
	return `"` + envValueEscaper.Replace(value) + `"`
}
