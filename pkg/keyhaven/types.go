package keyhaven

import "time"

// User is the account the bearer token authenticates as.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Project is a top-level container for environments and their secrets.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Environment is a named secret namespace within a project (for example
// "development" or "production").
type Environment struct {
	Name      string    `json:"name"`
	ProjectID string    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectWithEnvironments is a Project together with its environment list,
// as returned by the single-project endpoint.
type ProjectWithEnvironments struct {
	Project
	Environments []Environment `json:"environments"`
}

// Secret is the metadata-only shape returned by list and mutation
// endpoints. It never carries a value; that is the API's contract, not a
// client-side omission.
type Secret struct {
	Key         string    `json:"key"`
	ProjectID   string    `json:"project_id"`
	Environment string    `json:"environment"`
	Version     int       `json:"version"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SecretWithValue adds the decrypted value, and the source environment when
// the secret is inherited rather than defined directly.
type SecretWithValue struct {
	Secret
	Value         string `json:"value"`
	InheritedFrom string `json:"inherited_from,omitempty"`
}

// SecretHistoryEntry is one prior version of a secret.
type SecretHistoryEntry struct {
	Key       string    `json:"key"`
	Version   int       `json:"version"`
	Value     string    `json:"value"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

// BulkImportResult summarizes a bulk secret import.
type BulkImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

// Access is a permission level on a project or environment.
type Access string

const (
	AccessRead  Access = "read"
	AccessWrite Access = "write"
	AccessAdmin Access = "admin"
)

// EnvironmentPermission grants one user an access level on one environment.
type EnvironmentPermission struct {
	UserEmail   string `json:"user_email"`
	Environment string `json:"environment"`
	Access      Access `json:"access"`
}

// MemberPermissions describes the calling user's own access within a
// project, per environment.
type MemberPermissions struct {
	ProjectID    string            `json:"project_id"`
	Access       Access            `json:"access"`
	Environments map[string]Access `json:"environments"`
}

// DefaultProjectPermission is the access level granted to members who have
// no explicit environment permission.
type DefaultProjectPermission struct {
	ProjectID string `json:"project_id"`
	Access    Access `json:"access"`
}
