package keyhaven

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func permissionsPath(projectID, environment string) string {
	return fmt.Sprintf("%s/projects/%s/environments/%s/permissions", apiPrefix, projectID, environment)
}

// ListPermissions returns the per-user permissions of an environment.
func (c *Client) ListPermissions(ctx context.Context, projectID, environment string) ([]EnvironmentPermission, error) {
	var permissions []EnvironmentPermission
	if err := c.get(ctx, permissionsPath(projectID, environment), &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

// SetPermission grants or changes one user's access to an environment.
func (c *Client) SetPermission(ctx context.Context, projectID, environment, userEmail string, access Access) (EnvironmentPermission, error) {
	body := map[string]string{"user_email": userEmail, "access": string(access)}
	var permission EnvironmentPermission
	if err := c.call(ctx, http.MethodPut, permissionsPath(projectID, environment), body, &permission); err != nil {
		return EnvironmentPermission{}, err
	}
	return permission, nil
}

// DeletePermission revokes one user's access to an environment.
func (c *Client) DeletePermission(ctx context.Context, projectID, environment, userEmail string) error {
	path := permissionsPath(projectID, environment) + "?user_email=" + url.QueryEscape(userEmail)
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// BulkSetPermissions grants or changes access for many users in one call.
func (c *Client) BulkSetPermissions(ctx context.Context, projectID, environment string, access map[string]Access) ([]EnvironmentPermission, error) {
	grants := make([]map[string]string, 0, len(access))
	for email, level := range access {
		grants = append(grants, map[string]string{"user_email": email, "access": string(level)})
	}
	body := map[string]any{"permissions": grants}
	var permissions []EnvironmentPermission
	if err := c.call(ctx, http.MethodPost, permissionsPath(projectID, environment)+"/bulk", body, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

// MyPermissions returns the calling user's own access within a project.
func (c *Client) MyPermissions(ctx context.Context, projectID string) (MemberPermissions, error) {
	var permissions MemberPermissions
	path := fmt.Sprintf("%s/projects/%s/permissions/me", apiPrefix, projectID)
	if err := c.get(ctx, path, &permissions); err != nil {
		return MemberPermissions{}, err
	}
	return permissions, nil
}

// DefaultPermission returns the project's default access level.
func (c *Client) DefaultPermission(ctx context.Context, projectID string) (DefaultProjectPermission, error) {
	var permission DefaultProjectPermission
	path := fmt.Sprintf("%s/projects/%s/default-permission", apiPrefix, projectID)
	if err := c.get(ctx, path, &permission); err != nil {
		return DefaultProjectPermission{}, err
	}
	return permission, nil
}

// SetDefaultPermission changes the project's default access level.
func (c *Client) SetDefaultPermission(ctx context.Context, projectID string, access Access) (DefaultProjectPermission, error) {
	body := map[string]string{"access": string(access)}
	var permission DefaultProjectPermission
	path := fmt.Sprintf("%s/projects/%s/default-permission", apiPrefix, projectID)
	if err := c.call(ctx, http.MethodPut, path, body, &permission); err != nil {
		return DefaultProjectPermission{}, err
	}
	return permission, nil
}
