package keyhaven

import (
	"context"
	"fmt"
	"net/http"
)

// ListProjects returns every project visible to the token.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, apiPrefix+"/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns one project together with its environments.
func (c *Client) GetProject(ctx context.Context, projectID string) (ProjectWithEnvironments, error) {
	var project ProjectWithEnvironments
	path := fmt.Sprintf("%s/projects/%s", apiPrefix, projectID)
	if err := c.get(ctx, path, &project); err != nil {
		return ProjectWithEnvironments{}, err
	}
	return project, nil
}

// CreateProject creates a project. description may be empty.
func (c *Client) CreateProject(ctx context.Context, name, description string) (Project, error) {
	body := map[string]string{"name": name}
	if description != "" {
		body["description"] = description
	}
	var project Project
	if err := c.call(ctx, http.MethodPost, apiPrefix+"/projects", body, &project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// DeleteProject deletes a project and everything under it. The cached
// exports for the project are dropped as well.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	path := fmt.Sprintf("%s/projects/%s", apiPrefix, projectID)
	if err := c.call(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.cache.invalidateProject(projectID)
	return nil
}

// ListEnvironments returns the environments of a project.
func (c *Client) ListEnvironments(ctx context.Context, projectID string) ([]Environment, error) {
	var environments []Environment
	path := fmt.Sprintf("%s/projects/%s/environments", apiPrefix, projectID)
	if err := c.get(ctx, path, &environments); err != nil {
		return nil, err
	}
	return environments, nil
}

// CreateEnvironment creates a named environment within a project.
func (c *Client) CreateEnvironment(ctx context.Context, projectID, name string) (Environment, error) {
	path := fmt.Sprintf("%s/projects/%s/environments", apiPrefix, projectID)
	var environment Environment
	if err := c.call(ctx, http.MethodPost, path, map[string]string{"name": name}, &environment); err != nil {
		return Environment{}, err
	}
	return environment, nil
}

// DeleteEnvironment deletes an environment and its secrets, dropping the
// matching cached export.
func (c *Client) DeleteEnvironment(ctx context.Context, projectID, name string) error {
	path := fmt.Sprintf("%s/projects/%s/environments/%s", apiPrefix, projectID, name)
	if err := c.call(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(projectID, name)
	return nil
}
