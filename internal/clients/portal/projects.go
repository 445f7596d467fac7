package portal

import (
	"context"

	"github.com/jathow/careertrack/internal/entities"
)

func (c *Client) ListProjects(ctx context.Context) ([]entities.Project, error) {

	body, err := c.sendRequest(ctx, "GET", "/projects", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]entities.Project](body)
}

func (c *Client) GetProject(ctx context.Context, id string) (entities.Project, error) {

	body, err := c.sendRequest(ctx, "GET", "/projects/"+id, nil)
	if err != nil {
		return entities.Project{}, err
	}
	return decode[entities.Project](body)
}

func (c *Client) CreateProject(ctx context.Context, req entities.ProjectCreate) (entities.Project, error) {

	body, err := c.sendRequest(ctx, "POST", "/projects", req)
	if err != nil {
		return entities.Project{}, err
	}
	return decode[entities.Project](body)
}

func (c *Client) UpdateProject(ctx context.Context, id string, req entities.ProjectUpdate) (entities.Project, error) {

	body, err := c.sendRequest(ctx, "PUT", "/projects/"+id, req)
	if err != nil {
		return entities.Project{}, err
	}
	return decode[entities.Project](body)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {

	_, err := c.sendRequest(ctx, "DELETE", "/projects/"+id, nil)
	return err
}

func (c *Client) UpdateProjectStatus(ctx context.Context, id string,
	status entities.ProjectStatus) (entities.Project, error) {

	payload := map[string]entities.ProjectStatus{"status": status}
	body, err := c.sendRequest(ctx, "PUT", "/projects/"+id+"/status", payload)
	if err != nil {
		return entities.Project{}, err
	}
	return decode[entities.Project](body)
}

func (c *Client) CompleteProject(ctx context.Context, id string) (entities.Project, error) {

	body, err := c.sendRequest(ctx, "POST", "/projects/"+id+"/complete", nil)
	if err != nil {
		return entities.Project{}, err
	}
	return decode[entities.Project](body)
}
