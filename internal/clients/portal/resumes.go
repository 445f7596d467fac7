package portal

import (
	"context"

	"github.com/jathow/careertrack/internal/entities"
)

func (c *Client) ListResumes(ctx context.Context) ([]entities.Resume, error) {

	body, err := c.sendRequest(ctx, "GET", "/resumes", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]entities.Resume](body)
}

func (c *Client) GetResume(ctx context.Context, id string) (entities.Resume, error) {

	body, err := c.sendRequest(ctx, "GET", "/resumes/"+id, nil)
	if err != nil {
		return entities.Resume{}, err
	}
	return decode[entities.Resume](body)
}

func (c *Client) CreateResume(ctx context.Context, req entities.ResumeCreate) (entities.Resume, error) {

	body, err := c.sendRequest(ctx, "POST", "/resumes", req)
	if err != nil {
		return entities.Resume{}, err
	}
	return decode[entities.Resume](body)
}

func (c *Client) UpdateResume(ctx context.Context, id string, req entities.ResumeUpdate) (entities.Resume, error) {

	body, err := c.sendRequest(ctx, "PUT", "/resumes/"+id, req)
	if err != nil {
		return entities.Resume{}, err
	}
	return decode[entities.Resume](body)
}

func (c *Client) DeleteResume(ctx context.Context, id string) error {

	_, err := c.sendRequest(ctx, "DELETE", "/resumes/"+id, nil)
	return err
}

func (c *Client) SetDefaultResume(ctx context.Context, id string) (entities.Resume, error) {

	body, err := c.sendRequest(ctx, "PUT", "/resumes/"+id+"/default", nil)
	if err != nil {
		return entities.Resume{}, err
	}
	return decode[entities.Resume](body)
}

func (c *Client) ListResumeTemplates(ctx context.Context) ([]entities.ResumeTemplate, error) {

	body, err := c.sendRequest(ctx, "GET", "/resumes/templates", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]entities.ResumeTemplate](body)
}
