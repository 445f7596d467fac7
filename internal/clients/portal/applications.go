package portal

import (
	"context"
	"fmt"

	"github.com/jathow/careertrack/internal/entities"
)

func (c *Client) ListApplications(ctx context.Context, filters ApplicationFilters) ([]entities.JobApplication, error) {

	if err := filters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filters: %w", err)
	}

	path := "/applications"
	if params := filters.ToUrlParams(); len(params) > 0 {
		path += "?" + params.Encode()
	}

	body, err := c.sendRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]entities.JobApplication](body)
}

func (c *Client) GetApplication(ctx context.Context, id string) (entities.JobApplication, error) {

	body, err := c.sendRequest(ctx, "GET", "/applications/"+id, nil)
	if err != nil {
		return entities.JobApplication{}, err
	}
	return decode[entities.JobApplication](body)
}

func (c *Client) CreateApplication(ctx context.Context, req entities.ApplicationCreate) (entities.JobApplication, error) {

	body, err := c.sendRequest(ctx, "POST", "/applications", req)
	if err != nil {
		return entities.JobApplication{}, err
	}
	return decode[entities.JobApplication](body)
}

func (c *Client) UpdateApplication(ctx context.Context, id string, req entities.ApplicationUpdate) (entities.JobApplication, error) {

	body, err := c.sendRequest(ctx, "PUT", "/applications/"+id, req)
	if err != nil {
		return entities.JobApplication{}, err
	}
	return decode[entities.JobApplication](body)
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {

	_, err := c.sendRequest(ctx, "DELETE", "/applications/"+id, nil)
	return err
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id string,
	status entities.ApplicationStatus) (entities.JobApplication, error) {

	payload := map[string]entities.ApplicationStatus{"status": status}
	body, err := c.sendRequest(ctx, "PUT", "/applications/"+id+"/status", payload)
	if err != nil {
		return entities.JobApplication{}, err
	}
	return decode[entities.JobApplication](body)
}

func (c *Client) UpdateApplicationNotes(ctx context.Context, id string, notes string) (entities.JobApplication, error) {

	payload := map[string]string{"notes": notes}
	body, err := c.sendRequest(ctx, "PUT", "/applications/"+id+"/notes", payload)
	if err != nil {
		return entities.JobApplication{}, err
	}
	return decode[entities.JobApplication](body)
}

func (c *Client) GetApplicationAnalytics(ctx context.Context) (entities.ApplicationAnalytics, error) {

	body, err := c.sendRequest(ctx, "GET", "/applications/analytics", nil)
	if err != nil {
		return entities.ApplicationAnalytics{}, err
	}
	return decode[entities.ApplicationAnalytics](body)
}

// ListFollowUps returns the server-computed "needs follow-up" set; the client
// never derives it from the cached list.
func (c *Client) ListFollowUps(ctx context.Context) ([]entities.JobApplication, error) {

	body, err := c.sendRequest(ctx, "GET", "/applications/follow-up", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]entities.JobApplication](body)
}
