package portal

import (
	"context"
	"net/url"

	"github.com/jathow/careertrack/internal/entities"
)

func (c *Client) ListInterviews(ctx context.Context, applicationID string) ([]entities.Interview, error) {

	path := "/interviews"
	if applicationID != "" {
		params := url.Values{}
		params.Add("applicationId", applicationID)
		path += "?" + params.Encode()
	}

	body, err := c.sendRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]entities.Interview](body)
}

func (c *Client) GetInterview(ctx context.Context, id string) (entities.Interview, error) {

	body, err := c.sendRequest(ctx, "GET", "/interviews/"+id, nil)
	if err != nil {
		return entities.Interview{}, err
	}
	return decode[entities.Interview](body)
}

func (c *Client) CreateInterview(ctx context.Context, req entities.InterviewCreate) (entities.Interview, error) {

	body, err := c.sendRequest(ctx, "POST", "/interviews", req)
	if err != nil {
		return entities.Interview{}, err
	}
	return decode[entities.Interview](body)
}

func (c *Client) SaveInterviewFeedback(ctx context.Context, id string, feedback string,
	questionsAsked []string) (entities.Interview, error) {

	payload := map[string]any{"feedback": feedback, "questionsAsked": questionsAsked}
	body, err := c.sendRequest(ctx, "PUT", "/interviews/"+id+"/feedback", payload)
	if err != nil {
		return entities.Interview{}, err
	}
	return decode[entities.Interview](body)
}

func (c *Client) UpdateInterviewOutcome(ctx context.Context, id string,
	outcome entities.InterviewOutcome) (entities.Interview, error) {

	payload := map[string]entities.InterviewOutcome{"outcome": outcome}
	body, err := c.sendRequest(ctx, "PUT", "/interviews/"+id+"/outcome", payload)
	if err != nil {
		return entities.Interview{}, err
	}
	return decode[entities.Interview](body)
}

func (c *Client) GetInterviewStats(ctx context.Context) (entities.InterviewStats, error) {

	body, err := c.sendRequest(ctx, "GET", "/interviews/stats", nil)
	if err != nil {
		return entities.InterviewStats{}, err
	}
	return decode[entities.InterviewStats](body)
}

func (c *Client) GetInterviewPreparation(ctx context.Context, companyName string) (entities.PreparationGuide, error) {

	body, err := c.sendRequest(ctx, "GET", "/interviews/preparation/"+url.PathEscape(companyName), nil)
	if err != nil {
		return entities.PreparationGuide{}, err
	}
	return decode[entities.PreparationGuide](body)
}
