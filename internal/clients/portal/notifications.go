package portal

import (
	"context"

	"github.com/jathow/careertrack/internal/entities"
)

func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool) ([]entities.Notification, error) {

	path := "/notifications"
	if unreadOnly {
		path += "?unread=true"
	}

	body, err := c.sendRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]entities.Notification](body)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {

	_, err := c.sendRequest(ctx, "PUT", "/notifications/"+id+"/read", nil)
	return err
}

func (c *Client) GetAdminReport(ctx context.Context) (entities.AdminReport, error) {

	body, err := c.sendRequest(ctx, "GET", "/admin/reports/summary", nil)
	if err != nil {
		return entities.AdminReport{}, err
	}
	return decode[entities.AdminReport](body)
}
