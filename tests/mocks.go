package tests

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/jathow/careertrack/internal/entities"
)

type mockHTTPClient struct {
	do func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.do(req)
}

func jsonResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

type mockReminderSource struct {
	notifications []entities.Notification
}

func (m *mockReminderSource) ListFollowUps(context.Context) ([]entities.JobApplication, error) {
	return nil, nil
}

func (m *mockReminderSource) ListNotifications(context.Context, bool) ([]entities.Notification, error) {
	return m.notifications, nil
}

func (m *mockReminderSource) MarkNotificationRead(context.Context, string) error {
	return nil
}
