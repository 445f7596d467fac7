package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"

	"github.com/jathow/careertrack/internal/clients/portal"
	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/notifications"
	"github.com/jathow/careertrack/internal/repositories"
	"github.com/jathow/careertrack/internal/services"
	"github.com/jathow/careertrack/internal/store"
)

func Test_CreateProject_ReachesStoreAndToastQueue(t *testing.T) {

	defer clearDb()

	client := portal.NewClient("http://portal.local/api",
		repositories.NewTokensRepository(dbCtx.DB), portal.NewPathTracker("/projects"))
	client.SetHTTPClient(&mockHTTPClient{do: func(req *http.Request) (*http.Response, error) {
		return jsonResponse(201, `{"data": {"id": "p1", "title": "Portfolio site",
			"startDate": "2024-06-01", "targetEndDate": "2024-08-01", "status": "PLANNING"}}`), nil
	}})

	bus := EventBus.New()
	projects := store.NewProjects(client, bus)

	queue := notifications.NewQueue()
	_, err := notifications.NewNotifier(bus, queue)
	assert.NoError(t, err)

	created, err := projects.Create(context.Background(), entities.ProjectCreate{
		Title:         "Portfolio site",
		StartDate:     "2024-06-01",
		TargetEndDate: "2024-08-01",
	})
	assert.NoError(t, err)
	bus.WaitAsync()

	assert.Equal(t, "p1", created.ID)
	assert.Len(t, projects.Items(), 1)

	toasts := queue.Toasts()
	assert.Len(t, toasts, 1)
	assert.Equal(t, "Project created", toasts[0].Message)
	assert.Equal(t, entities.SeveritySuccess, toasts[0].Severity)
}

func Test_PersistedTokenIsSentAndClearedOnUnauthorized(t *testing.T) {

	defer clearDb()

	tokens := repositories.NewTokensRepository(dbCtx.DB)
	err := tokens.Set(context.Background(), "secret-token")
	assert.NoError(t, err)

	navigator := portal.NewPathTracker("/applications")

	var sentAuthorization string
	client := portal.NewClient("http://portal.local/api", tokens, navigator)
	client.SetHTTPClient(&mockHTTPClient{do: func(req *http.Request) (*http.Response, error) {
		sentAuthorization = req.Header.Get("Authorization")
		return jsonResponse(401, `{"message": "session expired"}`), nil
	}})

	_, err = client.ListProjects(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "Bearer secret-token", sentAuthorization)
	assert.Equal(t, "/login", navigator.CurrentPath())

	token, err := tokens.Token(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, token)
}

func Test_SnapshotRestoresStoreState(t *testing.T) {

	defer clearDb()

	snapshots := repositories.NewSnapshotsRepository(dbCtx.DB)
	saved := []entities.Project{
		{ID: "p1", Title: "Portfolio site", Status: entities.ProjectInProgress},
		{ID: "p2", Title: "CLI tool", Status: entities.ProjectPlanning},
	}
	err := snapshots.Save(context.Background(), "projects", saved)
	assert.NoError(t, err)

	var restored []entities.Project
	found, err := snapshots.Load(context.Background(), "projects", &restored)
	assert.NoError(t, err)
	assert.True(t, found)

	projects := store.NewProjects(nil, EventBus.New())
	projects.Hydrate(restored)

	assert.Equal(t, saved, projects.Items())
}

func Test_DismissedNotificationsNotReplayedAcrossRuns(t *testing.T) {

	defer clearDb()

	source := &mockReminderSource{notifications: []entities.Notification{
		{ID: "n1", Message: "Offer received!", Severity: entities.SeveritySuccess},
	}}
	dismissed := repositories.NewDismissedNotificationsRepository(dbCtx.DB)

	bus := EventBus.New()
	queue := notifications.NewQueue()
	_, err := notifications.NewNotifier(bus, queue)
	assert.NoError(t, err)

	service, err := services.NewReminderService(source, dismissed, bus, "0 9 * * *")
	assert.NoError(t, err)
	defer service.Stop()

	service.RunNow()
	service.RunNow()
	bus.WaitAsync()

	toasts := queue.Toasts()
	assert.Len(t, toasts, 1)
	assert.Equal(t, "Offer received!", toasts[0].Message)
}
