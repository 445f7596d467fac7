package store

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/jathow/careertrack/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeProjectsAPI struct {
	list         func() ([]entities.Project, error)
	get          func(id string) (entities.Project, error)
	create       func(req entities.ProjectCreate) (entities.Project, error)
	update       func(id string, req entities.ProjectUpdate) (entities.Project, error)
	delete       func(id string) error
	updateStatus func(id string, status entities.ProjectStatus) (entities.Project, error)
	complete     func(id string) (entities.Project, error)
}

func (f *fakeProjectsAPI) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return f.list()
}

func (f *fakeProjectsAPI) GetProject(ctx context.Context, id string) (entities.Project, error) {
	return f.get(id)
}

func (f *fakeProjectsAPI) CreateProject(ctx context.Context, req entities.ProjectCreate) (entities.Project, error) {
	return f.create(req)
}

func (f *fakeProjectsAPI) UpdateProject(ctx context.Context, id string, req entities.ProjectUpdate) (entities.Project, error) {
	return f.update(id, req)
}

func (f *fakeProjectsAPI) DeleteProject(ctx context.Context, id string) error {
	return f.delete(id)
}

func (f *fakeProjectsAPI) UpdateProjectStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	return f.updateStatus(id, status)
}

func (f *fakeProjectsAPI) CompleteProject(ctx context.Context, id string) (entities.Project, error) {
	return f.complete(id)
}

func Test_Projects_FetchFailure_SetsDisplayableError(t *testing.T) {

	assert := assert.New(t)

	api := &fakeProjectsAPI{
		list: func() ([]entities.Project, error) { return nil, errors.New("server unavailable") },
	}

	s := NewProjects(api, EventBus.New())
	assert.Error(s.FetchAll(context.Background()))
	assert.Equal("server unavailable", s.Err())
	assert.False(s.Loading())
}

func Test_Projects_CreateAfterFailedFetch_ClearsError(t *testing.T) {

	assert := assert.New(t)

	created := entities.Project{ID: "p1", Title: "Portfolio site", Status: entities.ProjectPlanning}
	api := &fakeProjectsAPI{
		list:   func() ([]entities.Project, error) { return nil, errors.New("server unavailable") },
		create: func(entities.ProjectCreate) (entities.Project, error) { return created, nil },
	}

	s := NewProjects(api, EventBus.New())
	assert.Error(s.FetchAll(context.Background()))
	assert.NotEmpty(s.Err())

	_, err := s.Create(context.Background(), entities.ProjectCreate{
		Title:         "Portfolio site",
		StartDate:     "2025-08-01",
		TargetEndDate: "2025-09-01",
	})
	assert.NoError(err)
	assert.Empty(s.Err())
	assert.Equal(created, s.Items()[0])
}

func Test_Projects_Complete_StoresServerDerivedFields(t *testing.T) {

	assert := assert.New(t)

	completed := entities.Project{
		ID:            "p1",
		Title:         "Portfolio site",
		Status:        entities.ProjectCompleted,
		Progress:      100,
		TimeRemaining: -3,
		IsOverdue:     true,
	}
	api := &fakeProjectsAPI{
		list: func() ([]entities.Project, error) {
			return []entities.Project{{ID: "p1", Title: "Portfolio site", Status: entities.ProjectInProgress, Progress: 80}}, nil
		},
		complete: func(string) (entities.Project, error) { return completed, nil },
	}

	s := NewProjects(api, EventBus.New())
	assert.NoError(s.FetchAll(context.Background()))
	assert.NoError(s.Complete(context.Background(), "p1"))

	items := s.Items()
	assert.Equal(completed, items[0])
}

func Test_Projects_Update_UnknownIdIsSilentNoop(t *testing.T) {

	assert := assert.New(t)

	ghost := entities.Project{ID: "ghost", Title: "Not cached"}
	api := &fakeProjectsAPI{
		list: func() ([]entities.Project, error) {
			return []entities.Project{{ID: "p1", Title: "Portfolio site"}}, nil
		},
		update: func(string, entities.ProjectUpdate) (entities.Project, error) { return ghost, nil },
	}

	s := NewProjects(api, EventBus.New())
	assert.NoError(s.FetchAll(context.Background()))

	record, err := s.Update(context.Background(), "ghost", entities.ProjectUpdate{})
	assert.NoError(err)
	assert.Equal(ghost, record)

	items := s.Items()
	assert.Len(items, 1)
	assert.Equal("p1", items[0].ID)
	assert.Empty(s.Err())
}
