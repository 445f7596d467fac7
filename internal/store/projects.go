package store

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/events"
)

type projectsAPI interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	CreateProject(ctx context.Context, req entities.ProjectCreate) (entities.Project, error)
	UpdateProject(ctx context.Context, id string, req entities.ProjectUpdate) (entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
	UpdateProjectStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	CompleteProject(ctx context.Context, id string) (entities.Project, error)
}

type Projects struct {
	*collection[entities.Project]
	api projectsAPI
	bus EventBus.Bus
}

func NewProjects(api projectsAPI, bus EventBus.Bus) *Projects {
	return &Projects{
		collection: newCollection("projects", func(p entities.Project) string { return p.ID }),
		api:        api,
		bus:        bus,
	}
}

func (s *Projects) FetchAll(ctx context.Context) error {

	seq := s.beginFetch()
	items, err := s.api.ListProjects(ctx)
	if err != nil {
		s.failFetch(seq, err.Error())
		return err
	}

	s.completeFetch(seq, items)
	return nil
}

func (s *Projects) FetchOne(ctx context.Context, id string) error {

	s.beginMutation()
	project, err := s.api.GetProject(ctx, id)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.setSelected(project)
	return nil
}

func (s *Projects) Create(ctx context.Context, req entities.ProjectCreate) (entities.Project, error) {

	s.beginMutation()

	if err := validate.Struct(req); err != nil {
		s.failMutation(err.Error())
		return entities.Project{}, err
	}

	project, err := s.api.CreateProject(ctx, req)
	if err != nil {
		s.failMutation(err.Error())
		return entities.Project{}, err
	}

	s.prepend(project)
	s.bus.Publish(events.ProjectCreatedTopic, events.ProjectCreated{Project: project})
	return project, nil
}

func (s *Projects) Update(ctx context.Context, id string, req entities.ProjectUpdate) (entities.Project, error) {

	s.beginMutation()

	if err := validate.Struct(req); err != nil {
		s.failMutation(err.Error())
		return entities.Project{}, err
	}

	project, err := s.api.UpdateProject(ctx, id, req)
	if err != nil {
		s.failMutation(err.Error())
		return entities.Project{}, err
	}

	s.applyUpdate(project)
	s.bus.Publish(events.ProjectUpdatedTopic, events.ProjectUpdated{Project: project})
	return project, nil
}

func (s *Projects) Delete(ctx context.Context, id string) error {

	s.beginMutation()
	if err := s.api.DeleteProject(ctx, id); err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.remove(id)
	s.bus.Publish(events.ProjectDeletedTopic, events.ProjectDeleted{ProjectID: id})
	return nil
}

func (s *Projects) SetStatus(ctx context.Context, id string, status entities.ProjectStatus) error {

	s.beginMutation()
	project, err := s.api.UpdateProjectStatus(ctx, id, status)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.applyUpdate(project)
	s.bus.Publish(events.ProjectUpdatedTopic, events.ProjectUpdated{Project: project})
	return nil
}

// Complete marks the project finished server-side; progress, timeRemaining
// and isOverdue come back recomputed and are stored as received.
func (s *Projects) Complete(ctx context.Context, id string) error {

	s.beginMutation()
	project, err := s.api.CompleteProject(ctx, id)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.applyUpdate(project)
	s.bus.Publish(events.ProjectUpdatedTopic, events.ProjectUpdated{Project: project})
	return nil
}
