package store

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/samber/lo"

	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/events"
)

type resumesAPI interface {
	ListResumes(ctx context.Context) ([]entities.Resume, error)
	GetResume(ctx context.Context, id string) (entities.Resume, error)
	CreateResume(ctx context.Context, req entities.ResumeCreate) (entities.Resume, error)
	UpdateResume(ctx context.Context, id string, req entities.ResumeUpdate) (entities.Resume, error)
	DeleteResume(ctx context.Context, id string) error
	SetDefaultResume(ctx context.Context, id string) (entities.Resume, error)
	ListResumeTemplates(ctx context.Context) ([]entities.ResumeTemplate, error)
}

type Resumes struct {
	*collection[entities.Resume]
	api resumesAPI
	bus EventBus.Bus

	templatesMu sync.RWMutex
	templates   []entities.ResumeTemplate
}

func NewResumes(api resumesAPI, bus EventBus.Bus) *Resumes {
	return &Resumes{
		collection: newCollection("resumes", func(r entities.Resume) string { return r.ID }),
		api:        api,
		bus:        bus,
	}
}

func (s *Resumes) FetchAll(ctx context.Context) error {

	seq := s.beginFetch()
	items, err := s.api.ListResumes(ctx)
	if err != nil {
		s.failFetch(seq, err.Error())
		return err
	}

	s.completeFetch(seq, items)
	return nil
}

func (s *Resumes) FetchOne(ctx context.Context, id string) error {

	s.beginMutation()
	resume, err := s.api.GetResume(ctx, id)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.setSelected(resume)
	return nil
}

func (s *Resumes) Create(ctx context.Context, req entities.ResumeCreate) (entities.Resume, error) {

	s.beginMutation()

	if err := validate.Struct(req); err != nil {
		s.failMutation(err.Error())
		return entities.Resume{}, err
	}

	resume, err := s.api.CreateResume(ctx, req)
	if err != nil {
		s.failMutation(err.Error())
		return entities.Resume{}, err
	}

	if resume.IsDefault {
		s.applyNewDefault(resume, true)
	} else {
		s.prepend(resume)
	}

	s.bus.Publish(events.ResumeCreatedTopic, events.ResumeCreated{Resume: resume})
	return resume, nil
}

func (s *Resumes) Update(ctx context.Context, id string, req entities.ResumeUpdate) (entities.Resume, error) {

	s.beginMutation()
	resume, err := s.api.UpdateResume(ctx, id, req)
	if err != nil {
		s.failMutation(err.Error())
		return entities.Resume{}, err
	}

	s.applyUpdate(resume)
	s.bus.Publish(events.ResumeUpdatedTopic, events.ResumeUpdated{Resume: resume})
	return resume, nil
}

func (s *Resumes) Delete(ctx context.Context, id string) error {

	s.beginMutation()
	if err := s.api.DeleteResume(ctx, id); err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.remove(id)
	s.bus.Publish(events.ResumeDeletedTopic, events.ResumeDeleted{ResumeID: id})
	return nil
}

// SetDefault mirrors the server's single-default uniqueness constraint
// locally: the returned record becomes the default and every other cached
// resume loses the flag in the same state update.
func (s *Resumes) SetDefault(ctx context.Context, id string) error {

	s.beginMutation()
	resume, err := s.api.SetDefaultResume(ctx, id)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.applyNewDefault(resume, false)
	s.bus.Publish(events.ResumeDefaultChangedTopic, events.ResumeDefaultChanged{Resume: resume})
	return nil
}

func (s *Resumes) applyNewDefault(resume entities.Resume, created bool) {
	c := s.collection

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = lo.Map(c.items, func(r entities.Resume, _ int) entities.Resume {
		r.IsDefault = false
		return r
	})

	if created {
		c.items = append([]entities.Resume{resume}, c.items...)
	} else {
		replaced := false
		for i := range c.items {
			if c.items[i].ID == resume.ID {
				c.items[i] = resume
				replaced = true
				break
			}
		}
		if !replaced {
			c.items = append([]entities.Resume{resume}, c.items...)
		}
	}

	if c.selected != nil {
		if c.selected.ID == resume.ID {
			copied := resume
			c.selected = &copied
		} else {
			c.selected.IsDefault = false
		}
	}
	c.loading = false
}

func (s *Resumes) FetchTemplates(ctx context.Context) error {

	templates, err := s.api.ListResumeTemplates(ctx)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.templatesMu.Lock()
	s.templates = templates
	s.templatesMu.Unlock()
	return nil
}

func (s *Resumes) Templates() []entities.ResumeTemplate {
	s.templatesMu.RLock()
	defer s.templatesMu.RUnlock()

	templates := make([]entities.ResumeTemplate, len(s.templates))
	copy(templates, s.templates)
	return templates
}

// Default returns the cached default resume, if any.
func (s *Resumes) Default() (entities.Resume, bool) {
	c := s.collection

	c.mu.RLock()
	defer c.mu.RUnlock()

	return lo.Find(c.items, func(r entities.Resume) bool { return r.IsDefault })
}
