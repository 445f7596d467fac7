package store

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"

	"github.com/jathow/careertrack/internal/clients/portal"
	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/events"
	"github.com/jathow/careertrack/internal/metrics"
)

var validate = validator.New()

type applicationsAPI interface {
	ListApplications(ctx context.Context, filters portal.ApplicationFilters) ([]entities.JobApplication, error)
	GetApplication(ctx context.Context, id string) (entities.JobApplication, error)
	CreateApplication(ctx context.Context, req entities.ApplicationCreate) (entities.JobApplication, error)
	UpdateApplication(ctx context.Context, id string, req entities.ApplicationUpdate) (entities.JobApplication, error)
	DeleteApplication(ctx context.Context, id string) error
	UpdateApplicationStatus(ctx context.Context, id string, status entities.ApplicationStatus) (entities.JobApplication, error)
	UpdateApplicationNotes(ctx context.Context, id string, notes string) (entities.JobApplication, error)
	GetApplicationAnalytics(ctx context.Context) (entities.ApplicationAnalytics, error)
	ListFollowUps(ctx context.Context) ([]entities.JobApplication, error)
}

type Applications struct {
	*collection[entities.JobApplication]
	api applicationsAPI
	bus EventBus.Bus

	derivedMu    sync.RWMutex
	analytics    *entities.ApplicationAnalytics
	followUps    []entities.JobApplication
	analyticsSeq seqGuard
	followUpSeq  seqGuard
}

func NewApplications(api applicationsAPI, bus EventBus.Bus) *Applications {
	return &Applications{
		collection: newCollection("applications", func(a entities.JobApplication) string { return a.ID }),
		api:        api,
		bus:        bus,
	}
}

func (s *Applications) FetchAll(ctx context.Context, filters portal.ApplicationFilters) error {

	seq := s.beginFetch()
	items, err := s.api.ListApplications(ctx, filters)
	if err != nil {
		s.failFetch(seq, err.Error())
		return err
	}

	s.completeFetch(seq, items)
	return nil
}

func (s *Applications) FetchOne(ctx context.Context, id string) error {

	s.beginMutation()
	app, err := s.api.GetApplication(ctx, id)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.setSelected(app)
	return nil
}

func (s *Applications) Create(ctx context.Context, req entities.ApplicationCreate) (entities.JobApplication, error) {

	s.beginMutation()

	if err := validate.Struct(req); err != nil {
		s.failMutation(err.Error())
		return entities.JobApplication{}, err
	}

	app, err := s.api.CreateApplication(ctx, req)
	if err != nil {
		s.failMutation(err.Error())
		return entities.JobApplication{}, err
	}

	s.prepend(app)
	s.bus.Publish(events.ApplicationCreatedTopic, events.ApplicationCreated{Application: app})
	return app, nil
}

func (s *Applications) Update(ctx context.Context, id string, req entities.ApplicationUpdate) (entities.JobApplication, error) {

	s.beginMutation()
	app, err := s.api.UpdateApplication(ctx, id, req)
	if err != nil {
		s.failMutation(err.Error())
		return entities.JobApplication{}, err
	}

	s.applyUpdate(app)
	s.bus.Publish(events.ApplicationUpdatedTopic, events.ApplicationUpdated{Application: app})
	return app, nil
}

// Delete removes the application locally before the server confirms, and
// restores the pre-image if the call is rejected.
func (s *Applications) Delete(ctx context.Context, id string) error {

	s.beginMutation()
	pre, had := s.ApplyDelete(id)

	if err := s.api.DeleteApplication(ctx, id); err != nil {
		if had {
			s.Revert(pre)
			metrics.OptimisticRollbacks.Inc()
		}
		s.failMutation(err.Error())
		return err
	}

	s.bus.Publish(events.ApplicationDeletedTopic, events.ApplicationDeleted{ApplicationID: id})
	return nil
}

// SetStatus applies the status change optimistically, then confirms with the
// server; the returned record is override-authoritative.
func (s *Applications) SetStatus(ctx context.Context, id string, status entities.ApplicationStatus) error {

	s.beginMutation()
	pre, had := s.ApplyStatus(id, status)

	app, err := s.api.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		if had {
			s.Revert(pre)
			metrics.OptimisticRollbacks.Inc()
		}
		s.failMutation(err.Error())
		return err
	}

	s.applyUpdate(app)
	s.bus.Publish(events.ApplicationStatusChangedTopic,
		events.ApplicationStatusChanged{Application: app, OldStatus: pre.Status})
	return nil
}

func (s *Applications) SaveNotes(ctx context.Context, id string, notes string) error {

	s.beginMutation()
	pre, had := s.ApplyNotes(id, notes)

	app, err := s.api.UpdateApplicationNotes(ctx, id, notes)
	if err != nil {
		if had {
			s.Revert(pre)
			metrics.OptimisticRollbacks.Inc()
		}
		s.failMutation(err.Error())
		return err
	}

	s.applyUpdate(app)
	s.bus.Publish(events.ApplicationNotesSavedTopic, events.ApplicationNotesSaved{Application: app})
	return nil
}

// ApplyStatus is the synchronous optimistic reducer: it mutates the cache
// immediately and returns the pre-image for caller-side rollback.
func (s *Applications) ApplyStatus(id string, status entities.ApplicationStatus) (entities.JobApplication, bool) {

	pre, ok := s.get(id)
	if !ok {
		return entities.JobApplication{}, false
	}

	updated := pre
	updated.Status = status
	s.applyUpdate(updated)
	return pre, true
}

func (s *Applications) ApplyNotes(id string, notes string) (entities.JobApplication, bool) {

	pre, ok := s.get(id)
	if !ok {
		return entities.JobApplication{}, false
	}

	updated := pre
	updated.Notes = notes
	s.applyUpdate(updated)
	return pre, true
}

func (s *Applications) ApplyDelete(id string) (entities.JobApplication, bool) {

	pre, ok := s.get(id)
	if !ok {
		return entities.JobApplication{}, false
	}

	s.remove(id)
	return pre, true
}

// Revert restores a pre-image captured by an optimistic reducer.
func (s *Applications) Revert(pre entities.JobApplication) {
	if _, ok := s.get(pre.ID); ok {
		s.applyUpdate(pre)
		return
	}
	s.prepend(pre)
}

// FetchAnalytics stores the server-computed aggregate verbatim.
func (s *Applications) FetchAnalytics(ctx context.Context) error {

	seq := s.analyticsSeq.next()
	analytics, err := s.api.GetApplicationAnalytics(ctx)
	if err != nil {
		if s.analyticsSeq.isCurrent(seq) {
			s.failMutation(err.Error())
		}
		return err
	}

	if !s.analyticsSeq.isCurrent(seq) {
		metrics.StaleFetchesDiscarded.WithLabelValues("applications_analytics").Inc()
		return nil
	}

	s.derivedMu.Lock()
	s.analytics = &analytics
	s.derivedMu.Unlock()
	return nil
}

func (s *Applications) Analytics() (entities.ApplicationAnalytics, bool) {
	s.derivedMu.RLock()
	defer s.derivedMu.RUnlock()

	if s.analytics == nil {
		return entities.ApplicationAnalytics{}, false
	}
	return *s.analytics, true
}

func (s *Applications) FetchFollowUps(ctx context.Context) ([]entities.JobApplication, error) {

	seq := s.followUpSeq.next()
	followUps, err := s.api.ListFollowUps(ctx)
	if err != nil {
		if s.followUpSeq.isCurrent(seq) {
			s.failMutation(err.Error())
		}
		return nil, err
	}

	if !s.followUpSeq.isCurrent(seq) {
		metrics.StaleFetchesDiscarded.WithLabelValues("applications_follow_up").Inc()
		return followUps, nil
	}

	s.derivedMu.Lock()
	s.followUps = followUps
	s.derivedMu.Unlock()
	return followUps, nil
}

func (s *Applications) FollowUps() []entities.JobApplication {
	s.derivedMu.RLock()
	defer s.derivedMu.RUnlock()

	followUps := make([]entities.JobApplication, len(s.followUps))
	copy(followUps, s.followUps)
	return followUps
}
