package store

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/jathow/careertrack/internal/clients/portal"
	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeApplicationsAPI struct {
	list         func(filters portal.ApplicationFilters) ([]entities.JobApplication, error)
	get          func(id string) (entities.JobApplication, error)
	create       func(req entities.ApplicationCreate) (entities.JobApplication, error)
	update       func(id string, req entities.ApplicationUpdate) (entities.JobApplication, error)
	delete       func(id string) error
	updateStatus func(id string, status entities.ApplicationStatus) (entities.JobApplication, error)
	updateNotes  func(id string, notes string) (entities.JobApplication, error)
	analytics    func() (entities.ApplicationAnalytics, error)
	followUps    func() ([]entities.JobApplication, error)
}

func (f *fakeApplicationsAPI) ListApplications(ctx context.Context, filters portal.ApplicationFilters) ([]entities.JobApplication, error) {
	return f.list(filters)
}

func (f *fakeApplicationsAPI) GetApplication(ctx context.Context, id string) (entities.JobApplication, error) {
	return f.get(id)
}

func (f *fakeApplicationsAPI) CreateApplication(ctx context.Context, req entities.ApplicationCreate) (entities.JobApplication, error) {
	return f.create(req)
}

func (f *fakeApplicationsAPI) UpdateApplication(ctx context.Context, id string, req entities.ApplicationUpdate) (entities.JobApplication, error) {
	return f.update(id, req)
}

func (f *fakeApplicationsAPI) DeleteApplication(ctx context.Context, id string) error {
	return f.delete(id)
}

func (f *fakeApplicationsAPI) UpdateApplicationStatus(ctx context.Context, id string, status entities.ApplicationStatus) (entities.JobApplication, error) {
	return f.updateStatus(id, status)
}

func (f *fakeApplicationsAPI) UpdateApplicationNotes(ctx context.Context, id string, notes string) (entities.JobApplication, error) {
	return f.updateNotes(id, notes)
}

func (f *fakeApplicationsAPI) GetApplicationAnalytics(ctx context.Context) (entities.ApplicationAnalytics, error) {
	return f.analytics()
}

func (f *fakeApplicationsAPI) ListFollowUps(ctx context.Context) ([]entities.JobApplication, error) {
	return f.followUps()
}

func sampleApplications() []entities.JobApplication {
	return []entities.JobApplication{
		{ID: "1", CompanyName: "Initech", JobTitle: "Backend Engineer", Status: entities.StatusApplied, ResumeID: "r1"},
		{ID: "2", CompanyName: "Globex", JobTitle: "Platform Engineer", Status: entities.StatusScreening, ResumeID: "r1"},
	}
}

func newApplicationsStore(api *fakeApplicationsAPI) *Applications {
	return NewApplications(api, EventBus.New())
}

func Test_Applications_Create_PrependsServerRecord(t *testing.T) {

	assert := assert.New(t)

	created := entities.JobApplication{ID: "3", CompanyName: "Hooli", JobTitle: "SRE", Status: entities.StatusApplied}
	api := &fakeApplicationsAPI{
		list:   func(portal.ApplicationFilters) ([]entities.JobApplication, error) { return sampleApplications(), nil },
		create: func(entities.ApplicationCreate) (entities.JobApplication, error) { return created, nil },
	}

	s := newApplicationsStore(api)
	assert.NoError(s.FetchAll(context.Background(), portal.ApplicationFilters{}))

	_, err := s.Create(context.Background(), entities.ApplicationCreate{
		CompanyName:     "Hooli",
		JobTitle:        "SRE",
		ApplicationDate: "2025-08-20",
		ResumeID:        "r1",
	})
	assert.NoError(err)

	items := s.Items()
	assert.Len(items, 3)
	assert.Equal(created, items[0])
}

func Test_Applications_Create_RejectsInvalidPayloadLocally(t *testing.T) {

	assert := assert.New(t)

	called := false
	api := &fakeApplicationsAPI{
		create: func(entities.ApplicationCreate) (entities.JobApplication, error) {
			called = true
			return entities.JobApplication{}, nil
		},
	}

	s := newApplicationsStore(api)
	_, err := s.Create(context.Background(), entities.ApplicationCreate{CompanyName: "Hooli"})

	assert.Error(err)
	assert.False(called)
	assert.NotEmpty(s.Err())
}

func Test_Applications_Update_ReplacesMatchingItemAndSelected(t *testing.T) {

	assert := assert.New(t)

	updated := entities.JobApplication{ID: "1", CompanyName: "Initech", JobTitle: "Staff Engineer", Status: entities.StatusApplied}
	api := &fakeApplicationsAPI{
		list: func(portal.ApplicationFilters) ([]entities.JobApplication, error) { return sampleApplications(), nil },
		get:  func(string) (entities.JobApplication, error) { return sampleApplications()[0], nil },
		update: func(string, entities.ApplicationUpdate) (entities.JobApplication, error) {
			return updated, nil
		},
	}

	s := newApplicationsStore(api)
	assert.NoError(s.FetchAll(context.Background(), portal.ApplicationFilters{}))
	assert.NoError(s.FetchOne(context.Background(), "1"))

	_, err := s.Update(context.Background(), "1", entities.ApplicationUpdate{})
	assert.NoError(err)

	items := s.Items()
	assert.Equal(updated, items[0])
	assert.Equal(sampleApplications()[1], items[1])

	selected, ok := s.Selected()
	assert.True(ok)
	assert.Equal(updated, selected)
}

func Test_Applications_Delete_RemovesItemAndClearsSelected(t *testing.T) {

	assert := assert.New(t)

	api := &fakeApplicationsAPI{
		list:   func(portal.ApplicationFilters) ([]entities.JobApplication, error) { return sampleApplications(), nil },
		get:    func(string) (entities.JobApplication, error) { return sampleApplications()[0], nil },
		delete: func(string) error { return nil },
	}

	s := newApplicationsStore(api)
	assert.NoError(s.FetchAll(context.Background(), portal.ApplicationFilters{}))
	assert.NoError(s.FetchOne(context.Background(), "1"))

	assert.NoError(s.Delete(context.Background(), "1"))

	for _, item := range s.Items() {
		assert.NotEqual("1", item.ID)
	}
	_, ok := s.Selected()
	assert.False(ok)
}

func Test_Applications_SetStatus_OptimisticThenConfirmed(t *testing.T) {

	assert := assert.New(t)

	confirmed := entities.JobApplication{ID: "1", CompanyName: "Initech", JobTitle: "Backend Engineer", Status: entities.StatusInterview, ResumeID: "r1"}
	api := &fakeApplicationsAPI{
		list: func(portal.ApplicationFilters) ([]entities.JobApplication, error) { return sampleApplications(), nil },
		updateStatus: func(string, entities.ApplicationStatus) (entities.JobApplication, error) {
			return confirmed, nil
		},
	}

	bus := EventBus.New()
	var published []events.ApplicationStatusChanged
	assert.NoError(bus.Subscribe(events.ApplicationStatusChangedTopic, func(e events.ApplicationStatusChanged) {
		published = append(published, e)
	}))

	s := NewApplications(api, bus)
	assert.NoError(s.FetchAll(context.Background(), portal.ApplicationFilters{}))

	assert.NoError(s.SetStatus(context.Background(), "1", entities.StatusInterview))

	items := s.Items()
	assert.Equal(entities.StatusInterview, items[0].Status)
	assert.Len(published, 1)
	assert.Equal(entities.StatusApplied, published[0].OldStatus)
}

func Test_Applications_SetStatus_RevertsOnRejection(t *testing.T) {

	assert := assert.New(t)

	api := &fakeApplicationsAPI{
		list: func(portal.ApplicationFilters) ([]entities.JobApplication, error) { return sampleApplications(), nil },
		updateStatus: func(string, entities.ApplicationStatus) (entities.JobApplication, error) {
			return entities.JobApplication{}, errors.New("status transition not allowed")
		},
	}

	s := newApplicationsStore(api)
	assert.NoError(s.FetchAll(context.Background(), portal.ApplicationFilters{}))

	err := s.SetStatus(context.Background(), "1", entities.StatusOffer)
	assert.Error(err)

	items := s.Items()
	assert.Equal(entities.StatusApplied, items[0].Status)
	assert.Equal("status transition not allowed", s.Err())
}

func Test_Applications_Delete_RestoresItemOnRejection(t *testing.T) {

	assert := assert.New(t)

	api := &fakeApplicationsAPI{
		list:   func(portal.ApplicationFilters) ([]entities.JobApplication, error) { return sampleApplications(), nil },
		delete: func(string) error { return errors.New("conflict") },
	}

	s := newApplicationsStore(api)
	assert.NoError(s.FetchAll(context.Background(), portal.ApplicationFilters{}))

	assert.Error(s.Delete(context.Background(), "1"))

	found := false
	for _, item := range s.Items() {
		if item.ID == "1" {
			found = true
		}
	}
	assert.True(found)
}

func Test_Applications_ErrorClearedByNextMutation(t *testing.T) {

	assert := assert.New(t)

	failing := true
	api := &fakeApplicationsAPI{
		list: func(portal.ApplicationFilters) ([]entities.JobApplication, error) {
			if failing {
				return nil, errors.New("server unavailable")
			}
			return sampleApplications(), nil
		},
		create: func(entities.ApplicationCreate) (entities.JobApplication, error) {
			return entities.JobApplication{ID: "3"}, nil
		},
	}

	s := newApplicationsStore(api)
	assert.Error(s.FetchAll(context.Background(), portal.ApplicationFilters{}))
	assert.Equal("server unavailable", s.Err())

	_, err := s.Create(context.Background(), entities.ApplicationCreate{
		CompanyName:     "Hooli",
		JobTitle:        "SRE",
		ApplicationDate: "2025-08-20",
		ResumeID:        "r1",
	})
	assert.NoError(err)
	assert.Empty(s.Err())
}

func Test_Applications_StaleFetchDiscarded(t *testing.T) {

	assert := assert.New(t)

	stale := []entities.JobApplication{{ID: "old", Status: entities.StatusApplied}}
	fresh := []entities.JobApplication{{ID: "new", Status: entities.StatusOffer}}

	api := &fakeApplicationsAPI{}
	s := newApplicationsStore(api)

	// Issue the first fetch, then a second one before the first completes;
	// the first result must be discarded even though it lands last.
	firstSeq := s.beginFetch()
	secondSeq := s.beginFetch()

	assert.True(s.completeFetch(secondSeq, fresh))
	assert.False(s.completeFetch(firstSeq, stale))

	items := s.Items()
	assert.Len(items, 1)
	assert.Equal("new", items[0].ID)
}

func Test_Applications_AnalyticsStoredVerbatim(t *testing.T) {

	assert := assert.New(t)

	serverAnalytics := entities.ApplicationAnalytics{
		Total:       12,
		ByStatus:    map[string]int{"APPLIED": 5, "INTERVIEW": 4, "OFFER": 3},
		SuccessRate: 0.25,
		ActiveCount: 9,
	}
	api := &fakeApplicationsAPI{
		analytics: func() (entities.ApplicationAnalytics, error) { return serverAnalytics, nil },
	}

	s := newApplicationsStore(api)
	assert.NoError(s.FetchAnalytics(context.Background()))

	got, ok := s.Analytics()
	assert.True(ok)
	assert.Equal(serverAnalytics, got)
	assert.Equal("25%", got.SuccessRateDisplay())
}
