package store

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/events"
	"github.com/jathow/careertrack/internal/metrics"
)

type interviewsAPI interface {
	ListInterviews(ctx context.Context, applicationID string) ([]entities.Interview, error)
	GetInterview(ctx context.Context, id string) (entities.Interview, error)
	CreateInterview(ctx context.Context, req entities.InterviewCreate) (entities.Interview, error)
	SaveInterviewFeedback(ctx context.Context, id string, feedback string, questionsAsked []string) (entities.Interview, error)
	UpdateInterviewOutcome(ctx context.Context, id string, outcome entities.InterviewOutcome) (entities.Interview, error)
	GetInterviewStats(ctx context.Context) (entities.InterviewStats, error)
}

type Interviews struct {
	*collection[entities.Interview]
	api interviewsAPI
	bus EventBus.Bus

	statsMu  sync.RWMutex
	stats    *entities.InterviewStats
	statsSeq seqGuard
}

func NewInterviews(api interviewsAPI, bus EventBus.Bus) *Interviews {
	return &Interviews{
		collection: newCollection("interviews", func(i entities.Interview) string { return i.ID }),
		api:        api,
		bus:        bus,
	}
}

// FetchAll with an empty applicationID loads every interview; with an id it
// loads that application's interviews. Either way the result replaces the
// cached list wholesale.
func (s *Interviews) FetchAll(ctx context.Context, applicationID string) error {

	seq := s.beginFetch()
	items, err := s.api.ListInterviews(ctx, applicationID)
	if err != nil {
		s.failFetch(seq, err.Error())
		return err
	}

	s.completeFetch(seq, items)
	return nil
}

func (s *Interviews) FetchOne(ctx context.Context, id string) error {

	s.beginMutation()
	interview, err := s.api.GetInterview(ctx, id)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.setSelected(interview)
	return nil
}

func (s *Interviews) Create(ctx context.Context, req entities.InterviewCreate) (entities.Interview, error) {

	s.beginMutation()

	if err := validate.Struct(req); err != nil {
		s.failMutation(err.Error())
		return entities.Interview{}, err
	}

	interview, err := s.api.CreateInterview(ctx, req)
	if err != nil {
		s.failMutation(err.Error())
		return entities.Interview{}, err
	}

	s.prepend(interview)
	s.bus.Publish(events.InterviewCreatedTopic, events.InterviewCreated{Interview: interview})
	return interview, nil
}

func (s *Interviews) SaveFeedback(ctx context.Context, id string, feedback string, questionsAsked []string) error {

	s.beginMutation()
	interview, err := s.api.SaveInterviewFeedback(ctx, id, feedback, questionsAsked)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.applyUpdate(interview)
	return nil
}

func (s *Interviews) SetOutcome(ctx context.Context, id string, outcome entities.InterviewOutcome) error {

	s.beginMutation()
	interview, err := s.api.UpdateInterviewOutcome(ctx, id, outcome)
	if err != nil {
		s.failMutation(err.Error())
		return err
	}

	s.applyUpdate(interview)
	s.bus.Publish(events.InterviewOutcomeChangedTopic, events.InterviewOutcomeChanged{Interview: interview})
	return nil
}

func (s *Interviews) FetchStats(ctx context.Context) error {

	seq := s.statsSeq.next()
	stats, err := s.api.GetInterviewStats(ctx)
	if err != nil {
		if s.statsSeq.isCurrent(seq) {
			s.failMutation(err.Error())
		}
		return err
	}

	if !s.statsSeq.isCurrent(seq) {
		metrics.StaleFetchesDiscarded.WithLabelValues("interviews_stats").Inc()
		return nil
	}

	s.statsMu.Lock()
	s.stats = &stats
	s.statsMu.Unlock()
	return nil
}

func (s *Interviews) Stats() (entities.InterviewStats, bool) {
	s.statsMu.RLock()
	defer s.statsMu.RUnlock()

	if s.stats == nil {
		return entities.InterviewStats{}, false
	}
	return *s.stats, true
}
