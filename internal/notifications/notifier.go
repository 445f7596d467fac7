package notifications

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"

	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/events"
)

// Notifier turns mutation events into toasts. Only topics listed in its
// subscription table produce a toast; everything else on the bus is
// ignored, so new event types stay silent until added here explicitly.
type Notifier struct {
	queue *Queue
}

func NewNotifier(bus EventBus.Bus, queue *Queue) (*Notifier, error) {

	n := &Notifier{queue: queue}

	subscriptions := []struct {
		topic   string
		handler any
	}{
		{events.ApplicationCreatedTopic, n.onApplicationCreated},
		{events.ApplicationUpdatedTopic, n.onApplicationUpdated},
		{events.ApplicationDeletedTopic, n.onApplicationDeleted},
		{events.ApplicationStatusChangedTopic, n.onApplicationStatusChanged},
		{events.ApplicationNotesSavedTopic, n.onApplicationNotesSaved},
		{events.ProjectCreatedTopic, n.onProjectCreated},
		{events.ProjectUpdatedTopic, n.onProjectUpdated},
		{events.ProjectDeletedTopic, n.onProjectDeleted},
		{events.ResumeCreatedTopic, n.onResumeCreated},
		{events.ResumeUpdatedTopic, n.onResumeUpdated},
		{events.ResumeDeletedTopic, n.onResumeDeleted},
		{events.ResumeDefaultChangedTopic, n.onResumeDefaultChanged},
		{events.FollowUpDueTopic, n.onFollowUpDue},
		{events.NotificationReceivedTopic, n.onNotificationReceived},
	}

	for _, s := range subscriptions {
		if err := bus.Subscribe(s.topic, s.handler); err != nil {
			return nil, errors.Wrapf(err, "failed to subscribe to %s", s.topic)
		}
	}
	return n, nil
}

func (n *Notifier) onApplicationCreated(events.ApplicationCreated) {
	n.queue.Show("Application created", entities.SeveritySuccess)
}

func (n *Notifier) onApplicationUpdated(events.ApplicationUpdated) {
	n.queue.Show("Application updated", entities.SeveritySuccess)
}

func (n *Notifier) onApplicationDeleted(events.ApplicationDeleted) {
	n.queue.Show("Application deleted", entities.SeverityInfo)
}

func (n *Notifier) onApplicationStatusChanged(events.ApplicationStatusChanged) {
	n.queue.Show("Status updated", entities.SeveritySuccess)
}

func (n *Notifier) onApplicationNotesSaved(events.ApplicationNotesSaved) {
	n.queue.Show("Notes saved", entities.SeveritySuccess)
}

func (n *Notifier) onProjectCreated(events.ProjectCreated) {
	n.queue.Show("Project created", entities.SeveritySuccess)
}

func (n *Notifier) onProjectUpdated(events.ProjectUpdated) {
	n.queue.Show("Project updated", entities.SeveritySuccess)
}

func (n *Notifier) onProjectDeleted(events.ProjectDeleted) {
	n.queue.Show("Project deleted", entities.SeverityInfo)
}

func (n *Notifier) onResumeCreated(events.ResumeCreated) {
	n.queue.Show("Resume created", entities.SeveritySuccess)
}

func (n *Notifier) onResumeUpdated(events.ResumeUpdated) {
	n.queue.Show("Resume updated", entities.SeveritySuccess)
}

func (n *Notifier) onResumeDeleted(events.ResumeDeleted) {
	n.queue.Show("Resume deleted", entities.SeverityInfo)
}

func (n *Notifier) onResumeDefaultChanged(events.ResumeDefaultChanged) {
	n.queue.Show("Default resume updated", entities.SeveritySuccess)
}

func (n *Notifier) onFollowUpDue(e events.FollowUpDue) {
	n.queue.Show(fmt.Sprintf("Time to follow up with %s", e.Application.CompanyName), entities.SeverityWarning)
}

func (n *Notifier) onNotificationReceived(e events.NotificationReceived) {
	severity := entities.SeverityInfo
	if e.Notification.Severity.IsValid() {
		severity = e.Notification.Severity
	}
	n.queue.Show(e.Notification.Message, severity)
}
