package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"

	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/events"
)

type fakeReminderSource struct {
	followUps     []entities.JobApplication
	notifications []entities.Notification
	markedRead    []string
}

func (f *fakeReminderSource) ListFollowUps(context.Context) ([]entities.JobApplication, error) {
	return f.followUps, nil
}

func (f *fakeReminderSource) ListNotifications(_ context.Context, unreadOnly bool) ([]entities.Notification, error) {
	return f.notifications, nil
}

func (f *fakeReminderSource) MarkNotificationRead(_ context.Context, id string) error {
	f.markedRead = append(f.markedRead, id)
	return nil
}

type fakeDismissed struct {
	ids map[string]bool
}

func newFakeDismissed(ids ...string) *fakeDismissed {
	dismissed := &fakeDismissed{ids: map[string]bool{}}
	for _, id := range ids {
		dismissed.ids[id] = true
	}
	return dismissed
}

func (f *fakeDismissed) IsDismissed(_ context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

func (f *fakeDismissed) MarkDismissed(_ context.Context, id string) error {
	f.ids[id] = true
	return nil
}

func Test_ReminderService_RejectsInvalidSchedule(t *testing.T) {

	_, err := NewReminderService(&fakeReminderSource{}, newFakeDismissed(), EventBus.New(), "not-a-schedule")

	assert.Error(t, err)
}

func Test_ReminderService_PublishesDueFollowUps(t *testing.T) {

	source := &fakeReminderSource{followUps: []entities.JobApplication{
		{ID: "a1", CompanyName: "Acme", FollowUpDate: "2024-06-10"},
		{ID: "a2", CompanyName: "NoDate"},
	}}

	bus := EventBus.New()
	var published []events.FollowUpDue
	err := bus.Subscribe(events.FollowUpDueTopic, func(e events.FollowUpDue) {
		published = append(published, e)
	})
	assert.NoError(t, err)

	service, err := NewReminderService(source, newFakeDismissed(), bus, "0 9 * * *")
	assert.NoError(t, err)
	defer service.Stop()

	service.run()
	bus.WaitAsync()

	assert.Len(t, published, 1)
	assert.Equal(t, "Acme", published[0].Application.CompanyName)
}

func Test_ReminderService_SkipsDismissedNotifications(t *testing.T) {

	source := &fakeReminderSource{notifications: []entities.Notification{
		{ID: "n1", Message: "old news"},
		{ID: "n2", Message: "fresh"},
	}}
	dismissed := newFakeDismissed("n1")

	bus := EventBus.New()
	var published []events.NotificationReceived
	err := bus.Subscribe(events.NotificationReceivedTopic, func(e events.NotificationReceived) {
		published = append(published, e)
	})
	assert.NoError(t, err)

	service, err := NewReminderService(source, dismissed, bus, "0 9 * * *")
	assert.NoError(t, err)
	defer service.Stop()

	service.run()
	bus.WaitAsync()

	assert.Len(t, published, 1)
	assert.Equal(t, "fresh", published[0].Notification.Message)
	assert.Equal(t, []string{"n2"}, source.markedRead)
	assert.True(t, dismissed.ids["n2"])
}

func Test_ReminderService_PublishesEachNotificationOnce(t *testing.T) {

	source := &fakeReminderSource{notifications: []entities.Notification{
		{ID: "n1", Message: "once"},
	}}

	bus := EventBus.New()
	var count int
	err := bus.Subscribe(events.NotificationReceivedTopic, func(events.NotificationReceived) {
		count++
	})
	assert.NoError(t, err)

	service, err := NewReminderService(source, newFakeDismissed(), bus, "0 9 * * *")
	assert.NoError(t, err)
	defer service.Stop()

	service.run()
	service.run()
	bus.WaitAsync()

	assert.Equal(t, 1, count)
}
