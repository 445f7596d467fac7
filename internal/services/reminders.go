package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/events"
	"github.com/jathow/careertrack/internal/logger"
)

type reminderSource interface {
	ListFollowUps(ctx context.Context) ([]entities.JobApplication, error)
	ListNotifications(ctx context.Context, unreadOnly bool) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

type dismissedRepository interface {
	IsDismissed(ctx context.Context, notificationID string) (bool, error)
	MarkDismissed(ctx context.Context, notificationID string) error
}

// ReminderService periodically surfaces due follow-ups and unread server
// notifications as bus events, so they flow through the same notifier path
// as mutation toasts.
type ReminderService struct {
	source    reminderSource
	dismissed dismissedRepository
	bus       EventBus.Bus
	cron      *cron.Cron
}

func NewReminderService(source reminderSource, dismissed dismissedRepository,
	bus EventBus.Bus, schedule string) (*ReminderService, error) {

	rs := &ReminderService{
		source:    source,
		dismissed: dismissed,
		bus:       bus,
		cron:      cron.New(),
	}

	_, err := rs.cron.AddFunc(schedule, rs.run)
	if err != nil {
		return nil, errors.Wrap(err, "invalid reminders schedule")
	}

	rs.cron.Start()
	log.Infof("reminder service started, schedule: %s", schedule)
	return rs, nil
}

func (rs *ReminderService) Stop() {
	rs.cron.Stop()
}

// RunNow triggers a reminder pass outside the schedule, for a manual
// refresh.
func (rs *ReminderService) RunNow() {
	rs.run()
}

func (rs *ReminderService) run() {
	ctx := context.Background()
	rs.publishFollowUps(ctx)
	rs.syncNotifications(ctx)
}

func (rs *ReminderService) publishFollowUps(ctx context.Context) {

	followUps, err := rs.source.ListFollowUps(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypePortal).
			Errorf("failed to retrieve follow-ups: %v", err)
		return
	}

	now := time.Now()
	for _, application := range followUps {
		days, ok := application.DaysUntilFollowUp(now)
		if !ok {
			continue
		}
		rs.bus.Publish(events.FollowUpDueTopic, events.FollowUpDue{
			Application: application,
			DaysLeft:    days,
		})
	}
}

// syncNotifications mirrors unread server notifications onto the bus once
// each: already dismissed ids are skipped, freshly published ones are marked
// read on the server and recorded locally.
func (rs *ReminderService) syncNotifications(ctx context.Context) {

	notifications, err := rs.source.ListNotifications(ctx, true)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypePortal).
			Errorf("failed to retrieve notifications: %v", err)
		return
	}

	for _, notification := range notifications {

		skip, err := rs.dismissed.IsDismissed(ctx, notification.ID)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to check dismissed notification: %v", err)
			continue
		}
		if skip {
			continue
		}

		rs.bus.Publish(events.NotificationReceivedTopic, events.NotificationReceived{
			Notification: notification,
		})

		if err = rs.source.MarkNotificationRead(ctx, notification.ID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypePortal).
				Errorf("failed to mark notification as read: %v", err)
		}
		if err = rs.dismissed.MarkDismissed(ctx, notification.ID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to record dismissed notification: %v", err)
		}
	}
}
