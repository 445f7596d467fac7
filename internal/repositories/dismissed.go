package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jathow/careertrack/internal/entities"
)

// DismissedNotifications records server notification ids that were already
// surfaced to the user, so reminder runs never replay them.
type DismissedNotifications struct {
	db *gorm.DB
}

func NewDismissedNotificationsRepository(db *gorm.DB) *DismissedNotifications {
	return &DismissedNotifications{db: db}
}

func (repo *DismissedNotifications) IsDismissed(ctx context.Context, notificationID string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.DismissedNotification{}).
		Where("notification_id = ?", notificationID).Count(&count).Error
	return count > 0, err
}

func (repo *DismissedNotifications) MarkDismissed(ctx context.Context, notificationID string) error {
	return repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.DismissedNotification{
			NotificationID: notificationID,
			DismissedAt:    time.Now(),
		}).Error
}
