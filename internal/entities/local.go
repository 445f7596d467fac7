package entities

import "time"

// StoredValue is the local persistent key/value mirror of what the web
// client keeps in browser storage (auth token, offline snapshots).
type StoredValue struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

type DismissedNotification struct {
	NotificationID string `gorm:"primaryKey"`
	DismissedAt    time.Time
	CreatedAt      time.Time
}

type AdminReport struct {
	TotalUsers          int     `json:"totalUsers"`
	ActiveUsers         int     `json:"activeUsers"`
	ApplicationsPerUser float64 `json:"applicationsPerUser"`
	GeneratedAt         string  `json:"generatedAt"`
}
