package entities

import (
	"errors"
	"fmt"
	"time"
)

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusScreening ApplicationStatus = "SCREENING"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusOffer     ApplicationStatus = "OFFER"
	StatusRejected  ApplicationStatus = "REJECTED"
	StatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	switch s {
	case string(StatusApplied):
		return StatusApplied, nil
	case string(StatusScreening):
		return StatusScreening, nil
	case string(StatusInterview):
		return StatusInterview, nil
	case string(StatusOffer):
		return StatusOffer, nil
	case string(StatusRejected):
		return StatusRejected, nil
	case string(StatusWithdrawn):
		return StatusWithdrawn, nil
	default:
		return "", errors.New("invalid application status")
	}
}

// ResumeRef is a denormalized snapshot of the resume attached to an
// application, copied at fetch time. It is not a live link.
type ResumeRef struct {
	ID          string `json:"id"`
	VersionName string `json:"versionName"`
}

type InterviewSummary struct {
	ID            string `json:"id"`
	InterviewType string `json:"interviewType"`
	ScheduledDate string `json:"scheduledDate"`
	Outcome       string `json:"outcome"`
}

type JobApplication struct {
	ID              string             `json:"id"`
	CompanyName     string             `json:"companyName"`
	JobTitle        string             `json:"jobTitle"`
	JobURL          string             `json:"jobUrl,omitempty"`
	ApplicationDate string             `json:"applicationDate"`
	Status          ApplicationStatus  `json:"status"`
	FollowUpDate    string             `json:"followUpDate,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	ResumeID        string             `json:"resumeId"`
	Resume          *ResumeRef         `json:"resume,omitempty"`
	Interviews      []InterviewSummary `json:"interviews,omitempty"`
}

// DaysUntilFollowUp is display-only: the "needs follow-up" set itself comes
// from the server, the client only renders the day difference.
func (a JobApplication) DaysUntilFollowUp(now time.Time) (int, bool) {
	if a.FollowUpDate == "" {
		return 0, false
	}
	followUp, err := time.Parse("2006-01-02", a.FollowUpDate)
	if err != nil {
		return 0, false
	}
	days := int(followUp.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
	return days, true
}

type ApplicationCreate struct {
	CompanyName     string            `json:"companyName" validate:"required"`
	JobTitle        string            `json:"jobTitle" validate:"required"`
	JobURL          string            `json:"jobUrl,omitempty" validate:"omitempty,url"`
	ApplicationDate string            `json:"applicationDate" validate:"required"`
	Status          ApplicationStatus `json:"status,omitempty"`
	ResumeID        string            `json:"resumeId" validate:"required"`
	FollowUpDate    string            `json:"followUpDate,omitempty"`
	Notes           string            `json:"notes,omitempty"`
}

type ApplicationUpdate struct {
	CompanyName  *string            `json:"companyName,omitempty"`
	JobTitle     *string            `json:"jobTitle,omitempty"`
	JobURL       *string            `json:"jobUrl,omitempty"`
	Status       *ApplicationStatus `json:"status,omitempty"`
	FollowUpDate *string            `json:"followUpDate,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
	ResumeID     *string            `json:"resumeId,omitempty"`
}

// ApplicationAnalytics is a server-computed aggregate stored verbatim; the
// client never recomputes it from the cached list.
type ApplicationAnalytics struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"byStatus"`
	SuccessRate     float64        `json:"successRate"`
	ActiveCount     int            `json:"activeCount"`
	AvgResponseDays float64        `json:"avgResponseDays"`
}

func (a ApplicationAnalytics) SuccessRateDisplay() string {
	return fmt.Sprintf("%.0f%%", a.SuccessRate*100)
}
