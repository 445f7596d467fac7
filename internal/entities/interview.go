package entities

import "errors"

type InterviewOutcome string

const (
	OutcomePending   InterviewOutcome = "PENDING"
	OutcomePassed    InterviewOutcome = "PASSED"
	OutcomeFailed    InterviewOutcome = "FAILED"
	OutcomeCancelled InterviewOutcome = "CANCELLED"
)

func ToInterviewOutcome(s string) (InterviewOutcome, error) {
	switch s {
	case string(OutcomePending):
		return OutcomePending, nil
	case string(OutcomePassed):
		return OutcomePassed, nil
	case string(OutcomeFailed):
		return OutcomeFailed, nil
	case string(OutcomeCancelled):
		return OutcomeCancelled, nil
	default:
		return "", errors.New("invalid interview outcome")
	}
}

// ApplicationID is a back-reference, not ownership: the application store
// keeps its own denormalized interview summaries.
type Interview struct {
	ID             string           `json:"id"`
	ApplicationID  string           `json:"applicationId"`
	InterviewType  string           `json:"interviewType"`
	ScheduledDate  string           `json:"scheduledDate"`
	Duration       int              `json:"duration"`
	Outcome        InterviewOutcome `json:"outcome"`
	Feedback       string           `json:"feedback,omitempty"`
	QuestionsAsked []string         `json:"questionsAsked,omitempty"`
}

type InterviewCreate struct {
	ApplicationID string `json:"applicationId" validate:"required"`
	InterviewType string `json:"interviewType" validate:"required"`
	ScheduledDate string `json:"scheduledDate" validate:"required"`
	Duration      int    `json:"duration" validate:"gt=0"`
}

type InterviewStats struct {
	Total     int            `json:"total"`
	ByOutcome map[string]int `json:"byOutcome"`
	PassRate  float64        `json:"passRate"`
	Upcoming  int            `json:"upcoming"`
}

type PreparationGuide struct {
	CompanyName     string   `json:"companyName"`
	CommonQuestions []string `json:"commonQuestions,omitempty"`
	Tips            []string `json:"tips,omitempty"`
	PastInterviews  int      `json:"pastInterviews"`
}
