package events

import "github.com/jathow/careertrack/internal/entities"

// Mutation-success topics form a closed set: the notifier subscribes to an
// explicit allow-list of these and nothing else ever reaches it.
var (
	ApplicationCreatedTopic       = "ApplicationCreatedEvent"
	ApplicationUpdatedTopic       = "ApplicationUpdatedEvent"
	ApplicationDeletedTopic       = "ApplicationDeletedEvent"
	ApplicationStatusChangedTopic = "ApplicationStatusChangedEvent"
	ApplicationNotesSavedTopic    = "ApplicationNotesSavedEvent"

	ProjectCreatedTopic = "ProjectCreatedEvent"
	ProjectUpdatedTopic = "ProjectUpdatedEvent"
	ProjectDeletedTopic = "ProjectDeletedEvent"

	ResumeCreatedTopic        = "ResumeCreatedEvent"
	ResumeUpdatedTopic        = "ResumeUpdatedEvent"
	ResumeDeletedTopic        = "ResumeDeletedEvent"
	ResumeDefaultChangedTopic = "ResumeDefaultChangedEvent"

	InterviewCreatedTopic        = "InterviewCreatedEvent"
	InterviewOutcomeChangedTopic = "InterviewOutcomeChangedEvent"

	FollowUpDueTopic          = "FollowUpDueEvent"
	NotificationReceivedTopic = "NotificationReceivedEvent"
)

type ApplicationCreated struct {
	Application entities.JobApplication
}

type ApplicationUpdated struct {
	Application entities.JobApplication
}

type ApplicationDeleted struct {
	ApplicationID string
}

type ApplicationStatusChanged struct {
	Application entities.JobApplication
	OldStatus   entities.ApplicationStatus
}

type ApplicationNotesSaved struct {
	Application entities.JobApplication
}

type ProjectCreated struct {
	Project entities.Project
}

type ProjectUpdated struct {
	Project entities.Project
}

type ProjectDeleted struct {
	ProjectID string
}

type ResumeCreated struct {
	Resume entities.Resume
}

type ResumeUpdated struct {
	Resume entities.Resume
}

type ResumeDeleted struct {
	ResumeID string
}

type ResumeDefaultChanged struct {
	Resume entities.Resume
}

type InterviewCreated struct {
	Interview entities.Interview
}

type InterviewOutcomeChanged struct {
	Interview entities.Interview
}

type FollowUpDue struct {
	Application entities.JobApplication
	DaysLeft    int
}

type NotificationReceived struct {
	Notification entities.Notification
}
