package entities

import "errors"

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectPaused     ProjectStatus = "PAUSED"
)

func ToProjectStatus(s string) (ProjectStatus, error) {
	switch s {
	case string(ProjectPlanning):
		return ProjectPlanning, nil
	case string(ProjectInProgress):
		return ProjectInProgress, nil
	case string(ProjectCompleted):
		return ProjectCompleted, nil
	case string(ProjectPaused):
		return ProjectPaused, nil
	default:
		return "", errors.New("invalid project status")
	}
}

// TimeRemaining and IsOverdue are server-derived and must stay consistent
// with each other; the client stores them as received and never recomputes.
type Project struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	TechStack     []string      `json:"techStack,omitempty"`
	StartDate     string        `json:"startDate"`
	TargetEndDate string        `json:"targetEndDate"`
	ActualEndDate string        `json:"actualEndDate,omitempty"`
	Status        ProjectStatus `json:"status"`
	Progress      int           `json:"progress"`
	TimeRemaining int           `json:"timeRemaining"`
	IsOverdue     bool          `json:"isOverdue"`
}

type ProjectCreate struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description,omitempty"`
	TechStack     []string `json:"techStack,omitempty"`
	StartDate     string   `json:"startDate" validate:"required"`
	TargetEndDate string   `json:"targetEndDate" validate:"required"`
}

type ProjectUpdate struct {
	Title         *string        `json:"title,omitempty"`
	Description   *string        `json:"description,omitempty"`
	TechStack     *[]string      `json:"techStack,omitempty"`
	TargetEndDate *string        `json:"targetEndDate,omitempty"`
	Status        *ProjectStatus `json:"status,omitempty"`
	Progress      *int           `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
}
