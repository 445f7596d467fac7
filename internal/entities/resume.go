package entities

import "encoding/json"

// Content is an opaque document (personalInfo/summary/experience/projects/
// skills/education shape); the client never inspects it, only carries it.
type Resume struct {
	ID          string          `json:"id"`
	VersionName string          `json:"versionName"`
	TemplateID  string          `json:"templateId"`
	Content     json.RawMessage `json:"content"`
	IsDefault   bool            `json:"isDefault"`
}

type ResumeTemplate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

type ResumeCreate struct {
	VersionName string          `json:"versionName" validate:"required"`
	TemplateID  string          `json:"templateId" validate:"required"`
	Content     json.RawMessage `json:"content,omitempty"`
	IsDefault   bool            `json:"isDefault,omitempty"`
}

type ResumeUpdate struct {
	VersionName *string         `json:"versionName,omitempty"`
	TemplateID  *string         `json:"templateId,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
}
