package dto

import (
	"encoding/json"

	"github.com/cliento-portal/models"
)

// MilestoneInput is the caller-supplied shape of one milestone. Items are
// rebuilt field by field; anything beyond these fields is dropped.
type MilestoneInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
}

// NoteInput is the caller-supplied shape of one note in a bulk replace.
type NoteInput struct {
	ID       string `json:"id"`
	AuthorID string `json:"authorId"`
	Text     string `json:"text"`
	Date     string `json:"date"`
}

// FileEntryInput is the caller-supplied shape of one file entry in a bulk
// replace.
type FileEntryInput struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	StorageRef string `json:"storageRef"`
	UploadedBy string `json:"uploadedBy"`
	UploadedAt string `json:"uploadedAt"`
}

// NewNoteInput is the client-side "add note" payload.
type NewNoteInput struct {
	Text string `json:"text"`
}

// ProjectPatch is the partial-update payload for one project. Pointer fields
// (and raw JSON for budget) distinguish "absent" from "present but empty".
type ProjectPatch struct {
	Name               *string           `json:"name"`
	Status             *string           `json:"status"`
	Deadline           *string           `json:"deadline"`
	Budget             json.RawMessage   `json:"budget"` // number, numeric string or null
	ClientID           *string           `json:"clientId"`
	AssignedDevelopers *[]string         `json:"assignedDevelopers"`
	Milestones         *[]MilestoneInput `json:"milestones"`
	Files              *[]FileEntryInput `json:"files"`
	Notes              *[]NoteInput      `json:"notes"`

	NewNote      *NewNoteInput `json:"newNote"`
	DeleteNoteID *string       `json:"deleteNoteId"`
	DeleteFileID *string       `json:"deleteFileId"`
}

// CreateProjectRequest is the project creation payload.
type CreateProjectRequest struct {
	Name               string           `json:"name" binding:"required"`
	Status             string           `json:"status"`
	Deadline           string           `json:"deadline"`
	Budget             json.RawMessage  `json:"budget"`
	ClientID           string           `json:"clientId"`
	AssignedDevelopers []string         `json:"assignedDevelopers"`
	Milestones         []MilestoneInput `json:"milestones"`
	Files              []FileEntryInput `json:"files"`
	Notes              []NoteInput      `json:"notes"`
}

// ProjectDetail is a project with its account references resolved to
// secret-free summaries.
type ProjectDetail struct {
	models.Project
	AssignedDevelopers []AccountSummary `json:"assignedDevelopers"`
	Client             *AccountSummary  `json:"clientId"`
}
