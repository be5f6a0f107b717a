package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	StatusOpen       ProjectStatus = "open"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusOnHold     ProjectStatus = "on_hold"
)

// ValidStatus reports whether s is one of the enumerated project statuses.
func ValidStatus(s ProjectStatus) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Milestone is embedded in a project. It has no independent identity.
type Milestone struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   bool       `json:"completed"`
}

// Note is embedded in a project. The ID is generated at creation time and is
// the only stable handle for deleting a note; array position is display order.
type Note struct {
	ID       string    `json:"id"`
	AuthorID string    `json:"authorId"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
}

// FileEntry is embedded in a project and cross-references the blob store via
// StorageRef. Like notes, entries carry a stable generated ID.
type FileEntry struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	StorageRef string    `json:"storageRef"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// IDList custom type for JSON storage of account id sets
type IDList []string

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	return json.Marshal(l)
}

func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, l)
}

// Contains reports whether id is in the list.
func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Milestones custom type for JSON storage
type Milestones []Milestone

func (m Milestones) Value() (driver.Value, error) {
	if m == nil {
		m = Milestones{}
	}
	return json.Marshal(m)
}

func (m *Milestones) Scan(value interface{}) error {
	if value == nil {
		*m = Milestones{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, m)
}

// Notes custom type for JSON storage
type Notes []Note

func (n Notes) Value() (driver.Value, error) {
	if n == nil {
		n = Notes{}
	}
	return json.Marshal(n)
}

func (n *Notes) Scan(value interface{}) error {
	if value == nil {
		*n = Notes{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, n)
}

// FileEntries custom type for JSON storage
type FileEntries []FileEntry

func (f FileEntries) Value() (driver.Value, error) {
	if f == nil {
		f = FileEntries{}
	}
	return json.Marshal(f)
}

func (f *FileEntries) Scan(value interface{}) error {
	if value == nil {
		*f = FileEntries{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, f)
}

// Project represents a client project document. Milestones, files and notes
// are owned exclusively by the project and stored as embedded collections.
type Project struct {
	ID       string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name     string        `json:"name" gorm:"not null"`
	Status   ProjectStatus `json:"status" gorm:"type:varchar(20);default:'open'"`
	Deadline *time.Time    `json:"deadline" gorm:"default:null"`
	Budget   *float64      `json:"budget" gorm:"default:null"`

	AssignedDevelopers IDList  `json:"assignedDevelopers" gorm:"type:jsonb;default:'[]'"`
	ClientID           *string `json:"clientId" gorm:"type:uuid;default:null;index"`
	CreatedBy          string  `json:"createdBy" gorm:"type:uuid;not null;index"`

	Milestones Milestones  `json:"milestones" gorm:"type:jsonb;default:'[]'"`
	Files      FileEntries `json:"files" gorm:"type:jsonb;default:'[]'"`
	Notes      Notes       `json:"notes" gorm:"type:jsonb;default:'[]'"`

	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "projects"
}

// NoteByID returns the embedded note with the given id, or false.
func (p *Project) NoteByID(id string) (Note, bool) {
	for _, n := range p.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// FileByID returns the embedded file entry with the given id, or false.
func (p *Project) FileByID(id string) (FileEntry, bool) {
	for _, f := range p.Files {
		if f.ID == id {
			return f, true
		}
	}
	return FileEntry{}, false
}
