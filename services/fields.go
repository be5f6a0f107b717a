package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cliento-portal/dto"
	"github.com/cliento-portal/models"
	"github.com/cliento-portal/utils"
)

// Payload reconstruction. Caller-supplied shapes are rebuilt field by field
// with defaults; nothing beyond the known fields survives.

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts RFC3339 or a plain date. Empty input means "no date".
func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, validationf("invalid date %q", value)
}

// parseBudget accepts a JSON number, a numeric string, or null. Anything
// unparsable stores as null rather than failing; a negative number is
// rejected because budgets are non-negative.
func parseBudget(raw json.RawMessage) (*float64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err != nil {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return nil, nil
		}
		num = parsed
	}
	if num < 0 {
		return nil, validationf("budget must not be negative")
	}
	return &num, nil
}

// dateOr parses value and falls back when it is empty or malformed.
func dateOr(value string, fallback time.Time) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return fallback
}

func buildMilestones(inputs []dto.MilestoneInput) (models.Milestones, error) {
	milestones := make(models.Milestones, 0, len(inputs))
	for _, in := range inputs {
		due, err := parseDate(in.DueDate)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, models.Milestone{
			Title:       in.Title,
			Description: in.Description,
			DueDate:     due,
			Completed:   in.Completed,
		})
	}
	return milestones, nil
}

// buildNotes rebuilds a bulk note array. Missing authors default to the
// caller, missing dates to now, missing ids to a fresh stable id.
func buildNotes(inputs []dto.NoteInput, defaultAuthor string, now time.Time) models.Notes {
	notes := make(models.Notes, 0, len(inputs))
	for _, in := range inputs {
		note := models.Note{
			ID:       in.ID,
			AuthorID: in.AuthorID,
			Text:     in.Text,
			Date:     dateOr(in.Date, now),
		}
		if note.ID == "" {
			note.ID = utils.GenerateID()
		}
		if note.AuthorID == "" {
			note.AuthorID = defaultAuthor
		}
		notes = append(notes, note)
	}
	return notes
}

// buildFiles rebuilds a bulk file-entry array. Missing uploaders default to
// the caller, missing timestamps to now, missing ids to a fresh stable id.
func buildFiles(inputs []dto.FileEntryInput, defaultUploader string, now time.Time) models.FileEntries {
	files := make(models.FileEntries, 0, len(inputs))
	for _, in := range inputs {
		entry := models.FileEntry{
			ID:         in.ID,
			Filename:   in.Filename,
			StorageRef: in.StorageRef,
			UploadedBy: in.UploadedBy,
			UploadedAt: dateOr(in.UploadedAt, now),
		}
		if entry.ID == "" {
			entry.ID = utils.GenerateID()
		}
		if entry.UploadedBy == "" {
			entry.UploadedBy = defaultUploader
		}
		files = append(files, entry)
	}
	return files
}
