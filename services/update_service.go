package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cliento-portal/dto"
	"github.com/cliento-portal/lib/logger"
	"github.com/cliento-portal/lib/metrics"
	"github.com/cliento-portal/lib/storage"
	"github.com/cliento-portal/models"
	"github.com/cliento-portal/utils"
)

// UpdateService processes one partial-update request against a project
// document: it validates the payload, consults the access policy, resolves
// conflicting operations in a fixed precedence order and delegates the write
// to the project store.
type UpdateService struct {
	projects ProjectStore
	accounts AccountStore
	blobs    storage.BlobStore
	now      func() time.Time
}

// NewUpdateService creates a new update service instance
func NewUpdateService(projects ProjectStore, accounts AccountStore, blobs storage.BlobStore) *UpdateService {
	return &UpdateService{
		projects: projects,
		accounts: accounts,
		blobs:    blobs,
		now:      time.Now,
	}
}

// Apply processes one mutation payload for the given project and caller.
// Precedence is fixed: note delete, then file delete, then field updates
// (developers) or note append (the linked client). The first matching delete
// ends the request; no other payload field is applied alongside it.
func (s *UpdateService) Apply(ctx context.Context, caller models.Account, projectID string, patch dto.ProjectPatch) (models.Project, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		if isRecordNotFound(err) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, storeFailure(err)
	}

	isDev := CanEditProjectFields(caller)
	isLinkedClient := project.ClientID != nil && *project.ClientID == caller.ID
	if !isDev && !isLinkedClient {
		return models.Project{}, forbiddenf("no access to this project")
	}

	if patch.DeleteNoteID != nil {
		return s.deleteNote(caller, project, *patch.DeleteNoteID)
	}
	if patch.DeleteFileID != nil {
		return s.deleteFile(ctx, caller, project, *patch.DeleteFileID)
	}

	now := s.now()
	columns := map[string]interface{}{}

	if isDev {
		if err := s.stageFields(caller, patch, now, columns); err != nil {
			return models.Project{}, err
		}
	}

	if patch.NewNote != nil && CanAddNote(caller, project) {
		appended := append(models.Notes{}, project.Notes...)
		appended = append(appended, models.Note{
			ID:       utils.GenerateID(),
			AuthorID: caller.ID,
			Text:     patch.NewNote.Text,
			Date:     now,
		})
		columns["notes"] = appended
		metrics.RecordMutation("note_append")
	}

	// Nothing staged and nothing appended: success as a no-op, not an
	// error. lastUpdated is untouched.
	if len(columns) == 0 {
		return project, nil
	}

	columns["last_updated"] = now
	if err := s.projects.ApplyPatch(project.ID, columns); err != nil {
		if isRecordNotFound(err) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, storeFailure(err)
	}
	metrics.RecordMutation("update")

	return s.reload(project.ID)
}

// stageFields validates each present field independently and stages the
// resulting column writes.
func (s *UpdateService) stageFields(caller models.Account, patch dto.ProjectPatch, now time.Time, columns map[string]interface{}) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return validationf("project name must not be empty")
		}
		columns["name"] = name
	}

	if patch.Status != nil {
		status := models.ProjectStatus(*patch.Status)
		if !models.ValidStatus(status) {
			return validationf("invalid status %q", *patch.Status)
		}
		columns["status"] = status
	}

	if patch.Deadline != nil {
		deadline, err := parseDate(*patch.Deadline)
		if err != nil {
			return err
		}
		columns["deadline"] = deadline
	}

	if patch.Budget != nil {
		budget, err := parseBudget(patch.Budget)
		if err != nil {
			return err
		}
		columns["budget"] = budget
	}

	if patch.ClientID != nil {
		clientID := strings.TrimSpace(*patch.ClientID)
		if clientID == "" {
			// Explicit empty value detaches the client.
			columns["client_id"] = nil
		} else {
			ok, err := s.accounts.ExistsAll([]string{clientID})
			if err != nil {
				return storeFailure(err)
			}
			if !ok {
				return validationf("unknown client account %q", clientID)
			}
			columns["client_id"] = clientID
		}
	}

	if patch.AssignedDevelopers != nil {
		ids := *patch.AssignedDevelopers
		ok, err := s.accounts.ExistsAll(ids)
		if err != nil {
			return storeFailure(err)
		}
		if !ok {
			return validationf("assigned developers contain an unknown account")
		}
		columns["assigned_developers"] = models.IDList(ids)
	}

	if patch.Milestones != nil {
		milestones, err := buildMilestones(*patch.Milestones)
		if err != nil {
			return err
		}
		columns["milestones"] = milestones
	}

	if patch.Files != nil {
		columns["files"] = buildFiles(*patch.Files, caller.ID, now)
	}

	if patch.Notes != nil {
		columns["notes"] = buildNotes(*patch.Notes, caller.ID, now)
	}

	return nil
}

func (s *UpdateService) deleteNote(caller models.Account, project models.Project, noteID string) (models.Project, error) {
	note, ok := project.NoteByID(noteID)
	if !ok {
		return models.Project{}, ErrInvalidTarget
	}
	if !CanDeleteNote(caller, note) {
		return models.Project{}, forbiddenf("you can only delete your own note")
	}

	remaining := make(models.Notes, 0, len(project.Notes)-1)
	for _, n := range project.Notes {
		if n.ID != noteID {
			remaining = append(remaining, n)
		}
	}
	err := s.projects.ApplyPatch(project.ID, map[string]interface{}{
		"notes":        remaining,
		"last_updated": s.now(),
	})
	if err != nil {
		return models.Project{}, storeFailure(err)
	}
	metrics.RecordMutation("note_delete")

	return s.reload(project.ID)
}

func (s *UpdateService) deleteFile(ctx context.Context, caller models.Account, project models.Project, fileID string) (models.Project, error) {
	entry, ok := project.FileByID(fileID)
	if !ok {
		return models.Project{}, ErrInvalidTarget
	}

	// The uploader of record lives with the blob; fall back to the embedded
	// entry when the blob store cannot answer.
	uploader, err := s.blobs.GetUploader(ctx, entry.StorageRef)
	if err != nil || uploader == "" {
		uploader = entry.UploadedBy
	}
	if !CanDeleteFile(caller, uploader) {
		return models.Project{}, forbiddenf("you can only delete your own file")
	}

	remaining := make(models.FileEntries, 0, len(project.Files)-1)
	for _, f := range project.Files {
		if f.ID != fileID {
			remaining = append(remaining, f)
		}
	}
	err = s.projects.ApplyPatch(project.ID, map[string]interface{}{
		"files":        remaining,
		"last_updated": s.now(),
	})
	if err != nil {
		return models.Project{}, storeFailure(err)
	}
	metrics.RecordMutation("file_delete")

	// Blob deletion is best-effort: the entry is already gone from the
	// document, an orphaned blob is preferable to a dangling reference.
	if err := s.blobs.Delete(ctx, entry.StorageRef); err != nil {
		logger.Log.Warn("blob delete failed",
			zap.String("projectId", project.ID),
			zap.String("storageRef", entry.StorageRef),
			zap.Error(err))
	}

	return s.reload(project.ID)
}

func (s *UpdateService) reload(id string) (models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return models.Project{}, storeFailure(err)
	}
	return project, nil
}
