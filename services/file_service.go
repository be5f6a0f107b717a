package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/cliento-portal/lib/storage"
	"github.com/cliento-portal/models"
	"github.com/cliento-portal/utils"
)

// FileService handles file attachment upload and download. Deletion goes
// through the update processor like any other project mutation.
type FileService struct {
	projects ProjectStore
	blobs    storage.BlobStore
	now      func() time.Time
}

// NewFileService creates a new file service instance
func NewFileService(projects ProjectStore, blobs storage.BlobStore) *FileService {
	return &FileService{projects: projects, blobs: blobs, now: time.Now}
}

// Upload streams the file to the blob store first, then appends the entry to
// the project document. A crash in between leaves an orphaned blob, never a
// dangling document reference.
func (s *FileService) Upload(ctx context.Context, caller models.Account, projectID string, r io.Reader, filename, mimeType string) (models.FileEntry, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		if isRecordNotFound(err) {
			return models.FileEntry{}, ErrNotFound
		}
		return models.FileEntry{}, storeFailure(err)
	}
	if !CanUploadFile(caller, project) {
		return models.FileEntry{}, forbiddenf("no access to this project")
	}

	ref, err := s.blobs.Store(ctx, r, filename, storage.Metadata{
		ProjectID: project.ID,
		Uploader:  caller.ID,
		MimeType:  mimeType,
	})
	if err != nil {
		return models.FileEntry{}, storeFailure(err)
	}

	now := s.now()
	entry := models.FileEntry{
		ID:         utils.GenerateID(),
		Filename:   filename,
		StorageRef: ref,
		UploadedBy: caller.ID,
		UploadedAt: now,
	}
	files := append(models.FileEntries{}, project.Files...)
	files = append(files, entry)

	err = s.projects.ApplyPatch(project.ID, map[string]interface{}{
		"files":        files,
		"last_updated": now,
	})
	if err != nil {
		return models.FileEntry{}, storeFailure(err)
	}
	return entry, nil
}

// Download resolves the embedded entry by its stable id and streams the blob
// for callers that can read the project.
func (s *FileService) Download(ctx context.Context, caller models.Account, projectID, fileID string) (io.ReadCloser, string, string, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, "", "", ErrNotFound
		}
		return nil, "", "", storeFailure(err)
	}
	if !CanReadProject(caller, project) {
		return nil, "", "", forbiddenf("no access to this project")
	}

	entry, ok := project.FileByID(fileID)
	if !ok {
		return nil, "", "", ErrNotFound
	}

	body, mimeType, err := s.blobs.Retrieve(ctx, entry.StorageRef)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", "", ErrNotFound
		}
		return nil, "", "", storeFailure(err)
	}
	return body, mimeType, entry.Filename, nil
}
