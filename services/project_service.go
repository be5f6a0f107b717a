package services

import (
	"strings"
	"time"

	"github.com/cliento-portal/dto"
	"github.com/cliento-portal/lib/metrics"
	"github.com/cliento-portal/models"
)

// ProjectService handles project lifecycle: creation with defaults,
// fetch-with-population and deletion.
type ProjectService struct {
	projects ProjectStore
	accounts AccountStore
	now      func() time.Time
}

// NewProjectService creates a new project service instance
func NewProjectService(projects ProjectStore, accounts AccountStore) *ProjectService {
	return &ProjectService{
		projects: projects,
		accounts: accounts,
		now:      time.Now,
	}
}

// CreateProject creates a project for the given developer. Status defaults
// to open, the creator is forced into the assigned developers, and
// createdAt equals lastUpdated.
func (s *ProjectService) CreateProject(creator models.Account, req dto.CreateProjectRequest) (models.Project, error) {
	if creator.Role != models.RoleDeveloper {
		return models.Project{}, forbiddenf("only developers can create projects")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Project{}, validationf("project name is required")
	}

	status := models.StatusOpen
	if req.Status != "" {
		status = models.ProjectStatus(req.Status)
		if !models.ValidStatus(status) {
			return models.Project{}, validationf("invalid status %q", req.Status)
		}
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return models.Project{}, err
	}
	budget, err := parseBudget(req.Budget)
	if err != nil {
		return models.Project{}, err
	}

	var clientID *string
	if trimmed := strings.TrimSpace(req.ClientID); trimmed != "" {
		ok, err := s.accounts.ExistsAll([]string{trimmed})
		if err != nil {
			return models.Project{}, storeFailure(err)
		}
		if !ok {
			return models.Project{}, validationf("unknown client account %q", trimmed)
		}
		clientID = &trimmed
	}

	devIDs := models.IDList(req.AssignedDevelopers)
	if len(devIDs) > 0 {
		ok, err := s.accounts.ExistsAll(devIDs)
		if err != nil {
			return models.Project{}, storeFailure(err)
		}
		if !ok {
			return models.Project{}, validationf("assigned developers contain an unknown account")
		}
	}
	if !devIDs.Contains(creator.ID) {
		devIDs = append(models.IDList{creator.ID}, devIDs...)
	}

	now := s.now()
	milestones, err := buildMilestones(req.Milestones)
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		Name:               name,
		Status:             status,
		Deadline:           deadline,
		Budget:             budget,
		AssignedDevelopers: devIDs,
		ClientID:           clientID,
		CreatedBy:          creator.ID,
		Milestones:         milestones,
		Files:              buildFiles(req.Files, creator.ID, now),
		Notes:              buildNotes(req.Notes, creator.ID, now),
		CreatedAt:          now,
		LastUpdated:        now,
	}

	created, err := s.projects.Create(project)
	if err != nil {
		return models.Project{}, storeFailure(err)
	}
	metrics.RecordMutation("create")
	return created, nil
}

// GetProjectDetail fetches one project and resolves its account references
// to secret-free summaries. Population is a read-side composition step; the
// access check happens first, on the raw document.
func (s *ProjectService) GetProjectDetail(caller models.Account, id string) (dto.ProjectDetail, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.ProjectDetail{}, ErrNotFound
		}
		return dto.ProjectDetail{}, storeFailure(err)
	}
	if !CanReadProject(caller, project) {
		return dto.ProjectDetail{}, forbiddenf("no access to this project")
	}

	detail := dto.ProjectDetail{Project: project}
	for _, devID := range project.AssignedDevelopers {
		account, err := s.accounts.FindByID(devID)
		if err != nil {
			if isRecordNotFound(err) {
				// Dangling assignment, skip it.
				continue
			}
			return dto.ProjectDetail{}, storeFailure(err)
		}
		detail.AssignedDevelopers = append(detail.AssignedDevelopers, dto.Summarize(account))
	}
	if project.ClientID != nil {
		account, err := s.accounts.FindByID(*project.ClientID)
		if err == nil {
			summary := dto.Summarize(account)
			detail.Client = &summary
		} else if !isRecordNotFound(err) {
			return dto.ProjectDetail{}, storeFailure(err)
		}
	}
	return detail, nil
}

// DeleteProject removes a project. Immediate and irreversible; blobs
// referenced by its file entries are not cascaded.
func (s *ProjectService) DeleteProject(caller models.Account, id string) error {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	if !CanDeleteProject(caller, project) {
		return forbiddenf("only a developer on this project can delete it")
	}
	if err := s.projects.Delete(id); err != nil {
		return storeFailure(err)
	}
	metrics.RecordMutation("delete")
	return nil
}
