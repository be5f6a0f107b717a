package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cliento-portal/models"
)

// ProjectRepository handles database operations for project documents
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository over the given handle
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	return project, result.Error
}

// ApplyPatch writes only the given columns of one project row. Embedded
// arrays replace wholesale; concurrent overlapping writes are
// last-writer-wins, which is the intended document-store behavior.
func (r *ProjectRepository) ApplyPatch(id string, columns map[string]interface{}) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the project row. Blobs referenced by its file entries are
// not cascaded.
func (r *ProjectRepository) Delete(id string) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	return result.Error
}

// FindForAccount returns the projects visible to the account: for a
// developer those it created or is assigned to, for a client those linked to
// it. Any other role sees nothing. Ordered by last_updated, then created_at,
// both descending.
func (r *ProjectRepository) FindForAccount(account models.Account) ([]models.Project, error) {
	projects := []models.Project{}

	query := r.db.Model(&models.Project{})
	switch account.Role {
	case models.RoleDeveloper:
		member := fmt.Sprintf("[%q]", account.ID)
		query = query.Where("created_by = ? OR assigned_developers @> ?", account.ID, member)
	case models.RoleClient:
		query = query.Where("client_id = ?", account.ID)
	default:
		return projects, nil
	}

	result := query.Order("last_updated DESC, created_at DESC").Find(&projects)
	return projects, result.Error
}
