package services

import (
	"github.com/cliento-portal/models"
)

// ProjectStore is the persistence contract the services operate against. The
// GORM repository implements it; tests use an in-memory double.
type ProjectStore interface {
	FindByID(id string) (models.Project, error)
	Create(project models.Project) (models.Project, error)
	// ApplyPatch writes only the given columns of one project row.
	ApplyPatch(id string, columns map[string]interface{}) error
	Delete(id string) error
	// FindForAccount returns the projects visible to the account, ordered by
	// last_updated then created_at, both descending.
	FindForAccount(account models.Account) ([]models.Project, error)
}

// AccountStore is the account persistence contract.
type AccountStore interface {
	FindByID(id string) (models.Account, error)
	FindByIdentifier(identifier string) (models.Account, error)
	ListAll() ([]models.Account, error)
	ListByRole(role models.Role) ([]models.Account, error)
	ExistsAll(ids []string) (bool, error)
	Create(account models.Account) (models.Account, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}
