package repositories

import (
	"gorm.io/gorm"

	"github.com/cliento-portal/models"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository over the given handle
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByID retrieves an account by its ID
func (r *AccountRepository) FindByID(id string) (models.Account, error) {
	var account models.Account
	result := r.db.First(&account, "id = ?", id)
	return account, result.Error
}

// FindByIdentifier retrieves an account by username or email
func (r *AccountRepository) FindByIdentifier(identifier string) (models.Account, error) {
	var account models.Account
	result := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&account)
	return account, result.Error
}

// ListAll retrieves every account. Password hashes stay in the struct but are
// never serialized.
func (r *AccountRepository) ListAll() ([]models.Account, error) {
	var accounts []models.Account
	result := r.db.Order("username asc").Find(&accounts)
	return accounts, result.Error
}

// ListByRole retrieves all accounts with the given role
func (r *AccountRepository) ListByRole(role models.Role) ([]models.Account, error) {
	var accounts []models.Account
	result := r.db.Where("role = ?", role).Order("username asc").Find(&accounts)
	return accounts, result.Error
}

// ExistsAll reports whether every id references a stored account
func (r *AccountRepository) ExistsAll(ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	result := r.db.Model(&models.Account{}).Where("id IN ?", ids).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count == int64(len(ids)), nil
}

// Create inserts a new account
func (r *AccountRepository) Create(account models.Account) (models.Account, error) {
	result := r.db.Create(&account)
	return account, result.Error
}

// UpdateFields applies a partial update to one account row
func (r *AccountRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", id).Updates(fields)
	return result.Error
}

// Delete removes an account
func (r *AccountRepository) Delete(id string) error {
	result := r.db.Delete(&models.Account{}, "id = ?", id)
	return result.Error
}
