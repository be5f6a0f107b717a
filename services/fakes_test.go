package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cliento-portal/models"
)

// In-memory store doubles. They honor the same contracts as the GORM
// repositories, including gorm.ErrRecordNotFound for missing rows.

type memProjectStore struct {
	projects map[string]models.Project
	seq      int
}

func newMemProjectStore() *memProjectStore {
	return &memProjectStore{projects: map[string]models.Project{}}
}

func (s *memProjectStore) FindByID(id string) (models.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *memProjectStore) Create(project models.Project) (models.Project, error) {
	if project.ID == "" {
		s.seq++
		project.ID = fmt.Sprintf("project-%d", s.seq)
	}
	s.projects[project.ID] = project
	return project, nil
}

func (s *memProjectStore) ApplyPatch(id string, columns map[string]interface{}) error {
	p, ok := s.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range columns {
		switch column {
		case "name":
			p.Name = value.(string)
		case "status":
			p.Status = value.(models.ProjectStatus)
		case "deadline":
			p.Deadline = value.(*time.Time)
		case "budget":
			p.Budget = value.(*float64)
		case "client_id":
			if value == nil {
				p.ClientID = nil
			} else {
				id := value.(string)
				p.ClientID = &id
			}
		case "assigned_developers":
			p.AssignedDevelopers = value.(models.IDList)
		case "milestones":
			p.Milestones = value.(models.Milestones)
		case "files":
			p.Files = value.(models.FileEntries)
		case "notes":
			p.Notes = value.(models.Notes)
		case "last_updated":
			p.LastUpdated = value.(time.Time)
		default:
			return fmt.Errorf("unexpected column %q", column)
		}
	}
	s.projects[id] = p
	return nil
}

func (s *memProjectStore) Delete(id string) error {
	if _, ok := s.projects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *memProjectStore) FindForAccount(account models.Account) ([]models.Project, error) {
	var visible []models.Project
	for _, p := range s.projects {
		if CanReadProject(account, p) {
			visible = append(visible, p)
		}
	}
	SortProjects(visible)
	return visible, nil
}

type memAccountStore struct {
	accounts map[string]models.Account
	seq      int
}

func newMemAccountStore(accounts ...models.Account) *memAccountStore {
	s := &memAccountStore{accounts: map[string]models.Account{}}
	for _, a := range accounts {
		s.accounts[a.ID] = a
	}
	return s
}

func (s *memAccountStore) FindByID(id string) (models.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return models.Account{}, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (s *memAccountStore) FindByIdentifier(identifier string) (models.Account, error) {
	for _, a := range s.accounts {
		if a.Username == identifier || a.Email == identifier {
			return a, nil
		}
	}
	return models.Account{}, gorm.ErrRecordNotFound
}

func (s *memAccountStore) ListAll() ([]models.Account, error) {
	all := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		all = append(all, a)
	}
	return all, nil
}

func (s *memAccountStore) ListByRole(role models.Role) ([]models.Account, error) {
	var matched []models.Account
	for _, a := range s.accounts {
		if a.Role == role {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (s *memAccountStore) ExistsAll(ids []string) (bool, error) {
	for _, id := range ids {
		if _, ok := s.accounts[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *memAccountStore) Create(account models.Account) (models.Account, error) {
	if account.ID == "" {
		s.seq++
		account.ID = fmt.Sprintf("account-%d", s.seq)
	}
	s.accounts[account.ID] = account
	return account, nil
}

func (s *memAccountStore) UpdateFields(id string, fields map[string]interface{}) error {
	a, ok := s.accounts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range fields {
		switch column {
		case "username":
			a.Username = value.(string)
		case "email":
			a.Email = value.(string)
		case "company_name":
			a.CompanyName = value.(string)
		case "btw_number":
			a.BTWNumber = value.(string)
		case "kvk_number":
			a.KVKNumber = value.(string)
		case "address":
			a.Address = value.(string)
		case "postal_code":
			a.PostalCode = value.(string)
		case "city":
			a.City = value.(string)
		case "country":
			a.Country = value.(string)
		case "phone_number":
			a.PhoneNumber = value.(string)
		case "avatar_ref":
			a.AvatarRef = value.(string)
		default:
			return fmt.Errorf("unexpected column %q", column)
		}
	}
	s.accounts[id] = a
	return nil
}

func (s *memAccountStore) Delete(id string) error {
	if _, ok := s.accounts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.accounts, id)
	return nil
}

// Shared fixture accounts. One creator developer, one assigned developer, one
// unrelated developer, one linked client, one unrelated client.
var (
	devCreator  = models.Account{ID: "dev-creator", Username: "anna", Email: "anna@example.com", Role: models.RoleDeveloper}
	devAssigned = models.Account{ID: "dev-assigned", Username: "bram", Email: "bram@example.com", Role: models.RoleDeveloper}
	devOther    = models.Account{ID: "dev-other", Username: "cas", Email: "cas@example.com", Role: models.RoleDeveloper}
	clientOnPrj = models.Account{ID: "client-linked", Username: "daan", Email: "daan@example.com", Role: models.RoleClient}
	clientOther = models.Account{ID: "client-other", Username: "eva", Email: "eva@example.com", Role: models.RoleClient}
)

func fixtureAccounts() *memAccountStore {
	return newMemAccountStore(devCreator, devAssigned, devOther, clientOnPrj, clientOther)
}

// fixtureProject builds the canonical test project: created by devCreator,
// devAssigned on it, clientOnPrj linked.
func fixtureProject(at time.Time) models.Project {
	clientID := clientOnPrj.ID
	return models.Project{
		ID:                 "project-1",
		Name:               "Webshop",
		Status:             models.StatusInProgress,
		AssignedDevelopers: models.IDList{devCreator.ID, devAssigned.ID},
		ClientID:           &clientID,
		CreatedBy:          devCreator.ID,
		Milestones:         models.Milestones{},
		Files:              models.FileEntries{},
		Notes:              models.Notes{},
		CreatedAt:          at,
		LastUpdated:        at,
	}
}

func strPtr(s string) *string { return &s }
