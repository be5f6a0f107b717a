package services

import (
	"sort"

	"github.com/cliento-portal/models"
)

// ListingService builds the role-scoped project listing: developers see what
// they created or are assigned to, clients what they are linked to, any
// other role nothing.
type ListingService struct {
	projects ProjectStore
}

// NewListingService creates a new listing service instance
func NewListingService(projects ProjectStore) *ListingService {
	return &ListingService{projects: projects}
}

// ListProjects returns the caller's visible projects in canonical order.
func (s *ListingService) ListProjects(caller models.Account) ([]models.Project, error) {
	projects, err := s.projects.FindForAccount(caller)
	if err != nil {
		return nil, storeFailure(err)
	}
	// The store already orders its results; sorting here keeps every store
	// implementation on the same canonical order.
	SortProjects(projects)
	return projects, nil
}

// SortProjects orders projects by lastUpdated descending, ties broken by
// createdAt descending. This is the canonical listing order.
func SortProjects(projects []models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		if !projects[i].LastUpdated.Equal(projects[j].LastUpdated) {
			return projects[i].LastUpdated.After(projects[j].LastUpdated)
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}
