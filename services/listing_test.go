package services

import (
	"testing"
	"time"

	"github.com/cliento-portal/models"
)

func TestListProjectsScope(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := newMemProjectStore()

	created := fixtureProject(base)
	projects.Create(created)

	othersClient := clientOther.ID
	other := models.Project{
		ID:                 "project-2",
		Name:               "CRM",
		Status:             models.StatusOpen,
		AssignedDevelopers: models.IDList{devOther.ID},
		ClientID:           &othersClient,
		CreatedBy:          devOther.ID,
		CreatedAt:          base,
		LastUpdated:        base,
	}
	projects.Create(other)

	service := NewListingService(projects)

	tests := []struct {
		name    string
		caller  models.Account
		wantIDs []string
	}{
		{"creator developer", devCreator, []string{"project-1"}},
		{"assigned developer", devAssigned, []string{"project-1"}},
		{"other developer", devOther, []string{"project-2"}},
		{"linked client", clientOnPrj, []string{"project-1"}},
		{"other client", clientOther, []string{"project-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ListProjects(tt.caller)
			if err != nil {
				t.Fatalf("ListProjects: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d projects, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("project[%d] = %s, want %s", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestSortProjectsCanonicalOrder(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Two projects tie on lastUpdated; createdAt breaks the tie.
	projects := []models.Project{
		{ID: "old", CreatedAt: base, LastUpdated: base},
		{ID: "tied-older", CreatedAt: base.Add(1 * time.Hour), LastUpdated: base.Add(48 * time.Hour)},
		{ID: "tied-newer", CreatedAt: base.Add(2 * time.Hour), LastUpdated: base.Add(48 * time.Hour)},
		{ID: "recent", CreatedAt: base, LastUpdated: base.Add(72 * time.Hour)},
	}

	SortProjects(projects)

	want := []string{"recent", "tied-newer", "tied-older", "old"}
	for i, id := range want {
		if projects[i].ID != id {
			t.Errorf("projects[%d] = %s, want %s", i, projects[i].ID, id)
		}
	}
}
