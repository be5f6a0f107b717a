package services

import (
	"errors"
	"testing"
	"time"

	"github.com/cliento-portal/dto"
	"github.com/cliento-portal/models"
)

func newProjectFixture(t *testing.T) (*ProjectService, *memProjectStore, time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	projects := newMemProjectStore()
	service := NewProjectService(projects, fixtureAccounts())
	service.now = func() time.Time { return now }
	return service, projects, now
}

func TestCreateProjectDefaults(t *testing.T) {
	service, _, now := newProjectFixture(t)

	created, err := service.CreateProject(devCreator, dto.CreateProjectRequest{
		Name: "Intranet",
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if created.Status != models.StatusOpen {
		t.Errorf("status = %q, want default open", created.Status)
	}
	if !created.CreatedAt.Equal(now) || !created.LastUpdated.Equal(now) {
		t.Errorf("createdAt = %v, lastUpdated = %v, both want %v", created.CreatedAt, created.LastUpdated, now)
	}
	if !created.AssignedDevelopers.Contains(devCreator.ID) {
		t.Error("creator must be in the assigned developers")
	}
	if created.ClientID != nil {
		t.Error("no client requested, clientId must be nil")
	}
}

func TestCreateProjectForcesCreatorAssignment(t *testing.T) {
	service, _, _ := newProjectFixture(t)

	created, err := service.CreateProject(devCreator, dto.CreateProjectRequest{
		Name:               "Intranet",
		AssignedDevelopers: []string{devAssigned.ID},
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if len(created.AssignedDevelopers) != 2 {
		t.Fatalf("assigned = %v, want creator plus one", created.AssignedDevelopers)
	}
	if !created.AssignedDevelopers.Contains(devCreator.ID) {
		t.Error("creator must be forced into the assignment")
	}
}

func TestCreateProjectNonDeveloperForbidden(t *testing.T) {
	service, _, _ := newProjectFixture(t)

	_, err := service.CreateProject(clientOnPrj, dto.CreateProjectRequest{Name: "Intranet"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	service, _, _ := newProjectFixture(t)

	tests := []struct {
		name string
		req  dto.CreateProjectRequest
	}{
		{"blank name", dto.CreateProjectRequest{Name: "   "}},
		{"bad status", dto.CreateProjectRequest{Name: "x", Status: "archived"}},
		{"unknown client", dto.CreateProjectRequest{Name: "x", ClientID: "ghost"}},
		{"unknown developer", dto.CreateProjectRequest{Name: "x", AssignedDevelopers: []string{"ghost"}}},
		{"negative budget", dto.CreateProjectRequest{Name: "x", Budget: []byte(`-5`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.CreateProject(devCreator, tt.req); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestGetProjectDetailPopulates(t *testing.T) {
	service, projects, now := newProjectFixture(t)
	if _, err := projects.Create(fixtureProject(now)); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	detail, err := service.GetProjectDetail(devCreator, "project-1")
	if err != nil {
		t.Fatalf("GetProjectDetail: %v", err)
	}
	if len(detail.AssignedDevelopers) != 2 {
		t.Fatalf("populated developers = %d, want 2", len(detail.AssignedDevelopers))
	}
	for _, dev := range detail.AssignedDevelopers {
		if dev.Username == "" {
			t.Error("populated developer summary missing username")
		}
	}
	if detail.Client == nil || detail.Client.ID != clientOnPrj.ID {
		t.Errorf("populated client = %+v, want %s", detail.Client, clientOnPrj.ID)
	}
}

func TestGetProjectDetailSkipsDanglingAssignment(t *testing.T) {
	service, projects, now := newProjectFixture(t)
	project := fixtureProject(now)
	project.AssignedDevelopers = append(project.AssignedDevelopers, "gone")
	if _, err := projects.Create(project); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	detail, err := service.GetProjectDetail(devCreator, "project-1")
	if err != nil {
		t.Fatalf("GetProjectDetail: %v", err)
	}
	if len(detail.AssignedDevelopers) != 2 {
		t.Errorf("populated developers = %d, dangling id must be skipped", len(detail.AssignedDevelopers))
	}
}

func TestGetProjectDetailForbidden(t *testing.T) {
	service, projects, now := newProjectFixture(t)
	if _, err := projects.Create(fixtureProject(now)); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	if _, err := service.GetProjectDetail(clientOther, "project-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestDeleteProjectScope(t *testing.T) {
	tests := []struct {
		name    string
		caller  models.Account
		wantErr error
	}{
		{"creator developer", devCreator, nil},
		{"assigned developer", devAssigned, nil},
		{"unrelated developer", devOther, ErrForbidden},
		{"linked client", clientOnPrj, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, projects, now := newProjectFixture(t)
			if _, err := projects.Create(fixtureProject(now)); err != nil {
				t.Fatalf("seed project: %v", err)
			}

			err := service.DeleteProject(tt.caller, "project-1")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("DeleteProject: %v", err)
				}
				if _, err := projects.FindByID("project-1"); !isRecordNotFound(err) {
					t.Error("project must be gone after delete")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if _, err := projects.FindByID("project-1"); err != nil {
				t.Error("forbidden delete must leave the project in place")
			}
		})
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	service, _, _ := newProjectFixture(t)

	if err := service.DeleteProject(devCreator, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
