package services

import (
	"testing"
	"time"

	"github.com/cliento-portal/models"
)

func TestCanReadProject(t *testing.T) {
	project := fixtureProject(time.Now())

	tests := []struct {
		name    string
		account models.Account
		want    bool
	}{
		{"creator developer", devCreator, true},
		{"assigned developer", devAssigned, true},
		{"unrelated developer", devOther, false},
		{"linked client", clientOnPrj, true},
		{"unrelated client", clientOther, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReadProject(tt.account, project); got != tt.want {
				t.Errorf("CanReadProject(%s) = %v, want %v", tt.account.ID, got, tt.want)
			}
		})
	}
}

func TestCanReadProjectNoClientLinked(t *testing.T) {
	project := fixtureProject(time.Now())
	project.ClientID = nil

	if CanReadProject(clientOnPrj, project) {
		t.Error("client should not read a project without a linked client")
	}
}

func TestCanEditProjectFields(t *testing.T) {
	if !CanEditProjectFields(devOther) {
		t.Error("any developer may edit fields")
	}
	if CanEditProjectFields(clientOnPrj) {
		t.Error("clients may not edit fields")
	}
}

func TestCanAddNote(t *testing.T) {
	project := fixtureProject(time.Now())

	if !CanAddNote(clientOnPrj, project) {
		t.Error("linked client may add a note")
	}
	if CanAddNote(clientOther, project) {
		t.Error("unrelated client may not add a note")
	}
	if CanAddNote(devCreator, project) {
		t.Error("developers do not use the note append path")
	}
}

func TestCanDeleteNote(t *testing.T) {
	note := models.Note{ID: "note-1", AuthorID: clientOnPrj.ID}

	if !CanDeleteNote(devOther, note) {
		t.Error("any developer may delete a note")
	}
	if !CanDeleteNote(clientOnPrj, note) {
		t.Error("author may delete their own note")
	}
	if CanDeleteNote(clientOther, note) {
		t.Error("non-author client may not delete the note")
	}
}

func TestCanDeleteFile(t *testing.T) {
	if !CanDeleteFile(devAssigned, clientOnPrj.ID) {
		t.Error("any developer may delete a file")
	}
	if !CanDeleteFile(clientOnPrj, clientOnPrj.ID) {
		t.Error("uploader may delete their own file")
	}
	if CanDeleteFile(clientOther, clientOnPrj.ID) {
		t.Error("non-uploader client may not delete the file")
	}
}

func TestCanDeleteProject(t *testing.T) {
	project := fixtureProject(time.Now())

	if !CanDeleteProject(devAssigned, project) {
		t.Error("assigned developer may delete the project")
	}
	if CanDeleteProject(devOther, project) {
		t.Error("unrelated developer may not delete the project")
	}
	if CanDeleteProject(clientOnPrj, project) {
		t.Error("linked client may not delete the project")
	}
}
