package services

import (
	"github.com/cliento-portal/models"
)

// Access policy: pure predicates, no I/O. Role is a closed variant and every
// predicate handles both arms explicitly.

// CanReadProject reports whether the account may see the project at all: a
// developer who created it or is assigned to it, or the linked client.
func CanReadProject(account models.Account, project models.Project) bool {
	switch account.Role {
	case models.RoleDeveloper:
		return project.CreatedBy == account.ID || project.AssignedDevelopers.Contains(account.ID)
	case models.RoleClient:
		return project.ClientID != nil && *project.ClientID == account.ID
	}
	return false
}

// CanEditProjectFields reports whether the account may change project fields
// (name, status, deadline, budget, assignments) or bulk-replace the embedded
// arrays. Developers only.
func CanEditProjectFields(account models.Account) bool {
	return account.Role == models.RoleDeveloper
}

// CanAddNote reports whether the account may append a single note. Only the
// linked client takes this path; developers maintain notes via bulk replace.
func CanAddNote(account models.Account, project models.Project) bool {
	return account.Role == models.RoleClient &&
		project.ClientID != nil && *project.ClientID == account.ID
}

// CanDeleteNote reports whether the account may delete the note: any
// developer, or the note's author.
func CanDeleteNote(account models.Account, note models.Note) bool {
	return account.Role == models.RoleDeveloper || note.AuthorID == account.ID
}

// CanDeleteFile reports whether the account may delete a file whose recorded
// uploader is uploaderID: any developer, or the uploader.
func CanDeleteFile(account models.Account, uploaderID string) bool {
	return account.Role == models.RoleDeveloper || uploaderID == account.ID
}

// CanUploadFile reports whether the account may attach files: an assigned
// developer, the creator, or the linked client.
func CanUploadFile(account models.Account, project models.Project) bool {
	return CanReadProject(account, project)
}

// CanDeleteProject reports whether the account may delete the project.
// Deletion requires the developer role and read access to this specific
// project; an unrelated developer cannot delete it.
func CanDeleteProject(account models.Account, project models.Project) bool {
	return account.Role == models.RoleDeveloper && CanReadProject(account, project)
}
