package dto

import (
	"github.com/cliento-portal/models"
)

// AccountSummary is the secret-free account shape used when resolving
// project references and in account pickers.
type AccountSummary struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	CompanyName string      `json:"companyName,omitempty"`
	AvatarRef   string      `json:"avatarRef,omitempty"`
}

// Summarize strips an account down to its public summary.
func Summarize(a models.Account) AccountSummary {
	return AccountSummary{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Role:        a.Role,
		CompanyName: a.CompanyName,
		AvatarRef:   a.AvatarRef,
	}
}

// UpdateAccountRequest carries a partial update of the caller's own profile.
// Role is deliberately absent: it is immutable after registration.
type UpdateAccountRequest struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	CompanyName *string `json:"companyName"`
	BTWNumber   *string `json:"btwNumber"`
	KVKNumber   *string `json:"kvkNumber"`
	Address     *string `json:"address"`
	PostalCode  *string `json:"postalCode"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	PhoneNumber *string `json:"phoneNumber"`
}
