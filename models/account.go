package models

import (
	"time"
)

// Role represents account role types
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleClient    Role = "client"
)

// ValidRole reports whether r is one of the two recognized roles.
func ValidRole(r Role) bool {
	return r == RoleDeveloper || r == RoleClient
}

// Account represents a portal account (developer or client)
type Account struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // Password hash is not exposed in JSON
	Role     Role   `json:"role" gorm:"type:varchar(10);not null"`

	// Billing profile (used for invoicing)
	CompanyName string `json:"companyName" gorm:"default:null"`
	BTWNumber   string `json:"btwNumber" gorm:"default:null"` // VAT id
	KVKNumber   string `json:"kvkNumber" gorm:"default:null"` // chamber of commerce registration
	Address     string `json:"address" gorm:"default:null"`
	PostalCode  string `json:"postalCode" gorm:"default:null"`
	City        string `json:"city" gorm:"default:null"`
	Country     string `json:"country" gorm:"default:null"`
	PhoneNumber string `json:"phoneNumber" gorm:"default:null"`

	// Avatar photo stored in the blob store
	AvatarRef string `json:"avatarRef" gorm:"default:null"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name for Account model
func (Account) TableName() string {
	return "accounts"
}

// HasBillingData reports whether the account carries everything an invoice
// party needs.
func (a Account) HasBillingData() bool {
	return a.CompanyName != "" && a.Address != "" && a.PostalCode != "" &&
		a.City != "" && a.KVKNumber != "" && a.BTWNumber != ""
}
