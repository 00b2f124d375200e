package models

import "time"

// Admin is an administrative account able to manage posts. Accounts are
// provisioned out of band via the admin CLI; there is no signup endpoint.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:editor" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminProfile is the subset of Admin returned to clients after login.
type AdminProfile struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Profile returns the client-safe view of the admin.
func (a *Admin) Profile() AdminProfile {
	return AdminProfile{ID: a.ID, Email: a.Email, Role: a.Role}
}
