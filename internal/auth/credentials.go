package auth

import (
	"context"
	"strings"

	"coachblog/internal/models"
)

// AdminSource looks up admin accounts for credential checks. It returns
// (nil, nil) when no account matches.
type AdminSource interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// CredentialStore verifies admin login credentials.
type CredentialStore struct {
	admins AdminSource
}

// NewCredentialStore returns a CredentialStore backed by the given source.
func NewCredentialStore(admins AdminSource) *CredentialStore {
	return &CredentialStore{admins: admins}
}

// Verify checks the email/password pair and returns the matching admin.
// An unknown email and a wrong password produce the same error, so callers
// cannot be used to enumerate accounts.
func (s *CredentialStore) Verify(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if admin == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if !CheckPassword(admin.PasswordHash, password) {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	return admin, nil
}
