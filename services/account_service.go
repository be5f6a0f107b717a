package services

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/cliento-portal/dto"
	"github.com/cliento-portal/lib/logger"
	"github.com/cliento-portal/lib/storage"
	"github.com/cliento-portal/models"
)

// AccountService handles self-service on the caller's own account and the
// secret-free listings used by project pickers.
type AccountService struct {
	accounts AccountStore
	blobs    storage.BlobStore
}

// NewAccountService creates a new account service instance
func NewAccountService(accounts AccountStore, blobs storage.BlobStore) *AccountService {
	return &AccountService{accounts: accounts, blobs: blobs}
}

// UpdateProfile applies a partial update to the caller's own account. Role
// is immutable and not part of the request shape.
func (s *AccountService) UpdateProfile(caller models.Account, req dto.UpdateAccountRequest) (models.Account, error) {
	fields := map[string]interface{}{}

	if req.Username != nil {
		if *req.Username == "" {
			return models.Account{}, validationf("username must not be empty")
		}
		if other, err := s.accounts.FindByIdentifier(*req.Username); err == nil && other.ID != caller.ID {
			return models.Account{}, validationf("username already taken")
		}
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		if *req.Email == "" {
			return models.Account{}, validationf("email must not be empty")
		}
		if other, err := s.accounts.FindByIdentifier(*req.Email); err == nil && other.ID != caller.ID {
			return models.Account{}, validationf("email already registered")
		}
		fields["email"] = *req.Email
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.BTWNumber != nil {
		fields["btw_number"] = *req.BTWNumber
	}
	if req.KVKNumber != nil {
		fields["kvk_number"] = *req.KVKNumber
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.PostalCode != nil {
		fields["postal_code"] = *req.PostalCode
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}

	if len(fields) > 0 {
		if err := s.accounts.UpdateFields(caller.ID, fields); err != nil {
			return models.Account{}, storeFailure(err)
		}
	}

	account, err := s.accounts.FindByID(caller.ID)
	if err != nil {
		return models.Account{}, storeFailure(err)
	}
	return account, nil
}

// SetAvatar stores the photo and records its reference, replacing any
// previous avatar blob best-effort.
func (s *AccountService) SetAvatar(ctx context.Context, caller models.Account, r io.Reader, filename, mimeType string) (string, error) {
	ref, err := s.blobs.Store(ctx, r, filename, storage.Metadata{
		Uploader: caller.ID,
		MimeType: mimeType,
	})
	if err != nil {
		return "", storeFailure(err)
	}
	if err := s.accounts.UpdateFields(caller.ID, map[string]interface{}{"avatar_ref": ref}); err != nil {
		return "", storeFailure(err)
	}
	if caller.AvatarRef != "" {
		if err := s.blobs.Delete(ctx, caller.AvatarRef); err != nil {
			logger.Log.Warn("old avatar blob delete failed",
				zap.String("accountId", caller.ID), zap.Error(err))
		}
	}
	return ref, nil
}

// GetAvatar streams the caller's avatar photo.
func (s *AccountService) GetAvatar(ctx context.Context, caller models.Account) (io.ReadCloser, string, error) {
	if caller.AvatarRef == "" {
		return nil, "", ErrNotFound
	}
	body, mimeType, err := s.blobs.Retrieve(ctx, caller.AvatarRef)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", storeFailure(err)
	}
	return body, mimeType, nil
}

// RemoveAvatar clears the avatar reference and deletes the blob best-effort.
func (s *AccountService) RemoveAvatar(ctx context.Context, caller models.Account) error {
	if caller.AvatarRef == "" {
		return nil
	}
	if err := s.accounts.UpdateFields(caller.ID, map[string]interface{}{"avatar_ref": ""}); err != nil {
		return storeFailure(err)
	}
	if err := s.blobs.Delete(ctx, caller.AvatarRef); err != nil {
		logger.Log.Warn("avatar blob delete failed",
			zap.String("accountId", caller.ID), zap.Error(err))
	}
	return nil
}

// DeleteAccount removes the caller's own account and its avatar blob.
func (s *AccountService) DeleteAccount(ctx context.Context, caller models.Account) error {
	if err := s.accounts.Delete(caller.ID); err != nil {
		return storeFailure(err)
	}
	if caller.AvatarRef != "" {
		if err := s.blobs.Delete(ctx, caller.AvatarRef); err != nil {
			logger.Log.Warn("avatar blob delete failed",
				zap.String("accountId", caller.ID), zap.Error(err))
		}
	}
	return nil
}

// ListSummaries returns every account as a secret-free summary.
func (s *AccountService) ListSummaries() ([]dto.AccountSummary, error) {
	accounts, err := s.accounts.ListAll()
	if err != nil {
		return nil, storeFailure(err)
	}
	return summarizeAll(accounts), nil
}

// ListByRole returns the accounts with the given role as summaries.
func (s *AccountService) ListByRole(role models.Role) ([]dto.AccountSummary, error) {
	accounts, err := s.accounts.ListByRole(role)
	if err != nil {
		return nil, storeFailure(err)
	}
	return summarizeAll(accounts), nil
}

func summarizeAll(accounts []models.Account) []dto.AccountSummary {
	summaries := make([]dto.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		summaries = append(summaries, dto.Summarize(a))
	}
	return summaries
}
