package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lifestream/backend/internal/domain/identity"
	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// AccountService handles account profile operations
type AccountService struct {
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo identity.AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Profile retrieves the caller's own account
func (s *AccountService) Profile(ctx context.Context, accountID uuid.UUID) (*AccountInfo, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	info := ToAccountInfo(account)
	return &info, nil
}

// Update modifies an account's profile fields.
// Callers may only update their own account unless they are an admin.
func (s *AccountService) Update(ctx context.Context, callerID, targetID uuid.UUID, callerRole string, input UpdateAccountInput) (*AccountInfo, error) {
	if callerID != targetID && callerRole != identity.RoleAdmin.String() {
		return nil, shared.NewDomainError("FORBIDDEN", "You can only update your own account")
	}

	account, err := s.accountRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	if input.Name != nil {
		if err := account.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Location != nil {
		if err := account.SetLocation(*input.Location); err != nil {
			return nil, err
		}
	}
	if input.Contact != nil {
		if err := account.SetContact(*input.Contact); err != nil {
			return nil, err
		}
	}
	if input.BloodGroup != nil {
		bloodGroup, err := valueobject.ParseBloodGroup(*input.BloodGroup)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_BLOOD_GROUP", "Blood group must be one of the eight ABO/Rh values")
		}
		if err := account.SetBloodGroup(bloodGroup); err != nil {
			return nil, err
		}
	}
	if input.Password != nil {
		if err := account.SetPassword(*input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		s.logger.Error("Failed to update account", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update account")
	}

	s.logger.Info("Account updated", zap.String("account_id", targetID.String()))

	info := ToAccountInfo(account)
	return &info, nil
}

// Delete removes an account.
// Callers may only delete their own account unless they are an admin.
func (s *AccountService) Delete(ctx context.Context, callerID, targetID uuid.UUID, callerRole string) error {
	if callerID != targetID && callerRole != identity.RoleAdmin.String() {
		return shared.NewDomainError("FORBIDDEN", "You can only delete your own account")
	}

	if _, err := s.accountRepo.FindByID(ctx, targetID); err != nil {
		return shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	if err := s.accountRepo.Delete(ctx, targetID); err != nil {
		s.logger.Error("Failed to delete account", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete account")
	}

	s.logger.Info("Account deleted", zap.String("account_id", targetID.String()))

	return nil
}

// ToggleRole switches the caller between donor and recipient
func (s *AccountService) ToggleRole(ctx context.Context, accountID uuid.UUID) (*AccountInfo, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	if err := account.ToggleRole(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		s.logger.Error("Failed to persist role toggle", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to toggle role")
	}

	s.logger.Info("Account role toggled",
		zap.String("account_id", accountID.String()),
		zap.String("new_role", account.Role.String()))

	info := ToAccountInfo(account)
	return &info, nil
}
