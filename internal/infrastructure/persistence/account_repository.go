package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifestream/backend/internal/domain/identity"
	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/infrastructure/persistence/models"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Create creates a new account
func (r *GormAccountRepository) Create(ctx context.Context, account *identity.Account) error {
	model, err := r.toModel(account)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
		}
		return err
	}
	return nil
}

// Update updates an existing account
func (r *GormAccountRepository) Update(ctx context.Context, account *identity.Account) error {
	model, err := r.toModel(account)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an account by ID
func (r *GormAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an account by ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&model)
}

// FindByEmail finds an account by email
func (r *GormAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	if email == "" {
		return nil, shared.ErrNotFound
	}
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&model)
}

// ExistsByEmail checks if an email already exists
func (r *GormAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of accounts
func (r *GormAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// toModel converts a domain account, JSON-encoding the histories
func (r *GormAccountRepository) toModel(account *identity.Account) (*models.AccountModel, error) {
	donations, err := json.Marshal(account.DonationHistory)
	if err != nil {
		return nil, err
	}
	requests, err := json.Marshal(account.RequestHistory)
	if err != nil {
		return nil, err
	}
	model := &models.AccountModel{}
	model.FromDomain(account, string(donations), string(requests))
	return model, nil
}

// toDomain converts a persistence model, decoding the histories
func (r *GormAccountRepository) toDomain(model *models.AccountModel) (*identity.Account, error) {
	account := model.ToDomain()
	if model.DonationHistory != "" {
		if err := json.Unmarshal([]byte(model.DonationHistory), &account.DonationHistory); err != nil {
			return nil, err
		}
	}
	if model.RequestHistory != "" {
		if err := json.Unmarshal([]byte(model.RequestHistory), &account.RequestHistory); err != nil {
			return nil, err
		}
	}
	return account, nil
}

// isDuplicateKey reports whether err is a unique constraint violation
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// Ensure GormAccountRepository implements AccountRepository
var _ identity.AccountRepository = (*GormAccountRepository)(nil)
