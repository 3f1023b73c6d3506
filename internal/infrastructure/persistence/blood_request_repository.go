package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifestream/backend/internal/domain/donation"
	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
	"github.com/lifestream/backend/internal/infrastructure/persistence/models"
)

// GormBloodRequestRepository implements BloodRequestRepository using GORM
type GormBloodRequestRepository struct {
	db *gorm.DB
}

// NewGormBloodRequestRepository creates a new GormBloodRequestRepository
func NewGormBloodRequestRepository(db *gorm.DB) *GormBloodRequestRepository {
	return &GormBloodRequestRepository{db: db}
}

// Create creates a new blood request
func (r *GormBloodRequestRepository) Create(ctx context.Context, request *donation.BloodRequest) error {
	model := models.BloodRequestModelFromDomain(request)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing blood request
func (r *GormBloodRequestRepository) Update(ctx context.Context, request *donation.BloodRequest) error {
	model := models.BloodRequestModelFromDomain(request)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a blood request by ID
func (r *GormBloodRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*donation.BloodRequest, error) {
	var model models.BloodRequestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRecipient returns all requests created by a recipient, newest first
func (r *GormBloodRequestRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*donation.BloodRequest, error) {
	var requestModels []*models.BloodRequestModel
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}
	return toDomainRequests(requestModels), nil
}

// FindPendingMatches returns pending requests with an exact blood group and
// location match, oldest first
func (r *GormBloodRequestRepository) FindPendingMatches(ctx context.Context, bloodGroup valueobject.BloodGroup, location string) ([]*donation.BloodRequest, error) {
	var requestModels []*models.BloodRequestModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND blood_group = ? AND location = ?",
			donation.RequestStatusPending, bloodGroup, location).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}
	return toDomainRequests(requestModels), nil
}

// FindAll returns every blood request, newest first
func (r *GormBloodRequestRepository) FindAll(ctx context.Context) ([]*donation.BloodRequest, error) {
	var requestModels []*models.BloodRequestModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}
	return toDomainRequests(requestModels), nil
}

// FindFulfilledByDonor returns the requests fulfilled by a donor, newest first
func (r *GormBloodRequestRepository) FindFulfilledByDonor(ctx context.Context, donorID uuid.UUID) ([]*donation.BloodRequest, error) {
	var requestModels []*models.BloodRequestModel
	if err := r.db.WithContext(ctx).
		Where("donor_id = ? AND status = ?", donorID, donation.RequestStatusFulfilled).
		Order("fulfilled_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}
	return toDomainRequests(requestModels), nil
}

// SaveFulfillment persists the pending-to-fulfilled transition with a
// conditional update. Returns shared.ErrConcurrencyConflict when another
// transition already settled the request.
func (r *GormBloodRequestRepository) SaveFulfillment(ctx context.Context, request *donation.BloodRequest) error {
	result := r.db.WithContext(ctx).
		Model(&models.BloodRequestModel{}).
		Where("id = ? AND status = ?", request.ID, donation.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":       request.Status,
			"donor_id":     request.DonorID,
			"fulfilled_at": request.FulfilledAt,
			"updated_at":   request.UpdatedAt,
			"version":      request.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// SaveCancellation persists the pending-to-cancelled transition with a
// conditional update. Only the status and bookkeeping columns change.
func (r *GormBloodRequestRepository) SaveCancellation(ctx context.Context, request *donation.BloodRequest) error {
	result := r.db.WithContext(ctx).
		Model(&models.BloodRequestModel{}).
		Where("id = ? AND status = ?", request.ID, donation.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":     request.Status,
			"updated_at": request.UpdatedAt,
			"version":    request.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// toDomainRequests converts persistence models to domain aggregates
func toDomainRequests(requestModels []*models.BloodRequestModel) []*donation.BloodRequest {
	requests := make([]*donation.BloodRequest, len(requestModels))
	for i, model := range requestModels {
		requests[i] = model.ToDomain()
	}
	return requests
}

// Ensure GormBloodRequestRepository implements BloodRequestRepository
var _ donation.BloodRequestRepository = (*GormBloodRequestRepository)(nil)
