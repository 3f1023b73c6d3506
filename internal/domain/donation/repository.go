package donation

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// BloodRequestRepository defines the interface for blood request persistence
type BloodRequestRepository interface {
	// Create creates a new blood request
	Create(ctx context.Context, request *BloodRequest) error

	// Update updates an existing blood request
	Update(ctx context.Context, request *BloodRequest) error

	// FindByID finds a blood request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*BloodRequest, error)

	// FindByRecipient returns all requests created by the given recipient
	FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*BloodRequest, error)

	// FindPendingMatches returns pending requests matching a donor's
	// blood group and location exactly
	FindPendingMatches(ctx context.Context, bloodGroup valueobject.BloodGroup, location string) ([]*BloodRequest, error)

	// FindAll returns all requests regardless of owner or status
	FindAll(ctx context.Context) ([]*BloodRequest, error)

	// FindFulfilledByDonor returns requests fulfilled by the given donor
	FindFulfilledByDonor(ctx context.Context, donorID uuid.UUID) ([]*BloodRequest, error)

	// SaveFulfillment persists a fulfillment transition with a conditional
	// status write. Returns shared.ErrConcurrencyConflict when the request
	// left the pending state between read and write, so two concurrent
	// fulfillments can never both succeed.
	SaveFulfillment(ctx context.Context, request *BloodRequest) error

	// SaveCancellation persists a cancellation transition with the same
	// conditional write semantics as SaveFulfillment.
	SaveCancellation(ctx context.Context, request *BloodRequest) error
}
