package donation

import (
	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/domain/shared"
)

// Aggregate type constant for BloodRequest
const AggregateTypeBloodRequest = "BloodRequest"

// BloodRequest domain event types
const (
	EventTypeBloodRequestCreated   = "BloodRequestCreated"
	EventTypeBloodRequestFulfilled = "BloodRequestFulfilled"
	EventTypeBloodRequestCancelled = "BloodRequestCancelled"
)

// BloodRequestCreatedEvent is published when a blood request is created
type BloodRequestCreatedEvent struct {
	shared.BaseDomainEvent
	RecipientID uuid.UUID `json:"recipient_id"`
	BloodGroup  string    `json:"blood_group"`
	Units       int       `json:"units"`
	Urgency     Urgency   `json:"urgency"`
	Location    string    `json:"location"`
}

// NewBloodRequestCreatedEvent creates a new BloodRequestCreatedEvent
func NewBloodRequestCreatedEvent(request *BloodRequest) *BloodRequestCreatedEvent {
	return &BloodRequestCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBloodRequestCreated, AggregateTypeBloodRequest, request.ID),
		RecipientID:     request.RecipientID,
		BloodGroup:      request.BloodGroup.String(),
		Units:           request.Units,
		Urgency:         request.Urgency,
		Location:        request.Location,
	}
}

// BloodRequestFulfilledEvent is published when a donor fulfills a request
type BloodRequestFulfilledEvent struct {
	shared.BaseDomainEvent
	RecipientID uuid.UUID `json:"recipient_id"`
	DonorID     uuid.UUID `json:"donor_id"`
	BloodGroup  string    `json:"blood_group"`
}

// NewBloodRequestFulfilledEvent creates a new BloodRequestFulfilledEvent
func NewBloodRequestFulfilledEvent(request *BloodRequest, donorID uuid.UUID) *BloodRequestFulfilledEvent {
	return &BloodRequestFulfilledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBloodRequestFulfilled, AggregateTypeBloodRequest, request.ID),
		RecipientID:     request.RecipientID,
		DonorID:         donorID,
		BloodGroup:      request.BloodGroup.String(),
	}
}

// BloodRequestCancelledEvent is published when a request is cancelled
type BloodRequestCancelledEvent struct {
	shared.BaseDomainEvent
	RecipientID uuid.UUID `json:"recipient_id"`
}

// NewBloodRequestCancelledEvent creates a new BloodRequestCancelledEvent
func NewBloodRequestCancelledEvent(request *BloodRequest) *BloodRequestCancelledEvent {
	return &BloodRequestCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBloodRequestCancelled, AggregateTypeBloodRequest, request.ID),
		RecipientID:     request.RecipientID,
	}
}
