package donation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// RequestStatus represents the status of a blood request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"   // Open, waiting for a donor
	RequestStatusFulfilled RequestStatus = "fulfilled" // A donor has fulfilled the request
	RequestStatusCancelled RequestStatus = "cancelled" // Withdrawn by recipient or admin
)

// IsValid checks if the status is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusFulfilled, RequestStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s RequestStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no further transitions are allowed from this status
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusFulfilled || s == RequestStatusCancelled
}

// CanTransitionTo checks if transition to target status is allowed.
// The lifecycle is monotonic: pending is the only non-terminal state.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	if s != RequestStatusPending {
		return false
	}
	return target == RequestStatusFulfilled || target == RequestStatusCancelled
}

// Urgency represents the urgency level of a blood request
type Urgency string

const (
	UrgencyCritical Urgency = "Critical"
	UrgencyHigh     Urgency = "High"
	UrgencyMedium   Urgency = "Medium"
	UrgencyLow      Urgency = "Low"
)

// IsValid checks if the urgency is valid
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// String returns the string representation of the urgency
func (u Urgency) String() string {
	return string(u)
}

// BloodRequest represents a request for blood donation.
// It is the aggregate root for the request lifecycle.
type BloodRequest struct {
	shared.BaseAggregateRoot
	RecipientID   uuid.UUID
	BloodGroup    valueobject.BloodGroup
	Units         int
	Urgency       Urgency
	Location      string
	DateNeeded    time.Time
	ContactNumber string
	Description   string
	Status        RequestStatus
	DonorID       *uuid.UUID // Set exactly once, on fulfillment
	FulfilledAt   *time.Time
}

// NewBloodRequestParams holds the attributes needed to open a request
type NewBloodRequestParams struct {
	RecipientID   uuid.UUID
	BloodGroup    valueobject.BloodGroup
	Units         int
	Urgency       Urgency
	Location      string
	DateNeeded    time.Time
	ContactNumber string
	Description   string
}

// NewBloodRequest creates a new pending blood request for a recipient
func NewBloodRequest(p NewBloodRequestParams) (*BloodRequest, error) {
	if p.RecipientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT_ID", "Recipient ID cannot be empty")
	}
	if !p.BloodGroup.IsValid() {
		return nil, shared.NewDomainError("INVALID_BLOOD_GROUP", "Blood group must be one of the eight ABO/Rh values")
	}
	if p.Units < 1 {
		return nil, shared.NewDomainError("INVALID_UNITS", "Units must be at least 1")
	}
	if !p.Urgency.IsValid() {
		return nil, shared.NewDomainError("INVALID_URGENCY", "Urgency must be Critical, High, Medium, or Low")
	}
	location := strings.TrimSpace(p.Location)
	if location == "" {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location cannot be empty")
	}
	if len(location) > 200 {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location cannot exceed 200 characters")
	}
	if p.DateNeeded.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE_NEEDED", "Date needed cannot be empty")
	}
	contactNumber := strings.TrimSpace(p.ContactNumber)
	if contactNumber == "" {
		return nil, shared.NewDomainError("INVALID_CONTACT_NUMBER", "Contact number cannot be empty")
	}
	if len(contactNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_CONTACT_NUMBER", "Contact number cannot exceed 50 characters")
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if len(description) > 1000 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}

	request := &BloodRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RecipientID:       p.RecipientID,
		BloodGroup:        p.BloodGroup,
		Units:             p.Units,
		Urgency:           p.Urgency,
		Location:          location,
		DateNeeded:        p.DateNeeded,
		ContactNumber:     contactNumber,
		Description:       description,
		Status:            RequestStatusPending,
	}

	request.AddDomainEvent(NewBloodRequestCreatedEvent(request))

	return request, nil
}

// Fulfill marks the request as fulfilled by the given donor.
// Checks run in a fixed order so each failure reports its own cause:
// terminal status first, then blood group, then location.
func (r *BloodRequest) Fulfill(donorID uuid.UUID, donorBloodGroup valueobject.BloodGroup, donorLocation string) error {
	if r.Status == RequestStatusFulfilled {
		return shared.NewDomainError("ALREADY_FULFILLED", "Request is already fulfilled")
	}
	if r.Status == RequestStatusCancelled {
		return shared.NewDomainError("REQUEST_CANCELLED", "Request has been cancelled")
	}
	if !donorBloodGroup.Equals(r.BloodGroup) {
		return shared.NewDomainError("BLOOD_GROUP_MISMATCH", "Donor blood group does not match the request")
	}
	if donorLocation != r.Location {
		return shared.NewDomainError("LOCATION_MISMATCH", "Donor location does not match the request")
	}

	now := time.Now()
	r.Status = RequestStatusFulfilled
	r.DonorID = &donorID
	r.FulfilledAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewBloodRequestFulfilledEvent(r, donorID))

	return nil
}

// Cancel withdraws the request. Only the status changes; donor and
// fulfillment fields stay untouched.
func (r *BloodRequest) Cancel() error {
	if r.Status == RequestStatusFulfilled {
		return shared.NewDomainError("ALREADY_FULFILLED", "Request is already fulfilled")
	}
	if r.Status == RequestStatusCancelled {
		return shared.NewDomainError("ALREADY_CANCELLED", "Request is already cancelled")
	}

	r.Status = RequestStatusCancelled
	r.Touch()
	r.IncrementVersion()

	r.AddDomainEvent(NewBloodRequestCancelledEvent(r))

	return nil
}

// IsPending returns true if the request is still open
func (r *BloodRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsFulfilled returns true if the request has been fulfilled
func (r *BloodRequest) IsFulfilled() bool {
	return r.Status == RequestStatusFulfilled
}

// IsCancelled returns true if the request has been cancelled
func (r *BloodRequest) IsCancelled() bool {
	return r.Status == RequestStatusCancelled
}

// IsOwnedBy returns true if the request was created by the given account
func (r *BloodRequest) IsOwnedBy(accountID uuid.UUID) bool {
	return r.RecipientID == accountID
}

// Matches returns true if a donor with the given blood group and location
// is eligible for this request. Both comparisons are exact equality.
func (r *BloodRequest) Matches(bloodGroup valueobject.BloodGroup, location string) bool {
	return r.BloodGroup.Equals(bloodGroup) && r.Location == location
}
