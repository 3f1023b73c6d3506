package donation

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/domain/donation"
)

// DateNeededLayout is the wire format for the date a request is needed by
const DateNeededLayout = "2006-01-02"

// CreateRequestInput contains input for creating a blood request
type CreateRequestInput struct {
	BloodGroup    string
	Units         int
	Urgency       string
	Location      string
	DateNeeded    string
	ContactNumber string
	Description   string
}

// RequestResponse contains blood request data returned to callers
type RequestResponse struct {
	ID            uuid.UUID  `json:"id"`
	RecipientID   uuid.UUID  `json:"recipient_id"`
	DonorID       *uuid.UUID `json:"donor_id,omitempty"`
	BloodGroup    string     `json:"blood_group"`
	Units         int        `json:"units"`
	Urgency       string     `json:"urgency"`
	Location      string     `json:"location"`
	DateNeeded    string     `json:"date_needed"`
	ContactNumber string     `json:"contact_number"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	FulfilledAt   *time.Time `json:"fulfilled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToRequestResponse converts a BloodRequest aggregate to RequestResponse
func ToRequestResponse(request *donation.BloodRequest) RequestResponse {
	return RequestResponse{
		ID:            request.ID,
		RecipientID:   request.RecipientID,
		DonorID:       request.DonorID,
		BloodGroup:    request.BloodGroup.String(),
		Units:         request.Units,
		Urgency:       request.Urgency.String(),
		Location:      request.Location,
		DateNeeded:    request.DateNeeded.Format(DateNeededLayout),
		ContactNumber: request.ContactNumber,
		Description:   request.Description,
		Status:        request.Status.String(),
		FulfilledAt:   request.FulfilledAt,
		CreatedAt:     request.CreatedAt,
		UpdatedAt:     request.UpdatedAt,
	}
}

// ToRequestResponses converts a slice of BloodRequests
func ToRequestResponses(requests []*donation.BloodRequest) []RequestResponse {
	responses := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToRequestResponse(r))
	}
	return responses
}
