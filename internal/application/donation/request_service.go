package donation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lifestream/backend/internal/domain/donation"
	"github.com/lifestream/backend/internal/domain/identity"
	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// RequestService handles blood request business operations
type RequestService struct {
	requestRepo donation.BloodRequestRepository
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewRequestService creates a new RequestService
func NewRequestService(
	requestRepo donation.BloodRequestRepository,
	accountRepo identity.AccountRepository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Create creates a new blood request for the calling recipient
func (s *RequestService) Create(ctx context.Context, callerID uuid.UUID, input CreateRequestInput) (*RequestResponse, error) {
	caller, err := s.accountRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	if !caller.IsRecipient() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only recipients can create blood requests")
	}

	bloodGroup, err := valueobject.ParseBloodGroup(input.BloodGroup)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_BLOOD_GROUP", "Blood group must be one of the eight ABO/Rh values")
	}

	dateNeeded, err := time.Parse(DateNeededLayout, input.DateNeeded)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE_NEEDED", "Date needed must be a calendar date in YYYY-MM-DD format")
	}

	request, err := donation.NewBloodRequest(donation.NewBloodRequestParams{
		RecipientID:   callerID,
		BloodGroup:    bloodGroup,
		Units:         input.Units,
		Urgency:       donation.Urgency(input.Urgency),
		Location:      input.Location,
		DateNeeded:    dateNeeded,
		ContactNumber: input.ContactNumber,
		Description:   input.Description,
	})
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		s.logger.Error("Failed to create blood request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create blood request")
	}

	// Best effort history append; the request itself is already persisted
	if err := caller.RecordRequest(request.ID, request.Status.String()); err == nil {
		if err := s.accountRepo.Update(ctx, caller); err != nil {
			s.logger.Warn("Failed to append request history",
				zap.String("account_id", callerID.String()),
				zap.String("request_id", request.ID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("Blood request created",
		zap.String("request_id", request.ID.String()),
		zap.String("recipient_id", callerID.String()),
		zap.String("blood_group", request.BloodGroup.String()),
		zap.String("urgency", request.Urgency.String()))

	response := ToRequestResponse(request)
	return &response, nil
}

// Fulfill marks a pending request as fulfilled by the calling donor.
// Eligibility is checked in a fixed order so every failure mode reports
// its own error: request exists, caller is a donor, request not fulfilled,
// not cancelled, blood group matches, location matches.
func (s *RequestService) Fulfill(ctx context.Context, callerID, requestID uuid.UUID) (*RequestResponse, error) {
	caller, err := s.accountRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Blood request not found")
	}

	if !caller.IsDonor() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only donors can fulfill blood requests")
	}

	if err := request.Fulfill(callerID, caller.BloodGroup, caller.Location); err != nil {
		return nil, err
	}

	if err := s.requestRepo.SaveFulfillment(ctx, request); err != nil {
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			// Another transition won the race; refetch for the precise cause
			return nil, s.conflictError(ctx, requestID)
		}
		s.logger.Error("Failed to persist fulfillment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fulfill blood request")
	}

	// Phase two: append donation history. The request stays fulfilled even
	// if this write fails; the gap is logged for reconciliation.
	if err := caller.RecordDonation(requestID); err == nil {
		if err := s.accountRepo.Update(ctx, caller); err != nil {
			s.logger.Warn("Fulfilled request without donation history entry",
				zap.String("donor_id", callerID.String()),
				zap.String("request_id", requestID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("Blood request fulfilled",
		zap.String("request_id", requestID.String()),
		zap.String("donor_id", callerID.String()))

	response := ToRequestResponse(request)
	return &response, nil
}

// Cancel withdraws a pending request. Allowed for the owning recipient
// and for admins.
func (s *RequestService) Cancel(ctx context.Context, callerID, requestID uuid.UUID) (*RequestResponse, error) {
	caller, err := s.accountRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Blood request not found")
	}

	if !caller.IsAdmin() && !request.IsOwnedBy(callerID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the requesting recipient or an admin can cancel this request")
	}

	if err := request.Cancel(); err != nil {
		return nil, err
	}

	if err := s.requestRepo.SaveCancellation(ctx, request); err != nil {
		if errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, s.conflictError(ctx, requestID)
		}
		s.logger.Error("Failed to persist cancellation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to cancel blood request")
	}

	s.logger.Info("Blood request cancelled",
		zap.String("request_id", requestID.String()),
		zap.String("cancelled_by", callerID.String()))

	response := ToRequestResponse(request)
	return &response, nil
}

// List returns requests scoped by the caller's role: recipients see their
// own, donors see pending requests matching their blood group and location,
// admins see everything. An empty result is reported as not found to keep
// the original wire contract; do not copy this conflation into new call sites.
func (s *RequestService) List(ctx context.Context, callerID uuid.UUID) ([]RequestResponse, error) {
	caller, err := s.accountRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	var requests []*donation.BloodRequest
	switch {
	case caller.IsRecipient():
		requests, err = s.requestRepo.FindByRecipient(ctx, callerID)
	case caller.IsDonor():
		requests, err = s.requestRepo.FindPendingMatches(ctx, caller.BloodGroup, caller.Location)
	default:
		requests, err = s.requestRepo.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("Failed to list blood requests", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list blood requests")
	}

	if len(requests) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No blood requests found")
	}

	return ToRequestResponses(requests), nil
}

// GetByID retrieves a single request. Any authenticated account can read
// any request; role scoping applies to listings, not to point reads.
func (s *RequestService) GetByID(ctx context.Context, callerID, requestID uuid.UUID) (*RequestResponse, error) {
	if _, err := s.accountRepo.FindByID(ctx, callerID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Blood request not found")
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// DonationHistory returns the requests fulfilled by the calling donor.
// An empty history is a valid result, not an error.
func (s *RequestService) DonationHistory(ctx context.Context, callerID uuid.UUID) ([]RequestResponse, error) {
	if _, err := s.accountRepo.FindByID(ctx, callerID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	requests, err := s.requestRepo.FindFulfilledByDonor(ctx, callerID)
	if err != nil {
		s.logger.Error("Failed to load donation history", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load donation history")
	}

	return ToRequestResponses(requests), nil
}

// MyRequests returns the requests created by the caller.
// An empty list is a valid result, not an error.
func (s *RequestService) MyRequests(ctx context.Context, callerID uuid.UUID) ([]RequestResponse, error) {
	if _, err := s.accountRepo.FindByID(ctx, callerID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Account not found")
	}

	requests, err := s.requestRepo.FindByRecipient(ctx, callerID)
	if err != nil {
		s.logger.Error("Failed to load own requests", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load requests")
	}

	return ToRequestResponses(requests), nil
}

// conflictError refetches a request after a lost conditional update and
// returns the error matching its settled status
func (s *RequestService) conflictError(ctx context.Context, requestID uuid.UUID) error {
	current, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "Blood request not found")
	}

	switch current.Status {
	case donation.RequestStatusFulfilled:
		return shared.NewDomainError("ALREADY_FULFILLED", "Request is already fulfilled")
	case donation.RequestStatusCancelled:
		return shared.NewDomainError("REQUEST_CANCELLED", "Request has been cancelled")
	default:
		return shared.ErrConcurrencyConflict
	}
}
