package identity

import (
	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/domain/shared"
)

// Aggregate type constant for Account
const AggregateTypeAccount = "Account"

// Account domain event types
const (
	EventTypeAccountRegistered  = "AccountRegistered"
	EventTypeAccountRoleToggled = "AccountRoleToggled"
	EventTypeDonationRecorded   = "DonationRecorded"
)

// AccountRegisteredEvent is published when an account is registered
type AccountRegisteredEvent struct {
	shared.BaseDomainEvent
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       AccountRole `json:"role"`
	BloodGroup string      `json:"blood_group"`
}

// NewAccountRegisteredEvent creates a new AccountRegisteredEvent
func NewAccountRegisteredEvent(account *Account) *AccountRegisteredEvent {
	return &AccountRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountRegistered, AggregateTypeAccount, account.ID),
		Name:            account.Name,
		Email:           account.Email,
		Role:            account.Role,
		BloodGroup:      account.BloodGroup.String(),
	}
}

// AccountRoleToggledEvent is published when an account toggles between donor and recipient
type AccountRoleToggledEvent struct {
	shared.BaseDomainEvent
	Email   string      `json:"email"`
	OldRole AccountRole `json:"old_role"`
	NewRole AccountRole `json:"new_role"`
}

// NewAccountRoleToggledEvent creates a new AccountRoleToggledEvent
func NewAccountRoleToggledEvent(account *Account, oldRole, newRole AccountRole) *AccountRoleToggledEvent {
	return &AccountRoleToggledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountRoleToggled, AggregateTypeAccount, account.ID),
		Email:           account.Email,
		OldRole:         oldRole,
		NewRole:         newRole,
	}
}

// DonationRecordedEvent is published when a donation is added to an account's history
type DonationRecordedEvent struct {
	shared.BaseDomainEvent
	Email     string    `json:"email"`
	RequestID uuid.UUID `json:"request_id"`
}

// NewDonationRecordedEvent creates a new DonationRecordedEvent
func NewDonationRecordedEvent(account *Account, requestID uuid.UUID) *DonationRecordedEvent {
	return &DonationRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDonationRecorded, AggregateTypeAccount, account.ID),
		Email:           account.Email,
		RequestID:       requestID,
	}
}
