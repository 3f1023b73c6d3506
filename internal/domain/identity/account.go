package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// AccountRole represents the role of an account
type AccountRole string

const (
	RoleDonor     AccountRole = "donor"     // Can fulfill pending blood requests
	RoleRecipient AccountRole = "recipient" // Can create and cancel own requests
	RoleAdmin     AccountRole = "admin"     // Full visibility, can cancel any request
)

// Password cost for bcrypt
const bcryptCost = 12

// IsValid checks if the role is valid
func (r AccountRole) IsValid() bool {
	switch r {
	case RoleDonor, RoleRecipient, RoleAdmin:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r AccountRole) String() string {
	return string(r)
}

// CanToggle returns true if the role participates in the donor/recipient toggle
func (r AccountRole) CanToggle() bool {
	return r == RoleDonor || r == RoleRecipient
}

// DonationRecord is one completed donation in an account's history
type DonationRecord struct {
	RequestID uuid.UUID `json:"request_id"`
	Date      time.Time `json:"date"`
}

// RequestRecord is one blood request created by a recipient account
type RequestRecord struct {
	RequestID uuid.UUID `json:"request_id"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
}

// Account represents a registered participant (donor, recipient, or admin).
// It is the aggregate root for identity operations.
type Account struct {
	shared.BaseAggregateRoot
	Name            string
	Email           string
	PasswordHash    string
	Role            AccountRole
	BloodGroup      valueobject.BloodGroup
	Location        string
	Contact         string
	DonationHistory []DonationRecord
	RequestHistory  []RequestRecord
}

// NewAccount creates a new account with required fields.
// Email is normalized to lowercase; uniqueness is enforced by the repository.
func NewAccount(name, email, password string, role AccountRole, bloodGroup valueobject.BloodGroup, location, contact string) (*Account, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be donor, recipient, or admin")
	}
	if !bloodGroup.IsValid() {
		return nil, shared.NewDomainError("INVALID_BLOOD_GROUP", "Blood group must be one of the eight ABO/Rh values")
	}
	if err := validateLocation(location); err != nil {
		return nil, err
	}
	if err := validateContact(contact); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	account := &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		Role:              role,
		BloodGroup:        bloodGroup,
		Location:          strings.TrimSpace(location),
		Contact:           strings.TrimSpace(contact),
		DonationHistory:   make([]DonationRecord, 0),
		RequestHistory:    make([]RequestRecord, 0),
	}

	account.AddDomainEvent(NewAccountRegisteredEvent(account))

	return account, nil
}

// SetName sets the account's display name
func (a *Account) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	a.Name = strings.TrimSpace(name)
	a.Touch()
	a.IncrementVersion()

	return nil
}

// SetLocation sets the account's location
func (a *Account) SetLocation(location string) error {
	if err := validateLocation(location); err != nil {
		return err
	}

	a.Location = strings.TrimSpace(location)
	a.Touch()
	a.IncrementVersion()

	return nil
}

// SetContact sets the account's contact number
func (a *Account) SetContact(contact string) error {
	if err := validateContact(contact); err != nil {
		return err
	}

	a.Contact = strings.TrimSpace(contact)
	a.Touch()
	a.IncrementVersion()

	return nil
}

// SetBloodGroup sets the account's blood group
func (a *Account) SetBloodGroup(bloodGroup valueobject.BloodGroup) error {
	if !bloodGroup.IsValid() {
		return shared.NewDomainError("INVALID_BLOOD_GROUP", "Blood group must be one of the eight ABO/Rh values")
	}

	a.BloodGroup = bloodGroup
	a.Touch()
	a.IncrementVersion()

	return nil
}

// SetPassword sets a new password
func (a *Account) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	a.PasswordHash = passwordHash
	a.Touch()
	a.IncrementVersion()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (a *Account) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}

// ToggleRole switches the account between donor and recipient.
// Admin accounts cannot toggle.
func (a *Account) ToggleRole() error {
	if !a.Role.CanToggle() {
		return shared.NewDomainError("ROLE_NOT_TOGGLABLE", "Only donor and recipient roles can be toggled")
	}

	oldRole := a.Role
	if a.Role == RoleDonor {
		a.Role = RoleRecipient
	} else {
		a.Role = RoleDonor
	}
	a.Touch()
	a.IncrementVersion()

	a.AddDomainEvent(NewAccountRoleToggledEvent(a, oldRole, a.Role))

	return nil
}

// RecordDonation appends a completed donation to the account's history
func (a *Account) RecordDonation(requestID uuid.UUID) error {
	if requestID == uuid.Nil {
		return shared.NewDomainError("INVALID_REQUEST_ID", "Request ID cannot be empty")
	}

	a.DonationHistory = append(a.DonationHistory, DonationRecord{
		RequestID: requestID,
		Date:      time.Now(),
	})
	a.Touch()
	a.IncrementVersion()

	a.AddDomainEvent(NewDonationRecordedEvent(a, requestID))

	return nil
}

// RecordRequest appends a created blood request to the account's history
func (a *Account) RecordRequest(requestID uuid.UUID, status string) error {
	if requestID == uuid.Nil {
		return shared.NewDomainError("INVALID_REQUEST_ID", "Request ID cannot be empty")
	}

	a.RequestHistory = append(a.RequestHistory, RequestRecord{
		RequestID: requestID,
		Status:    status,
		Date:      time.Now(),
	})
	a.Touch()
	a.IncrementVersion()

	return nil
}

// IsDonor returns true if the account is a donor
func (a *Account) IsDonor() bool {
	return a.Role == RoleDonor
}

// IsRecipient returns true if the account is a recipient
func (a *Account) IsRecipient() bool {
	return a.Role == RoleRecipient
}

// IsAdmin returns true if the account is an admin
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Validation functions

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func validateLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return shared.NewDomainError("INVALID_LOCATION", "Location cannot be empty")
	}
	if len(location) > 200 {
		return shared.NewDomainError("INVALID_LOCATION", "Location cannot exceed 200 characters")
	}
	return nil
}

func validateContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return shared.NewDomainError("INVALID_CONTACT", "Contact cannot be empty")
	}
	if len(contact) > 50 {
		return shared.NewDomainError("INVALID_CONTACT", "Contact cannot exceed 50 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
