package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/domain/identity"
)

// RegisterInput contains input for account registration
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	BloodGroup string
	Location   string
	Contact    string
}

// LoginInput contains input for login
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput contains input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput contains input for logout
type LogoutInput struct {
	UserID       uuid.UUID
	AccessJTI    string
	AccessTTL    time.Duration
	RefreshToken string
}

// UpdateAccountInput contains input for profile updates.
// Nil fields are left unchanged.
type UpdateAccountInput struct {
	Name       *string
	Location   *string
	Contact    *string
	BloodGroup *string
	Password   *string
}

// DonationRecordInfo is one donation history entry
type DonationRecordInfo struct {
	RequestID uuid.UUID `json:"request_id"`
	Date      time.Time `json:"date"`
}

// RequestRecordInfo is one request history entry
type RequestRecordInfo struct {
	RequestID uuid.UUID `json:"request_id"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
}

// AccountInfo contains public account information
type AccountInfo struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Role            string               `json:"role"`
	BloodGroup      string               `json:"blood_group"`
	Location        string               `json:"location"`
	Contact         string               `json:"contact"`
	DonationHistory []DonationRecordInfo `json:"donation_history"`
	RequestHistory  []RequestRecordInfo  `json:"request_history"`
	CreatedAt       time.Time            `json:"created_at"`
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string      `json:"access_token"`
	RefreshToken          string      `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time   `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time   `json:"refresh_token_expires_at"`
	TokenType             string      `json:"token_type"`
	Account               AccountInfo `json:"account"`
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// ToAccountInfo converts an Account aggregate to AccountInfo
func ToAccountInfo(account *identity.Account) AccountInfo {
	donations := make([]DonationRecordInfo, 0, len(account.DonationHistory))
	for _, d := range account.DonationHistory {
		donations = append(donations, DonationRecordInfo{RequestID: d.RequestID, Date: d.Date})
	}

	requests := make([]RequestRecordInfo, 0, len(account.RequestHistory))
	for _, r := range account.RequestHistory {
		requests = append(requests, RequestRecordInfo{RequestID: r.RequestID, Status: r.Status, Date: r.Date})
	}

	return AccountInfo{
		ID:              account.ID,
		Name:            account.Name,
		Email:           account.Email,
		Role:            account.Role.String(),
		BloodGroup:      account.BloodGroup.String(),
		Location:        account.Location,
		Contact:         account.Contact,
		DonationHistory: donations,
		RequestHistory:  requests,
		CreatedAt:       account.CreatedAt,
	}
}
