package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/application/identity"
)

// RegisterRequest represents the registration request body.
// Admin accounts are provisioned out of band; the public endpoint only
// accepts the two togglable roles.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	Role       string `json:"role" binding:"required,oneof=donor recipient"`
	BloodGroup string `json:"blood_group" binding:"required,bloodgroup"`
	Location   string `json:"location" binding:"required,max=200"`
	Contact    string `json:"contact" binding:"required,max=50"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the token refresh request body
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the logout request body.
// The refresh token is optional; when present it is revoked as well.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// AccountResponse represents account data returned to clients
type AccountResponse struct {
	ID              uuid.UUID                     `json:"id"`
	Name            string                        `json:"name"`
	Email           string                        `json:"email"`
	Role            string                        `json:"role"`
	BloodGroup      string                        `json:"blood_group"`
	Location        string                        `json:"location"`
	Contact         string                        `json:"contact"`
	DonationHistory []identity.DonationRecordInfo `json:"donation_history"`
	RequestHistory  []identity.RequestRecordInfo  `json:"request_history"`
	CreatedAt       time.Time                     `json:"created_at"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token   TokenResponse   `json:"token"`
	Account AccountResponse `json:"account"`
}

// RefreshTokenResponse represents the token refresh response body
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

// toAccountResponse converts application-layer account info
func toAccountResponse(info identity.AccountInfo) AccountResponse {
	return AccountResponse{
		ID:              info.ID,
		Name:            info.Name,
		Email:           info.Email,
		Role:            info.Role,
		BloodGroup:      info.BloodGroup,
		Location:        info.Location,
		Contact:         info.Contact,
		DonationHistory: info.DonationHistory,
		RequestHistory:  info.RequestHistory,
		CreatedAt:       info.CreatedAt,
	}
}
