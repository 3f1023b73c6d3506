package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/application/identity"
	"github.com/lifestream/backend/internal/interfaces/http/dto"
	"github.com/lifestream/backend/internal/interfaces/http/middleware"
)

// UpdateAccountRequest represents the profile update request body.
// Omitted fields are left unchanged.
type UpdateAccountRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=100"`
	Location   *string `json:"location" binding:"omitempty,max=200"`
	Contact    *string `json:"contact" binding:"omitempty,max=50"`
	BloodGroup *string `json:"blood_group" binding:"omitempty,bloodgroup"`
	Password   *string `json:"password" binding:"omitempty,min=8,max=72"`
}

// UserHandler handles account profile HTTP requests
type UserHandler struct {
	BaseHandler
	accountService *identity.AccountService
}

// NewUserHandler creates a new user handler
func NewUserHandler(accountService *identity.AccountService) *UserHandler {
	return &UserHandler{
		accountService: accountService,
	}
}

// Profile returns the authenticated account
func (h *UserHandler) Profile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.accountService.Profile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAccountResponse(*info))
}

// Update modifies an account's profile fields
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}
	targetID := uuid.MustParse(idReq.ID)

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.accountService.Update(c.Request.Context(), userID, targetID,
		middleware.GetJWTRole(c), identity.UpdateAccountInput{
			Name:       req.Name,
			Location:   req.Location,
			Contact:    req.Contact,
			BloodGroup: req.BloodGroup,
			Password:   req.Password,
		})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAccountResponse(*info))
}

// Delete removes an account
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}
	targetID := uuid.MustParse(idReq.ID)

	if err := h.accountService.Delete(c.Request.Context(), userID, targetID, middleware.GetJWTRole(c)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Account deleted successfully"})
}

// ToggleRole switches the caller between donor and recipient.
// The new role takes effect in tokens on the next refresh or login.
func (h *UserHandler) ToggleRole(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.accountService.ToggleRole(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAccountResponse(*info))
}
