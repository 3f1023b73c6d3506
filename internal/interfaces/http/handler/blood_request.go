package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/application/donation"
	"github.com/lifestream/backend/internal/interfaces/http/dto"
	"github.com/lifestream/backend/internal/interfaces/http/middleware"
)

// CreateRequestRequest represents the blood request creation body
type CreateRequestRequest struct {
	BloodGroup    string `json:"blood_group" binding:"required,bloodgroup"`
	Units         int    `json:"units" binding:"required,min=1"`
	Urgency       string `json:"urgency" binding:"required,oneof=Critical High Medium Low"`
	Location      string `json:"location" binding:"required,max=200"`
	DateNeeded    string `json:"date_needed" binding:"required,datetime=2006-01-02"`
	ContactNumber string `json:"contact_number" binding:"required,max=50"`
	Description   string `json:"description" binding:"required,max=1000"`
}

// BloodRequestHandler handles blood request HTTP requests
type BloodRequestHandler struct {
	BaseHandler
	requestService *donation.RequestService
}

// NewBloodRequestHandler creates a new blood request handler
func NewBloodRequestHandler(requestService *donation.RequestService) *BloodRequestHandler {
	return &BloodRequestHandler{
		requestService: requestService,
	}
}

// Create creates a new blood request for the calling recipient
func (h *BloodRequestHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	response, err := h.requestService.Create(c.Request.Context(), userID, donation.CreateRequestInput{
		BloodGroup:    req.BloodGroup,
		Units:         req.Units,
		Urgency:       req.Urgency,
		Location:      req.Location,
		DateNeeded:    req.DateNeeded,
		ContactNumber: req.ContactNumber,
		Description:   req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, response)
}

// Fulfill marks a pending request as fulfilled by the calling donor
func (h *BloodRequestHandler) Fulfill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	response, err := h.requestService.Fulfill(c.Request.Context(), userID, uuid.MustParse(idReq.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// Cancel withdraws a pending request
func (h *BloodRequestHandler) Cancel(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	response, err := h.requestService.Cancel(c.Request.Context(), userID, uuid.MustParse(idReq.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}

// List returns requests scoped by the caller's role
func (h *BloodRequestHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	responses, err := h.requestService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

// History returns the requests fulfilled by the calling donor
func (h *BloodRequestHandler) History(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	responses, err := h.requestService.DonationHistory(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

// MyRequests returns the requests created by the caller
func (h *BloodRequestHandler) MyRequests(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	responses, err := h.requestService.MyRequests(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, responses)
}

// GetByID returns a single request if the caller may see it
func (h *BloodRequestHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	response, err := h.requestService.GetByID(c.Request.Context(), userID, uuid.MustParse(idReq.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, response)
}
