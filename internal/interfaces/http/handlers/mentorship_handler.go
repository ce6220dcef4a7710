package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/interfaces/http/middleware"
	"scholars-connect.backend/internal/interfaces/http/response"
	"scholars-connect.backend/internal/usecases"
)

// MentorshipHandler handles the mentorship request lifecycle
type MentorshipHandler struct {
	mentorshipUsecase *usecases.MentorshipUsecase
}

// NewMentorshipHandler creates a new mentorship handler
func NewMentorshipHandler(mentorshipUsecase *usecases.MentorshipUsecase) *MentorshipHandler {
	return &MentorshipHandler{mentorshipUsecase: mentorshipUsecase}
}

// CreateRequest sends a mentorship request to a mentor
// POST /api/v1/mentorship/request/:mentorId
func (h *MentorshipHandler) CreateRequest(c *gin.Context) {
	menteeID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	mentorID, err := uuid.Parse(c.Param("mentorId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid mentor id"))
		return
	}

	var input entities.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.mentorshipUsecase.CreateRequest(c.Request.Context(), menteeID, mentorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, req)
}

// ListIncoming returns requests addressed to the caller
// GET /api/v1/mentorship/requests
func (h *MentorshipHandler) ListIncoming(c *gin.Context) {
	mentorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	reqs, err := h.mentorshipUsecase.ListIncoming(c.Request.Context(), mentorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": reqs})
}

// ListOutgoing returns requests the caller has sent
// GET /api/v1/mentorship/my-requests
func (h *MentorshipHandler) ListOutgoing(c *gin.Context) {
	menteeID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	reqs, err := h.mentorshipUsecase.ListOutgoing(c.Request.Context(), menteeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": reqs})
}

// Accept accepts a pending request addressed to the caller
// PUT /api/v1/mentorship/request/:id/accept
func (h *MentorshipHandler) Accept(c *gin.Context) {
	mentorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	req, err := h.mentorshipUsecase.Accept(c.Request.Context(), requestID, mentorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, req)
}

// Reject declines a pending request addressed to the caller
// PUT /api/v1/mentorship/request/:id/reject
func (h *MentorshipHandler) Reject(c *gin.Context) {
	mentorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	req, err := h.mentorshipUsecase.Reject(c.Request.Context(), requestID, mentorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, req)
}
