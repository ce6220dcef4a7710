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

// ProfileHandler handles profile and mentor directory endpoints
type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase *usecases.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// Get returns the caller's profile
// GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.profileUsecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Update applies a partial update to the caller's profile
// PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.profileUsecase.Update(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// ListMentors returns the mentor directory
// GET /api/v1/mentors?search=
func (h *ProfileHandler) ListMentors(c *gin.Context) {
	mentors, err := h.profileUsecase.ListMentors(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	// directory cards never include contact details
	cards := make([]gin.H, 0, len(mentors))
	for _, m := range mentors {
		cards = append(cards, gin.H{
			"id":        m.ID,
			"name":      m.Name,
			"title":     m.Title,
			"bio":       m.Bio,
			"expertise": m.Expertise,
		})
	}

	response.Success(c, http.StatusOK, gin.H{"mentors": cards})
}

// GetMentor returns a mentor profile with viewer-filtered contact info
// GET /api/v1/mentors/:id
func (h *ProfileHandler) GetMentor(c *gin.Context) {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	mentorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid mentor id"))
		return
	}

	mentor, contact, err := h.profileUsecase.GetMentor(c.Request.Context(), mentorID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":        mentor.ID,
		"name":      mentor.Name,
		"title":     mentor.Title,
		"bio":       mentor.Bio,
		"expertise": mentor.Expertise,
		"contact":   contact,
	})
}

// GetMentorContact returns only the viewer-filtered contact block
// GET /api/v1/mentors/:id/contact
func (h *ProfileHandler) GetMentorContact(c *gin.Context) {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	mentorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid mentor id"))
		return
	}

	_, contact, err := h.profileUsecase.GetMentor(c.Request.Context(), mentorID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"contact": contact})
}
