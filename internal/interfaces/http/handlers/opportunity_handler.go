package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scholars-connect.backend/internal/domain/entities"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/internal/interfaces/http/middleware"
	"scholars-connect.backend/internal/interfaces/http/response"
	"scholars-connect.backend/internal/usecases"
	"scholars-connect.backend/pkg/utils"
)

// OpportunityHandler handles opportunity catalog endpoints
type OpportunityHandler struct {
	opportunityUsecase *usecases.OpportunityUsecase
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(opportunityUsecase *usecases.OpportunityUsecase) *OpportunityHandler {
	return &OpportunityHandler{opportunityUsecase: opportunityUsecase}
}

// Create posts a new opportunity
// POST /api/v1/opportunities
func (h *OpportunityHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateOpportunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	opp, err := h.opportunityUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, opp)
}

// List returns the catalog page matching the query filters
// GET /api/v1/opportunities?title=&open=&deadline_after=&page=&limit=
func (h *OpportunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	search := entities.OpportunitySearch{
		Title:    c.Query("title"),
		OnlyOpen: c.Query("open") == "true",
	}
	if raw := c.Query("deadline_after"); raw != "" {
		after, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("deadline_after must be RFC 3339"))
			return
		}
		search.DeadlineAfter = &after
	}

	opps, total, err := h.opportunityUsecase.List(c.Request.Context(), search, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"opportunities": opps,
		"meta":          utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// ListMine returns the caller's own postings
// GET /api/v1/opportunities/mine
func (h *OpportunityHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	opps, err := h.opportunityUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"opportunities": opps})
}

// Get returns a single opportunity
// GET /api/v1/opportunities/:id
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid opportunity id"))
		return
	}

	opp, err := h.opportunityUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, opp)
}

// Update edits one of the caller's postings
// PUT /api/v1/opportunities/:id
func (h *OpportunityHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid opportunity id"))
		return
	}

	var input entities.UpdateOpportunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	opp, err := h.opportunityUsecase.Update(c.Request.Context(), id, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, opp)
}

// Delete removes one of the caller's postings
// DELETE /api/v1/opportunities/:id
func (h *OpportunityHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid opportunity id"))
		return
	}

	if err := h.opportunityUsecase.Delete(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "opportunity deleted"})
}
