package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/repository"
)

// CallsHandler serves the read-only call browsing endpoints
type CallsHandler struct {
	calls    repository.CallRepositoryInterface
	analyses repository.AnalysisRepositoryInterface
}

// NewCallsHandler creates a new calls handler
func NewCallsHandler(calls repository.CallRepositoryInterface, analyses repository.AnalysisRepositoryInterface) *CallsHandler {
	return &CallsHandler{
		calls:    calls,
		analyses: analyses,
	}
}

// CallListResponse is a page of call records
type CallListResponse struct {
	Calls    []models.CallRecord `json:"calls"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// CallDetailResponse joins one call with everything the pipeline produced for
// it. Analysis, evaluation and commentary are nil while their stages are
// still pending.
type CallDetailResponse struct {
	Call       *models.CallRecord   `json:"call"`
	Analysis   *models.CallAnalysis `json:"analysis,omitempty"`
	Evaluation *models.Evaluation   `json:"evaluation,omitempty"`
	Commentary *models.Commentary   `json:"commentary,omitempty"`
}

// ListCalls handles GET /calls
func (h *CallsHandler) ListCalls(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 50
	}

	calls, total, err := h.calls.List(pageSize, (page-1)*pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list calls"})
		return
	}

	c.JSON(http.StatusOK, CallListResponse{
		Calls:    calls,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetCall handles GET /calls/:call_id
func (h *CallsHandler) GetCall(c *gin.Context) {
	callID := c.Param("call_id")

	call, err := h.calls.GetByCallID(callID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "call not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load call"})
		return
	}

	response := CallDetailResponse{Call: call}

	if analysis, err := h.analyses.GetByCallID(callID); err == nil {
		response.Analysis = analysis
	} else if !apperrors.IsNotFound(err) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load analysis"})
		return
	}
	if evaluation, err := h.analyses.GetEvaluation(callID); err == nil {
		response.Evaluation = evaluation
	} else if !apperrors.IsNotFound(err) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load evaluation"})
		return
	}
	if commentary, err := h.analyses.GetCommentary(callID); err == nil {
		response.Commentary = commentary
	} else if !apperrors.IsNotFound(err) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load commentary"})
		return
	}

	c.JSON(http.StatusOK, response)
}
