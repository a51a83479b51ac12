package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"call-quality-backend/internal/pipeline"
	"call-quality-backend/internal/repository"
)

// PipelineHandler exposes the pipeline's processing state for operators
type PipelineHandler struct {
	calls   repository.CallRepositoryInterface
	metrics *pipeline.Metrics
}

// NewPipelineHandler creates a new pipeline status handler
func NewPipelineHandler(calls repository.CallRepositoryInterface, metrics *pipeline.Metrics) *PipelineHandler {
	return &PipelineHandler{
		calls:   calls,
		metrics: metrics,
	}
}

// StatusResponse reports per-stage pending/done counts and driver counters
type StatusResponse struct {
	Timestamp time.Time                  `json:"timestamp"`
	Stages    *repository.PipelineCounts `json:"stages"`
	Drivers   pipeline.MetricsSnapshot   `json:"drivers"`
}

// Status handles GET /pipeline/status
func (h *PipelineHandler) Status(c *gin.Context) {
	counts, err := h.calls.Counts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to count pipeline records"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Timestamp: time.Now(),
		Stages:    counts,
		Drivers:   h.metrics.Snapshot(),
	})
}
