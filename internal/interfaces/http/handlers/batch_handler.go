package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/domain/workflow"
	"merchant-portal.backend/internal/interfaces/http/middleware"
	"merchant-portal.backend/internal/interfaces/http/response"
	"merchant-portal.backend/internal/usecases"
	"merchant-portal.backend/pkg/utils"
)

// BatchHandler handles batch checker actions
type BatchHandler struct {
	batchUsecase *usecases.BatchUsecase
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(batchUsecase *usecases.BatchUsecase) *BatchHandler {
	return &BatchHandler{batchUsecase: batchUsecase}
}

type batchActionInput struct {
	Action string   `json:"action" binding:"required"`
	IDs    []string `json:"ids" binding:"required,min=1"`
	Reason string   `json:"reason,omitempty"`
}

// Execute applies one checker action to many records
// POST /api/v1/merchants/batch
func (h *BatchHandler) Execute(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input batchActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	action, err := workflow.ParseAction(input.Action)
	if err != nil {
		response.Error(c, err)
		return
	}

	ids, err := utils.ParseUUIDs(input.IDs)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid record id in batch"))
		return
	}

	results, err := h.batchUsecase.Execute(c.Request.Context(), actor, action, ids, input.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	// the call succeeds even when individual items were skipped or failed
	response.Success(c, http.StatusOK, gin.H{
		"action":  string(action),
		"results": results,
	})
}
