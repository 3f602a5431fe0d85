package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"merchant-portal.backend/internal/interfaces/http/response"
	"merchant-portal.backend/internal/usecases"
	"merchant-portal.backend/pkg/utils"
)

// AuditHandler exposes the read side of the audit trail
type AuditHandler struct {
	auditUsecase *usecases.AuditUsecase
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditUsecase *usecases.AuditUsecase) *AuditHandler {
	return &AuditHandler{auditUsecase: auditUsecase}
}

// List returns audit events, optionally filtered by entity name
// GET /api/v1/audit-logs?entity=merchant_record
func (h *AuditHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	p := utils.GetPaginationParams(page, limit)

	events, total, err := h.auditUsecase.List(c.Request.Context(), c.Query("entity"), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, events, utils.CalculateMeta(total, p.Page, p.Limit))
}
