package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/interfaces/http/middleware"
	"merchant-portal.backend/internal/interfaces/http/response"
	"merchant-portal.backend/internal/usecases"
	"merchant-portal.backend/pkg/utils"
)

// DFSPHandler handles DFSP management endpoints
type DFSPHandler struct {
	dfspUsecase *usecases.DFSPUsecase
}

// NewDFSPHandler creates a new DFSP handler
func NewDFSPHandler(dfspUsecase *usecases.DFSPUsecase) *DFSPHandler {
	return &DFSPHandler{dfspUsecase: dfspUsecase}
}

// Create registers a new DFSP
// POST /api/v1/dfsps
func (h *DFSPHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.DFSPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dfsp, err := h.dfspUsecase.Create(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, dfsp)
}

// Get returns one DFSP
// GET /api/v1/dfsps/:id
func (h *DFSPHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid dfsp id"))
		return
	}

	dfsp, err := h.dfspUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dfsp)
}

// Update patches one DFSP
// PUT /api/v1/dfsps/:id
func (h *DFSPHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid dfsp id"))
		return
	}

	var input entities.DFSPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dfsp, err := h.dfspUsecase.Update(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dfsp)
}

// List returns DFSPs with pagination
// GET /api/v1/dfsps
func (h *DFSPHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	p := utils.GetPaginationParams(page, limit)

	items, total, err := h.dfspUsecase.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, utils.CalculateMeta(total, p.Page, p.Limit))
}
