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

// MerchantHandler handles the registration wizard and submission endpoints
type MerchantHandler struct {
	registrationUsecase *usecases.RegistrationUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(registrationUsecase *usecases.RegistrationUsecase) *MerchantHandler {
	return &MerchantHandler{registrationUsecase: registrationUsecase}
}

type createDraftInput struct {
	DFSPID string `json:"dfspId,omitempty"`
}

// CreateDraft opens a new registration draft
// POST /api/v1/merchants
func (h *MerchantHandler) CreateDraft(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input createDraftInput
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var dfspID uuid.NullUUID
	if input.DFSPID != "" {
		parsed, err := uuid.Parse(input.DFSPID)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid dfsp id"))
			return
		}
		dfspID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	agg, err := h.registrationUsecase.CreateDraft(c.Request.Context(), actor, dfspID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, agg)
}

func (h *MerchantHandler) merchantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid merchant id"))
		return uuid.Nil, false
	}
	return id, true
}

// SaveBusinessInfo saves step 1 of the wizard
// PUT /api/v1/merchants/:id/business
func (h *MerchantHandler) SaveBusinessInfo(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	id, ok := h.merchantID(c)
	if !ok {
		return
	}

	var input entities.BusinessInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	agg, err := h.registrationUsecase.SaveBusinessInfo(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, agg)
}

// SaveLocation saves step 2 of the wizard
// PUT /api/v1/merchants/:id/location
func (h *MerchantHandler) SaveLocation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	id, ok := h.merchantID(c)
	if !ok {
		return
	}

	var input entities.LocationInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	agg, err := h.registrationUsecase.SaveLocation(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, agg)
}

// SaveOwner saves step 3 of the wizard
// PUT /api/v1/merchants/:id/owner
func (h *MerchantHandler) SaveOwner(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	id, ok := h.merchantID(c)
	if !ok {
		return
	}

	var input entities.BusinessOwnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	agg, err := h.registrationUsecase.SaveOwner(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, agg)
}

// SaveContact saves step 4 of the wizard
// PUT /api/v1/merchants/:id/contact
func (h *MerchantHandler) SaveContact(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	id, ok := h.merchantID(c)
	if !ok {
		return
	}

	var input entities.ContactPersonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	agg, err := h.registrationUsecase.SaveContact(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, agg)
}

// Submit moves a complete draft into review
// POST /api/v1/merchants/:id/submit
func (h *MerchantHandler) Submit(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}
	id, ok := h.merchantID(c)
	if !ok {
		return
	}

	record, err := h.registrationUsecase.Submit(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// Get returns the full aggregate of one registration
// GET /api/v1/merchants/:id
func (h *MerchantHandler) Get(c *gin.Context) {
	id, ok := h.merchantID(c)
	if !ok {
		return
	}

	agg, err := h.registrationUsecase.GetMerchant(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, agg)
}

// List returns registrations filtered by status
// GET /api/v1/merchants?status=review&page=1&limit=20
func (h *MerchantHandler) List(c *gin.Context) {
	var status *entities.RegistrationStatus
	if raw := c.Query("status"); raw != "" {
		s := entities.RegistrationStatus(raw)
		switch s {
		case entities.RegistrationStatusDraft, entities.RegistrationStatusReview,
			entities.RegistrationStatusApproved, entities.RegistrationStatusRejected,
			entities.RegistrationStatusReverted:
			status = &s
		default:
			response.Error(c, domainerrors.BadRequest("unknown status: "+raw))
			return
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	p := utils.GetPaginationParams(page, limit)

	records, total, err := h.registrationUsecase.ListMerchants(c.Request.Context(), status, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, records, utils.CalculateMeta(total, p.Page, p.Limit))
}
