package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/internal/domain/repositories"
	"merchant-portal.backend/pkg/utils"
)

// DFSPUsecase handles DFSP management
type DFSPUsecase struct {
	dfspRepo repositories.DFSPRepository
	audit    repositories.AuditEmitter
}

// NewDFSPUsecase creates a new DFSP usecase
func NewDFSPUsecase(dfspRepo repositories.DFSPRepository, audit repositories.AuditEmitter) *DFSPUsecase {
	return &DFSPUsecase{dfspRepo: dfspRepo, audit: audit}
}

// Create registers a new DFSP, active from the start
func (u *DFSPUsecase) Create(ctx context.Context, actor *entities.Actor, input *entities.DFSPInput) (*entities.DFSP, error) {
	dfsp := &entities.DFSP{
		Name:        input.Name,
		FspID:       input.FspID,
		IsActive:    true,
		ActivatedAt: null.TimeFrom(time.Now()),
	}
	if input.LogoURL != "" {
		dfsp.LogoURL.SetValid(input.LogoURL)
	}

	if err := u.dfspRepo.Create(ctx, dfsp); err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     "create_dfsp",
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: "dfsp",
		EntityID:   dfsp.ID.String(),
		After:      snapshotJSON(dfsp),
	})

	return dfsp, nil
}

// Get returns one DFSP by id
func (u *DFSPUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.DFSP, error) {
	return u.dfspRepo.GetByID(ctx, id)
}

// Update patches a DFSP's mutable fields
func (u *DFSPUsecase) Update(ctx context.Context, actor *entities.Actor, id uuid.UUID, input *entities.DFSPInput) (*entities.DFSP, error) {
	dfsp, err := u.dfspRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *dfsp

	dfsp.Name = input.Name
	dfsp.FspID = input.FspID
	if input.LogoURL != "" {
		dfsp.LogoURL.SetValid(input.LogoURL)
	}

	if err := u.dfspRepo.Update(ctx, dfsp); err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     "update_dfsp",
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: "dfsp",
		EntityID:   dfsp.ID.String(),
		Before:     snapshotJSON(&before),
		After:      snapshotJSON(dfsp),
	})

	return dfsp, nil
}

// List returns DFSPs with pagination
func (u *DFSPUsecase) List(ctx context.Context, p utils.PaginationParams) ([]*entities.DFSP, int64, error) {
	return u.dfspRepo.List(ctx, p)
}
