package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/infrastructure/models"
	"merchant-portal.backend/pkg/utils"
)

// DFSPRepositoryImpl implements DFSP persistence
type DFSPRepositoryImpl struct {
	db *gorm.DB
}

// NewDFSPRepository creates a new DFSP repository
func NewDFSPRepository(db *gorm.DB) *DFSPRepositoryImpl {
	return &DFSPRepositoryImpl{db: db}
}

// Create inserts a new DFSP
func (r *DFSPRepositoryImpl) Create(ctx context.Context, dfsp *entities.DFSP) error {
	if dfsp.ID == uuid.Nil {
		dfsp.ID = utils.GenerateUUIDv7()
	}
	dfsp.CreatedAt = time.Now()
	dfsp.UpdatedAt = dfsp.CreatedAt

	err := GetDB(ctx, r.db).Create(dfspToModel(dfsp)).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrAlreadyExists
	}
	return err
}

// GetByID gets a DFSP by id
func (r *DFSPRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.DFSP, error) {
	var model models.DFSP
	err := GetDB(ctx, r.db).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return dfspToEntity(&model), nil
}

// Update saves mutable DFSP fields
func (r *DFSPRepositoryImpl) Update(ctx context.Context, dfsp *entities.DFSP) error {
	dfsp.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).Model(&models.DFSP{}).Where("id = ?", dfsp.ID).Updates(map[string]interface{}{
		"name":         dfsp.Name,
		"fsp_id":       dfsp.FspID,
		"logo_url":     dfsp.LogoURL.Ptr(),
		"is_active":    dfsp.IsActive,
		"activated_at": dfsp.ActivatedAt.Ptr(),
		"updated_at":   dfsp.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns DFSPs ordered by creation time
func (r *DFSPRepositoryImpl) List(ctx context.Context, p utils.PaginationParams) ([]*entities.DFSP, int64, error) {
	db := GetDB(ctx, r.db).Model(&models.DFSP{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at desc")
	if p.Limit > 0 {
		query = query.Offset(p.CalculateOffset()).Limit(p.Limit)
	}

	var rows []models.DFSP
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	dfsps := make([]*entities.DFSP, 0, len(rows))
	for i := range rows {
		dfsps = append(dfsps, dfspToEntity(&rows[i]))
	}
	return dfsps, total, nil
}
