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

// UserRepositoryImpl implements staff user persistence
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

// Create inserts a new user
func (r *UserRepositoryImpl) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = utils.GenerateUUIDv7()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	err := GetDB(ctx, r.db).Create(userToModel(user)).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrAlreadyExists
	}
	return err
}

// GetByID gets a user by id
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var model models.User
	err := GetDB(ctx, r.db).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return userToEntity(&model), nil
}

// GetByEmail gets a user by email
func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model models.User
	err := GetDB(ctx, r.db).Where("email = ?", email).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return userToEntity(&model), nil
}

// TouchLastLogin stamps the last successful login time
func (r *UserRepositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_login_at": now,
		"updated_at":    now,
	}).Error
}

// List returns users ordered by creation time
func (r *UserRepositoryImpl) List(ctx context.Context, p utils.PaginationParams) ([]*entities.User, int64, error) {
	db := GetDB(ctx, r.db).Model(&models.User{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at desc")
	if p.Limit > 0 {
		query = query.Offset(p.CalculateOffset()).Limit(p.Limit)
	}

	var rows []models.User
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(rows))
	for i := range rows {
		users = append(users, userToEntity(&rows[i]))
	}
	return users, total, nil
}
