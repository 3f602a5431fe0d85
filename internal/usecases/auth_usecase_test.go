package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/usecases"
	"merchant-portal.backend/pkg/crypto"
	"merchant-portal.backend/pkg/jwt"
)

func newAuthUsecaseForTest(userRepo *MockUserRepository, audit *MockAuditEmitter) *usecases.AuthUsecase {
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return usecases.NewAuthUsecase(userRepo, jwtSvc, nil, time.Hour, audit)
}

func adminActor() *entities.Actor {
	return &entities.Actor{
		ID:          uuid.New(),
		Permissions: entities.RolePermissions(entities.RoleAdmin),
	}
}

func TestAuthUsecase_Register_UnknownRole(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), new(MockAuditEmitter))

	_, err := uc.Register(context.Background(), adminActor(), &entities.RegisterInput{
		Email:    "new@portal.example",
		Name:     "New",
		Password: "Password123!",
		Role:     entities.Role("superuser"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAuthUsecase_Register_EmailAlreadyExists(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, new(MockAuditEmitter))

	userRepo.On("GetByEmail", mock.Anything, "exists@portal.example").
		Return(&entities.User{ID: uuid.New()}, nil).Once()

	_, err := uc.Register(context.Background(), adminActor(), &entities.RegisterInput{
		Email:    "exists@portal.example",
		Name:     "Exists",
		Password: "Password123!",
		Role:     entities.RoleOperator,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	audit := new(MockAuditEmitter)
	uc := newAuthUsecaseForTest(userRepo, audit)

	userRepo.On("GetByEmail", mock.Anything, "new@portal.example").
		Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entities.User) bool {
		return user.Email == "new@portal.example" &&
			user.Role == entities.RoleSupervisor &&
			user.IsActive &&
			user.PasswordHash != "" && user.PasswordHash != "Password123!"
	})).Return(nil).Once()
	audit.On("Record", mock.Anything, mock.Anything).Return(nil).Once()

	user, err := uc.Register(context.Background(), adminActor(), &entities.RegisterInput{
		Email:    "new@portal.example",
		Name:     "New Supervisor",
		Password: "Password123!",
		Role:     entities.RoleSupervisor,
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.RoleSupervisor, user.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	audit := new(MockAuditEmitter)
	uc := newAuthUsecaseForTest(userRepo, audit)

	hash, err := crypto.HashPassword("Password123!")
	assert.NoError(t, err)

	userID := uuid.New()
	userRepo.On("GetByEmail", mock.Anything, "op@portal.example").
		Return(&entities.User{
			ID:           userID,
			Email:        "op@portal.example",
			Role:         entities.RoleOperator,
			PasswordHash: hash,
			IsActive:     true,
		}, nil).Once()
	userRepo.On("TouchLastLogin", mock.Anything, userID).Return(nil).Once()
	audit.On("Record", mock.Anything, mock.MatchedBy(func(event *entities.AuditEvent) bool {
		return event.Action == "login" && event.Outcome == entities.AuditOutcomeSuccess
	})).Return(nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "op@portal.example",
		Password: "Password123!",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, entities.RoleOperator, resp.Role)
	assert.Contains(t, resp.Permissions, string(entities.PermissionMerchantCreate))
	assert.NotContains(t, resp.Permissions, string(entities.PermissionMerchantReview))
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	audit := new(MockAuditEmitter)
	uc := newAuthUsecaseForTest(userRepo, audit)

	hash, _ := crypto.HashPassword("Password123!")
	userRepo.On("GetByEmail", mock.Anything, "op@portal.example").
		Return(&entities.User{
			ID:           uuid.New(),
			PasswordHash: hash,
			IsActive:     true,
		}, nil).Once()
	audit.On("Record", mock.Anything, mock.MatchedBy(func(event *entities.AuditEvent) bool {
		return event.Action == "login" && event.Outcome == entities.AuditOutcomeFailure
	})).Return(nil).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "op@portal.example",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	audit.AssertExpectations(t)
}

func TestAuthUsecase_Login_UnknownEmailAndInactive(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, new(MockAuditEmitter))

	userRepo.On("GetByEmail", mock.Anything, "ghost@portal.example").
		Return(nil, domainerrors.ErrNotFound).Once()
	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "ghost@portal.example",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	hash, _ := crypto.HashPassword("Password123!")
	userRepo.On("GetByEmail", mock.Anything, "off@portal.example").
		Return(&entities.User{ID: uuid.New(), PasswordHash: hash, IsActive: false}, nil).Once()
	_, err = uc.Login(context.Background(), &entities.LoginInput{
		Email:    "off@portal.example",
		Password: "Password123!",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
