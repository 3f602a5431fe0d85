package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/domain/repositories"
	"merchant-portal.backend/pkg/crypto"
	"merchant-portal.backend/pkg/jwt"
	"merchant-portal.backend/pkg/redis"
)

// AuthUsecase handles staff authentication
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
	audit        repositories.AuditEmitter
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
	sessionTTL time.Duration,
	audit repositories.AuditEmitter,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
		audit:        audit,
	}
}

// Register creates a new staff user. Only admins reach this path; the role in
// the input decides which permission bundle the new user's tokens will carry.
func (u *AuthUsecase) Register(ctx context.Context, actor *entities.Actor, input *entities.RegisterInput) (*entities.User, error) {
	switch input.Role {
	case entities.RoleOperator, entities.RoleSupervisor, entities.RoleAdmin:
	default:
		return nil, domainerrors.BadRequest("unknown role: " + string(input.Role))
	}

	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: hash,
		IsActive:     true,
	}
	if input.DFSPID != "" {
		dfspID, err := uuid.Parse(input.DFSPID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid dfsp id")
		}
		user.DFSPID = uuid.NullUUID{UUID: dfspID, Valid: true}
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:      "register",
		Outcome:     entities.AuditOutcomeSuccess,
		ActorID:     actor.ID,
		EntityName:  "user",
		EntityID:    user.ID.String(),
		Description: null.StringFrom("created " + string(user.Role) + " " + user.Email),
	})

	return user, nil
}

// Login authenticates a staff user and issues a token pair whose claims carry
// the permission tags for the user's role
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, domainerrors.ErrForbidden
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		emitAudit(ctx, u.audit, &entities.AuditEvent{
			Action:      "login",
			Outcome:     entities.AuditOutcomeFailure,
			ActorID:     user.ID,
			EntityName:  "user",
			EntityID:    user.ID.String(),
			Description: null.StringFrom("wrong password"),
		})
		return nil, domainerrors.ErrInvalidCredentials
	}

	permissions := entities.RolePermissions(user.Role).Strings()
	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role), permissions)
	if err != nil {
		return nil, err
	}

	if u.sessionStore != nil {
		_ = u.sessionStore.CreateSession(ctx, user.ID.String(), &redis.SessionData{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		}, u.sessionTTL)
	}

	if err := u.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     "login",
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    user.ID,
		EntityName: "user",
		EntityID:   user.ID.String(),
	})

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		UserID:       user.ID.String(),
		Email:        user.Email,
		Role:         user.Role,
		Permissions:  permissions,
	}, nil
}

// Logout drops the user's server-side session
func (u *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	if u.sessionStore == nil {
		return nil
	}
	return u.sessionStore.DeleteSession(ctx, userID.String())
}

// GetProfile returns the authenticated user's own record
func (u *AuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
