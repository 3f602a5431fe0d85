package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// ActorKey is the context key for the authenticated actor
	ActorKey = "actor"
	// UserRoleKey is the context key for the role claim
	UserRoleKey = "userRole"
)

// AuthMiddleware validates the bearer token and places the actor, with its
// permission set decoded from the token claims, into the request context
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if err == jwt.ErrExpiredToken {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": message,
			})
			return
		}

		actor := &entities.Actor{
			ID:          claims.UserID,
			Email:       claims.Email,
			Permissions: entities.PermissionsFromStrings(claims.Permissions),
		}
		c.Set(ActorKey, actor)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

// RequirePermission aborts with 403 unless the actor holds the permission
func RequirePermission(p entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || !actor.Can(p) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "missing permission: " + string(p),
			})
			return
		}
		c.Next()
	}
}

// GetActor gets the authenticated actor from context
func GetActor(c *gin.Context) (*entities.Actor, bool) {
	value, exists := c.Get(ActorKey)
	if !exists {
		return nil, false
	}
	actor, ok := value.(*entities.Actor)
	return actor, ok
}

// GetActorID gets the authenticated actor's id from context
func GetActorID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.ID, true
}
