package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/pkg/utils"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Paginated sends a list response with pagination metadata
func Paginated(c *gin.Context, items interface{}, meta utils.PaginationMeta) {
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"meta":  meta,
	})
}

// Error maps a domain error to its HTTP representation.
// A *ValidationError additionally reports the incomplete wizard steps so the
// frontend can highlight them.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":         http.StatusUnprocessableEntity,
			"message":      validationErr.Error(),
			"missingSteps": validationErr.MissingSteps,
		})
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		status, message = http.StatusNotFound, "resource not found"
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domainerrors.ErrForbidden):
		status, message = http.StatusForbidden, "forbidden"
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		status, message = http.StatusConflict, "resource already exists"
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, domainerrors.ErrConcurrencyConflict):
		status, message = http.StatusConflict, "record changed since last read, reload and retry"
	case errors.Is(err, domainerrors.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	}

	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}
