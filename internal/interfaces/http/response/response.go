package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "scholars-connect.backend/internal/domain/errors"
	"scholars-connect.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps an error to its JSON form. Bare sentinels keep their natural
// status; anything else that is not an AppError is logged and redacted to a
// plain 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			appErr = domainerrors.NotFound(err.Error())
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			appErr = domainerrors.Conflict(err.Error())
		case errors.Is(err, domainerrors.ErrInvalidInput):
			appErr = domainerrors.BadRequest(err.Error())
		case errors.Is(err, domainerrors.ErrForbidden):
			appErr = domainerrors.Forbidden(err.Error())
		case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrInvalidCredentials):
			appErr = domainerrors.Unauthorized(err.Error())
		default:
			appErr = domainerrors.InternalError(err)
		}
	}

	if appErr.Code == http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
