package http

import (
	"errors"
	"net/http"

	"github.com/omkar342/youtube-dashboard-server/domain/apperror"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses and emits a
// structured payload carrying at least the failure message. Provider
// messages pass through untouched.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperror.KindOf(err) {
	case apperror.KindUnauthorized:
		status = http.StatusUnauthorized
	case apperror.KindBadRequest:
		status = http.StatusBadRequest
	case apperror.KindNotFound:
		status = http.StatusNotFound
	}

	message := err.Error()
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	ctx.JSON(status, gin.H{"error": message})
}
