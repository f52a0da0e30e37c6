package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"order-store/internal/pkg/errs"
	"order-store/internal/service"
)

type errorResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"status": statusCode,
		}).Error(message)
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, service.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrUnknownOrder):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateIdentifier), errors.Is(err, errs.ErrAlreadyAttached):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	newErrorResponse(c, errorStatus(err), err.Error())
}
