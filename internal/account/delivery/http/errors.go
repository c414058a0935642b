package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"cashback-advisor/internal/account"
	"cashback-advisor/pkg/response"
)

var errInvalidID = errors.New("id must be a positive integer")

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, account.ErrInvalidAccount), errors.Is(err, account.ErrInvalidAmount):
		response.Error(c, err, nil)
	case errors.Is(err, account.ErrAccountNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
