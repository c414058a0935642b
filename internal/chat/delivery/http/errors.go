package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashback-advisor/internal/agent/orchestrator"
	"cashback-advisor/pkg/response"
)

// mapError answers a failed chat request. Only validation errors are shown
// to the user; everything else gets the generic apology.
func (h *handler) mapError(c *gin.Context, err error) {
	if errors.Is(err, orchestrator.ErrEmptyMessage) {
		c.JSON(http.StatusBadRequest, chatResp{Response: "Please type a question first."})
		return
	}
	c.JSON(http.StatusInternalServerError, chatResp{Response: response.DefaultErrorMessage})
}
