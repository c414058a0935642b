package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create account request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListTransactionsReq binds the optional account_id filter.
func (h *handler) processListTransactionsReq(c *gin.Context) (listTransactionsReq, error) {
	var req listTransactionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processIDParam parses the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
