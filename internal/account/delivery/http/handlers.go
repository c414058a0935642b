package http

import (
	"github.com/gin-gonic/gin"

	"cashback-advisor/pkg/response"
)

// ListAccounts godoc
// @Summary     List accounts
// @Description Returns every stored card ordered by ID.
// @Tags        Accounts
// @Produce     json
// @Success     200 {object} listAccountsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/accounts [GET]
func (h *handler) ListAccounts(c *gin.Context) {
	ctx := c.Request.Context()

	accounts, err := h.uc.ListAccounts(ctx)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.ListAccounts: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListAccountsResp(accounts))
}

// CreateAccount godoc
// @Summary     Create an account
// @Description Stores a new card. Cashback rates are given per category as cashback_<category>.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Account data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/accounts [POST]
func (h *handler) CreateAccount(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	acc, err := h.uc.CreateAccount(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.CreateAccount: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, h.newCreateResp(acc))
}

// ListTransactions godoc
// @Summary     List transactions
// @Description Returns the transaction history, optionally filtered by account.
// @Tags        Accounts
// @Produce     json
// @Param       account_id query int false "Only transactions of this account"
// @Success     200 {object} listTransactionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/transactions [GET]
func (h *handler) ListTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTransactionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	txs, err := h.uc.ListTransactions(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.ListTransactions: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListTransactionsResp(txs))
}

// Savings godoc
// @Summary     Account savings insights
// @Description Spending per category, top merchants and what switching to the best market card would have saved.
// @Tags        Accounts
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} savingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/accounts/{id}/savings [GET]
func (h *handler) Savings(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Insights(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.Savings: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSavingsResp(out))
}
