package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cashback-advisor/pkg/response"
)

// Chat godoc
// @Summary     Ask the assistant
// @Description Sends one message to the assistant. Messages with the same session_id share a history; an omitted session_id uses the default session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} chatResp "Empty message"
// @Failure     500 {object} chatResp "Generic apology"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	out, err := h.engine.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.Chat: %v", err)
		h.mapError(c, err)
		return
	}

	if out.LoopBoundExceeded {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: answered with fallback after %d rounds", out.Rounds)
	}
	c.JSON(http.StatusOK, chatResp{Response: out.Text})
}

// ResetSession godoc
// @Summary     Forget a conversation
// @Description Deletes the stored history of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} resetResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("id")
	if err := h.engine.Reset(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.ResetSession: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, resetResp{SessionID: sessionID})
}
