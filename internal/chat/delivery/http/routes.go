package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	chat := rg.Group("/chat")
	{
		chat.POST("", h.Chat)
		chat.DELETE("/sessions/:id", h.ResetSession)
	}
}
