package routes

import (
	"agencia_maker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConversations = "/conversations"
	PathAdmin         = "/admin"
)

func addConversationRoutes(rg *gin.RouterGroup, h *handlers.ChatHandler) {
	g := rg.Group(PathConversations)
	{
		g.GET("", h.ListConversations)
		g.POST("", h.StartConversation)
		g.GET("/:id", h.GetConversation)
		g.POST("/:id/messages", h.SendMessage)
		g.GET("/:id/ws", h.Subscribe)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	rg.Group(PathAdmin).GET("/stats", h.Stats)
}
