package routes

import (
	"agencia_maker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers  = "/users"
	PathMakers = "/makers"
	PathRoles  = "/roles"
)

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	rg.GET(PathRoles, h.ListRoles)

	users := rg.Group(PathUsers)
	{
		users.GET("", h.ListUsers)
		users.GET("/lookup", h.LookupUser)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
	}

	makers := rg.Group(PathMakers)
	{
		makers.GET("", h.ListMakers)
		makers.POST("", h.BecomeMaker)
	}
}
