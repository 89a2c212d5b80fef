package handlers

import (
	"net/http"

	response "agencia_maker/internal/adapter/http/dto/response"
	"agencia_maker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	usecase usecase.IAdminStatsUseCase
}

func NewAdminHandler(uc usecase.IAdminStatsUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// Stats godoc
// @Summary  Platform counters
// @Tags     admin
// @Produce  json
// @Success  200 {object} response.AdminStatsResponse
// @Router   /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromAdminStats(h.usecase.Stats(c.Request.Context())))
}
