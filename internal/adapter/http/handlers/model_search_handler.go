package handlers

import (
	"net/http"
	"strings"

	response "agencia_maker/internal/adapter/http/dto/response"
	"agencia_maker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ModelSearchHandler struct {
	usecase usecase.IModelSearchUseCase
}

func NewModelSearchHandler(uc usecase.IModelSearchUseCase) *ModelSearchHandler {
	return &ModelSearchHandler{usecase: uc}
}

// Search godoc
// @Summary  Search external model marketplaces
// @Tags     models
// @Produce  json
// @Param    q query string false "Search terms"
// @Success  200 {object} response.ModelSearchResponse
// @Router   /models/search [get]
func (h *ModelSearchHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	models := h.usecase.Search(c.Request.Context(), q)
	respondLatest(c, http.StatusOK, response.FromModels(q, string(h.usecase.Strategy()), models))
}

// Suggested godoc
// @Summary  Trending models
// @Tags     models
// @Produce  json
// @Success  200 {object} response.ModelSearchResponse
// @Router   /models/suggested [get]
func (h *ModelSearchHandler) Suggested(c *gin.Context) {
	models := h.usecase.Suggested(c.Request.Context())
	c.JSON(http.StatusOK, response.FromModels("", string(h.usecase.Strategy()), models))
}
