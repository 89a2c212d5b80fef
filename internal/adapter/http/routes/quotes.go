package routes

import (
	"agencia_maker/internal/adapter/http/handlers"
	"agencia_maker/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathModels = "/models"
)

// Quote and search endpoints are tracked per client session so a newer
// request cancels the one still in flight.
func addQuoteRoutes(rg *gin.RouterGroup, quotes *handlers.QuoteHandler, models *handlers.ModelSearchHandler, tracker *usecase.RequestTracker) {
	q := rg.Group(PathQuotes)
	{
		q.POST("", handlers.TrackLatest(tracker, "quote"), quotes.GetQuote)
		q.POST("/reverse-engineering", handlers.TrackLatest(tracker, "reverse-engineering"), quotes.ReverseEngineering)
		q.POST("/matches", handlers.TrackLatest(tracker, "matches"), quotes.FindMatches)
		q.POST("/studio", handlers.TrackLatest(tracker, "studio"), quotes.Studio)
	}

	m := rg.Group(PathModels)
	{
		m.GET("/search", handlers.TrackLatest(tracker, "model-search"), models.Search)
		m.GET("/suggested", models.Suggested)
	}
}
