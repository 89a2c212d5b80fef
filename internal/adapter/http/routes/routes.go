package routes

import (
	"net/http"

	_ "agencia_maker/docs"
	"agencia_maker/internal/adapter/http/handlers"
	"agencia_maker/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Users    *handlers.UserHandler
	Quotes   *handlers.QuoteHandler
	Models   *handlers.ModelSearchHandler
	Jobs     *handlers.PrintJobHandler
	Payments *handlers.PaymentHandler
	Chat     *handlers.ChatHandler
	Admin    *handlers.AdminHandler
}

type Options struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	Tracker        *usecase.RequestTracker
	Logger         *zap.Logger
}

// NewRouter builds the gin engine with middlewares, swagger and /v1 routes.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	if opts.Tracker == nil {
		opts.Tracker = usecase.NewRequestTracker()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, opts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addUserRoutes(v1, h.Users)
	addQuoteRoutes(v1, h.Quotes, h.Models, opts.Tracker)
	addPrintJobRoutes(v1, h.Jobs, h.Payments)
	addPaymentRoutes(v1, h.Payments)
	addConversationRoutes(v1, h.Chat)
	addAdminRoutes(v1, h.Admin)

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		opts.Logger.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	if opts.RateLimitRPS > 0 {
		router.Use(RateLimit(NewIPRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)))
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AddAllowHeaders(handlers.HeaderClientSession)
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
