package routes

import (
	"agencia_maker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPrintJobs = "/print-jobs"
	PathPayments  = "/payments"
)

func addPrintJobRoutes(rg *gin.RouterGroup, jobs *handlers.PrintJobHandler, payments *handlers.PaymentHandler) {
	g := rg.Group(PathPrintJobs)
	{
		g.GET("", jobs.ListPrintJobs)
		g.POST("", jobs.CreatePrintJob)
		g.GET("/:id", jobs.GetPrintJob)
		g.PATCH("/:id/complete", jobs.CompletePrintJob)
		g.POST("/:id/payments", payments.StartPayment)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	g := rg.Group(PathPayments)
	{
		g.GET("/:session_id", h.GetPayment)
		g.POST("/:session_id/pix", h.GeneratePix)
		g.POST("/:session_id/confirm", h.ConfirmPayment)
		g.DELETE("/:session_id", h.CancelPayment)
	}
}
