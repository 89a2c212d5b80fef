package handlers

import (
	"context"
	"errors"
	"net/http"

	response "agencia_maker/internal/adapter/http/dto/response"
	"agencia_maker/internal/usecase"
	"agencia_maker/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler drives the simulated PIX checkout.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// StartPayment godoc
// @Summary  Open a checkout session for a print job
// @Tags     payments
// @Produce  json
// @Param    id path string true "Print job ID"
// @Success  201 {object} response.PaymentSessionResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /print-jobs/{id}/payments [post]
func (h *PaymentHandler) StartPayment(c *gin.Context) {
	session, err := h.usecase.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentSession(session))
}

// GetPayment godoc
// @Summary  Read a checkout session
// @Tags     payments
// @Produce  json
// @Param    session_id path string true "Session ID"
// @Success  200 {object} response.PaymentSessionResponse
// @Router   /payments/{session_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	session, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSession(session))
}

// GeneratePix godoc
// @Summary  Generate the PIX charge
// @Tags     payments
// @Produce  json
// @Param    session_id path string true "Session ID"
// @Success  200 {object} response.PaymentSessionResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /payments/{session_id}/pix [post]
func (h *PaymentHandler) GeneratePix(c *gin.Context) {
	session, err := h.usecase.GenerateCharge(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSession(session))
}

// ConfirmPayment godoc
// @Summary  Report the PIX transfer as done
// @Tags     payments
// @Produce  json
// @Param    session_id path string true "Session ID"
// @Success  200 {object} response.PaymentSessionResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /payments/{session_id}/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	session, err := h.usecase.Confirm(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSession(session))
}

// CancelPayment godoc
// @Summary  Close the checkout without paying
// @Tags     payments
// @Param    session_id path string true "Session ID"
// @Success  204
// @Router   /payments/{session_id} [delete]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("session_id")); err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentSessionID), errors.Is(err, usecase.ErrInvalidPrintJobID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentSessionNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_SESSION_NOT_FOUND", "Payment session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrintJobNotFound):
		return pkg.NewDomainErrorSimple("PRINT_JOB_NOT_FOUND", "Print job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentTransition):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_TRANSITION", "Payment session is not in the expected step", http.StatusConflict)
	case errors.Is(err, usecase.ErrPrintJobAlreadyPaid):
		return pkg.NewDomainErrorSimple("PRINT_JOB_ALREADY_PAID", "Print job already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPrintJobPrice):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Print job has no payable amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentServiceClosed):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Payments are shutting down", http.StatusServiceUnavailable)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REQUEST_CANCELLED", "Request cancelled", err, http.StatusRequestTimeout)
	default:
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Failed to process payment", err, http.StatusBadGateway)
	}
}
