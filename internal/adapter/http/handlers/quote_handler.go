package handlers

import (
	"errors"
	"net/http"

	request "agencia_maker/internal/adapter/http/dto/request"
	response "agencia_maker/internal/adapter/http/dto/response"
	"agencia_maker/internal/usecase"
	"agencia_maker/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler serves price estimates and maker matching. Responses go
// through respondLatest so a client that re-submits only sees the newest
// answer.
type QuoteHandler struct {
	quotes   usecase.IQuoteUseCase
	matching usecase.IMatchingUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, matching usecase.IMatchingUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, matching: matching}
}

// GetQuote godoc
// @Summary  Intelligent price estimate
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequest true "Quote request"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	quote, err := h.quotes.GetIntelligentPrice(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	respondLatest(c, http.StatusOK, response.FromQuote(quote))
}

// ReverseEngineering godoc
// @Summary  Reverse-engineering analysis
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body body request.ReverseEngineeringRequest true "Part description"
// @Success  200 {object} response.ReverseEngineeringResponse
// @Router   /quotes/reverse-engineering [post]
func (h *QuoteHandler) ReverseEngineering(c *gin.Context) {
	var payload request.ReverseEngineeringRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	text, err := h.quotes.AnalyzeReverseEngineering(c.Request.Context(), payload.Description)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	respondLatest(c, http.StatusOK, response.ReverseEngineeringResponse{Analysis: text})
}

// FindMatches godoc
// @Summary  Recommend up to three makers
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequest true "Quote request"
// @Success  200 {array} response.MakerMatchResponse
// @Router   /quotes/matches [post]
func (h *QuoteHandler) FindMatches(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	matches, err := h.matching.FindMatchingMakers(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	respondLatest(c, http.StatusOK, response.FromMakerMatches(matches))
}

// Studio godoc
// @Summary  Estimate and maker matches in one call
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequest true "Quote request"
// @Success  200 {object} response.QuoteStudioResponse
// @Router   /quotes/studio [post]
func (h *QuoteHandler) Studio(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	res, err := h.quotes.Studio(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	respondLatest(c, http.StatusOK, response.FromQuoteStudio(res))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyQuoteRequest), errors.Is(err, usecase.ErrEmptyDescription):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Describe the job or provide a model URL", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceType), errors.Is(err, usecase.ErrInvalidComplexity):
		return errInvalidQuotePayload
	default:
		return internalError(err)
	}
}
