package handlers

import (
	"errors"
	"net/http"

	request "agencia_maker/internal/adapter/http/dto/request"
	response "agencia_maker/internal/adapter/http/dto/response"
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase"
	"agencia_maker/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPrintJobPayload = pkg.NewDomainErrorSimple("INVALID_PRINT_JOB_INPUT", "Invalid print job payload", http.StatusBadRequest)

// PrintJobHandler serves the job board.
type PrintJobHandler struct {
	usecase usecase.IPrintJobUseCase
}

func NewPrintJobHandler(uc usecase.IPrintJobUseCase) *PrintJobHandler {
	return &PrintJobHandler{usecase: uc}
}

// ListPrintJobs godoc
// @Summary  List print jobs, newest first
// @Tags     print-jobs
// @Produce  json
// @Param    client_id query string false "Only jobs of this client"
// @Param    status    query string false "Aberto, Em andamento or Concluído"
// @Success  200 {array} response.PrintJobResponse
// @Router   /print-jobs [get]
func (h *PrintJobHandler) ListPrintJobs(c *gin.Context) {
	filter := usecase.PrintJobFilter{
		ClientID: c.Query("client_id"),
		Status:   entities.PrintJobStatus(c.Query("status")),
	}
	c.JSON(http.StatusOK, response.FromPrintJobs(h.usecase.List(c.Request.Context(), filter)))
}

// CreatePrintJob godoc
// @Summary  Submit a print job
// @Tags     print-jobs
// @Accept   json
// @Produce  json
// @Param    body body request.CreatePrintJobRequest true "Print job"
// @Success  201 {object} response.PrintJobResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /print-jobs [post]
func (h *PrintJobHandler) CreatePrintJob(c *gin.Context) {
	var payload request.CreatePrintJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPrintJobPayload)
		return
	}
	job, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapPrintJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPrintJob(job))
}

// GetPrintJob godoc
// @Summary  Get a print job
// @Tags     print-jobs
// @Produce  json
// @Param    id path string true "Print job ID"
// @Success  200 {object} response.PrintJobResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /print-jobs/{id} [get]
func (h *PrintJobHandler) GetPrintJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPrintJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPrintJob(job))
}

// CompletePrintJob godoc
// @Summary  Mark an in-progress job as done
// @Tags     print-jobs
// @Produce  json
// @Param    id path string true "Print job ID"
// @Success  200 {object} response.PrintJobResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /print-jobs/{id}/complete [patch]
func (h *PrintJobHandler) CompletePrintJob(c *gin.Context) {
	job, err := h.usecase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPrintJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPrintJob(job))
}

func mapPrintJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPrintJobID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidPrintJobTitle), errors.Is(err, usecase.ErrInvalidPrintJobPrice):
		return errInvalidPrintJobPayload
	case errors.Is(err, usecase.ErrInvalidServiceType), errors.Is(err, usecase.ErrInvalidComplexity):
		return errInvalidPrintJobPayload
	case errors.Is(err, usecase.ErrPrintJobNotFound):
		return pkg.NewDomainErrorSimple("PRINT_JOB_NOT_FOUND", "Print job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrintJobAlreadyPaid):
		return pkg.NewDomainErrorSimple("PRINT_JOB_ALREADY_PAID", "Print job already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPrintJobNotInProgress):
		return pkg.NewDomainErrorSimple("PRINT_JOB_NOT_IN_PROGRESS", "Print job is not in progress", http.StatusConflict)
	default:
		return internalError(err)
	}
}
