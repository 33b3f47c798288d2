package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/starbook-app/starbook/internal/domain/auspice"
	"github.com/starbook-app/starbook/internal/infra/genqueue"
	apperrors "github.com/starbook-app/starbook/pkg/errors"
)

// Handler wires the HTTP transport to the auspice domain.
type Handler struct {
	svc    auspice.Service
	queue  genqueue.Queue
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc auspice.Service, queue genqueue.Queue, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		queue:  queue,
		logger: logger.With("component", "http.handler"),
	}
}

// Month serves a full month of day records.
func (h *Handler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_date", "year must be a number", err))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_date", "month must be a number", err))
		return
	}

	record, err := h.svc.Month(c.Request.Context(), year, month)
	if err != nil {
		abortWithError(c, calendarError(err))
		return
	}
	c.JSON(http.StatusOK, record)
}

// Day serves a single day record by ISO date.
func (h *Handler) Day(c *gin.Context) {
	record, err := h.svc.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithError(c, calendarError(err))
		return
	}
	c.JSON(http.StatusOK, record)
}

type generateRequest struct {
	Year   int   `json:"year" binding:"required"`
	Months []int `json:"months"`
}

type generateResponse struct {
	RunID  string `json:"runId"`
	Year   int    `json:"year"`
	Months []int  `json:"months"`
}

// Generate enqueues month generation jobs for the admin endpoint.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	months := req.Months
	if len(months) == 0 {
		months = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	}
	for _, m := range months {
		if m < 1 || m > 12 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_date", "months must be between 1 and 12", nil))
			return
		}
	}

	runID := uuid.NewString()
	for _, m := range months {
		job := genqueue.Job{RunID: runID, Year: req.Year, Month: m}
		if err := h.queue.Enqueue(c.Request.Context(), job); err != nil {
			abortWithError(c, NewHTTPError(http.StatusInternalServerError, "generation_failed", errMessage(err), err))
			return
		}
	}
	h.logger.Info("generation run accepted", "runId", runID, "year", req.Year, "months", len(months))

	c.JSON(http.StatusAccepted, generateResponse{RunID: runID, Year: req.Year, Months: months})
}

func calendarError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "calendar_error"
	switch {
	case apperrors.IsCode(err, "invalid_date"):
		status = http.StatusBadRequest
		code = "invalid_date"
	case apperrors.IsCode(err, "no_data"):
		status = http.StatusNotFound
		code = "no_data"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
