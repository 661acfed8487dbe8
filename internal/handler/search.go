package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/schedule"
	"github.com/dharmasatrya/travelnesia/internal/search"
	"github.com/dharmasatrya/travelnesia/pkg/logger"
)

const SessionHeader = "X-Session-ID"

type SearchHandler struct {
	service *search.Service
	log     logger.Logger
}

func NewSearchHandler(service *search.Service, log logger.Logger) *SearchHandler {
	if log == nil {
		log = logger.Nop{}
	}
	return &SearchHandler{
		service: service,
		log:     log,
	}
}

func (h *SearchHandler) SearchFlights(c echo.Context) error {
	var req models.FlightRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Flights(c.Request().Context(), sessionID(c), req)
	return respond(c, h, res, err, "departure")
}

func (h *SearchHandler) SearchHotels(c echo.Context) error {
	var req models.HotelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Hotels(c.Request().Context(), sessionID(c), req)
	return respond(c, h, res, err, "checkin")
}

func (h *SearchHandler) SearchTrains(c echo.Context) error {
	var req models.TrainRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Trains(c.Request().Context(), sessionID(c), req)
	return respond(c, h, res, err, "trainDate")
}

func (h *SearchHandler) SearchShips(c echo.Context) error {
	var req models.ShipRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	res, err := h.service.Ships(c.Request().Context(), sessionID(c), req)
	return respond(c, h, res, err, "shipDate")
}

func respond[T any](c echo.Context, h *SearchHandler, res *search.Result[T], err error, dateField string) error {
	if err != nil {
		return h.fail(c, err)
	}

	criteria := make(map[string]string, len(res.Criteria)+1)
	for k, v := range res.Criteria {
		criteria[k] = v
	}
	if label, err := schedule.FormatDateID(res.Criteria[dateField]); err == nil {
		criteria["date_label"] = label
	}

	resp := models.SearchResponse[T]{
		SearchID: res.SearchID,
		Mode:     res.Mode,
		Criteria: criteria,
		Metadata: models.SearchMetadata{
			TotalResults: len(res.Offers),
			SearchTimeMs: res.Elapsed.Milliseconds(),
		},
		Results: res.Offers,
	}
	if len(res.Offers) == 0 {
		resp.Message = models.NoResultsMessage
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) History(c echo.Context) error {
	mode, ok := models.ParseMode(c.Param("mode"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "unknown_mode",
			Message: models.ErrUnknownMode.Error(),
			Code:    http.StatusNotFound,
			Kind:    models.KindError,
		})
	}

	entries, err := h.service.History(c.Request().Context(), sessionID(c), mode)
	if err != nil {
		return h.fail(c, err)
	}

	resp := models.HistoryResponse{
		Mode:    mode,
		Entries: make([]map[string]string, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, e)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) Book(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	conf, err := h.service.Book(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, conf)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// sessionID returns the caller's session, minting one when the header is absent.
func sessionID(c echo.Context) string {
	id := c.Request().Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
		c.Request().Header.Set(SessionHeader, id)
	}
	c.Response().Header().Set(SessionHeader, id)
	return id
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: "Failed to parse request body: " + err.Error(),
		Code:    http.StatusBadRequest,
		Kind:    models.KindError,
	})
}

func (h *SearchHandler) fail(c echo.Context, err error) error {
	var fieldErrs *models.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: models.ErrMissingFields.Error(),
			Code:    http.StatusBadRequest,
			Kind:    models.KindError,
			Fields:  fieldErrs.Fields,
		})
	case models.IsValidationError(err):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
			Kind:    models.KindError,
		})
	case errors.Is(err, search.ErrSuperseded):
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "superseded",
			Message: err.Error(),
			Code:    http.StatusConflict,
			Kind:    models.KindWarning,
		})
	case errors.Is(err, search.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "rate_limited",
			Message: err.Error(),
			Code:    http.StatusTooManyRequests,
			Kind:    models.KindWarning,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "cancelled",
			Message: err.Error(),
			Code:    http.StatusServiceUnavailable,
			Kind:    models.KindWarning,
		})
	}

	h.log.Error("request failed", logger.Field{Key: "path", Value: c.Path()}, logger.Field{Key: "error", Value: err})
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "Terjadi kesalahan, silakan coba lagi",
		Code:    http.StatusInternalServerError,
		Kind:    models.KindError,
	})
}
