package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"finance-calculator/service"
)

const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON object")

type FinanceHandler struct {
	service   *service.FinanceService
	validator *validator.Validate
	logger    *slog.Logger
}

func NewFinanceHandler(service *service.FinanceService, logger *slog.Logger) *FinanceHandler {
	v := validator.New()
	// Usar los nombres JSON en los mensajes de error
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FinanceHandler{
		service:   service,
		validator: v,
		logger:    logger.With(slog.String("component", "finance_handler")),
	}
}

// RegisterRoutes registers the calculation routes
func (h *FinanceHandler) RegisterRoutes(r chi.Router) {
	r.Post("/present-value", h.PresentValue)
	r.Post("/present-value/deposits", h.PresentValueOfDeposits)
	r.Post("/future-value", h.FutureValue)
	r.Post("/net-present-value", h.NetPresentValue)
	r.Get("/calculations", h.History)
}

func (h *FinanceHandler) PresentValue(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, h.service.PresentValue)
}

func (h *FinanceHandler) PresentValueOfDeposits(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, h.service.PresentValueOfDeposits)
}

func (h *FinanceHandler) FutureValue(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, h.service.FutureValue)
}

func (h *FinanceHandler) NetPresentValue(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, h.service.NetPresentValue)
}

// History returns the most recent calculations.
func (h *FinanceHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, invalidParameter("limit", "limit must be an integer"))
			return
		}
		limit = n
	}

	calcs, err := h.service.History(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, r, map[string]any{
		"calculations": calcs,
		"count":        len(calcs),
	})
}

func handle[Req, Res any](
	h *FinanceHandler,
	w http.ResponseWriter,
	r *http.Request,
	calc func(context.Context, Req) (Res, error),
) {
	var req Req
	if apiErr := h.decode(w, r, &req); apiErr != nil {
		writeError(w, r, apiErr)
		return
	}

	result, err := calc(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// decode valida Content-Type, decodifica el JSON y aplica los tags validate.
func (h *FinanceHandler) decode(w http.ResponseWriter, r *http.Request, dst any) *APIError {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return errUnsupportedMedia
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.logger.DebugContext(r.Context(), "failed to decode request body",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetReqID(r.Context())))
		return invalidRequest(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return invalidRequest(errTrailingData)
	}

	if err := h.validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return invalidRequest(err)
		}
		details := make([]ValidationError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, ValidationError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		return validationFailed(details)
	}
	return nil
}

func (h *FinanceHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := toAPIError(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("path", r.URL.Path))
	}
	writeError(w, r, apiErr)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must have at most " + fe.Param() + " entries"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}
