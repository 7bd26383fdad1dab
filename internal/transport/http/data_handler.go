package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "langtab/internal/errors"
	custommw "langtab/internal/middleware"
	"langtab/internal/services"
	"langtab/pkg/contracts/domain"
)

// DataHandler handles dataset query requests.
type DataHandler struct {
	service      DataServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validator    *custommw.RequestValidator
}

// NewDataHandler creates a new data handler.
func NewDataHandler(service DataServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	return &DataHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "data_handler")),
		errorHandler: errorHandler,
		validator:    custommw.NewRequestValidator(logger, errorHandler),
	}
}

// Routes returns the dataset routes.
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/records", h.GetRecords)
	r.Post("/records", h.ReplaceRecords)
	r.Get("/languages", h.GetLanguages)
	r.Get("/years", h.GetYears)

	r.Route("/languages/{language}", func(r chi.Router) {
		r.Use(h.LanguageCtx)
		r.Get("/year", h.GetYearCreated)
	})

	r.Route("/years/{year}", func(r chi.Router) {
		r.Use(h.YearCtx)
		r.Get("/", h.GetYear)
		r.Get("/count", h.GetYearCount)
		r.Delete("/", h.DeleteYear)
	})

	return r
}

// LanguageCtx middleware validates the language parameter.
func (h *DataHandler) LanguageCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		language := chi.URLParam(r, "language")
		if language == "" {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("language", "Language name is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// YearCtx middleware validates the year parameter.
func (h *DataHandler) YearCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := strconv.Atoi(chi.URLParam(r, "year")); err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("year", "Year must be an integer"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// yearParam returns the already-validated year path parameter.
func yearParam(r *http.Request) int {
	year, _ := strconv.Atoi(chi.URLParam(r, "year"))
	return year
}

// GetRecords handles GET /records.
func (h *DataHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	records := h.service.Records(r.Context())
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   records,
		"count":  len(records),
	})
}

// ReplaceRecords handles POST /records: it validates the payload and swaps
// in the new dataset, rebuilding both views.
func (h *DataHandler) ReplaceRecords(w http.ResponseWriter, r *http.Request) {
	var payload domain.RecordSet
	if !h.validator.DecodeAndValidate(w, r, &payload) {
		return
	}

	h.service.Replace(r.Context(), payload.Records)

	h.logger.InfoContext(r.Context(), "dataset replaced via API",
		slog.String("request_id", custommw.GetReqID(r.Context())),
		slog.Int("record_count", len(payload.Records)),
	)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"status": "success",
		"count":  len(payload.Records),
	})
}

// GetLanguages handles GET /languages.
func (h *DataHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	languages := h.service.Languages(r.Context())
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   languages,
		"count":  len(languages),
	})
}

// GetYearCreated handles GET /languages/{language}/year.
// The strict and lenient query variants are both exposed: the default is
// strict (404 on a miss); ?lenient=true returns found=false instead.
func (h *DataHandler) GetYearCreated(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")

	if r.URL.Query().Get("lenient") == "true" {
		year, found := h.service.LookupYearCreated(r.Context(), language)
		resp := map[string]any{
			"status":   "success",
			"language": language,
			"found":    found,
		}
		if found {
			resp["year"] = year
		}
		render.JSON(w, r, resp)
		return
	}

	year, err := h.service.YearCreated(r.Context(), language)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]any{
		"status":   "success",
		"language": language,
		"year":     year,
	})
}

// GetYears handles GET /years: the grouped-view summary.
func (h *DataHandler) GetYears(w http.ResponseWriter, r *http.Request) {
	summaries := h.service.YearSummaries(r.Context())
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   summaries,
		"count":  len(summaries),
	})
}

// GetYear handles GET /years/{year}.
func (h *DataHandler) GetYear(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r)

	languages, err := h.service.LanguagesForYear(r.Context(), year)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]any{
		"status":    "success",
		"year":      year,
		"languages": languages,
		"count":     len(languages),
	})
}

// GetYearCount handles GET /years/{year}/count?view=table|grouped.
// The views answer absent years differently on purpose: the table view
// counts 0, the grouped view is a 404.
func (h *DataHandler) GetYearCount(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r)

	view := r.URL.Query().Get("view")
	if view == "" {
		view = services.ViewGrouped
	}

	count, err := h.service.CountForYear(r.Context(), year, view)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]any{
		"status": "success",
		"year":   year,
		"view":   view,
		"count":  count,
	})
}

// DeleteYear handles DELETE /years/{year}.
func (h *DataHandler) DeleteYear(w http.ResponseWriter, r *http.Request) {
	year := yearParam(r)

	if err := h.service.RemoveYear(r.Context(), year); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]any{
		"status": "success",
		"year":   year,
	})
}
