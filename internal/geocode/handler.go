package geocode

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/example/inquiry-service/internal/common"
)

var geocodeCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "geocode_requests_total",
	Help: "Total geocoding proxy requests",
}, []string{"op", "status"})

// Handler is a stateless pass-through between the address widget and the
// geocoding provider, working around browser cross-origin restrictions.
type Handler struct {
	provider Provider
	tracer   trace.Tracer
	logger   zerolog.Logger
}

func NewHandler(provider Provider, logger zerolog.Logger) *Handler {
	return &Handler{
		provider: provider,
		tracer:   otel.Tracer("geocode"),
		logger:   logger,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.search)
	r.Post("/", h.reverse)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "Method not allowed"})
	})
	return r
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "geocode-search")
	defer span.End()

	query := r.URL.Query().Get("q")
	if len(query) < 3 {
		geocodeCounter.WithLabelValues("search", "bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Query must be at least 3 characters"})
		return
	}
	span.SetAttributes(attribute.String("geocode.query", query))

	result, err := h.provider.Search(ctx, query)
	if err != nil {
		span.RecordError(err)
		logger := common.WithContext(ctx, h.logger)
		logger.Error().Err(err).Msg("geocode search failed")
		geocodeCounter.WithLabelValues("search", "error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to search location"})
		return
	}

	geocodeCounter.WithLabelValues("search", "ok").Inc()
	writeRaw(w, result)
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "geocode-reverse")
	defer span.End()

	var body struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Lat == 0 || body.Lon == 0 {
		geocodeCounter.WithLabelValues("reverse", "bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Latitude and longitude required"})
		return
	}

	result, err := h.provider.Reverse(ctx, body.Lat, body.Lon)
	if err != nil {
		span.RecordError(err)
		logger := common.WithContext(ctx, h.logger)
		logger.Error().Err(err).Msg("geocode reverse failed")
		geocodeCounter.WithLabelValues("reverse", "error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to get address from coordinates"})
		return
	}

	geocodeCounter.WithLabelValues("reverse", "ok").Inc()
	writeRaw(w, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeRaw(w http.ResponseWriter, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
