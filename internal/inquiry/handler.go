package inquiry

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/example/inquiry-service/internal/common"
)

var (
	inquiryCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inquiry_requests_total",
		Help: "Total number of contact form submissions received",
	}, []string{"status"})
	inquiryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inquiry_request_duration_seconds",
		Help:    "Latency for contact form submissions",
		Buckets: prometheus.DefBuckets,
	})
)

const genericError = "An unexpected error occurred. Please try again later."

type Handler struct {
	validator  *Validator
	dispatcher *Dispatcher
	tracer     trace.Tracer
	logger     zerolog.Logger
}

func NewHandler(validator *Validator, dispatcher *Dispatcher, logger zerolog.Logger) *Handler {
	return &Handler{
		validator:  validator,
		dispatcher: dispatcher,
		tracer:     otel.Tracer("inquiry"),
		logger:     logger,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.submit)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "Method not allowed"})
	})
	return r
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "submit-inquiry")
	defer span.End()

	start := time.Now()

	var inq Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inq); err != nil {
		inquiryCounter.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	inquiryID := uuid.NewString()
	span.SetAttributes(
		attribute.String("inquiry.id", inquiryID),
		attribute.String("inquiry.event_type", inq.EventType),
	)
	logger := common.WithContext(ctx, h.logger).With().Str("inquiry_id", inquiryID).Logger()

	if err := h.validator.Validate(ctx, inq); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			// Client fault, not a server error.
			logger.Warn().Str("reason", verr.Reason).Msg("inquiry rejected")
			inquiryCounter.WithLabelValues("rejected").Inc()
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": verr.Reason})
			return
		}
		span.RecordError(err)
		logger.Error().Err(err).Msg("inquiry validation failed")
		inquiryCounter.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": genericError, "details": err.Error()})
		return
	}

	outcome, err := h.dispatcher.Dispatch(ctx, inq)
	if err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Bool("owner_notified", outcome.OwnerNotified).Msg("inquiry dispatch failed")
		inquiryCounter.WithLabelValues("failed").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": genericError, "details": err.Error()})
		return
	}

	inquiryCounter.WithLabelValues("sent").Inc()
	inquiryLatency.Observe(time.Since(start).Seconds())
	logger.Info().Str("event_type", inq.EventType).Msg("inquiry submitted")

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Inquiry submitted successfully",
		"emailsSent": outcome,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
