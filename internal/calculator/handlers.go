package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"go-calc-store/internal/handlers"
	"go-calc-store/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

var (
	// ErrNoGlyphs is returned for a press request with an empty batch.
	ErrNoGlyphs = errors.New("no glyphs provided")
	// ErrTooManyGlyphs is returned when a press batch exceeds Limits.MaxGlyphs.
	ErrTooManyGlyphs = errors.New("too many glyphs")
)

// Limits bound the work a single request can ask for.
type Limits struct {
	MaxGlyphs    int   // glyphs per press request
	MaxBodyBytes int64 // request body size
}

// DefaultLimits are used for any Limits field left at zero.
var DefaultLimits = Limits{
	MaxGlyphs:    256,
	MaxBodyBytes: 16 << 10,
}

// Handler serves the calculator endpoints over a session registry.
type Handler struct {
	sessions *Registry
	limits   Limits
}

// NewHandler returns a Handler backed by sessions.
func NewHandler(sessions *Registry, limits Limits) *Handler {
	if limits.MaxGlyphs <= 0 {
		limits.MaxGlyphs = DefaultLimits.MaxGlyphs
	}
	if limits.MaxBodyBytes <= 0 {
		limits.MaxBodyBytes = DefaultLimits.MaxBodyBytes
	}
	return &Handler{sessions: sessions, limits: limits}
}

// decodeBody decodes at most limits.MaxBodyBytes of JSON into dst and
// reports the status to answer with on failure.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) (int, error) {
	body := http.MaxBytesReader(w, r.Body, h.limits.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, err
		}
		return http.StatusBadRequest, err
	}
	return http.StatusOK, nil
}

// statusFor maps calculator errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManySessions):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}

// ---------------------------------------------------------------------------
// Handlers — sessions
// ---------------------------------------------------------------------------

// CreateSession handles POST /calculator/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.session.create",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	s, err := h.sessions.Create()
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "create_session", err.Error(), err, statusFor(err), w)
		return
	}

	span.SetAttributes(attribute.String("calculator.session.id", s.ID))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator session created",
		zap.String("session_id", s.ID),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusCreated, newSessionResponse(s, s.Snapshot()))
}

// GetSession handles GET /calculator/sessions/{sessionID}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	id := chi.URLParam(r, "sessionID")

	ctx, span := tracer.Start(ctx, "calculator.session.get",
		trace.WithAttributes(attribute.String("calculator.session.id", id)),
	)
	defer span.End()

	s, err := h.sessions.Get(id)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "get_session", "session not found", err, statusFor(err), w)
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, newSessionResponse(s, s.Snapshot()))
}

// DeleteSession handles DELETE /calculator/sessions/{sessionID}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	id := chi.URLParam(r, "sessionID")

	ctx, span := tracer.Start(ctx, "calculator.session.delete",
		trace.WithAttributes(attribute.String("calculator.session.id", id)),
	)
	defer span.End()

	if err := h.sessions.Delete(id); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "delete_session", "session not found", err, statusFor(err), w)
		return
	}

	span.SetStatus(codes.Ok, "")
	logger.Info("calculator session deleted",
		zap.String("session_id", id),
		zap.String("request_id", requestID),
	)

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Handler — button presses
// ---------------------------------------------------------------------------

// Press handles POST /calculator/sessions/{sessionID}/press. Glyphs are
// applied in order; the first unknown glyph aborts the rest of the batch.
func (h *Handler) Press(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	id := chi.URLParam(r, "sessionID")

	ctx, span := tracer.Start(ctx, "calculator.press",
		trace.WithAttributes(
			attribute.String("calculator.session.id", id),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	s, err := h.sessions.Get(id)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "session not found", err, statusFor(err), w)
		return
	}

	var req PressRequest
	if status, err := h.decodeBody(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "invalid request body", err, status, w)
		return
	}

	if len(req.Glyphs) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "press", ErrNoGlyphs.Error(), ErrNoGlyphs, http.StatusBadRequest, w)
		return
	}
	if len(req.Glyphs) > h.limits.MaxGlyphs {
		err := fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyGlyphs, len(req.Glyphs), h.limits.MaxGlyphs)
		observability.RecordError(ctx, span, logger, errorCounter, "press", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.StringSlice("calculator.glyphs", req.Glyphs),
		attribute.Int("calculator.glyphs_count", len(req.Glyphs)),
	)

	start := time.Now()
	snap, err := s.Press(req.Glyphs...)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	for _, g := range req.Glyphs {
		kind := Classify(g)
		if kind == KindUnknown {
			break
		}
		pressCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind.String())))
	}

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", err.Error(), err, statusFor(err), w)
		return
	}

	pressDuration.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "press")))
	if v, ok := displayValue(snap.Display); ok {
		resultGauge.Record(ctx, v, metric.WithAttributes(attribute.String("operation", "press")))
	}

	span.AddEvent("press.complete", trace.WithAttributes(
		attribute.String("display", snap.Display),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("calculator.display", snap.Display))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator presses applied",
		zap.String("session_id", id),
		zap.Strings("glyphs", req.Glyphs),
		zap.String("display", snap.Display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, newSessionResponse(s, snap))
}

// ---------------------------------------------------------------------------
// Handler — stateless evaluation
// ---------------------------------------------------------------------------

// Evaluate handles POST /calculator/evaluate
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req EvaluateRequest
	if status, err := h.decodeBody(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid request body", err, status, w)
		return
	}

	op, err := DecodeOperator(req.Operator)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	result := Evaluate(req.Left, op, req.Right)

	if v, ok := displayValue(result); ok {
		resultGauge.Record(ctx, v, metric.WithAttributes(attribute.String("operation", "evaluate")))
	}

	span.SetAttributes(
		attribute.String("calculator.operand.left", req.Left),
		attribute.String("calculator.operator", string(op)),
		attribute.String("calculator.operand.right", req.Right),
		attribute.String("calculator.result", result),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator expression evaluated",
		zap.String("left", req.Left),
		zap.String("operator", string(op)),
		zap.String("right", req.Right),
		zap.String("result", result),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Left:     req.Left,
		Operator: op,
		Right:    req.Right,
		Result:   result,
	})
}

// displayValue parses display text for the result gauge, skipping values
// a gauge cannot carry.
func displayValue(display string) (float64, bool) {
	v, err := strconv.ParseFloat(display, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
