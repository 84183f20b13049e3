package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"flightroute/navroute"
)

type RouteRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	// Optional per-request overrides of the configured search parameters
	MaxDistance *float64 `json:"maxDistance,omitempty"`
	MinDistance *float64 `json:"minDistance,omitempty"`
	TurnPenalty *float64 `json:"turnPenalty,omitempty"`
}

type RouteResponse struct {
	Path     []navroute.NavPoint `json:"path"`
	Distance float64             `json:"distance"`
	Success  bool                `json:"success"`
	Reason   navroute.Reason     `json:"reason,omitempty"`
	Expanded int                 `json:"expanded"`
}

// server exposes route searches over HTTP.
type server struct {
	router  *navroute.Router
	catalog navroute.Catalog
	logger  *log.Logger
}

func newServer(catalog navroute.Catalog, opts navroute.Options, logger *log.Logger) http.Handler {
	s := &server{
		router:  navroute.NewRouter(catalog, navroute.WithOptions(opts)),
		catalog: catalog,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/health", s.healthHandler)
	r.Get("/points", s.pointsHandler)
	r.Post("/route", s.routeHandler)

	return r
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestID tags each request with the caller's X-Request-ID or a fresh
// UUID, and echoes it in the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// statusWriter captures the final HTTP status code and number of bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		s.logger.Info("request",
			"req_id", requestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Microsecond))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func (s *server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		s.logger.Error("encode failed", "req_id", requestIDFrom(r.Context()), "err", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, map[string]string{"error": msg})
}

// POST /route - Compute a route between two airports
func (s *server) routeHandler(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With("req_id", requestIDFrom(r.Context()))

	var req RouteRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.Warn("Invalid request body", "err", err)
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Start = strings.TrimSpace(req.Start)
	req.End = strings.TrimSpace(req.End)
	if req.Start == "" || req.End == "" {
		s.writeError(w, r, http.StatusBadRequest, "start and end are required")
		return
	}

	var opts []navroute.Option
	if req.MaxDistance != nil {
		opts = append(opts, navroute.WithMaxDistance(*req.MaxDistance))
	}
	if req.MinDistance != nil {
		opts = append(opts, navroute.WithMinDistance(*req.MinDistance))
	}
	if req.TurnPenalty != nil {
		opts = append(opts, navroute.WithTurnPenalty(*req.TurnPenalty))
	}

	logger.Info("Route request received", "start", req.Start, "end", req.End)

	res := s.router.FindPath(req.Start, req.End, opts...)

	if !res.Success {
		logger.Info("No route found", "reason", res.Reason, "expanded", res.Expanded)
	} else {
		logger.Info("Route found",
			"fixes", len(res.Path),
			"distance", res.Distance,
			"expanded", res.Expanded)
		for i, p := range res.Path {
			logger.Debug("route fix", "i", i, "name", p.Name, "type", p.Type, "x", p.X, "y", p.Y)
		}
	}

	s.writeJSON(w, r, http.StatusOK, RouteResponse{
		Path:     res.Path,
		Distance: res.Distance,
		Success:  res.Success,
		Reason:   res.Reason,
		Expanded: res.Expanded,
	})
}

// GET /health - Health check endpoint
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	numPoints := len(s.catalog.Points())

	status := "ready"
	if numPoints == 0 {
		status = "empty catalog"
	}

	s.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":    status,
		"numPoints": numPoints,
	})
}

// GET /points - List catalog points, optionally filtered by ?type=
func (s *server) pointsHandler(w http.ResponseWriter, r *http.Request) {
	points := s.catalog.Points()

	if t := r.URL.Query().Get("type"); t != "" {
		typ, err := navroute.ParsePointType(t)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		filtered := make([]navroute.NavPoint, 0, len(points))
		for _, p := range points {
			if p.Type == typ {
				filtered = append(filtered, p)
			}
		}
		points = filtered
	}

	if points == nil {
		points = []navroute.NavPoint{}
	}

	s.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"points":    points,
		"numPoints": len(points),
	})
}
