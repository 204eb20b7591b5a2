package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"asteroid-sim/internal/history"
	"asteroid-sim/internal/impact"
	"asteroid-sim/internal/logging"
	"asteroid-sim/internal/metrics"
	"asteroid-sim/internal/oracle"
	"asteroid-sim/internal/report"
)

const (
	defaultHistoryLimit = 50
	maxBodyBytes        = 1 << 16
)

//go:embed templates/index.html
var content embed.FS

// Options wires the server's collaborators. Engine and Store are required.
type Options struct {
	Engine       impact.Engine
	Store        history.Store
	Metrics      *metrics.Collector
	Sink         report.ResultWriter
	Logger       *slog.Logger
	HistoryLimit int
}

// Server exposes the analysis engine and history over HTTP.
type Server struct {
	engine   impact.Engine
	store    history.Store
	metrics  *metrics.Collector
	sink     report.ResultWriter
	log      *slog.Logger
	limit    int
	validate *validator.Validate
	tpl      *template.Template
	router   chi.Router
}

// NewServer builds the router.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = defaultHistoryLimit
	}
	tpl := template.Must(template.New("index.html").Funcs(template.FuncMap{
		"severity": func(mt float64) string { return string(impact.SeverityFor(mt)) },
	}).ParseFS(content, "templates/index.html"))
	s := &Server{
		engine:   opts.Engine,
		store:    opts.Store,
		metrics:  opts.Metrics,
		sink:     opts.Sink,
		log:      opts.Logger.With("component", "api"),
		limit:    opts.HistoryLimit,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tpl:      tpl,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestLogger)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/history", s.handleHistory)
		r.Get("/history/{id}", s.handleHistoryItem)
		r.Get("/asteroid-types", s.handleTypes)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr, "engine", s.engine.Name())
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		log := s.log.With("request_id", middleware.GetReqID(r.Context()))
		next.ServeHTTP(ww, r.WithContext(logging.NewContext(r.Context(), log)))
		log.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
	})
}

type analyzeRequest struct {
	Name     string   `json:"name" validate:"max=200"`
	Diameter *float64 `json:"diameter" validate:"required,gte=0"`
	Velocity *float64 `json:"velocity" validate:"required,gte=0"`
	Distance *float64 `json:"distance" validate:"required,gte=0"`
	Type     string   `json:"type" validate:"max=64"`
}

func (req analyzeRequest) input() impact.AsteroidInput {
	return impact.AsteroidInput{
		Name:     req.Name,
		Diameter: *req.Diameter,
		Velocity: *req.Velocity,
		Distance: *req.Distance,
		Type:     impact.AsteroidType(req.Type),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type typeInfo struct {
	Type        impact.AsteroidType         `json:"type"`
	Density     float64                     `json:"density"`
	Composition []impact.CompositionElement `json:"composition"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	in := req.input()
	res, err := s.engine.Analyze(r.Context(), in)
	if err != nil {
		writeError(r.Context(), w, statusFor(err), err)
		return
	}

	rec := history.NewRecord(in, res)
	if err := s.store.Add(r.Context(), rec); err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}
	if s.sink != nil {
		if err := s.sink.Write(rec); err != nil {
			logging.FromContext(r.Context()).Warn("result sink failed", "id", rec.ID, "error", err)
		}
	}
	w.Header().Set("Location", "/api/history/"+rec.ID)
	w.Header().Set("X-Analysis-Id", rec.ID)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := s.limit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(r.Context(), w, http.StatusBadRequest, errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}
	if recs == nil {
		recs = []history.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleHistoryItem(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, history.ErrNotFound) {
		writeError(r.Context(), w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	out := make([]typeInfo, 0, len(impact.AsteroidTypes))
	for _, t := range impact.AsteroidTypes {
		out = append(out, typeInfo{Type: t, Density: impact.Density(t), Composition: impact.Composition(t)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "engine": s.engine.Name()})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context(), s.limit)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}
	data := struct {
		Engine  string
		Records []history.Record
	}{Engine: s.engine.Name(), Records: recs}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.Execute(w, data); err != nil {
		logging.FromContext(r.Context()).Error("render index", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, impact.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, oracle.ErrExternalService):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	log := logging.FromContext(ctx)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "status", status, "error", err)
	} else {
		log.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
