// Package server serves generated populations over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zarlcorp/peoplegen/internal/corpus"
	"github.com/zarlcorp/peoplegen/internal/output"
	"github.com/zarlcorp/peoplegen/internal/people"
)

// DefaultMaxCount caps the people a single request may ask for.
const DefaultMaxCount = 100_000

// errBadRequest marks query errors that map to 400.
var errBadRequest = errors.New("bad request")

// Server generates populations from a fixed corpus set.
type Server struct {
	corpora  corpus.Set
	router   *chi.Mux
	logger   *slog.Logger
	now      func() time.Time
	maxCount int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithClock sets the clock used for default birth ranges.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithMaxCount caps the count parameter.
func WithMaxCount(n int) Option {
	return func(s *Server) { s.maxCount = n }
}

// New returns a server drawing names from corpora.
func New(corpora corpus.Set, opts ...Option) *Server {
	s := &Server{
		corpora:  corpora,
		router:   chi.NewRouter(),
		logger:   slog.Default(),
		now:      time.Now,
		maxCount: DefaultMaxCount,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/people", s.handlePeople)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handlePeople(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pop, err := people.Build(s.corpora, q.cfg, people.WithLogger(s.logger))
	if err != nil {
		if isConfigError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error("generate population", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	body, err := output.Render(pop, q.format, output.Options{Header: q.header})
	if err != nil {
		s.logger.Error("render population", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", q.format.ContentType())
	w.Header().Set("X-Seed", strconv.FormatUint(pop.Seed, 10))
	_, _ = w.Write(body)
}

type query struct {
	cfg    people.Config
	format output.Format
	header output.HeaderStyle
}

func (s *Server) parseQuery(v url.Values) (query, error) {
	count, err := strconv.Atoi(v.Get("count"))
	if err != nil {
		return query{}, fmt.Errorf("%w: count must be an integer", errBadRequest)
	}
	if count > s.maxCount {
		return query{}, fmt.Errorf("%w: count may not exceed %d", errBadRequest, s.maxCount)
	}

	cfg := people.DefaultConfig(count, s.now())

	if f := v.Get("female"); f != "" {
		pct, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return query{}, fmt.Errorf("%w: female must be a percentage", errBadRequest)
		}
		cfg.FemaleFraction = pct / 100
	}

	if cfg.IncludeSSN, err = boolParam(v, "ssn"); err != nil {
		return query{}, err
	}
	if cfg.SSNMode, err = people.ParseSSNMode(v.Get("ssn_mode")); err != nil {
		return query{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if cfg.IncludeSalary, err = boolParam(v, "salary"); err != nil {
		return query{}, err
	}
	if cfg.IDs, err = people.ParseIDMode(v.Get("ids")); err != nil {
		return query{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	if sv := v.Get("seed"); sv != "" {
		seed, err := strconv.ParseUint(sv, 10, 64)
		if err != nil {
			return query{}, fmt.Errorf("%w: seed must be an unsigned integer", errBadRequest)
		}
		cfg.Seed = &seed
	}

	if v.Has("shuffle") {
		if cfg.Shuffle, err = boolParam(v, "shuffle"); err != nil {
			return query{}, err
		}
	}

	format := output.JSON
	if fv := v.Get("format"); fv != "" {
		if format, err = output.ParseFormat(fv); err != nil {
			return query{}, fmt.Errorf("%w: %v", errBadRequest, err)
		}
	}

	header := output.Snake
	if hv := v.Get("header"); hv != "" {
		if header, err = output.ParseHeaderStyle(hv); err != nil {
			return query{}, fmt.Errorf("%w: %v", errBadRequest, err)
		}
	}

	return query{cfg: cfg, format: format, header: header}, nil
}

func boolParam(v url.Values, name string) (bool, error) {
	s := v.Get(name)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", errBadRequest, name)
	}
	return b, nil
}

func isConfigError(err error) bool {
	return errors.Is(err, people.ErrInvalidCount) ||
		errors.Is(err, people.ErrInvalidRatio) ||
		errors.Is(err, people.ErrInvalidDateRange)
}
