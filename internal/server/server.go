// Package server exposes the calculator over HTTP for a browser front end.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ergung/position-calculator/form"
	"github.com/ergung/position-calculator/internal/calc"
	"github.com/ergung/position-calculator/internal/metrics"
)

const defaultShutdownTimeout = 5 * time.Second

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type Server struct {
	cfg     Config
	svc     *calc.Service
	metrics *metrics.Recorder
	log     *zap.Logger
}

// New wires a server around svc. If svc has no metrics recorder one is
// attached, so /metrics always has something to serve.
func New(cfg Config, svc *calc.Service, logger *zap.Logger) *Server {
	if svc.Metrics == nil {
		svc.Metrics = metrics.NewRecorder()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Server{cfg: cfg, svc: svc, metrics: svc.Metrics, log: logger}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.log)
	})
	mux.Handle("GET /metrics", s.metrics.Handler())
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("calculator listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.log.Info("calculator stopped")
		return nil
	})

	return g.Wait()
}

// flexString accepts a JSON string, number or null.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*f = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*f = flexString(n.String())
	}
	return nil
}

type calculateRequest struct {
	Entry        flexString `json:"entry"`
	Stop         flexString `json:"stop"`
	MaxLoss      flexString `json:"max_loss"`
	ContractSize flexString `json:"contract_size"`
	Reward       flexString `json:"reward"`
	UseContract  *bool      `json:"use_contract,omitempty"`
}

func (r calculateRequest) values() form.Values {
	v := form.Values{
		Entry:        string(r.Entry),
		Stop:         string(r.Stop),
		MaxLoss:      string(r.MaxLoss),
		ContractSize: string(r.ContractSize),
		Reward:       string(r.Reward),
		UseContract:  strings.TrimSpace(string(r.ContractSize)) != "",
	}
	if r.UseContract != nil {
		v.UseContract = *r.UseContract
	}
	return v
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	values, err := decodeValues(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()}, s.log)
		return
	}

	rep, err := s.svc.Run(values)
	if err != nil {
		if calc.IsInputError(err) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Field: calc.Field(err)}, s.log)
			return
		}
		s.log.Error("calculation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"}, s.log)
		return
	}

	writeJSON(w, http.StatusOK, rep.View(s.svc.Export), s.log)
}

// decodeValues reads either a JSON body or an HTML form post.
func decodeValues(w http.ResponseWriter, r *http.Request) (form.Values, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return form.Values{}, fmt.Errorf("parse form: %w", err)
		}
		return form.Values{
			Entry:        r.PostFormValue("entry"),
			Stop:         r.PostFormValue("stop"),
			MaxLoss:      r.PostFormValue("max_loss"),
			ContractSize: r.PostFormValue("contract_size"),
			Reward:       r.PostFormValue("reward"),
			UseContract:  r.PostFormValue("use_contract") == "on" || r.PostFormValue("use_contract") == "true",
		}, nil
	}

	var req calculateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return form.Values{}, fmt.Errorf("decode request: %w", err)
	}
	return req.values(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any, log *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("write response", zap.Error(err))
	}
}
