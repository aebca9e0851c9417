package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"vertexfx/internal/curve"
	"vertexfx/internal/domain"
	"vertexfx/internal/geom"
	"vertexfx/internal/sample"
	"vertexfx/internal/services/sampler"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// badRequest lists the errors caused by the request rather than the server.
var badRequest = []error{
	curve.ErrUnknownKind,
	curve.ErrMissingPoints,
	curve.ErrInvalidStep,
	geom.ErrNaN,
	geom.ErrTooManyCoords,
	sample.ErrInvalidCount,
	sample.ErrTooManyPoints,
	sampler.ErrNoMode,
	sampler.ErrBothModes,
	sampler.ErrNonFinite,
}

// Server exposes a domain.Sampler over HTTP.
type Server struct {
	sampler domain.Sampler
	log     *slog.Logger
	mux     *http.ServeMux
}

// New returns the vertexfxd handler.
func New(s domain.Sampler, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	srv := &Server{sampler: s, log: log, mux: http.NewServeMux()}
	srv.mux.HandleFunc("GET /healthz", srv.healthz)
	srv.mux.HandleFunc("GET /kinds", srv.kinds)
	srv.mux.HandleFunc("POST /sample", srv.sample)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.log.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
		"status", rec.status,
		"bytes", rec.bytes,
		"duration", time.Since(start),
	)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) kinds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, curve.Kinds())
}

func (s *Server) sample(w http.ResponseWriter, r *http.Request) {
	var req domain.SampleRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decode request"))
		return
	}

	res, err := s.sampler.Sample(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status >= 500 {
			s.log.Error("sample failed", "kind", req.Spec.Kind, "err", err)
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func statusFor(err error) int {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

type errorBody struct {
	Error string `json:"error"`
}

// writeJSON encodes v before sending the status, so an encoding failure
// still reaches the client as a 500 with an error body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(buf).Encode(errorBody{Error: errors.Wrap(err, "encode response").Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
