package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"fedtransfers-backend/services/transfers"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/transfers/server")

// Server exposes read-only projection queries over a dataset. The
// dataset is held behind an atomic pointer: a refresh builds a whole
// new dataset and swaps it in one publish, so queries never observe a
// partially refreshed mix.
type Server struct {
	dataset atomic.Pointer[transfers.Dataset]
}

func New(dataset transfers.Dataset) *Server {
	s := &Server{}
	s.dataset.Store(&dataset)
	return s
}

// Swap publishes a freshly built dataset.
func (s *Server) Swap(dataset transfers.Dataset) {
	s.dataset.Store(&dataset)
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/projection", s.handleProjection)
	mux.HandleFunc("GET /v1/years", s.handleYears)
	mux.HandleFunc("GET /v1/components", s.handleComponents)
	mux.HandleFunc("GET /v1/jurisdictions", s.handleJurisdictions)
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleProjection")
	defer span.End()

	query := r.URL.Query()
	year := query.Get("year")

	// no components parameter means all of them; an explicitly empty
	// parameter is a legal empty subset
	components := transfers.Components
	if raw, ok := query["components"]; ok {
		components = []string{}
		for _, chunk := range raw {
			for _, c := range strings.Split(chunk, ",") {
				c = strings.TrimSpace(c)
				if c != "" {
					components = append(components, c)
				}
			}
		}
	}

	includeAggregate := true
	if v := query.Get("aggregate"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "aggregate must be a boolean")
			return
		}
		includeAggregate = parsed
	}

	rows, err := transfers.Project(*s.dataset.Load(), year, components, includeAggregate)
	if err != nil {
		var invalidYear *transfers.InvalidYearError
		if errors.As(err, &invalidYear) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(ctx, "projection failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJson(w, rows)
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	writeJson(w, transfers.FiscalYears)
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	writeJson(w, transfers.Components)
}

func (s *Server) handleJurisdictions(w http.ResponseWriter, r *http.Request) {
	writeJson(w, s.dataset.Load().Jurisdictions())
}

func writeJson(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]string{"error": message})
	if err != nil {
		slog.Error("failed to encode error response", "err", err)
	}
}
