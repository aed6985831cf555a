// Package server exposes the theory core over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/store"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

var log = &logging.Log

const RequestIDHeader = "X-Request-Id"

// Server answers from whichever store was swapped in last.
type Server struct {
	mu    sync.RWMutex
	store *store.Store
}

func New(st *store.Store) *Server {
	return &Server{store: st}
}

func (s *Server) Store() *store.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// Swap installs a fully loaded store; in-flight requests keep the old one.
func (s *Server) Swap(st *store.Store) {
	s.mu.Lock()
	s.store = st
	s.mu.Unlock()
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/pitch", s.handlePitch).Methods(http.MethodGet)
	router.HandleFunc("/chords", s.handleNames(func(st *store.Store) []string { return st.ChordNames() })).Methods(http.MethodGet)
	router.HandleFunc("/scales", s.handleNames(func(st *store.Store) []string { return st.ScaleNames() })).Methods(http.MethodGet)
	router.HandleFunc("/tunings", s.handleNames(func(st *store.Store) []string { return st.TuningNames() })).Methods(http.MethodGet)
	router.HandleFunc("/chords/{name}", s.handleChord).Methods(http.MethodGet)
	router.HandleFunc("/scales/{name}", s.handleScale).Methods(http.MethodGet)
	router.HandleFunc("/inversion", s.handleInversion).Methods(http.MethodPost)
	router.HandleFunc("/interval", s.handleInterval).Methods(http.MethodGet)
	router.HandleFunc("/tunings/{name}/fingering", s.handleFingering).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		log.Debug().Str("request_id", id).Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

func statusFor(err error) int {
	switch theoryerr.Kind(err) {
	case theoryerr.ErrNotFound:
		return http.StatusNotFound
	case theoryerr.ErrInvalidName,
		theoryerr.ErrOutOfRange,
		theoryerr.ErrInvalidInterval,
		theoryerr.ErrInvalidFrequency,
		theoryerr.ErrInvalidArgument:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", w.Header().Get(RequestIDHeader)).Str("path", r.URL.Path).Msg("request failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("could not encode response")
	}
}

func intParam(r *http.Request, key string, fallback int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(theoryerr.ErrInvalidArgument, "%v=%q", key, v)
	}
	return n, nil
}

func (s *Server) handleNames(names func(*store.Store) []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.NamesResponse{Names: names(s.Store())})
	}
}
