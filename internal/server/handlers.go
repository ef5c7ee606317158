package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridio"
)

const maxBodyBytes = 8 << 20

func decode(w http.ResponseWriter, r *http.Request, v interface{ Validate() error }) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON: "+err.Error()))
		return false
	}
	if err := v.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
		return false
	}
	return true
}

// Solve handles POST /api/solve. With ?format=png the annotated grid is
// returned as an image instead of JSON.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if !decode(w, r, &req) {
		return
	}
	grid, err := req.Build(s.cfg.HTTP.MaxCells)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
		return
	}

	result, err := s.collector.Search(grid, *req.Start, *req.Goal)
	switch {
	case errors.Is(err, astar.ErrInvalidInput):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
		return
	case err != nil && !errors.Is(err, astar.ErrNoPath):
		s.logger.Error("solve failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	s.logger.Debug("solved",
		slog.Bool("found", result.Found),
		slog.Int("cost", result.Cost),
		slog.Int("expanded", result.Expanded))

	if r.URL.Query().Get("format") == "png" {
		img := result.Grid
		if img == nil {
			img = grid
		}
		w.Header().Set("Content-Type", "image/png")
		if err := gridio.WritePNG(w, img, s.cfg.Render.CellSize); err != nil {
			s.logger.Error("png encode failed", slog.String("error", err.Error()))
		}
		return
	}

	resp := SolveResponse{
		Found:    result.Found,
		Cost:     result.Cost,
		Expanded: result.Expanded,
		Route:    result.Route,
		Grid:     result.Grid,
	}
	if !result.Found {
		resp.Message = astar.ErrNoPath.Error()
	} else if req.Style != "" {
		style, _ := gridio.ParseStyle(req.Style)
		resp.Rendered = gridio.Renderer{Style: style}.String(result.Grid)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateSession handles POST /api/sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req GridRequest
	if !decode(w, r, &req) {
		return
	}
	grid, err := req.Build(s.cfg.HTTP.MaxCells)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
		return
	}
	stepper, err := astar.NewStepper(grid, *req.Start, *req.Goal)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
		return
	}
	id, err := s.sessions.create(stepper)
	if err != nil {
		writeJSON(w, http.StatusTooManyRequests, errorBody(err.Error()))
		return
	}
	s.collector.SessionOpened()
	s.logger.Debug("session created", slog.String("id", id))
	writeJSON(w, http.StatusCreated, SessionResponse{ID: id, Rows: grid.Rows()})
}

// GetSession handles GET /api/sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, sess.view(id))
}

// StepSession handles POST /api/sessions/{id}/step.
func (s *Server) StepSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, sess.step(id))
}

// DeleteSession handles DELETE /api/sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.remove(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
		return
	}
	s.collector.SessionClosed()
	w.WriteHeader(http.StatusNoContent)
}
