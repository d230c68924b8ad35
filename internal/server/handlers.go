package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
	"github.com/meltforce/liftlog/internal/state"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Program())
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	week, ok := pathInt(w, r, "week")
	if !ok {
		return
	}
	wk, found := s.svc.Program().Week(week)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("week %d not found", week)})
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	week, ok := pathInt(w, r, "week")
	if !ok {
		return
	}
	day, ok := pathInt(w, r, "day")
	if !ok {
		return
	}
	view, err := s.svc.SessionView(week, day)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Position())
}

type positionRequest struct {
	Week models.Num `json:"week"`
	Day  models.Num `json:"day"`
	Tab  models.Tab `json:"tab"`
}

func (s *Server) handleSetPosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pos := s.svc.SetPosition(r.Context(), req.Week.Int(), req.Day.Int(), req.Tab)
	writeJSON(w, http.StatusOK, pos)
}

func (s *Server) handleOneRM(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.OneRM())
}

func (s *Server) handleSetOneRM(w http.ResponseWriter, r *http.Request) {
	var req map[string]models.Num
	if !decodeJSON(w, r, &req) {
		return
	}
	updates := make(map[program.Lift]float64, len(req))
	for name, v := range req {
		lift, err := program.ParseLift(name)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		updates[lift] = v.NonNegative()
	}
	writeJSON(w, http.StatusOK, s.svc.UpdateOneRM(r.Context(), updates))
}

type mainRowRequest struct {
	SetWeights []models.Num `json:"setWeights"`
	Set        *int         `json:"set"`
	Weight     *models.Num  `json:"weight"`
	Notes      *string      `json:"notes"`
}

func (s *Server) handleLogMain(w http.ResponseWriter, r *http.Request) {
	week, day, ok := pathSession(w, r)
	if !ok {
		return
	}
	row, ok := pathInt(w, r, "row")
	if !ok {
		return
	}
	var req mainRowRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := state.MainRowPatch{Set: req.Set, Notes: req.Notes}
	if req.SetWeights != nil {
		patch.SetWeights = make([]float64, len(req.SetWeights))
		for i, v := range req.SetWeights {
			patch.SetWeights[i] = v.NonNegative()
		}
	}
	if req.Weight != nil {
		v := req.Weight.NonNegative()
		patch.Weight = &v
	}

	view, err := s.svc.PatchMainRow(r.Context(), week, day, row, patch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type accessoryRequest struct {
	Weight        *models.Num   `json:"weight"`
	Reps          *program.Reps `json:"reps"`
	SetsCompleted *models.Num   `json:"setsCompleted"`
}

func (s *Server) handleLogAccessory(w http.ResponseWriter, r *http.Request) {
	week, day, ok := pathSession(w, r)
	if !ok {
		return
	}
	idx, ok := pathInt(w, r, "idx")
	if !ok {
		return
	}
	var req accessoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := state.AccessoryPatch{Reps: req.Reps}
	if req.Weight != nil {
		v := req.Weight.NonNegative()
		patch.Weight = &v
	}
	if req.SetsCompleted != nil {
		n := models.Num(req.SetsCompleted.NonNegative()).Int()
		patch.SetsCompleted = &n
	}

	view, err := s.svc.PatchAccessory(r.Context(), week, day, idx, patch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Report())
}

func (s *Server) handleTimer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.rest.Snapshot())
}

func (s *Server) handleTimerAction(action func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action()
		writeJSON(w, http.StatusOK, s.rest.Snapshot())
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snap := s.svc.Export()
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="liftlog-%s.json"`, snap.CreatedAt.Format("20060102T150405Z")))
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var snap state.Snapshot
	if !decodeJSON(w, r, &snap) {
		return
	}
	if err := s.svc.Import(r.Context(), snap); err != nil {
		if errors.Is(err, state.ErrInvalidSnapshot) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.log.Error("import error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Position())
}

// writeError maps service errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, state.ErrNoSession):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, state.ErrIndexOutOfRange):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// pathInt parses an integer URL parameter, writing a 400 when it is not one.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

func pathSession(w http.ResponseWriter, r *http.Request) (week, day int, ok bool) {
	if week, ok = pathInt(w, r, "week"); !ok {
		return 0, 0, false
	}
	if day, ok = pathInt(w, r, "day"); !ok {
		return 0, 0, false
	}
	return week, day, true
}
