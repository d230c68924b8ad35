package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
	"github.com/meltforce/liftlog/internal/progress"
	"github.com/meltforce/liftlog/internal/storage"
)

var (
	// ErrNoSession is returned for a week/day outside the program.
	ErrNoSession = errors.New("no such session")
	// ErrIndexOutOfRange is returned when writing a row the session does not have.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidSnapshot is returned by Import for snapshots that cannot be restored.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// State is the full persisted state.
type State struct {
	Week  int                 `json:"week"`
	Day   int                 `json:"day"`
	Tab   models.Tab          `json:"tab"`
	OneRM models.OneRMProfile `json:"oneRM"`
	Logs  models.LogStore     `json:"logs"`
}

// Position is the selected session plus its calendar progress.
type Position struct {
	Tab models.Tab `json:"tab"`
	progress.Position
}

// Service serializes access to the state and mirrors changes to a Store.
type Service struct {
	prog  program.Program
	store storage.Store
	log   *slog.Logger

	mu          sync.RWMutex
	st          State
	onSetLogged func()
}

// NewService loads persisted state from store. Unreadable or corrupt
// values fall back to defaults; NewService itself never fails.
func NewService(ctx context.Context, prog program.Program, store storage.Store, log *slog.Logger) *Service {
	return &Service{
		prog:  prog,
		store: store,
		log:   log,
		st:    loadState(ctx, store, log),
	}
}

// Program returns the program the service was built with.
func (s *Service) Program() program.Program {
	return s.prog
}

// OnSetLogged registers fn to run whenever a main-lift weight is logged.
func (s *Service) OnSetLogged(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSetLogged = fn
}

// Position returns the selected week, day and tab.
func (s *Service) Position() Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Position{Tab: s.st.Tab, Position: progress.Overall(s.st.Week, s.st.Day)}
}

// SetPosition selects a session. Weeks are clamped to the program, a day
// outside 1..4 resets to 1, and an unknown tab leaves the tab unchanged.
func (s *Service) SetPosition(ctx context.Context, week, day int, tab models.Tab) Position {
	week = max(1, min(week, program.Weeks))
	if day < 1 || day > program.DaysPerWeek {
		day = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Week, s.st.Day = week, day
	if tab.Valid() {
		s.st.Tab = tab
	}
	s.persist(ctx, KeyWeek, s.st.Week)
	s.persist(ctx, KeyDay, s.st.Day)
	s.persist(ctx, KeyTab, s.st.Tab)
	return Position{Tab: s.st.Tab, Position: progress.Overall(s.st.Week, s.st.Day)}
}

// OneRM returns a copy of the 1RM profile.
func (s *Service) OneRM() models.OneRMProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.st.OneRM)
}

// UpdateOneRM merges updates into the profile. Negative values become 0.
func (s *Service) UpdateOneRM(ctx context.Context, updates map[program.Lift]float64) models.OneRMProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	for lift, v := range updates {
		s.st.OneRM[lift] = max(v, 0)
	}
	s.persist(ctx, KeyOneRM, s.st.OneRM)
	return maps.Clone(s.st.OneRM)
}

// Logs returns a deep copy of the whole log store.
func (s *Service) Logs() models.LogStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLogs(s.st.Logs)
}

// MainRowPatch updates a main-lift log row. SetWeights replaces all
// weights; Set/Weight updates a single set (0-based); Notes replaces notes.
type MainRowPatch struct {
	SetWeights []float64
	Set        *int
	Weight     *float64
	Notes      *string
}

// PatchMainRow merges p into the log row and returns the updated view.
// Stored weights are reconciled to the row's prescribed set count.
func (s *Service) PatchMainRow(ctx context.Context, week, day, row int, p MainRowPatch) (SessionView, error) {
	sess, ok := s.prog.Session(week, day)
	if !ok {
		return SessionView{}, ErrNoSession
	}
	if row < 0 || row >= len(sess.Main.Scheme) {
		return SessionView{}, fmt.Errorf("main row %d: %w", row, ErrIndexOutOfRange)
	}
	sets := sess.Main.Scheme[row].Sets
	if p.Set != nil && (*p.Set < 0 || *p.Set >= sets) {
		return SessionView{}, fmt.Errorf("set %d: %w", *p.Set, ErrIndexOutOfRange)
	}

	s.mu.Lock()
	dl := s.st.Logs.Day(week, day)
	cur := dl.Main[row]
	weights := program.ReconcileSetWeights(cur.SetWeights, sets)
	logged := false
	if p.SetWeights != nil {
		weights = program.ReconcileSetWeights(p.SetWeights, sets)
		for i, w := range weights {
			weights[i] = max(w, 0)
			logged = logged || weights[i] > 0
		}
	}
	if p.Set != nil && p.Weight != nil {
		weights[*p.Set] = max(*p.Weight, 0)
		logged = logged || weights[*p.Set] > 0
	}
	cur.SetWeights = weights
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	dl.Main[row] = cur
	s.st.Logs[models.DayKey(week, day)] = dl
	s.persist(ctx, KeyLog, s.st.Logs)
	notify := s.onSetLogged
	view := s.viewLocked(week, day, sess)
	s.mu.Unlock()

	if logged && notify != nil {
		notify()
	}
	return view, nil
}

// AccessoryPatch updates an accessory log row; nil fields are left as is.
type AccessoryPatch struct {
	Weight        *float64
	Reps          *program.Reps
	SetsCompleted *int
}

// PatchAccessory merges p into the accessory log row and returns the updated view.
func (s *Service) PatchAccessory(ctx context.Context, week, day, idx int, p AccessoryPatch) (SessionView, error) {
	sess, ok := s.prog.Session(week, day)
	if !ok {
		return SessionView{}, ErrNoSession
	}
	if idx < 0 || idx >= len(sess.Accessories) {
		return SessionView{}, fmt.Errorf("accessory %d: %w", idx, ErrIndexOutOfRange)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dl := s.st.Logs.Day(week, day)
	cur := dl.Accessories[idx]
	if p.Weight != nil {
		w := max(*p.Weight, 0)
		cur.Weight = &w
	}
	if p.Reps != nil {
		r := *p.Reps
		cur.Reps = &r
	}
	if p.SetsCompleted != nil {
		n := max(*p.SetsCompleted, 0)
		cur.SetsCompleted = &n
	}
	dl.Accessories[idx] = cur
	s.st.Logs[models.DayKey(week, day)] = dl
	s.persist(ctx, KeyLog, s.st.Logs)
	return s.viewLocked(week, day, sess), nil
}

// Snapshot is an exported copy of the full state.
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	State
}

// Export returns a consistent snapshot of the state.
func (s *Service) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.st
	st.OneRM = maps.Clone(s.st.OneRM)
	st.Logs = cloneLogs(s.st.Logs)
	return Snapshot{ID: uuid.New(), CreatedAt: time.Now().UTC(), State: st}
}

// Import replaces the whole state with snap and writes every key. Unlike
// mirror writes, store failures are returned so a restore is not silently lost.
func (s *Service) Import(ctx context.Context, snap Snapshot) error {
	st := snap.State
	if st.Week < 1 || st.Week > program.Weeks {
		st.Week = 1
	}
	if st.Day < 1 || st.Day > program.DaysPerWeek {
		st.Day = 1
	}
	if !st.Tab.Valid() {
		st.Tab = models.TabWorkout
	}
	if st.OneRM == nil {
		st.OneRM = models.DefaultOneRM()
	}
	if st.Logs == nil {
		st.Logs = models.LogStore{}
	}
	for key := range st.Logs {
		if _, _, err := models.ParseDayKey(key); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = State{Week: st.Week, Day: st.Day, Tab: st.Tab, OneRM: maps.Clone(st.OneRM), Logs: cloneLogs(st.Logs)}
	for key, v := range map[string]any{
		KeyWeek: s.st.Week, KeyDay: s.st.Day, KeyTab: s.st.Tab, KeyOneRM: s.st.OneRM, KeyLog: s.st.Logs,
	} {
		if err := s.write(ctx, key, v); err != nil {
			return fmt.Errorf("importing snapshot %s: %w", snap.ID, err)
		}
	}
	s.log.Info("state imported", "snapshot", snap.ID, "days_logged", len(s.st.Logs))
	return nil
}

// persist mirrors v to the store. Failures are logged, not returned: the
// in-memory state stays authoritative.
func (s *Service) persist(ctx context.Context, key string, v any) {
	if err := s.write(ctx, key, v); err != nil {
		s.log.Warn("state mirror write failed", "key", key, "error", err)
	}
}

func (s *Service) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.store.Set(ctx, key, string(data))
}

func cloneLogs(in models.LogStore) models.LogStore {
	out := make(models.LogStore, len(in))
	for k, d := range in {
		out[k] = d.Clone()
	}
	return out
}
