// Package state owns the user's persisted training state: calendar
// position, selected tab, 1RM profile and the set log. The in-memory copy
// is authoritative; the Store is a best-effort mirror.
package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
	"github.com/meltforce/liftlog/internal/storage"
)

// Persisted keys. The names match what the browser client stored in
// localStorage so exported data stays interchangeable.
const (
	KeyWeek  = "wl_week"
	KeyDay   = "wl_day"
	KeyOneRM = "wl_1rm"
	KeyLog   = "wl_log_v2"
	KeyTab   = "wl_tab"
)

// load decodes key into a T. A missing key, read error or malformed
// value yields def; corruption is logged and never surfaced.
func load[T any](ctx context.Context, store storage.Store, log *slog.Logger, key string, def T) T {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn("state read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Debug("state value malformed, using default", "key", key, "error", err)
		return def
	}
	return v
}

func loadState(ctx context.Context, store storage.Store, log *slog.Logger) State {
	st := State{
		Week: load(ctx, store, log, KeyWeek, 1),
		Day:  load(ctx, store, log, KeyDay, 1),
		Tab:  load(ctx, store, log, KeyTab, models.TabWorkout),
	}
	if st.Week < 1 || st.Week > program.Weeks {
		st.Week = 1
	}
	if st.Day < 1 || st.Day > program.DaysPerWeek {
		st.Day = 1
	}
	if !st.Tab.Valid() {
		st.Tab = models.TabWorkout
	}

	raw := load(ctx, store, log, KeyOneRM, map[string]float64(nil))
	if raw == nil {
		st.OneRM = models.DefaultOneRM()
	} else {
		st.OneRM = sanitizeOneRM(raw)
	}

	st.Logs = load(ctx, store, log, KeyLog, models.LogStore{})
	if st.Logs == nil {
		st.Logs = models.LogStore{}
	}
	return st
}

// sanitizeOneRM keeps known lifts with finite, non-negative values.
func sanitizeOneRM(raw map[string]float64) models.OneRMProfile {
	out := models.OneRMProfile{}
	for k, v := range raw {
		lift, err := program.ParseLift(k)
		if err != nil {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			v = 0
		}
		out[lift] = v
	}
	return out
}
