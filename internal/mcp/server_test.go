package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
	"github.com/meltforce/liftlog/internal/state"
	"github.com/meltforce/liftlog/internal/storage"
)

func newTestHandlers(t *testing.T) (*handlers, *state.Service) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := state.NewService(context.Background(), program.Build(), storage.NewMemory(), log)
	return &handlers{ds: NewLocal(svc), log: log}, svc
}

func call(t *testing.T, fn func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := fn(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return res
}

func resultJSON[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	if res.IsError {
		t.Fatalf("tool returned error: %+v", res.Content)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want TextContent", res.Content[0])
	}
	var v T
	if err := json.Unmarshal([]byte(text.Text), &v); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return v
}

// TestNewRegistersEverything verifies the server builds with all tools and resources.
func TestNewRegistersEverything(t *testing.T) {
	h, svc := newTestHandlers(t)
	s := New(NewLocal(svc), "test", h.log)
	if s == nil {
		t.Fatal("New returned nil")
	}
}

// TestGetSessionDefaultsToPosition verifies get_session without arguments
// returns the selected session.
func TestGetSessionDefaultsToPosition(t *testing.T) {
	h, svc := newTestHandlers(t)
	svc.SetPosition(context.Background(), 2, 4, models.TabWorkout)

	v := resultJSON[state.SessionView](t, call(t, h.getSession, nil))
	if v.Week != 2 || v.Session.Day != 4 || v.Session.Main.Lift != program.BenchPress {
		t.Errorf("session = week %d day %d %q, want week 2 day 4 Bench Press", v.Week, v.Session.Day, v.Session.Main.Lift)
	}

	v = resultJSON[state.SessionView](t, call(t, h.getSession, map[string]any{"week": 1.0, "day": 3.0}))
	if v.Session.Main.Lift != program.CleanJerk {
		t.Errorf("lift = %q, want Clean & Jerk", v.Session.Main.Lift)
	}
}

// TestGetSessionOutOfRange verifies a missing session is a tool error, not a failure.
func TestGetSessionOutOfRange(t *testing.T) {
	h, _ := newTestHandlers(t)
	res := call(t, h.getSession, map[string]any{"week": 11.0, "day": 1.0})
	if !res.IsError {
		t.Error("expected tool error for week 11")
	}
}

// TestGetWeekRequiresWeek verifies the required parameter is enforced.
func TestGetWeekRequiresWeek(t *testing.T) {
	h, _ := newTestHandlers(t)
	if res := call(t, h.getWeek, nil); !res.IsError {
		t.Error("expected tool error without week")
	}
	wk := resultJSON[program.Week](t, call(t, h.getWeek, map[string]any{"week": 3.0}))
	if wk.SquatType != program.BackSquat || len(wk.Days) != program.DaysPerWeek {
		t.Errorf("week 3 = %+v", wk)
	}
}

// TestSetPositionTool verifies clamping through the tool.
func TestSetPositionTool(t *testing.T) {
	h, _ := newTestHandlers(t)
	pos := resultJSON[state.Position](t, call(t, h.setPosition, map[string]any{"week": 15.0, "day": 0.0}))
	if pos.Week != 10 || pos.Day != 1 {
		t.Errorf("position = %+v, want week 10 day 1", pos)
	}
}

// TestLogMainSetTool verifies a logged set appears in the returned view.
func TestLogMainSetTool(t *testing.T) {
	h, svc := newTestHandlers(t)
	notified := false
	svc.OnSetLogged(func() { notified = true })

	v := resultJSON[state.SessionView](t, call(t, h.logMainSet, map[string]any{
		"week": 1.0, "day": 1.0, "row": 0.0, "set": 0.0, "weight": 37.5, "notes": "easy",
	}))
	if v.Rows[0].SetWeights[0] != 37.5 || v.Rows[0].Notes != "easy" {
		t.Errorf("row = %+v", v.Rows[0])
	}
	if !notified {
		t.Error("set-logged callback not invoked")
	}

	res := call(t, h.logMainSet, map[string]any{"week": 1.0, "day": 1.0, "row": 0.0, "set": 7.0, "weight": 40.0})
	if !res.IsError {
		t.Error("expected tool error for set 7")
	}
}

// TestLogAccessoryTool verifies only the supplied fields are written.
func TestLogAccessoryTool(t *testing.T) {
	h, _ := newTestHandlers(t)
	call(t, h.logAccessory, map[string]any{"week": 1.0, "day": 1.0, "index": 1.0, "reps": "10"})
	v := resultJSON[state.SessionView](t, call(t, h.logAccessory, map[string]any{
		"week": 1.0, "day": 1.0, "index": 1.0, "sets_completed": 3.0,
	}))
	row := v.Log.Accessories[1]
	if row.Weight != nil {
		t.Errorf("weight = %v, want unset", *row.Weight)
	}
	if row.Reps == nil || row.Reps.String() != "10" || row.Completed() != 3 {
		t.Errorf("accessory row = %+v", row)
	}
}

// TestEstimateLoadTool verifies explicit and profile-based 1RMs.
func TestEstimateLoadTool(t *testing.T) {
	h, _ := newTestHandlers(t)

	got := resultJSON[map[string]any](t, call(t, h.estimateLoad, map[string]any{"lift": "Snatch", "percent": 80.0}))
	if got["load"] != 55.0 {
		t.Errorf("load = %v, want 55 (80%% of 70)", got["load"])
	}

	got = resultJSON[map[string]any](t, call(t, h.estimateLoad, map[string]any{"lift": "Deadlift", "percent": 75.0, "one_rm": 201.0}))
	if got["load"] != 150.0 {
		t.Errorf("load = %v, want 150", got["load"])
	}

	if res := call(t, h.estimateLoad, map[string]any{"lift": "Curl", "percent": 50.0}); !res.IsError {
		t.Error("expected tool error for unknown lift")
	}
}

// TestResources verifies each resource returns JSON for its URI.
func TestResources(t *testing.T) {
	h, _ := newTestHandlers(t)
	for uri, fn := range map[string]func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error){
		"liftlog://program": h.programResource,
		"liftlog://today":   h.todayResource,
		"liftlog://one_rm":  h.oneRMResource,
	} {
		var req mcp.ReadResourceRequest
		req.Params.URI = uri
		contents, err := fn(context.Background(), req)
		if err != nil {
			t.Fatalf("%s: %v", uri, err)
		}
		text, ok := contents[0].(mcp.TextResourceContents)
		if !ok || text.URI != uri || !json.Valid([]byte(text.Text)) {
			t.Errorf("%s: contents = %+v", uri, contents[0])
		}
	}
}
