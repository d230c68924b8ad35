package mcp

import (
	"context"
	"fmt"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
	"github.com/meltforce/liftlog/internal/state"
)

// DataSource abstracts the training state for MCP tools. Both Local
// (in-process) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	Program(ctx context.Context) (program.Program, error)
	Week(ctx context.Context, week int) (program.Week, error)
	SessionView(ctx context.Context, week, day int) (state.SessionView, error)
	Position(ctx context.Context) (state.Position, error)
	SetPosition(ctx context.Context, week, day int, tab models.Tab) (state.Position, error)
	OneRM(ctx context.Context) (models.OneRMProfile, error)
	PatchMainRow(ctx context.Context, week, day, row int, p state.MainRowPatch) (state.SessionView, error)
	PatchAccessory(ctx context.Context, week, day, idx int, p state.AccessoryPatch) (state.SessionView, error)
	Report(ctx context.Context) (state.Report, error)
}

// Local serves tools straight from a state.Service.
type Local struct {
	svc *state.Service
}

// Compile-time check: Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

// NewLocal wraps svc.
func NewLocal(svc *state.Service) *Local {
	return &Local{svc: svc}
}

func (l *Local) Program(context.Context) (program.Program, error) {
	return l.svc.Program(), nil
}

func (l *Local) Week(_ context.Context, week int) (program.Week, error) {
	wk, ok := l.svc.Program().Week(week)
	if !ok {
		return program.Week{}, fmt.Errorf("week %d: %w", week, state.ErrNoSession)
	}
	return wk, nil
}

func (l *Local) SessionView(_ context.Context, week, day int) (state.SessionView, error) {
	return l.svc.SessionView(week, day)
}

func (l *Local) Position(context.Context) (state.Position, error) {
	return l.svc.Position(), nil
}

func (l *Local) SetPosition(ctx context.Context, week, day int, tab models.Tab) (state.Position, error) {
	return l.svc.SetPosition(ctx, week, day, tab), nil
}

func (l *Local) OneRM(context.Context) (models.OneRMProfile, error) {
	return l.svc.OneRM(), nil
}

func (l *Local) PatchMainRow(ctx context.Context, week, day, row int, p state.MainRowPatch) (state.SessionView, error) {
	return l.svc.PatchMainRow(ctx, week, day, row, p)
}

func (l *Local) PatchAccessory(ctx context.Context, week, day, idx int, p state.AccessoryPatch) (state.SessionView, error) {
	return l.svc.PatchAccessory(ctx, week, day, idx, p)
}

func (l *Local) Report(context.Context) (state.Report, error) {
	return l.svc.Report(), nil
}
