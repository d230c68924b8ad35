package state

import (
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
	"github.com/meltforce/liftlog/internal/progress"
)

// RowView is a main-lift scheme row as displayed: its prescription, the
// estimated target load and the logged weights reconciled to its sets.
type RowView struct {
	program.SchemeRow
	Target     float64   `json:"target"`
	SetWeights []float64 `json:"setWeights"`
	Notes      string    `json:"notes,omitempty"`
}

// SessionView is everything needed to render one session.
type SessionView struct {
	Week     int             `json:"week"`
	Session  program.Session `json:"session"`
	OneRM    float64         `json:"oneRM"`
	Rows     []RowView       `json:"rows"`
	Log      models.DayLog   `json:"log"`
	Progress progress.Result `json:"progress"`
}

// SessionView returns the view for week/day.
func (s *Service) SessionView(week, day int) (SessionView, error) {
	sess, ok := s.prog.Session(week, day)
	if !ok {
		return SessionView{}, ErrNoSession
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked(week, day, sess), nil
}

// viewLocked builds a view; the caller holds s.mu.
func (s *Service) viewLocked(week, day int, sess program.Session) SessionView {
	dl := s.st.Logs.Day(week, day)
	rm := s.st.OneRM.Get(sess.Main.Lift)

	rows := make([]RowView, len(sess.Main.Scheme))
	for i, r := range sess.Main.Scheme {
		logged := dl.Main[i]
		rows[i] = RowView{
			SchemeRow:  r,
			Target:     program.TargetLoad(rm, r),
			SetWeights: program.ReconcileSetWeights(logged.SetWeights, r.Sets),
			Notes:      logged.Notes,
		}
	}

	return SessionView{
		Week:     week,
		Session:  sess,
		OneRM:    rm,
		Rows:     rows,
		Log:      dl,
		Progress: progress.Session(sess, dl),
	}
}

// Report is the selected session's completion alongside program-wide totals.
type Report struct {
	Position Position         `json:"position"`
	Session  progress.Result  `json:"session"`
	Program  progress.Summary `json:"program"`
}

// Report returns progress for the selected position and the whole program.
func (s *Service) Report() Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := Report{
		Position: Position{Tab: s.st.Tab, Position: progress.Overall(s.st.Week, s.st.Day)},
		Program:  progress.Program(s.prog, s.st.Logs),
	}
	if sess, ok := s.prog.Session(s.st.Week, s.st.Day); ok {
		r.Session = progress.Session(sess, s.st.Logs.Day(s.st.Week, s.st.Day))
	}
	return r
}
