// Package backup writes JSON snapshots of the training state to disk on a
// cron schedule and keeps the most recent ones.
package backup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meltforce/liftlog/internal/state"
	"github.com/robfig/cron/v3"
)

const filePrefix = "liftlog-"

// Exporter produces a consistent snapshot of the state.
type Exporter interface {
	Export() state.Snapshot
}

// Scheduler runs periodic backups.
type Scheduler struct {
	src  Exporter
	dir  string
	keep int
	log  *slog.Logger
	cron *cron.Cron
}

// New creates a Scheduler writing into dir and keeping at most keep files
// (keep <= 0 keeps everything).
func New(src Exporter, dir string, keep int, log *slog.Logger) *Scheduler {
	return &Scheduler{
		src:  src,
		dir:  dir,
		keep: keep,
		log:  log,
		cron: cron.New(),
	}
}

// Start schedules backups using a standard five-field cron spec.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		path, err := s.RunOnce()
		if err != nil {
			s.log.Error("backup failed", "error", err)
			return
		}
		s.log.Info("backup written", "path", path)
	}); err != nil {
		return fmt.Errorf("scheduling backup %q: %w", spec, err)
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running backup to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce writes one snapshot and prunes old ones. It returns the new file's path.
func (s *Scheduler) RunOnce() (string, error) {
	snap := s.src.Export()
	name := filePrefix + snap.CreatedAt.Format("20060102T150405Z") + "-" + snap.ID.String()[:8] + ".json"
	path := filepath.Join(s.dir, name)
	if err := WriteSnapshot(path, snap); err != nil {
		return "", err
	}
	if err := s.prune(); err != nil {
		s.log.Warn("pruning backups failed", "dir", s.dir, "error", err)
	}
	return path, nil
}

// List returns backup file paths, oldest first.
func (s *Scheduler) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(s.dir, e.Name()))
	}
	// Names embed a sortable UTC timestamp.
	sort.Strings(files)
	return files, nil
}

func (s *Scheduler) prune() error {
	if s.keep <= 0 {
		return nil
	}
	files, err := s.List()
	if err != nil {
		return err
	}
	for len(files) > s.keep {
		if err := os.Remove(files[0]); err != nil {
			return fmt.Errorf("removing %s: %w", files[0], err)
		}
		files = files[1:]
	}
	return nil
}

// WriteSnapshot writes snap as indented JSON, replacing path atomically.
func WriteSnapshot(path string, snap state.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) (state.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return state.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	var snap state.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return state.Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return snap, nil
}
