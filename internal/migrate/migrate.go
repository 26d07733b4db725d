// Package migrate folds the pre-upgrade cache layout into the current one.
//
// Versions before the layout change nested the cache one directory level
// below the override root, at $GOSCRIPT_HOME/.goscript. Migration moves
// its known contents (script-cache, binary-cache) up into $GOSCRIPT_HOME
// and removes the legacy directory once emptied. It runs once at tool
// startup, never merges directory contents, and never overwrites data:
// a copy that already exists at the new location is skipped and reported.
//
// Every run re-evaluates existence checks from scratch, so a run after a
// partial failure reaches the same end state without resumption markers.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goscript-cli/goscript/internal/config"
	"github.com/goscript-cli/goscript/internal/fsops"
)

// Mode selects whether a migration run mutates the filesystem.
// The sequence of decisions is identical in both modes for the same
// filesystem state; only the side effects differ.
type Mode int

const (
	// DryRun computes and reports every action without mutating anything.
	DryRun Mode = iota

	// ForReal performs the same actions for real.
	ForReal
)

// Report is the user-facing record of a migration run: one line per
// decision taken, in order. It is created fresh per run, returned to the
// caller, and never persisted.
//
// The report is deliberately not derived from the diagnostic log (or
// vice versa): the log is written before each attempt to help debug
// failures, the report after, to tell the user what actually happened.
type Report struct {
	Lines []string
}

// Add appends a formatted line to the report.
func (r *Report) Add(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// Empty reports whether the run had nothing to do.
func (r *Report) Empty() bool {
	return len(r.Lines) == 0
}

// Migrator detects and migrates a legacy cache layout.
type Migrator struct {
	env config.EnvProvider
	fs  fsops.FS
	log *logrus.Logger
}

// New creates a Migrator.
func New(env config.EnvProvider, fs fsops.FS, log *logrus.Logger) *Migrator {
	return &Migrator{env: env, fs: fs, log: log}
}

// Run executes one migration pass. The report is always returned, even
// when the run aborts on a filesystem failure; it then holds the
// decisions made up to that point.
func (m *Migrator) Run(mode Mode) (*Report, error) {
	report := &Report{}
	log := m.log.WithFields(logrus.Fields{
		"action":  "migrate",
		"run_id":  uuid.NewString(),
		"dry_run": mode == DryRun,
	})

	if !legacyNestingPossible {
		return report, nil
	}

	if err := m.migrateNestedLayout(mode, report, log); err != nil {
		return report, err
	}
	return report, nil
}

// migrateNestedLayout handles the $GOSCRIPT_HOME/.goscript layout.
func (m *Migrator) migrateNestedLayout(mode Mode, report *Report, log *logrus.Entry) error {
	home, ok := m.env.LookupEnv(config.HomeEnv)
	if !ok {
		return nil
	}

	legacyRoot := filepath.Join(home, config.LegacyDirName)
	exists, err := m.fs.Exists(legacyRoot)
	if err != nil {
		return fmt.Errorf("failed to check legacy directory %q: %w", legacyRoot, err)
	}
	if !exists {
		return nil
	}

	log.WithField("path", legacyRoot).Info("legacy cache directory exists; attempting migration")

	moved := make(map[string]bool)
	for _, name := range []string{config.ScriptCacheDir, config.BinaryCacheDir} {
		didMove, err := m.moveSubdir(mode, legacyRoot, home, name, report, log)
		if err != nil {
			return err
		}
		if didMove {
			moved[name] = true
		}
	}

	// A dry run records moves without performing them, so emptiness is
	// judged on what the directory would hold, keeping the decision the
	// same in both modes.
	entries, err := m.fs.ReadDir(legacyRoot)
	if err != nil {
		return fmt.Errorf("failed to read legacy directory %q: %w", legacyRoot, err)
	}
	residual := 0
	for _, entry := range entries {
		if !moved[entry.Name()] {
			residual++
		}
	}
	if residual == 0 {
		log.WithField("path", legacyRoot).Info("legacy directory is empty; removing")
		if mode == ForReal {
			if err := m.fs.Remove(legacyRoot); err != nil {
				return fmt.Errorf("failed to remove %q: %w", legacyRoot, err)
			}
		}
		report.Add("Removed empty directory %q", legacyRoot)
	} else {
		log.WithField("path", legacyRoot).Info("not removing legacy directory; not empty")
		report.Add("Not removing %q: not empty.", legacyRoot)
	}

	log.Info("done with migration")
	return nil
}

// moveSubdir migrates one known cache subdirectory, reporting whether
// the subdirectory was (or under DryRun would have been) moved. A copy
// already present at the new location is never touched; conflict
// avoidance here means refusing to move, not merging.
func (m *Migrator) moveSubdir(mode Mode, legacyRoot, newRoot, name string, report *Report, log *logrus.Entry) (bool, error) {
	oldPath := filepath.Join(legacyRoot, name)
	newPath := filepath.Join(newRoot, name)

	oldExists, err := m.fs.Exists(oldPath)
	if err != nil {
		return false, fmt.Errorf("failed to check %q: %w", oldPath, err)
	}
	newExists, err := m.fs.Exists(newPath)
	if err != nil {
		return false, fmt.Errorf("failed to check %q: %w", newPath, err)
	}

	switch {
	case oldExists && newExists:
		log.WithFields(logrus.Fields{"from": oldPath, "to": newPath}).Info("not migrating; already exists at new location")
		report.Add("Did not move %q: new location %q already exists.", oldPath, newPath)
	case oldExists:
		log.WithFields(logrus.Fields{"from": oldPath, "to": newPath}).Info("migrating")
		if mode == ForReal {
			if err := m.fs.Rename(oldPath, newPath); err != nil {
				return false, fmt.Errorf("failed to move %q to %q: %w", oldPath, newPath, err)
			}
		}
		report.Add("Moved %q to %q.", oldPath, newPath)
		return true, nil
	default:
		log.WithField("path", oldPath).Debug("not migrating; does not exist")
	}

	return false, nil
}
