// Package watch reports changes to source files so a program can be run
// again after every save.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Op indicates a change operation on a watched file.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// String returns the names of the operations set in op.
func (op Op) String() string {
	names := []struct {
		op   Op
		name string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
		{OpChmod, "CHMOD"},
	}

	s := ""
	for _, n := range names {
		if op&n.op == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	if s == "" {
		return "NONE"
	}
	return s
}

// Event describes a change to a watched file.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher delivers change events for the files added to it.
type Watcher interface {
	Events() <-chan Event
	Errors() <-chan error
	Add(name string) error
	Close() error
}

// DefaultDebounce groups the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// New returns an OS-native watcher, falling back to polling at interval when
// native notifications are unavailable.
func New(interval time.Duration) Watcher {
	if fw, err := NewFSWatcher(); err == nil {
		return fw
	}
	return NewPollingWatcher(interval)
}

// File calls onChange after each modification of path until ctx is done or
// the watcher fails. Events arriving within debounce of each other trigger a
// single call.
func File(ctx context.Context, w Watcher, path string, debounce time.Duration, onChange func()) error {
	target := filepath.Clean(path)
	if err := w.Add(target); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Path) != target || ev.Op&(OpWrite|OpCreate) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", path, err)

		case <-fire:
			fire = nil
			onChange()
		}
	}
}
