package watch

import (
	"context"
	"os"
	"time"
)

// PollingWatcher is a timestamp-based watcher portable across OSes. It is
// used where OS-native notifications are unavailable.
type PollingWatcher struct {
	interval time.Duration
	evCh     chan Event
	erCh     chan error
	ctx      context.Context
	stop     context.CancelFunc
}

// NewPollingWatcher creates a watcher that checks modification times every
// interval.
func NewPollingWatcher(interval time.Duration) *PollingWatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &PollingWatcher{
		interval: interval,
		evCh:     make(chan Event, 64),
		erCh:     make(chan error, 1),
		ctx:      ctx,
		stop:     cancel,
	}
}

func (w *PollingWatcher) Events() <-chan Event { return w.evCh }
func (w *PollingWatcher) Errors() <-chan error { return w.erCh }

func (w *PollingWatcher) Close() error {
	w.stop()
	return nil
}

// Add starts polling name. Changes made before Add are not reported.
func (w *PollingWatcher) Add(name string) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}

	go func(lastMod time.Time) {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				info, err := os.Stat(name)
				if err != nil {
					if os.IsNotExist(err) {
						// Editors may briefly remove the file while saving.
						continue
					}
					select {
					case w.erCh <- err:
					default:
					}
					continue
				}
				if info.ModTime().After(lastMod) {
					lastMod = info.ModTime()
					w.evCh <- Event{Path: name, Op: OpWrite, Time: time.Now()}
				}
			}
		}
	}(info.ModTime())

	return nil
}
