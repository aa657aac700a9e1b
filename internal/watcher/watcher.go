// Package watcher reports changes to the file being viewed so the pager can
// reload it.
//
// The parent directory is watched rather than the file itself: editors that
// save by writing a temp file and renaming it over the original replace the
// inode, which silently ends a direct file watch.
package watcher

import (
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watched file was written, created or replaced.
type Event struct {
	Path string
	// Removed is set when the last event in the burst deleted or renamed
	// the file away.
	Removed bool
}

// Watch monitors path and sends an Event on the returned channel after each
// burst of changes settles for debounce. Call the returned stop function to
// tear down the watcher.
func Watch(path string, debounce time.Duration) (<-chan Event, func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, nil, err
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// Spread reloads across instances viewing the same file.
	jitterRange := int64(debounce / 2)

	go func() {
		defer close(ch)
		var (
			timer   *time.Timer
			removed bool
		)

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !relevant(abs, ev) {
					continue
				}
				removed = ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
				d := debounce
				if jitterRange > 0 {
					d += time.Duration(rand.Int64N(jitterRange))
				}
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{Path: abs, Removed: removed}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

func relevant(target string, ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(ev.Name) == target
}
