package level

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a level file must stay quiet before its
// change is reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to level files in a directory. A file is reported
// once writes to it have stopped for the debounce period, on a buffered
// channel that the game loop drains without blocking.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	Events   chan string
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
}

func NewWatcher(dir string) (*Watcher, error) {
	return NewWatcherWithDebounce(dir, DefaultDebounce)
}

func NewWatcherWithDebounce(dir string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the next changed file, if any, without blocking.
func (w *Watcher) Poll() (string, bool) {
	select {
	case name := <-w.Events:
		return name, true
	default:
		return "", false
	}
}

func (w *Watcher) run() {
	pending := make(map[string]time.Time)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()
			timer.Reset(w.debounce)
		case <-timer.C:
			w.flush(pending)
			if len(pending) > 0 {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// flush reports every pending file that has been quiet for the debounce
// period and forgets it.
func (w *Watcher) flush(pending map[string]time.Time) {
	now := time.Now()
	for name, last := range pending {
		if now.Sub(last) < w.debounce {
			continue
		}
		delete(pending, name)
		select {
		case w.Events <- name:
		default:
		}
	}
}
