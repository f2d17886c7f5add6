package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce drops repeated events for one file that editors emit per save.
const debounce = 100 * time.Millisecond

// ChangeKind says what an edited file feeds.
type ChangeKind int

const (
	ChangeTuning ChangeKind = iota
	ChangeScript
)

func (k ChangeKind) String() string {
	if k == ChangeScript {
		return "script"
	}
	return "tuning"
}

// Change is one edited prefab or script file.
type Change struct {
	Path string
	Kind ChangeKind
}

// Name is the file name without its directory.
func (c Change) Name() string {
	return filepath.Base(c.Path)
}

// Watcher reports edited tuning and script files. A single goroutine feeds
// Events; the game loop drains them with Poll between frames.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Poll returns the changes queued since the last call, one per path, without
// blocking.
func (w *Watcher) Poll() []Change {
	var changes []Change
	seen := make(map[string]bool)
	for {
		select {
		case c, ok := <-w.Events:
			if !ok {
				return changes
			}
			if seen[c.Path] {
				continue
			}
			seen[c.Path] = true
			changes = append(changes, c)
		default:
			return changes
		}
	}
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	lastSeen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			c, ok := classify(ev)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := lastSeen[c.Path]; seen && now.Sub(t) < debounce {
				continue
			}
			lastSeen[c.Path] = now
			select {
			case w.Events <- c:
			case <-w.stop:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

// classify keeps writes to tuning and script files. Removals are dropped so
// a save-by-rename does not reload a missing file.
func classify(ev fsnotify.Event) (Change, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return Change{}, false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml":
		return Change{Path: ev.Name, Kind: ChangeTuning}, true
	case ".tengo":
		return Change{Path: ev.Name, Kind: ChangeScript}, true
	default:
		return Change{}, false
	}
}
