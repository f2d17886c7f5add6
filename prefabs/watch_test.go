package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatcherReportsTuningWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PlayerFile), []byte("name: player\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case c := <-w.Events:
		if c.Name() != PlayerFile || c.Kind != ChangeTuning {
			t.Fatalf("expected a tuning change to %s, got %+v", PlayerFile, c)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the write event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if changes := w.Poll(); len(changes) != 0 {
		t.Fatalf("expected nothing after close, got %v", changes)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		want Change
		ok   bool
	}{
		{name: "yaml write", ev: fsnotify.Event{Name: "p/player.yaml", Op: fsnotify.Write}, want: Change{Path: "p/player.yaml", Kind: ChangeTuning}, ok: true},
		{name: "yml create", ev: fsnotify.Event{Name: "a.YML", Op: fsnotify.Create}, want: Change{Path: "a.YML", Kind: ChangeTuning}, ok: true},
		{name: "script", ev: fsnotify.Event{Name: "s/vault.tengo", Op: fsnotify.Write}, want: Change{Path: "s/vault.tengo", Kind: ChangeScript}, ok: true},
		{name: "remove", ev: fsnotify.Event{Name: "player.yaml", Op: fsnotify.Remove}},
		{name: "other file", ev: fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classify(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("classify(%v) = %+v, %v; want %+v, %v", tt.ev, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPollDeduplicatesPaths(t *testing.T) {
	w := &Watcher{Events: make(chan Change, 4)}
	w.Events <- Change{Path: "a.yaml"}
	w.Events <- Change{Path: "a.yaml"}
	w.Events <- Change{Path: "b.tengo", Kind: ChangeScript}

	changes := w.Poll()
	if len(changes) != 2 || changes[0].Path != "a.yaml" || changes[1].Path != "b.tengo" {
		t.Fatalf("unexpected changes %v", changes)
	}
	if again := w.Poll(); len(again) != 0 {
		t.Fatalf("expected an empty queue, got %v", again)
	}
}
