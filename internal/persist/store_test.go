package persist

import (
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/scratchdock/schema"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Theme: "gruvbox",
		Dock: schema.DockSnapshot{
			Counter: 4,
			Focused: 0,
			Nodes: []schema.NodeSnapshot{
				{
					Kind:     schema.NodeLeaf,
					Selected: 1,
					Tabs: []schema.TabSnapshot{
						{ID: "Scratch 1", Name: "Scratch 1", Editor: "fn main() {}"},
						{ID: "Scratch 2-0-2", Name: "bench", Scroll: &schema.ScrollOffset{Y: 140}},
					},
				},
			},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	want := sampleSnapshot()
	if err := store.Save("default", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := store.Load("default")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Theme != want.Theme || got.Dock.Counter != want.Dock.Counter {
		t.Fatalf("snapshot changed: %+v", got)
	}
	tabs := got.Dock.Nodes[0].Tabs
	if len(tabs) != 2 || tabs[1].Name != "bench" {
		t.Fatalf("tabs lost: %+v", tabs)
	}
	if tabs[1].Scroll == nil || tabs[1].Scroll.Y != 140 {
		t.Fatalf("scroll lost: %+v", tabs[1].Scroll)
	}
	if tabs[0].Editor != "fn main() {}" {
		t.Fatalf("editor blob lost: %+v", tabs[0])
	}
}

func TestLoadMissingIsNotAnError(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	_, ok, err := store.Load("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestLoadCorruptSnapshotFails(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := store.Load("broken"); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestWorkspaceNamesAreSanitized(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Save("../escape", sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != ".._escape.json" {
		t.Fatalf("unexpected layout files: %v", entries)
	}
}

func TestNewStoreRejectsEmptyDir(t *testing.T) {
	if _, err := NewStore("  "); err == nil {
		t.Fatalf("expected error for blank directory")
	}
}
