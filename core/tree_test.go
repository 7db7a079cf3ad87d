package core

import (
	"testing"

	"pkt.systems/scratchdock/schema"
)

func TestNewTreeHasFocusedDefaultTab(t *testing.T) {
	tr := newTree()
	if got := tr.NumTabs(); got != 1 {
		t.Fatalf("expected 1 tab, got %d", got)
	}
	active, ok := tr.ActiveTab()
	if !ok {
		t.Fatalf("expected an active tab")
	}
	if active.Name != schema.DefaultScratchName {
		t.Fatalf("expected default name, got %q", active.Name)
	}
	if active.ID != schema.TabID(schema.DefaultScratchName) {
		t.Fatalf("expected identity derived from default name, got %q", active.ID)
	}
}

func TestPushToFocusedLeafSelectsNewTab(t *testing.T) {
	tr := newTree()
	added := &tab{ID: "Scratch 2-0-2", Name: "Scratch 2"}
	if !tr.PushToFocusedLeaf(added) {
		t.Fatalf("push failed")
	}
	active, ok := tr.ActiveTab()
	if !ok || active.ID != added.ID {
		t.Fatalf("expected new tab active, got %+v", active)
	}
	if got := tr.NumTabs(); got != 2 {
		t.Fatalf("expected 2 tabs, got %d", got)
	}
}

func TestRemoveTabKeepsSelectionInBounds(t *testing.T) {
	tr := newTree()
	tr.PushToFocusedLeaf(&tab{ID: "b", Name: "b"})
	tr.PushToFocusedLeaf(&tab{ID: "c", Name: "c"})

	if _, ok := tr.RemoveTab(0, 2); !ok {
		t.Fatalf("expected removal of selected last tab")
	}
	active, ok := tr.ActiveTab()
	if !ok || active.ID != "b" {
		t.Fatalf("expected selection clamped to previous tab, got %+v", active)
	}
}

func TestRemoveTabRejectsStaleReferences(t *testing.T) {
	tr := newTree()
	if _, ok := tr.RemoveTab(5, 0); ok {
		t.Fatalf("expected invalid node to be rejected")
	}
	if _, ok := tr.RemoveTab(0, 3); ok {
		t.Fatalf("expected invalid tab index to be rejected")
	}
	if got := tr.NumTabs(); got != 1 {
		t.Fatalf("tree changed by stale removal: %d tabs", got)
	}
}

func TestSelectTabFocusesLeaf(t *testing.T) {
	tr := newTree()
	tr.PushToFocusedLeaf(&tab{ID: "b", Name: "b"})
	if !tr.SelectTab(0, 0) {
		t.Fatalf("select failed")
	}
	active, ok := tr.ActiveTab()
	if !ok || active.Name != schema.DefaultScratchName {
		t.Fatalf("expected first tab active, got %+v", active)
	}
}

func TestTreeSnapshotRoundTrip(t *testing.T) {
	tr := newTree()
	scroll := schema.ScrollOffset{X: 3, Y: 140}
	first, _ := tr.ActiveTab()
	first.Scroll = &scroll
	first.Editor = "fn main() {}"
	tr.PushToFocusedLeaf(&tab{ID: "Scratch 2-0-2", Name: "Renamed"})

	restored := treeFromSnapshot(tr.Snapshot(), tr.focused)
	if got := restored.NumTabs(); got != 2 {
		t.Fatalf("expected 2 tabs after round trip, got %d", got)
	}
	leaf, ok := restored.leaf(0)
	if !ok {
		t.Fatalf("expected leaf 0")
	}
	if leaf.tabs[0].ID != first.ID || leaf.tabs[0].Editor != "fn main() {}" {
		t.Fatalf("tab state lost: %+v", leaf.tabs[0])
	}
	if leaf.tabs[0].Scroll == nil || leaf.tabs[0].Scroll.Y != 140 {
		t.Fatalf("scroll offset lost: %+v", leaf.tabs[0].Scroll)
	}
	if leaf.tabs[1].Name != "Renamed" {
		t.Fatalf("rename lost: %+v", leaf.tabs[1])
	}
	active, ok := restored.ActiveTab()
	if !ok || active.ID != "Scratch 2-0-2" {
		t.Fatalf("focus lost: %+v", active)
	}
}

func TestTreeFromEmptySnapshotFallsBack(t *testing.T) {
	restored := treeFromSnapshot(nil, 0)
	if got := restored.NumTabs(); got != 1 {
		t.Fatalf("expected fallback default tree, got %d tabs", got)
	}
}
