package core

import "pkt.systems/scratchdock/schema"

// tab tracks one scratch buffer's dock state. Editor is the opaque state
// blob owned by the editor collaborator; the dock round-trips it through
// persistence without interpreting it. The identity stays stable across
// renames so per-tab caches and scroll offsets remain valid.
type tab struct {
	ID     schema.TabID
	Name   schema.TabName
	Editor string
	Scroll *schema.ScrollOffset
}

func defaultTab() *tab {
	return &tab{
		ID:   schema.TabID(schema.DefaultScratchName),
		Name: schema.DefaultScratchName,
	}
}

// Snapshot returns a persistence-friendly view of the tab.
func (t *tab) Snapshot() schema.TabSnapshot {
	snap := schema.TabSnapshot{
		ID:     t.ID,
		Name:   t.Name,
		Editor: t.Editor,
	}
	if t.Scroll != nil {
		scroll := *t.Scroll
		snap.Scroll = &scroll
	}
	return snap
}

func tabFromSnapshot(snap schema.TabSnapshot) *tab {
	t := &tab{
		ID:     snap.ID,
		Name:   snap.Name,
		Editor: snap.Editor,
	}
	if snap.Scroll != nil {
		scroll := *snap.Scroll
		t.Scroll = &scroll
	}
	return t
}
