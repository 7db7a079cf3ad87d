package core

import "pkt.systems/scratchdock/schema"

// node is one slot in the dock tree. Splits reference their children
// implicitly through the heap layout.
type node struct {
	kind     schema.NodeKind
	fraction float64
	tabs     []*tab
	selected int
}

// tree is the dock hierarchy, stored as a binary heap: the children of
// node i live at 2i+1 and 2i+2. At most one leaf is focused; within a
// leaf at most one tab is selected. The tree may hold zero tabs only
// transiently, between a close and the command drain that repairs it.
type tree struct {
	nodes   []node
	focused schema.NodeIndex
}

// newTree returns a tree with exactly one default tab, focused.
func newTree() *tree {
	return &tree{
		nodes:   []node{{kind: schema.NodeLeaf, tabs: []*tab{defaultTab()}}},
		focused: 0,
	}
}

// leaf resolves a node index to a leaf, reporting whether the reference is
// still valid.
func (tr *tree) leaf(n schema.NodeIndex) (*node, bool) {
	if n < 0 || int(n) >= len(tr.nodes) {
		return nil, false
	}
	if tr.nodes[n].kind != schema.NodeLeaf {
		return nil, false
	}
	return &tr.nodes[n], true
}

// tabAt resolves a positional tab reference.
func (tr *tree) tabAt(n schema.NodeIndex, t schema.TabIndex) (*tab, bool) {
	leaf, ok := tr.leaf(n)
	if !ok {
		return nil, false
	}
	if t < 0 || int(t) >= len(leaf.tabs) {
		return nil, false
	}
	return leaf.tabs[t], true
}

// NumTabs counts tabs across all leaves.
func (tr *tree) NumTabs() int {
	total := 0
	for i := range tr.nodes {
		if tr.nodes[i].kind == schema.NodeLeaf {
			total += len(tr.nodes[i].tabs)
		}
	}
	return total
}

// ActiveTab returns the focused leaf's selected tab.
func (tr *tree) ActiveTab() (*tab, bool) {
	leaf, ok := tr.leaf(tr.focused)
	if !ok || len(leaf.tabs) == 0 {
		return nil, false
	}
	if leaf.selected < 0 || leaf.selected >= len(leaf.tabs) {
		return nil, false
	}
	return leaf.tabs[leaf.selected], true
}

// SetFocusedNode moves focus to the given leaf if it exists.
func (tr *tree) SetFocusedNode(n schema.NodeIndex) bool {
	if _, ok := tr.leaf(n); !ok {
		return false
	}
	tr.focused = n
	return true
}

// PushToFocusedLeaf appends a tab to the focused leaf and selects it.
func (tr *tree) PushToFocusedLeaf(t *tab) bool {
	leaf, ok := tr.leaf(tr.focused)
	if !ok {
		return false
	}
	leaf.tabs = append(leaf.tabs, t)
	leaf.selected = len(leaf.tabs) - 1
	return true
}

// SelectTab selects a tab within its leaf and focuses that leaf.
func (tr *tree) SelectTab(n schema.NodeIndex, t schema.TabIndex) bool {
	leaf, ok := tr.leaf(n)
	if !ok || t < 0 || int(t) >= len(leaf.tabs) {
		return false
	}
	leaf.selected = int(t)
	tr.focused = n
	return true
}

// RemoveTab removes a positional tab reference, keeping the leaf's
// selection inside bounds. An empty leaf is legal only until the command
// drain repairs the tree.
func (tr *tree) RemoveTab(n schema.NodeIndex, t schema.TabIndex) (*tab, bool) {
	leaf, ok := tr.leaf(n)
	if !ok || t < 0 || int(t) >= len(leaf.tabs) {
		return nil, false
	}
	removed := leaf.tabs[t]
	leaf.tabs = append(leaf.tabs[:t], leaf.tabs[t+1:]...)
	if leaf.selected >= len(leaf.tabs) {
		leaf.selected = len(leaf.tabs) - 1
	}
	if leaf.selected < 0 {
		leaf.selected = 0
	}
	return removed, true
}

// WalkLeaves visits leaves in node-index order. The callback must not
// change the tree's topology; the render pass relies on that.
func (tr *tree) WalkLeaves(fn func(schema.NodeIndex, *node)) {
	for i := range tr.nodes {
		if tr.nodes[i].kind == schema.NodeLeaf {
			fn(schema.NodeIndex(i), &tr.nodes[i])
		}
	}
}

// Snapshot captures topology, tabs, and focus for persistence.
func (tr *tree) Snapshot() []schema.NodeSnapshot {
	nodes := make([]schema.NodeSnapshot, len(tr.nodes))
	for i := range tr.nodes {
		n := &tr.nodes[i]
		snap := schema.NodeSnapshot{
			Kind:     n.kind,
			Fraction: n.fraction,
			Selected: n.selected,
		}
		if n.kind == schema.NodeLeaf {
			snap.Tabs = make([]schema.TabSnapshot, 0, len(n.tabs))
			for _, t := range n.tabs {
				snap.Tabs = append(snap.Tabs, t.Snapshot())
			}
		}
		nodes[i] = snap
	}
	return nodes
}

// treeFromSnapshot rebuilds a tree from persisted state, falling back to a
// fresh default tree when the snapshot holds no tabs.
func treeFromSnapshot(nodes []schema.NodeSnapshot, focused schema.NodeIndex) *tree {
	if len(nodes) == 0 {
		return newTree()
	}
	tr := &tree{nodes: make([]node, len(nodes))}
	for i, snap := range nodes {
		n := node{
			kind:     snap.Kind,
			fraction: snap.Fraction,
			selected: snap.Selected,
		}
		if snap.Kind == schema.NodeLeaf {
			n.tabs = make([]*tab, 0, len(snap.Tabs))
			for _, ts := range snap.Tabs {
				n.tabs = append(n.tabs, tabFromSnapshot(ts))
			}
			if n.selected >= len(n.tabs) {
				n.selected = 0
			}
		}
		tr.nodes[i] = n
	}
	if !tr.SetFocusedNode(focused) {
		tr.focused = 0
	}
	if tr.NumTabs() == 0 {
		return newTree()
	}
	return tr
}
