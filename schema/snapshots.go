package schema

// TabSnapshot captures a tab for persistence. Editor is the opaque state
// blob owned by the editor collaborator; the core round-trips it verbatim.
type TabSnapshot struct {
	ID     TabID         `json:"id"`
	Name   TabName       `json:"name"`
	Editor string        `json:"editor,omitempty"`
	Scroll *ScrollOffset `json:"scroll,omitempty"`
}

// NodeKind tags a dock tree node.
type NodeKind string

const (
	// NodeEmpty is an unused slot in the tree storage.
	NodeEmpty NodeKind = "empty"
	// NodeLeaf holds an ordered list of tabs.
	NodeLeaf NodeKind = "leaf"
	// NodeHorizontal splits left/right; children at 2i+1 and 2i+2.
	NodeHorizontal NodeKind = "horizontal"
	// NodeVertical splits top/bottom; children at 2i+1 and 2i+2.
	NodeVertical NodeKind = "vertical"
)

// NodeSnapshot captures one tree node for persistence.
type NodeSnapshot struct {
	Kind     NodeKind      `json:"kind"`
	Fraction float64       `json:"fraction,omitempty"`
	Selected int           `json:"selected,omitempty"`
	Tabs     []TabSnapshot `json:"tabs,omitempty"`
}

// DockSnapshot captures the whole dock layout: tree topology, tab
// identities and names, per-tab state, and the scratch counter. It must
// round-trip exactly through persistence.
type DockSnapshot struct {
	Counter int            `json:"counter"`
	Focused NodeIndex      `json:"focused"`
	Nodes   []NodeSnapshot `json:"nodes"`
}
