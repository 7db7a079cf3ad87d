package schema

import "fmt"

// TabID identifies a tab across frames and renames.
type TabID string

// TabName is the user-facing name of a tab.
type TabName string

// ThemeName identifies a UI theme.
type ThemeName string

// NodeIndex addresses a node in the dock tree.
type NodeIndex int

// TabIndex addresses a tab within a leaf node.
type TabIndex int

// StreamKind distinguishes the two output streams of a tab.
type StreamKind string

const (
	// StreamStdout is the standard-output stream of a tab.
	StreamStdout StreamKind = "stdout"
	// StreamStderr is the standard-error stream of a tab.
	StreamStderr StreamKind = "stderr"
)

// StreamID identifies one logical output stream.
type StreamID struct {
	Tab  TabID
	Kind StreamKind
}

// NewTabID derives a tab identity from the tab name and its position at
// creation time. The identity stays stable across renames; only destroying
// the tab and creating a new one reassigns it.
func NewTabID(name TabName, node NodeIndex, ordinal int) TabID {
	return TabID(fmt.Sprintf("%s-%d-%d", name, node, ordinal))
}

// Vec2 is a 2D point or offset in screen units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScrollOffset is a 2D scroll position.
type ScrollOffset = Vec2

// RGBColor is a 24-bit color.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
