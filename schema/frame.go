package schema

// PointerState captures the pointer as seen by one frame.
type PointerState struct {
	// Pos is the latest pointer position; valid even when the pointer has
	// left the window as long as a drag is in progress.
	Pos Vec2
	// DragDelta is the pointer movement since the previous frame while a
	// button is held.
	DragDelta Vec2
	// DraggingResize reports whether the terminal panel's resize handle is
	// the active drag target.
	DraggingResize bool
	// DraggingHandle reports whether the closed-panel center handle is the
	// active drag target.
	DraggingHandle bool
}

// MenuAction identifies the context-menu button activated this frame.
type MenuAction string

const (
	// MenuRename is the context menu "Rename" entry.
	MenuRename MenuAction = "rename"
	// MenuSave is the context menu "Save..." entry.
	MenuSave MenuAction = "save"
	// MenuShare is the context menu "Share to Playground" entry.
	MenuShare MenuAction = "share"
)

// MenuSelection records a context-menu activation on a tab.
type MenuSelection struct {
	Action MenuAction
	Node   NodeIndex
	Tab    TabIndex
}

// TabRef addresses one tab by position.
type TabRef struct {
	Node NodeIndex
	Tab  TabIndex
}

// RenameInput carries the rename dialog's per-frame interaction.
type RenameInput struct {
	// Text is the current content of the dialog's text field.
	Text string
	// Confirm commits Text as the tab's new name.
	Confirm bool
	// Cancel discards the dialog.
	Cancel bool
}

// FrameInput is everything the UI shell feeds into one frame: pointer
// state, viewport geometry, and the widget interactions that occurred since
// the previous frame. The UI guarantees at most one activation per widget
// per frame.
type FrameInput struct {
	Pointer        PointerState
	ViewportHeight float64
	// AddTab is set when the "+" button of a node was clicked.
	AddTab *NodeIndex
	// CloseTab is set when a tab's close button was clicked.
	CloseTab *TabRef
	// Menu is set when a context-menu entry was activated.
	Menu *MenuSelection
	// FocusNode is set when the user clicked into a leaf.
	FocusNode *NodeIndex
	// SelectTab is set when the user clicked a tab header.
	SelectTab *TabRef
	// Rename carries rename dialog interaction while the dialog is open.
	Rename *RenameInput
	// TerminalScroll is the scroll offset reported by the terminal panel's
	// scroll area for the active tab.
	TerminalScroll *ScrollOffset
}

// TabRender is one tab header in the dock layout.
type TabRender struct {
	ID      TabID
	Name    TabName
	Active  bool
	Focused bool
}

// NodeRender is one leaf's rendered tab strip.
type NodeRender struct {
	Node NodeIndex
	Tabs []TabRender
}

// DockRender is the dock layout produced by the render pass.
type DockRender struct {
	Nodes     []NodeRender
	ActiveTab TabID
}

// StyledRun is a contiguous byte range of plain text with resolved colors
// and style flags.
type StyledRun struct {
	Start         int      `json:"start"`
	End           int      `json:"end"`
	FG            RGBColor `json:"fg"`
	BG            RGBColor `json:"bg"`
	HasBG         bool     `json:"has_bg"`
	Italic        bool     `json:"italic"`
	Underline     bool     `json:"underline"`
	Strikethrough bool     `json:"strikethrough"`
}

// StyledText is ANSI-parsed text: the escape-free plain form plus the
// styled runs covering it.
type StyledText struct {
	Plain string      `json:"plain"`
	Runs  []StyledRun `json:"runs"`
}

// TerminalRender is the terminal panel's contribution to one frame.
type TerminalRender struct {
	Stdout StyledText
	Stderr StyledText
	Scroll ScrollOffset
	// ResizeDragged reports that the resize handle must be treated as
	// actively dragged this frame (set on drag-open to avoid a snap).
	ResizeDragged bool
}

// RenameDialogRender describes the open rename dialog.
type RenameDialogRender struct {
	Tab  TabID
	Text string
}

// FrameOutput is what one frame hands back to the UI shell.
type FrameOutput struct {
	Dock         DockRender
	Terminal     *TerminalRender
	TerminalOpen bool
	RenameDialog *RenameDialogRender
}
