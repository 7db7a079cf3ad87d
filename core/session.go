package core

import (
	"context"

	"pkt.systems/pslog"
	"pkt.systems/scratchdock/internal/ansicache"
	"pkt.systems/scratchdock/internal/theme"
	"pkt.systems/scratchdock/schema"
)

// Session owns one dock's state: the tab tree, the frame command queue,
// the style caches, and the terminal panel. The UI shell calls Frame once
// per render cycle from a single thread; only the output buffers are
// touched concurrently, and those carry their own locks.
type Session struct {
	cfg     schema.DockConfig
	deps    SessionDeps
	log     pslog.Logger
	palette theme.Palette

	tree    *tree
	queue   commandQueue
	counter int
	cache   *ansicache.Cache
	term    terminalState
	rename  *renameDialog
}

// NewSession constructs a session with a fresh default tree.
func NewSession(cfg schema.DockConfig, deps SessionDeps) (*Session, error) {
	normalized, err := schema.NormalizeDockConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg = normalized
	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Session{
		cfg:     cfg,
		deps:    deps,
		log:     logger,
		palette: theme.ForName(cfg.Theme),
		tree:    newTree(),
		counter: 2,
		cache:   ansicache.New(),
		term:    newTerminalState(),
	}, nil
}

// Frame runs one render cycle: the read-only dock render pass, the
// terminal panel update, and then the command drain that applies any
// structural mutations queued during the pass. The returned output
// reflects the tree as rendered; mutations show up next frame.
func (s *Session) Frame(ctx context.Context, input schema.FrameInput) schema.FrameOutput {
	if ctx == nil {
		ctx = context.Background()
	}
	// Command handlers derive their per-tab loggers from the context.
	ctx = pslog.ContextWithLogger(ctx, s.log)

	out := schema.FrameOutput{}
	out.Dock = s.renderDock(input)
	out.Terminal = s.updateTerminal(input)
	out.TerminalOpen = s.term.open

	s.applyFocusInput(input)
	s.applyRenameInput(input)
	s.processCommands(ctx)

	if s.rename != nil {
		out.RenameDialog = &schema.RenameDialogRender{
			Tab:  s.rename.id,
			Text: s.rename.text,
		}
	}
	return out
}

// ActiveTab returns the identity of the focused leaf's selected tab.
func (s *Session) ActiveTab() (schema.TabID, bool) {
	t, ok := s.tree.ActiveTab()
	if !ok {
		return "", false
	}
	return t.ID, true
}

// NumTabs counts tabs across the tree.
func (s *Session) NumTabs() int {
	return s.tree.NumTabs()
}

// Counter exposes the scratch naming counter.
func (s *Session) Counter() int {
	return s.counter
}

// TerminalOpen reports the terminal panel state.
func (s *Session) TerminalOpen() bool {
	return s.term.open
}

// Snapshot captures the dock layout for persistence. Editor blobs are
// refreshed from the editor collaborator when one is wired.
func (s *Session) Snapshot() schema.DockSnapshot {
	if s.deps.Editor != nil {
		s.tree.WalkLeaves(func(_ schema.NodeIndex, n *node) {
			for _, t := range n.tabs {
				t.Editor = s.deps.Editor.Content(t.ID)
			}
		})
	}
	return schema.DockSnapshot{
		Counter: s.counter,
		Focused: s.tree.focused,
		Nodes:   s.tree.Snapshot(),
	}
}

// Restore replaces the session's layout with a persisted snapshot.
func (s *Session) Restore(snap schema.DockSnapshot) {
	s.tree = treeFromSnapshot(snap.Nodes, snap.Focused)
	if snap.Counter >= 2 {
		s.counter = snap.Counter
	} else {
		s.counter = 2
	}
	s.rename = nil
	s.queue = commandQueue{}
}

// applyFocusInput moves focus/selection after the render pass. Focus is
// not topology, but it still goes through the post-pass phase so the pass
// stays strictly read-only.
func (s *Session) applyFocusInput(input schema.FrameInput) {
	if input.SelectTab != nil {
		if s.tree.SelectTab(input.SelectTab.Node, input.SelectTab.Tab) {
			if t, ok := s.tree.ActiveTab(); ok {
				s.emitTabEvent(schema.TabEvent{
					Type:      schema.TabEventActivated,
					Tab:       t.ID,
					Name:      t.Name,
					ActiveTab: t.ID,
				})
			}
		}
		return
	}
	if input.FocusNode != nil {
		s.tree.SetFocusedNode(*input.FocusNode)
	}
}

func (s *Session) emitTabEvent(event schema.TabEvent) {
	if s.deps.EventSink != nil {
		s.deps.EventSink.OnTabEvent(event)
	}
}

func (s *Session) notify(level schema.NotifyLevel, id schema.TabID, message string) {
	if s.deps.EventSink != nil {
		s.deps.EventSink.OnNotify(schema.NotifyEvent{Level: level, Tab: id, Message: message})
	}
}
