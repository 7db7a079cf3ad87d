package core

import (
	"context"
	"fmt"
	"strings"

	"pkt.systems/scratchdock/internal/logx"
	"pkt.systems/scratchdock/schema"
)

// renameDialog tracks the modal rename prompt across frames. The owning
// rename command stays queued while the dialog is open.
type renameDialog struct {
	node      schema.NodeIndex
	tab       schema.TabIndex
	id        schema.TabID
	text      string
	confirmed bool
	cancelled bool
}

// applyRenameInput feeds this frame's dialog interaction into the open
// dialog before the command drain reads it.
func (s *Session) applyRenameInput(input schema.FrameInput) {
	if s.rename == nil || input.Rename == nil {
		return
	}
	s.rename.text = input.Rename.Text
	if input.Rename.Confirm {
		s.rename.confirmed = true
	}
	if input.Rename.Cancel {
		s.rename.cancelled = true
	}
}

// processCommands drains the queue after the render pass, in emission
// order. Handlers returning true keep their command queued for the next
// frame. Stale positional references are dropped silently: a command is a
// UI action, and the worst acceptable outcome is that the action is lost.
func (s *Session) processCommands(ctx context.Context) {
	s.queue.Retain(func(cmd schema.Command) bool {
		return s.applyCommand(ctx, cmd)
	})
}

func (s *Session) applyCommand(ctx context.Context, cmd schema.Command) bool {
	switch cmd.Kind {
	case schema.CommandAddTab:
		s.addTab(ctx, cmd.Node)
		return false
	case schema.CommandCloseTab:
		s.closeTab(ctx, cmd.Node, cmd.Tab)
		return false
	case schema.CommandRename:
		return s.renameStep(ctx, cmd.Node, cmd.Tab)
	case schema.CommandSave:
		s.saveTab(ctx, cmd.Node, cmd.Tab)
		return false
	case schema.CommandShare:
		s.shareTab(ctx, cmd.Node, cmd.Tab)
		return false
	default:
		s.log.Warn("dock command unknown", "kind", cmd.Kind)
		return false
	}
}

func (s *Session) addTab(ctx context.Context, node schema.NodeIndex) {
	leaf, ok := s.tree.leaf(node)
	if !ok {
		s.log.Warn("dock add dropped", "node", node, "err", schema.ErrNodeNotFound)
		return
	}
	name := schema.TabName(fmt.Sprintf("Scratch %d", s.counter))
	t := &tab{
		ID:   schema.NewTabID(name, node, len(leaf.tabs)+1),
		Name: name,
	}
	s.tree.SetFocusedNode(node)
	s.tree.PushToFocusedLeaf(t)
	s.counter++
	logx.WithTab(ctx, t.ID).Debug("dock tab added", "name", t.Name, "node", node)
	s.emitTabEvent(schema.TabEvent{
		Type:      schema.TabEventCreated,
		Tab:       t.ID,
		Name:      t.Name,
		ActiveTab: t.ID,
	})
}

func (s *Session) closeTab(ctx context.Context, node schema.NodeIndex, idx schema.TabIndex) {
	if removed, ok := s.tree.RemoveTab(node, idx); ok {
		s.cache.Forget(removed.ID)
		logx.WithTab(ctx, removed.ID).Debug("dock tab closed", "name", removed.Name)
		s.emitTabEvent(schema.TabEvent{Type: schema.TabEventClosed, Tab: removed.ID, Name: removed.Name})
	}
	if s.tree.NumTabs() > 0 {
		return
	}
	// The tree may not stay empty: recreate the default tab. The counter
	// resumes at 2 since a "Scratch 1" exists again.
	t := defaultTab()
	s.tree.SetFocusedNode(0)
	s.tree.PushToFocusedLeaf(t)
	s.counter = 2
	logx.WithTab(ctx, t.ID).Debug("dock default tab recreated")
	s.emitTabEvent(schema.TabEvent{
		Type:      schema.TabEventCreated,
		Tab:       t.ID,
		Name:      t.Name,
		ActiveTab: t.ID,
	})
}

// renameStep advances the rename dialog one frame. The first step opens
// the dialog seeded with the current name; confirmation commits whatever
// text the dialog holds at that point.
func (s *Session) renameStep(ctx context.Context, node schema.NodeIndex, idx schema.TabIndex) bool {
	if s.rename == nil {
		t, ok := s.tree.tabAt(node, idx)
		if !ok {
			s.log.Warn("dock rename dropped", "node", node, "tab_index", idx, "err", schema.ErrTabNotFound)
			return false
		}
		s.rename = &renameDialog{
			node: node,
			tab:  idx,
			id:   t.ID,
			text: string(t.Name),
		}
		return true
	}
	if s.rename.node != node || s.rename.tab != idx {
		// A second rename arrived while a dialog is already open; drop it.
		return false
	}
	if s.rename.cancelled {
		s.rename = nil
		return false
	}
	if !s.rename.confirmed {
		return true
	}

	dialog := s.rename
	s.rename = nil
	t, ok := s.tree.tabAt(node, idx)
	if !ok || t.ID != dialog.id {
		s.log.Warn("dock rename dropped", "tab", dialog.id, "err", schema.ErrTabNotFound)
		return false
	}
	name := strings.TrimSpace(dialog.text)
	if name == "" {
		return false
	}
	t.Name = schema.TabName(name)
	logx.WithTab(ctx, t.ID).Debug("dock tab renamed", "name", t.Name)
	s.emitTabEvent(schema.TabEvent{Type: schema.TabEventRenamed, Tab: t.ID, Name: t.Name})
	return false
}

func (s *Session) saveTab(ctx context.Context, node schema.NodeIndex, idx schema.TabIndex) {
	t, ok := s.tree.tabAt(node, idx)
	if !ok {
		s.log.Warn("dock save dropped", "node", node, "tab_index", idx, "err", schema.ErrTabNotFound)
		return
	}
	log := logx.WithTab(ctx, t.ID)
	if s.deps.Saver == nil || s.deps.Editor == nil {
		s.notify(schema.NotifyError, t.ID, "saving is not available")
		return
	}
	if err := s.deps.Saver.Save(t.ID, s.deps.Editor.Content(t.ID)); err != nil {
		log.Warn("dock save failed", "err", err)
		s.notify(schema.NotifyError, t.ID, fmt.Sprintf("save failed: %v", err))
		return
	}
	log.Debug("dock save ok")
	s.notify(schema.NotifyInfo, t.ID, fmt.Sprintf("saved %s", t.Name))
}

// shareTab hands the tab content to the sharing collaborator and returns
// without awaiting completion. Failures surface as a notification, never
// as a render-loop error.
func (s *Session) shareTab(ctx context.Context, node schema.NodeIndex, idx schema.TabIndex) {
	t, ok := s.tree.tabAt(node, idx)
	if !ok {
		s.log.Warn("dock share dropped", "node", node, "tab_index", idx, "err", schema.ErrTabNotFound)
		return
	}
	if s.deps.Sharer == nil || s.deps.Editor == nil {
		s.notify(schema.NotifyError, t.ID, "sharing is not available")
		return
	}
	if strings.TrimSpace(s.deps.ShareCredential) == "" {
		logx.WithTab(ctx, t.ID).Warn("dock share dropped", "err", schema.ErrNoCredential)
		s.notify(schema.NotifyError, t.ID, "sharing requires an access token")
		return
	}
	content := s.deps.Editor.Content(t.ID)
	id := t.ID
	name := t.Name
	// The upload outlives the frame; carry the tab-scoped logger on the
	// detached context.
	shareCtx := logx.ContextWithTabLogger(context.WithoutCancel(ctx), logx.WithTab(ctx, id), id)
	go func() {
		log := logx.WithTab(shareCtx, id)
		if err := s.deps.Sharer.Share(shareCtx, content, s.deps.ShareCredential); err != nil {
			log.Warn("dock share failed", "err", err)
			s.notify(schema.NotifyError, id, fmt.Sprintf("share failed: %v", err))
			return
		}
		log.Debug("dock share ok")
		s.notify(schema.NotifyInfo, id, fmt.Sprintf("shared %s", name))
	}()
}
