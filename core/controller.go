package core

import "pkt.systems/scratchdock/schema"

// renderDock is the frame's read-only render pass. It walks the tree in
// node order, delegates drawing of each visible tab to the editor
// collaborator, and translates this frame's UI interactions into queued
// commands. The pass never touches topology; the only writes are the
// opaque per-tab editor state (the returned scroll offset) and the
// append-only command queue.
func (s *Session) renderDock(input schema.FrameInput) schema.DockRender {
	var activeID schema.TabID
	if active, ok := s.tree.ActiveTab(); ok {
		activeID = active.ID
	}

	out := schema.DockRender{ActiveTab: activeID}
	s.tree.WalkLeaves(func(idx schema.NodeIndex, n *node) {
		render := schema.NodeRender{Node: idx}
		for i, t := range n.tabs {
			selected := i == n.selected
			render.Tabs = append(render.Tabs, schema.TabRender{
				ID:      t.ID,
				Name:    t.Name,
				Active:  selected,
				Focused: t.ID == activeID,
			})
			// Only the selected tab of each leaf is visible. Multiple
			// leaves may each show a tab, so the editor is told which one
			// holds keyboard focus.
			if selected && s.deps.Editor != nil {
				var scroll schema.ScrollOffset
				if t.Scroll != nil {
					scroll = *t.Scroll
				}
				updated := s.deps.Editor.Render(t.ID, scroll, t.ID == activeID)
				t.Scroll = &updated
			}
		}
		out.Nodes = append(out.Nodes, render)
	})

	s.collectCommands(input)
	return out
}

// collectCommands appends this frame's UI interactions to the queue.
// Exactly one command is enqueued per context-menu interaction.
func (s *Session) collectCommands(input schema.FrameInput) {
	if input.AddTab != nil {
		s.queue.Push(schema.AddTabCommand(*input.AddTab))
	}
	if input.CloseTab != nil {
		s.queue.Push(schema.CloseTabCommand(input.CloseTab.Node, input.CloseTab.Tab))
	}
	if input.Menu != nil {
		switch input.Menu.Action {
		case schema.MenuRename:
			s.queue.Push(schema.RenameCommand(input.Menu.Node, input.Menu.Tab))
		case schema.MenuSave:
			s.queue.Push(schema.SaveCommand(input.Menu.Node, input.Menu.Tab))
		case schema.MenuShare:
			s.queue.Push(schema.ShareCommand(input.Menu.Node, input.Menu.Tab))
		}
	}
}
