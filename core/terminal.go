package core

import (
	"pkt.systems/scratchdock/internal/logx"
	"pkt.systems/scratchdock/schema"
)

// terminalState is the bottom panel's state machine. The open and close
// thresholds differ so the panel does not flicker at the boundary, and the
// one-shot flags reset drag state exactly once per transition. Lifecycle
// matches the session; nothing here is ever reset wholesale.
type terminalState struct {
	open bool
	// openedFromClose marks the frame right after a drag-open; consumed to
	// hand the drag to the resize handle without a visible snap.
	openedFromClose bool
	// openedFromCloseDragging stays set while the opening drag continues;
	// it selects the tighter close threshold.
	openedFromCloseDragging bool
	// closedFromOpen marks the frame right after a drag-close; consumed to
	// hand the drag to the closed-panel handle.
	closedFromOpen bool
	scroll         map[schema.TabID]schema.ScrollOffset
}

func newTerminalState() terminalState {
	return terminalState{scroll: make(map[schema.TabID]schema.ScrollOffset)}
}

// updateTerminal advances the panel state machine for this frame and, when
// the panel is open, renders the active tab's output streams.
func (s *Session) updateTerminal(input schema.FrameInput) *schema.TerminalRender {
	t := &s.term
	cfg := s.cfg.Terminal

	if !t.open {
		if t.closedFromOpen {
			// The drag that closed the panel continues on the closed
			// handle for one frame.
			t.closedFromOpen = false
		}
		handleBottom := input.ViewportHeight - cfg.HandleThreshold
		if input.Pointer.DraggingHandle &&
			input.Pointer.DragDelta.Y <= -cfg.OpenDragDelta &&
			input.Pointer.Pos.Y <= handleBottom {
			t.open = true
			t.openedFromClose = true
			t.openedFromCloseDragging = true
		}
		if !t.open {
			return nil
		}
	}

	resizeDragged := false
	if t.openedFromClose {
		// Mark the resize handle as actively dragged in the same frame so
		// the panel follows the pointer instead of snapping open.
		resizeDragged = true
		t.openedFromClose = false
	}

	closeThreshold := cfg.CloseThreshold
	if t.openedFromCloseDragging {
		closeThreshold = cfg.DragCloseThreshold
	}
	dragging := input.Pointer.DraggingResize || resizeDragged
	// While a drag is in progress the pointer position stays valid even
	// outside the window, so crossing the close line below the bottom edge
	// still closes the panel.
	if dragging && input.Pointer.Pos.Y >= input.ViewportHeight-closeThreshold {
		t.open = false
		t.closedFromOpen = true
		return nil
	}
	if t.openedFromCloseDragging && !dragging {
		t.openedFromCloseDragging = false
	}

	return s.renderTerminal(input, resizeDragged)
}

// renderTerminal reads the active tab's output buffers under their locks,
// drives the style caches, and assembles the two read-only text regions.
func (s *Session) renderTerminal(input schema.FrameInput, resizeDragged bool) *schema.TerminalRender {
	render := &schema.TerminalRender{ResizeDragged: resizeDragged}
	active, ok := s.tree.ActiveTab()
	if !ok {
		return render
	}
	if input.TerminalScroll != nil {
		s.term.scroll[active.ID] = *input.TerminalScroll
	}
	render.Scroll = s.term.scroll[active.ID]

	var rawStdout, rawStderr string
	if s.deps.Output != nil {
		stdout, stderr := s.deps.Output.Streams(active.ID)
		if stdout != nil {
			rawStdout = stdout.String()
		}
		if stderr != nil {
			rawStderr = stderr.String()
		}
	}

	style := func(stream schema.StreamID, raw string) schema.StyledText {
		before := s.cache.StyledRecomputes()
		text := schema.StyledText{
			Plain: s.cache.StripToPlain(stream, raw),
			Runs:  s.cache.ParseStyled(stream, raw, s.palette).Runs,
		}
		if s.cache.StyledRecomputes() != before {
			logx.WithStream(s.log, stream).Trace("terminal restyle", "bytes", len(raw))
		}
		return text
	}
	render.Stdout = style(schema.StreamID{Tab: active.ID, Kind: schema.StreamStdout}, rawStdout)
	render.Stderr = style(schema.StreamID{Tab: active.ID, Kind: schema.StreamStderr}, rawStderr)
	return render
}
