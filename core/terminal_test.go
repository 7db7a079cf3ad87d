package core

import (
	"context"
	"testing"

	"pkt.systems/scratchdock/schema"
)

const testViewport = 600

// dragOpenInput is a pointer drag on the closed-panel handle that satisfies
// both open conditions with the default thresholds.
func dragOpenInput() schema.FrameInput {
	return schema.FrameInput{
		ViewportHeight: testViewport,
		Pointer: schema.PointerState{
			Pos:            schema.Vec2{Y: 578},
			DragDelta:      schema.Vec2{Y: -2},
			DraggingHandle: true,
		},
	}
}

func TestTerminalOpensOnUpwardHandleDrag(t *testing.T) {
	s := newTestSession(t, SessionDeps{})
	if s.TerminalOpen() {
		t.Fatalf("panel open before any input")
	}

	out := s.Frame(context.Background(), dragOpenInput())
	if !out.TerminalOpen {
		t.Fatalf("drag above the handle line did not open the panel")
	}
	if out.Terminal == nil || !out.Terminal.ResizeDragged {
		// The opening drag must continue on the resize handle this frame,
		// otherwise the panel snaps instead of following the pointer.
		t.Fatalf("resize handle not marked dragged on the opening frame: %+v", out.Terminal)
	}
}

func TestTerminalIgnoresWeakOrLowDrags(t *testing.T) {
	s := newTestSession(t, SessionDeps{})

	in := dragOpenInput()
	in.Pointer.DragDelta.Y = -0.3
	if out := s.Frame(context.Background(), in); out.TerminalOpen {
		t.Fatalf("opened on a drag below the minimum delta")
	}

	in = dragOpenInput()
	in.Pointer.Pos.Y = testViewport - 10
	if out := s.Frame(context.Background(), in); out.TerminalOpen {
		t.Fatalf("opened with the pointer still below the handle line")
	}

	in = dragOpenInput()
	in.Pointer.DraggingHandle = false
	if out := s.Frame(context.Background(), in); out.TerminalOpen {
		t.Fatalf("opened without a handle drag")
	}
}

func TestTerminalDragOpenUsesTighterCloseLine(t *testing.T) {
	s := newTestSession(t, SessionDeps{})
	s.Frame(context.Background(), dragOpenInput())

	// While the opening drag continues, the panel survives positions that
	// would cross the normal close line but not the tighter drag line.
	in := schema.FrameInput{
		ViewportHeight: testViewport,
		Pointer: schema.PointerState{
			Pos:            schema.Vec2{Y: testViewport - 18},
			DraggingResize: true,
		},
	}
	if out := s.Frame(context.Background(), in); !out.TerminalOpen {
		t.Fatalf("closed above the drag-close line")
	}

	in.Pointer.Pos.Y = testViewport - 15
	if out := s.Frame(context.Background(), in); out.TerminalOpen {
		t.Fatalf("still open below the drag-close line")
	}
}

func TestTerminalNormalCloseLineAfterDragRelease(t *testing.T) {
	s := newTestSession(t, SessionDeps{})
	s.Frame(context.Background(), dragOpenInput())

	// Releasing the pointer ends the opening drag and restores the normal
	// close threshold.
	s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport})

	in := schema.FrameInput{
		ViewportHeight: testViewport,
		Pointer: schema.PointerState{
			Pos:            schema.Vec2{Y: testViewport - 18},
			DraggingResize: true,
		},
	}
	out := s.Frame(context.Background(), in)
	if out.TerminalOpen {
		t.Fatalf("expected close at the normal threshold after release")
	}
	if out.Terminal != nil {
		t.Fatalf("closed panel still rendered")
	}
}

func TestTerminalScrollIsPerTab(t *testing.T) {
	s := newTestSession(t, SessionDeps{})
	s.Frame(context.Background(), dragOpenInput())

	scroll := schema.ScrollOffset{Y: 42}
	out := s.Frame(context.Background(), schema.FrameInput{
		ViewportHeight: testViewport,
		TerminalScroll: &scroll,
	})
	if out.Terminal == nil || out.Terminal.Scroll.Y != 42 {
		t.Fatalf("scroll not stored: %+v", out.Terminal)
	}

	node := schema.NodeIndex(0)
	s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport, AddTab: &node})
	out = s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport})
	if out.Terminal.Scroll.Y != 0 {
		t.Fatalf("new tab inherited scroll: %+v", out.Terminal.Scroll)
	}

	ref := schema.TabRef{Node: 0, Tab: 0}
	s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport, SelectTab: &ref})
	out = s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport})
	if out.Terminal.Scroll.Y != 42 {
		t.Fatalf("scroll not restored on reselect: %+v", out.Terminal.Scroll)
	}
}

func TestTerminalRendersStyledStreams(t *testing.T) {
	output := &fakeOutput{}
	s := newTestSession(t, SessionDeps{Output: output})

	stdout, stderr := output.Streams(schema.TabID(schema.DefaultScratchName))
	stdout.Append([]byte("build finished\n"))
	stderr.Append([]byte("\x1b[31mERROR\x1b[0m ok"))

	s.Frame(context.Background(), dragOpenInput())
	out := s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport})

	if out.Terminal.Stdout.Plain != "build finished\n" {
		t.Fatalf("stdout plain: %q", out.Terminal.Stdout.Plain)
	}
	if out.Terminal.Stderr.Plain != "ERROR ok" {
		t.Fatalf("stderr plain: %q", out.Terminal.Stderr.Plain)
	}

	runs := out.Terminal.Stderr.Runs
	if len(runs) != 2 {
		t.Fatalf("expected 2 stderr runs, got %+v", runs)
	}
	red := schema.RGBColor{R: 255, G: 107, B: 107}
	if runs[0].Start != 0 || runs[0].End != 5 || runs[0].FG != red {
		t.Fatalf("colored run wrong: %+v", runs[0])
	}
	defaultFG := schema.RGBColor{R: 240, G: 241, B: 255}
	if runs[1].Start != 5 || runs[1].End != 8 || runs[1].FG != defaultFG {
		t.Fatalf("reset run wrong: %+v", runs[1])
	}
}

func TestTerminalCachesAcrossFrames(t *testing.T) {
	output := &fakeOutput{}
	s := newTestSession(t, SessionDeps{Output: output})
	stdout, _ := output.Streams(schema.TabID(schema.DefaultScratchName))
	stdout.Append([]byte("\x1b[32mok\x1b[0m"))

	s.Frame(context.Background(), dragOpenInput())
	s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport})
	s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport})

	// Two stream keys (stdout and stderr), one parse each, then cache hits.
	if got := s.cache.StyledRecomputes(); got != 2 {
		t.Fatalf("expected 2 styled recomputes, got %d", got)
	}
	if got := s.cache.PlainRecomputes(); got != 2 {
		t.Fatalf("expected 2 plain recomputes, got %d", got)
	}

	stdout.Append([]byte(" more"))
	s.Frame(context.Background(), schema.FrameInput{ViewportHeight: testViewport})
	if got := s.cache.StyledRecomputes(); got != 3 {
		t.Fatalf("expected recompute after append, got %d", got)
	}
}
