package core

import (
	"context"

	"pkt.systems/pslog"
	"pkt.systems/scratchdock/schema"
)

// Editor draws one tab's code editor. It owns the text buffer and syntax
// state; the dock only passes identity, scroll position, and whether the
// tab currently holds focus, and stores the returned scroll offset.
type Editor interface {
	Render(id schema.TabID, scroll schema.ScrollOffset, focused bool) schema.ScrollOffset
	Content(id schema.TabID) string
}

// OutputStreams exposes the per-tab stdout/stderr buffers owned by the
// process execution layer. The dock only reads them.
type OutputStreams interface {
	Streams(id schema.TabID) (stdout, stderr *OutputBuffer)
}

// Sharer uploads scratch content to the playground sharing service.
type Sharer interface {
	Share(ctx context.Context, content string, credential string) error
}

// Saver persists tab content to storage.
type Saver interface {
	Save(id schema.TabID, content string) error
}

// EventSink receives tab lifecycle and notification events from the
// session.
type EventSink interface {
	OnTabEvent(event schema.TabEvent)
	OnNotify(event schema.NotifyEvent)
}

// SessionDeps captures optional collaborator dependencies for a session.
type SessionDeps struct {
	Editor    Editor
	Output    OutputStreams
	Sharer    Sharer
	Saver     Saver
	EventSink EventSink
	// ShareCredential is the access token handed to the sharer.
	ShareCredential string
	Logger          pslog.Logger
}
