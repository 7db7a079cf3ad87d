package schema

// TabEventType describes a tab lifecycle change.
type TabEventType string

const (
	// TabEventCreated indicates a tab was created.
	TabEventCreated TabEventType = "created"
	// TabEventClosed indicates a tab was removed.
	TabEventClosed TabEventType = "closed"
	// TabEventRenamed indicates a tab's display name changed.
	TabEventRenamed TabEventType = "renamed"
	// TabEventActivated indicates focus moved to a tab.
	TabEventActivated TabEventType = "activated"
)

// TabEvent notifies subscribers of a tab lifecycle change.
type TabEvent struct {
	Type      TabEventType `json:"type"`
	Tab       TabID        `json:"tab"`
	Name      TabName      `json:"name,omitempty"`
	ActiveTab TabID        `json:"active_tab,omitempty"`
}

// NotifyLevel grades a user-visible notification.
type NotifyLevel string

const (
	// NotifyInfo marks an informational notification.
	NotifyInfo NotifyLevel = "info"
	// NotifyError marks a non-fatal failure notification.
	NotifyError NotifyLevel = "error"
)

// NotifyEvent is a non-fatal, user-visible notification. Collaborator
// failures (save, share) surface here; they never abort the render loop.
type NotifyEvent struct {
	Level   NotifyLevel `json:"level"`
	Tab     TabID       `json:"tab,omitempty"`
	Message string      `json:"message"`
}
