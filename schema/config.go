package schema

// Default terminal panel geometry, in screen units.
const (
	// DefaultCloseThreshold closes the open panel when the resize drag
	// crosses this distance from the window bottom.
	DefaultCloseThreshold = 20.0
	// DefaultDragCloseThreshold is the tighter threshold used while the
	// panel was just drag-opened; the gap provides hysteresis so the panel
	// does not flicker at the boundary.
	DefaultDragCloseThreshold = 16.0
	// DefaultHandleThreshold keeps drag-opens from triggering when the
	// pointer sits below this distance from the window bottom.
	DefaultHandleThreshold = 17.0
	// DefaultOpenDragDelta is the minimum upward drag that opens the
	// closed panel.
	DefaultOpenDragDelta = 0.5
)

// DefaultScratchName is the name of the tab a fresh tree starts with.
const DefaultScratchName TabName = "Scratch 1"

// TerminalConfig controls the terminal panel state machine.
type TerminalConfig struct {
	CloseThreshold     float64
	DragCloseThreshold float64
	HandleThreshold    float64
	OpenDragDelta      float64
}

// DockConfig controls the dock session.
type DockConfig struct {
	Theme    ThemeName
	Terminal TerminalConfig
}

// NormalizeDockConfig fills zero values with defaults and validates the
// threshold ordering.
func NormalizeDockConfig(cfg DockConfig) (DockConfig, error) {
	if cfg.Terminal.CloseThreshold == 0 {
		cfg.Terminal.CloseThreshold = DefaultCloseThreshold
	}
	if cfg.Terminal.DragCloseThreshold == 0 {
		cfg.Terminal.DragCloseThreshold = DefaultDragCloseThreshold
	}
	if cfg.Terminal.HandleThreshold == 0 {
		cfg.Terminal.HandleThreshold = DefaultHandleThreshold
	}
	if cfg.Terminal.OpenDragDelta == 0 {
		cfg.Terminal.OpenDragDelta = DefaultOpenDragDelta
	}
	if cfg.Terminal.CloseThreshold < 0 || cfg.Terminal.DragCloseThreshold < 0 ||
		cfg.Terminal.HandleThreshold < 0 || cfg.Terminal.OpenDragDelta < 0 {
		return DockConfig{}, ErrInvalidConfig
	}
	if cfg.Terminal.DragCloseThreshold > cfg.Terminal.CloseThreshold {
		return DockConfig{}, ErrInvalidConfig
	}
	return cfg, nil
}
