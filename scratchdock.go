// Package scratchdock composes the dock session with persistence, event
// fanout, and gist sharing. The UI shell constructs one App per window and
// drives it through Frame.
package scratchdock

import (
	"context"
	"errors"

	"pkt.systems/pslog"
	"pkt.systems/scratchdock/core"
	"pkt.systems/scratchdock/internal/appconfig"
	"pkt.systems/scratchdock/internal/eventbus"
	"pkt.systems/scratchdock/internal/persist"
	"pkt.systems/scratchdock/internal/share"
	"pkt.systems/scratchdock/schema"
)

// AppDeps captures the collaborator dependencies supplied by the UI shell.
type AppDeps struct {
	Editor    core.Editor
	Output    core.OutputStreams
	Saver     core.Saver
	EventSink core.EventSink
	// Sharer overrides the default gist client; tests use this.
	Sharer core.Sharer
	Logger pslog.Logger
}

// App owns one workspace: the dock session plus the supporting layers
// around it.
type App struct {
	cfg       appconfig.Config
	session   *core.Session
	bus       *eventbus.Bus
	store     *persist.Store
	log       pslog.Logger
	workspace string
}

// New constructs an App from loaded configuration.
func New(cfg appconfig.Config, deps AppDeps) (*App, error) {
	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}

	bus := eventbus.New(logger)
	sinks := make([]core.EventSink, 0, 2)
	if deps.EventSink != nil {
		sinks = append(sinks, deps.EventSink)
	}
	sinks = append(sinks, bus)
	var sink core.EventSink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else {
		sink = eventFanout{sinks: sinks}
	}

	sharer := deps.Sharer
	if sharer == nil {
		client, err := share.New(cfg.Share.APIURL, share.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		sharer = client
	}

	store, err := persist.NewStoreWithLogger(cfg.StateDir, logger)
	if err != nil {
		return nil, err
	}

	session, err := core.NewSession(cfg.DockConfig(), core.SessionDeps{
		Editor:          deps.Editor,
		Output:          deps.Output,
		Sharer:          sharer,
		Saver:           deps.Saver,
		EventSink:       sink,
		ShareCredential: cfg.Share.AccessToken,
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}

	workspace := cfg.Workspace
	if workspace == "" {
		workspace = "default"
	}
	return &App{
		cfg:       cfg,
		session:   session,
		bus:       bus,
		store:     store,
		log:       logger,
		workspace: workspace,
	}, nil
}

// Frame runs one render cycle.
func (a *App) Frame(ctx context.Context, input schema.FrameInput) schema.FrameOutput {
	return a.session.Frame(ctx, input)
}

// Session exposes the underlying dock session.
func (a *App) Session() *core.Session {
	return a.session
}

// Subscribe registers an event subscriber; the cancel func must be called
// when the subscriber goes away.
func (a *App) Subscribe() (<-chan eventbus.Event, func()) {
	return a.bus.Subscribe()
}

// LoadLayout restores the persisted workspace layout if one exists.
func (a *App) LoadLayout() (bool, error) {
	snapshot, ok, err := a.store.Load(a.workspace)
	if err != nil || !ok {
		return false, err
	}
	a.session.Restore(snapshot.Dock)
	a.log.Info("layout restored", "workspace", a.workspace, "tabs", a.session.NumTabs())
	return true, nil
}

// SaveLayout persists the current workspace layout.
func (a *App) SaveLayout() error {
	if a.store == nil {
		return errors.New("store not configured")
	}
	theme, _ := schema.NormalizeThemeName(a.cfg.Theme)
	return a.store.Save(a.workspace, persist.Snapshot{
		Theme: theme,
		Dock:  a.session.Snapshot(),
	})
}

// Close persists the layout before shutdown.
func (a *App) Close() error {
	return a.SaveLayout()
}
