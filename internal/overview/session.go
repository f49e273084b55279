// Package overview builds the frame a renderer draws: the solved tile grid
// over the live window snapshot, the dock strip with running state, the
// clock text, and the status indicators. The session owns no pixels; a
// renderer consumes the frame and reports activations back.
package overview

import (
	"log"
	"time"

	"github.com/broomlabs/wloverview/internal/action"
	"github.com/broomlabs/wloverview/internal/config"
	"github.com/broomlabs/wloverview/internal/dock"
	"github.com/broomlabs/wloverview/internal/icons"
	"github.com/broomlabs/wloverview/internal/layout"
	"github.com/broomlabs/wloverview/internal/resolver"
	"github.com/broomlabs/wloverview/internal/status"
	"github.com/broomlabs/wloverview/internal/wlrctl"
)

// minContainerWidth is the threshold below which the container is assumed
// to not yet have its real dimensions, so a populate pass reports not ready
// and the scheduler retries.
const minContainerWidth = 200

// WindowSource enumerates the current toplevel windows.
type WindowSource interface {
	List() []wlrctl.Toplevel
}

// Tile is one window cell in the solved grid.
type Tile struct {
	Row      int
	Col      int
	Window   wlrctl.Toplevel
	Label    string
	IconName string
	IconSize int
}

// Frame is one complete populate result, immutable once built.
type Frame struct {
	Clock      string
	Geometry   layout.Geometry
	Tiles      []Tile
	Dock       []dock.Status
	VolumeIcon string
	Battery    *status.Battery
}

// Session drives populate passes and dispatches activations. It is used
// from the scheduler's single goroutine and holds no locks.
type Session struct {
	cfg      *config.Config
	windows  WindowSource
	resolver *resolver.Resolver
	launch   dock.LaunchFunc
	exec     action.Executor
	hasIcon  func(name string) bool
	now      func() time.Time

	dockPath    string
	dockEntries []dock.Entry
	snapshot    []wlrctl.Toplevel
	frame       Frame
}

// Options carries the session's collaborators.
type Options struct {
	Config   *config.Config
	Windows  WindowSource
	Resolver *resolver.Resolver
	Launch   dock.LaunchFunc
	Exec     action.Executor

	// HasIcon reports whether the icon theme contains a name. Nil means no
	// theme lookup, so every tile falls back to the generic icon.
	HasIcon func(name string) bool

	// DockPath overrides the dock entry list location. Empty means the
	// default path.
	DockPath string

	// Now overrides the clock source.
	Now func() time.Time
}

func NewSession(opts Options) *Session {
	s := &Session{
		cfg:      opts.Config,
		windows:  opts.Windows,
		resolver: opts.Resolver,
		launch:   opts.Launch,
		exec:     opts.Exec,
		hasIcon:  opts.HasIcon,
		now:      opts.Now,
		dockPath: opts.DockPath,
	}
	if s.hasIcon == nil {
		s.hasIcon = func(string) bool { return false }
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.dockPath == "" {
		if path, err := dock.DefaultConfigPath(); err == nil {
			s.dockPath = path
		}
	}
	s.ReloadDock()
	return s
}

// UpdateConfig swaps the active configuration; the next populate pass uses
// the new grid and tool settings.
func (s *Session) UpdateConfig(cfg *config.Config) {
	s.cfg = cfg
}

// ReloadDock rereads the dock entry list from disk.
func (s *Session) ReloadDock() {
	s.dockEntries = dock.Load(s.dockPath)
}

// DockPath returns the dock entry list location in use.
func (s *Session) DockPath() string { return s.dockPath }

// Populate runs one refresh pass against the given container size. ready is
// false when the container has no real dimensions yet or no windows are
// enumerable; the caller retries shortly after.
func (s *Session) Populate(containerWidth, containerHeight float64) (Frame, bool) {
	if containerWidth < minContainerWidth {
		return Frame{}, false
	}

	snapshot := s.windows.List()
	if len(snapshot) == 0 {
		return Frame{}, false
	}

	geo, ok := layout.Solve(layout.Params{
		ItemCount:            len(snapshot),
		ContainerWidth:       containerWidth,
		ContainerHeight:      containerHeight,
		Spacing:              float64(s.cfg.Grid.Spacing),
		AspectRatio:          s.cfg.Grid.AspectRatio,
		WidthFraction:        s.cfg.Grid.WidthFraction,
		HeightFraction:       s.cfg.Grid.HeightFraction,
		MinTileWidth:         float64(s.cfg.Grid.MinTileWidth),
		MaxTileWidthFraction: s.cfg.Grid.MaxTileWidthFraction,
	})
	if !ok {
		return Frame{}, false
	}

	iconSize := s.cfg.IconSizeFor(int(geo.TileWidth))
	tiles := make([]Tile, 0, len(snapshot))
	for i, win := range snapshot {
		tiles = append(tiles, Tile{
			Row:      i / geo.Columns,
			Col:      i % geo.Columns,
			Window:   win,
			Label:    tileLabel(win),
			IconName: icons.Pick(s.hasIcon, win.AppID),
			IconSize: iconSize,
		})
	}

	frame := Frame{
		Clock:      s.Clock(),
		Geometry:   geo,
		Tiles:      tiles,
		Dock:       dock.Reconcile(s.dockEntries, dock.LiveAppIDs(snapshot)),
		VolumeIcon: status.VolumeIcon(s.exec, s.cfg.Tools.Volume),
	}
	if battery, ok := status.BatteryInfo(s.exec, s.cfg.Tools.Power); ok {
		frame.Battery = &battery
	}

	s.snapshot = snapshot
	s.frame = frame
	return frame, true
}

// Frame returns the last populated frame.
func (s *Session) Frame() Frame { return s.frame }

// Snapshot returns the window list behind the last populated frame.
func (s *Session) Snapshot() []wlrctl.Toplevel { return s.snapshot }

// Clock formats the current time for the overlay header.
func (s *Session) Clock() string {
	return s.now().Format(s.cfg.ClockFormat)
}

// ActivateTile focuses the window behind a tile of the last frame.
func (s *Session) ActivateTile(index int) {
	if index < 0 || index >= len(s.frame.Tiles) {
		return
	}
	s.resolver.FocusWindow(s.frame.Tiles[index].Window)
}

// CloseTile closes the window behind a tile of the last frame.
func (s *Session) CloseTile(index int) {
	if index < 0 || index >= len(s.frame.Tiles) {
		return
	}
	s.resolver.CloseWindow(s.frame.Tiles[index].Window)
}

// ActivateDock applies the dock click policy to an entry of the last frame.
func (s *Session) ActivateDock(index int, btn dock.Button) {
	if index < 0 || index >= len(s.frame.Dock) {
		return
	}
	if err := dock.Activate(s.frame.Dock[index], btn, dockFocuser{s}, s.launch); err != nil {
		log.Printf("dock activate %q: %v", s.frame.Dock[index].Entry.Tooltip(), err)
	}
}

// SessionAction runs a named overlay chrome action (workspace switch,
// mixer, lock, ...) as its configured command string. Unknown names are
// ignored.
func (s *Session) SessionAction(name string) {
	command, ok := s.cfg.SessionActions[name]
	if !ok {
		return
	}
	if err := s.launch(command); err != nil {
		log.Printf("session action %q: %v", name, err)
	}
}

func tileLabel(win wlrctl.Toplevel) string {
	if win.NormalizedTitle != "" {
		return win.NormalizedTitle
	}
	return win.AppID
}

// dockFocuser adapts the resolver to the dock's Focuser against the
// session's current snapshot.
type dockFocuser struct{ s *Session }

func (f dockFocuser) FocusApp(appID string) {
	f.s.resolver.FocusApp(appID, f.s.snapshot)
}
