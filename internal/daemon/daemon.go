// Package daemon runs the headless overview engine: it owns the refresh
// loop, keeps the frame model current, and serves it over IPC. A renderer
// process embeds the same session against real container dimensions; the
// daemon maintains the model against the configured virtual ones.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allan-simon/go-singleinstance"

	"github.com/broomlabs/wloverview/internal/action"
	"github.com/broomlabs/wloverview/internal/config"
	"github.com/broomlabs/wloverview/internal/ipc"
	"github.com/broomlabs/wloverview/internal/launch"
	"github.com/broomlabs/wloverview/internal/overview"
	"github.com/broomlabs/wloverview/internal/resolver"
	"github.com/broomlabs/wloverview/internal/runtimepath"
	"github.com/broomlabs/wloverview/internal/schedule"
	"github.com/broomlabs/wloverview/internal/wlrctl"
)

// Fallback container box when no renderer has reported real dimensions.
const (
	defaultContainerWidth  = 1920
	defaultContainerHeight = 1080
)

// Daemon wires the session, scheduler, and IPC server together.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	session *overview.Session
	loop    *schedule.Loop

	containerWidth  float64
	containerHeight float64

	// mu guards session access shared between the scheduler goroutine and
	// IPC connection goroutines.
	mu sync.Mutex

	ipcServer *ipc.Server
	lockFile  *os.File
}

// New builds a daemon from the loaded configuration.
func New(cfg *config.Config, logger *slog.Logger) *Daemon {
	exec := action.ProcessExecutor{}
	client := wlrctl.NewClient(cfg.Tools.WindowControl, cfg.SelfAppID, exec)
	launcher := launch.New(exec)

	session := overview.NewSession(overview.Options{
		Config:   cfg,
		Windows:  client,
		Resolver: resolver.New(client),
		Launch:   launcher.Launch,
		Exec:     exec,
		DockPath: cfg.DockPath,
	})

	return &Daemon{
		cfg:             cfg,
		logger:          logger,
		session:         session,
		loop:            schedule.NewLoop(),
		containerWidth:  defaultContainerWidth,
		containerHeight: defaultContainerHeight,
	}
}

// Session exposes the running session for embedding renderers.
func (d *Daemon) Session() *overview.Session { return d.session }

// Run acquires the single-instance lock, starts the IPC server, and drives
// the refresh loop until ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	lockPath, err := runtimepath.LockPath()
	if err != nil {
		return err
	}
	lockFile, err := singleinstance.CreateLockFile(lockPath)
	if err != nil {
		return fmt.Errorf("another instance is already running (lock %s)", lockPath)
	}
	d.lockFile = lockFile
	defer d.lockFile.Close()

	ipcServer, err := ipc.NewServer(ipc.Handlers{
		Status: d.status,
		Reload: d.Reload,
	})
	if err != nil {
		return err
	}
	if err := ipcServer.Start(); err != nil {
		return err
	}
	d.ipcServer = ipcServer
	defer ipcServer.Stop()

	d.loop.Soon("populate", d.cfg.Timers.Populate.Std(), d.populate)
	d.loop.Every("refresh", d.cfg.Timers.Volume.Std(), d.refresh)
	d.loop.Every("clock", d.cfg.Timers.Clock.Std(), d.tickClock)

	d.logger.Info("daemon started",
		"window_control", d.cfg.Tools.WindowControl,
		"dock", d.session.DockPath())

	d.loop.Run(ctx)
	d.logger.Info("daemon stopped")
	return nil
}

// populate retries until the first frame is ready, then stops; the refresh
// task takes over.
func (d *Daemon) populate() bool {
	d.mu.Lock()
	frame, ready := d.session.Populate(d.containerWidth, d.containerHeight)
	d.mu.Unlock()
	if !ready {
		return true
	}
	d.logger.Info("first frame ready",
		"windows", len(frame.Tiles),
		"grid", fmt.Sprintf("%dx%d", frame.Geometry.Columns, frame.Geometry.Rows))
	return false
}

// refresh rebuilds the frame: window snapshot, dock state, volume, battery.
func (d *Daemon) refresh() bool {
	d.mu.Lock()
	_, ready := d.session.Populate(d.containerWidth, d.containerHeight)
	d.mu.Unlock()
	if !ready {
		d.logger.Debug("refresh skipped, no windows enumerable")
	}
	return true
}

func (d *Daemon) tickClock() bool {
	d.mu.Lock()
	clock := d.session.Clock()
	d.mu.Unlock()
	d.logger.Debug("clock", "text", clock)
	return true
}

// ReloadDock rereads only the dock entry list, as the SIGUSR1 handler and
// the dock editor need.
func (d *Daemon) ReloadDock() {
	d.mu.Lock()
	d.session.ReloadDock()
	d.mu.Unlock()
	d.logger.Info("dock config reloaded")
}

// Reload rereads the settings file and the dock entry list.
func (d *Daemon) Reload() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.cfg = cfg
	d.session.UpdateConfig(cfg)
	d.session.ReloadDock()
	d.mu.Unlock()
	d.logger.Info("configuration reloaded")
	return nil
}

func (d *Daemon) status() ipc.StatusData {
	d.mu.Lock()
	defer d.mu.Unlock()

	frame := d.session.Frame()
	return ipc.StatusData{
		WindowCount: len(frame.Tiles),
		DockItems:   len(frame.Dock),
		GridColumns: frame.Geometry.Columns,
		GridRows:    frame.Geometry.Rows,
		ConfigPath:  d.session.DockPath(),
	}
}
