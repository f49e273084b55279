package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/broomlabs/wloverview/internal/action"
	"github.com/broomlabs/wloverview/internal/config"
	"github.com/broomlabs/wloverview/internal/daemon"
	"github.com/broomlabs/wloverview/internal/dock"
	"github.com/broomlabs/wloverview/internal/dockedit"
	"github.com/broomlabs/wloverview/internal/ipc"
	"github.com/broomlabs/wloverview/internal/launch"
	"github.com/broomlabs/wloverview/internal/resolver"
	"github.com/broomlabs/wloverview/internal/title"
	"github.com/broomlabs/wloverview/internal/wlrctl"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		if len(os.Args) > 2 && (os.Args[2] == "help" || os.Args[2] == "-h" || os.Args[2] == "--help") {
			fmt.Fprintln(os.Stdout, "Usage: wloverview daemon")
			os.Exit(0)
		}
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Usage: wloverview daemon")
			os.Exit(2)
		}
		runDaemon()
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "dock":
		os.Exit(runDock(os.Args[2:]))
	case "focus":
		os.Exit(runFocus(os.Args[2:]))
	case "close":
		os.Exit(runClose(os.Args[2:]))
	case "launch":
		os.Exit(runLaunch(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wloverview <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the overview daemon (foreground)")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "  reload              Ask the daemon to reread its configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  windows             List enumerated toplevel windows")
	fmt.Fprintln(w, "  focus               Focus a window by app id and optional title")
	fmt.Fprintln(w, "  close               Close a window by app id and title")
	fmt.Fprintln(w, "  launch              Launch a command detached")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  dock                Show dock entries with running state")
	fmt.Fprintln(w, "  dock edit           Open the interactive dock editor")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate the settings file")
	fmt.Fprintln(w, "  config print        Print the effective settings")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'wloverview <command> --help' for command-specific options.")
}

func loadConfigOrExit() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

func newWindowClient(cfg *config.Config) *wlrctl.Client {
	return wlrctl.NewClient(cfg.Tools.WindowControl, cfg.SelfAppID, action.ProcessExecutor{})
}

func runDaemon() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	d := daemon.New(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGUSR1:
				d.ReloadDock()
			case os.Interrupt, syscall.SIGTERM:
				logger.Info("shutting down")
				cancel()
				return
			}
		}
	}()

	if err := d.Run(ctx); err != nil {
		log.Fatalf("Daemon failed: %v", err)
	}
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runWindows(args []string) int {
	fs := flag.NewFlagSet("windows", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wloverview windows")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List toplevel windows as the overview sees them.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "windows takes no arguments")
		fs.Usage()
		return 2
	}

	cfg := loadConfigOrExit()
	for _, win := range newWindowClient(cfg).List() {
		fmt.Printf("%s\t%s\n", win.AppID, win.NormalizedTitle)
	}
	return 0
}

func runDock(args []string) int {
	if len(args) > 0 && args[0] == "edit" {
		return runDockEdit(args[1:])
	}

	fs := flag.NewFlagSet("dock", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wloverview dock [edit]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show dock entries and their running state.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Unknown dock command: %s\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cfg := loadConfigOrExit()
	path, err := dockPath(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	snapshot := newWindowClient(cfg).List()
	statuses := dock.Reconcile(dock.Load(path), dock.LiveAppIDs(snapshot))
	for _, st := range statuses {
		marker := " "
		if st.Running {
			marker = "*"
		}
		fmt.Printf("%s %-24s %s\n", marker, st.Entry.Tooltip(), st.Entry.Exec)
	}
	return 0
}

func runDockEdit(args []string) int {
	fs := flag.NewFlagSet("dock edit", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wloverview dock edit [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open the interactive dock entry editor.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	pathFlag := fs.String("path", "", "Dock config file (default: standard location)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "dock edit takes no arguments")
		fs.Usage()
		return 2
	}

	path := *pathFlag
	if path == "" {
		cfg := loadConfigOrExit()
		var err error
		path, err = dockPath(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if err := dockedit.Run(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func dockPath(cfg *config.Config) (string, error) {
	if cfg.DockPath != "" {
		return cfg.DockPath, nil
	}
	return dock.DefaultConfigPath()
}

func runFocus(args []string) int {
	fs := flag.NewFlagSet("focus", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wloverview focus <appid> [title]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Fire the focus cascade for a window.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "focus requires <appid> and an optional [title]")
		fs.Usage()
		return 2
	}

	cfg := loadConfigOrExit()
	win := wlrctl.Toplevel{AppID: fs.Arg(0)}
	if fs.NArg() == 2 {
		win.Title = fs.Arg(1)
		win.NormalizedTitle = title.Normalize(fs.Arg(1))
	}
	resolver.New(newWindowClient(cfg)).FocusWindow(win)
	return 0
}

func runClose(args []string) int {
	fs := flag.NewFlagSet("close", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wloverview close <appid> <title>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Close the window matching an app id and title.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "close requires <appid> and <title>")
		fs.Usage()
		return 2
	}

	cfg := loadConfigOrExit()
	win := wlrctl.Toplevel{
		AppID:           fs.Arg(0),
		Title:           fs.Arg(1),
		NormalizedTitle: title.Normalize(fs.Arg(1)),
	}
	resolver.New(newWindowClient(cfg)).CloseWindow(win)
	return 0
}

func runLaunch(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: wloverview launch <command...>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Launch a command detached, with ~ and $VAR expansion.")
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	launcher := launch.New(action.ProcessExecutor{})
	if err := launcher.Launch(strings.Join(args, " ")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  wloverview config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  wloverview config print [--path PATH]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		pathFlag := fs.String("path", "", "Settings file (default: standard location)")
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		if _, err := loadConfigFrom(*pathFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("configuration valid")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		pathFlag := fs.String("path", "", "Settings file (default: standard location)")
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		cfg, err := loadConfigFrom(*pathFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		enc.Close()
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}

func loadConfigFrom(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wloverview status")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show daemon status via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	status, err := ipc.NewClient().GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("daemon_running: %v\n", status.DaemonRunning)
	fmt.Printf("window_count:   %d\n", status.WindowCount)
	fmt.Printf("dock_items:     %d\n", status.DockItems)
	fmt.Printf("grid:           %dx%d\n", status.GridColumns, status.GridRows)
	fmt.Printf("uptime_seconds: %d\n", status.UptimeSeconds)
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wloverview reload")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Ask the daemon to reread its configuration and dock file.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "reload takes no arguments")
		fs.Usage()
		return 2
	}

	if err := ipc.NewClient().Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
