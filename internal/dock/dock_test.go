package dock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/broomlabs/wloverview/internal/wlrctl"
)

type fakeFocuser struct {
	focused []string
}

func (f *fakeFocuser) FocusApp(appID string) { f.focused = append(f.focused, appID) }

func TestEffectiveAppID_FallsBackToIcon(t *testing.T) {
	e := Entry{Icon: "firefox", AppID: "org.mozilla.firefox"}
	if got := e.EffectiveAppID(); got != "org.mozilla.firefox" {
		t.Fatalf("expected explicit app_id, got %q", got)
	}
	e = Entry{Icon: "firefox"}
	if got := e.EffectiveAppID(); got != "firefox" {
		t.Fatalf("expected icon fallback, got %q", got)
	}
}

func TestReconcile_RunningStateAndOrder(t *testing.T) {
	entries := []Entry{
		{Icon: "firefox", AppID: "org.mozilla.firefox", Exec: "firefox"},
		{Icon: "foot", Exec: "foot"},
		{Icon: "gimp", AppID: "org.gimp.GIMP", Exec: "gimp"},
	}
	live := LiveAppIDs([]wlrctl.Toplevel{
		{AppID: "org.mozilla.firefox"},
		{AppID: "foot"},
	})

	statuses := Reconcile(entries, live)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	for i := range entries {
		if statuses[i].Entry != entries[i] {
			t.Fatalf("order not preserved at %d: %+v", i, statuses[i].Entry)
		}
	}
	if !statuses[0].Running || !statuses[1].Running || statuses[2].Running {
		t.Fatalf("unexpected running states: %+v", statuses)
	}
}

func TestReconcile_EmptyLiveSet(t *testing.T) {
	statuses := Reconcile([]Entry{{Icon: "firefox", AppID: "org.app"}}, LiveAppIDs(nil))
	if statuses[0].Running {
		t.Fatalf("expected not running with empty live set")
	}
}

func TestActivate_PrimaryOnRunningFocuses(t *testing.T) {
	f := &fakeFocuser{}
	launched := []string{}
	launch := func(cmd string) error {
		launched = append(launched, cmd)
		return nil
	}

	st := Status{Entry: Entry{Icon: "firefox", AppID: "org.app", Exec: "firefox"}, Running: true}
	if err := Activate(st, ButtonPrimary, f, launch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.focused) != 1 || f.focused[0] != "org.app" {
		t.Fatalf("expected focus on org.app, got %v", f.focused)
	}
	if len(launched) != 0 {
		t.Fatalf("expected no launch, got %v", launched)
	}
}

func TestActivate_PrimaryOnStoppedLaunches(t *testing.T) {
	f := &fakeFocuser{}
	launched := []string{}
	launch := func(cmd string) error {
		launched = append(launched, cmd)
		return nil
	}

	st := Status{Entry: Entry{Icon: "firefox", AppID: "org.app", Exec: "firefox"}}
	if err := Activate(st, ButtonPrimary, f, launch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.focused) != 0 {
		t.Fatalf("expected no focus, got %v", f.focused)
	}
	if len(launched) != 1 || launched[0] != "firefox" {
		t.Fatalf("expected firefox launch, got %v", launched)
	}
}

func TestActivate_MiddleAlwaysLaunches(t *testing.T) {
	f := &fakeFocuser{}
	launched := []string{}
	launch := func(cmd string) error {
		launched = append(launched, cmd)
		return nil
	}

	st := Status{Entry: Entry{Icon: "foot", Exec: "foot"}, Running: true}
	if err := Activate(st, ButtonMiddle, f, launch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(launched) != 1 || len(f.focused) != 0 {
		t.Fatalf("middle click must launch even when running: launched=%v focused=%v", launched, f.focused)
	}
}

func TestLoad_MissingOrBadFileMeansUnconfigured(t *testing.T) {
	if got := Load(filepath.Join(t.TempDir(), "absent.json")); got != nil {
		t.Fatalf("expected nil for missing file, got %v", got)
	}

	bad := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Load(bad); got != nil {
		t.Fatalf("expected nil for unparseable file, got %v", got)
	}
}

func TestLoad_PreservesArrayOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `[
    {"title": "Browser", "icon": "firefox", "exec": "firefox", "app_id": "org.mozilla.firefox"},
    {"icon": "foot", "exec": "foot"},
    {"icon": "gimp", "exec": "gimp"}
]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	entries := Load(path)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].AppID != "org.mozilla.firefox" || entries[1].Icon != "foot" || entries[2].Icon != "gimp" {
		t.Fatalf("order or fields wrong: %+v", entries)
	}
}
