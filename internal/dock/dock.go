// Package dock models the pinned-application strip: the user-configured
// entry list, its running state against the live window snapshot, and the
// focus-vs-launch click policy.
package dock

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/broomlabs/wloverview/internal/wlrctl"
)

// Entry is one pinned launcher as stored in the dock config file. The array
// order in the file is the display order; this package never mutates the
// list (rewriting the file is the editor's job).
type Entry struct {
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon"`
	Exec  string `json:"exec"`
	AppID string `json:"app_id,omitempty"`
}

// EffectiveAppID is the identifier used for running-state checks: the
// explicit app_id when configured, else the icon name as a pseudo-id.
func (e Entry) EffectiveAppID() string {
	if e.AppID != "" {
		return e.AppID
	}
	return e.Icon
}

// Tooltip is the hover text for an entry: title, else app id, else icon.
func (e Entry) Tooltip() string {
	switch {
	case e.Title != "":
		return e.Title
	case e.AppID != "":
		return e.AppID
	default:
		return e.Icon
	}
}

// Status pairs an entry with its running state for one reconciliation pass.
type Status struct {
	Entry   Entry
	Running bool
}

// DefaultConfigPath returns the dock entry list location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wloverview", "config.json"), nil
}

// Load reads the ordered entry list. A missing or unparseable file means
// "dock not configured" and yields an empty list, never an error.
func Load(path string) []Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// LiveAppIDs collects the set of app ids present in a window snapshot.
func LiveAppIDs(snapshot []wlrctl.Toplevel) map[string]struct{} {
	live := make(map[string]struct{}, len(snapshot))
	for _, win := range snapshot {
		live[win.AppID] = struct{}{}
	}
	return live
}

// Reconcile computes running state for each entry, preserving order. An
// entry is running iff its effective app id appears in the live set.
func Reconcile(entries []Entry, live map[string]struct{}) []Status {
	out := make([]Status, 0, len(entries))
	for _, e := range entries {
		_, running := live[e.EffectiveAppID()]
		out = append(out, Status{Entry: e, Running: running})
	}
	return out
}

// Button distinguishes the activation gestures the click policy cares about.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
)

// Focuser focuses the best window for an application id.
type Focuser interface {
	FocusApp(appID string)
}

// LaunchFunc spawns a new instance from an entry's command string.
type LaunchFunc func(command string) error

// Activate applies the click policy for one reconciled entry: primary on a
// running entry focuses it, primary on a stopped entry launches it, and
// middle click always launches a fresh instance.
func Activate(st Status, btn Button, focus Focuser, launch LaunchFunc) error {
	if btn == ButtonMiddle {
		return launch(st.Entry.Exec)
	}
	if st.Running {
		focus.FocusApp(st.Entry.EffectiveAppID())
		return nil
	}
	return launch(st.Entry.Exec)
}
