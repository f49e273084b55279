// Package resolver maps a captured window handle back to the live window it
// came from.
//
// Identifier conventions vary across wlroots tools (app_id vs app-id), and a
// live title may not share the Unicode normalization of the captured one.
// With no success signal available from the action tool, the resolver fires
// a priority-ordered cascade of match attempts and issues every one of them:
// best-effort by design, not guaranteed-correct. The cascade sits behind the
// WindowActions interface so a richer tool that does report success could
// short-circuit it without touching the ordering logic.
package resolver

import (
	"os"
	"strings"

	"github.com/broomlabs/wloverview/internal/wlrctl"
)

// WindowActions is the slice of the action tool the resolver needs.
type WindowActions interface {
	Focus(spec wlrctl.MatchSpec)
	Close(spec wlrctl.MatchSpec)
}

// Resolver issues focus and close requests for window handles.
type Resolver struct {
	windows WindowActions
}

func New(windows WindowActions) *Resolver {
	return &Resolver{windows: windows}
}

// FocusWindow fires the full focus cascade for one window handle. Attempts
// are issued strictly in order; only one is expected to logically apply.
func (r *Resolver) FocusWindow(win wlrctl.Toplevel) {
	for _, spec := range FocusCascade(win) {
		r.windows.Focus(spec)
	}
}

// CloseWindow issues the single close attempt: app_id plus normalized title.
func (r *Resolver) CloseWindow(win wlrctl.Toplevel) {
	if win.AppID == "" && win.NormalizedTitle == "" {
		return
	}
	r.windows.Close(wlrctl.MatchSpec{
		{Key: wlrctl.KeyAppID, Value: win.AppID},
		{Key: wlrctl.KeyTitle, Value: win.NormalizedTitle},
	})
}

// FocusApp focuses the best window for an application id, as the dock needs:
// the first snapshot window with a matching app id gets the full cascade;
// with no candidate, an app-id-only cascade is fired blind.
func (r *Resolver) FocusApp(appID string, snapshot []wlrctl.Toplevel) {
	for _, win := range snapshot {
		if win.AppID == appID {
			r.FocusWindow(win)
			return
		}
	}
	r.FocusWindow(wlrctl.Toplevel{AppID: appID})
}

var appIDKeys = []string{wlrctl.KeyAppID, wlrctl.KeyAppIDDash}

// FocusCascade builds the ordered match attempts for one handle:
//
//  1. both app-id key spellings with the raw title (and its tilde variants)
//  2. the same with the normalized title, when it differs
//  3. raw title alone
//  4. normalized title alone, when it differs
//  5. both app-id key spellings alone
//
// Exported for tests; the ordering is the contract.
func FocusCascade(win wlrctl.Toplevel) []wlrctl.MatchSpec {
	var specs []wlrctl.MatchSpec

	appIDWithTitle := func(t string) {
		for _, key := range appIDKeys {
			for _, variant := range titleVariants(t) {
				specs = append(specs, wlrctl.MatchSpec{
					{Key: key, Value: win.AppID},
					{Key: wlrctl.KeyTitle, Value: variant},
				})
			}
		}
	}

	if win.AppID != "" && win.Title != "" {
		appIDWithTitle(win.Title)
	}
	if win.AppID != "" && win.NormalizedTitle != "" && win.NormalizedTitle != win.Title {
		appIDWithTitle(win.NormalizedTitle)
	}
	if win.Title != "" {
		specs = append(specs, wlrctl.MatchSpec{{Key: wlrctl.KeyTitle, Value: win.Title}})
	}
	if win.NormalizedTitle != "" && win.NormalizedTitle != win.Title {
		specs = append(specs, wlrctl.MatchSpec{{Key: wlrctl.KeyTitle, Value: win.NormalizedTitle}})
	}
	if win.AppID != "" {
		for _, key := range appIDKeys {
			specs = append(specs, wlrctl.MatchSpec{{Key: key, Value: win.AppID}})
		}
	}

	return specs
}

// titleVariants returns the title as captured plus, when it contains a
// tilde, a copy with the first tilde expanded to the home directory.
// Terminals routinely abbreviate the home directory in titles while the
// compositor reports the expanded path.
func titleVariants(t string) []string {
	if !strings.Contains(t, "~") {
		return []string{t}
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return []string{t}
	}
	return []string{t, strings.Replace(t, "~", home, 1)}
}
