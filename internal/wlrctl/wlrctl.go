// Package wlrctl is the client for the compositor's foreign-toplevel tool.
//
// Enumeration and window actions both go through the wlrctl binary: the
// overlay never speaks a compositor protocol itself. wlrctl exposes no
// success signal for focus/close, so actions here are fire-and-forget.
package wlrctl

import (
	"strings"

	"github.com/broomlabs/wloverview/internal/action"
	"github.com/broomlabs/wloverview/internal/title"
)

// Accepted application-identifier key spellings. wlroots-based tools differ
// on which one they parse.
const (
	KeyAppID     = "app_id"
	KeyAppIDDash = "app-id"
	KeyTitle     = "title"
)

// Toplevel is one open window as reported by the enumeration tool. It is
// ephemeral: rebuilt wholesale on every poll, with no identity beyond value
// equality of its fields.
type Toplevel struct {
	AppID           string
	Title           string
	NormalizedTitle string
}

// Constraint is a single key:value matcher.
type Constraint struct {
	Key   string
	Value string
}

// MatchSpec is an ordered list of constraints submitted with one action
// attempt.
type MatchSpec []Constraint

func (m MatchSpec) args() []string {
	out := make([]string, 0, len(m))
	for _, c := range m {
		out = append(out, c.Key+":"+c.Value)
	}
	return out
}

// Client wraps the wlrctl binary.
type Client struct {
	command   string
	selfAppID string
	exec      action.Executor
}

// NewClient builds a Client. command is the tool name ("wlrctl"); selfAppID
// is the overlay's own application id, excluded from enumeration results.
func NewClient(command, selfAppID string, exec action.Executor) *Client {
	return &Client{command: command, selfAppID: selfAppID, exec: exec}
}

// List enumerates open toplevels. Output lines are expected as
// "appId:title"; malformed lines are skipped and the overlay's own window is
// excluded. Any tool failure yields an empty list, never an error: the
// caller treats an empty snapshot as "not ready" and retries.
func (c *Client) List() []Toplevel {
	raw, err := c.exec.Output([]string{c.command, "toplevel", "list"})
	if err != nil {
		return nil
	}
	return c.parseList(raw)
}

func (c *Client) parseList(raw string) []Toplevel {
	var out []Toplevel
	for _, line := range strings.Split(raw, "\n") {
		appID, winTitle, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		appID = strings.TrimSpace(appID)
		winTitle = strings.TrimSpace(winTitle)
		if appID == c.selfAppID {
			continue
		}
		out = append(out, Toplevel{
			AppID:           appID,
			Title:           winTitle,
			NormalizedTitle: title.Normalize(winTitle),
		})
	}
	return out
}

// Focus submits one focus attempt for the given match spec.
func (c *Client) Focus(spec MatchSpec) {
	c.action("focus", spec)
}

// Close submits one close attempt for the given match spec.
func (c *Client) Close(spec MatchSpec) {
	c.action("close", spec)
}

func (c *Client) action(verb string, spec MatchSpec) {
	if len(spec) == 0 {
		return
	}
	argv := append([]string{c.command, "toplevel", verb}, spec.args()...)
	c.exec.Execute(argv)
}
