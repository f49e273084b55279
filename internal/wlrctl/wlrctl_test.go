package wlrctl

import (
	"fmt"
	"strings"
	"testing"
)

// fakeExec records every spawned argv and serves canned enumeration output.
type fakeExec struct {
	executed [][]string
	listOut  string
	listErr  error
}

func (f *fakeExec) Execute(argv []string) {
	f.executed = append(f.executed, argv)
}

func (f *fakeExec) Output(argv []string) (string, error) {
	return f.listOut, f.listErr
}

func TestList_ParsesColonDelimitedLines(t *testing.T) {
	fe := &fakeExec{listOut: "org.mozilla.firefox:Home — Firefox\nfoot:~/src – fish\n"}
	c := NewClient("wlrctl", "org.broomlabs.wloverview", fe)

	tops := c.List()
	if len(tops) != 2 {
		t.Fatalf("expected 2 toplevels, got %d", len(tops))
	}
	if tops[0].AppID != "org.mozilla.firefox" {
		t.Fatalf("unexpected appId %q", tops[0].AppID)
	}
	if tops[0].Title != "Home — Firefox" {
		t.Fatalf("unexpected raw title %q", tops[0].Title)
	}
	if tops[0].NormalizedTitle != "Home - Firefox" {
		t.Fatalf("unexpected normalized title %q", tops[0].NormalizedTitle)
	}
}

func TestList_TitleMayContainColons(t *testing.T) {
	fe := &fakeExec{listOut: "foot:vim: main.go\n"}
	c := NewClient("wlrctl", "self", fe)

	tops := c.List()
	if len(tops) != 1 {
		t.Fatalf("expected 1 toplevel, got %d", len(tops))
	}
	if tops[0].Title != "vim: main.go" {
		t.Fatalf("split should stop at the first colon, got title %q", tops[0].Title)
	}
}

func TestList_SkipsMalformedAndSelf(t *testing.T) {
	fe := &fakeExec{listOut: "no colon here\norg.broomlabs.wloverview:wloverview\nfoot:shell\n\n"}
	c := NewClient("wlrctl", "org.broomlabs.wloverview", fe)

	tops := c.List()
	if len(tops) != 1 || tops[0].AppID != "foot" {
		t.Fatalf("expected only foot, got %+v", tops)
	}
}

func TestList_ToolFailureYieldsEmpty(t *testing.T) {
	fe := &fakeExec{listErr: fmt.Errorf("executable not found")}
	c := NewClient("wlrctl", "self", fe)

	if tops := c.List(); len(tops) != 0 {
		t.Fatalf("expected empty list on tool failure, got %+v", tops)
	}
}

func TestFocus_BuildsKeyValueArgs(t *testing.T) {
	fe := &fakeExec{}
	c := NewClient("wlrctl", "self", fe)

	c.Focus(MatchSpec{{KeyAppID, "foot"}, {KeyTitle, "shell"}})

	if len(fe.executed) != 1 {
		t.Fatalf("expected 1 execution, got %d", len(fe.executed))
	}
	got := strings.Join(fe.executed[0], " ")
	want := "wlrctl toplevel focus app_id:foot title:shell"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestClose_EmptySpecIsNoOp(t *testing.T) {
	fe := &fakeExec{}
	c := NewClient("wlrctl", "self", fe)

	c.Close(nil)
	if len(fe.executed) != 0 {
		t.Fatalf("expected no execution for empty spec")
	}
}
