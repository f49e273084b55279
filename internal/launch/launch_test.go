package launch

import (
	"reflect"
	"testing"
)

type recordingExec struct {
	executed [][]string
}

func (r *recordingExec) Execute(argv []string) { r.executed = append(r.executed, argv) }
func (r *recordingExec) Output(argv []string) (string, error) {
	return "", nil
}

func TestSplitCommand_QuotingAndEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`foot`, []string{"foot"}},
		{`env FOO=bar app --flag`, []string{"env", "FOO=bar", "app", "--flag"}},
		{`app "two words"`, []string{"app", "two words"}},
		{`app 'single quoted'`, []string{"app", "single quoted"}},
		{`app escaped\ space`, []string{"app", "escaped space"}},
		{`app "a 'b' c"`, []string{"app", "a 'b' c"}},
		{`app ''`, []string{"app", ""}},
		{"app\targ1  arg2", []string{"app", "arg1", "arg2"}},
	}

	for _, tc := range cases {
		got, err := SplitCommand(tc.in)
		if err != nil {
			t.Fatalf("SplitCommand(%q): unexpected error: %v", tc.in, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitCommand(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSplitCommand_Malformed(t *testing.T) {
	for _, in := range []string{`app "unterminated`, `app 'unterminated`, `app trailing\`} {
		if _, err := SplitCommand(in); err == nil {
			t.Fatalf("SplitCommand(%q): expected error", in)
		}
	}
}

func TestExpandToken_EnvAndTilde(t *testing.T) {
	t.Setenv("WLOV_TEST_DIR", "/opt/apps")
	t.Setenv("HOME", "/home/broom")

	cases := map[string]string{
		"$WLOV_TEST_DIR/bin":   "/opt/apps/bin",
		"${WLOV_TEST_DIR}/etc": "/opt/apps/etc",
		"~/notes.txt":          "/home/broom/notes.txt",
		"~":                    "/home/broom",
		"plain":                "plain",
		"not~expanded":         "not~expanded",
	}
	for in, want := range cases {
		if got := ExpandToken(in); got != want {
			t.Fatalf("ExpandToken(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestLaunch_SpawnsExpandedArgv(t *testing.T) {
	t.Setenv("HOME", "/home/broom")
	rec := &recordingExec{}
	l := New(rec)

	if err := l.Launch(`editor "~/my notes/today.md"`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.executed) != 1 {
		t.Fatalf("expected 1 spawn, got %d", len(rec.executed))
	}
	want := []string{"editor", "/home/broom/my notes/today.md"}
	if !reflect.DeepEqual(rec.executed[0], want) {
		t.Fatalf("expected %q, got %q", want, rec.executed[0])
	}
}

func TestLaunch_EmptyCommandIsNoOp(t *testing.T) {
	rec := &recordingExec{}
	l := New(rec)

	if err := l.Launch("   "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.executed) != 0 {
		t.Fatalf("expected no spawn for empty command")
	}
}

func TestLaunch_MalformedCommandErrorsWithoutSpawn(t *testing.T) {
	rec := &recordingExec{}
	l := New(rec)

	if err := l.Launch(`app "broken`); err == nil {
		t.Fatalf("expected error for malformed command")
	}
	if len(rec.executed) != 0 {
		t.Fatalf("expected no spawn for malformed command")
	}
}
