// Package launch turns a dock entry's command string into a detached
// process: shell-style tokenization, per-token tilde and environment
// expansion, then a fire-and-forget spawn through the action executor.
package launch

import (
	"fmt"
	"os"
	"strings"

	"github.com/broomlabs/wloverview/internal/action"
)

// Launcher spawns configured commands.
type Launcher struct {
	exec action.Executor
}

func New(exec action.Executor) *Launcher {
	return &Launcher{exec: exec}
}

// Launch tokenizes and spawns the command. An empty command is a no-op; a
// malformed one (unterminated quote) is reported but must not take the
// overlay down, so the only caller obligation is to log the error.
func (l *Launcher) Launch(command string) error {
	if strings.TrimSpace(command) == "" {
		return nil
	}

	argv, err := SplitCommand(command)
	if err != nil {
		return fmt.Errorf("launch: %w", err)
	}
	if len(argv) == 0 {
		return nil
	}

	for i, tok := range argv {
		argv[i] = ExpandToken(tok)
	}

	l.exec.Execute(argv)
	return nil
}

// ExpandToken expands environment-variable references and then a leading
// tilde in one token, mirroring shell behavior minus word splitting.
func ExpandToken(tok string) string {
	tok = os.ExpandEnv(tok)

	if tok == "~" || strings.HasPrefix(tok, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && home != "" {
			return home + tok[1:]
		}
	}
	return tok
}

// SplitCommand splits a shell-like command string into arguments, honoring
// single quotes, double quotes, and backslash escapes.
func SplitCommand(s string) ([]string, error) {
	var (
		argv     []string
		cur      strings.Builder
		haveWord bool
		escaped  bool
		quote    rune // 0, '\'' or '"'
	)

	endWord := func() {
		if haveWord || cur.Len() > 0 {
			argv = append(argv, cur.String())
			cur.Reset()
			haveWord = false
		}
	}

	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			haveWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			haveWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			endWord()
		default:
			cur.WriteRune(r)
		}
	}

	if escaped {
		return nil, fmt.Errorf("unfinished escape in command %q", s)
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in command %q", s)
	}
	endWord()

	return argv, nil
}
