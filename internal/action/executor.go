// Package action isolates process spawning behind a small capability so the
// decision logic above it (identity resolution, dock dispatch, launching)
// stays deterministic under test.
package action

import (
	"fmt"
	"log"
	"os/exec"
	"syscall"
)

// Executor runs external commands on behalf of the overlay.
//
// Execute is fire-and-forget: compositor action tools expose no usable
// success signal, so nothing waits on the spawned process. Output is for the
// pollers and the enumerator, which do consume stdout.
type Executor interface {
	Execute(argv []string)
	Output(argv []string) (string, error)
}

// ProcessExecutor is the real Executor backed by os/exec.
type ProcessExecutor struct{}

// Execute spawns argv detached in its own session with output discarded.
// Failures are logged and absorbed: no external-tool failure may take the
// overlay down.
func (ProcessExecutor) Execute(argv []string) {
	if len(argv) == 0 {
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	// Detach from the overlay's session so launched applications outlive it.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		log.Printf("action: failed to start %s: %v", argv[0], err)
		return
	}

	// Reap the child without blocking the caller.
	go func() {
		_ = cmd.Wait()
	}()
}

// Output runs argv and returns its stdout.
func (ProcessExecutor) Output(argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("action: empty command")
	}
	out, err := exec.Command(argv[0], argv[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("action: %s failed: %w", argv[0], err)
	}
	return string(out), nil
}
