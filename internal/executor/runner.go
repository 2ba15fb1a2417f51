// Package executor runs external commands and captures their output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result holds what a finished command produced.
type Result struct {
	Stdout []byte
	Stderr []byte

	// ExitCode is the process exit code, or -1 when the process did not
	// exit normally (e.g. it was killed by a signal).
	ExitCode int

	// Exited is false when no exit status is available.
	Exited bool
}

// Success reports whether the command exited with status 0.
func (r *Result) Success() bool {
	return r.Exited && r.ExitCode == 0
}

// Runner executes a command with arguments and captures its output.
type Runner interface {
	// Run returns an error only when the command could not be started.
	// A non-zero exit is reported through Result.
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// ExecRunner implements Runner using os/exec. The command inherits the
// process environment.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args, waits for it and captures stdout and stderr
// separately. No timeout is applied beyond what ctx carries.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	if name == "" {
		return nil, fmt.Errorf("command is empty")
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("starting %s: %w", name, err)
		}
	}

	result := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.Exited = cmd.ProcessState.Exited()
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	return result, nil
}

// CommandLine renders name and args for logs.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
