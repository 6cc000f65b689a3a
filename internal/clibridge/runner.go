package clibridge

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
)

// DefaultBin is the external command the bridge shells out to.
const DefaultBin = "obsidian"

// DefaultTimeout bounds a single invocation.
const DefaultTimeout = 30 * time.Second

// Error carries the exit details of a failed invocation alongside the
// rendered message.
type Error struct {
	ExitCode int
	Stderr   string
	Msg      string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return apperr.ErrCommand }

// Runner executes the external Obsidian binary. Arguments follow the CLI's
// key=value convention; the vault selector always goes first.
type Runner struct {
	bin     string
	timeout time.Duration
}

func NewRunner(bin string, timeout time.Duration) *Runner {
	if bin == "" {
		bin = DefaultBin
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{bin: bin, timeout: timeout}
}

// Available reports whether the binary can be found on PATH.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.bin)
	return err == nil
}

// Run invokes the binary with the given arguments and returns trimmed
// stdout. A non-empty vault name is passed as the leading vault= selector.
func (r *Runner) Run(ctx context.Context, vault string, args ...string) (string, error) {
	argv := make([]string, 0, len(args)+1)
	if vault != "" {
		argv = append(argv, "vault="+vault)
	}
	argv = append(argv, args...)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, argv...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", &Error{
			ExitCode: -1,
			Msg:      fmt.Sprintf("Command timed out after %s: %s %s", r.timeout, r.bin, strings.Join(argv, " ")),
		}
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &Error{
				ExitCode: -1,
				Msg: "Obsidian CLI not found. Make sure Obsidian 1.12+ is installed " +
					"and CLI is enabled in Settings → General → Command line interface.",
			}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			errOut := strings.TrimSpace(stderr.String())
			detail := errOut
			if detail == "" {
				detail = strings.TrimSpace(stdout.String())
			}
			return "", &Error{
				ExitCode: exitErr.ExitCode(),
				Stderr:   errOut,
				Msg:      fmt.Sprintf("Command failed (exit %d): %s", exitErr.ExitCode(), detail),
			}
		}
		return "", &Error{ExitCode: -1, Msg: fmt.Sprintf("Command failed: %v", err)}
	}
	return strings.TrimSpace(stdout.String()), nil
}
