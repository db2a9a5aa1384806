package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/crossroads/internal/logging"
	"github.com/aretw0/crossroads/internal/presentation/tui"
	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/runner"
	"golang.org/x/term"
)

// ExitInternal is the exit status for a tree found malformed during a walk.
const ExitInternal = 70

// ExitError carries the process exit status for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by this package to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// createLogger configures the application logger on Stderr, away from the session on Stdout.
// Without --debug only warnings and errors get through.
func createLogger(debug, jsonMode bool) *slog.Logger {
	return logging.New(logging.Config{Level: logging.LevelFor(debug), JSON: jsonMode})
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, styled bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if styled {
		fmt.Fprintln(w, tui.SystemMessage(msg))
		return
	}
	fmt.Fprintf(w, ">>> %s\n", msg)
}

// handleExecutionError turns the runner outcome into the command result.
// Abandoned sessions are not failures; a malformed tree is an internal error.
func handleExecutionError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, runner.ErrAbandoned):
		return nil
	case errors.Is(err, domain.ErrMalformedTree), errors.Is(err, domain.ErrNodeNotFound):
		return &ExitError{Code: ExitInternal, Err: fmt.Errorf("internal error: %w", err)}
	default:
		return err
	}
}

func logCompletion(w io.Writer, styled bool, node string, err error, sig os.Signal) {
	switch {
	case err == nil:
		printSystemMessage(w, styled, "Finished at '%s'.", node)
	case errors.Is(err, runner.ErrAbandoned) && sig == os.Interrupt:
		fmt.Fprintln(w, "[CTRL+C]")
		printSystemMessage(w, styled, "Interrupted at '%s'.", node)
	case errors.Is(err, runner.ErrAbandoned) && sig != nil:
		fmt.Fprintln(w)
		printSystemMessage(w, styled, "Terminated at '%s'.", node)
	case errors.Is(err, runner.ErrAbandoned):
		fmt.Fprintln(w)
		printSystemMessage(w, styled, "Session abandoned at '%s'.", node)
	}
}
