// Package errors holds the CLI-facing error values and the helpers that print them.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitkit/internal/logger"
)

var (
	// ErrHabitNotFound is returned when a habit reference matches nothing
	ErrHabitNotFound = errors.New("habit not found")
	// ErrAmbiguousHabit is returned when a name matches more than one habit
	ErrAmbiguousHabit = errors.New("habit name is ambiguous, use the id instead")
	// ErrNotSignedIn is returned by commands that need a session
	ErrNotSignedIn = errors.New("not signed in, run 'habitkit login' first")
)

// HabitNotFound wraps ErrHabitNotFound with the reference the user gave
func HabitNotFound(ref string) error {
	return fmt.Errorf("%w: %q", ErrHabitNotFound, ref)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...any) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatalf logs a formatted error and exits the program with exit code 1
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}
