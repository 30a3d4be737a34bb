package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrInvalidParameters     = errors.New("invalid simulation parameters")
	ErrDataSourceUnavailable = errors.New("data source unavailable")
	ErrDataConsistency       = errors.New("data consistency check failed")
	ErrNotFound              = errors.New("resource not found")
)

// Run phases used to tag where a simulation run failed.
const (
	PhaseGeneration  = "generation"
	PhasePersistence = "persistence"
	PhaseAggregation = "aggregation"
)

// PhaseError wraps an error with the run phase it occurred in, so a failed
// run reports whether it stopped while generating, persisting or aggregating.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// InPhase tags an error with a run phase. Returns nil for a nil error.
func InPhase(phase string, err error) error {
	if err == nil {
		return nil
	}
	return &PhaseError{Phase: phase, Err: err}
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
