package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_ErrorCodesAreConsistentAcrossConstructors tests that each
// constructor always produces its documented exit code.
func TestProperty_ErrorCodesAreConsistentAcrossConstructors(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("generic errors return code 1", prop.ForAll(
		func(message string) bool {
			err := NewGenericError(message, nil)
			return err.Code == CodeGeneric && int(err.Code) == 1
		},
		gen.AnyString(),
	))

	properties.Property("usage errors return code 2", prop.ForAll(
		func(message string) bool {
			err := NewUsageError(message)
			return err.Code == CodeUsage && int(err.Code) == 2
		},
		gen.AnyString(),
	))

	properties.Property("API errors return code 3", prop.ForAll(
		func(message string) bool {
			err := NewAPIError(message, nil)
			return err.Code == CodeAPIFailure && int(err.Code) == 3
		},
		gen.AnyString(),
	))

	properties.Property("auth errors return code 4", prop.ForAll(
		func(message string) bool {
			err := NewAuthError(message, nil)
			return err.Code == CodeAuth && int(err.Code) == 4
		},
		gen.AnyString(),
	))

	properties.Property("profile errors return code 5", prop.ForAll(
		func(message string) bool {
			err := NewProfileError(message)
			return err.Code == CodeNoProfile && int(err.Code) == 5
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestProperty_ErrorMessagesIncludeCause tests that a wrapped cause is part of
// the message and reachable via errors.Unwrap.
func TestProperty_ErrorMessagesIncludeCause(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("cause is included and unwrappable", prop.ForAll(
		func(message, causeText string) bool {
			cause := fmt.Errorf("%s", causeText)
			err := NewAPIError(message, cause)
			return errors.Unwrap(err) == cause && err.Error() == fmt.Sprintf("%s: %v", message, cause)
		},
		gen.AnyString(),
		gen.AlphaString(),
	))

	properties.Property("without cause the message stands alone", prop.ForAll(
		func(message string) bool {
			err := NewGenericError(message, nil)
			return err.Error() == message && errors.Unwrap(err) == nil
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCLIError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewAuthError("invalid token", nil))

	var cliErr *CLIError
	if !errors.As(wrapped, &cliErr) {
		t.Fatal("expected errors.As to find CLIError")
	}
	if cliErr.Code != CodeAuth {
		t.Errorf("expected code %d, got %d", CodeAuth, cliErr.Code)
	}
}
