/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Driver-level error kinds and their process exit codes.
*/

package commands

import (
	"errors"
	"fmt"

	"github.com/kleascm/shiftcipher/pkg/cipher"
	"github.com/spf13/cobra"
)

var (
	// ErrUsage marks malformed or missing command-line arguments
	ErrUsage = errors.New("usage error")

	// ErrIO marks a message that could not be read
	ErrIO = errors.New("input error")
)

// Exit codes
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitInvalidKey = 3
	ExitEmptyInput = 4
	ExitIO         = 5
)

// ExitCode maps an error returned by a command to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, cipher.ErrInvalidKey):
		return ExitInvalidKey
	case errors.Is(err, cipher.ErrEmptyInput):
		return ExitEmptyInput
	case errors.Is(err, ErrIO):
		return ExitIO
	default:
		return ExitFailure
	}
}

// usageError wraps err as ErrUsage
func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// usageArgs turns argument validation failures into usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
