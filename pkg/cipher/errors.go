/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error kinds reported by the cipher and analysis packages.
*/

package cipher

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when a key lies outside [MinKey, MaxKey]
	ErrInvalidKey = errors.New("invalid key")

	// ErrEmptyInput is returned when frequency analysis sees no letters
	ErrEmptyInput = errors.New("no letters to analyze")
)

// ValidateKey checks that key can be used for a fixed-key operation.
// Out-of-range keys are rejected, never wrapped.
func ValidateKey(key int) error {
	if key < MinKey || key > MaxKey {
		return fmt.Errorf("%w: key %d must be in the range [%d,%d]", ErrInvalidKey, key, MinKey, MaxKey)
	}
	return nil
}
