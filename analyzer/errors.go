package analyzer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding reports text that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")
	// ErrInputTooLong reports text longer than Config.MaxInputRunes.
	ErrInputTooLong = errors.New("text exceeds maximum length")
)

// TokenizationError is returned when morphological analysis cannot run on
// the given text. No partial Result accompanies it.
type TokenizationError struct {
	Err error
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("tokenize: %v", e.Err)
}

func (e *TokenizationError) Unwrap() error {
	return e.Err
}
