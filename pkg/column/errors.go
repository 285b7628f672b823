package column

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownToken is returned for a config or option token that is not
	// in the vocabulary.
	ErrUnknownToken = errors.New("unknown column token")

	// ErrEmptyValue is returned when a config value contains no tokens.
	ErrEmptyValue = errors.New("empty column value")

	// ErrInvalidMode is returned when a packed mode cannot be decoded.
	ErrInvalidMode = errors.New("invalid column mode")
)

// TokenError reports the offending token and the full value it came from.
type TokenError struct {
	Token string
	Value string
}

func (e *TokenError) Error() string {
	if e.Value == "" || e.Value == e.Token {
		return fmt.Sprintf("unsupported style %q", e.Token)
	}
	return fmt.Sprintf("unsupported style %q in %q", e.Token, e.Value)
}

// Is lets errors.Is(err, ErrUnknownToken) match a *TokenError.
func (e *TokenError) Is(target error) bool {
	return target == ErrUnknownToken
}
