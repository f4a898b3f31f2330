package derivation

import (
	"errors"
	"fmt"
)

var ErrInvalidDerivedPath = errors.New("invalid derived path")

// ValidateDerivedPath checks a path before it is handed to a key derivation
// service. The root is accepted, Ethereum chain ids are not.
func ValidateDerivedPath(raw string) error {
	if raw == "" {
		return nil
	}
	if raw[0] != '/' {
		return fmt.Errorf("%w: %q must start with a slash", ErrInvalidDerivedPath, raw)
	}

	for i, s := range Parse(raw).Segments {
		if s.Value == "" {
			return fmt.Errorf("%w: junction %d of %q is empty", ErrInvalidDerivedPath, i, raw)
		}
		for _, c := range s.Value {
			if !isJunctionChar(c) {
				return fmt.Errorf("%w: junction %q contains %q", ErrInvalidDerivedPath, s.Value, c)
			}
		}
	}
	return nil
}

func isJunctionChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.':
		return true
	}
	return false
}
