package tokens

import (
	"errors"
	"fmt"
)

// ErrEmptyToken is returned when a key is requested for an empty token.
var ErrEmptyToken = errors.New("empty token")

// UnknownKeyFuncError is returned when no key function has the given name.
type UnknownKeyFuncError struct {
	name string
}

func (e UnknownKeyFuncError) Error() string {
	return fmt.Sprintf("unknown key function %q", e.name)
}

func (e UnknownKeyFuncError) Is(target error) bool {
	_, ok := target.(UnknownKeyFuncError)
	return ok
}
