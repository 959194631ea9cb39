package grouping

import "fmt"

/*
Errors that can be returned by the grouping package.
*/

////////////////////////////////////////////////////////////////////////////////

// ConfigurationError is returned when a grouping is constructed with an
// unsupported bucket kind or with derivation defaults that cannot apply to
// the item type.
type ConfigurationError struct {
	reason string
}

// Error returns a string representation of the error.
func (e ConfigurationError) Error() string {
	return "invalid grouping configuration: " + e.reason
}

// Is returns true if the target error is a ConfigurationError.
func (e ConfigurationError) Is(target error) bool {
	_, ok := target.(ConfigurationError)
	return ok
}

// NewConfigurationError returns a ConfigurationError with the given reason.
func NewConfigurationError(reason string) error {
	return ConfigurationError{reason: reason}
}

// KeyDerivationError is returned when the key function fails on an item.
type KeyDerivationError struct {
	item any
	err  error
}

// Error returns a string representation of the error.
func (e KeyDerivationError) Error() string {
	return fmt.Sprintf("failed to derive key for %v: %s", e.item, e.err)
}

// Unwrap returns the error raised by the key function.
func (e KeyDerivationError) Unwrap() error {
	return e.err
}

// Is returns true if the target error is a KeyDerivationError.
func (e KeyDerivationError) Is(target error) bool {
	_, ok := target.(KeyDerivationError)
	return ok
}

// ValueDerivationError is returned when the value function fails on an item.
type ValueDerivationError struct {
	item any
	err  error
}

// Error returns a string representation of the error.
func (e ValueDerivationError) Error() string {
	return fmt.Sprintf("failed to derive value for %v: %s", e.item, e.err)
}

// Unwrap returns the error raised by the value function.
func (e ValueDerivationError) Unwrap() error {
	return e.err
}

// Is returns true if the target error is a ValueDerivationError.
func (e ValueDerivationError) Is(target error) bool {
	_, ok := target.(ValueDerivationError)
	return ok
}

// KeyNotFoundError is returned by Lookup when the key has no bucket.
type KeyNotFoundError struct {
	key any
}

// Error returns a string representation of the error.
func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found", e.key)
}

// Is returns true if the target error is a KeyNotFoundError.
func (e KeyNotFoundError) Is(target error) bool {
	_, ok := target.(KeyNotFoundError)
	return ok
}

// InvalidArgumentError is returned when an argument is out of range.
type InvalidArgumentError struct {
	name  string
	value any
}

// Error returns a string representation of the error.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %v", e.name, e.value)
}

// Is returns true if the target error is a InvalidArgumentError.
func (e InvalidArgumentError) Is(target error) bool {
	_, ok := target.(InvalidArgumentError)
	return ok
}
