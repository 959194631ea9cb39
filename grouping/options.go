package grouping

/*
Options for constructing a grouping.
*/

////////////////////////////////////////////////////////////////////////////////

import (
	"fmt"
	"strings"
)

// Kind selects the collection used for every bucket of a grouping.
type Kind int

const (
	// List buckets keep every value in insertion order, duplicates included.
	List Kind = iota
	// Set buckets keep each distinct value once.
	Set
	// Counting buckets keep a tally per distinct value.
	Counting
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case List:
		return "list"
	case Set:
		return "set"
	case Counting:
		return "counting"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) valid() bool {
	return k == List || k == Set || k == Counting
}

// ParseKind parses a bucket kind name. Names are case-insensitive and
// "counter" is accepted as an alias for "counting".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list":
		return List, nil
	case "set":
		return Set, nil
	case "counting", "counter":
		return Counting, nil
	default:
		return 0, NewConfigurationError(fmt.Sprintf("unsupported bucket kind %q", s))
	}
}

type config struct {
	kind Kind
}

// Option is a function that modifies the grouping configuration.
type Option func(*config)

// WithKind sets the bucket kind. Defaults to List.
func WithKind(kind Kind) Option {
	return func(c *config) {
		c.kind = kind
	}
}

func newConfig(opts ...Option) (config, error) {
	c := config{kind: List}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.kind.valid() {
		return c, NewConfigurationError(fmt.Sprintf("unsupported bucket kind %s", c.kind))
	}
	return c, nil
}
