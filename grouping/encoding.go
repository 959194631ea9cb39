package grouping

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

type group[K, V comparable] struct {
	Key    K     `json:"key"`
	Values []V   `json:"values"`
	Counts []int `json:"counts,omitempty"`
}

// MarshalJSON encodes the grouping as an array of {key, values} objects in
// first-seen key order. Counting buckets add a counts array parallel to
// values. An array is used because keys need not be strings.
func (g *Grouping[T, K, V]) MarshalJSON() ([]byte, error) {
	groups := make([]group[K, V], 0, len(g.keys))
	for _, key := range g.keys {
		b := g.buckets[key]
		entry := group[K, V]{Key: key, Values: b.Values()}
		if b.Kind() == Counting {
			entry.Counts = make([]int, len(entry.Values))
			for i, v := range entry.Values {
				entry.Counts[i] = b.Count(v)
			}
		}
		groups = append(groups, entry)
	}
	data, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal grouping: %w", err)
	}
	return data, nil
}

// String returns a string representation of the grouping.
func (g *Grouping[T, K, V]) String() string {
	sb := &strings.Builder{}
	sb.WriteString("Grouping{")
	for i, key := range g.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v: %v", key, g.buckets[key]))
	}
	sb.WriteString("}")
	return sb.String()
}
