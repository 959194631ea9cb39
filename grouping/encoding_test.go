package grouping_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkalt/grouper/grouping"
)

func TestMarshalJSON(t *testing.T) {
	cases := []struct {
		assertion string
		kind      grouping.Kind
		input     string
		expected  string
	}{
		{
			"list",
			grouping.List,
			"AbBa",
			`[{"key":"a","values":["A","a"]},{"key":"b","values":["b","B"]}]`,
		},
		{
			"set",
			grouping.Set,
			"AaAb",
			`[{"key":"a","values":["A","a"]},{"key":"b","values":["b"]}]`,
		},
		{
			"counting",
			grouping.Counting,
			"AaAb",
			`[{"key":"a","values":["A","a"],"counts":[2,1]},{"key":"b","values":["b"],"counts":[1]}]`,
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			g, err := grouping.FromPairs(foldedPairs(c.input), grouping.WithKind(c.kind))
			require.NoError(t, err)
			data, err := json.Marshal(g)
			require.NoError(t, err)
			assert.JSONEq(t, c.expected, string(data))
		})
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		kind     grouping.Kind
		expected string
	}{
		{grouping.List, "Grouping{a: [A a A], b: [b]}"},
		{grouping.Set, "Grouping{a: {A a}, b: {b}}"},
		{grouping.Counting, "Grouping{a: {A:2 a:1}, b: {b:1}}"},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			g, err := grouping.FromPairs(foldedPairs("AabA"), grouping.WithKind(c.kind))
			require.NoError(t, err)
			assert.Equal(t, c.expected, g.String())
		})
	}
}
