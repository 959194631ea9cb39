package grouping_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkalt/grouper/grouping"
	"github.com/wkalt/grouper/util"
)

var studentSchools = []util.Pair[string, string]{
	util.NewPair("SchoolA", "Fred"),
	util.NewPair("SchoolB", "Bob"),
	util.NewPair("SchoolA", "Mary"),
	util.NewPair("SchoolB", "Jane"),
	util.NewPair("SchoolC", "Nancy"),
}

var schoolGroups = map[string][]string{
	"SchoolA": {"Fred", "Mary"},
	"SchoolB": {"Bob", "Jane"},
	"SchoolC": {"Nancy"},
}

func foldedPairs(s string) []util.Pair[string, string] {
	pairs := make([]util.Pair[string, string], 0, len(s))
	for _, r := range s {
		pairs = append(pairs, util.NewPair(strings.ToLower(string(r)), string(r)))
	}
	return pairs
}

func TestNew(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		g, err := grouping.New[util.Pair[string, string], string, string](nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, g.Len())
		assert.Equal(t, grouping.List, g.Kind())
	})
	t.Run("unsupported kind", func(t *testing.T) {
		_, err := grouping.FromPairs(studentSchools, grouping.WithKind(grouping.Kind(42)))
		require.ErrorIs(t, err, grouping.ConfigurationError{})
	})
	t.Run("items without a first element", func(t *testing.T) {
		_, err := grouping.New[string, string, string](nil, nil)
		require.ErrorIs(t, err, grouping.ConfigurationError{})
	})
	t.Run("item that cannot be a value", func(t *testing.T) {
		_, err := grouping.New[int, string, string](grouping.Pure(func(int) string { return "k" }), nil)
		require.ErrorIs(t, err, grouping.ConfigurationError{})
	})
}

func TestSet(t *testing.T) {
	t.Run("one item", func(t *testing.T) {
		g, err := grouping.New[util.Pair[string, string], string, string](nil, nil)
		require.NoError(t, err)
		g.Set("key", "value")
		assert.Equal(t, 1, g.Len())
		assert.Equal(t, map[string][]string{"key": {"value"}}, g.AsMap())
	})
	t.Run("loop over pairs", func(t *testing.T) {
		g, err := grouping.New[util.Pair[string, string], string, string](nil, nil)
		require.NoError(t, err)
		for _, p := range studentSchools {
			g.Set(p.First, p.Second)
		}
		assert.Equal(t, schoolGroups, g.AsMap())
		assert.Equal(t, []string{"SchoolA", "SchoolB", "SchoolC"}, g.Keys())
	})
}

func TestConstructors(t *testing.T) {
	t.Run("from pairs", func(t *testing.T) {
		g, err := grouping.FromPairs(studentSchools)
		require.NoError(t, err)
		assert.Equal(t, 3, g.Len())
		assert.Equal(t, schoolGroups, g.AsMap())
	})
	t.Run("from map", func(t *testing.T) {
		g, err := grouping.FromMap(schoolGroups)
		require.NoError(t, err)
		assert.Equal(t, schoolGroups, g.AsMap())
	})
	t.Run("from sorted map", func(t *testing.T) {
		g, err := grouping.FromSortedMap(map[string][]string{
			"SchoolC": {"Bob"},
			"SchoolA": {"Fred", "Mary"},
			"SchoolB": {"Ann"},
		}, grouping.WithKind(grouping.Set))
		require.NoError(t, err)
		assert.Equal(t, []string{"SchoolA", "SchoolB", "SchoolC"}, g.Keys())
		assert.Equal(t, grouping.Set, g.Kind())

		grouping.UpdateSortedMap(g, map[string][]string{"SchoolE": {"Zoe"}, "SchoolD": {"Al"}, "SchoolA": {"Fred"}})
		assert.Equal(t, []string{"SchoolA", "SchoolB", "SchoolC", "SchoolD", "SchoolE"}, g.Keys())
		b, ok := g.Get("SchoolA")
		require.True(t, ok)
		assert.Equal(t, []string{"Fred", "Mary"}, b.Values())
	})
	t.Run("pairs and map are equal", func(t *testing.T) {
		fromPairs, err := grouping.FromPairs(studentSchools)
		require.NoError(t, err)
		fromMap, err := grouping.FromMap(schoolGroups)
		require.NoError(t, err)
		assert.True(t, fromPairs.Equal(fromMap))
		assert.True(t, fromMap.Equal(fromPairs))
	})
	t.Run("from groups", func(t *testing.T) {
		src, err := grouping.FromPairs(studentSchools)
		require.NoError(t, err)
		g, err := grouping.FromGroups[string, string](src)
		require.NoError(t, err)
		assert.Equal(t, src.Keys(), g.Keys())
		assert.True(t, g.Equal(src))
		g.Set("SchoolA", "Zoe")
		assert.False(t, g.Equal(src))
	})
	t.Run("case folded characters", func(t *testing.T) {
		g, err := grouping.FromPairs(foldedPairs("AbBa"))
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"a": {"A", "a"}, "b": {"b", "B"}}, g.AsMap())
	})
	t.Run("names by first initial", func(t *testing.T) {
		names := []string{"Fred", "Bob", "Frank", "Mary", "Billy"}
		g, err := grouping.ByKey(names, grouping.Pure(func(s string) string { return s[:1] }))
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{
			"F": {"Fred", "Frank"},
			"B": {"Bob", "Billy"},
			"M": {"Mary"},
		}, g.AsMap())
	})
	t.Run("explicit key and value", func(t *testing.T) {
		words := []string{"apple", "avocado", "banana"}
		g, err := grouping.FromItems(
			words,
			grouping.Pure(func(s string) byte { return s[0] }),
			grouping.Pure(func(s string) int { return len(s) }),
		)
		require.NoError(t, err)
		assert.Equal(t, map[byte][]int{'a': {5, 7}, 'b': {6}}, g.AsMap())
	})
}

type flight struct {
	origin      string
	destination string
	pilot       string
}

func (f flight) GetFirst() string {
	return f.origin
}

func TestOnlyValueFunction(t *testing.T) {
	flights := []flight{
		{"Seattle", "Cleveland", "Barker"},
		{"Cleveland", "Oakland", "Jones"},
		{"Cleveland", "San Jose", "Miller"},
		{"Seattle", "Boston", "Cooper"},
		{"San Francisco", "Atlanta", "Barker"},
	}
	g, err := grouping.FromItems[flight, string, string](
		flights,
		nil,
		grouping.Pure(func(f flight) string { return f.pilot }),
	)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"Seattle":       {"Barker", "Cooper"},
		"Cleveland":     {"Jones", "Miller"},
		"San Francisco": {"Barker"},
	}, g.AsMap())
}

func TestBucketKinds(t *testing.T) {
	t.Run("list keeps order and duplicates", func(t *testing.T) {
		g, err := grouping.FromPairs(foldedPairs("AbBaAAbCccDe"))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "a", "A", "A"}, mustLookup(t, g, "a").Values())
		assert.Equal(t, []string{"C", "c", "c"}, mustLookup(t, g, "c").Values())
	})
	t.Run("set deduplicates", func(t *testing.T) {
		g, err := grouping.FromPairs(foldedPairs("AbBaAAbCccDe"), grouping.WithKind(grouping.Set))
		require.NoError(t, err)
		assert.Equal(t, 5, g.Len())
		assert.ElementsMatch(t, []string{"a", "A"}, mustLookup(t, g, "a").Values())
		assert.ElementsMatch(t, []string{"b", "B"}, mustLookup(t, g, "b").Values())
		assert.ElementsMatch(t, []string{"c", "C"}, mustLookup(t, g, "c").Values())
	})
	t.Run("counting tallies", func(t *testing.T) {
		g, err := grouping.FromPairs(foldedPairs("AbBaAAbCccDe"), grouping.WithKind(grouping.Counting))
		require.NoError(t, err)
		a := mustLookup(t, g, "a")
		assert.Equal(t, 3, a.Count("A"))
		assert.Equal(t, 1, a.Count("a"))
		assert.Equal(t, 0, a.Count("z"))
		assert.Equal(t, 2, a.Len())
		assert.Equal(t, 4, a.(*grouping.CountingBucket[string]).Total())
	})
}

func mustLookup[T any, K, V comparable](t *testing.T, g *grouping.Grouping[T, K, V], key K) grouping.Bucket[V] {
	t.Helper()
	b, err := g.Lookup(key)
	require.NoError(t, err)
	return b
}

func TestLookup(t *testing.T) {
	g, err := grouping.FromPairs(studentSchools)
	require.NoError(t, err)

	b, ok := g.Get("SchoolC")
	require.True(t, ok)
	assert.Equal(t, []string{"Nancy"}, b.Values())

	_, ok = g.Get("SchoolZ")
	assert.False(t, ok)
	assert.False(t, g.Contains("SchoolZ"))
	assert.True(t, g.Contains("SchoolA"))

	_, err = g.Lookup("SchoolZ")
	require.ErrorIs(t, err, grouping.KeyNotFoundError{})
}

func TestUpdate(t *testing.T) {
	t.Run("map extends existing buckets", func(t *testing.T) {
		g, err := grouping.FromPairs(studentSchools)
		require.NoError(t, err)
		g.UpdateMap(map[string][]string{
			"SchoolA": {"Zoe", "Fred"},
			"SchoolD": {"Ann"},
		})
		assert.Equal(t, map[string][]string{
			"SchoolA": {"Fred", "Mary", "Zoe", "Fred"},
			"SchoolB": {"Bob", "Jane"},
			"SchoolC": {"Nancy"},
			"SchoolD": {"Ann"},
		}, g.AsMap())
	})
	t.Run("groups extend existing buckets", func(t *testing.T) {
		g, err := grouping.FromPairs(studentSchools)
		require.NoError(t, err)
		other, err := grouping.FromPairs([]util.Pair[string, string]{
			util.NewPair("SchoolC", "Olga"),
			util.NewPair("SchoolE", "Ed"),
		})
		require.NoError(t, err)
		g.UpdateGroups(other)
		assert.Equal(t, []string{"SchoolA", "SchoolB", "SchoolC", "SchoolE"}, g.Keys())
		assert.Equal(t, []string{"Nancy", "Olga"}, mustLookup(t, g, "SchoolC").Values())
	})
	t.Run("set buckets union", func(t *testing.T) {
		g, err := grouping.FromPairs(foldedPairs("Aa"), grouping.WithKind(grouping.Set))
		require.NoError(t, err)
		g.UpdateMap(map[string][]string{"a": {"a", "A", "á"}})
		assert.Equal(t, []string{"A", "a", "á"}, mustLookup(t, g, "a").Values())
	})
	t.Run("counting buckets add tallies", func(t *testing.T) {
		g, err := grouping.FromPairs(foldedPairs("AAa"), grouping.WithKind(grouping.Counting))
		require.NoError(t, err)
		other, err := grouping.FromPairs(foldedPairs("Aaa"), grouping.WithKind(grouping.Counting))
		require.NoError(t, err)
		g.UpdateGroups(other)
		a := mustLookup(t, g, "a")
		assert.Equal(t, 3, a.Count("A"))
		assert.Equal(t, 3, a.Count("a"))

		g.UpdateMap(map[string][]string{"a": {"a", "a"}})
		assert.Equal(t, 5, a.Count("a"))
	})
	t.Run("items through derivation functions", func(t *testing.T) {
		g, err := grouping.ByKey([]string{"apple"}, grouping.Pure(func(s string) string { return s[:1] }))
		require.NoError(t, err)
		require.NoError(t, g.Update([]string{"avocado", "banana"}))
		require.NoError(t, g.Add("blueberry"))
		assert.Equal(t, map[string][]string{
			"a": {"apple", "avocado"},
			"b": {"banana", "blueberry"},
		}, g.AsMap())
	})
}

func TestDerivationErrors(t *testing.T) {
	errEmpty := errors.New("empty word")
	initial := func(s string) (string, error) {
		if s == "" {
			return "", errEmpty
		}
		return s[:1], nil
	}
	t.Run("key failure stops the batch", func(t *testing.T) {
		g, err := grouping.ByKey[string, string](nil, initial)
		require.NoError(t, err)
		err = g.Update([]string{"ant", "bee", "", "cat"})
		require.ErrorIs(t, err, grouping.KeyDerivationError{})
		require.ErrorIs(t, err, errEmpty)
		assert.Equal(t, []string{"a", "b"}, g.Keys())
	})
	t.Run("constructor surfaces key failure", func(t *testing.T) {
		_, err := grouping.ByKey([]string{""}, initial)
		require.ErrorIs(t, err, grouping.KeyDerivationError{})
	})
	t.Run("value failure commits nothing for the item", func(t *testing.T) {
		errOdd := errors.New("odd length")
		g, err := grouping.New(initial, func(s string) (int, error) {
			if len(s)%2 == 1 {
				return 0, errOdd
			}
			return len(s), nil
		})
		require.NoError(t, err)
		require.NoError(t, g.Add("bear"))
		err = g.Add("cat")
		require.ErrorIs(t, err, grouping.ValueDerivationError{})
		require.ErrorIs(t, err, errOdd)
		assert.False(t, g.Contains("c"))
		assert.Equal(t, 1, g.Len())
	})
}

func TestFromKeys(t *testing.T) {
	t.Run("seeds empty buckets", func(t *testing.T) {
		g, err := grouping.FromKeys[string, string]([]string{"a", "b"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, g.Keys())
		assert.Equal(t, 0, mustLookup(t, g, "a").Len())
	})
	t.Run("buckets do not alias", func(t *testing.T) {
		initial := []string{"x"}
		g, err := grouping.FromKeys([]string{"a", "b", "a"}, initial)
		require.NoError(t, err)
		g.Set("a", "y")
		assert.Equal(t, []string{"x", "y"}, mustLookup(t, g, "a").Values())
		assert.Equal(t, []string{"x"}, mustLookup(t, g, "b").Values())
		assert.Equal(t, []string{"x"}, initial)
	})
	t.Run("set kind", func(t *testing.T) {
		g, err := grouping.FromKeys([]int{1, 2}, []string{"x", "x"}, grouping.WithKind(grouping.Set))
		require.NoError(t, err)
		g.Set(1, "z")
		assert.Equal(t, map[int][]string{1: {"x", "z"}, 2: {"x"}}, g.AsMap())
	})
}

func TestEqual(t *testing.T) {
	list1, err := grouping.FromPairs(foldedPairs("AbBa"))
	require.NoError(t, err)
	list2, err := grouping.FromPairs(foldedPairs("bBAa"))
	require.NoError(t, err)
	assert.True(t, list1.Equal(list2))

	list3, err := grouping.FromPairs(foldedPairs("aAbB"))
	require.NoError(t, err)
	assert.False(t, list1.Equal(list3))

	set1, err := grouping.FromPairs(foldedPairs("AbBa"), grouping.WithKind(grouping.Set))
	require.NoError(t, err)
	set2, err := grouping.FromPairs(foldedPairs("aABbbb"), grouping.WithKind(grouping.Set))
	require.NoError(t, err)
	assert.True(t, set1.Equal(set2))
	assert.False(t, set1.Equal(list1))

	counter1, err := grouping.FromPairs(foldedPairs("AAb"), grouping.WithKind(grouping.Counting))
	require.NoError(t, err)
	counter2, err := grouping.FromPairs(foldedPairs("bAA"), grouping.WithKind(grouping.Counting))
	require.NoError(t, err)
	counter3, err := grouping.FromPairs(foldedPairs("Ab"), grouping.WithKind(grouping.Counting))
	require.NoError(t, err)
	assert.True(t, counter1.Equal(counter2))
	assert.False(t, counter1.Equal(counter3))
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		input    string
		expected grouping.Kind
	}{
		{"list", grouping.List},
		{"SET", grouping.Set},
		{"counting", grouping.Counting},
		{" counter ", grouping.Counting},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			kind, err := grouping.ParseKind(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, kind)
		})
	}
	t.Run("unknown", func(t *testing.T) {
		_, err := grouping.ParseKind("bag")
		require.ErrorIs(t, err, grouping.ConfigurationError{})
	})
	assert.Equal(t, "counting", grouping.Counting.String())
	assert.Equal(t, "Kind(9)", grouping.Kind(9).String())
}
