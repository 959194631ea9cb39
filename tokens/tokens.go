/*
Package tokens splits text into the items the CLI groups (words, characters
and word trigrams) and provides the stock key functions used to group them.
*/
package tokens

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/wkalt/grouper/grouping"
	"github.com/wkalt/grouper/util"
)

// Bigram is a pair of consecutive words.
type Bigram = util.Pair[string, string]

// Trigram is a bigram and the word that follows it.
type Trigram = util.Pair[Bigram, string]

// Words returns the whitespace-separated words of r.
func Words(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	words := []string{}
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan words: %w", err)
	}
	return words, nil
}

// Characters returns the characters of s, one string per rune.
func Characters(s string) []string {
	result := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		result = append(result, string(r))
	}
	return result
}

// ComputeTrigrams returns every run of three consecutive words.
func ComputeTrigrams(words []string) []Trigram {
	result := []Trigram{}
	for i := 0; i+2 < len(words); i++ {
		result = append(result, util.NewPair(util.NewPair(words[i], words[i+1]), words[i+2]))
	}
	return result
}

// BuildTrigrams groups the followers of every word pair in words.
func BuildTrigrams(words []string, opts ...grouping.Option) (*grouping.Grouping[Trigram, Bigram, string], error) {
	g, err := grouping.FromPairs(ComputeTrigrams(words), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build trigrams: %w", err)
	}
	return g, nil
}

// Fold returns the case-folded form of s, suitable for caseless matching.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Initial returns the first character of s.
func Initial(s string) (string, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return "", ErrEmptyToken
	}
	return string(r), nil
}

// Length returns the number of characters of s in decimal.
func Length(s string) string {
	return strconv.Itoa(utf8.RuneCountInString(s))
}

// KeyFunc returns the key function registered under name: "fold", "initial",
// "length" or "identity".
func KeyFunc(name string) (func(string) (string, error), error) {
	switch strings.ToLower(name) {
	case "fold":
		return grouping.Pure(Fold), nil
	case "initial":
		return Initial, nil
	case "length":
		return grouping.Pure(Length), nil
	case "identity":
		return grouping.Pure(func(s string) string { return s }), nil
	default:
		return nil, UnknownKeyFuncError{name: name}
	}
}
