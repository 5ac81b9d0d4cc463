package userreg

import (
	"context"
	"strings"

	"github.com/go-leo/gox/slicex"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/slices"
)

// WordListFilter is a ProfanityFilter backed by a fixed word list.
// The list is lowercased at construction; matching is case-insensitive.
type WordListFilter struct {
	words []string
}

// NewWordListFilter builds a filter from words.
func NewWordListFilter(words ...string) *WordListFilter {
	lowered := make([]string, 0, len(words))
	for _, word := range words {
		lowered = append(lowered, strings.ToLower(word))
	}
	return &WordListFilter{words: lowered}
}

// ParseWordList builds a filter from a JSON array of words.
func ParseWordList(data []byte) (*WordListFilter, error) {
	var words []string
	if err := jsoniter.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	return NewWordListFilter(words...), nil
}

// IsProfane reports whether word is on the list. An empty list flags nothing.
func (filter *WordListFilter) IsProfane(_ context.Context, word string) bool {
	if slicex.IsEmpty(filter.words) {
		return false
	}
	return slices.Contains(filter.words, strings.ToLower(word))
}

// MarshalJSON renders the lowercased word list as a JSON array.
func (filter *WordListFilter) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(filter.words)
}
