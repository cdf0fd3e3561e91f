package utils

// WordFilter drops words that were already seen.
// Callers are expected to pass normalized words.
type WordFilter struct {
	seen map[string]struct{}
}

// NewWordFilter creates a filter that will exclude the given words up front.
func NewWordFilter(exclude ...string) *WordFilter {
	seen := make(map[string]struct{}, len(exclude))
	for _, w := range exclude {
		seen[w] = struct{}{}
	}
	return &WordFilter{seen: seen}
}

// ShouldInclude reports whether word is new, and marks it as seen.
func (f *WordFilter) ShouldInclude(word string) bool {
	if _, ok := f.seen[word]; ok {
		return false
	}
	f.seen[word] = struct{}{}
	return true
}

// Len is the number of distinct words seen so far.
func (f *WordFilter) Len() int {
	return len(f.seen)
}
