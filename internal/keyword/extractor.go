package keyword

import "sort"

// DefaultTopN is the number of keywords kept from a job description.
const DefaultTopN = 40

const minTokenLen = 2

// FrequencyTable counts token occurrences and remembers the order in which
// each token was first seen.
type FrequencyTable struct {
	order  []string
	counts map[string]int
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

func (f *FrequencyTable) add(token string) {
	if _, ok := f.counts[token]; !ok {
		f.order = append(f.order, token)
	}
	f.counts[token]++
}

// Count returns how many times token occurred.
func (f *FrequencyTable) Count(token string) int {
	return f.counts[token]
}

// Len returns the number of distinct tokens.
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Tokens returns the distinct tokens in first-seen order.
func (f *FrequencyTable) Tokens() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// MostCommon returns up to n tokens by descending count. Equal counts keep
// first-seen order.
func (f *FrequencyTable) MostCommon(n int) []string {
	if n <= 0 {
		return []string{}
	}
	ranked := f.Tokens()
	sort.SliceStable(ranked, func(i, j int) bool {
		return f.counts[ranked[i]] > f.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// KeywordsFromText ranks the non-stopword tokens of text by frequency and
// returns the topN most frequent together with the full frequency table.
func KeywordsFromText(text string, topN int) ([]string, *FrequencyTable) {
	freq := newFrequencyTable()
	for _, t := range Tokenize(text) {
		if len(t) < minTokenLen || IsStopword(t) {
			continue
		}
		freq.add(t)
	}
	if freq.Len() == 0 {
		return []string{}, freq
	}
	return freq.MostCommon(topN), freq
}
