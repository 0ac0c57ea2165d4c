package keyword

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsFromText_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "the and of with", "a b c"} {
		kws, freq := KeywordsFromText(in, DefaultTopN)
		assert.Empty(t, kws, "input %q", in)
		assert.NotNil(t, kws)
		require.NotNil(t, freq)
		assert.Equal(t, 0, freq.Len())
	}
}

func TestKeywordsFromText_RanksByFrequency(t *testing.T) {
	kws, freq := KeywordsFromText("go python go rust python go", 10)
	assert.Equal(t, []string{"go", "python", "rust"}, kws)
	assert.Equal(t, 3, freq.Count("go"))
	assert.Equal(t, 2, freq.Count("python"))
	assert.Equal(t, 1, freq.Count("rust"))
}

func TestKeywordsFromText_TiesKeepFirstAppearance(t *testing.T) {
	kws, _ := KeywordsFromText("kafka redis docker redis kafka docker terraform", 10)
	assert.Equal(t, []string{"kafka", "redis", "docker", "terraform"}, kws)
}

func TestKeywordsFromText_DropsStopwords(t *testing.T) {
	kws, freq := KeywordsFromText("We need strong experience with Kubernetes and the team", 10)
	assert.Equal(t, []string{"need", "kubernetes"}, kws)
	for _, tok := range freq.Tokens() {
		assert.False(t, IsStopword(tok), "stopword %q in table", tok)
	}
}

func TestKeywordsFromText_TopN(t *testing.T) {
	words := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		words = append(words, fmt.Sprintf("tech%d", i))
	}
	text := strings.Join(words, " ")

	kws, freq := KeywordsFromText(text, DefaultTopN)
	assert.Len(t, kws, DefaultTopN)
	assert.Equal(t, 60, freq.Len())
	assert.Equal(t, "tech0", kws[0])
	assert.Equal(t, "tech39", kws[DefaultTopN-1])

	kws, _ = KeywordsFromText(text, 0)
	assert.Empty(t, kws)
}

func TestKeywordsFromText_KeywordsComeFromFilteredStream(t *testing.T) {
	text := "Responsibilities: build and maintain Go services, Go tooling, PostgreSQL, Redis. Nice to have: C++."
	kws, freq := KeywordsFromText(text, 5)
	require.LessOrEqual(t, len(kws), 5)

	filtered := map[string]bool{}
	for _, tok := range Tokenize(text) {
		if !IsStopword(tok) {
			filtered[tok] = true
		}
	}
	for _, kw := range kws {
		assert.True(t, filtered[kw], "keyword %q not in filtered stream", kw)
		assert.False(t, IsStopword(kw))
		assert.Positive(t, freq.Count(kw))
	}
	assert.Equal(t, "go", kws[0])
}

func TestFrequencyTable_TokensIsCopy(t *testing.T) {
	_, freq := KeywordsFromText("alpha beta", 10)
	toks := freq.Tokens()
	toks[0] = "mutated"
	assert.Equal(t, []string{"alpha", "beta"}, freq.Tokens())
}
