package scoring

import (
	"strconv"

	"github.com/fadilmartias/resume-matcher/internal/keyword"
)

// Scorer compares resume vocabulary against the top keywords of a job
// description. The zero value is not usable; use NewScorer.
type Scorer struct {
	topN int
}

// NewScorer returns a Scorer that keeps topN job description keywords.
// A non-positive topN falls back to keyword.DefaultTopN.
func NewScorer(topN int) *Scorer {
	if topN <= 0 {
		topN = keyword.DefaultTopN
	}
	return &Scorer{topN: topN}
}

// TopN returns the number of job description keywords considered.
func (s *Scorer) TopN() int {
	return s.topN
}

// Score computes keyword coverage of jdText by resumeText. Resume tokens are
// not stopword filtered, so common words can count as matched.
func (s *Scorer) Score(resumeText, jdText string) Result {
	jdKeywords, _ := keyword.KeywordsFromText(jdText, s.topN)
	resumeTokens := keyword.TokenSet(resumeText)

	matched := make([]string, 0, len(jdKeywords))
	missing := make([]string, 0, len(jdKeywords))
	for _, kw := range jdKeywords {
		if _, ok := resumeTokens[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	total := max(len(jdKeywords), 1)
	coverage := float64(len(matched)) / float64(total)
	score := round1(coverage * 10)

	return Result{
		Score:              score,
		CoveragePercentage: round1(coverage * 100),
		MatchedKeywords:    matched,
		MissingKeywords:    missing,
		ConsideredKeywords: jdKeywords,
		Suggestions:        buildSuggestions(score, missing, jdKeywords, resumeTokens),
	}
}

var defaultScorer = NewScorer(keyword.DefaultTopN)

// Score scores resumeText against the top keyword.DefaultTopN keywords of jdText.
func Score(resumeText, jdText string) Result {
	return defaultScorer.Score(resumeText, jdText)
}

// round1 rounds x to one decimal place using the shortest correctly rounded
// decimal of the exact binary value.
func round1(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return v
}
