package scoring

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/fadilmartias/resume-matcher/internal/keyword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactJD = "We need a React developer with TypeScript and FastAPI experience for frontend work"

func assertInvariants(t *testing.T, r Result) {
	t.Helper()
	assert.Equal(t, len(r.ConsideredKeywords), len(r.MatchedKeywords)+len(r.MissingKeywords))

	seen := map[string]bool{}
	for _, kw := range r.MatchedKeywords {
		seen[kw] = true
	}
	for _, kw := range r.MissingKeywords {
		assert.False(t, seen[kw], "%q both matched and missing", kw)
		seen[kw] = true
	}
	for _, kw := range r.ConsideredKeywords {
		assert.True(t, seen[kw], "%q not classified", kw)
	}

	assert.GreaterOrEqual(t, r.Score, 0.0)
	assert.LessOrEqual(t, r.Score, 10.0)
	assert.GreaterOrEqual(t, r.CoveragePercentage, 0.0)
	assert.LessOrEqual(t, r.CoveragePercentage, 100.0)

	want := round1(float64(len(r.MatchedKeywords)) / float64(max(len(r.ConsideredKeywords), 1)) * 10)
	assert.Equal(t, want, r.Score)
}

func TestScore_ReactFastAPIScenario(t *testing.T) {
	r := Score("Experienced React and TypeScript developer", reactJD)
	assertInvariants(t, r)

	assert.Equal(t, []string{"need", "react", "developer", "typescript", "fastapi", "frontend"}, r.ConsideredKeywords)
	assert.Equal(t, []string{"react", "developer", "typescript"}, r.MatchedKeywords)
	assert.Equal(t, []string{"need", "fastapi", "frontend"}, r.MissingKeywords)
	assert.Equal(t, 5.0, r.Score)
	assert.Equal(t, 50.0, r.CoveragePercentage)

	require.Len(t, r.Suggestions, 3)
	assert.Equal(t, "Consider adding these relevant keywords or examples: need, fastapi, frontend.", r.Suggestions[0])
	assert.Equal(t, tailorSuggestion, r.Suggestions[1])
	assert.Equal(t, apiIntegrationSuggestion, r.Suggestions[2])
}

func TestScore_EmptyJobDescriptionKeywords(t *testing.T) {
	r := Score("Go developer with Kubernetes", "the and of with for to in on")
	assertInvariants(t, r)

	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, 0.0, r.CoveragePercentage)
	assert.Empty(t, r.MatchedKeywords)
	assert.Empty(t, r.MissingKeywords)
	assert.Empty(t, r.ConsideredKeywords)
	assert.NotNil(t, r.MatchedKeywords)
	assert.NotNil(t, r.MissingKeywords)
	assert.NotNil(t, r.ConsideredKeywords)
	assert.Equal(t, []string{tailorSuggestion}, r.Suggestions)
}

func TestScore_EmptyInputs(t *testing.T) {
	r := Score("", "")
	assertInvariants(t, r)
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, []string{tailorSuggestion}, r.Suggestions)
}

func TestScore_IdenticalText(t *testing.T) {
	jd := "Senior Go engineer: Kubernetes, PostgreSQL, Kafka, gRPC, Terraform, AWS, observability."
	r := Score(strings.ToUpper(jd), jd)
	assertInvariants(t, r)

	assert.Equal(t, 10.0, r.Score)
	assert.Equal(t, 100.0, r.CoveragePercentage)
	assert.Empty(t, r.MissingKeywords)
	assert.Empty(t, r.Suggestions)
}

func TestScore_ResumeTokensNotStopwordFiltered(t *testing.T) {
	r := Score("the team need", "need kubernetes")
	assert.Equal(t, []string{"need"}, r.MatchedKeywords)
	assert.Equal(t, []string{"kubernetes"}, r.MissingKeywords)
}

func TestScore_MissingSuggestionCapsAtTen(t *testing.T) {
	words := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		words = append(words, fmt.Sprintf("skill%d", i))
	}
	r := Score("nothing relevant here", strings.Join(words, " "))
	assertInvariants(t, r)

	require.NotEmpty(t, r.Suggestions)
	want := "Consider adding these relevant keywords or examples: " + strings.Join(words[:10], ", ") + "."
	assert.Equal(t, want, r.Suggestions[0])
}

func TestScore_NoTailorSuggestionAtSeven(t *testing.T) {
	jd := "alpha bravo charlie delta echo foxtrot golf hotel india juliet"
	r := Score("alpha bravo charlie delta echo foxtrot golf", jd)
	assert.Equal(t, 7.0, r.Score)
	assert.Equal(t, 70.0, r.CoveragePercentage)
	assert.NotContains(t, r.Suggestions, tailorSuggestion)
	assert.Len(t, r.Suggestions, 1)
}

func TestScore_APIIntegrationSuggestionConditions(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		jd     string
		want   bool
	}{
		{"react typescript fastapi", "react typescript", "fastapi python", true},
		{"missing typescript in resume", "react javascript", "fastapi python", false},
		{"missing react in resume", "vue typescript", "fastapi python", false},
		{"jd without fastapi", "react typescript", "django python", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Score(tt.resume, tt.jd)
			assert.Equal(t, tt.want, contains(r.Suggestions, apiIntegrationSuggestion))
		})
	}
}

func TestScore_Idempotent(t *testing.T) {
	resume := "Experienced React and TypeScript developer"
	assert.Equal(t, Score(resume, reactJD), Score(resume, reactJD))
}

func TestScore_Concurrent(t *testing.T) {
	want := Score("Experienced React and TypeScript developer", reactJD)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Score("Experienced React and TypeScript developer", reactJD))
		}()
	}
	wg.Wait()
}

func TestNewScorer_TopN(t *testing.T) {
	assert.Equal(t, keyword.DefaultTopN, NewScorer(0).TopN())
	assert.Equal(t, keyword.DefaultTopN, NewScorer(-3).TopN())

	s := NewScorer(2)
	r := s.Score("react", reactJD)
	assert.Equal(t, []string{"need", "react"}, r.ConsideredKeywords)
	assert.Equal(t, 5.0, r.Score)
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{10, 10},
		{6.25, 6.2},
		{6.35, 6.3},
		{100.0 / 3.0, 33.3},
		{200.0 / 3.0, 66.7},
		{12.5, 12.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round1(tt.in), "round1(%v)", tt.in)
	}
}
