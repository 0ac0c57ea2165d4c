package scoring

import (
	"fmt"
	"strings"
)

const (
	maxMissingInSuggestion = 10
	tailorThreshold        = 7.0
)

const (
	tailorSuggestion         = "Tailor your summary/bullets to mirror terminology in the job description."
	apiIntegrationSuggestion = "Mention API integration experience (e.g., FastAPI endpoints) in a bullet point."
)

func missingKeywordsSuggestion(missing []string) string {
	if len(missing) > maxMissingInSuggestion {
		missing = missing[:maxMissingInSuggestion]
	}
	return fmt.Sprintf("Consider adding these relevant keywords or examples: %s.", strings.Join(missing, ", "))
}

func buildSuggestions(score float64, missing, jdKeywords []string, resumeTokens map[string]struct{}) []string {
	suggestions := []string{}
	if len(missing) > 0 {
		suggestions = append(suggestions, missingKeywordsSuggestion(missing))
	}
	if score < tailorThreshold {
		suggestions = append(suggestions, tailorSuggestion)
	}
	if hasAll(resumeTokens, "react", "typescript") && contains(jdKeywords, "fastapi") {
		suggestions = append(suggestions, apiIntegrationSuggestion)
	}
	return suggestions
}

func hasAll(set map[string]struct{}, tokens ...string) bool {
	for _, t := range tokens {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

func contains(list []string, token string) bool {
	for _, t := range list {
		if t == token {
			return true
		}
	}
	return false
}
