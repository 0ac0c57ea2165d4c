package keyword

// stopwords holds common English words plus job-posting filler. It is never
// written after package initialisation.
var stopwords = toSet(
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "when", "while", "for", "to", "in", "on", "of", "at", "by",
	"from", "with", "without", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its", "this", "that", "these", "those",
	"you", "your", "yours", "we", "our", "ours", "they", "their", "theirs", "i", "me", "my", "mine",
	"will", "shall", "can", "could", "should", "would", "may", "might", "must", "do", "does", "did",
	"have", "has", "had", "not", "no", "yes", "than", "such", "via", "etc", "per", "within", "across",

	// job posting filler
	"responsibilities", "required", "requirements", "preferred", "preference", "nice", "plus", "ability", "skills",
	"experience", "experiences", "year", "years", "month", "months", "team", "teams", "work", "working", "environment",
	"knowledge", "strong", "excellent", "good", "great", "including", "include", "includes", "using", "use", "used",
	"build", "built", "develop", "developed", "implement", "implemented", "support", "supported", "maintain", "maintained",
	"collaborate", "collaboration", "deliver", "delivery", "problem", "problems", "solve", "solutions",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether token is excluded from keyword consideration.
// token must already be lowercase.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
