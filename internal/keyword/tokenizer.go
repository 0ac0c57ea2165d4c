package keyword

import (
	"regexp"
	"strings"
)

// tokenRe keeps tech terms such as c++, c#, node.js and ci-cd in one piece.
var tokenRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#.\-]+`)

// Tokenize returns the lowercased tokens of text in source order.
func Tokenize(text string) []string {
	matches := tokenRe.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

// TokenSet returns the distinct tokens of text.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
