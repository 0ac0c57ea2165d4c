package extract

import "strings"

// extractTXT decodes UTF-8, dropping invalid byte sequences.
func extractTXT(data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), ""), nil
}
