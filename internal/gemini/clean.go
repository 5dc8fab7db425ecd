package gemini

import "strings"

// CleanJSON strips the markdown code fence a model may wrap its JSON in,
// even when told not to.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	}
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
