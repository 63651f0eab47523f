package service

import "strings"

// SanitizeModelOutput strips the markdown code fences Gemini sometimes wraps
// around JSON output, despite the prompt asking for bare JSON. It is total and
// idempotent: any string in, a fence-free trimmed string out. Fences are
// stripped until a fixpoint so stacked backticks do not leave a marker behind.
func SanitizeModelOutput(raw string) string {
	s := strings.TrimSpace(raw)

	for {
		trimmed := s
		if strings.HasPrefix(trimmed, "```json") {
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```json"))
		} else if strings.HasPrefix(trimmed, "```") {
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		}
		if strings.HasSuffix(trimmed, "```") {
			trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "```"))
		}
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}
