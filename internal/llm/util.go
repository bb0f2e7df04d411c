package llm

import "strings"

// ExtractJSON pulls a JSON payload out of a reply that may be wrapped
// in a fenced code block or surrounded by prose. It returns the input
// unchanged when no obvious JSON is found; callers handle the parse
// failure.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return s
	}

	if idx := strings.Index(s, "```json"); idx != -1 {
		start := idx + 7
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}

	if idx := strings.Index(s, "```"); idx != -1 {
		start := idx + 3
		// skip any language identifier on the fence line
		if nlIdx := strings.Index(s[start:], "\n"); nlIdx != -1 {
			start += nlIdx + 1
		}
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}

	// bare array or object embedded in prose
	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end > start {
			return s[start : end+1]
		}
	}
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}

	return s
}

// TruncateMiddle bounds text to max runes by keeping the head and tail
// halves and inserting a truncation marker between them, so both the
// opening and the closing of a document survive.
func TruncateMiddle(text string, max int) string {
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	const marker = "\n\n[... document truncated ...]\n\n"
	half := max / 2
	return string(runes[:half]) + marker + string(runes[len(runes)-half:])
}
