package llm

import "strings"

// CleanJSONBlock strips markdown code fences from a model response. Models
// wrap JSON in ```json fences often enough that every JSON consumer needs
// this, even with a JSON response MIME type requested.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// A language tag on the fence line ("json", "javascript") is dropped;
	// a first line containing '{' is already payload.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {") {
			text = text[idx+1:]
		} else {
			text = strings.TrimPrefix(text, "json")
		}
	} else {
		text = strings.TrimPrefix(text, "json")
	}

	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
