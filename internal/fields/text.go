// Package fields provides pure parsing and formatting helpers for form-data
// field values: delimited-list splitting, text condensation and truncation,
// numeric coercion, and currency/date formatting.
package fields

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// abbreviations condense long words when text must fit a fixed frame.
// Keys are matched case-insensitively on word boundaries; multi-word keys
// are applied first.
var abbreviations = []struct {
	full   string
	abbrev string
}{
	{"artificial intelligence", "AI"},
	{"machine learning", "ML"},
	{"and", "&"},
	{"with", "w/"},
	{"without", "w/o"},
	{"through", "thru"},
	{"information", "info"},
	{"technology", "tech"},
	{"technologies", "tech"},
	{"management", "mgmt"},
	{"development", "dev"},
	{"application", "app"},
	{"applications", "apps"},
	{"organization", "org"},
	{"international", "intl"},
	{"infrastructure", "infra"},
	{"implementation", "impl"},
	{"transformation", "transform"},
	{"approximately", "~"},
	{"percentage", "%"},
	{"percent", "%"},
	{"number", "#"},
	{"operations", "ops"},
	{"operational", "ops"},
	{"processing", "proc"},
	{"performance", "perf"},
	{"enterprise", "enterp."},
}

var (
	abbrevPatterns []*regexp.Regexp
	whitespaceRe   = regexp.MustCompile(`\s+`)
	sentenceRe     = regexp.MustCompile(`[^.!?]+[.!?]+`)
)

func init() {
	abbrevPatterns = make([]*regexp.Regexp, len(abbreviations))
	for i, entry := range abbreviations {
		abbrevPatterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(entry.full) + `\b`)
	}
}

// Condense applies the abbreviation table and normalizes whitespace.
func Condense(text string) string {
	if text == "" {
		return ""
	}
	result := text
	for i, pattern := range abbrevPatterns {
		result = pattern.ReplaceAllString(result, abbreviations[i].abbrev)
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(result, " "))
}

// Truncate shortens text to maxLen, condensing first and preferring
// sentence then word boundaries. An ellipsis marker is appended when the
// cut lands mid-sentence.
func Truncate(text string, maxLen int, ellipsis bool) string {
	if text == "" || maxLen <= 0 {
		return ""
	}
	if len(text) <= maxLen {
		return text
	}

	condensed := Condense(text)
	if len(condensed) <= maxLen {
		return condensed
	}

	// Prefer whole sentences when they fill enough of the budget.
	if sentences := sentenceRe.FindAllString(condensed, -1); len(sentences) > 0 {
		var result strings.Builder
		for _, sentence := range sentences {
			if result.Len()+len(sentence) > maxLen {
				break
			}
			result.WriteString(sentence)
		}
		if result.Len() > 0 && float64(result.Len()) >= float64(maxLen)*0.6 {
			return strings.TrimSpace(result.String())
		}
	}

	cutoff := maxLen
	marker := ""
	if ellipsis && maxLen > 2 {
		cutoff = maxLen - 2
		marker = ".."
	}
	truncated := cutRuneSafe(condensed, cutoff)
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > int(float64(cutoff)*0.7) {
		return strings.TrimSpace(truncated[:lastSpace]) + marker
	}
	return strings.TrimSpace(truncated) + marker
}

// cutRuneSafe trims s to at most max bytes, backing up so the cut never
// splits a multi-byte rune.
func cutRuneSafe(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// TruncateDescription shortens a long description, preferring a complete
// final sentence over a mid-sentence cut.
func TruncateDescription(text string, maxLen int) string {
	if text == "" || maxLen <= 2 {
		return ""
	}
	if len(text) <= maxLen {
		return text
	}

	condensed := Condense(text)
	if len(condensed) <= maxLen {
		return condensed
	}

	if end := strings.LastIndex(cutRuneSafe(condensed, maxLen-1), "."); end > int(float64(maxLen)*0.5) {
		return condensed[:end+1]
	}
	if end := strings.LastIndex(cutRuneSafe(condensed, maxLen-2), " "); end > int(float64(maxLen)*0.6) {
		return condensed[:end] + ".."
	}
	return cutRuneSafe(condensed, maxLen-2) + ".."
}
