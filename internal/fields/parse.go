package fields

import (
	"math"
	"strconv"
	"strings"
)

// ParseLines splits newline-delimited text into trimmed, non-empty lines,
// keeping at most maxLines.
func ParseLines(text string, maxLines int) []string {
	if strings.TrimSpace(text) == "" || maxLines <= 0 {
		return nil
	}
	lines := make([]string, 0, maxLines)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxLines {
			break
		}
	}
	return lines
}

// ParsePipeSeparated splits newline-delimited rows of pipe-separated cells
// (e.g. "Cloud Migration|30%|Lift-and-shift programs"), keeping at most
// maxItems rows.
func ParsePipeSeparated(text string, maxItems int) [][]string {
	lines := ParseLines(text, maxItems)
	if lines == nil {
		return nil
	}
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		rows = append(rows, parts)
	}
	return rows
}

// CountLines counts the non-empty lines in a field value. Used as a shape
// signal for layout decisions.
func CountLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return count
}

// Number coerces a free-form field value to a float. It tolerates currency
// symbols, thousands separators, and a trailing percent sign. Malformed
// input reads as (0, false), never as an error.
func Number(text string) (float64, bool) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return 0, false
	}
	cleaned = strings.TrimSuffix(cleaned, "%")
	for _, symbol := range []string{"$", "₹", "€", "£", ","} {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// CAGR computes the compound annual growth rate as a rounded percentage.
// Returns (0, false) when the inputs cannot support the calculation.
func CAGR(startValue, endValue float64, years int) (int, bool) {
	if startValue <= 0 || endValue <= 0 || years <= 0 {
		return 0, false
	}
	rate := (math.Pow(endValue/startValue, 1/float64(years)) - 1) * 100
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, false
	}
	return int(math.Round(rate)), true
}

// AdjustedFont applies a font-size delta with a 9pt readability floor.
func AdjustedFont(base, adjustment int) int {
	size := base + adjustment
	if size < 9 {
		return 9
	}
	return size
}
