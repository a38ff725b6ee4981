package fields

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCondense_AppliesAbbreviations(t *testing.T) {
	got := Condense("Infrastructure management and development")

	assert.Equal(t, "infra mgmt & dev", got)
}

func TestCondense_MultiWordFirst(t *testing.T) {
	got := Condense("artificial intelligence platform")

	assert.Equal(t, "AI platform", got)
}

func TestCondense_NormalizesWhitespace(t *testing.T) {
	got := Condense("  spaced   out\ttext  ")

	assert.Equal(t, "spaced out text", got)
}

func TestCondense_Empty(t *testing.T) {
	assert.Equal(t, "", Condense(""))
}

func TestTruncate_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 20, true))
}

func TestTruncate_CondensingAvoidsCut(t *testing.T) {
	text := "Enterprise technology management"
	got := Truncate(text, 25, true)

	assert.Equal(t, "enterp. tech mgmt", got)
}

func TestTruncate_NeverExceedsBudget(t *testing.T) {
	text := strings.Repeat("unabbreviatable ", 20)
	got := Truncate(text, 40, true)

	assert.LessOrEqual(t, len(got), 40)
	assert.NotEmpty(t, got)
}

func TestTruncate_KeepsRuneBoundaries(t *testing.T) {
	// No spaces and no sentence ends, so the cut falls inside the rune
	// run; the result must still be valid UTF-8 within budget.
	text := strings.Repeat("é", 60)
	got := Truncate(text, 21, true)

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 21)
	assert.NotEmpty(t, got)
}

func TestTruncateDescription_KeepsRuneBoundaries(t *testing.T) {
	text := strings.Repeat("₹", 60)
	got := TruncateDescription(text, 25)

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 25)
	assert.NotEmpty(t, got)
}

func TestTruncateDescription_PrefersSentenceBoundary(t *testing.T) {
	text := "First sentence here. Second sentence is rather long and will not fit in the budget at all."
	got := TruncateDescription(text, 30)

	assert.Equal(t, "First sentence here.", got)
}

func TestTruncateDescription_Empty(t *testing.T) {
	assert.Equal(t, "", TruncateDescription("", 40))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$120M", FormatCurrency("120", "USD"))
	assert.Equal(t, "₹85Cr", FormatCurrency("85", "INR"))
	assert.Equal(t, "N/A", FormatCurrency("", "USD"))
	assert.Equal(t, "confidential", FormatCurrency("confidential", "USD"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "February 2026", FormatDate("2026-02-03"))
	assert.Equal(t, "next quarter", FormatDate("next quarter"))
	assert.NotEmpty(t, FormatDate(""))
}
