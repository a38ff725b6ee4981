package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputRecord_CanonicalizesSnakeCase(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"company_name": "Acme Tech",
		"documentType": "cim",
	})

	assert.Equal(t, "Acme Tech", record.String("companyName"))
	assert.Equal(t, "cim", record.String("documentType"))
}

func TestNewInputRecord_CamelCaseWinsWhenNonEmpty(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"companyName":  "Canonical Co",
		"company_name": "Alias Co",
	})

	assert.Equal(t, "Canonical Co", record.String("companyName"))
}

func TestNewInputRecord_SnakeCaseFillsEmptyCamel(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"companyName":  "",
		"company_name": "Alias Co",
	})

	assert.Equal(t, "Alias Co", record.String("companyName"))
}

func TestInputRecord_StringCoercesNumbers(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"foundedYear": float64(2012),
	})

	assert.Equal(t, "2012", record.String("foundedYear"))
}

func TestInputRecord_FloatMissingIsFalsyNotError(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"revenueFY25": "not a number",
	})

	value, ok := record.Float("revenueFY25")
	assert.False(t, ok)
	assert.Zero(t, value)

	value, ok = record.Float("absent")
	assert.False(t, ok)
	assert.Zero(t, value)
}

func TestInputRecord_BoolOptInSpellings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"native bool", true, true},
		{"string true", "true", true},
		{"string yes", "Yes", true},
		{"string one", "1", true},
		{"string false", "false", false},
		{"empty string", "", false},
		{"absent", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := NewInputRecord(map[string]any{"flag": tt.value})
			assert.Equal(t, tt.want, record.Bool("flag"))
		})
	}
}

func TestInputRecord_HasTreatsEmptyAsAbsent(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"founderName":    "  ",
		"leadershipTeam": "Jane Roe|CEO",
	})

	assert.False(t, record.Has("founderName"))
	assert.True(t, record.Has("leadershipTeam"))
	assert.False(t, record.Has("neverSet"))
}

func TestInputRecord_StringList(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"contentVariants":  []any{"synergy", " growth ", 7},
		"targetBuyerTypes": "strategic",
	})

	assert.Equal(t, []string{"synergy", "growth"}, record.StringList("contentVariants"))
	assert.Equal(t, []string{"strategic"}, record.StringList("targetBuyerTypes"))
	assert.Nil(t, record.StringList("absent"))
}

func TestInputRecord_CaseStudiesFromStructuredList(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"caseStudies": []any{
			map[string]any{"client": "Bank A", "challenge": "Legacy core"},
			map[string]any{"client": "Retailer B"},
		},
	})

	studies := record.CaseStudies()
	require.Len(t, studies, 2)
	assert.Equal(t, "Bank A", studies[0].Client)
	assert.Equal(t, "Legacy core", studies[0].Challenge)
}

func TestInputRecord_CaseStudiesLegacyFlatFields(t *testing.T) {
	record := NewInputRecord(map[string]any{
		"cs1Client":  "Hospital X",
		"cs1Results": "30% faster intake",
		"cs2Client":  "Fund Y",
	})

	studies := record.CaseStudies()
	require.Len(t, studies, 2)
	assert.Equal(t, "Hospital X", studies[0].Client)
	assert.Equal(t, "Fund Y", studies[1].Client)
}

func TestInputRecord_HashStableAcrossEquivalentRecords(t *testing.T) {
	a := NewInputRecord(map[string]any{"companyName": "Acme", "revenueFY25": "120"})
	b := NewInputRecord(map[string]any{"revenueFY25": "120", "companyName": "Acme"})
	c := NewInputRecord(map[string]any{"companyName": "Acme", "revenueFY25": "121"})

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestInputRecord_NilReceiverIsSafe(t *testing.T) {
	var record *InputRecord

	assert.False(t, record.Has("companyName"))
	assert.Empty(t, record.String("companyName"))
	assert.Nil(t, record.Keys())
	assert.Empty(t, record.CaseStudies())
}
