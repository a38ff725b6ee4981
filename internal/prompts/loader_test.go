package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKey(t *testing.T) {
	t.Cleanup(ClearCache)

	prompt, err := Get("layout.json", "analyze_layout")
	require.NoError(t, err)
	assert.Contains(t, prompt, "expert presentation designer")
	assert.Contains(t, prompt, "{{.SlideType}}")
	assert.Contains(t, prompt, "{{.DataSummary}}")
}

func TestGet_UnknownKey(t *testing.T) {
	t.Cleanup(ClearCache)

	_, err := Get("layout.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "analyze_layout")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	out := Format("Analyze {{.SlideType}} with {{.DataSummary}}", map[string]string{
		"SlideType":   "financials",
		"DataSummary": "{}",
	})
	assert.Equal(t, "Analyze financials with {}", out)
}

func TestAnalyzeLayout_SubstitutesBothFields(t *testing.T) {
	t.Cleanup(ClearCache)

	prompt := AnalyzeLayout("services", `{"service_count": 4}`)
	assert.Contains(t, prompt, `"services" slide`)
	assert.Contains(t, prompt, `"service_count": 4`)
	assert.NotContains(t, prompt, "{{.")
}
