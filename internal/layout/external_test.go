package layout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamPrat15/im-creator/internal/ledger"
	"github.com/IamPrat15/im-creator/internal/llm"
	"github.com/IamPrat15/im-creator/internal/types"
)

// fakeClient is a canned llm.Client for strategy tests.
type fakeClient struct {
	response string
	usage    llm.Usage
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, llm.Usage, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.usage, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, llm.Usage, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.usage, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "gemini-2.5-flash-lite" }
func (f *fakeClient) Close() error                  { return nil }

const goodResponse = `{
	"chart_type": "donut",
	"layout": "two-column-wide-right",
	"font_adjustment": -1,
	"content_density": "high",
	"primary_emphasis": "chart",
	"recommendations": ["group minor clients into an Other segment"]
}`

func TestExternal_Recommend(t *testing.T) {
	client := &fakeClient{response: goodResponse, usage: llm.Usage{InputTokens: 300, OutputTokens: 80}}
	usage := ledger.New(nil)
	e := NewExternal(client, llm.TierLite, usage)

	rec, err := e.Recommend(context.Background(), types.SlideClients, Preview{ClientCount: 12})
	require.NoError(t, err)

	assert.Equal(t, types.ChartDonut, rec.ChartType)
	assert.Equal(t, types.LayoutTwoColumnWideRight, rec.Layout)
	assert.Equal(t, -1, rec.FontAdjustment)
	assert.Len(t, rec.Recommendations, 1)

	// Prompt carries the slide type and the data summary.
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], `"clients" slide`)
	assert.Contains(t, client.prompts[0], `"client_count": 12`)

	// Call was accounted under the per-slide purpose.
	stats := usage.Stats()
	assert.Equal(t, 1, stats.TotalCalls)
	assert.Contains(t, stats.ByPurpose, "analyze_layout_clients")
}

func TestExternal_ToleratesSurroundingProse(t *testing.T) {
	client := &fakeClient{response: "Here is my analysis:\n" + goodResponse + "\nHope that helps."}
	e := NewExternal(client, llm.TierLite, nil)

	rec, err := e.Recommend(context.Background(), types.SlideClients, Preview{})
	require.NoError(t, err)
	assert.Equal(t, types.ChartDonut, rec.ChartType)
}

func TestExternal_RejectsInvalidEnum(t *testing.T) {
	client := &fakeClient{response: `{
		"chart_type": "waterfall",
		"layout": "two-column",
		"font_adjustment": 0,
		"content_density": "medium",
		"primary_emphasis": "chart"
	}`}
	e := NewExternal(client, llm.TierLite, nil)

	_, err := e.Recommend(context.Background(), types.SlideFinancials, Preview{})
	assert.Error(t, err)
}

func TestExternal_CallErrorStillRecordsUsage(t *testing.T) {
	client := &fakeClient{
		err:   errors.New("rate limited"),
		usage: llm.Usage{InputTokens: 120},
	}
	usage := ledger.New(nil)
	e := NewExternal(client, llm.TierLite, usage)

	_, err := e.Recommend(context.Background(), types.SlideServices, Preview{})
	assert.Error(t, err)
	assert.Equal(t, 1, usage.Stats().TotalCalls)
}

func TestExternal_NoClient(t *testing.T) {
	e := &External{}
	_, err := e.Recommend(context.Background(), types.SlideServices, Preview{})
	assert.Error(t, err)
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`, false},
		{"nested object", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`, false},
		{"prose around", `sure {"a": 1} done`, `{"a": 1}`, false},
		{"brace in string", `{"a": "}"}`, `{"a": "}"}`, false},
		{"no object", "nothing here", "", true},
		{"unbalanced", `{"a": 1`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
