package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamPrat15/im-creator/internal/types"
)

func sampleRecord() *types.InputRecord {
	return types.NewInputRecord(map[string]any{
		"companyName":  "Acme Services",
		"serviceLines": "Managed IT\nCloud",
		"revenueFY25":  "120",
	})
}

func TestRun_HeuristicOnly(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{
		DocumentType: "teaser",
		Record:       sampleRecord(),
	})
	require.NoError(t, err)

	assert.Equal(t, "teaser", result.Plan.DocumentType)
	assert.NotEmpty(t, result.Output)
	assert.Contains(t, result.Output, "Acme Services")

	// Every planned slide got a recommendation.
	for _, entry := range result.Plan.Entries {
		_, ok := result.Recommendations[entry.ID]
		assert.True(t, ok, "missing recommendation for %s", entry.ID)
	}
}

func TestRun_NilRecord(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{DocumentType: "teaser"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Output)
}

func TestUpdate_NoChangesIsNoOp(t *testing.T) {
	record := sampleRecord()
	update, err := Update(context.Background(), UpdateOptions{
		RunOptions: RunOptions{DocumentType: "teaser", Record: record},
		Previous:   sampleRecord(),
	})
	require.NoError(t, err)

	assert.Empty(t, update.ChangedFields)
	assert.True(t, update.Impact.Empty())
	assert.Nil(t, update.Result)
}

func TestUpdate_PartialRebuild(t *testing.T) {
	previous := sampleRecord()
	current := types.NewInputRecord(map[string]any{
		"companyName":  "Acme Services",
		"serviceLines": "Managed IT\nCloud",
		"revenueFY25":  "140",
	})

	update, err := Update(context.Background(), UpdateOptions{
		RunOptions: RunOptions{DocumentType: "management-presentation", Record: current},
		Previous:   previous,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"revenueFY25"}, update.ChangedFields)
	assert.False(t, update.Impact.All)
	assert.Contains(t, update.Rebuilt, types.SlideFinancials)
	assert.Contains(t, update.Rebuilt, types.SlideExecutiveSummary)
	assert.NotContains(t, update.Rebuilt, types.SlideTitle)
	require.NotNil(t, update.Result)
	assert.Contains(t, update.Result.Output, "financials")
}

func TestUpdate_DocumentTypeChangeRebuildsEverything(t *testing.T) {
	previous := sampleRecord()
	current := types.NewInputRecord(map[string]any{
		"companyName":  "Acme Services",
		"serviceLines": "Managed IT\nCloud",
		"revenueFY25":  "120",
		"documentType": "cim",
	})

	update, err := Update(context.Background(), UpdateOptions{
		RunOptions: RunOptions{DocumentType: "cim", Record: current},
		Previous:   previous,
	})
	require.NoError(t, err)

	assert.True(t, update.Impact.All)
	require.NotNil(t, update.Result)
	assert.Equal(t, "cim", update.Result.Plan.DocumentType)
}

func TestUpdate_AffectedSlideOutsidePlanIsSkipped(t *testing.T) {
	// Teaser plans have no leadership slide, so a founder edit rebuilds
	// nothing.
	previous := types.NewInputRecord(map[string]any{"companyName": "Acme"})
	current := types.NewInputRecord(map[string]any{"companyName": "Acme", "founderBio": "20 years in infra"})

	update, err := Update(context.Background(), UpdateOptions{
		RunOptions: RunOptions{DocumentType: "teaser", Record: current},
		Previous:   previous,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"founderBio"}, update.ChangedFields)
	assert.Empty(t, update.Rebuilt)
	assert.Nil(t, update.Result)
}
