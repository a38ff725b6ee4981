package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStatusConstants(t *testing.T) {
	assert.Equal(t, "running", RunStatusRunning)
	assert.Equal(t, "completed", RunStatusCompleted)
	assert.Equal(t, "failed", RunStatusFailed)
}

func TestArtifactNameConstants(t *testing.T) {
	for _, name := range []string{ArtifactPlan, ArtifactRecommendations, ArtifactOutline} {
		assert.NotEmpty(t, name)
	}
}
