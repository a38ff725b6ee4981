package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlidePlan_PhysicalCountExpandsFanOut(t *testing.T) {
	plan := SlidePlan{
		DocumentType: "cim",
		Entries: []SlideEntry{
			{ID: SlideTitle, Repeat: 1},
			{ID: SlideCaseStudy, Repeat: 3},
			{ID: SlideThankYou, Repeat: 1},
		},
	}

	assert.Equal(t, 5, plan.PhysicalCount())
	assert.Equal(t, []SlideID{SlideTitle, SlideCaseStudy, SlideThankYou}, plan.IDs())
}

func TestSlidePlan_Contains(t *testing.T) {
	plan := SlidePlan{
		Entries: []SlideEntry{
			{ID: SlideTitle, Repeat: 1},
			{ID: SlideThankYou, Repeat: 1},
		},
	}

	assert.True(t, plan.Contains(SlideTitle))
	assert.False(t, plan.Contains(SlideSynergies))
}

func TestSlidePlan_PhysicalCountTreatsZeroRepeatAsOne(t *testing.T) {
	plan := SlidePlan{
		Entries: []SlideEntry{{ID: SlideTitle}},
	}

	assert.Equal(t, 1, plan.PhysicalCount())
}
