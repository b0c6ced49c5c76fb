package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/euprime/leadscout/internal/model"
	"github.com/euprime/leadscout/internal/scorer"
)

func TestCompute(t *testing.T) {
	leads := []model.ScoredLead{
		{
			Lead: model.Lead{
				FundingStage:        "Series B",
				IsConferenceSpeaker: true,
			},
			PropensityScore: 90,
			Components:      map[string]int{scorer.ComponentLocation: 10},
			Publications:    "DILI assessment using 3D spheroids",
		},
		{
			Lead: model.Lead{
				FundingStage: "Series B",
			},
			PropensityScore: 70,
			Components:      map[string]int{scorer.ComponentLocation: 10},
		},
		{
			Lead:            model.Lead{},
			PropensityScore: 20,
			Components:      map[string]int{},
		},
	}

	s := Compute(leads)

	assert.Equal(t, 3, s.Total)
	assert.InDelta(t, 60.0, s.AverageScore, 0.001)
	assert.Equal(t, 2, s.HighPropensity)
	assert.Equal(t, 1, s.WithPublications)
	assert.Equal(t, 1, s.ConferenceSpeakers)
	assert.Equal(t, 2, s.HubLeads)
	assert.InDelta(t, 80.0, s.HubAverageScore, 0.001)
	assert.Equal(t, map[string]int{"Series B": 2, "Unknown": 1}, s.FundingBreakdown)
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)

	assert.Equal(t, 0, s.Total)
	assert.Zero(t, s.AverageScore)
	assert.Zero(t, s.HubAverageScore)
	assert.Empty(t, s.FundingBreakdown)
}

func TestComputeCatalog(t *testing.T) {
	leads := []model.Lead{
		{
			FundingStage:        "Seed",
			UsesSimilarTech:     true,
			OpenToNAMs:          true,
			RecentPublications:  []string{"Hepatic spheroid models"},
			IsConferenceSpeaker: true,
		},
		{
			FundingStage: "Seed",
			OpenToNAMs:   true,
		},
		{},
	}

	s := ComputeCatalog(leads)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.UsingSimilarTech)
	assert.Equal(t, 2, s.OpenToNAMs)
	assert.Equal(t, 1, s.WithPublications)
	assert.Equal(t, 1, s.ConferenceSpeakers)
	assert.Equal(t, map[string]int{"Seed": 2, "Unknown": 1}, s.FundingBreakdown)
}
