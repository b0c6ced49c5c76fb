// Package report computes summary metrics over leads, both the scored
// output of a pipeline run and the raw catalog.
package report

import (
	"github.com/euprime/leadscout/internal/model"
	"github.com/euprime/leadscout/internal/scorer"
)

// Summary aggregates one pipeline run.
type Summary struct {
	Total              int            `json:"total"`
	AverageScore       float64        `json:"average_score"`
	HighPropensity     int            `json:"high_propensity"`
	WithPublications   int            `json:"with_publications"`
	ConferenceSpeakers int            `json:"conference_speakers"`
	HubLeads           int            `json:"hub_leads"`
	HubAverageScore    float64        `json:"hub_average_score"`
	FundingBreakdown   map[string]int `json:"funding_breakdown"`
}

// Compute builds the run summary. Hub membership comes from the location
// component of the score breakdown, so it follows the scorer's hub list.
func Compute(leads []model.ScoredLead) Summary {
	s := Summary{
		Total:            len(leads),
		FundingBreakdown: make(map[string]int),
	}

	var scoreSum, hubSum int
	for _, lead := range leads {
		scoreSum += lead.PropensityScore
		if lead.PropensityScore >= model.HighScoreThreshold {
			s.HighPropensity++
		}
		if lead.Publications != "" {
			s.WithPublications++
		}
		if lead.IsConferenceSpeaker {
			s.ConferenceSpeakers++
		}
		if lead.Components[scorer.ComponentLocation] > 0 {
			s.HubLeads++
			hubSum += lead.PropensityScore
		}
		s.FundingBreakdown[stageKey(lead.FundingStage)]++
	}

	if s.Total > 0 {
		s.AverageScore = float64(scoreSum) / float64(s.Total)
	}
	if s.HubLeads > 0 {
		s.HubAverageScore = float64(hubSum) / float64(s.HubLeads)
	}
	return s
}

// CatalogSummary describes the raw catalog before scoring.
type CatalogSummary struct {
	Total              int            `json:"total"`
	UsingSimilarTech   int            `json:"using_similar_tech"`
	OpenToNAMs         int            `json:"open_to_nams"`
	WithPublications   int            `json:"with_publications"`
	ConferenceSpeakers int            `json:"conference_speakers"`
	FundingBreakdown   map[string]int `json:"funding_breakdown"`
}

// ComputeCatalog builds the catalog summary over unscored leads.
func ComputeCatalog(leads []model.Lead) CatalogSummary {
	s := CatalogSummary{
		Total:            len(leads),
		FundingBreakdown: make(map[string]int),
	}

	for _, lead := range leads {
		if lead.UsesSimilarTech {
			s.UsingSimilarTech++
		}
		if lead.OpenToNAMs {
			s.OpenToNAMs++
		}
		if len(lead.RecentPublications) > 0 {
			s.WithPublications++
		}
		if lead.IsConferenceSpeaker {
			s.ConferenceSpeakers++
		}
		s.FundingBreakdown[stageKey(lead.FundingStage)]++
	}
	return s
}

func stageKey(stage string) string {
	if stage == "" {
		return "Unknown"
	}
	return stage
}
