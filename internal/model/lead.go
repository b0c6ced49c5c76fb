package model

// Band groups a propensity score into a coarse priority tier.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Score thresholds for banding.
const (
	HighScoreThreshold   = 70
	MediumScoreThreshold = 40
)

// Lead represents a candidate contact before scoring. FundingStage is free
// text; recognized values are "Pre-seed", "Seed", "Series A", "Series B",
// "Series C", "IPO", "Public" and "Grant".
type Lead struct {
	Name                 string   `json:"name"`
	Title                string   `json:"title"`
	Company              string   `json:"company"`
	PersonLocation       string   `json:"person_location"`
	CompanyHQ            string   `json:"company_hq"`
	Email                string   `json:"email,omitempty"`
	LinkedInURL          string   `json:"linkedin_url,omitempty"`
	FundingStage         string   `json:"funding_stage"`
	UsesSimilarTech      bool     `json:"uses_similar_tech"`
	OpenToNAMs           bool     `json:"open_to_nams"`
	RecentPublications   []string `json:"recent_publications,omitempty"`
	IsConferenceAttendee bool     `json:"is_conference_attendee"`
	IsConferenceSpeaker  bool     `json:"is_conference_speaker_or_presenter"`
}

// ScoredLead is a Lead after enrichment. Components holds the per-category
// breakdown (role, intent, technographic, location, scientific, conference).
// Publications is RecentPublications joined with "; ", empty when none.
type ScoredLead struct {
	Lead

	PropensityScore int            `json:"propensity_score"`
	Components      map[string]int `json:"components,omitempty"`
	Publications    string         `json:"publications"`
}

// Band returns the priority tier for the lead's score.
func (s ScoredLead) Band() Band {
	switch {
	case s.PropensityScore >= HighScoreThreshold:
		return BandHigh
	case s.PropensityScore >= MediumScoreThreshold:
		return BandMedium
	default:
		return BandLow
	}
}
