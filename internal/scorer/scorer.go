// Package scorer computes lead propensity scores for the 3D in-vitro / DILI
// sales domain. Six weighted components (role fit, funding intent,
// technographic signals, hub location, scientific activity, conference
// presence) are summed and clamped to [0, MaxScore]. All tables live in
// Rules so the weights can be tuned without touching code.
package scorer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/euprime/leadscout/internal/model"
)

// Component names used in the score breakdown.
const (
	ComponentRole          = "role"
	ComponentIntent        = "intent"
	ComponentTechnographic = "technographic"
	ComponentLocation      = "location"
	ComponentScientific    = "scientific"
	ComponentConference    = "conference"
)

// Scorer applies a Rules table to leads. Construct with New; the zero value
// is not usable.
type Scorer struct {
	rules   Rules
	phrases []*regexp.Regexp // compiled science keywords, parallel to rules.ScienceKeywords
}

// New validates the rules and precompiles the science keyword patterns.
func New(rules Rules) (*Scorer, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	phrases := make([]*regexp.Regexp, len(rules.ScienceKeywords))
	for i, kw := range rules.ScienceKeywords {
		phrases[i] = phrasePattern(kw)
	}

	return &Scorer{rules: rules, phrases: phrases}, nil
}

// phrasePattern matches kw as a whole phrase: word boundaries on both ends,
// so "nams" hits "NAMs adoption" but not "dynamscreen".
func phrasePattern(kw string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
}

// Rules returns a copy of the scorer's rule tables.
func (s *Scorer) Rules() Rules {
	return s.rules
}

// Score computes the propensity score for a lead along with the
// per-component breakdown. The total is the component sum clamped to
// [0, MaxScore].
func (s *Scorer) Score(lead model.Lead) (int, map[string]int) {
	components := map[string]int{
		ComponentRole:          s.scoreRole(lead.Title),
		ComponentIntent:        s.scoreIntent(lead.FundingStage),
		ComponentTechnographic: s.scoreTechnographic(lead),
		ComponentLocation:      s.scoreLocation(lead.PersonLocation, lead.CompanyHQ),
		ComponentScientific:    s.scoreScientific(lead.RecentPublications),
		ComponentConference:    s.scoreConference(lead),
	}

	total := 0
	for _, v := range components {
		total += v
	}
	return clamp(total, 0, s.rules.MaxScore), components
}

// scoreRole sums the role rules whose keywords appear in the title,
// capped at RoleCap. Each rule contributes at most once.
func (s *Scorer) scoreRole(title string) int {
	t := strings.ToLower(title)

	score := 0
	for _, rule := range s.rules.RoleRules {
		if containsAny(t, rule.Keywords) {
			score += rule.Weight
		}
	}
	return min(score, s.rules.RoleCap)
}

// scoreIntent walks the ordered stage rules and returns the weight of the
// first fragment found in the funding stage. Empty stage scores zero.
func (s *Scorer) scoreIntent(stage string) int {
	st := strings.ToLower(strings.TrimSpace(stage))
	if st == "" {
		return 0
	}

	for _, rule := range s.rules.StageRules {
		if strings.Contains(st, strings.ToLower(rule.Match)) {
			return rule.Weight
		}
	}
	return 0
}

func (s *Scorer) scoreTechnographic(lead model.Lead) int {
	score := 0
	if lead.UsesSimilarTech {
		score += s.rules.TechWeight
	}
	if lead.OpenToNAMs {
		score += s.rules.NAMsWeight
	}
	return min(score, s.rules.TechCap)
}

// scoreLocation checks the person location and company HQ together against
// the hub list. Any hub substring scores HubWeight; location is all or
// nothing.
func (s *Scorer) scoreLocation(personLocation, companyHQ string) int {
	combined := strings.ToLower(personLocation + " " + companyHQ)
	if containsAny(combined, s.rules.HubLocations) {
		return s.rules.HubWeight
	}
	return 0
}

// scoreScientific awards ScienceKeywordWeight if any science keyword appears
// as a whole phrase in the joined publication titles, plus MultiPubWeight for
// a sustained record (MultiPubMin or more publications). Capped at
// ScienceCap.
func (s *Scorer) scoreScientific(publications []string) int {
	score := 0

	text := strings.ToLower(strings.Join(publications, " "))
	for _, p := range s.phrases {
		if p.MatchString(text) {
			score += s.rules.ScienceKeywordWeight
			break
		}
	}

	if len(publications) >= s.rules.MultiPubMin {
		score += s.rules.MultiPubWeight
	}
	return min(score, s.rules.ScienceCap)
}

// scoreConference prefers speaking over attending; the two do not stack.
func (s *Scorer) scoreConference(lead model.Lead) int {
	switch {
	case lead.IsConferenceSpeaker:
		return s.rules.SpeakerWeight
	case lead.IsConferenceAttendee:
		return s.rules.AttendeeWeight
	default:
		return 0
	}
}

// Rank sorts scored leads by descending propensity score in place. The sort
// is stable: leads with equal scores keep their relative order.
func Rank(leads []model.ScoredLead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].PropensityScore > leads[j].PropensityScore
	})
}

// containsAny reports whether any keyword occurs as a substring of text.
// Text must already be lowercased; keywords are lowercased here.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
