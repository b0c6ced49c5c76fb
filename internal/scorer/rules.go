package scorer

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// KeywordRule awards Weight when any of its keywords matches the input text.
// A rule contributes at most once regardless of how many keywords hit.
type KeywordRule struct {
	Keywords []string `yaml:"keywords"`
	Weight   int      `yaml:"weight"`
}

// StageRule maps a funding-stage fragment to an intent weight. Stage rules
// are ordered and the first match wins, so more specific fragments
// ("pre-seed") must precede the fragments they contain ("seed").
type StageRule struct {
	Match  string `yaml:"match"`
	Weight int    `yaml:"weight"`
}

// Rules drives all six component scorers. Keyword matching is
// case-insensitive; role, stage and hub rules match substrings while science
// keywords match whole phrases (word boundaries on both ends).
type Rules struct {
	RoleRules []KeywordRule `yaml:"role_rules"`
	RoleCap   int           `yaml:"role_cap"`

	StageRules []StageRule `yaml:"stage_rules"`

	TechWeight int `yaml:"tech_weight"`
	NAMsWeight int `yaml:"nams_weight"`
	TechCap    int `yaml:"tech_cap"`

	HubLocations []string `yaml:"hub_locations"`
	HubWeight    int      `yaml:"hub_weight"`

	ScienceKeywords      []string `yaml:"science_keywords"`
	ScienceKeywordWeight int      `yaml:"science_keyword_weight"`
	MultiPubMin          int      `yaml:"multi_pub_min"`
	MultiPubWeight       int      `yaml:"multi_pub_weight"`
	ScienceCap           int      `yaml:"science_cap"`

	SpeakerWeight  int `yaml:"speaker_weight"`
	AttendeeWeight int `yaml:"attendee_weight"`

	MaxScore int `yaml:"max_score"`
}

// DefaultRules returns the built-in scoring tables for the 3D in-vitro /
// DILI domain.
func DefaultRules() Rules {
	return Rules{
		RoleRules: []KeywordRule{
			{Keywords: []string{"director", "head", "vp", "vice president", "chief"}, Weight: 10},
			{Keywords: []string{"toxicology", "toxicologist"}, Weight: 20},
			{Keywords: []string{"safety", "preclinical", "nonclinical"}, Weight: 15},
			{Keywords: []string{"hepatic", "liver"}, Weight: 10},
			{Keywords: []string{"3d"}, Weight: 10},
		},
		RoleCap: 30,
		StageRules: []StageRule{
			{Match: "series b", Weight: 20},
			{Match: "series c", Weight: 20},
			{Match: "series a", Weight: 15},
			{Match: "pre-seed", Weight: 0},
			{Match: "seed", Weight: 8},
			{Match: "ipo", Weight: 12},
			{Match: "public", Weight: 12},
			{Match: "grant", Weight: 10},
		},
		TechWeight: 15,
		NAMsWeight: 10,
		TechCap:    25,
		HubLocations: []string{
			"boston", "cambridge", "massachusetts", "bay area", "san francisco",
			"san diego", "basel", "cambridge uk", "oxford", "london", "golden triangle",
		},
		HubWeight: 10,
		ScienceKeywords: []string{
			"drug-induced liver injury", "dili", "hepatic toxicity", "liver toxicity",
			"investigative toxicology", "3d cell culture", "organ-on-chip",
			"hepatic spheroids", "nams", "new approach methodologies",
		},
		ScienceKeywordWeight: 30,
		MultiPubMin:          2,
		MultiPubWeight:       10,
		ScienceCap:           40,
		SpeakerWeight:        15,
		AttendeeWeight:       8,
		MaxScore:             100,
	}
}

// Validate checks the rules for internal consistency. All violations are
// collected into a single error.
func (r Rules) Validate() error {
	var errs []string

	if r.RoleCap <= 0 {
		errs = append(errs, "role_cap must be positive")
	}
	if r.TechCap <= 0 {
		errs = append(errs, "tech_cap must be positive")
	}
	if r.ScienceCap <= 0 {
		errs = append(errs, "science_cap must be positive")
	}
	if r.MaxScore <= 0 {
		errs = append(errs, "max_score must be positive")
	}

	for i, rule := range r.RoleRules {
		if len(rule.Keywords) == 0 {
			errs = append(errs, fmt.Sprintf("role rule %d has no keywords", i))
		}
		if rule.Weight < 0 {
			errs = append(errs, fmt.Sprintf("role rule %d has negative weight", i))
		}
		for _, kw := range rule.Keywords {
			if strings.TrimSpace(kw) == "" {
				errs = append(errs, fmt.Sprintf("role rule %d has an empty keyword", i))
				break
			}
		}
	}

	for i, rule := range r.StageRules {
		if strings.TrimSpace(rule.Match) == "" {
			errs = append(errs, fmt.Sprintf("stage rule %d has an empty match", i))
		}
		if rule.Weight < 0 {
			errs = append(errs, fmt.Sprintf("stage rule %d has negative weight", i))
		}
	}

	for _, w := range []struct {
		name  string
		value int
	}{
		{"tech_weight", r.TechWeight},
		{"nams_weight", r.NAMsWeight},
		{"hub_weight", r.HubWeight},
		{"science_keyword_weight", r.ScienceKeywordWeight},
		{"multi_pub_weight", r.MultiPubWeight},
		{"speaker_weight", r.SpeakerWeight},
		{"attendee_weight", r.AttendeeWeight},
	} {
		if w.value < 0 {
			errs = append(errs, w.name+" must not be negative")
		}
	}

	if len(r.HubLocations) == 0 {
		errs = append(errs, "hub_locations is empty")
	}
	for _, hub := range r.HubLocations {
		if strings.TrimSpace(hub) == "" {
			errs = append(errs, "hub_locations contains an empty entry")
			break
		}
	}
	for _, kw := range r.ScienceKeywords {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, "science_keywords contains an empty entry")
			break
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: rules validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// LoadRules reads rule overrides from a YAML file. Sections left empty fall
// back to the defaults, so a file can override just the tables it cares
// about.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, eris.Wrapf(err, "scorer: read rules %s", path)
	}

	var wrapper struct {
		Scoring Rules `yaml:"scoring"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return Rules{}, eris.Wrapf(err, "scorer: parse rules %s", path)
	}

	rules := wrapper.Scoring
	applyRuleDefaults(&rules)

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

func applyRuleDefaults(r *Rules) {
	def := DefaultRules()

	if len(r.RoleRules) == 0 {
		r.RoleRules = def.RoleRules
	}
	if r.RoleCap == 0 {
		r.RoleCap = def.RoleCap
	}
	if len(r.StageRules) == 0 {
		r.StageRules = def.StageRules
	}
	if r.TechWeight == 0 {
		r.TechWeight = def.TechWeight
	}
	if r.NAMsWeight == 0 {
		r.NAMsWeight = def.NAMsWeight
	}
	if r.TechCap == 0 {
		r.TechCap = def.TechCap
	}
	if len(r.HubLocations) == 0 {
		r.HubLocations = def.HubLocations
	}
	if r.HubWeight == 0 {
		r.HubWeight = def.HubWeight
	}
	if len(r.ScienceKeywords) == 0 {
		r.ScienceKeywords = def.ScienceKeywords
	}
	if r.ScienceKeywordWeight == 0 {
		r.ScienceKeywordWeight = def.ScienceKeywordWeight
	}
	if r.MultiPubMin == 0 {
		r.MultiPubMin = def.MultiPubMin
	}
	if r.MultiPubWeight == 0 {
		r.MultiPubWeight = def.MultiPubWeight
	}
	if r.ScienceCap == 0 {
		r.ScienceCap = def.ScienceCap
	}
	if r.SpeakerWeight == 0 {
		r.SpeakerWeight = def.SpeakerWeight
	}
	if r.AttendeeWeight == 0 {
		r.AttendeeWeight = def.AttendeeWeight
	}
	if r.MaxScore == 0 {
		r.MaxScore = def.MaxScore
	}
}
