package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/euprime/leadscout/internal/model"
	"github.com/euprime/leadscout/pkg/pubmed"
)

// DefaultPubMedQuery seeds the live search when the user gave no query.
const DefaultPubMedQuery = "drug induced liver injury 3D cell culture toxicology"

// DefaultPubMedLimit caps how many recent articles one run pulls.
const DefaultPubMedLimit = 15

// PubMed turns the authors of recent articles into leads. It is best
// effort: any upstream failure is logged and yields zero leads, so a run
// never fails because the live source is down.
type PubMed struct {
	client pubmed.Client
}

// NewPubMed returns a source backed by the given PubMed client.
func NewPubMed(client pubmed.Client) *PubMed {
	return &PubMed{client: client}
}

func (*PubMed) Name() string {
	return "pubmed"
}

func (p *PubMed) Fetch(ctx context.Context, query string, limit int) ([]model.Lead, error) {
	if query == "" {
		query = DefaultPubMedQuery
	}
	if limit <= 0 {
		limit = DefaultPubMedLimit
	}

	term := pubmed.RecentTerm(query, time.Now())
	ids, err := p.client.Search(ctx, term, limit)
	if err != nil {
		zap.L().Warn("pubmed search failed, continuing without live leads", zap.Error(err))
		return nil, nil
	}
	if len(ids) == 0 {
		return nil, nil
	}

	articles, err := p.client.Fetch(ctx, ids)
	if err != nil {
		zap.L().Warn("pubmed fetch failed, continuing without live leads", zap.Error(err))
		return nil, nil
	}

	return authorsToLeads(articles), nil
}

// authorsToLeads builds one lead per distinct author, taking at most the
// first three authors of each article. Authors without a name are skipped;
// a name seen on an earlier article wins.
func authorsToLeads(articles []pubmed.Article) []model.Lead {
	var leads []model.Lead
	seen := make(map[string]struct{})

	for _, article := range articles {
		pub := fmt.Sprintf("%s (%s)", article.Title, article.Year)

		capped := article.Authors
		if len(capped) > 3 {
			capped = capped[:3]
		}

		for i, author := range capped {
			name := authorName(author)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			affiliation := strings.TrimSpace(author.Affiliation)
			if affiliation == "" {
				affiliation = "Research Institution"
			}

			location := affiliationLocation(affiliation)
			if location == "" {
				location = "Unknown"
			}

			leads = append(leads, model.Lead{
				Name:               name,
				Title:              authorRole(i, len(article.Authors)),
				Company:            truncate(affiliation, 100),
				PersonLocation:     location,
				CompanyHQ:          location,
				FundingStage:       "Grant",
				UsesSimilarTech:    true,
				OpenToNAMs:         true,
				RecentPublications: []string{pub},
			})
		}
	}
	return leads
}

func authorName(a pubmed.Author) string {
	parts := make([]string, 0, 2)
	if a.ForeName != "" {
		parts = append(parts, a.ForeName)
	}
	if a.LastName != "" {
		parts = append(parts, a.LastName)
	}
	return strings.Join(parts, " ")
}

// authorRole maps author position to a prospect title. total is the full
// author count, so a paper's last author only reads as the corresponding PI
// when it appears within the first three.
func authorRole(i, total int) string {
	switch {
	case i == 0:
		return "First Author / Researcher"
	case i == total-1:
		return "Corresponding Author / PI"
	default:
		return "Researcher / Author"
	}
}

var locationHints = []struct {
	hints []string
	label string
}{
	{[]string{"boston", "cambridge", "massachusetts", "ma"}, "Boston, MA"},
	{[]string{"san francisco", "bay area", "california", "ca"}, "San Francisco, CA"},
	{[]string{"basel", "switzerland"}, "Basel, Switzerland"},
	{[]string{"oxford", "cambridge uk", "london", "uk", "england"}, "United Kingdom"},
}

// affiliationLocation guesses a location from an affiliation. Hub hints
// match on substrings; failing that, the last two comma-separated parts of
// an affiliation usually hold the city and country.
func affiliationLocation(affiliation string) string {
	lower := strings.ToLower(affiliation)
	for _, hub := range locationHints {
		for _, hint := range hub.hints {
			if strings.Contains(lower, hint) {
				return hub.label
			}
		}
	}

	parts := strings.Split(affiliation, ",")
	if len(parts) < 2 {
		return ""
	}
	tail := strings.TrimSpace(parts[len(parts)-2]) + ", " + strings.TrimSpace(parts[len(parts)-1])
	return truncate(tail, 50)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
