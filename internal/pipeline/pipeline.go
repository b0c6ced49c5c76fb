// Package pipeline runs the lead generation workflow: identify candidate
// leads from the configured sources, enrich them with propensity scores,
// then filter and rank for the request. The stages run synchronously and
// never mutate a State they were given; each returns a new value.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/euprime/leadscout/internal/model"
	"github.com/euprime/leadscout/internal/report"
	"github.com/euprime/leadscout/internal/scorer"
	"github.com/euprime/leadscout/internal/source"
)

// Request holds the caller's filters for one run.
type Request struct {
	Query    string // lowered substring match on title, company, publications, name
	Location string // lowered substring match on person location or company HQ
	MinScore int    // drop leads scoring below this; valid range [0, 100]
	Live     bool   // consult the live source during identification
	Limit    int    // cap on live source results; 0 means the source default
}

// State carries a run through the stages.
type State struct {
	Request Request
	Leads   []model.Lead       // after Identify
	Scored  []model.ScoredLead // after Enrich and FilterRank
}

// Result is the output of a run.
type Result struct {
	RunID   string             `json:"run_id"`
	Leads   []model.ScoredLead `json:"leads"`
	Summary report.Summary     `json:"summary"`
}

// Pipeline wires the stages to their dependencies.
type Pipeline struct {
	scorer *scorer.Scorer
	live   source.Source
	file   source.Source
	static source.Source
}

// New creates a Pipeline. live and file may be nil; the static catalog
// source is consulted on every run.
func New(sc *scorer.Scorer, live, file, static source.Source) *Pipeline {
	return &Pipeline{
		scorer: sc,
		live:   live,
		file:   file,
		static: static,
	}
}

// Run executes the three stages for one request.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if req.MinScore < 0 || req.MinScore > 100 {
		return nil, eris.Errorf("pipeline: min score %d out of range [0, 100]", req.MinScore)
	}

	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("pipeline: starting run",
		zap.String("query", req.Query),
		zap.String("location", req.Location),
		zap.Int("min_score", req.MinScore),
		zap.Bool("live", req.Live),
	)

	st := State{Request: req}

	start := time.Now()
	st, err := p.Identify(ctx, st)
	if err != nil {
		return nil, err
	}
	log.Info("pipeline: stage complete",
		zap.String("stage", "identify"),
		zap.Int("leads", len(st.Leads)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	st = p.Enrich(st)
	log.Info("pipeline: stage complete",
		zap.String("stage", "enrich"),
		zap.Int("leads", len(st.Scored)),
	)

	st = p.FilterRank(st)
	log.Info("pipeline: stage complete",
		zap.String("stage", "filter_rank"),
		zap.Int("leads", len(st.Scored)),
	)

	summary := report.Compute(st.Scored)
	log.Info("pipeline: run complete",
		zap.Int("leads", summary.Total),
		zap.Float64("avg_score", summary.AverageScore),
		zap.Int("high_propensity", summary.HighPropensity),
	)

	return &Result{RunID: runID, Leads: st.Scored, Summary: summary}, nil
}

// Identify gathers raw leads. Source order is fixed: live results first,
// then any lead file, then the built-in catalog, so earlier sources win the
// name dedupe in Enrich. The limit only applies to the live source; file
// and catalog leads always load in full.
func (p *Pipeline) Identify(ctx context.Context, st State) (State, error) {
	var collected []model.Lead

	fetch := func(src source.Source, limit int) error {
		leads, err := src.Fetch(ctx, st.Request.Query, limit)
		if err != nil {
			return eris.Wrapf(err, "pipeline: fetch from %s", src.Name())
		}
		zap.L().Debug("pipeline: source fetched",
			zap.String("source", src.Name()),
			zap.Int("leads", len(leads)),
		)
		collected = append(collected, leads...)
		return nil
	}

	if st.Request.Live {
		if p.live == nil {
			zap.L().Warn("pipeline: live source requested but not configured")
		} else if err := fetch(p.live, st.Request.Limit); err != nil {
			return State{}, err
		}
	}
	if p.file != nil {
		if err := fetch(p.file, 0); err != nil {
			return State{}, err
		}
	}
	if p.static != nil {
		if err := fetch(p.static, 0); err != nil {
			return State{}, err
		}
	}

	next := st
	next.Leads = collected
	return next, nil
}

// Enrich dedupes by exact name and scores every surviving lead. The first
// occurrence of a name wins.
func (p *Pipeline) Enrich(st State) State {
	seen := make(map[string]struct{}, len(st.Leads))
	scored := make([]model.ScoredLead, 0, len(st.Leads))

	for _, lead := range st.Leads {
		if _, ok := seen[lead.Name]; ok {
			continue
		}
		seen[lead.Name] = struct{}{}

		total, components := p.scorer.Score(lead)
		scored = append(scored, model.ScoredLead{
			Lead:            lead,
			PropensityScore: total,
			Components:      components,
			Publications:    strings.Join(lead.RecentPublications, "; "),
		})
	}

	next := st
	next.Scored = scored
	return next
}

// FilterRank applies the request filters in order (min score, location,
// query) and sorts by score descending. Equal scores keep their
// identification order.
func (p *Pipeline) FilterRank(st State) State {
	filtered := make([]model.ScoredLead, 0, len(st.Scored))
	for _, lead := range st.Scored {
		if lead.PropensityScore >= st.Request.MinScore {
			filtered = append(filtered, lead)
		}
	}

	if st.Request.Location != "" {
		lf := strings.ToLower(st.Request.Location)
		kept := make([]model.ScoredLead, 0, len(filtered))
		for _, lead := range filtered {
			if strings.Contains(strings.ToLower(lead.PersonLocation), lf) ||
				strings.Contains(strings.ToLower(lead.CompanyHQ), lf) {
				kept = append(kept, lead)
			}
		}
		filtered = kept
	}

	if st.Request.Query != "" {
		q := strings.ToLower(st.Request.Query)
		kept := make([]model.ScoredLead, 0, len(filtered))
		for _, lead := range filtered {
			if strings.Contains(strings.ToLower(lead.Title), q) ||
				strings.Contains(strings.ToLower(lead.Company), q) ||
				strings.Contains(strings.ToLower(lead.Publications), q) ||
				strings.Contains(strings.ToLower(lead.Name), q) {
				kept = append(kept, lead)
			}
		}
		filtered = kept
	}

	scorer.Rank(filtered)

	next := st
	next.Scored = filtered
	return next
}
