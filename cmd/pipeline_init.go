package main

import (
	"os"
	"time"

	"github.com/k-capehart/go-salesforce/v3"
	"github.com/rotisserie/eris"

	"github.com/euprime/leadscout/internal/pipeline"
	"github.com/euprime/leadscout/internal/scorer"
	"github.com/euprime/leadscout/internal/source"
	"github.com/euprime/leadscout/pkg/pubmed"
	sfpkg "github.com/euprime/leadscout/pkg/salesforce"
)

// buildScorer compiles the scoring rules, layering the optional YAML
// overrides file on top of the defaults. An explicit path wins over the
// configured one.
func buildScorer(rulesPath string) (*scorer.Scorer, error) {
	if rulesPath == "" {
		rulesPath = cfg.Scoring.RulesFile
	}

	rules := scorer.DefaultRules()
	if rulesPath != "" {
		var err error
		rules, err = scorer.LoadRules(rulesPath)
		if err != nil {
			return nil, err
		}
	}

	return scorer.New(rules)
}

// buildPipeline wires the scorer and the three lead sources. input optionally
// points at a CSV/XLSX lead file; empty means no file source.
func buildPipeline(rulesPath, input string) (*pipeline.Pipeline, error) {
	sc, err := buildScorer(rulesPath)
	if err != nil {
		return nil, err
	}

	live := source.NewPubMed(pubmed.NewClient(
		pubmed.WithBaseURL(cfg.PubMed.BaseURL),
		pubmed.WithTimeout(time.Duration(cfg.PubMed.TimeoutSecs)*time.Second),
		pubmed.WithRateLimit(cfg.PubMed.RatePerSec),
	))

	var file source.Source
	if input != "" {
		file = source.NewFile(input)
	}

	return pipeline.New(sc, live, file, source.NewStatic()), nil
}

func initSalesforce() (sfpkg.Client, error) {
	if cfg.Salesforce.ClientID == "" {
		return nil, eris.New("salesforce client ID is required (LEADSCOUT_SALESFORCE_CLIENT_ID)")
	}

	pemData, err := os.ReadFile(cfg.Salesforce.KeyPath)
	if err != nil {
		return nil, eris.Wrap(err, "read salesforce JWT private key")
	}

	sf, err := salesforce.Init(salesforce.Creds{
		Domain:         cfg.Salesforce.LoginURL,
		Username:       cfg.Salesforce.Username,
		ConsumerKey:    cfg.Salesforce.ClientID,
		ConsumerRSAPem: string(pemData),
	})
	if err != nil {
		return nil, eris.Wrap(err, "init salesforce")
	}

	return sfpkg.NewClient(sf), nil
}
