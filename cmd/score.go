package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/euprime/leadscout/internal/export"
	"github.com/euprime/leadscout/internal/model"
	"github.com/euprime/leadscout/internal/pipeline"
	"github.com/euprime/leadscout/internal/report"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Run the lead scoring pipeline",
	Long: `Identify leads, score their propensity to buy, and rank the survivors.

Leads come from the built-in catalog, an optional CSV/XLSX lead file, and
optionally live PubMed author mining. Each lead is scored 0-100 across six
components (role, funding stage, technographics, location, publications,
conference activity).

Examples:
  # Score the built-in catalog
  leadscout score

  # Include live PubMed authors for a custom query
  leadscout score --live --query "organ-on-chip hepatotoxicity"

  # High-propensity Boston leads, exported to XLSX
  leadscout score --min-score 70 --location boston --format xlsx

  # Score your own lead file with custom rules
  leadscout score --input leads.csv --rules rules.yaml`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("query", "", "keyword filter, also drives the live search")
	f.String("location", "", "filter by person location or company HQ")
	f.Int("min-score", -1, "minimum propensity score 0-100 (-1 = use config)")
	f.Bool("live", false, "mine live PubMed authors")
	f.Int("limit", 0, "max live results (0 = use config)")
	f.String("input", "", "CSV or XLSX lead file to include")
	f.String("rules", "", "YAML scoring rules overrides")
	f.String("format", "table", "output format: table, csv or xlsx")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("summary", false, "print run metrics after the results")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	query, _ := cmd.Flags().GetString("query")
	location, _ := cmd.Flags().GetString("location")
	minScore, _ := cmd.Flags().GetInt("min-score")
	live, _ := cmd.Flags().GetBool("live")
	limit, _ := cmd.Flags().GetInt("limit")
	input, _ := cmd.Flags().GetString("input")
	rulesPath, _ := cmd.Flags().GetString("rules")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	summary, _ := cmd.Flags().GetBool("summary")

	if format != "table" && format != "csv" && format != "xlsx" {
		return eris.Errorf("score: --format must be table, csv or xlsx (got %q)", format)
	}
	if format == "xlsx" && outputPath == "" {
		outputPath = export.DefaultFileStem + ".xlsx"
	}
	if minScore < 0 {
		minScore = cfg.Scoring.MinScore
	}
	if limit == 0 {
		limit = cfg.PubMed.Limit
	}

	p, err := buildPipeline(rulesPath, input)
	if err != nil {
		return err
	}

	log := zap.L().With(zap.String("command", "score"))
	log.Info("starting scoring run",
		zap.String("query", query),
		zap.String("location", location),
		zap.Int("min_score", minScore),
		zap.Bool("live", live),
	)

	result, err := p.Run(ctx, pipeline.Request{
		Query:    query,
		Location: location,
		MinScore: minScore,
		Live:     live,
		Limit:    limit,
	})
	if err != nil {
		return eris.Wrap(err, "score: run pipeline")
	}

	if err := outputLeads(result.Leads, format, outputPath); err != nil {
		return err
	}
	if summary {
		printRunSummary(result.Summary)
	}

	return nil
}

func outputLeads(leads []model.ScoredLead, format, outputPath string) error {
	if format == "xlsx" {
		if err := export.WriteXLSX(outputPath, leads); err != nil {
			return err
		}
		fmt.Printf("Wrote %d leads to %s\n", len(leads), outputPath)
		return nil
	}

	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	if format == "csv" {
		return export.WriteCSV(w, leads)
	}
	return writeLeadTable(w, leads)
}

func writeLeadTable(w io.Writer, leads []model.ScoredLead) error {
	header := fmt.Sprintf("%5s  %-25s %-32s %-28s %-20s %-10s\n",
		"Score", "Name", "Title", "Company", "Location", "Stage")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "score: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 125)); err != nil {
		return eris.Wrap(err, "score: write table separator")
	}

	for _, lead := range leads {
		line := fmt.Sprintf("%5d  %-25s %-32s %-28s %-20s %-10s\n",
			lead.PropensityScore,
			truncateCell(lead.Name, 25),
			truncateCell(lead.Title, 32),
			truncateCell(lead.Company, 28),
			truncateCell(lead.PersonLocation, 20),
			truncateCell(lead.FundingStage, 10))
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "score: write table row")
		}
	}
	return nil
}

// truncateCell shortens s to fit an n-wide column, marking the cut with "...".
func truncateCell(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func printRunSummary(s report.Summary) {
	fmt.Printf("\n--- Summary ---\n")
	fmt.Printf("Total leads:         %d\n", s.Total)
	fmt.Printf("Average score:       %.1f\n", s.AverageScore)
	fmt.Printf("High propensity:     %d\n", s.HighPropensity)
	fmt.Printf("With publications:   %d\n", s.WithPublications)
	fmt.Printf("Conference speakers: %d\n", s.ConferenceSpeakers)
	fmt.Printf("Hub leads:           %d\n", s.HubLeads)
	if s.HubLeads > 0 {
		fmt.Printf("Hub average score:   %.1f\n", s.HubAverageScore)
	}

	if len(s.FundingBreakdown) > 0 {
		fmt.Println("\nFunding stages:")
		stages := make([]string, 0, len(s.FundingBreakdown))
		for k := range s.FundingBreakdown {
			stages = append(stages, k)
		}
		sort.Strings(stages)
		for _, stage := range stages {
			fmt.Printf("  %-12s %d\n", stage, s.FundingBreakdown[stage])
		}
	}
}
