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

	"github.com/euprime/leadscout/internal/catalog"
	"github.com/euprime/leadscout/internal/fetcher"
	"github.com/euprime/leadscout/internal/model"
	"github.com/euprime/leadscout/internal/report"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Browse the built-in lead catalog",
	Long: `List the catalog of known leads without scoring them.

Examples:
  # Everyone in the catalog
  leadscout leads

  # Grant-funded researchers mentioning liver work
  leadscout leads --search liver --stage Grant

  # Catalog metrics
  leadscout leads --summary`,
	RunE: runLeads,
}

var leadsFundingCmd = &cobra.Command{
	Use:   "funding",
	Short: "List recently funded companies from the catalog feed",
	RunE:  runLeadsFunding,
}

func init() {
	f := leadsCmd.Flags()
	f.String("search", "", "keyword filter across all text fields")
	f.String("stage", "", `funding stage filter (e.g. "Series A")`)
	f.String("tech", "", "filter by 3D/in-vitro usage: yes or no")
	f.Bool("summary", false, "print catalog metrics after the table")

	leadsFundingCmd.Flags().String("feed", "", "funded-companies CSV path or URL (default from config)")

	leadsCmd.AddCommand(leadsFundingCmd)
	rootCmd.AddCommand(leadsCmd)
}

func runLeads(cmd *cobra.Command, _ []string) error {
	search, _ := cmd.Flags().GetString("search")
	stage, _ := cmd.Flags().GetString("stage")
	tech, _ := cmd.Flags().GetString("tech")
	summary, _ := cmd.Flags().GetBool("summary")

	leads, err := filterCatalog(catalog.All(), search, stage, tech)
	if err != nil {
		return err
	}

	if err := writeCatalogTable(os.Stdout, leads); err != nil {
		return err
	}
	if summary {
		printCatalogSummary(report.ComputeCatalog(leads))
	}

	return nil
}

func runLeadsFunding(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	feed, _ := cmd.Flags().GetString("feed")
	if feed == "" {
		feed = cfg.Catalog.FundingCSV
	}
	if feed == "" {
		return eris.New("funded-companies feed is required (--feed or LEADSCOUT_CATALOG_FUNDING_CSV)")
	}

	companies := catalog.LoadFundedCompanies(ctx, fetcher.NewHTTPFetcher(fetcher.HTTPOptions{}), feed)
	if len(companies) == 0 {
		fmt.Println("No funded companies found.")
		return nil
	}

	header := fmt.Sprintf("%-28s %-12s %-14s %-14s %-12s\n",
		"Company", "Round", "Amount (USD)", "Country", "Announced")
	fmt.Print(header)
	fmt.Println(strings.Repeat("-", 84))
	for _, c := range companies {
		fmt.Printf("%-28s %-12s %-14s %-14s %-12s\n",
			truncateCell(c.Company, 28),
			truncateCell(c.Round, 12),
			truncateCell(c.Amount, 14),
			truncateCell(c.Country, 14),
			truncateCell(c.DateAnnounced, 12))
	}
	fmt.Printf("\n%d companies.\n", len(companies))

	return nil
}

// filterCatalog narrows catalog leads by keyword, funding stage, and
// 3D/in-vitro usage. tech accepts "yes", "no" or empty.
func filterCatalog(leads []model.Lead, search, stage, tech string) ([]model.Lead, error) {
	var wantTech *bool
	switch strings.ToLower(tech) {
	case "":
	case "yes":
		v := true
		wantTech = &v
	case "no":
		v := false
		wantTech = &v
	default:
		return nil, eris.Errorf("tech filter must be yes or no (got %q)", tech)
	}

	search = strings.ToLower(search)
	var out []model.Lead
	for _, lead := range leads {
		if stage != "" && !strings.EqualFold(lead.FundingStage, stage) {
			continue
		}
		if wantTech != nil && lead.UsesSimilarTech != *wantTech {
			continue
		}
		if search != "" && !leadMatchesSearch(lead, search) {
			continue
		}
		out = append(out, lead)
	}
	return out, nil
}

func leadMatchesSearch(lead model.Lead, search string) bool {
	fields := []string{
		lead.Name,
		lead.Title,
		lead.Company,
		lead.PersonLocation,
		lead.CompanyHQ,
		lead.FundingStage,
		strings.Join(lead.RecentPublications, "; "),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func writeCatalogTable(w io.Writer, leads []model.Lead) error {
	header := fmt.Sprintf("%-25s %-32s %-28s %-20s %-10s\n",
		"Name", "Title", "Company", "Location", "Stage")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "leads: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 118)); err != nil {
		return eris.Wrap(err, "leads: write table separator")
	}

	for _, lead := range leads {
		line := fmt.Sprintf("%-25s %-32s %-28s %-20s %-10s\n",
			truncateCell(lead.Name, 25),
			truncateCell(lead.Title, 32),
			truncateCell(lead.Company, 28),
			truncateCell(lead.PersonLocation, 20),
			truncateCell(lead.FundingStage, 10))
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "leads: write table row")
		}
	}
	return nil
}

func printCatalogSummary(s report.CatalogSummary) {
	fmt.Printf("\n--- Catalog ---\n")
	fmt.Printf("Total leads:         %d\n", s.Total)
	fmt.Printf("Using 3D/in-vitro:   %d\n", s.UsingSimilarTech)
	fmt.Printf("Open to NAMs:        %d\n", s.OpenToNAMs)
	fmt.Printf("With publications:   %d\n", s.WithPublications)
	fmt.Printf("Conference speakers: %d\n", s.ConferenceSpeakers)

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
