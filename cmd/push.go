package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/euprime/leadscout/internal/pipeline"
	"github.com/euprime/leadscout/pkg/notion"
	sfpkg "github.com/euprime/leadscout/pkg/salesforce"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push scored leads to CRM targets",
	Long: `Run the scoring pipeline and push the ranked leads to Notion and/or
Salesforce. When both targets are selected they are pushed in parallel.

Examples:
  # Push high-propensity leads to Notion
  leadscout push --notion --min-score 70

  # Push everything to both CRMs
  leadscout push --notion --salesforce`,
	RunE: runPush,
}

func init() {
	f := pushCmd.Flags()
	f.Bool("notion", false, "push to the configured Notion database")
	f.Bool("salesforce", false, "push to Salesforce as Lead records")
	f.String("query", "", "keyword filter, also drives the live search")
	f.String("location", "", "filter by person location or company HQ")
	f.Int("min-score", -1, "minimum propensity score 0-100 (-1 = use config)")
	f.Bool("live", false, "mine live PubMed authors")
	f.String("input", "", "CSV or XLSX lead file to include")
	f.String("rules", "", "YAML scoring rules overrides")

	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	toNotion, _ := cmd.Flags().GetBool("notion")
	toSalesforce, _ := cmd.Flags().GetBool("salesforce")
	if !toNotion && !toSalesforce {
		return eris.New("push: select at least one target (--notion and/or --salesforce)")
	}

	if toNotion {
		if cfg.Notion.Token == "" {
			return eris.New("notion token is required (LEADSCOUT_NOTION_TOKEN)")
		}
		if cfg.Notion.LeadDB == "" {
			return eris.New("notion lead DB ID is required (LEADSCOUT_NOTION_LEAD_DB)")
		}
	}

	var sfClient sfpkg.Client
	if toSalesforce {
		var err error
		sfClient, err = initSalesforce()
		if err != nil {
			return err
		}
	}

	query, _ := cmd.Flags().GetString("query")
	location, _ := cmd.Flags().GetString("location")
	minScore, _ := cmd.Flags().GetInt("min-score")
	live, _ := cmd.Flags().GetBool("live")
	input, _ := cmd.Flags().GetString("input")
	rulesPath, _ := cmd.Flags().GetString("rules")
	if minScore < 0 {
		minScore = cfg.Scoring.MinScore
	}

	p, err := buildPipeline(rulesPath, input)
	if err != nil {
		return err
	}

	result, err := p.Run(ctx, pipeline.Request{
		Query:    query,
		Location: location,
		MinScore: minScore,
		Live:     live,
		Limit:    cfg.PubMed.Limit,
	})
	if err != nil {
		return eris.Wrap(err, "push: run pipeline")
	}
	if len(result.Leads) == 0 {
		fmt.Println("No leads matched; nothing to push.")
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)

	if toNotion {
		notionClient := notion.NewClient(cfg.Notion.Token)
		dbID := cfg.Notion.LeadDB
		g.Go(func() error {
			created, err := notion.PushLeads(gctx, notionClient, dbID, result.Leads)
			if err != nil {
				return err
			}
			zap.L().Info("notion push complete",
				zap.Int("created", created),
				zap.Int("skipped", len(result.Leads)-created),
			)
			return nil
		})
	}

	if toSalesforce {
		g.Go(func() error {
			created, err := sfpkg.PushLeads(gctx, sfClient, result.Leads)
			if err != nil {
				return err
			}
			zap.L().Info("salesforce push complete", zap.Int("created", created))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "push")
	}

	fmt.Printf("Pushed %d leads.\n", len(result.Leads))
	return nil
}
