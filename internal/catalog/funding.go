package catalog

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/euprime/leadscout/internal/fetcher"
)

// FundedCompany is one row of the recently-funded-companies feed.
type FundedCompany struct {
	Company       string `json:"company"`
	Domain        string `json:"domain"`
	Amount        string `json:"amount"`
	Round         string `json:"round"`
	Investors     string `json:"investors"`
	Country       string `json:"country"`
	DateAnnounced string `json:"date_announced"`
}

// LoadFundedCompanies reads the funded-companies feed from a local CSV path
// or an http(s) URL. The feed is advisory: a missing or malformed file is
// logged and yields an empty slice.
func LoadFundedCompanies(ctx context.Context, f fetcher.Fetcher, pathOrURL string) []FundedCompany {
	r, err := openFeed(ctx, f, pathOrURL)
	if err != nil {
		zap.L().Warn("funded companies feed unavailable",
			zap.String("source", pathOrURL),
			zap.Error(err),
		)
		return nil
	}
	defer r.Close() //nolint:errcheck

	headerCh := make(chan []string, 1)
	rowCh, errCh := fetcher.StreamCSV(ctx, r, fetcher.CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
		TrimSpace: true,
	})

	var rows [][]string
	for row := range rowCh {
		rows = append(rows, row)
	}
	if err := <-errCh; err != nil {
		zap.L().Warn("funded companies feed malformed",
			zap.String("source", pathOrURL),
			zap.Error(err),
		)
		return nil
	}

	var header []string
	select {
	case header = <-headerCh:
	default:
		return nil // empty feed
	}

	companies := make([]FundedCompany, 0, len(rows))
	for _, row := range rows {
		m := mapRow(header, row)
		companies = append(companies, FundedCompany{
			Company:       m["company"],
			Domain:        m["domain"],
			Amount:        m["amount (usd)"],
			Round:         m["round"],
			Investors:     m["investors"],
			Country:       m["country"],
			DateAnnounced: m["date announced"],
		})
	}
	return companies
}

func openFeed(ctx context.Context, f fetcher.Fetcher, pathOrURL string) (io.ReadCloser, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return f.Download(ctx, pathOrURL)
	}

	file, err := os.Open(pathOrURL)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: open feed %s", pathOrURL)
	}
	return file, nil
}

// mapRow pairs each lowercased header with the corresponding row value.
// Rows shorter than the header produce empty strings.
func mapRow(header []string, row []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if i < len(row) {
			m[key] = row[i]
		} else {
			m[key] = ""
		}
	}
	return m
}
