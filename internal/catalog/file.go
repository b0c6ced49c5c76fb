package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/euprime/leadscout/internal/fetcher"
	"github.com/euprime/leadscout/internal/model"
)

// LoadLeadsFile reads leads from a CSV or XLSX file. The first row must be
// a header using the lead field names (name, title, company,
// person_location, company_hq, email, linkedin_url, funding_stage,
// uses_similar_tech, open_to_nams, recent_publications,
// is_conference_attendee, is_conference_speaker_or_presenter). Rows without
// a name are skipped.
func LoadLeadsFile(ctx context.Context, path string) ([]model.Lead, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadLeadsCSV(ctx, path)
	case ".xlsx":
		return loadLeadsXLSX(path)
	default:
		return nil, eris.Errorf("catalog: unsupported lead file type %q", filepath.Ext(path))
	}
}

func loadLeadsCSV(ctx context.Context, path string) ([]model.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: open lead file %s", path)
	}
	defer f.Close() //nolint:errcheck

	headerCh := make(chan []string, 1)
	rowCh, errCh := fetcher.StreamCSV(ctx, f, fetcher.CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
		TrimSpace: true,
	})

	var rows [][]string
	for row := range rowCh {
		rows = append(rows, row)
	}
	if err := <-errCh; err != nil {
		return nil, eris.Wrapf(err, "catalog: read lead file %s", path)
	}

	var header []string
	select {
	case header = <-headerCh:
	default:
		return nil, nil
	}

	return rowsToLeads(header, rows), nil
}

func loadLeadsXLSX(path string) ([]model.Lead, error) {
	rows, err := fetcher.ReadXLSX(path, fetcher.XLSXOptions{})
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read lead file %s", path)
	}
	if len(rows) < 2 {
		return nil, nil
	}
	return rowsToLeads(rows[0], rows[1:]), nil
}

func rowsToLeads(header []string, rows [][]string) []model.Lead {
	leads := make([]model.Lead, 0, len(rows))
	for _, row := range rows {
		m := mapRow(header, row)
		if strings.TrimSpace(m["name"]) == "" {
			continue
		}
		leads = append(leads, model.Lead{
			Name:                 strings.TrimSpace(m["name"]),
			Title:                m["title"],
			Company:              m["company"],
			PersonLocation:       m["person_location"],
			CompanyHQ:            m["company_hq"],
			Email:                m["email"],
			LinkedInURL:          m["linkedin_url"],
			FundingStage:         m["funding_stage"],
			UsesSimilarTech:      parseBool(m["uses_similar_tech"]),
			OpenToNAMs:           parseBool(m["open_to_nams"]),
			RecentPublications:   splitPublications(m["recent_publications"]),
			IsConferenceAttendee: parseBool(m["is_conference_attendee"]),
			IsConferenceSpeaker:  parseBool(m["is_conference_speaker_or_presenter"]),
		})
	}
	return leads
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}

func splitPublications(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ";")
	pubs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			pubs = append(pubs, p)
		}
	}
	return pubs
}
