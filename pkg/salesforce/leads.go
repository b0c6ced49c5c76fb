package salesforce

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/euprime/leadscout/internal/model"
)

// PushLeads inserts scored leads as Salesforce Lead records. Returns the
// number of records created. Individual record failures are collected into
// the returned error without discarding the successes.
func PushLeads(ctx context.Context, c Client, leads []model.ScoredLead) (int, error) {
	if len(leads) == 0 {
		return 0, nil
	}

	records := make([]map[string]any, len(leads))
	for i, lead := range leads {
		records[i] = leadRecord(lead)
	}

	results, err := c.InsertCollection(ctx, "Lead", records)
	if err != nil {
		return 0, eris.Wrap(err, "sf: push leads")
	}

	created := 0
	var failures []string
	for i, r := range results {
		if r.Success {
			created++
			continue
		}
		name := fmt.Sprintf("record %d", i)
		if i < len(leads) {
			name = leads[i].Name
		}
		failures = append(failures, fmt.Sprintf("%s: %s", name, strings.Join(r.Errors, ", ")))
	}
	if len(failures) > 0 {
		return created, eris.New(fmt.Sprintf("sf: %d lead inserts failed: %s", len(failures), strings.Join(failures, "; ")))
	}

	return created, nil
}

// leadRecord converts a scored lead to Salesforce Lead fields.
func leadRecord(lead model.ScoredLead) map[string]any {
	first, last := splitName(lead.Name)

	record := map[string]any{
		"LastName":    last,
		"Company":     lead.Company,
		"Rating":      bandRating(lead.Band()),
		"LeadSource":  "LeadScout",
		"Description": leadDescription(lead),
	}
	if first != "" {
		record["FirstName"] = first
	}
	// LastName and Company are required on the Lead SObject.
	if last == "" {
		record["LastName"] = "Unknown"
	}
	if lead.Company == "" {
		record["Company"] = "Unknown"
	}
	if lead.Title != "" {
		record["Title"] = lead.Title
	}
	if lead.Email != "" {
		record["Email"] = lead.Email
	}

	return record
}

// splitName divides a full name at the last space. A single token is treated
// as the last name.
func splitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}

// bandRating maps a score band to the standard Lead Rating picklist.
func bandRating(b model.Band) string {
	switch b {
	case model.BandHigh:
		return "Hot"
	case model.BandMedium:
		return "Warm"
	default:
		return "Cold"
	}
}

func leadDescription(lead model.ScoredLead) string {
	desc := fmt.Sprintf("Propensity score: %d", lead.PropensityScore)
	if lead.Publications != "" {
		desc += "\nRecent publications: " + lead.Publications
	}
	return desc
}
