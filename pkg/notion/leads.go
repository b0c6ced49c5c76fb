package notion

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"

	"github.com/euprime/leadscout/internal/model"
)

// PushLeads creates one page per scored lead in the given database, skipping
// leads whose name is already present. Returns the number of pages created.
func PushLeads(ctx context.Context, c Client, dbID string, leads []model.ScoredLead) (int, error) {
	existing, err := ExistingNames(ctx, c, dbID)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, lead := range leads {
		if ctx.Err() != nil {
			return created, eris.Wrap(ctx.Err(), "notion: push leads cancelled")
		}
		if _, ok := existing[lead.Name]; ok {
			continue
		}

		req := &notionapi.PageCreateRequest{
			Parent: notionapi.Parent{
				Type:       notionapi.ParentTypeDatabaseID,
				DatabaseID: notionapi.DatabaseID(dbID),
			},
			Properties: buildLeadProperties(lead),
		}
		if _, err := c.CreatePage(ctx, req); err != nil {
			return created, eris.Wrap(err, fmt.Sprintf("notion: create page for %s", lead.Name))
		}
		created++
		existing[lead.Name] = struct{}{}
	}

	return created, nil
}

// ExistingNames returns the set of lead names already present in the database,
// following pagination cursors until all pages are read.
func ExistingNames(ctx context.Context, c Client, dbID string) (map[string]struct{}, error) {
	names := make(map[string]struct{})

	req := &notionapi.DatabaseQueryRequest{}
	for {
		resp, err := c.QueryDatabase(ctx, dbID, req)
		if err != nil {
			return nil, eris.Wrap(err, "notion: list existing leads")
		}

		for _, page := range resp.Results {
			if name := pageTitle(page); name != "" {
				names[name] = struct{}{}
			}
		}

		if !resp.HasMore {
			break
		}
		req = &notionapi.DatabaseQueryRequest{StartCursor: resp.NextCursor}
	}

	return names, nil
}

// pageTitle extracts the plain-text "Name" title property from a page.
func pageTitle(page notionapi.Page) string {
	prop, ok := page.Properties["Name"]
	if !ok {
		return ""
	}
	tp, ok := prop.(*notionapi.TitleProperty)
	if !ok {
		return ""
	}
	var name string
	for _, rt := range tp.Title {
		name += rt.PlainText
	}
	return strings.TrimSpace(name)
}

// buildLeadProperties converts a scored lead to Notion page properties.
// Name becomes the title, Score a number, LinkedIn a URL, Email an email
// property; everything else is stored as rich_text.
func buildLeadProperties(lead model.ScoredLead) notionapi.Properties {
	props := notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Type: notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{
				{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: lead.Name}},
			},
		},
		"Score": notionapi.NumberProperty{
			Type:   notionapi.PropertyTypeNumber,
			Number: float64(lead.PropensityScore),
		},
	}

	if lead.LinkedInURL != "" {
		props["LinkedIn"] = notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  lead.LinkedInURL,
		}
	}
	if lead.Email != "" {
		props["Email"] = notionapi.EmailProperty{
			Type:  notionapi.PropertyTypeEmail,
			Email: lead.Email,
		}
	}

	text := map[string]string{
		"Title":               lead.Title,
		"Company":             lead.Company,
		"Person Location":     lead.PersonLocation,
		"Company HQ":          lead.CompanyHQ,
		"Funding Stage":       lead.FundingStage,
		"Recent Publications": lead.Publications,
		"Uses 3D/In-Vitro":    strconv.FormatBool(lead.UsesSimilarTech),
		"Open to NAMs":        strconv.FormatBool(lead.OpenToNAMs),
		"Conference Attendee": strconv.FormatBool(lead.IsConferenceAttendee),
		"Speaker/Presenter":   strconv.FormatBool(lead.IsConferenceSpeaker),
	}
	for k, v := range text {
		if v == "" {
			continue
		}
		props[k] = notionapi.RichTextProperty{
			Type: notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{
				{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: v}},
			},
		}
	}

	return props
}
