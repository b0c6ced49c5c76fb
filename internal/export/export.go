// Package export writes scored leads to CSV and XLSX files in the column
// layout the business development team works with.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/euprime/leadscout/internal/model"
)

// DefaultFileStem is the default output filename without extension.
const DefaultFileStem = "euprime_3d_invitro_leads"

// Columns defines the ordered export columns.
var Columns = []string{
	"Score",
	"Name",
	"Title",
	"Company",
	"Person Location",
	"Company HQ",
	"Email",
	"LinkedIn",
	"Funding Stage",
	"Uses 3D/In-Vitro",
	"Open to NAMs",
	"Recent Publications",
	"Conference Attendee",
	"Speaker/Presenter",
}

// WriteCSV writes scored leads as CSV to w.
func WriteCSV(w io.Writer, leads []model.ScoredLead) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, lead := range leads {
		if err := cw.Write(buildRow(lead)); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush")
	}
	return nil
}

// WriteCSVFile writes scored leads as a CSV file at path.
func WriteCSVFile(path string, leads []model.ScoredLead) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	return WriteCSV(f, leads)
}

// WriteXLSX writes scored leads as a workbook with a single Leads sheet.
func WriteXLSX(path string, leads []model.ScoredLead) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range Columns {
		header.AddCell().SetString(col)
	}

	for _, lead := range leads {
		row := sheet.AddRow()
		row.AddCell().SetInt(lead.PropensityScore)
		for _, v := range buildRow(lead)[1:] {
			row.AddCell().SetString(v)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save workbook")
	}
	return nil
}

// buildRow maps a scored lead to an export row.
func buildRow(lead model.ScoredLead) []string {
	return []string{
		strconv.Itoa(lead.PropensityScore),            // Score
		lead.Name,                                     // Name
		lead.Title,                                    // Title
		lead.Company,                                  // Company
		lead.PersonLocation,                           // Person Location
		lead.CompanyHQ,                                // Company HQ
		lead.Email,                                    // Email
		lead.LinkedInURL,                              // LinkedIn
		lead.FundingStage,                             // Funding Stage
		strconv.FormatBool(lead.UsesSimilarTech),      // Uses 3D/In-Vitro
		strconv.FormatBool(lead.OpenToNAMs),           // Open to NAMs
		lead.Publications,                             // Recent Publications
		strconv.FormatBool(lead.IsConferenceAttendee), // Conference Attendee
		strconv.FormatBool(lead.IsConferenceSpeaker),  // Speaker/Presenter
	}
}
