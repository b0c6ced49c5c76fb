// Package catalog holds the built-in lead catalog for the 3D in-vitro /
// DILI domain: a hand-curated set of demo contacts plus lead profiles
// derived from recently funded biotech companies.
package catalog

import (
	"strings"

	"github.com/euprime/leadscout/internal/model"
)

// DemoLeads returns the hand-curated demo contacts.
func DemoLeads() []model.Lead {
	out := make([]model.Lead, len(demoLeads))
	copy(out, demoLeads)
	return out
}

// FundingLeads returns lead profiles for recently funded biotech companies.
// Email addresses and LinkedIn URLs are derived from the contact name and
// company.
func FundingLeads() []model.Lead {
	out := make([]model.Lead, len(fundingProfiles))
	for i, p := range fundingProfiles {
		p.Email = deriveEmail(p.Name, p.Company)
		p.LinkedInURL = deriveLinkedIn(p.Name)
		out[i] = p
	}
	return out
}

// All returns the full built-in catalog: demo contacts first, then funded
// company profiles.
func All() []model.Lead {
	return append(DemoLeads(), FundingLeads()...)
}

// deriveEmail builds a plausible contact address: the name with spaces,
// commas and periods removed, at the company domain with spaces removed.
// Truncated to 50 characters.
func deriveEmail(name, company string) string {
	local := strings.NewReplacer(" ", "", ",", "", ".", "").Replace(strings.ToLower(name))
	domain := strings.ReplaceAll(strings.ToLower(company), " ", "")

	email := local + "@" + domain + ".com"
	if len(email) > 50 {
		email = email[:50]
	}
	return email
}

// deriveLinkedIn builds a profile URL slug: the name lowercased with spaces
// as hyphens, commas and periods removed.
func deriveLinkedIn(name string) string {
	slug := strings.NewReplacer(" ", "-", ",", "", ".", "").Replace(strings.ToLower(name))
	return "https://linkedin.com/in/" + slug
}

var demoLeads = []model.Lead{
	{
		Name:            "Alice Smith",
		Title:           "Director of Safety Assessment",
		Company:         "HepatoThera Biotech",
		PersonLocation:  "Remote - Colorado",
		CompanyHQ:       "Cambridge, MA",
		Email:           "alice.smith@hepatothera.com",
		LinkedInURL:     "https://www.linkedin.com/in/alicesmith",
		FundingStage:    "Series B",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Drug-induced liver injury assessment using 3D hepatic spheroids",
			"New approach methodologies for investigative toxicology",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:                 "Bob Johnson",
		Title:                "Junior Scientist, Cell Biology",
		Company:              "NanoLiver Startups",
		PersonLocation:       "Austin, TX",
		CompanyHQ:            "Austin, TX",
		Email:                "bob.johnson@nanoliver.io",
		LinkedInURL:          "https://www.linkedin.com/in/bobjohnson",
		FundingStage:         "Pre-seed",
		UsesSimilarTech:      false,
		OpenToNAMs:           false,
		IsConferenceAttendee: false,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Carla Gomez",
		Title:           "Head of Investigative Toxicology",
		Company:         "BayBridge Pharma",
		PersonLocation:  "San Francisco Bay Area",
		CompanyHQ:       "South San Francisco, CA",
		Email:           "carla.gomez@baybridgepharma.com",
		LinkedInURL:     "https://www.linkedin.com/in/carlagomez",
		FundingStage:    "Series A",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Hepatic toxicity profiling in organ-on-chip models",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Deepa Nair",
		Title:           "VP Preclinical Development",
		Company:         "Cambridge HepatoTech",
		PersonLocation:  "Cambridge, MA",
		CompanyHQ:       "Cambridge, MA",
		Email:           "deepa.nair@hepatotech.com",
		LinkedInURL:     "https://www.linkedin.com/in/deepanair",
		FundingStage:    "Series C",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Organ-on-chip approaches for drug-induced liver injury",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:            "Ethan Lee",
		Title:           "Director, Investigative Toxicology",
		Company:         "BaySphere Therapeutics",
		PersonLocation:  "South San Francisco, CA",
		CompanyHQ:       "South San Francisco, CA",
		Email:           "ethan.lee@baysphere.com",
		LinkedInURL:     "https://www.linkedin.com/in/ethanlee",
		FundingStage:    "Series B",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"In-vitro hepatic spheroids for mechanistic toxicity",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Farah Khan",
		Title:           "Head of Safety Pharmacology",
		Company:         "GoldenTriangle Bio",
		PersonLocation:  "Oxford, UK",
		CompanyHQ:       "Oxford, UK",
		Email:           "farah.khan@goldentrianglebio.co.uk",
		LinkedInURL:     "https://www.linkedin.com/in/farahkhan",
		FundingStage:    "Series A",
		UsesSimilarTech: false,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"NAMs in preclinical safety pipelines",
		},
		IsConferenceAttendee: false,
		IsConferenceSpeaker:  false,
	},
	{
		Name:                 "Gabriel Rossi",
		Title:                "Senior Scientist, DMPK",
		Company:              "Milan Bioinnovations",
		PersonLocation:       "Milan, Italy",
		CompanyHQ:            "Milan, Italy",
		Email:                "gabriel.rossi@milanbio.com",
		LinkedInURL:          "https://www.linkedin.com/in/gabrielrossi",
		FundingStage:         "Seed",
		UsesSimilarTech:      false,
		OpenToNAMs:           false,
		IsConferenceAttendee: false,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Hannah Wright",
		Title:           "Director of Nonclinical Safety",
		Company:         "Basel Therapeutics",
		PersonLocation:  "Basel, Switzerland",
		CompanyHQ:       "Basel, Switzerland",
		Email:           "hannah.wright@baselthera.com",
		LinkedInURL:     "https://www.linkedin.com/in/hannahwright",
		FundingStage:    "Series B",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Cross-species liver toxicity assessment using 3D cultures",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Ivan Petrov",
		Title:           "Principal Scientist, Liver Models",
		Company:         "OrganChip Labs",
		PersonLocation:  "Remote - Colorado",
		CompanyHQ:       "Boston, MA",
		Email:           "ivan.petrov@organchip.com",
		LinkedInURL:     "https://www.linkedin.com/in/ivanpetrov",
		FundingStage:    "Series A",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Hepatocyte spheroids in NAM workflows",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
}

// fundingProfiles seed leads for recently funded biotech companies. Email
// and LinkedIn are filled in by FundingLeads.
var fundingProfiles = []model.Lead{
	{
		Name:            "Dr. Sarah Chen",
		Title:           "Director of Safety Assessment",
		Company:         "Iambic Therapeutics",
		PersonLocation:  "San Diego, CA",
		CompanyHQ:       "San Diego, CA",
		FundingStage:    "Series B",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"AI-driven drug discovery and safety assessment (2024)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:            "Michael Torres, PhD",
		Title:           "VP of Preclinical Development",
		Company:         "Cassidy Bio",
		PersonLocation:  "Tel Aviv, Israel",
		CompanyHQ:       "Tel Aviv, Israel",
		FundingStage:    "Seed",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Novel approaches in antibody drug discovery (2024)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Dr. Emily Watson",
		Title:           "Head of Investigative Toxicology",
		Company:         "QSimulate",
		PersonLocation:  "Boston, MA",
		CompanyHQ:       "Boston, MA",
		FundingStage:    "Seed",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Quantum simulation for drug toxicity prediction (2024)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:                 "James Park",
		Title:                "Senior Scientist, DMPK",
		Company:              "Neros Technologies",
		PersonLocation:       "Remote - Colorado",
		CompanyHQ:            "Cambridge, MA",
		FundingStage:         "Series B",
		UsesSimilarTech:      false,
		OpenToNAMs:           true,
		IsConferenceAttendee: false,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Dr. Anna Kowalski",
		Title:           "Director of Liver Models",
		Company:         "OrganTech Pharma",
		PersonLocation:  "Basel, Switzerland",
		CompanyHQ:       "Basel, Switzerland",
		FundingStage:    "Series A",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"3D hepatic spheroids for DILI assessment (2024)",
			"Organ-on-chip liver toxicity models (2023)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:            "Dr. Robert Kim",
		Title:           "Chief Scientific Officer",
		Company:         "HepaVitro Labs",
		PersonLocation:  "Cambridge, MA",
		CompanyHQ:       "Cambridge, MA",
		FundingStage:    "Series C",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Drug-induced liver injury prediction using 3D models (2024)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:            "Lisa Martinez",
		Title:           "Principal Scientist, Hepatic Safety",
		Company:         "Pfizer",
		PersonLocation:  "Groton, CT",
		CompanyHQ:       "New York, NY",
		FundingStage:    "Public",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"NAMs in pharmaceutical safety assessment (2024)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Dr. Thomas Brown",
		Title:           "Head of Preclinical Safety",
		Company:         "Novartis",
		PersonLocation:  "Basel, Switzerland",
		CompanyHQ:       "Basel, Switzerland",
		FundingStage:    "Public",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"In-vitro hepatotoxicity screening advances (2024)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:            "Jennifer Liu",
		Title:           "Associate Director, Toxicology",
		Company:         "Genentech",
		PersonLocation:  "South San Francisco, CA",
		CompanyHQ:       "South San Francisco, CA",
		FundingStage:    "Public",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"3D cell culture applications in oncology safety (2023)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
	{
		Name:                 "Dr. David Miller",
		Title:                "VP Nonclinical Development",
		Company:              "Regeneron",
		PersonLocation:       "Tarrytown, NY",
		CompanyHQ:            "Tarrytown, NY",
		FundingStage:         "Public",
		UsesSimilarTech:      true,
		OpenToNAMs:           true,
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Dr. Maria Santos",
		Title:           "Director of In-Vitro Models",
		Company:         "BioTissue Dynamics",
		PersonLocation:  "London, UK",
		CompanyHQ:       "Cambridge, UK",
		FundingStage:    "Series A",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Hepatic spheroid models for drug screening (2024)",
			"Microphysiological systems in toxicology (2023)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:                 "Kevin Zhang",
		Title:                "Scientist II, Cell Biology",
		Company:              "StartupLiver Inc",
		PersonLocation:       "Austin, TX",
		CompanyHQ:            "Austin, TX",
		FundingStage:         "Pre-seed",
		UsesSimilarTech:      false,
		OpenToNAMs:           false,
		IsConferenceAttendee: false,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Dr. Rachel Green",
		Title:           "Head of Safety Pharmacology",
		Company:         "AstraZeneca",
		PersonLocation:  "Cambridge, UK",
		CompanyHQ:       "Cambridge, UK",
		FundingStage:    "Public",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Alternative methods in safety pharmacology (2024)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  true,
	},
	{
		Name:                 "Alex Thompson",
		Title:                "Research Associate, Toxicology",
		Company:              "ToxiScreen Labs",
		PersonLocation:       "Durham, NC",
		CompanyHQ:            "Research Triangle, NC",
		FundingStage:         "Seed",
		UsesSimilarTech:      false,
		OpenToNAMs:           true,
		IsConferenceAttendee: false,
		IsConferenceSpeaker:  false,
	},
	{
		Name:            "Dr. Hiroshi Tanaka",
		Title:           "Director of DMPK",
		Company:         "Tokyo Pharma Research",
		PersonLocation:  "Tokyo, Japan",
		CompanyHQ:       "Tokyo, Japan",
		FundingStage:    "Series B",
		UsesSimilarTech: true,
		OpenToNAMs:      true,
		RecentPublications: []string{
			"Hepatocyte models for metabolism studies (2024)",
		},
		IsConferenceAttendee: true,
		IsConferenceSpeaker:  false,
	},
}
