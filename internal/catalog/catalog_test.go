package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoLeads(t *testing.T) {
	leads := DemoLeads()
	require.Len(t, leads, 9)

	alice := leads[0]
	assert.Equal(t, "Alice Smith", alice.Name)
	assert.Equal(t, "Director of Safety Assessment", alice.Title)
	assert.Equal(t, "HepatoThera Biotech", alice.Company)
	assert.Equal(t, "Remote - Colorado", alice.PersonLocation)
	assert.Equal(t, "Cambridge, MA", alice.CompanyHQ)
	assert.Equal(t, "Series B", alice.FundingStage)
	assert.True(t, alice.IsConferenceSpeaker)
	require.Len(t, alice.RecentPublications, 2)

	ivan := leads[8]
	assert.Equal(t, "Ivan Petrov", ivan.Name)
	assert.Equal(t, []string{"Hepatocyte spheroids in NAM workflows"}, ivan.RecentPublications)
}

func TestFundingLeads(t *testing.T) {
	leads := FundingLeads()
	require.Len(t, leads, 15)

	chen := leads[0]
	assert.Equal(t, "Dr. Sarah Chen", chen.Name)
	assert.Equal(t, "drsarahchen@iambictherapeutics.com", chen.Email)
	assert.Equal(t, "https://linkedin.com/in/dr-sarah-chen", chen.LinkedInURL)

	torres := leads[1]
	assert.Equal(t, "michaeltorresphd@cassidybio.com", torres.Email)
	assert.Equal(t, "https://linkedin.com/in/michael-torres-phd", torres.LinkedInURL)

	for _, l := range leads {
		assert.NotEmpty(t, l.Email, l.Name)
		assert.True(t, strings.HasPrefix(l.LinkedInURL, "https://linkedin.com/in/"), l.Name)
	}
}

func TestAllCatalogOrder(t *testing.T) {
	leads := All()
	require.Len(t, leads, 24)
	assert.Equal(t, "Alice Smith", leads[0].Name)
	assert.Equal(t, "Dr. Sarah Chen", leads[9].Name)
}

func TestDeriveEmail(t *testing.T) {
	tests := []struct {
		name    string
		company string
		want    string
	}{
		{"Dr. Sarah Chen", "Iambic Therapeutics", "drsarahchen@iambictherapeutics.com"},
		{"Michael Torres, PhD", "Cassidy Bio", "michaeltorresphd@cassidybio.com"},
		{"Kevin Zhang", "StartupLiver Inc", "kevinzhang@startupliverinc.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveEmail(tt.name, tt.company))
		})
	}
}

func TestDeriveEmailTruncates(t *testing.T) {
	email := deriveEmail("Dr. Maximiliana Concepcion Featherstonehaugh", "Extraordinarily Long Company Name Holdings")
	assert.Len(t, email, 50)
}

func TestDeriveLinkedIn(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Dr. Sarah Chen", "https://linkedin.com/in/dr-sarah-chen"},
		{"Michael Torres, PhD", "https://linkedin.com/in/michael-torres-phd"},
		{"Alex Thompson", "https://linkedin.com/in/alex-thompson"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveLinkedIn(tt.name))
		})
	}
}
