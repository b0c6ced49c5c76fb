package notion

import (
	"context"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/euprime/leadscout/internal/model"
)

func titledPage(id, name string) notionapi.Page {
	return notionapi.Page{
		ID: notionapi.ObjectID(id),
		Properties: notionapi.Properties{
			"Name": &notionapi.TitleProperty{
				Title: []notionapi.RichText{{PlainText: name}},
			},
		},
	}
}

func emptyQueryResponse() *notionapi.DatabaseQueryResponse {
	return &notionapi.DatabaseQueryResponse{HasMore: false}
}

func TestPushLeads_CreatesPages(t *testing.T) {
	mc := new(MockClient)
	ctx := context.Background()

	mc.On("QueryDatabase", ctx, "db-1", mock.AnythingOfType("*notionapi.DatabaseQueryRequest")).
		Return(emptyQueryResponse(), nil)

	var createReqs []*notionapi.PageCreateRequest
	mc.On("CreatePage", ctx, mock.AnythingOfType("*notionapi.PageCreateRequest")).
		Run(func(args mock.Arguments) {
			createReqs = append(createReqs, args.Get(1).(*notionapi.PageCreateRequest))
		}).
		Return(&notionapi.Page{ID: "new-page"}, nil)

	leads := []model.ScoredLead{
		{Lead: model.Lead{Name: "Alice Smith"}, PropensityScore: 85},
		{Lead: model.Lead{Name: "Bob Jones"}, PropensityScore: 40},
	}

	created, err := PushLeads(ctx, mc, "db-1", leads)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	require.Len(t, createReqs, 2)
	assert.Equal(t, notionapi.DatabaseID("db-1"), createReqs[0].Parent.DatabaseID)
	tp, ok := createReqs[0].Properties["Name"].(notionapi.TitleProperty)
	require.True(t, ok)
	assert.Equal(t, "Alice Smith", tp.Title[0].Text.Content)
	mc.AssertExpectations(t)
}

func TestPushLeads_SkipsExisting(t *testing.T) {
	mc := new(MockClient)
	ctx := context.Background()

	mc.On("QueryDatabase", ctx, "db-1", mock.AnythingOfType("*notionapi.DatabaseQueryRequest")).
		Return(&notionapi.DatabaseQueryResponse{
			Results: []notionapi.Page{titledPage("page-1", "Alice Smith")},
			HasMore: false,
		}, nil)

	mc.On("CreatePage", ctx, mock.MatchedBy(func(req *notionapi.PageCreateRequest) bool {
		tp, ok := req.Properties["Name"].(notionapi.TitleProperty)
		return ok && tp.Title[0].Text.Content == "Bob Jones"
	})).Return(&notionapi.Page{ID: "new-page"}, nil).Once()

	leads := []model.ScoredLead{
		{Lead: model.Lead{Name: "Alice Smith"}, PropensityScore: 85},
		{Lead: model.Lead{Name: "Bob Jones"}, PropensityScore: 40},
	}

	created, err := PushLeads(ctx, mc, "db-1", leads)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	mc.AssertExpectations(t)
}

func TestPushLeads_CreateError(t *testing.T) {
	mc := new(MockClient)
	ctx := context.Background()

	mc.On("QueryDatabase", ctx, "db-1", mock.AnythingOfType("*notionapi.DatabaseQueryRequest")).
		Return(emptyQueryResponse(), nil)
	mc.On("CreatePage", ctx, mock.AnythingOfType("*notionapi.PageCreateRequest")).
		Return(nil, assert.AnError)

	created, err := PushLeads(ctx, mc, "db-1", []model.ScoredLead{
		{Lead: model.Lead{Name: "Alice Smith"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notion: create page for Alice Smith")
	assert.Equal(t, 0, created)
}

func TestPushLeads_QueryError(t *testing.T) {
	mc := new(MockClient)
	ctx := context.Background()

	mc.On("QueryDatabase", ctx, "db-1", mock.AnythingOfType("*notionapi.DatabaseQueryRequest")).
		Return(nil, assert.AnError)

	created, err := PushLeads(ctx, mc, "db-1", []model.ScoredLead{
		{Lead: model.Lead{Name: "Alice Smith"}},
	})
	require.Error(t, err)
	assert.Equal(t, 0, created)
}

func TestPushLeads_Cancelled(t *testing.T) {
	mc := new(MockClient)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mc.On("QueryDatabase", ctx, "db-1", mock.AnythingOfType("*notionapi.DatabaseQueryRequest")).
		Return(emptyQueryResponse(), nil)

	created, err := PushLeads(ctx, mc, "db-1", []model.ScoredLead{
		{Lead: model.Lead{Name: "Alice Smith"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
	assert.Equal(t, 0, created)
}

func TestExistingNames_Paginates(t *testing.T) {
	mc := new(MockClient)
	ctx := context.Background()

	mc.On("QueryDatabase", ctx, "db-1", mock.MatchedBy(func(req *notionapi.DatabaseQueryRequest) bool {
		return req.StartCursor == ""
	})).Return(&notionapi.DatabaseQueryResponse{
		Results:    []notionapi.Page{titledPage("page-1", "Alice Smith")},
		HasMore:    true,
		NextCursor: "cur-2",
	}, nil).Once()

	mc.On("QueryDatabase", ctx, "db-1", mock.MatchedBy(func(req *notionapi.DatabaseQueryRequest) bool {
		return req.StartCursor == notionapi.Cursor("cur-2")
	})).Return(&notionapi.DatabaseQueryResponse{
		Results: []notionapi.Page{titledPage("page-2", "Bob Jones")},
		HasMore: false,
	}, nil).Once()

	names, err := ExistingNames(ctx, mc, "db-1")
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Contains(t, names, "Alice Smith")
	assert.Contains(t, names, "Bob Jones")
	mc.AssertExpectations(t)
}

func TestPageTitle(t *testing.T) {
	t.Parallel()

	page := notionapi.Page{
		Properties: notionapi.Properties{
			"Name": &notionapi.TitleProperty{
				Title: []notionapi.RichText{
					{PlainText: "  Alice"},
					{PlainText: " Smith  "},
				},
			},
		},
	}
	assert.Equal(t, "Alice Smith", pageTitle(page))

	// Missing or mistyped Name property reads as empty.
	assert.Empty(t, pageTitle(notionapi.Page{Properties: notionapi.Properties{}}))
	assert.Empty(t, pageTitle(notionapi.Page{
		Properties: notionapi.Properties{
			"Name": &notionapi.RichTextProperty{
				RichText: []notionapi.RichText{{PlainText: "not a title"}},
			},
		},
	}))
}

func TestBuildLeadProperties(t *testing.T) {
	t.Parallel()

	lead := model.ScoredLead{
		Lead: model.Lead{
			Name:                "Dr. Anna Kowalski",
			Title:               "VP of Toxicology",
			Company:             "HepaTech Bio",
			PersonLocation:      "Boston, MA",
			CompanyHQ:           "Cambridge, MA",
			Email:               "anna@hepatech.com",
			LinkedInURL:         "https://linkedin.com/in/anna-kowalski",
			FundingStage:        "Series B",
			UsesSimilarTech:     true,
			OpenToNAMs:          true,
			IsConferenceSpeaker: true,
		},
		PropensityScore: 95,
		Publications:    "3D liver models (2025)",
	}

	props := buildLeadProperties(lead)

	tp, ok := props["Name"].(notionapi.TitleProperty)
	require.True(t, ok)
	assert.Equal(t, "Dr. Anna Kowalski", tp.Title[0].Text.Content)

	np, ok := props["Score"].(notionapi.NumberProperty)
	require.True(t, ok)
	assert.Equal(t, float64(95), np.Number)

	up, ok := props["LinkedIn"].(notionapi.URLProperty)
	require.True(t, ok)
	assert.Equal(t, "https://linkedin.com/in/anna-kowalski", up.URL)

	ep, ok := props["Email"].(notionapi.EmailProperty)
	require.True(t, ok)
	assert.Equal(t, "anna@hepatech.com", ep.Email)

	rt, ok := props["Uses 3D/In-Vitro"].(notionapi.RichTextProperty)
	require.True(t, ok)
	assert.Equal(t, "true", rt.RichText[0].Text.Content)

	rt, ok = props["Recent Publications"].(notionapi.RichTextProperty)
	require.True(t, ok)
	assert.Equal(t, "3D liver models (2025)", rt.RichText[0].Text.Content)
}

func TestBuildLeadProperties_SkipsEmptyFields(t *testing.T) {
	t.Parallel()

	props := buildLeadProperties(model.ScoredLead{
		Lead: model.Lead{Name: "Kevin Zhang"},
	})

	assert.Contains(t, props, "Name")
	assert.Contains(t, props, "Score")
	assert.NotContains(t, props, "Email")
	assert.NotContains(t, props, "LinkedIn")
	assert.NotContains(t, props, "Company")
	assert.NotContains(t, props, "Recent Publications")

	// Booleans always serialize, even when false.
	rt, ok := props["Open to NAMs"].(notionapi.RichTextProperty)
	require.True(t, ok)
	assert.Equal(t, "false", rt.RichText[0].Text.Content)
}
