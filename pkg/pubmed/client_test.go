package pubmed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const efetchFixture = `<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">38012345</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><Year>2025</Year></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>3D hepatic spheroids for drug-induced liver injury screening</ArticleTitle>
        <AuthorList>
          <Author>
            <LastName>Chen</LastName>
            <ForeName>Sarah</ForeName>
            <AffiliationInfo>
              <Affiliation>Department of Toxicology, Harvard University, Boston, MA, USA.</Affiliation>
            </AffiliationInfo>
          </Author>
          <Author>
            <LastName>Torres</LastName>
            <ForeName>Michael</ForeName>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">38099999</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><Year>2024</Year></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>Organ-on-chip approaches to hepatotoxicity</ArticleTitle>
        <AuthorList>
          <Author>
            <LastName>Okafor</LastName>
            <ForeName>Amara</ForeName>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestSearch_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/esearch.fcgi", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "pubmed", q.Get("db"))
		assert.Equal(t, "json", q.Get("retmode"))
		assert.Equal(t, "date", q.Get("sort"))
		assert.Equal(t, "15", q.Get("retmax"))
		assert.Contains(t, q.Get("term"), "liver injury")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"esearchresult":{"idlist":["38012345","38099999"]}}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	ids, err := client.Search(context.Background(), "drug induced liver injury", 15)

	require.NoError(t, err)
	assert.Equal(t, []string{"38012345", "38099999"}, ids)
}

func TestSearch_HTTPError(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`service unavailable`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Search(context.Background(), "test query", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	// No retries: a lead search degrades rather than hammering NCBI.
	assert.Equal(t, int32(1), attempts.Load())
}

func TestSearch_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Search(context.Background(), "test query", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestSearch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Search(ctx, "test query", 10)

	require.Error(t, err)
}

func TestFetch_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/efetch.fcgi", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "pubmed", q.Get("db"))
		assert.Equal(t, "xml", q.Get("retmode"))
		assert.Equal(t, "38012345,38099999", q.Get("id"))

		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(efetchFixture))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	articles, err := client.Fetch(context.Background(), []string{"38012345", "38099999"})

	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "38012345", articles[0].PMID)
	assert.Equal(t, "3D hepatic spheroids for drug-induced liver injury screening", articles[0].Title)
	assert.Equal(t, "2025", articles[0].Year)
	require.Len(t, articles[0].Authors, 2)
	assert.Equal(t, "Chen", articles[0].Authors[0].LastName)
	assert.Equal(t, "Sarah", articles[0].Authors[0].ForeName)
	assert.Equal(t, "Department of Toxicology, Harvard University, Boston, MA, USA.", articles[0].Authors[0].Affiliation)
	assert.Empty(t, articles[0].Authors[1].Affiliation)

	assert.Equal(t, "38099999", articles[1].PMID)
	assert.Equal(t, "2024", articles[1].Year)
}

func TestFetch_EmptyIDs(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	articles, err := client.Fetch(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, articles)
	assert.Equal(t, int32(0), attempts.Load())
}

func TestFetch_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`rate limit`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), []string{"123"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestFetch_MalformedXML(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(`<PubmedArticleSet><PubmedArticle>`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), []string{"123"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestParseArticles_Placeholders(t *testing.T) {
	t.Parallel()

	doc := []byte(`<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>11111</PMID>
      <Article>
        <AuthorList>
          <Author><LastName>Nguyen</LastName><ForeName>Linh</ForeName></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`)

	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	articles, err := parseArticles(doc, now)

	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Recent publication", articles[0].Title)
	assert.Equal(t, "2026", articles[0].Year)
}

func TestParseArticles_Latin1Charset(t *testing.T) {
	t.Parallel()

	doc := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<PubmedArticleSet><PubmedArticle><MedlineCitation>" +
		"<PMID>22222</PMID>" +
		"<Article><ArticleTitle>Mod\xe8les h\xe9patiques 3D</ArticleTitle>" +
		"<AuthorList><Author><LastName>Dubois</LastName><ForeName>Ren\xe9</ForeName></Author></AuthorList>" +
		"</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>")

	articles, err := parseArticles(doc, time.Now())

	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Modèles hépatiques 3D", articles[0].Title)
	assert.Equal(t, "René", articles[0].Authors[0].ForeName)
}

func TestParseArticles_UnsupportedCharset(t *testing.T) {
	t.Parallel()

	doc := []byte(`<?xml version="1.0" encoding="NOT-A-CHARSET"?>
<PubmedArticleSet></PubmedArticleSet>`)

	_, err := parseArticles(doc, time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "charset")
}

func TestRecentTerm(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	got := RecentTerm("3D cell culture toxicology", now)

	want := `3D cell culture toxicology AND ("2023"[Date - Publication] OR "2024"[Date - Publication] OR "2025"[Date - Publication])`
	assert.Equal(t, want, got)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient()
	hc := c.(*httpClient)

	assert.Equal(t, "https://eutils.ncbi.nlm.nih.gov/entrez/eutils", hc.baseURL)
	assert.NotNil(t, hc.http)
	assert.Equal(t, 20*time.Second, hc.http.Timeout)
	assert.NotNil(t, hc.limiter)
	assert.Equal(t, float64(3), float64(hc.limiter.Limit()))
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	customClient := &http.Client{Timeout: time.Second}
	c := NewClient(WithHTTPClient(customClient))
	hc := c.(*httpClient)

	assert.Equal(t, customClient, hc.http)
}

func TestWithRateLimit(t *testing.T) {
	t.Parallel()

	c := NewClient(WithRateLimit(10))
	hc := c.(*httpClient)
	assert.Equal(t, float64(10), float64(hc.limiter.Limit()))
	assert.Equal(t, 10, hc.limiter.Burst())

	// Non-positive rates keep the default.
	c = NewClient(WithRateLimit(0))
	hc = c.(*httpClient)
	assert.Equal(t, float64(3), float64(hc.limiter.Limit()))
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	c := NewClient(WithTimeout(5 * time.Second))
	hc := c.(*httpClient)
	assert.Equal(t, 5*time.Second, hc.http.Timeout)

	// Non-positive durations keep the default.
	c = NewClient(WithTimeout(0))
	hc = c.(*httpClient)
	assert.Equal(t, 20*time.Second, hc.http.Timeout)
}

func TestSearch_RetmaxMatchesLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, strconv.Itoa(5), r.URL.Query().Get("retmax"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"esearchresult":{"idlist":[]}}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	ids, err := client.Search(context.Background(), "q", 5)

	require.NoError(t, err)
	assert.Empty(t, ids)
}
