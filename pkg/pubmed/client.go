// Package pubmed provides a client for the NCBI E-utilities PubMed API.
package pubmed

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/time/rate"
)

// Client defines the PubMed E-utilities operations. Each call is a single
// request-response; callers that treat PubMed as a best-effort source handle
// the error themselves.
type Client interface {
	// Search returns the PubMed IDs of articles matching the term, newest
	// first.
	Search(ctx context.Context, term string, limit int) ([]string, error)
	// Fetch retrieves full article records for the given PubMed IDs.
	Fetch(ctx context.Context, ids []string) ([]Article, error)
}

// Article is a parsed PubMed article record.
type Article struct {
	PMID    string   `json:"pmid"`
	Title   string   `json:"title"`
	Year    string   `json:"year"`
	Authors []Author `json:"authors"`
}

// Author is one entry of an article's author list.
type Author struct {
	LastName    string `json:"last_name"`
	ForeName    string `json:"fore_name"`
	Affiliation string `json:"affiliation,omitempty"`
}

// RecentTerm restricts a query to articles published in the current or two
// preceding years.
func RecentTerm(query string, now time.Time) string {
	y := now.Year()
	return fmt.Sprintf("%s AND (%q[Date - Publication] OR %q[Date - Publication] OR %q[Date - Publication])",
		query, strconv.Itoa(y-2), strconv.Itoa(y-1), strconv.Itoa(y))
}

// Option configures the PubMed client.
type Option func(*httpClient)

// WithBaseURL sets a custom E-utilities base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit overrides the default request rate.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a PubMed E-utilities client. Requests are limited to
// 3 req/s, the NCBI ceiling for unauthenticated clients.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
		limiter: rate.NewLimiter(3, 1),
		http: &http.Client{
			Timeout: 20 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do executes a single request and returns the body and status code.
func (c *httpClient) do(ctx context.Context, req *http.Request) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, eris.Wrap(err, "pubmed: rate limit wait")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, resp.StatusCode, eris.Wrap(readErr, "pubmed: read response body")
	}

	return body, resp.StatusCode, nil
}

type esearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

func (c *httpClient) Search(ctx context.Context, term string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("retmode", "json")
	params.Set("term", term)
	params.Set("sort", "date")
	params.Set("retmax", strconv.Itoa(limit))

	reqURL := fmt.Sprintf("%s/esearch.fcgi?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "pubmed: create search request")
	}

	body, statusCode, err := c.do(ctx, req)
	if err != nil {
		return nil, eris.Wrap(err, "pubmed: search request failed")
	}
	if statusCode != http.StatusOK {
		return nil, eris.Errorf("pubmed: search unexpected status %d: %s", statusCode, string(body))
	}

	var result esearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "pubmed: unmarshal search response")
	}

	return result.ESearchResult.IDList, nil
}

type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    string         `xml:"MedlineCitation>PMID"`
	Title   string         `xml:"MedlineCitation>Article>ArticleTitle"`
	Year    string         `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>Year"`
	Authors []pubmedAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type pubmedAuthor struct {
	LastName    string `xml:"LastName"`
	ForeName    string `xml:"ForeName"`
	Affiliation string `xml:"AffiliationInfo>Affiliation"`
}

func (c *httpClient) Fetch(ctx context.Context, ids []string) ([]Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "xml")

	reqURL := fmt.Sprintf("%s/efetch.fcgi?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "pubmed: create fetch request")
	}

	body, statusCode, err := c.do(ctx, req)
	if err != nil {
		return nil, eris.Wrap(err, "pubmed: fetch request failed")
	}
	if statusCode != http.StatusOK {
		return nil, eris.Errorf("pubmed: fetch unexpected status %d: %s", statusCode, string(body))
	}

	return parseArticles(body, time.Now())
}

// parseArticles decodes an efetch XML document. Articles without a title or
// year get placeholder values so downstream lead building always has
// something to show.
func parseArticles(data []byte, now time.Time) ([]Article, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "pubmed: unsupported charset %q", charset)
		}
		return enc.NewDecoder().Reader(input), nil
	}

	var set pubmedArticleSet
	if err := decoder.Decode(&set); err != nil {
		return nil, eris.Wrap(err, "pubmed: decode fetch response")
	}

	articles := make([]Article, 0, len(set.Articles))
	for _, a := range set.Articles {
		title := strings.TrimSpace(a.Title)
		if title == "" {
			title = "Recent publication"
		}
		year := strings.TrimSpace(a.Year)
		if year == "" {
			year = strconv.Itoa(now.Year())
		}

		authors := make([]Author, 0, len(a.Authors))
		for _, au := range a.Authors {
			authors = append(authors, Author{
				LastName:    strings.TrimSpace(au.LastName),
				ForeName:    strings.TrimSpace(au.ForeName),
				Affiliation: strings.TrimSpace(au.Affiliation),
			})
		}

		articles = append(articles, Article{
			PMID:    strings.TrimSpace(a.PMID),
			Title:   title,
			Year:    year,
			Authors: authors,
		})
	}
	return articles, nil
}
