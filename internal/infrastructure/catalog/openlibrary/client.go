// Package openlibrary implements the catalog client against the Open
// Library HTTP API. Upstream shapes are inconsistent between endpoints and
// records; all normalization into domain.Book happens here, and transport
// failures are degraded to empty results rather than surfaced.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
	"github.com/openshelf/library-system/internal/infrastructure/metrics"
)

const (
	// Placeholder served when a work has no cover id.
	coverPlaceholderPath = "/libro.PNG"
	// Editions inspected when the work record lacks language information.
	editionLanguageLimit = 10
	unknownAuthor        = "Unknown Author"
)

// Config carries the client settings, normally taken from
// config.CatalogConfig.
type Config struct {
	BaseURL           string
	CoversURL         string
	RequestsPerSecond int
}

// Client talks to the Open Library API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	coversURL  string
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// NewClient builds a catalog client with a shared transport timeout and a
// request rate limiter.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.BaseURL,
		coversURL:  cfg.CoversURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		log:        log,
	}
}

var _ ports.CatalogClient = (*Client)(nil)

// ---------------------------------------------------------------------------
// Upstream response shapes
// ---------------------------------------------------------------------------

// searchResponse matches /search.json.
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	CoverID          *int     `json:"cover_i"`
	FirstPublishYear *int     `json:"first_publish_year"`
	Subjects         []string `json:"subject"`
	Languages        []string `json:"language"`
}

// textValue decodes the upstream description convention, which is either a
// plain JSON string or an object carrying the text in a "value" field.
type textValue struct {
	Text string
}

func (t *textValue) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		t.Text = plain
		return nil
	}
	var rich struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &rich); err != nil {
		return err
	}
	t.Text = rich.Value
	return nil
}

type authorRef struct {
	Author struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"author"`
}

type langRef struct {
	Key string `json:"key"`
}

// workResponse matches /<work-key>.json.
type workResponse struct {
	Key              string      `json:"key"`
	Title            string      `json:"title"`
	Description      *textValue  `json:"description"`
	Authors          []authorRef `json:"authors"`
	Covers           []int       `json:"covers"`
	FirstPublishDate string      `json:"first_publish_date"`
	Excerpts         []struct {
		Text string `json:"text"`
	} `json:"excerpts"`
	Subjects      []string  `json:"subjects"`
	SubjectPlaces []string  `json:"subject_places"`
	SubjectTimes  []string  `json:"subject_times"`
	SubjectPeople []string  `json:"subject_people"`
	Languages     []langRef `json:"languages"`
}

// authorResponse matches /<author-key>.json.
type authorResponse struct {
	Name string `json:"name"`
}

// editionsResponse matches /<work-key>/editions.json.
type editionsResponse struct {
	Entries []struct {
		Languages []langRef `json:"languages"`
	} `json:"entries"`
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

// Search queries /search.json with the optional filter constraints and
// limit/offset pagination. Any transport or non-2xx failure yields an empty
// result set with total zero.
func (c *Client) Search(ctx context.Context, query string, filters domain.Filters, limit, offset int) ports.SearchResult {
	params := url.Values{}
	params.Set("q", query)
	if filters.Subject != "" {
		params.Set("subject", filters.Subject)
	}
	if filters.Author != "" {
		params.Set("author", filters.Author)
	}
	if filters.Title != "" {
		params.Set("title", filters.Title)
	}
	if filters.Language != "" {
		params.Set("language", filters.Language)
	}
	if filters.FirstPublishYear != 0 {
		params.Set("first_publish_year", strconv.Itoa(filters.FirstPublishYear))
	}
	if filters.Sort != "" {
		params.Set("sort", string(filters.Sort))
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	metrics.SearchesTotal.Inc()

	var res searchResponse
	if err := c.get(ctx, c.baseURL+"/search.json?"+params.Encode(), &res); err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues("search").Inc()
		c.log.Error().Err(err).Str("query", query).Msg("openlibrary: search failed")
		return ports.SearchResult{Books: []domain.Book{}, Total: 0}
	}

	books := make([]domain.Book, 0, len(res.Docs))
	for _, doc := range res.Docs {
		authors := doc.AuthorNames
		if authors == nil {
			authors = []string{}
		}
		books = append(books, domain.Book{
			ID:               doc.Key,
			Title:            doc.Title,
			Authors:          authors,
			CoverID:          doc.CoverID,
			FirstPublishYear: doc.FirstPublishYear,
			Subjects:         doc.Subjects,
			Languages:        doc.Languages,
		})
	}
	return ports.SearchResult{Books: books, Total: res.NumFound}
}

// ---------------------------------------------------------------------------
// Work details
// ---------------------------------------------------------------------------

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// BookDetails fetches a single work record and normalizes it. Secondary
// author and edition lookups degrade independently; only a failure of the
// primary work fetch reports absence.
func (c *Client) BookDetails(ctx context.Context, bookID string) (*domain.Book, bool) {
	var work workResponse
	if err := c.get(ctx, c.baseURL+bookID+".json", &work); err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues("work").Inc()
		c.log.Error().Err(err).Str("book_id", bookID).Msg("openlibrary: work fetch failed")
		return nil, false
	}

	description := ""
	if work.Description != nil {
		description = work.Description.Text
	} else if len(work.Excerpts) > 0 {
		description = work.Excerpts[0].Text
	}

	authors := c.resolveAuthors(ctx, work.Authors)

	var firstPublishYear *int
	if m := yearPattern.FindStringSubmatch(work.FirstPublishDate); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			firstPublishYear = &year
		}
	}

	var subjects []string
	subjects = append(subjects, work.Subjects...)
	subjects = append(subjects, work.SubjectPlaces...)
	subjects = append(subjects, work.SubjectTimes...)
	subjects = append(subjects, work.SubjectPeople...)

	var languages []string
	if len(work.Languages) > 0 {
		for _, l := range work.Languages {
			languages = append(languages, languageName(l.Key))
		}
	} else {
		languages = c.fetchEditionLanguages(ctx, work.Key)
	}

	var coverID *int
	if len(work.Covers) > 0 {
		id := work.Covers[0]
		coverID = &id
	}

	return &domain.Book{
		ID:               work.Key,
		Title:            work.Title,
		Authors:          authors,
		CoverID:          coverID,
		FirstPublishYear: firstPublishYear,
		Description:      description,
		Subjects:         subjects,
		Languages:        languages,
	}, true
}

// resolveAuthors produces author display names in the order the work lists
// them. Refs without an inline name need one fetch each; the fetches run
// concurrently and each independently falls back to a placeholder so a
// single broken author record cannot fail the whole detail fetch.
func (c *Client) resolveAuthors(ctx context.Context, refs []authorRef) []string {
	if len(refs) == 0 {
		return []string{}
	}

	names := make([]string, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		if ref.Author.Name != "" {
			names[i] = ref.Author.Name
			continue
		}
		i, ref := i, ref
		g.Go(func() error {
			names[i] = c.fetchAuthorName(gctx, ref.Author.Key)
			return nil
		})
	}
	_ = g.Wait()
	return names
}

func (c *Client) fetchAuthorName(ctx context.Context, key string) string {
	var author authorResponse
	if err := c.get(ctx, c.baseURL+key+".json", &author); err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues("author").Inc()
		c.log.Warn().Err(err).Str("author_key", key).Msg("openlibrary: author fetch failed")
		return unknownAuthor
	}
	if author.Name == "" {
		return unknownAuthor
	}
	return author.Name
}

// fetchEditionLanguages collects distinct language names across the first
// few editions of a work. Any failure yields nil: no language information
// rather than an error.
func (c *Client) fetchEditionLanguages(ctx context.Context, workKey string) []string {
	u := fmt.Sprintf("%s%s/editions.json?limit=%d", c.baseURL, workKey, editionLanguageLimit)

	var editions editionsResponse
	if err := c.get(ctx, u, &editions); err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues("editions").Inc()
		c.log.Warn().Err(err).Str("work_key", workKey).Msg("openlibrary: editions fetch failed")
		return nil
	}

	seen := make(map[string]struct{})
	var languages []string
	for _, entry := range editions.Entries {
		for _, l := range entry.Languages {
			name := languageName(l.Key)
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			languages = append(languages, name)
		}
	}
	return languages
}

// ---------------------------------------------------------------------------
// Covers
// ---------------------------------------------------------------------------

// CoverImageURL builds the predictable covers URL for a cover id, or returns
// the placeholder path when no id is present. A zero id counts as absent,
// matching upstream records that carry 0 for "no cover". Size is S, M or L;
// anything else falls back to M. No network call is made.
func (c *Client) CoverImageURL(coverID *int, size string) string {
	if coverID == nil || *coverID == 0 {
		return coverPlaceholderPath
	}
	switch size {
	case "S", "M", "L":
	default:
		size = "M"
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coversURL, *coverID, size)
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

func (c *Client) get(ctx context.Context, rawURL string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
