package model

import "time"

// CrawlResult is the ordered outcome of one crawl run. Links holds every
// discovered article URL in discovery order, seed first. It is the only
// value that survives the run; frontier and visited-set state are internal
// to the crawl engine and discarded on completion.
//
// The JSON field names form the output contract of the --out json format
// and must not change.
type CrawlResult struct {
	// Seed is the validated starting article URL.
	Seed string `json:"seed"`

	// Depth is the BFS expansion limit the crawl ran with.
	Depth int `json:"depth"`

	// TotalLinksFound is the number of entries in Links.
	TotalLinksFound int `json:"total_links_found"`

	// UniqueLinks is the number of distinct entries in Links. The visited
	// set prevents duplicates from entering Links, so this always equals
	// TotalLinksFound; it is computed independently and kept as a verified
	// property of the crawl, not assumed.
	UniqueLinks int `json:"unique_links"`

	// Links are the discovered article URLs in discovery order, seed first.
	Links []string `json:"links"`

	// StartedAt is the wall-clock time the crawl began.
	StartedAt time.Time `json:"-"`

	// Elapsed is the total crawl duration.
	Elapsed time.Duration `json:"-"`
}

// NewCrawlResult creates a CrawlResult seeded with the starting URL.
// The seed is always the first entry regardless of whether its fetch later
// succeeds.
func NewCrawlResult(seed string, depth int) *CrawlResult {
	return &CrawlResult{
		Seed:      seed,
		Depth:     depth,
		Links:     []string{seed},
		StartedAt: time.Now(),
	}
}

// Append records a newly discovered URL. Callers are responsible for the
// visited-set check; Append itself does not deduplicate.
func (r *CrawlResult) Append(url string) {
	r.Links = append(r.Links, url)
}

// Finalize computes the derived counts and the elapsed time.
// TotalLinksFound and UniqueLinks are computed independently of each other
// so that tests can assert their equality as a crawl invariant.
func (r *CrawlResult) Finalize() {
	r.TotalLinksFound = len(r.Links)

	seen := make(map[string]struct{}, len(r.Links))
	for _, link := range r.Links {
		seen[link] = struct{}{}
	}
	r.UniqueLinks = len(seen)

	r.Elapsed = time.Since(r.StartedAt)
}
