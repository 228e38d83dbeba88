package crawler

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/wikiwalk/internal/config"
	"github.com/nao1215/wikiwalk/internal/model"
)

// Spider drives the level-bounded breadth-first traversal.
// It owns the frontier queue, the visited set, and the discovery-order
// result list, and calls the Fetcher and LinkExtractor per dequeued URL.
//
// Design decision: We call it "Spider" rather than "Crawler" because:
//  1. "Spider" is the traditional term for web crawlers
//  2. Distinguishes the component from the package name
//  3. Clearer in code: crawler.NewSpider() vs crawler.NewCrawler()
type Spider struct {
	// fetcher retrieves pages.
	fetcher *Fetcher

	// extractor extracts in-scope article links from fetched pages.
	extractor *LinkExtractor

	// workers is the number of concurrent fetches within one BFS level.
	// 1 reproduces strictly sequential crawling.
	workers int

	// logger receives per-fetch warnings and debug traces.
	logger *slog.Logger
}

// queueItem represents an item in the crawl frontier.
type queueItem struct {
	url   string
	level int
}

// SpiderOption configures a Spider.
type SpiderOption func(*Spider)

// WithWorkers sets the number of concurrent fetches per BFS level.
// Values below 1 are ignored.
func WithWorkers(n int) SpiderOption {
	return func(s *Spider) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger sets a custom logger for crawl warnings and traces.
func WithLogger(logger *slog.Logger) SpiderOption {
	return func(s *Spider) {
		s.logger = logger
	}
}

// NewSpider creates a Spider around the given fetcher and extractor.
//
// Design decision: We require the collaborators rather than constructing
// them internally because:
//  1. Site configuration is handled where the components are built
//  2. Tests can substitute fetchers pointed at httptest servers
//  3. Consistent with the rest of the package's constructors
func NewSpider(fetcher *Fetcher, extractor *LinkExtractor, opts ...SpiderOption) *Spider {
	s := &Spider{
		fetcher:   fetcher,
		extractor: extractor,
		workers:   config.DefaultWorkers,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Crawl performs a breadth-first crawl from seed, expanding pages up to
// depth levels away, and returns every discovered article URL in discovery
// order, seed first.
//
// Depth is the expansion limit: pages discovered at level == depth are
// recorded in the result but never fetched. A failed fetch logs a warning
// and prunes that branch; it never aborts the crawl. Each URL is fetched at
// most once across the whole run.
//
// Fetches within one level run concurrently, bounded by the worker count,
// but their discoveries are merged sequentially in dequeue order. The
// visited-set check-and-insert is therefore single-threaded, and the result
// order is identical to a strictly sequential crawl.
//
// On context cancellation, in-flight fetches are abandoned and Crawl
// returns the partial result together with ctx.Err().
func (s *Spider) Crawl(ctx context.Context, seed string, depth int) (*model.CrawlResult, error) {
	if depth < config.MinDepth || depth > config.MaxDepth {
		return nil, fmt.Errorf("%w: got %d", config.ErrInvalidDepth, depth)
	}

	result := model.NewCrawlResult(seed, depth)
	defer result.Finalize()

	visited := map[string]struct{}{seed: {}}
	frontier := []queueItem{{url: seed, level: 0}}

	// The frontier always holds exactly one BFS level, so level-by-level
	// iteration and FIFO dequeuing are the same traversal.
	for len(frontier) > 0 && frontier[0].level < depth {
		extracted := make([][]string, len(frontier))

		g := new(errgroup.Group)
		g.SetLimit(s.workers)

		for i, item := range frontier {
			i, item := i, item
			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				page, err := s.fetcher.Fetch(ctx, item.url)
				if err != nil {
					// Non-fatal: the branch is pruned, the crawl continues.
					s.logger.Warn("could not fetch page", "url", item.url, "level", item.level, "error", err)
					return nil
				}

				if !page.IsHTML() {
					s.logger.Debug("skipping non-HTML page", "url", item.url, "contentType", page.ContentType)
					return nil
				}

				extracted[i] = s.extractor.Extract(page.Body)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return result, err
		}

		// Merge discoveries in dequeue order. This single-threaded pass is
		// what guarantees both the at-most-once enqueue invariant and the
		// discovery-order contract.
		next := make([]queueItem, 0, len(frontier)*s.extractor.fanOut)
		for i, item := range frontier {
			for _, link := range extracted[i] {
				if _, ok := visited[link]; ok {
					continue
				}
				visited[link] = struct{}{}
				result.Append(link)
				next = append(next, queueItem{url: link, level: item.level + 1})
			}
		}

		s.logger.Debug("level complete",
			"level", frontier[0].level,
			"fetched", len(frontier),
			"discovered", len(next),
		)

		frontier = next
	}

	return result, nil
}
