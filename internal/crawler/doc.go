// Package crawler provides the breadth-first crawl engine for wikiwalk.
//
// # Architecture
//
// The package is built from four small components:
//
//   - Validator: decides whether a URL is an in-scope crawlable article link
//   - LinkExtractor: returns the capped, deduplicated, order-preserving list
//     of in-scope article links found in page markup
//   - Fetcher: performs a single timed HTTP GET and reports success or a
//     FetchError
//   - Spider: drives the level-bounded breadth-first traversal, owning the
//     frontier queue, the visited set, and the discovery-order result
//
// Design decision: We implement our own crawler rather than using a
// third-party framework because:
//  1. The traversal contract (depth as expansion limit, strict discovery
//     order, per-page fan-out cap) is precise and small
//  2. Frameworks bring their own scheduling and dedup policies that would
//     have to be fought rather than used
//  3. It keeps the dependency surface limited to an HTML parser
//
// # Failure model
//
// A single page fetch failure never aborts the crawl: the failure is logged
// as a warning and that branch of the BFS tree is pruned. Malformed markup
// is treated as a page with no links. There are no retries.
//
// # Usage
//
//	spider := crawler.NewSpider(fetcher, extractor, crawler.WithWorkers(4))
//	result, err := spider.Crawl(ctx, seedURL, 2)
package crawler
