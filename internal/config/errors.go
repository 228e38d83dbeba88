package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSeed is returned when no seed article URL is provided.
	ErrNoSeed = errors.New("no seed URL specified: provide a Wikipedia article URL")

	// ErrInvalidDepth is returned when the crawl depth is outside [1, 3].
	// Depth bounds the BFS expansion level; it is capped at 3 to keep crawl
	// sizes reasonable.
	ErrInvalidDepth = errors.New("invalid depth: must be an integer between 1 and 3")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	// A zero or negative timeout would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidFanOut is returned when the per-page link cap is not positive.
	// A cap of zero would mean no links are ever discovered.
	ErrInvalidFanOut = errors.New("invalid fan-out cap: must be positive")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	// Use 1 for strictly sequential crawling.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidOutputFormat is returned when --out names an unknown format.
	ErrInvalidOutputFormat = errors.New(`invalid output format: must be "csv", "json", or "md"`)

	// ErrInvalidSite is returned when the site description is incomplete.
	// Domain, base URL, and article prefix are all required.
	ErrInvalidSite = errors.New("invalid site: domain, base_url, and article_prefix are required")
)
