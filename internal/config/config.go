package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// All of them can be overridden via CLI flags or the configuration file.
const (
	// DefaultDomain is the host suffix that identifies in-scope article links.
	// Any host equal to or ending with this suffix is considered part of the
	// site (en.wikipedia.org, de.wikipedia.org, ...).
	DefaultDomain = "wikipedia.org"

	// DefaultBaseURL is the origin against which relative article links are
	// resolved into absolute URLs.
	DefaultBaseURL = "https://en.wikipedia.org"

	// DefaultArticlePrefix is the path prefix of genuine article pages.
	// Paths outside this prefix (or containing a colon-qualified namespace
	// segment such as /wiki/File:...) are not articles.
	DefaultArticlePrefix = "/wiki/"

	// DefaultTimeout is the per-request fetch timeout. 10 seconds is generous
	// for a well-provisioned public site.
	DefaultTimeout = 10 * time.Second

	// DefaultFanOut is the per-page link cap. Keeping at most 10 links per
	// page bounds frontier growth and keeps crawl times predictable; it is a
	// termination-speed setting, not a correctness requirement.
	DefaultFanOut = 10

	// DefaultWorkers is the number of concurrent fetches within one BFS
	// level. 1 means strictly sequential crawling; higher values overlap
	// network latency without changing the result order.
	DefaultWorkers = 4

	// DefaultUserAgent identifies wikiwalk in HTTP requests.
	// A descriptive User-Agent is required by Wikipedia's robot policy.
	DefaultUserAgent = "wikiwalk/1.0 (+https://github.com/nao1215/wikiwalk)"

	// DefaultMaxBodySize limits the response body size read per page.
	// 5MB is ample for article HTML while preventing memory exhaustion.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// MinDepth and MaxDepth bound the crawl depth argument.
	MinDepth = 1
	MaxDepth = 3

	// AppName is the application name used for XDG directory paths.
	AppName = "wikiwalk"
)

// Output format names accepted by the --out flag.
const (
	// OutputCSV writes results.csv with an index,url header row.
	OutputCSV = "csv"

	// OutputJSON writes results.json with the full crawl result object.
	OutputJSON = "json"

	// OutputMarkdown writes results.md as a GitHub-flavored Markdown report.
	OutputMarkdown = "md"
)

// Site describes the crawled site. It is passed to the crawl engine at
// construction rather than read from package-level constants so that tests
// can point the crawler at an httptest server.
type Site struct {
	// Domain is the host suffix identifying in-scope links.
	// A URL is in scope when its hostname equals or ends with Domain.
	Domain string `yaml:"domain"`

	// BaseURL is the origin used to resolve relative article links.
	BaseURL string `yaml:"base_url"`

	// ArticlePrefix is the path prefix of article pages (e.g. "/wiki/").
	ArticlePrefix string `yaml:"article_prefix"`
}

// Config holds all configuration options for a crawl.
// It is populated from CLI flags and the optional configuration file, then
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for the crawl settings. The number of options is manageable, and nesting
// would add complexity without significant benefit. The Site sub-struct is
// the one exception because it travels into the crawler as a unit.
type Config struct {
	// Site describes the crawled site.
	Site Site

	// Seed is the starting article URL. It must satisfy the article-URL rule
	// for the configured Site before any network activity happens.
	Seed string

	// Depth is the BFS expansion limit in [MinDepth, MaxDepth].
	// Pages discovered at level == Depth are recorded but never fetched.
	Depth int

	// Timeout is the fetch timeout applied independently to each request.
	Timeout time.Duration

	// FanOut is the maximum number of links kept per fetched page.
	FanOut int

	// Workers is the number of concurrent fetches within one BFS level.
	// 1 means strictly sequential crawling.
	Workers int

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// OutputFormat selects the optional result file format ("csv", "json",
	// "md"). Empty means no file is written.
	OutputFormat string

	// Verbose enables debug-level log output. When false, only warnings and
	// errors are logged.
	Verbose bool

	// ConfigFilePath is the explicit path to the configuration file.
	// If empty, the loader searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (timeout, fan-out cap,
// site description). This also serves as documentation of the defaults.
func NewConfig() *Config {
	return &Config{
		Site: Site{
			Domain:        DefaultDomain,
			BaseURL:       DefaultBaseURL,
			ArticlePrefix: DefaultArticlePrefix,
		},
		Timeout:     DefaultTimeout,
		FanOut:      DefaultFanOut,
		Workers:     DefaultWorkers,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the XDG config directory for wikiwalk.
// On Linux: ~/.config/wikiwalk
// On macOS: ~/Library/Application Support/wikiwalk
// On Windows: %APPDATA%\wikiwalk
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast, before any network activity, with a clear
// message. The first error found is returned because fixing one error
// often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Seed == "" {
		return ErrNoSeed
	}

	if c.Depth < MinDepth || c.Depth > MaxDepth {
		return ErrInvalidDepth
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.FanOut <= 0 {
		return ErrInvalidFanOut
	}

	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	switch c.OutputFormat {
	case "", OutputCSV, OutputJSON, OutputMarkdown:
	default:
		return ErrInvalidOutputFormat
	}

	if c.Site.Domain == "" || c.Site.BaseURL == "" || c.Site.ArticlePrefix == "" {
		return ErrInvalidSite
	}

	return nil
}
