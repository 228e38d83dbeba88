package crawler

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/nao1215/wikiwalk/internal/config"
)

// Validator decides whether a URL is an in-scope crawlable article link for
// one site. It is pure: no side effects, safe for concurrent use.
type Validator struct {
	// domain is the host suffix identifying the site.
	domain string

	// pathRe matches genuine article paths. See articlePathRegexp.
	pathRe *regexp.Regexp
}

// articlePathRegexp builds the article-path pattern for a prefix.
// The pattern requires the prefix followed by at least one character that is
// neither a colon nor a fragment marker. This excludes colon-qualified
// namespace pages (File:, Talk:, Category:, ...), anchors, and the bare
// prefix itself.
func articlePathRegexp(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `[^:#]+$`)
}

// NewValidator creates a Validator for the given site.
func NewValidator(site config.Site) *Validator {
	return &Validator{
		domain: site.Domain,
		pathRe: articlePathRegexp(site.ArticlePrefix),
	}
}

// IsArticleURL reports whether raw is a valid in-scope article URL.
// It returns false for any unparsable or empty input and never panics.
//
// A URL qualifies iff:
//   - its scheme is http or https
//   - its hostname equals or ends with the site domain
//   - its path matches the article-path pattern
//
// Fragments are stripped by URL parsing before the path check, so the
// pattern's '#' exclusion only matters for the raw-href check done by the
// link extractor.
func (v *Validator) IsArticleURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	if !strings.HasSuffix(u.Hostname(), v.domain) {
		return false
	}

	return v.pathRe.MatchString(u.Path)
}

// MatchesArticlePath reports whether a raw href (as found in markup, before
// any resolution) matches the article-path pattern. The link extractor uses
// this pre-resolution check so that only site-relative article hrefs are
// kept.
func (v *Validator) MatchesArticlePath(href string) bool {
	return v.pathRe.MatchString(href)
}
