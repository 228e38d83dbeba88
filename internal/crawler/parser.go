package crawler

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/wikiwalk/internal/config"
)

// LinkExtractor extracts in-scope article links from page markup.
// It is pure: repeated calls on the same input return identical output, and
// no state survives a call.
//
// Design decision: We use golang.org/x/net/html rather than regex because:
//  1. It correctly handles malformed HTML common on the web
//  2. html.Parse repairs broken documents instead of failing, which maps
//     directly onto the "malformed markup means no links, not an error"
//     contract
//  3. More maintainable than href-matching regex patterns
type LinkExtractor struct {
	// base is the origin against which kept hrefs are resolved.
	base *url.URL

	// validator supplies the pre-resolution article-path check.
	validator *Validator

	// fanOut is the maximum number of links kept per call.
	fanOut int
}

// NewLinkExtractor creates a LinkExtractor for the given site.
// fanOut caps the number of links kept per page; it bounds frontier growth
// and must be positive.
func NewLinkExtractor(site config.Site, fanOut int) (*LinkExtractor, error) {
	base, err := url.Parse(site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid site base URL %q: %w", site.BaseURL, err)
	}
	if fanOut <= 0 {
		return nil, config.ErrInvalidFanOut
	}

	return &LinkExtractor{
		base:      base,
		validator: NewValidator(site),
		fanOut:    fanOut,
	}, nil
}

// Extract returns the absolute URLs of all in-scope article links found in
// content, in first-seen document order, deduplicated, capped at the
// fan-out limit. Empty or unparsable markup yields an empty slice; Extract
// never panics.
//
// The article-path pattern is checked against the raw href as found in the
// markup, before resolution. Absolute hrefs therefore never match: genuine
// article links on the site are written site-relative. Hrefs with fragments
// or colon-qualified namespace segments are silently skipped.
func (e *LinkExtractor) Extract(content string) []string {
	links := make([]string, 0, e.fanOut)
	if content == "" {
		return links
	}

	// html.Parse repairs malformed input rather than failing; an error here
	// is only possible on reader failure, which strings.Reader never has.
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return links
	}

	seen := make(map[string]struct{}, e.fanOut)

	// Walk the DOM in document order, stopping once the cap is reached.
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" {
				if _, dup := seen[href]; !dup && e.validator.MatchesArticlePath(href) {
					seen[href] = struct{}{}
					links = append(links, e.resolve(href))
					if len(links) == e.fanOut {
						return false
					}
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(doc)

	return links
}

// resolve turns a kept href into an absolute URL against the site origin.
// The href already matched the article-path pattern, so it parses.
func (e *LinkExtractor) resolve(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	return e.base.ResolveReference(u).String()
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
