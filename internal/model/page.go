package model

import "strings"

// Page represents a single fetched web page.
// It carries only what link extraction needs; wikiwalk does not archive
// page content.
type Page struct {
	// URL is the address the page was fetched from.
	URL string

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// ContentType is the Content-Type header of the response.
	ContentType string

	// Body is the response body, capped at the configured maximum size.
	Body string
}

// IsHTML reports whether the page body is HTML and worth parsing for links.
// An empty Content-Type is treated as HTML because some servers omit the
// header for article pages.
func (p *Page) IsHTML() bool {
	if p.ContentType == "" {
		return true
	}
	return strings.Contains(p.ContentType, "text/html")
}
