// Package model defines the data structures shared between the crawler and
// the report writers: the fetched page and the crawl result.
package model
