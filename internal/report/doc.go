// Package report provides the result sinks for wikiwalk: a human-readable
// completion summary and CSV, JSON, and Markdown serializations of the
// crawl result.
//
// The CSV and JSON formats are output contracts: the CSV header is
// "index,url" with 1-based indexes, and the JSON object carries exactly the
// seed, depth, total_links_found, unique_links, and links fields.
package report
