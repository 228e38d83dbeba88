// Package main provides the entry point for the wikiwalk CLI.
//
// wikiwalk is a bounded-depth breadth-first crawler for Wikipedia articles.
// Starting from a seed article it discovers reachable article URLs up to a
// given depth and optionally writes the result to a CSV, JSON, or Markdown
// file.
//
// Usage:
//
//	wikiwalk <seed-url> <depth>
//	wikiwalk <seed-url> <depth> --out json
//
// See --help for all available options.
package main

// main is the entry point for wikiwalk.
func main() {
	Execute()
}
