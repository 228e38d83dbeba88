// Package config provides configuration structures and utilities for wikiwalk.
// It defines the site description (domain, base URL, article path prefix),
// crawl settings (depth, timeout, fan-out cap, worker count), and output
// preferences.
package config
