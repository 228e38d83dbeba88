package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/wikiwalk/internal/config"
)

// chdir changes the working directory for the duration of the test. It is
// the pre-Go-1.24 equivalent of t.Chdir.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

// runRoot executes the root command with the given args and returns the
// captured stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// writeSiteConfig writes a config file pointing the crawler at a test server
// and returns its path.
func writeSiteConfig(t *testing.T, serverURL string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	content := fmt.Sprintf("site:\n  domain: \"127.0.0.1\"\n  base_url: %s\n  article_prefix: /wiki/\n", serverURL)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// newArticleServer serves a small three-article site.
func newArticleServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	pages := map[string]string{
		"/wiki/Seed": `<html><body><a href="/wiki/A">A</a><a href="/wiki/B">B</a></body></html>`,
		"/wiki/A":    `<html><body><a href="/wiki/B">B</a></body></html>`,
		"/wiki/B":    `<html><body></body></html>`,
	}
	for path, body := range pages {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(body)) //nolint:errcheck
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// TestRunCrawlCmdValidation tests input validation before any network
// activity.
func TestRunCrawlCmdValidation(t *testing.T) {
	t.Parallel()

	t.Run("non-integer depth", func(t *testing.T) {
		t.Parallel()

		_, err := runRoot(t, "https://en.wikipedia.org/wiki/Cat", "two")
		if !errors.Is(err, config.ErrInvalidDepth) {
			t.Errorf("expected ErrInvalidDepth, got %v", err)
		}
	})

	t.Run("out-of-range depth", func(t *testing.T) {
		t.Parallel()

		// The "--" keeps a negative depth from being parsed as a flag.
		for _, depth := range []string{"0", "4", "-1"} {
			_, err := runRoot(t, "--", "https://en.wikipedia.org/wiki/Cat", depth)
			if !errors.Is(err, config.ErrInvalidDepth) {
				t.Errorf("depth %s: expected ErrInvalidDepth, got %v", depth, err)
			}
		}
	})

	t.Run("unknown output format", func(t *testing.T) {
		t.Parallel()

		_, err := runRoot(t, "https://en.wikipedia.org/wiki/Cat", "1", "--out", "xml")
		if !errors.Is(err, config.ErrInvalidOutputFormat) {
			t.Errorf("expected ErrInvalidOutputFormat, got %v", err)
		}
	})

	t.Run("off-site seed rejected", func(t *testing.T) {
		t.Parallel()

		_, err := runRoot(t, "https://example.com/wiki/Cat", "1")
		if err == nil || !strings.Contains(err.Error(), "invalid seed URL") {
			t.Errorf("expected seed validation error, got %v", err)
		}
	})

	t.Run("non-article seed rejected", func(t *testing.T) {
		t.Parallel()

		_, err := runRoot(t, "https://en.wikipedia.org/w/index.php", "1")
		if err == nil || !strings.Contains(err.Error(), "invalid seed URL") {
			t.Errorf("expected seed validation error, got %v", err)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.yml")
		_, err := runRoot(t, "https://en.wikipedia.org/wiki/Cat", "1", "--config", missing)
		if err == nil || !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("expected config-not-found error, got %v", err)
		}
	})
}

// TestRunCrawlCmd tests a full crawl against a local site.
func TestRunCrawlCmd(t *testing.T) {
	// Not parallel: subtests change the working directory for result files.

	t.Run("completes and prints summary", func(t *testing.T) {
		server := newArticleServer(t)
		cfg := writeSiteConfig(t, server.URL)
		seed := server.URL + "/wiki/Seed"

		out, err := runRoot(t, seed, "1", "--config", cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out, "Starting crawl from: "+seed) {
			t.Errorf("expected start line, got %q", out)
		}
		if !strings.Contains(out, "Crawl complete (depth 1)") {
			t.Errorf("expected summary, got %q", out)
		}
		if !strings.Contains(out, "Total links found :    3") {
			t.Errorf("expected total count 3, got %q", out)
		}
	})

	t.Run("writes results.csv", func(t *testing.T) {
		server := newArticleServer(t)
		cfg := writeSiteConfig(t, server.URL)
		seed := server.URL + "/wiki/Seed"

		chdir(t, t.TempDir())

		out, err := runRoot(t, seed, "1", "--config", cfg, "--out", "csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "→ results.csv written") {
			t.Errorf("expected file announcement, got %q", out)
		}

		data, err := os.ReadFile("results.csv")
		if err != nil {
			t.Fatalf("failed to read results.csv: %v", err)
		}

		want := "index,url\n" +
			"1," + seed + "\n" +
			"2," + server.URL + "/wiki/A\n" +
			"3," + server.URL + "/wiki/B\n"
		if string(data) != want {
			t.Errorf("results.csv = %q, want %q", string(data), want)
		}
	})

	t.Run("writes results.json", func(t *testing.T) {
		server := newArticleServer(t)
		cfg := writeSiteConfig(t, server.URL)
		seed := server.URL + "/wiki/Seed"

		chdir(t, t.TempDir())

		if _, err := runRoot(t, seed, "2", "--config", cfg, "--out", "json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile("results.json")
		if err != nil {
			t.Fatalf("failed to read results.json: %v", err)
		}

		var decoded struct {
			Seed            string   `json:"seed"`
			Depth           int      `json:"depth"`
			TotalLinksFound int      `json:"total_links_found"`
			UniqueLinks     int      `json:"unique_links"`
			Links           []string `json:"links"`
		}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("failed to decode results.json: %v", err)
		}

		if decoded.Seed != seed || decoded.Depth != 2 {
			t.Errorf("unexpected seed/depth: %q/%d", decoded.Seed, decoded.Depth)
		}
		if decoded.TotalLinksFound != 3 || decoded.UniqueLinks != 3 {
			t.Errorf("unexpected counts: %d/%d", decoded.TotalLinksFound, decoded.UniqueLinks)
		}
		if len(decoded.Links) != 3 || decoded.Links[0] != seed {
			t.Errorf("unexpected links: %v", decoded.Links)
		}
	})

	t.Run("writes results.md", func(t *testing.T) {
		server := newArticleServer(t)
		cfg := writeSiteConfig(t, server.URL)
		seed := server.URL + "/wiki/Seed"

		chdir(t, t.TempDir())

		if _, err := runRoot(t, seed, "1", "--config", cfg, "--out", "md"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile("results.md")
		if err != nil {
			t.Fatalf("failed to read results.md: %v", err)
		}
		if !strings.Contains(string(data), "# Crawl Report") {
			t.Errorf("expected Markdown report, got %q", string(data))
		}
	})

	t.Run("fetch failures do not fail the run", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/wiki/Seed", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			//nolint:errcheck // test handler
			_, _ = w.Write([]byte(`<html><body><a href="/wiki/Missing">Missing</a></body></html>`))
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		cfg := writeSiteConfig(t, server.URL)
		seed := server.URL + "/wiki/Seed"

		out, err := runRoot(t, seed, "2", "--config", cfg)
		if err != nil {
			t.Fatalf("expected fetch failure to be tolerated, got %v", err)
		}
		if !strings.Contains(out, "Total links found :    2") {
			t.Errorf("expected missing page to stay recorded, got %q", out)
		}
	})
}

// TestBuildConfig tests flag and file precedence.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	// parse populates a root command's flags without running it.
	parse := func(t *testing.T, args []string) *config.Config {
		t.Helper()

		cmd := NewRootCmd()
		cmd.SetArgs(args)
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, cmd.Flags().Args())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return cfg
	}

	t.Run("defaults without flags", func(t *testing.T) {
		t.Parallel()

		cfg := parse(t, []string{"https://en.wikipedia.org/wiki/Cat", "2"})

		if cfg.Seed != "https://en.wikipedia.org/wiki/Cat" {
			t.Errorf("unexpected seed: %q", cfg.Seed)
		}
		if cfg.Depth != 2 {
			t.Errorf("unexpected depth: %d", cfg.Depth)
		}
		if cfg.Timeout != config.DefaultTimeout {
			t.Errorf("unexpected timeout: %v", cfg.Timeout)
		}
		if cfg.Workers != config.DefaultWorkers {
			t.Errorf("unexpected workers: %d", cfg.Workers)
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := parse(t, []string{
			"https://en.wikipedia.org/wiki/Cat", "1",
			"--timeout", "3s", "--workers", "2", "--user-agent", "bot/9",
		})

		if cfg.Timeout.String() != "3s" {
			t.Errorf("unexpected timeout: %v", cfg.Timeout)
		}
		if cfg.Workers != 2 {
			t.Errorf("unexpected workers: %d", cfg.Workers)
		}
		if cfg.UserAgent != "bot/9" {
			t.Errorf("unexpected user agent: %q", cfg.UserAgent)
		}
	})

	t.Run("config file values apply when flags are unset", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if err := os.WriteFile(path, []byte("timeout: 7s\nworkers: 3\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg := parse(t, []string{
			"https://en.wikipedia.org/wiki/Cat", "1", "--config", path,
		})

		if cfg.Timeout.String() != "7s" {
			t.Errorf("expected file timeout, got %v", cfg.Timeout)
		}
		if cfg.Workers != 3 {
			t.Errorf("expected file workers, got %d", cfg.Workers)
		}
	})

	t.Run("explicit flags beat the config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if err := os.WriteFile(path, []byte("timeout: 7s\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg := parse(t, []string{
			"https://en.wikipedia.org/wiki/Cat", "1", "--config", path, "--timeout", "2s",
		})

		if cfg.Timeout.String() != "2s" {
			t.Errorf("expected flag timeout to win, got %v", cfg.Timeout)
		}
	})
}
