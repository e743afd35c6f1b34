package site

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"podsite/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// podcastServer serves a two-item feed (one enclosure, one without), the
// audio file, and cover art, counting asset requests.
type podcastServer struct {
	*httptest.Server
	audioHits int
	coverHits int
}

func newPodcastServer(t *testing.T) *podcastServer {
	t.Helper()

	var cover bytes.Buffer
	if err := png.Encode(&cover, image.NewRGBA(image.Rect(0, 0, 1400, 700))); err != nil {
		t.Fatalf("encoding cover: %v", err)
	}

	ps := &podcastServer{}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/feed.xml":
			fmt.Fprintf(w, `<?xml version="1.0"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Test Podcast</title>
    <itunes:image href="%s/cover.png"/>
    <item>
      <title>Episode One!</title>
      <description>The first one</description>
      <enclosure url="%s/ep1.mp3?token=abc" length="9" type="audio/mpeg"/>
    </item>
    <item>
      <title>Just An Announcement</title>
      <description>No audio attached</description>
    </item>
  </channel>
</rss>`, ps.URL, ps.URL)
		case "/ep1.mp3":
			ps.audioHits++
			w.Write([]byte("mp3 bytes"))
		case "/cover.png":
			ps.coverHits++
			w.Write(cover.Bytes())
		default:
			http.NotFound(w, r)
		}
	}))
	return ps
}

func testConfig(t *testing.T, feedURL string) *config.Config {
	t.Helper()
	root := t.TempDir()

	templatesDir := filepath.Join(root, "templates")
	themeDir := filepath.Join(root, "theme")
	outputDir := filepath.Join(root, "out")
	for _, dir := range []string{templatesDir, themeDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}

	write := func(path, content string) {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	write(filepath.Join(templatesDir, "sitemap.xml"),
		`{% for episode in episodes %}{{ config.base_URL }}/episode/{{ episode.Slug }}/
{% endfor %}`)
	write(filepath.Join(themeDir, "frontpage.html"),
		`<h1>{{ podcast.Channel.Title }}</h1>{% for episode in episodes %}<a href="/episode/{{ episode.Slug }}/">{{ episode.Title }}</a>{% endfor %}`)
	write(filepath.Join(themeDir, "episode.html"),
		`<h1>{{ episode.Title }}</h1><audio src="/audio/{{ episode.FileName }}"></audio>`)

	return &config.Config{
		FeedURL:      feedURL,
		OutputDir:    outputDir,
		ThemeDir:     themeDir,
		TemplatesDir: templatesDir,
		Extra:        map[string]any{"base_URL": "https://podcast.example.com"},
	}
}

func TestBuilder_Build(t *testing.T) {
	srv := newPodcastServer(t)
	defer srv.Close()

	cfg := testConfig(t, srv.URL+"/feed.xml")
	builder, err := NewBuilder(cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := builder.Build(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Output tree per spec.
	for _, rel := range []string{
		"index.html",
		"sitemap.xml",
		"cover_art.jpg",
		"small_cover_art.jpg",
		filepath.Join("audio", "ep1.mp3"),
		filepath.Join("episode", "episode-one", "index.html"),
	} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, rel)); err != nil {
			t.Errorf("missing output file %s: %v", rel, err)
		}
	}

	// The enclosure-less item must be absent from all rendered output.
	for _, rel := range []string{"index.html", "sitemap.xml"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, rel))
		if err != nil {
			t.Fatalf("reading %s: %v", rel, err)
		}
		if strings.Contains(string(data), "Announcement") ||
			strings.Contains(string(data), "just-an-announcement") {
			t.Errorf("%s mentions the enclosure-less item: %q", rel, data)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "episode", "just-an-announcement")); err == nil {
		t.Error("episode page rendered for an enclosure-less item")
	}

	front, _ := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	if !strings.Contains(string(front), "Episode One!") {
		t.Errorf("front page missing episode: %q", front)
	}

	audio, _ := os.ReadFile(filepath.Join(cfg.OutputDir, "audio", "ep1.mp3"))
	if string(audio) != "mp3 bytes" {
		t.Errorf("audio contents = %q", audio)
	}
}

func TestBuilder_RerunIsIdempotentForAssets(t *testing.T) {
	srv := newPodcastServer(t)
	defer srv.Close()

	cfg := testConfig(t, srv.URL+"/feed.xml")
	builder, err := NewBuilder(cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := builder.Build(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	audioPath := filepath.Join(cfg.OutputDir, "audio", "ep1.mp3")
	coverPath := filepath.Join(cfg.OutputDir, "cover_art.jpg")
	audioBefore, _ := os.ReadFile(audioPath)
	coverBefore, _ := os.ReadFile(coverPath)

	// Spoil the rendered pages so the second run's rewrite is observable.
	frontPath := filepath.Join(cfg.OutputDir, "index.html")
	sitemapPath := filepath.Join(cfg.OutputDir, "sitemap.xml")
	episodePath := filepath.Join(cfg.OutputDir, "episode", "episode-one", "index.html")
	for _, page := range []string{frontPath, sitemapPath, episodePath} {
		if err := os.WriteFile(page, []byte("stale"), 0644); err != nil {
			t.Fatalf("spoiling %s: %v", page, err)
		}
	}

	if err := builder.Build(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	// Assets were fetched exactly once across both runs and are
	// byte-identical afterwards.
	if srv.audioHits != 1 {
		t.Errorf("audio fetched %d times, want 1", srv.audioHits)
	}
	if srv.coverHits != 1 {
		t.Errorf("cover fetched %d times, want 1", srv.coverHits)
	}
	audioAfter, _ := os.ReadFile(audioPath)
	coverAfter, _ := os.ReadFile(coverPath)
	if !bytes.Equal(audioBefore, audioAfter) {
		t.Error("audio file changed across runs")
	}
	if !bytes.Equal(coverBefore, coverAfter) {
		t.Error("cover art changed across runs")
	}

	// Pages are rewritten on every run.
	for _, page := range []string{frontPath, sitemapPath, episodePath} {
		data, err := os.ReadFile(page)
		if err != nil {
			t.Fatalf("reading %s: %v", page, err)
		}
		if string(data) == "stale" {
			t.Errorf("%s was not rewritten on the second run", page)
		}
	}
}

func TestBuilder_EmptyFeedBuildsEmptySite(t *testing.T) {
	var cover bytes.Buffer
	if err := png.Encode(&cover, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("encoding cover: %v", err)
	}

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/feed.xml":
			fmt.Fprintf(w, `<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"><channel><title>Empty</title><itunes:image href="%s/cover.png"/></channel></rss>`, srv.URL)
		case "/cover.png":
			w.Write(cover.Bytes())
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL+"/feed.xml")
	builder, err := NewBuilder(cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := builder.Build(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); err != nil {
		t.Errorf("front page missing: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(cfg.OutputDir, "episode"))
	if err != nil {
		t.Fatalf("reading episode dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("episode dir has %d entries, want 0", len(entries))
	}
}

func TestBuilder_FeedFailureAbortsRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL+"/feed.xml")
	builder, err := NewBuilder(cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := builder.Build(context.Background()); err == nil {
		t.Error("expected error for failing feed fetch, got none")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); err == nil {
		t.Error("no pages should be rendered when the feed fetch fails")
	}
}

func TestNewBuilder_MissingConfigKeys(t *testing.T) {
	cfg := &config.Config{OutputDir: t.TempDir(), ThemeDir: t.TempDir()}
	if _, err := NewBuilder(cfg, testLogger()); err == nil {
		t.Error("expected error for missing feed_URL, got none")
	}
}
