package config_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/testsupport"
)

const yamlDoc = `
uiLabels:
  mainWindowTitle: STATUS
characters:
  - id: aria
    name: Aria
locations:
  - id: academy
    name: Arcane Academy
    aliases: [school]
`

func TestParseJSON(t *testing.T) {
	raw := testsupport.SampleJSON(t)
	doc, err := config.Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.UILabels.MainWindowTitle != "STATUS" {
		t.Errorf("title = %q", doc.UILabels.MainWindowTitle)
	}
	if len(doc.Characters) != 2 {
		t.Errorf("characters = %d, want 2", len(doc.Characters))
	}
}

func TestParseYAML(t *testing.T) {
	doc, err := config.Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Characters[0].ID != "aria" {
		t.Errorf("character id = %q", doc.Characters[0].ID)
	}
	if got := doc.Locations[0].Aliases[0]; got != "school" {
		t.Errorf("alias = %q", got)
	}
}

func TestParseSniffsFormatNotExtension(t *testing.T) {
	// Leading whitespace before JSON should not push the payload to the
	// YAML path in a way that changes the result.
	doc, err := config.Parse([]byte("\n\n  {\"uiLabels\": {\"mainWindowTitle\": \"X\"}}"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.UILabels.MainWindowTitle != "X" {
		t.Errorf("title = %q", doc.UILabels.MainWindowTitle)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := config.Parse([]byte("   \n")); err == nil {
		t.Fatal("Parse() expected error for empty payload")
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := config.Parse([]byte("{broken"))
	if err == nil {
		t.Fatal("Parse() expected error")
	}
	if !strings.Contains(err.Error(), "decode json") {
		t.Errorf("Parse() error = %v", err)
	}
}

func TestLoadFromBytes(t *testing.T) {
	src := config.SourceFromBytes("inline", []byte(yamlDoc))
	doc, err := config.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.UILabels.MainWindowTitle != "STATUS" {
		t.Errorf("title = %q", doc.UILabels.MainWindowTitle)
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"window.yaml": {Data: []byte(yamlDoc)},
	}
	src := config.SourceFromFS("window.yaml")
	doc, err := config.Load(context.Background(), src, config.WithFileSystem(fsys))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Locations) != 1 {
		t.Errorf("locations = %d, want 1", len(doc.Locations))
	}
}

func TestLoadFSSourceRequiresFileSystem(t *testing.T) {
	_, err := config.Load(context.Background(), config.SourceFromFS("window.yaml"))
	if err == nil {
		t.Fatal("Load() expected error without WithFileSystem")
	}
}

func TestLoadFileRoutesThroughFS(t *testing.T) {
	fsys := fstest.MapFS{
		"configs/window.json": {Data: testsupport.SampleJSON(t)},
	}
	src := config.SourceFromFile("configs/window.json")
	doc, err := config.Load(context.Background(), src, config.WithFileSystem(fsys))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.UILabels.MainWindowTitle != "STATUS" {
		t.Errorf("title = %q", doc.UILabels.MainWindowTitle)
	}
}

func TestLoadURLDisabledByDefault(t *testing.T) {
	_, err := config.Load(context.Background(), config.SourceFromURL("http://example.com/window.json"))
	if err == nil {
		t.Fatal("Load() expected error for URL source without a client")
	}
	if !strings.Contains(err.Error(), "http sources disabled") {
		t.Errorf("Load() error = %v", err)
	}
}

func TestLoadURLWithClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(yamlDoc))
	}))
	defer server.Close()

	doc, err := config.Load(context.Background(), config.SourceFromURL(server.URL),
		config.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.UILabels.MainWindowTitle != "STATUS" {
		t.Errorf("title = %q", doc.UILabels.MainWindowTitle)
	}
}

func TestLoadURLNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := config.Load(context.Background(), config.SourceFromURL(server.URL),
		config.WithHTTPClient(server.Client()))
	if err == nil {
		t.Fatal("Load() expected error for 404")
	}
}

func TestLoadNilSource(t *testing.T) {
	if _, err := config.Load(context.Background(), nil); err == nil {
		t.Fatal("Load() expected error for nil source")
	}
}
