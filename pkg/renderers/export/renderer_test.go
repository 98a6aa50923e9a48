package export_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/render"
	"github.com/roleplaykit/go-statuswin/pkg/renderers/export"
	"github.com/roleplaykit/go-statuswin/pkg/testsupport"
)

func newRenderer(t *testing.T, options ...export.Option) *export.Renderer {
	t.Helper()
	r, err := export.New(options...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func renderSample(t *testing.T, options render.Options) string {
	t.Helper()
	out, err := newRenderer(t).Render(context.Background(), testsupport.SampleDocument(), options)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(out)
}

func TestRenderEmbedsConfiguration(t *testing.T) {
	html := renderSample(t, render.Options{})

	start := strings.Index(html, `<script id="statuswin-config" type="application/json">`)
	if start < 0 {
		t.Fatal("config script element missing")
	}
	payload := html[start+len(`<script id="statuswin-config" type="application/json">`):]
	end := strings.Index(payload, "</script>")
	if end < 0 {
		t.Fatal("config script element not closed")
	}

	var doc config.Document
	if err := json.Unmarshal([]byte(payload[:end]), &doc); err != nil {
		t.Fatalf("embedded config is not valid JSON: %v", err)
	}
	if len(doc.Characters) != 2 {
		t.Errorf("embedded characters = %d, want 2", len(doc.Characters))
	}
	if doc.UILabels.MainWindowTitle != "STATUS" {
		t.Errorf("embedded title = %q", doc.UILabels.MainWindowTitle)
	}
}

func TestRenderPayloadCannotBreakOutOfScript(t *testing.T) {
	doc := testsupport.SampleDocument()
	doc.Characters[0].Profile = `</script><script>alert(1)</script>`

	out, err := newRenderer(t).Render(context.Background(), doc, render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(string(out), `</script><script>alert(1)`) {
		t.Error("profile text escaped the config script element")
	}
}

func TestRenderInlinesRuntime(t *testing.T) {
	html := renderSample(t, render.Options{})

	if !strings.Contains(html, "window.onUpdateData") {
		t.Error("update hook missing from inlined runtime")
	}
	if !strings.Contains(html, "window.STATUSWIN_GEOM") {
		t.Error("geometry constants missing")
	}
	if !strings.Contains(html, "handlePinClick") {
		t.Error("pin click handler missing")
	}
	if !strings.Contains(html, `<div id="status-window" class="status-window">`) {
		t.Error("mount element missing")
	}
}

func TestRenderGeometryValues(t *testing.T) {
	html := renderSample(t, render.Options{})

	start := strings.Index(html, "window.STATUSWIN_GEOM = ")
	if start < 0 {
		t.Fatal("geometry assignment missing")
	}
	payload := html[start+len("window.STATUSWIN_GEOM = "):]
	end := strings.Index(payload, ";")
	var geom map[string]float64
	if err := json.Unmarshal([]byte(payload[:end]), &geom); err != nil {
		t.Fatalf("geometry payload invalid: %v", err)
	}
	if geom["chartWidth"] != 256 {
		t.Errorf("chartWidth = %v", geom["chartWidth"])
	}
	if geom["mapIconWidth"] != 40 {
		t.Errorf("mapIconWidth = %v", geom["mapIconWidth"])
	}
}

func TestRenderIgnoresBindings(t *testing.T) {
	withVars := renderSample(t, render.Options{Bindings: testsupport.SampleBindings()})
	withoutVars := renderSample(t, render.Options{})
	if withVars != withoutVars {
		t.Error("exported document must not depend on render-time bindings")
	}
}

func TestRenderThemeInjection(t *testing.T) {
	cfg, err := render.ResolveTheme(render.NewStaticSelector(render.DefaultManifest()),
		render.DefaultThemeName, "crimson")
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}

	html := renderSample(t, render.Options{Theme: cfg})
	if !strings.Contains(html, "--sw-accent: #F87171;") {
		t.Error("variant CSS variable missing")
	}
}

func TestRenderFontSettings(t *testing.T) {
	html := renderSample(t, render.Options{})
	if !strings.Contains(html, "'Noto Sans', sans-serif") {
		t.Error("font family missing")
	}
	if !strings.Contains(html, "fonts.googleapis.com") {
		t.Error("font import missing")
	}
}

func TestNewRequiresRuntimeScript(t *testing.T) {
	_, err := export.New(export.WithAssetsFS(fstest.MapFS{}))
	if err == nil {
		t.Fatal("New() expected error when runtime script is absent")
	}
}

func TestRenderNilDocument(t *testing.T) {
	if _, err := newRenderer(t).Render(context.Background(), nil, render.Options{}); err == nil {
		t.Fatal("Render() expected error for nil document")
	}
}

func TestRendererIdentity(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "export" {
		t.Errorf("Name() = %q", r.Name())
	}
	if r.ContentType() != "text/html; charset=utf-8" {
		t.Errorf("ContentType() = %q", r.ContentType())
	}
}
