package preview_test

import (
	"context"
	"strings"
	"testing"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/render"
	"github.com/roleplaykit/go-statuswin/pkg/renderers/preview"
	"github.com/roleplaykit/go-statuswin/pkg/scene"
	"github.com/roleplaykit/go-statuswin/pkg/testsupport"
)

func newRenderer(t *testing.T, options ...preview.Option) *preview.Renderer {
	t.Helper()
	r, err := preview.New(options...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestRenderProducesStandalonePage(t *testing.T) {
	r := newRenderer(t)
	doc := testsupport.SampleDocument()

	out, err := r.Render(context.Background(), doc, render.Options{
		Bindings: testsupport.SampleBindings(),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("output is not a full document")
	}
	if !strings.Contains(html, "<title>STATUS</title>") {
		t.Error("window title missing")
	}
	if !strings.Contains(html, "width: 1000px") {
		t.Error("window width missing from styles")
	}
	if !strings.Contains(html, "fonts.googleapis.com") {
		t.Error("font import link missing")
	}
	if !strings.Contains(html, "Apprentice Aria") {
		t.Error("character header missing from snapshot")
	}
}

func TestRenderEmitsActionAttributes(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Render(context.Background(), testsupport.SampleDocument(), render.Options{
		Bindings: testsupport.SampleBindings(),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := string(out)

	if !strings.Contains(html, `data-action="select-tab"`) {
		t.Error("tab actions missing")
	}
	if !strings.Contains(html, `data-arg="map"`) {
		t.Error("tab argument missing")
	}
}

func TestRenderHonorsNavState(t *testing.T) {
	r := newRenderer(t)
	doc := testsupport.SampleDocument()

	nav := scene.NewState(doc)
	nav.Tab = scene.TabMap

	out, err := r.Render(context.Background(), doc, render.Options{
		Bindings: testsupport.SampleBindings(),
		Nav:      &nav,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), `data-action="open-submap"`) {
		t.Error("map view with clickable pin expected")
	}
}

func TestRenderPlaceholderBindings(t *testing.T) {
	r := newRenderer(t, preview.WithPlaceholderBindings())

	out, err := r.Render(context.Background(), testsupport.SampleDocument(), render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), "[aria_thought]") {
		t.Error("placeholder binding missing from unbound render")
	}
}

func TestRenderPlaceholdersKeepExplicitValues(t *testing.T) {
	r := newRenderer(t, preview.WithPlaceholderBindings())

	out, err := r.Render(context.Background(), testsupport.SampleDocument(), render.Options{
		Bindings: bindings.Bindings{"aria_thought": "I trust her."},
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "I trust her.") {
		t.Error("explicit binding lost under placeholder merge")
	}
	if strings.Contains(html, "[aria_thought]") {
		t.Error("placeholder leaked over explicit binding")
	}
}

func TestRenderThemeInjection(t *testing.T) {
	r := newRenderer(t)

	cfg, err := render.ResolveTheme(render.NewStaticSelector(render.DefaultManifest()),
		render.DefaultThemeName, "crimson")
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}

	out, err := r.Render(context.Background(), testsupport.SampleDocument(), render.Options{
		Bindings: testsupport.SampleBindings(),
		Theme:    cfg,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "--sw-accent: #F87171;") {
		t.Error("variant CSS variable missing")
	}
	if !strings.Contains(html, ":root {") {
		t.Error("css variable block missing")
	}
}

func TestRenderNilDocument(t *testing.T) {
	r := newRenderer(t)
	if _, err := r.Render(context.Background(), nil, render.Options{}); err == nil {
		t.Fatal("Render() expected error for nil document")
	}
}

func TestRenderCancelledContext(t *testing.T) {
	r := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Render(ctx, testsupport.SampleDocument(), render.Options{}); err == nil {
		t.Fatal("Render() expected error for cancelled context")
	}
}

func TestRendererIdentity(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "preview" {
		t.Errorf("Name() = %q", r.Name())
	}
	if r.ContentType() != "text/html; charset=utf-8" {
		t.Errorf("ContentType() = %q", r.ContentType())
	}
}
