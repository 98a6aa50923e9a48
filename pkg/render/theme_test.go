package render_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/roleplaykit/go-statuswin/pkg/render"
)

func TestResolveDefaultTheme(t *testing.T) {
	selector := render.NewStaticSelector(render.DefaultManifest())

	cfg, err := render.ResolveTheme(selector, render.DefaultThemeName, "")
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}
	if cfg.Theme != render.DefaultThemeName {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if got := cfg.CSSVars["--sw-accent"]; got != "#FBBF24" {
		t.Errorf("accent = %q, want #FBBF24", got)
	}
	if got := cfg.CSSVars["--sw-panel-bg"]; got != "rgba(0,0,0,0.2)" {
		t.Errorf("panel bg = %q", got)
	}
}

func TestResolveVariantOverridesTokens(t *testing.T) {
	selector := render.NewStaticSelector(render.DefaultManifest())

	cfg, err := render.ResolveTheme(selector, render.DefaultThemeName, "crimson")
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}
	if got := cfg.CSSVars["--sw-accent"]; got != "#F87171" {
		t.Errorf("variant accent = %q, want #F87171", got)
	}
	if got := cfg.CSSVars["--sw-muted"]; got != "#9CA3AF" {
		t.Errorf("base token lost under variant, muted = %q", got)
	}
}

func TestResolveUnknownThemeFails(t *testing.T) {
	selector := render.NewStaticSelector(render.DefaultManifest())
	if _, err := render.ResolveTheme(selector, "sepia", ""); err == nil {
		t.Fatal("ResolveTheme() expected error for unknown theme")
	}
}

func TestResolveUnknownVariantFails(t *testing.T) {
	selector := render.NewStaticSelector(render.DefaultManifest())
	if _, err := render.ResolveTheme(selector, render.DefaultThemeName, "noir"); err == nil {
		t.Fatal("ResolveTheme() expected error for unknown variant")
	}
}

func TestResolveNilSelector(t *testing.T) {
	cfg, err := render.ResolveTheme(nil, "anything", "")
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("ResolveTheme() = %+v, want nil", cfg)
	}
}

func TestRendererConfigAssetURL(t *testing.T) {
	manifest := &theme.Manifest{
		Name: "assets",
		Assets: theme.Assets{
			Prefix: "/assets/themes/assets/",
			Files: map[string]string{
				"statuswin.stylesheet": "statuswin.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Assets: theme.Assets{
					Files: map[string]string{
						"statuswin.stylesheet": "statuswin.dark.css",
					},
				},
			},
		},
	}

	base := render.RendererConfigFromSelection(&theme.Selection{Theme: "assets", Manifest: manifest})
	if got := base.AssetURL("statuswin.stylesheet"); got != "/assets/themes/assets/statuswin.css" {
		t.Errorf("base asset url = %q", got)
	}
	if got := base.AssetURL("missing"); got != "" {
		t.Errorf("missing asset url = %q, want empty", got)
	}

	dark := render.RendererConfigFromSelection(&theme.Selection{Theme: "assets", Variant: "dark", Manifest: manifest})
	if got := dark.AssetURL("statuswin.stylesheet"); got != "/assets/themes/assets/statuswin.dark.css" {
		t.Errorf("variant asset url = %q", got)
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := render.CSSVarsStyle(map[string]string{
		"--sw-highlight": "#67E8F9",
		"--sw-accent":    "#FBBF24",
	})
	want := ":root {\n  --sw-accent: #FBBF24;\n  --sw-highlight: #67E8F9;\n}"
	if got != want {
		t.Errorf("CSSVarsStyle() = %q, want %q", got, want)
	}
}

func TestCSSVarsStyleEmpty(t *testing.T) {
	if got := render.CSSVarsStyle(nil); got != "" {
		t.Errorf("CSSVarsStyle(nil) = %q", got)
	}
}

func TestRendererConfigFromNilSelection(t *testing.T) {
	if cfg := render.RendererConfigFromSelection(nil); cfg != nil {
		t.Errorf("RendererConfigFromSelection(nil) = %+v", cfg)
	}
}

func TestDefaultManifestCoversPanelTokens(t *testing.T) {
	manifest := render.DefaultManifest()
	for _, token := range []string{"sw-accent", "sw-highlight", "sw-muted", "sw-panel-bg", "sw-panel-border"} {
		if manifest.Tokens[token] == "" {
			t.Errorf("token %q missing from default manifest", token)
		}
	}
	if !strings.HasPrefix(manifest.Tokens["sw-panel-border"], "rgba(") {
		t.Errorf("panel border = %q", manifest.Tokens["sw-panel-border"])
	}
}
