package render

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultThemeName is the built-in palette used when no selector is wired.
const DefaultThemeName = "statuswin"

// DefaultManifest returns the built-in theme: the amber/cyan palette the
// renderers fall back to when no theme is configured. Tokens map onto the
// --sw-* CSS variables the emitted markup consumes.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"sw-accent":       "#FBBF24",
			"sw-highlight":    "#67E8F9",
			"sw-muted":        "#9CA3AF",
			"sw-panel-bg":     "rgba(0,0,0,0.2)",
			"sw-panel-border": "rgba(255,255,255,0.2)",
		},
		Variants: map[string]theme.Variant{
			"crimson": {
				Tokens: map[string]string{
					"sw-accent":    "#F87171",
					"sw-highlight": "#FCA5A5",
				},
			},
		},
	}
}

// ResolveTheme runs a selection through the selector and flattens the result
// into the renderer-facing configuration: variant tokens override base
// tokens, every token becomes a -- CSS variable, variant templates override
// base templates, and asset lookups resolve against the manifest prefix with
// variant files taking precedence.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	return RendererConfigFromSelection(selection), nil
}

// RendererConfigFromSelection flattens a selection without going through a
// selector, for callers that already hold a manifest.
func RendererConfigFromSelection(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	for key, value := range manifest.Tokens {
		cfg.Tokens[key] = value
	}
	for key, value := range manifest.Templates {
		cfg.Partials[key] = value
	}

	assets := manifest.Assets
	assetFiles := map[string]string{}
	for key, file := range assets.Files {
		assetFiles[key] = file
	}

	if selection.Variant != "" {
		if v, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range v.Tokens {
				cfg.Tokens[key] = value
			}
			for key, value := range v.Templates {
				cfg.Partials[key] = value
			}
			for key, file := range v.Assets.Files {
				assetFiles[key] = file
			}
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}

	prefix := strings.TrimRight(assets.Prefix, "/")
	cfg.AssetURL = func(key string) string {
		file, ok := assetFiles[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
	return cfg
}

// CSSVarsStyle serializes resolved CSS variables into a :root block for
// injection into a <style> element. Keys are emitted in sorted order so the
// output is deterministic.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// StaticSelector serves selections from an in-memory manifest set. It backs
// the built-in theme and keeps tests free of external theme registries.
type StaticSelector struct {
	manifests map[string]*theme.Manifest
}

// NewStaticSelector indexes the given manifests by name.
func NewStaticSelector(manifests ...*theme.Manifest) *StaticSelector {
	s := &StaticSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, m := range manifests {
		if m != nil && m.Name != "" {
			s.manifests[m.Name] = m
		}
	}
	return s
}

// Select implements the selector contract over the indexed manifests.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown theme %q", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
