package export_test

import (
	"context"
	"strings"
	"testing"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/render"
	"github.com/roleplaykit/go-statuswin/pkg/renderers/preview"
	"github.com/roleplaykit/go-statuswin/pkg/scene"
	"github.com/roleplaykit/go-statuswin/pkg/testsupport"
)

// lockedFixture returns a document and bindings where every gated entry is
// locked, with a mix of configured and missing locked stand-ins.
func lockedFixture() (*config.Document, bindings.Bindings) {
	doc := testsupport.SampleDocument()
	doc.Characters[0].ProfileUnlocks[0].LockedTitle = "A sealed chapter"
	doc.Characters[0].ProfileUnlocks = append(doc.Characters[0].ProfileUnlocks, config.ProfileUnlock{
		ID: "aria-debt", Title: "Quiet Debt", Content: "Owed to Kane.",
		Conditions: []config.UnlockCondition{
			{ID: "c2", Variable: "aria_trust", Operator: config.OpGreaterOrEqual, Value: "80"},
		},
	})
	doc.Lore.Entries[1].LockedTitle = "A redacted record"

	vars := testsupport.SampleBindings()
	vars["chapter"] = 0
	return doc, vars
}

func previewView(t *testing.T, doc *config.Document, vars bindings.Bindings, tab scene.Tab) string {
	t.Helper()
	r, err := preview.New()
	if err != nil {
		t.Fatalf("preview.New() error = %v", err)
	}
	st := scene.NewState(doc)
	st.Tab = tab
	out, err := r.Render(context.Background(), doc, render.Options{Bindings: vars, Nav: &st})
	if err != nil {
		t.Fatalf("preview Render() error = %v", err)
	}
	return string(out)
}

// The exported runtime carries its own copy of the lock-gate fallbacks, so
// the preview output and the runtime source are pinned to the same rules
// with one fixture: lockedTitle wins over hidden, visible entries without
// one keep their title, and locked achievements collapse to placeholders.
func TestExportedRuntimeLockFallbacksMatchPreview(t *testing.T) {
	doc, vars := lockedFixture()

	character := previewView(t, doc, vars, scene.TabCharacter)
	for _, want := range []string{"A sealed chapter", "Quiet Debt"} {
		if !strings.Contains(character, want) {
			t.Errorf("character view missing locked title %q", want)
		}
	}
	for _, leak := range []string{"Heir to the sealed tower.", "Owed to Kane."} {
		if strings.Contains(character, leak) {
			t.Errorf("character view leaked locked content %q", leak)
		}
	}

	lore := previewView(t, doc, vars, scene.TabLore)
	if !strings.Contains(lore, "A redacted record") {
		t.Error("lore view missing the hidden entry's locked title")
	}
	if strings.Contains(lore, "The Pact") {
		t.Error("lore view leaked a hidden locked title")
	}

	achievements := previewView(t, doc, vars, scene.TabAchievements)
	for _, leak := range []string{"First Day", "Arrive at the academy.", "Beneath the Seal"} {
		if strings.Contains(achievements, leak) {
			t.Errorf("achievements view leaked locked content %q", leak)
		}
	}
	if !strings.Contains(achievements, "???") {
		t.Error("achievements view missing the locked placeholder")
	}

	out, err := newRenderer(t).Render(context.Background(), doc, render.Options{})
	if err != nil {
		t.Fatalf("export Render() error = %v", err)
	}
	html := string(out)
	for _, rule := range []string{
		`pu.lockedTitle || (pu.hidden ? (labels.hiddenUnlockTitle || '???') : pu.title)`,
		`entry.lockedTitle || (entry.hidden ? secret : entry.title)`,
		`ach.lockedTitle || '???'`,
		`ach.lockedDescription || '???'`,
	} {
		if !strings.Contains(html, rule) {
			t.Errorf("embedded runtime missing lock fallback %q", rule)
		}
	}
}
