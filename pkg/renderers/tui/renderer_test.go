package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/roleplaykit/go-statuswin/pkg/render"
	"github.com/roleplaykit/go-statuswin/pkg/scene"
	"github.com/roleplaykit/go-statuswin/pkg/testsupport"
)

type stubDriver struct {
	selections []int
	pos        int
	infos      []string
	menus      []SelectConfig
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.menus = append(s.menus, cfg)
	if s.pos >= len(s.selections) {
		return 0, errors.New("no selection scripted")
	}
	idx := s.selections[s.pos]
	s.pos++
	return idx, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func TestRenderSnapshot(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), testsupport.SampleDocument(), render.Options{
		Bindings: testsupport.SampleBindings(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"STATUS",
		"Apprentice Aria",
		"Currently at: Arcane Academy",
		"## Relationship",
		"Cautious ally",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("snapshot missing %q:\n%s", want, text)
		}
	}
}

func TestRenderHonorsNavState(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	doc := testsupport.SampleDocument()
	nav := scene.Apply(doc, scene.NewState(doc), scene.TabClicked{Tab: scene.TabLore})
	out, err := r.Render(context.Background(), doc, render.Options{
		Bindings: testsupport.SampleBindings(),
		Nav:      &nav,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "Magic leaks from the old seals.") {
		t.Errorf("lore view not rendered:\n%s", text)
	}
	if strings.Contains(text, "## Relationship") {
		t.Errorf("character view leaked into lore snapshot:\n%s", text)
	}
}

func TestRunNavigatesAndQuits(t *testing.T) {
	doc := testsupport.SampleDocument()
	// First menu: go to the map tab. Second: enter the academy sub map.
	// Third: quit (the last option).
	driver := &stubDriver{selections: []int{0, 4, 5}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if err := r.Run(context.Background(), doc, testsupport.SampleBindings()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(driver.infos) != 3 {
		t.Fatalf("snapshot count = %d, want 3", len(driver.infos))
	}
	if !strings.Contains(driver.infos[2], "[Back to World Map]") {
		t.Errorf("third snapshot not on the sub map:\n%s", driver.infos[2])
	}

	if len(driver.menus) != 3 {
		t.Fatalf("menu count = %d, want 3", len(driver.menus))
	}
	secondMenu := driver.menus[1]
	found := false
	for _, option := range secondMenu.Options {
		if option == "Enter Arcane Academy" {
			found = true
		}
	}
	if !found {
		t.Errorf("map menu missing sub-map entry: %v", secondMenu.Options)
	}
}

func TestRunQuitOption(t *testing.T) {
	driver := &stubDriver{selections: []int{5}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if err := r.Run(context.Background(), testsupport.SampleDocument(), testsupport.SampleBindings()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("snapshot count = %d, want 1", len(driver.infos))
	}
}
