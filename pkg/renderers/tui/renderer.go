// Package tui renders the status window as terminal text and drives an
// interactive inspector over the same navigation state machine the HTML
// renderers use.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/render"
	"github.com/roleplaykit/go-statuswin/pkg/scene"
)

// Renderer implements render.Renderer for terminal sessions.
type Renderer struct {
	driver PromptDriver
}

// New constructs a TUI renderer with the survey driver by default.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render produces a one-shot text snapshot of the requested state.
func (r *Renderer) Render(ctx context.Context, doc *config.Document, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("tui: document is required")
	}
	state := options.NavState(scene.NewState(doc))
	tree := scene.Render(doc, options.Bindings, state)
	return []byte(renderText(tree)), nil
}

// Run drives the interactive inspector: print the current view, offer the
// same interactions the rendered window exposes, apply the chosen event, and
// repeat until the user quits or the context is cancelled.
func (r *Renderer) Run(ctx context.Context, doc *config.Document, vars bindings.Bindings) error {
	if doc == nil {
		return errors.New("tui: document is required")
	}

	state := scene.NewState(doc)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tree := scene.Render(doc, vars, state)
		if err := r.driver.Info(ctx, renderText(tree)); err != nil {
			return err
		}

		choices := menuChoices(doc, state)
		labels := make([]string, 0, len(choices)+1)
		for _, choice := range choices {
			labels = append(labels, choice.label)
		}
		labels = append(labels, "Quit")

		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:  "Navigate",
			Options:  labels,
			PageSize: 12,
		})
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		if idx < 0 || idx >= len(choices) {
			return nil
		}
		state = scene.Apply(doc, state, choices[idx].event)
	}
}

type menuChoice struct {
	label string
	event scene.Event
}

// menuChoices mirrors the clickable surface of the rendered window for the
// current state.
func menuChoices(doc *config.Document, state scene.State) []menuChoice {
	var choices []menuChoice

	for _, tab := range scene.Tabs(doc) {
		if tab == state.Tab {
			continue
		}
		choices = append(choices, menuChoice{
			label: fmt.Sprintf("Go to %s", scene.TabLabel(doc, tab)),
			event: scene.TabClicked{Tab: tab},
		})
	}

	switch state.Tab {
	case scene.TabCharacter:
		for _, ch := range doc.Characters {
			if ch.ID == state.CharacterID {
				continue
			}
			choices = append(choices, menuChoice{
				label: fmt.Sprintf("View %s", ch.Name),
				event: scene.CharacterClicked{ID: ch.ID},
			})
		}
	case scene.TabMap:
		if state.Map.Kind == scene.MapLevelSub {
			choices = append(choices, menuChoice{
				label: doc.UILabels.Map.BackToMainMap,
				event: scene.BackToMain{},
			})
			break
		}
		for _, loc := range doc.Locations {
			if !loc.HasSubMap() {
				continue
			}
			choices = append(choices, menuChoice{
				label: fmt.Sprintf("Enter %s", loc.Name),
				event: scene.PinClicked{LocationID: loc.ID},
			})
		}
	}
	return choices
}
