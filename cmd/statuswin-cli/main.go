package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/compiler"
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/renderers/tui"
)

func main() {
	source := flag.String("config", "", "status window configuration path or URL")
	renderer := flag.String("renderer", "export", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	varsPath := flag.String("vars", "", "JSON file with variable bindings")
	themeName := flag.String("theme", "", "theme name")
	themeVariant := flag.String("variant", "", "theme variant")
	listRenderers := flag.Bool("list-renderers", false, "print available renderers and exit")
	lint := flag.Bool("lint", false, "lint the configuration and exit")
	interactive := flag.Bool("interactive", false, "browse the window in the terminal")
	flag.Parse()

	ctx := context.Background()
	gen := compiler.New()

	if *listRenderers {
		fmt.Println(strings.Join(gen.Renderers(), "\n"))
		return
	}

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid config source: %q", *source)
	}

	if *lint {
		os.Exit(lintSource(ctx, src))
	}

	vars, err := loadBindings(*varsPath)
	if err != nil {
		log.Fatalf("Failed to read bindings: %v", err)
	}

	if *interactive {
		if err := runInteractive(ctx, src, vars); err != nil {
			log.Fatalf("Interactive session failed: %v", err)
		}
		return
	}

	outputHTML, err := gen.Generate(ctx, compiler.Request{
		Source:       src,
		Renderer:     *renderer,
		Bindings:     vars,
		ThemeName:    *themeName,
		ThemeVariant: *themeVariant,
	})
	if err != nil {
		log.Fatalf("Failed to generate status window: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Status window written to %s\n", *output)
	} else {
		fmt.Println(string(outputHTML))
	}
}

func parseSource(raw string) config.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return config.SourceFromURL(path)
	}
	return config.SourceFromFile(path)
}

func loadBindings(path string) (bindings.Bindings, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var vars bindings.Bindings
	if err := json.Unmarshal(raw, &vars); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return vars, nil
}

func lintSource(ctx context.Context, src config.Source) int {
	doc, err := config.Load(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint %s: %v\n", src.Location(), err)
		return 1
	}
	issues := config.Lint(config.Normalize(doc))
	if len(issues) == 0 {
		return 0
	}
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s\n", src.Location(), issue)
	}
	return 1
}

func runInteractive(ctx context.Context, src config.Source, vars bindings.Bindings) error {
	doc, err := config.Load(ctx, src)
	if err != nil {
		return err
	}
	doc = config.Normalize(doc)
	if vars == nil {
		vars = bindings.Preview(doc)
	}
	terminal, err := tui.New()
	if err != nil {
		return err
	}
	return terminal.Run(ctx, doc, vars)
}
