// Command statuswin-server hosts a live editing loop: it serves the preview
// render over HTTP, accepts variable updates, and pushes re-rendered HTML to
// connected editors over a websocket.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	statuswin "github.com/roleplaykit/go-statuswin"
	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/compiler"
	"github.com/roleplaykit/go-statuswin/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("addr", envOr("STATUSWIN_ADDR", ":8080"), "listen address")
	configPath := flag.String("config", envOr("STATUSWIN_CONFIG", "statuswin.json"), "configuration path or URL")
	themeName := flag.String("theme", envOr("STATUSWIN_THEME", ""), "theme name")
	themeVariant := flag.String("variant", envOr("STATUSWIN_VARIANT", ""), "theme variant")
	flag.Parse()

	if err := run(context.Background(), *addr, *configPath, *themeName, *themeVariant); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func run(ctx context.Context, addr, configPath, themeName, themeVariant string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	src := parseSource(configPath)
	if src == nil {
		return fmt.Errorf("invalid config source %q", configPath)
	}
	doc, err := config.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	doc = config.Normalize(doc)

	gen := statuswin.NewCompiler()
	hub := newPreviewHub(bindings.Preview(doc))

	renderPreview := func(ctx context.Context) ([]byte, error) {
		return gen.Generate(ctx, compiler.Request{
			Document:     doc,
			Renderer:     "preview",
			Bindings:     hub.snapshotVars(),
			ThemeName:    themeName,
			ThemeVariant: themeVariant,
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", buildPreviewHandler(renderPreview))
	mux.HandleFunc("/vars", buildVarsHandler(hub, renderPreview))
	mux.HandleFunc("/export", buildExportHandler(gen, doc, themeName, themeVariant))
	mux.HandleFunc("/ws", buildWSHandler(hub, renderPreview))
	mux.Handle("/runtime/", http.StripPrefix("/runtime/",
		http.FileServerFS(statuswin.RuntimeAssetsFS()),
	))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("statuswin server listening", "addr", addr, "config", configPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
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

func buildPreviewHandler(render func(context.Context) ([]byte, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/" {
			http.NotFound(writer, request)
			return
		}
		html, err := render(request.Context())
		if err != nil {
			slog.Error("preview render failed", "error", err)
			http.Error(writer, "render failed", http.StatusInternalServerError)
			return
		}
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = writer.Write(html)
	}
}

func buildVarsHandler(hub *previewHub, render func(context.Context) ([]byte, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet:
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(hub.snapshotVars())
		case http.MethodPost:
			var incoming map[string]any
			if err := json.NewDecoder(request.Body).Decode(&incoming); err != nil {
				http.Error(writer, "invalid JSON body", http.StatusBadRequest)
				return
			}
			hub.mergeVars(incoming)
			slog.Info("bindings updated", "count", len(incoming))

			html, err := render(request.Context())
			if err != nil {
				slog.Error("preview rebuild failed", "error", err)
				http.Error(writer, "render failed", http.StatusInternalServerError)
				return
			}
			hub.broadcast(previewEnvelope{Type: "preview", HTML: string(html)})
			writer.WriteHeader(http.StatusNoContent)
		default:
			http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func buildExportHandler(gen *compiler.Compiler, doc *config.Document, themeName, themeVariant string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		html, err := gen.Generate(request.Context(), compiler.Request{
			Document:     doc,
			Renderer:     "export",
			ThemeName:    themeName,
			ThemeVariant: themeVariant,
		})
		if err != nil {
			slog.Error("export render failed", "error", err)
			http.Error(writer, "render failed", http.StatusInternalServerError)
			return
		}
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		writer.Header().Set("Content-Disposition", `attachment; filename="status-window.html"`)
		_, _ = writer.Write(html)
	}
}

func buildWSHandler(hub *previewHub, render func(context.Context) ([]byte, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		conn, err := upgrader.Upgrade(writer, request, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "error", err)
			return
		}

		client := &clientConn{conn: conn}
		hub.addClient(client)
		defer func() {
			hub.removeClient(client)
			_ = conn.Close()
		}()

		if html, err := render(request.Context()); err == nil {
			_ = client.send(previewEnvelope{Type: "preview", HTML: string(html)})
		}

		// Editors push binding patches over the socket too; anything
		// unparseable is ignored so a flaky client cannot kill the loop.
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var incoming map[string]any
			if err := json.Unmarshal(payload, &incoming); err != nil {
				continue
			}
			hub.mergeVars(incoming)

			html, err := render(request.Context())
			if err != nil {
				slog.Error("preview rebuild failed", "error", err)
				continue
			}
			hub.broadcast(previewEnvelope{Type: "preview", HTML: string(html)})
		}
	}
}
