package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoaderOptions configures how Load resolves sources. Loading is
// offline-first: HTTP sources are disabled unless a client is supplied or the
// fallback is explicitly enabled.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS reads and, when set, file reads too.
	FileSystem fs.FS

	// HTTPClient handles URL sources when provided.
	HTTPClient *http.Client

	// AllowHTTPFallback enables http.DefaultClient for URL sources when no
	// client is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetches when the fallback client is used.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to loading.
type LoaderOption func(*LoaderOptions)

// WithFileSystem routes filesystem reads through the supplied fs.FS.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileSystem = fsys
	}
}

// WithHTTPClient enables URL sources using the given client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(o *LoaderOptions) {
		o.HTTPClient = client
	}
}

// WithHTTPFallback toggles use of http.DefaultClient for URL sources.
func WithHTTPFallback(allow bool) LoaderOption {
	return func(o *LoaderOptions) {
		o.AllowHTTPFallback = allow
	}
}

// Load reads a configuration document from the source and decodes it. JSON
// and YAML payloads are both accepted; the format is sniffed from the
// payload, not the file extension, because editors export either.
func Load(ctx context.Context, src Source, options ...LoaderOption) (*Document, error) {
	if src == nil {
		return nil, errors.New("config: source is required")
	}

	opts := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}

	raw, err := readSource(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes a raw configuration payload, accepting JSON or YAML.
func Parse(raw []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("config: document is empty")
	}

	var doc Document
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("config: decode json: %w", err)
		}
		return &doc, nil
	}
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	return &doc, nil
}

func readSource(ctx context.Context, src Source, opts LoaderOptions) ([]byte, error) {
	switch src.Kind() {
	case SourceKindBytes:
		bs, ok := src.(bytesSource)
		if !ok {
			return nil, fmt.Errorf("config: unsupported bytes source %T", src)
		}
		return bs.data, nil
	case SourceKindFile:
		if opts.FileSystem != nil {
			return fs.ReadFile(opts.FileSystem, src.Location())
		}
		return os.ReadFile(src.Location())
	case SourceKindFS:
		if opts.FileSystem == nil {
			return nil, errors.New("config: fs source requires WithFileSystem")
		}
		return fs.ReadFile(opts.FileSystem, src.Location())
	case SourceKindURL:
		return readURL(ctx, src.Location(), opts)
	default:
		return nil, fmt.Errorf("config: unsupported source kind %q", src.Kind())
	}
}

func readURL(ctx context.Context, rawURL string, opts LoaderOptions) ([]byte, error) {
	client := opts.HTTPClient
	if client == nil {
		if !opts.AllowHTTPFallback {
			return nil, errors.New("config: http sources disabled; supply WithHTTPClient or WithHTTPFallback")
		}
		client = http.DefaultClient
	}

	if opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.RequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("config: build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("config: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("config: fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("config: read response: %w", err)
	}
	return raw, nil
}
