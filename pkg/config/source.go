package config

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a configuration document originated so the loader
// can operate on files, fs.FS entries, or URLs without leaking implementation
// details into callers.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindURL   SourceKind = "url"
	SourceKindBytes SourceKind = "bytes"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL parses the supplied URL string and returns a Source. It
// panics if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("config: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("config: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

type bytesSource struct {
	label string
	data  []byte
}

func (s bytesSource) Location() string { return s.label }
func (s bytesSource) Kind() SourceKind { return SourceKindBytes }

// SourceFromBytes wraps an in-memory payload, typically one the editor just
// produced. The label only shows up in error messages.
func SourceFromBytes(label string, data []byte) Source {
	return bytesSource{label: label, data: append([]byte(nil), data...)}
}
