// Package config defines the status-window configuration document and its
// loading pipeline. The document is owned by an external editor; everything
// in this module treats it as immutable input. Loading accepts JSON or YAML
// from files, fs.FS entries, URLs, or raw bytes, and Normalize prepares a
// document for rendering without changing anything the editor said.
package config
