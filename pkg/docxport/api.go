// Package docxport imports packaged Word template documents (DOCX) into an
// editable in-memory model.
//
// A DOCX file is a zip container of XML parts tied together by relationship
// files. The importer opens the container, loads the styles part, discovers
// the header and footer references in the main document's section
// properties, resolves each through the relationships index, and converts
// every referenced part into a schema-less XML tree that survives
// re-emission without data loss. Each part's own image and hyperlink
// relationships are resolved recursively.
//
// Basic Usage:
//
//	tmpl, err := docxport.ImportFile("template.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, h := range tmpl.Headers {
//	    fmt.Println(h.Placement, len(h.Images), "images")
//	}
//
// Imported headers and footers receive fresh relationship IDs starting at 1;
// tmpl.NextRelID is the first free ID for callers that keep allocating.
package docxport

import (
	"bytes"
	"io"
	"os"

	"go.uber.org/zap"
)

// Importer provides the main API for importing templates.
// Use New() to create an instance.
type Importer struct {
	config *Config
	cache  *MediaCache
	log    *zap.Logger
}

// New creates a new importer with the global configuration and a shared
// media cache.
func New() *Importer {
	return &Importer{
		config: GetGlobalConfig(),
		cache:  defaultMediaCache,
	}
}

// NewWithConfig creates a new importer with a custom configuration.
func NewWithConfig(config *Config) *Importer {
	return &Importer{
		config: config,
		cache:  NewMediaCacheWithSize(config.MediaCacheMaxSize),
	}
}

// Option represents a configuration option for the importer.
type Option func(*Importer)

// WithConfig returns an option that sets the importer configuration and
// rebuilds the media cache to the configured size.
func WithConfig(config *Config) Option {
	return func(im *Importer) {
		im.config = config
		im.cache = NewMediaCacheWithSize(config.MediaCacheMaxSize)
	}
}

// WithMediaCache returns an option that sets the media cache, overriding the
// one WithConfig builds. Pass nil to disable media caching for this importer.
func WithMediaCache(cache *MediaCache) Option {
	return func(im *Importer) {
		im.cache = cache
	}
}

// WithLogger returns an option that sets a per-importer logger.
func WithLogger(logger *zap.Logger) Option {
	return func(im *Importer) {
		im.log = logger
	}
}

// NewWithOptions creates a new importer with the specified options.
func NewWithOptions(opts ...Option) *Importer {
	im := New()
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Import reads a complete template package from r and imports it. The whole
// operation is all-or-nothing: any failure discards every intermediate
// result.
func (im *Importer) Import(r io.Reader) (*Template, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, NewContainerError("read", "", err)
	}
	return im.ImportBytes(buf.Bytes())
}

// ImportBytes imports a template package from its raw bytes.
func (im *Importer) ImportBytes(data []byte) (*Template, error) {
	log := im.log
	if log == nil {
		log = Logger()
	}
	return importTemplate(data, im.cache, im.config.StrictMedia, log)
}

// ImportFile imports a template package from a file path.
func (im *Importer) ImportFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewContainerError("read", path, err)
	}
	return im.ImportBytes(data)
}

// Config returns the importer's configuration.
func (im *Importer) Config() *Config {
	return im.config
}

// defaultMediaCache is shared by all importers created with New.
var defaultMediaCache = NewMediaCache()

// DefaultImporter is the global importer instance used by the package-level
// convenience functions.
var DefaultImporter = New()

// Import imports a template package from r using the default importer.
func Import(r io.Reader) (*Template, error) {
	return DefaultImporter.Import(r)
}

// ImportBytes imports a template package from raw bytes using the default
// importer.
func ImportBytes(data []byte) (*Template, error) {
	return DefaultImporter.ImportBytes(data)
}

// ImportFile imports a template package from a file path using the default
// importer.
func ImportFile(path string) (*Template, error) {
	return DefaultImporter.ImportFile(path)
}
