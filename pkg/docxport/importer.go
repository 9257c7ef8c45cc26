package docxport

import (
	"bytes"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/benjaminschreck/go-docxport/pkg/docxport/xmltree"
)

// relIDAllocator hands out fresh relationship IDs for the imported template.
// The destination ID space starts at 1 and is independent of whatever numeric
// IDs the source package used. Atomic so reference resolution may fan out.
type relIDAllocator struct {
	next int64
}

func newRelIDAllocator() *relIDAllocator {
	return &relIDAllocator{next: 1}
}

// Next returns the current ID and advances the counter.
func (a *relIDAllocator) Next() int {
	return int(atomic.AddInt64(&a.next, 1)) - 1
}

// Peek returns the next ID without consuming it.
func (a *relIDAllocator) Peek() int {
	return int(atomic.LoadInt64(&a.next))
}

// templateImport carries the shared read-only state of one import call.
type templateImport struct {
	pkg    *PackageReader
	rels   []RelEntry
	ctypes *ContentTypes
	alloc  *relIDAllocator
	cache  *MediaCache
	strict bool
}

// importTemplate drives the end-to-end pipeline: open the package, load
// styles, extract document references, resolve each through the relationship
// index, convert the target parts, and resolve their nested relationships.
// Any failure aborts the whole import; there is no partial result.
func importTemplate(data []byte, cache *MediaCache, strict bool, log *zap.Logger) (*Template, error) {
	pkg, err := NewPackageReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	stylesData, err := pkg.Part(stylesPart)
	if err != nil {
		return nil, err
	}
	styles, err := parseStyles(stylesData)
	if err != nil {
		return nil, err
	}

	docXML, err := pkg.Part(documentPart)
	if err != nil {
		return nil, err
	}
	refs, err := extractReferences(docXML)
	if err != nil {
		return nil, err
	}

	relsData, err := pkg.Part(documentRelsPart)
	if err != nil {
		return nil, err
	}
	rels, err := parseRelationships(relsData, documentRelsPart)
	if err != nil {
		return nil, err
	}

	// Content-type declarations back up media sniffing; a package without
	// the part just declares nothing.
	var ctypes *ContentTypes
	if pkg.HasPart(contentTypesPart) {
		ctData, err := pkg.Part(contentTypesPart)
		if err != nil {
			return nil, err
		}
		ctypes, err = parseContentTypes(ctData)
		if err != nil {
			return nil, err
		}
	}

	ti := &templateImport{
		pkg:    pkg,
		rels:   rels,
		ctypes: ctypes,
		alloc:  newRelIDAllocator(),
		cache:  cache,
		strict: strict,
	}

	tmpl := &Template{
		Styles:    styles,
		TitlePage: refs.TitlePage,
	}

	// Headers fully before footers, in source order; each consumes one
	// fresh relationship ID.
	for _, ref := range refs.Headers {
		hf, err := ti.resolveReference(ref, "hdr")
		if err != nil {
			return nil, err
		}
		tmpl.Headers = append(tmpl.Headers, hf)
	}
	for _, ref := range refs.Footers {
		hf, err := ti.resolveReference(ref, "ftr")
		if err != nil {
			return nil, err
		}
		tmpl.Footers = append(tmpl.Footers, hf)
	}

	tmpl.NextRelID = ti.alloc.Peek()

	log.Debug("template imported",
		zap.Int("headers", len(tmpl.Headers)),
		zap.Int("footers", len(tmpl.Footers)),
		zap.Bool("titlePage", tmpl.TitlePage),
		zap.Int("nextRelID", tmpl.NextRelID))

	return tmpl, nil
}

// resolveReference loads one referenced header/footer part, converts it into
// a generic XML tree, wraps it with a freshly assigned relationship ID, and
// resolves the part's own image and hyperlink relationships.
func (ti *templateImport) resolveReference(ref PartRef, wantRoot string) (*HeaderFooter, error) {
	entry, ok := relEntryByID(ti.rels, ref.RelID)
	if !ok {
		return nil, NewReferenceError(ref.RelID, documentRelsPart)
	}

	partName := resolveTarget(entry.Target)
	text, err := ti.pkg.PartText(partName)
	if err != nil {
		return nil, err
	}

	node, err := xmltree.FromSerializedText(text)
	if err != nil {
		return nil, NewFormatError(partName, "cannot convert part", err)
	}
	if localName(node.Name) != wantRoot {
		return nil, NewFormatError(partName, "unexpected root element '"+node.Name+"'", nil)
	}

	hf := newHeaderFooter(ref.Placement, ti.alloc.Next(), node)
	if err := ti.resolveNested(partName, hf); err != nil {
		return nil, err
	}
	return hf, nil
}

// resolveNested parses the part-scoped relationships file, if any, and
// registers the part's images and hyperlinks. Absence of the file is normal
// and yields zero registrations.
func (ti *templateImport) resolveNested(partName string, hf *HeaderFooter) error {
	entries, err := ti.pkg.PartRelationships(partName)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		switch entry.Kind {
		case RelImage:
			target := resolveTarget(entry.Target)
			data, err := ti.pkg.Part(target)
			if err != nil {
				return err
			}
			media, err := ti.cache.Intern(data, func() (*Media, error) {
				return sniffMedia(data, target, ti.strict, ti.ctypes)
			})
			if err != nil {
				return err
			}
			// Original numeric ID kept: it must match the drawing
			// references inside the already-converted tree.
			hf.AddImage(entry.ID, media)
		case RelHyperlink:
			mode := entry.Mode
			if mode == "" {
				mode = "External"
			}
			hf.AddLink(entry.ID, entry.Target, mode)
		default:
			// Header and footer parts are not expected to reference
			// further headers or footers.
			Logger().Debug("ignoring nested relationship",
				zap.String("part", partName),
				zap.Int("id", entry.ID),
				zap.String("kind", entry.Kind.String()))
		}
	}
	return nil
}

// resolveTarget turns a relationship target into a package part name.
// Targets are relative to the main content directory unless they start with
// a slash.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return wordPartDirectory + target
}

func localName(name string) string {
	if idx := strings.Index(name, ":"); idx != -1 {
		return name[idx+1:]
	}
	return name
}
