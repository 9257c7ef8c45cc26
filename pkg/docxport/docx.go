package docxport

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Fixed part paths inside a template package.
const (
	documentPart      = "word/document.xml"
	stylesPart        = "word/styles.xml"
	documentRelsPart  = "word/_rels/document.xml.rels"
	contentTypesPart  = "[Content_Types].xml"
	wordPartDirectory = "word/"
)

// PackageReader handles reading the parts of a template package
type PackageReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// NewPackageReader opens a template package from its raw bytes.
func NewPackageReader(r io.ReaderAt, size int64) (*PackageReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, NewContainerError("open", "", err)
	}

	pr := &PackageReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		pr.Parts[file.Name] = file
	}

	// A template package must carry a main document part
	if _, ok := pr.Parts[documentPart]; !ok {
		return nil, NewContainerError("open", documentPart, fmt.Errorf("not a valid template package: missing %s", documentPart))
	}

	return pr, nil
}

// HasPart reports whether the named part exists in the package.
func (pr *PackageReader) HasPart(name string) bool {
	_, ok := pr.Parts[name]
	return ok
}

// Part retrieves the binary content of a specific part
func (pr *PackageReader) Part(name string) ([]byte, error) {
	file, ok := pr.Parts[name]
	if !ok {
		return nil, NewContainerError("read", name, fmt.Errorf("part not found"))
	}

	rc, err := file.Open()
	if err != nil {
		return nil, NewContainerError("open", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, NewContainerError("read", name, err)
	}

	return content, nil
}

// PartText retrieves the content of a specific part as text
func (pr *PackageReader) PartText(name string) (string, error) {
	content, err := pr.Part(name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// RelsPath converts a part name to its relationships file name,
// e.g. "word/header1.xml" -> "word/_rels/header1.xml.rels".
func RelsPath(partName string) string {
	dir := ""
	base := partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir = partName[:idx]
		base = partName[idx+1:]
	}

	if dir == "" {
		return fmt.Sprintf("_rels/%s.rels", base)
	}
	return fmt.Sprintf("%s/_rels/%s.rels", dir, base)
}

// PartRelationships parses the relationships file scoped to the given part.
// A missing relationships file is normal and yields zero entries.
func (pr *PackageReader) PartRelationships(partName string) ([]RelEntry, error) {
	relsPath := RelsPath(partName)
	if !pr.HasPart(relsPath) {
		return nil, nil
	}

	content, err := pr.Part(relsPath)
	if err != nil {
		return nil, err
	}

	return parseRelationships(content, relsPath)
}

// ListParts returns the names of all parts in the package.
func (pr *PackageReader) ListParts() []string {
	parts := make([]string, 0, len(pr.Parts))
	for name := range pr.Parts {
		parts = append(parts, name)
	}
	return parts
}

// PackageReaderFromFile creates a PackageReader from a file path
func PackageReaderFromFile(path string) (*PackageReader, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewContainerError("read", path, err)
	}

	reader := bytes.NewReader(content)
	return NewPackageReader(reader, int64(len(content)))
}
