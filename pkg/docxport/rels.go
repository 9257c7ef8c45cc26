package docxport

import (
	"encoding/xml"
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

const relationshipNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

const (
	headerRelationType    = relationshipNamespace + "/header"
	footerRelationType    = relationshipNamespace + "/footer"
	imageRelationType     = relationshipNamespace + "/image"
	hyperlinkRelationType = relationshipNamespace + "/hyperlink"
)

// RelKind classifies a relationship by its type URI.
type RelKind int

const (
	RelUnknown RelKind = iota
	RelHeader
	RelFooter
	RelImage
	RelHyperlink
)

func (k RelKind) String() string {
	switch k {
	case RelHeader:
		return "header"
	case RelFooter:
		return "footer"
	case RelImage:
		return "image"
	case RelHyperlink:
		return "hyperlink"
	default:
		return "unknown"
	}
}

var relKindByType = map[string]RelKind{
	headerRelationType:    RelHeader,
	footerRelationType:    RelFooter,
	imageRelationType:     RelImage,
	hyperlinkRelationType: RelHyperlink,
}

// Relationship represents one entry of a relationships file
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// RelEntry is a resolved relationship: numeric ID, target path relative to
// the main content directory, and the classified kind. Entries are read-only
// facts; they are never mutated after parsing.
type RelEntry struct {
	ID     int
	Target string
	Kind   RelKind
	Mode   string
}

var relIDPattern = regexp.MustCompile(`^rId([0-9]+)$`)

// parseRelationshipID parses the fixed "rId" + digits form. Anything else is
// a format error for the owning file.
func parseRelationshipID(raw, part string) (int, error) {
	m := relIDPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, NewRelationshipIDError(raw, part)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, NewRelationshipIDError(raw, part)
	}
	return id, nil
}

// parseRelationships parses a relationships file body into entries of known
// kinds. A single Relationship child and a repeated one both decode to a
// slice, so no shape normalization is needed beyond unmarshaling. Entries
// with unrecognized type URIs are dropped, not reported.
func parseRelationships(data []byte, part string) ([]RelEntry, error) {
	var rels Relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, NewFormatError(part, "cannot parse relationships", err)
	}

	entries := make([]RelEntry, 0, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		// Every entry's ID must be well formed, even entries of kinds
		// that end up dropped.
		id, err := parseRelationshipID(rel.ID, part)
		if err != nil {
			return nil, err
		}
		kind, ok := relKindByType[rel.Type]
		if !ok || kind == RelUnknown {
			Logger().Debug("dropping relationship of unknown kind",
				zap.String("part", part),
				zap.String("id", rel.ID),
				zap.String("type", rel.Type))
			continue
		}
		entries = append(entries, RelEntry{
			ID:     id,
			Target: rel.Target,
			Kind:   kind,
			Mode:   rel.TargetMode,
		})
	}
	return entries, nil
}

// relEntryByID returns the entry with the given numeric ID.
func relEntryByID(entries []RelEntry, id int) (RelEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return RelEntry{}, false
}
