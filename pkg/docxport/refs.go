package docxport

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// PartRef is one header or footer reference found in the main document's
// section properties.
type PartRef struct {
	RelID     int
	Placement Placement
}

// DocumentRefs holds everything the reference extractor reads from the main
// document part.
type DocumentRefs struct {
	Headers   []PartRef
	Footers   []PartRef
	TitlePage bool
}

// extractReferences reads the main document part and discovers which
// relationship IDs are referenced as headers and footers, and whether a
// distinct title page is in effect.
func extractReferences(docXML []byte) (*DocumentRefs, error) {
	sectPr, err := sectionProperties(docXML)
	if err != nil {
		return nil, err
	}

	refs := &DocumentRefs{}
	for _, child := range sectPr.ChildElements() {
		switch child.Tag {
		case "headerReference":
			ref, err := partRef(child)
			if err != nil {
				return nil, err
			}
			refs.Headers = append(refs.Headers, ref)
		case "footerReference":
			ref, err := partRef(child)
			if err != nil {
				return nil, err
			}
			refs.Footers = append(refs.Footers, ref)
		case "titlePg":
			// Presence alone enables the distinct first page.
			refs.TitlePage = true
		}
	}
	return refs, nil
}

// sectionProperties locates the document body's sectPr element. Documents
// with several sections keep per-section sectPr blocks inside the body; only
// the body-level block is honored here. When more than one candidate exists
// the first is used and the rest are ignored.
func sectionProperties(docXML []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(docXML); err != nil {
		return nil, NewFormatError(documentPart, "cannot parse document", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "document" {
		return nil, NewFormatError(documentPart, "missing document root element", nil)
	}

	body := childByLocal(root, "body")
	if body == nil {
		return nil, NewFormatError(documentPart, "missing body element", nil)
	}

	var sectPr *etree.Element
	for _, child := range body.ChildElements() {
		if child.Tag != "sectPr" {
			continue
		}
		if sectPr != nil {
			Logger().Warn("multiple section properties found, honoring the first",
				zap.String("part", documentPart))
			break
		}
		sectPr = child
	}
	if sectPr == nil {
		return nil, NewFormatError(documentPart, "missing section properties", nil)
	}
	return sectPr, nil
}

func partRef(el *etree.Element) (PartRef, error) {
	raw := attrLocal(el, "id")
	id, err := parseRelationshipID(raw, documentPart)
	if err != nil {
		return PartRef{}, err
	}

	placement := Placement(attrLocal(el, "type"))
	if placement == "" {
		placement = PlacementDefault
	}
	return PartRef{RelID: id, Placement: placement}, nil
}

// childByLocal returns the first child element with the given local tag,
// whatever its namespace prefix.
func childByLocal(el *etree.Element, local string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == local {
			return child
		}
	}
	return nil
}

// attrLocal returns the value of the attribute with the given local key,
// whatever its namespace prefix.
func attrLocal(el *etree.Element, key string) string {
	for _, attr := range el.Attr {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}
