package docxport

import (
	"encoding/xml"
)

// Styles represents the w:styles part. The full document content is retained
// as raw XML so the part can be re-emitted unchanged; only the style
// identifiers are lifted out for inspection.
type Styles struct {
	XMLName xml.Name        `xml:"styles"`
	Styles  []DocumentStyle `xml:"style"`
	RawXML  []byte          `xml:",innerxml"`

	source []byte
}

// DocumentStyle represents a single w:style element
type DocumentStyle struct {
	XMLName xml.Name `xml:"style"`
	Type    string   `xml:"type,attr"`
	StyleID string   `xml:"styleId,attr"`
	RawXML  []byte   `xml:",innerxml"`
}

// parseStyles parses a styles.xml part
func parseStyles(stylesXML []byte) (*Styles, error) {
	var styles Styles
	if err := xml.Unmarshal(stylesXML, &styles); err != nil {
		return nil, NewFormatError(stylesPart, "cannot parse styles", err)
	}
	styles.source = stylesXML
	return &styles, nil
}

// StyleIDs returns the identifiers of all styles defined in the part.
func (s *Styles) StyleIDs() []string {
	ids := make([]string, 0, len(s.Styles))
	for _, style := range s.Styles {
		ids = append(ids, style.StyleID)
	}
	return ids
}

// Source returns the original bytes of the styles part.
func (s *Styles) Source() []byte {
	return s.source
}
