package docxport

import (
	"encoding/xml"
	"strings"
)

// ContentTypes represents the [Content_Types].xml part
type ContentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// ContentTypeDefault maps a file extension to a content type
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride maps a single part to a content type
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// parseContentTypes parses the [Content_Types].xml part
func parseContentTypes(data []byte) (*ContentTypes, error) {
	var ct ContentTypes
	if err := xml.Unmarshal(data, &ct); err != nil {
		return nil, NewFormatError(contentTypesPart, "cannot parse content types", err)
	}
	return &ct, nil
}

// TypeForPart resolves the content type declared for a part, checking
// overrides before extension defaults. A nil receiver declares nothing.
func (ct *ContentTypes) TypeForPart(partName string) string {
	if ct == nil {
		return ""
	}
	slashed := "/" + strings.TrimPrefix(partName, "/")
	for _, o := range ct.Overrides {
		if o.PartName == slashed {
			return o.ContentType
		}
	}

	ext := ""
	if idx := strings.LastIndex(partName, "."); idx != -1 {
		ext = strings.ToLower(partName[idx+1:])
	}
	for _, d := range ct.Defaults {
		if strings.ToLower(d.Extension) == ext {
			return d.ContentType
		}
	}
	return ""
}
