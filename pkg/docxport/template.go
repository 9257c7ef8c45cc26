package docxport

import (
	"github.com/benjaminschreck/go-docxport/pkg/docxport/xmltree"
)

// Placement describes which pages a header or footer applies to.
type Placement string

const (
	PlacementDefault Placement = "default"
	PlacementFirst   Placement = "first"
	PlacementEven    Placement = "even"
)

// Media is a binary image part registered against a header or footer.
type Media struct {
	Data        []byte
	Extension   string
	ContentType string
	Width       int
	Height      int
}

// Hyperlink is an external link registered against a header or footer.
type Hyperlink struct {
	Target string
	Mode   string
}

// HeaderFooter wraps one imported header or footer part: its placement, the
// relationship ID assigned during this import, the losslessly converted XML
// tree, and the media and links its own relationships resolved to.
type HeaderFooter struct {
	Placement Placement
	RelID     int
	Content   *xmltree.Node
	Images    map[int]*Media
	Links     map[int]Hyperlink
}

func newHeaderFooter(placement Placement, relID int, content *xmltree.Node) *HeaderFooter {
	return &HeaderFooter{
		Placement: placement,
		RelID:     relID,
		Content:   content,
		Images:    make(map[int]*Media),
		Links:     make(map[int]Hyperlink),
	}
}

// AddImage registers a binary image under its original numeric relationship
// ID. The ID is preserved as-is because it must match the drawing references
// already embedded in the converted XML tree.
func (hf *HeaderFooter) AddImage(relID int, media *Media) {
	hf.Images[relID] = media
}

// AddLink registers an external hyperlink under its original numeric
// relationship ID.
func (hf *HeaderFooter) AddLink(relID int, target, mode string) {
	hf.Links[relID] = Hyperlink{Target: target, Mode: mode}
}

// Template is the assembled result of one import: headers then footers in
// source order, the opaque styles object, the title-page flag, and the next
// free relationship ID for callers that keep allocating.
type Template struct {
	Headers   []*HeaderFooter
	Footers   []*HeaderFooter
	Styles    *Styles
	TitlePage bool
	// NextRelID is strictly greater than every ID handed out during this
	// import. The source package's ID space is not carried over.
	NextRelID int
}
