package docxport

import (
	"bytes"
	"testing"
)

func TestNewPackageReader(t *testing.T) {
	tests := []struct {
		name    string
		parts   map[string]string
		raw     []byte
		wantErr bool
	}{
		{
			name:  "minimal valid package",
			parts: map[string]string{"word/document.xml": documentWithSectPr("")},
		},
		{
			name:    "missing main document part",
			parts:   map[string]string{"word/styles.xml": testStylesXML},
			wantErr: true,
		},
		{
			name:    "not a zip archive",
			raw:     []byte("plain text"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.raw
			if data == nil {
				data = buildPackage(t, tt.parts)
			}

			_, err := NewPackageReader(bytes.NewReader(data), int64(len(data)))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPackageReader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsContainerError(err) {
				t.Errorf("error is %T, want ContainerError", err)
			}
		})
	}
}

func TestPackageReaderPart(t *testing.T) {
	data := buildPackage(t, map[string]string{
		"word/document.xml": documentWithSectPr(""),
		"word/header1.xml":  testHeaderXML,
	})
	pr, err := NewPackageReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewPackageReader() error = %v", err)
	}

	got, err := pr.PartText("word/header1.xml")
	if err != nil {
		t.Fatalf("PartText() error = %v", err)
	}
	if got != testHeaderXML {
		t.Errorf("part content does not round-trip")
	}

	if !pr.HasPart("word/document.xml") {
		t.Error("HasPart(word/document.xml) = false")
	}
	if pr.HasPart("word/footer1.xml") {
		t.Error("HasPart(word/footer1.xml) = true")
	}

	_, err = pr.Part("word/missing.xml")
	if !IsContainerError(err) {
		t.Errorf("Part(missing) error = %v, want ContainerError", err)
	}

	if got := len(pr.ListParts()); got != 2 {
		t.Errorf("ListParts() = %d entries, want 2", got)
	}
}

func TestRelsPath(t *testing.T) {
	tests := []struct {
		part string
		want string
	}{
		{"word/document.xml", "word/_rels/document.xml.rels"},
		{"word/header1.xml", "word/_rels/header1.xml.rels"},
		{"word/media/image1.png", "word/media/_rels/image1.png.rels"},
		{"document.xml", "_rels/document.xml.rels"},
	}
	for _, tt := range tests {
		if got := RelsPath(tt.part); got != tt.want {
			t.Errorf("RelsPath(%q) = %q, want %q", tt.part, got, tt.want)
		}
	}
}

func TestPartRelationships(t *testing.T) {
	rels := relationshipsXML(
		`<Relationship Id="rId1" Type="` + imageRelationType + `" Target="media/image1.png"/>`)
	data := buildPackage(t, map[string]string{
		"word/document.xml":           documentWithSectPr(""),
		"word/header1.xml":            testHeaderXML,
		"word/_rels/header1.xml.rels": rels,
	})
	pr, err := NewPackageReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewPackageReader() error = %v", err)
	}

	entries, err := pr.PartRelationships("word/header1.xml")
	if err != nil {
		t.Fatalf("PartRelationships() error = %v", err)
	}
	if len(entries) != 1 || entries[0].ID != 1 || entries[0].Kind != RelImage {
		t.Errorf("entries = %+v", entries)
	}

	// No rels file for the document part: nil, nil.
	entries, err = pr.PartRelationships("word/document.xml")
	if err != nil {
		t.Fatalf("PartRelationships() without rels file error = %v", err)
	}
	if entries != nil {
		t.Errorf("entries = %+v, want nil", entries)
	}
}
