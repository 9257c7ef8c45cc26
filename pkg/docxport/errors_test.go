package docxport

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("underlying")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "container error with part and cause",
			err:  NewContainerError("read", "word/header1.xml", cause),
			want: "container error during read of 'word/header1.xml': underlying",
		},
		{
			name: "container error without part",
			err:  NewContainerError("open", "", cause),
			want: "container error during open: underlying",
		},
		{
			name: "format error",
			err:  NewFormatError("word/document.xml", "missing body element", nil),
			want: "format error in 'word/document.xml': missing body element",
		},
		{
			name: "relationship identifier error",
			err:  NewRelationshipIDError("Rid7", "word/_rels/document.xml.rels"),
			want: `invalid relationship identifier "Rid7" in 'word/_rels/document.xml.rels'`,
		},
		{
			name: "reference error",
			err:  NewReferenceError(42, documentRelsPart),
			want: "missing relationship target rId42 in 'word/_rels/document.xml.rels'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	container := NewContainerError("open", "", nil)
	format := NewFormatError("p", "d", nil)
	relID := NewRelationshipIDError("x", "p")
	reference := NewReferenceError(1, "p")

	tests := []struct {
		name string
		pred func(error) bool
		hit  error
	}{
		{"IsContainerError", IsContainerError, container},
		{"IsFormatError", IsFormatError, format},
		{"IsRelationshipIDError", IsRelationshipIDError, relID},
		{"IsReferenceError", IsReferenceError, reference},
	}

	all := []error{container, format, relID, reference}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, err := range all {
				got := tt.pred(err)
				want := err == tt.hit
				if got != want {
					t.Errorf("%s(%T) = %v, want %v", tt.name, err, got, want)
				}
			}
			if tt.pred(nil) {
				t.Errorf("%s(nil) = true", tt.name)
			}
		})
	}
}

func TestErrorPredicatesWrapped(t *testing.T) {
	wrapped := fmt.Errorf("importing: %w", NewFormatError("p", "d", nil))
	if !IsFormatError(wrapped) {
		t.Error("predicate must see through fmt.Errorf wrapping")
	}
	if IsContainerError(wrapped) {
		t.Error("wrong predicate matched wrapped error")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")

	if got := errors.Unwrap(NewContainerError("open", "", cause)); got != cause {
		t.Errorf("ContainerError Unwrap() = %v, want cause", got)
	}
	if got := errors.Unwrap(NewFormatError("p", "d", cause)); got != cause {
		t.Errorf("FormatError Unwrap() = %v, want cause", got)
	}
	if !strings.Contains(NewFormatError("p", "d", cause).Error(), cause.Error()) {
		t.Error("FormatError message must include its cause")
	}
}
