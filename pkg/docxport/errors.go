// Package docxport custom error types for import failures and malformed input.
package docxport

import (
	"errors"
	"fmt"
)

// ContainerError represents a failure reading the template package itself:
// the archive cannot be opened or a named part entry is absent.
type ContainerError struct {
	Operation string
	Part      string
	Cause     error
}

func (e *ContainerError) Error() string {
	if e.Part != "" && e.Cause != nil {
		return fmt.Sprintf("container error during %s of '%s': %v", e.Operation, e.Part, e.Cause)
	} else if e.Part != "" {
		return fmt.Sprintf("container error during %s of '%s'", e.Operation, e.Part)
	} else if e.Cause != nil {
		return fmt.Sprintf("container error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("container error during %s", e.Operation)
}

func (e *ContainerError) Unwrap() error {
	return e.Cause
}

// NewContainerError creates a new container error
func NewContainerError(operation, part string, cause error) error {
	return &ContainerError{
		Operation: operation,
		Part:      part,
		Cause:     cause,
	}
}

// FormatError represents malformed XML content inside a part: a missing
// expected root element, multiple root elements, or a structure the importer
// cannot interpret.
type FormatError struct {
	Part   string
	Detail string
	Cause  error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("format error in '%s': %s: %v", e.Part, e.Detail, e.Cause)
	}
	return fmt.Sprintf("format error in '%s': %s", e.Part, e.Detail)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// NewFormatError creates a new format error
func NewFormatError(part, detail string, cause error) error {
	return &FormatError{
		Part:   part,
		Detail: detail,
		Cause:  cause,
	}
}

// RelationshipIDError reports a relationship identifier that does not match
// the required "rId" + digits form.
type RelationshipIDError struct {
	Raw  string
	Part string
}

func (e *RelationshipIDError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("invalid relationship identifier %q in '%s'", e.Raw, e.Part)
	}
	return fmt.Sprintf("invalid relationship identifier %q", e.Raw)
}

// NewRelationshipIDError creates a new relationship identifier error
func NewRelationshipIDError(raw, part string) error {
	return &RelationshipIDError{
		Raw:  raw,
		Part: part,
	}
}

// ReferenceError reports a header/footer reference naming a relationship ID
// that is absent from the relationships index.
type ReferenceError struct {
	RelID int
	Part  string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("missing relationship target rId%d in '%s'", e.RelID, e.Part)
}

// NewReferenceError creates a new reference error
func NewReferenceError(relID int, part string) error {
	return &ReferenceError{
		RelID: relID,
		Part:  part,
	}
}

// IsContainerError checks if an error is a container error
func IsContainerError(err error) bool {
	var e *ContainerError
	return errors.As(err, &e)
}

// IsFormatError checks if an error is a format error
func IsFormatError(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}

// IsRelationshipIDError checks if an error is a relationship identifier error
func IsRelationshipIDError(err error) bool {
	var e *RelationshipIDError
	return errors.As(err, &e)
}

// IsReferenceError checks if an error is a reference error
func IsReferenceError(err error) bool {
	var e *ReferenceError
	return errors.As(err, &e)
}
