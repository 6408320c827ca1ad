package catalog

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes, stable across releases. The CLI prints them verbatim.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeScanError     = "E002" // Directory scan error
	ErrCodeNoFiles       = "E003" // No catalog files found
	ErrCodeParseFailed   = "E004" // YAML, JSON or CUE syntax error
	ErrCodeNotFound      = "E005" // Path not found
	ErrCodeSchema        = "E006" // Document violates the catalog schema
	ErrCodeDecode        = "E007" // Unknown field or wrong field type
	ErrCodeVersion       = "E008" // Unknown game version
	ErrCodeInvalidRecord = "E009" // Record fails validation
)

// LoadError is a failure tied to a file and, when known, a position in it.
type LoadError struct {
	Code    string
	Message string
	Path    string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
