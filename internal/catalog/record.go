package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/giftcheck/internal/pkm"
)

// LoadRecord reads a single creature record from a YAML, JSON or CUE file.
func LoadRecord(path string) (*pkm.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, notFound(path, err)
	}

	var jsonData []byte
	if filepath.Ext(path) == ".cue" {
		value := cuecontext.New().CompileBytes(data, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, cueError(ErrCodeParseFailed, path, err)
		}
		if jsonData, err = value.MarshalJSON(); err != nil {
			return nil, cueError(ErrCodeParseFailed, path, err)
		}
	} else if jsonData, err = toJSON(path, data); err != nil {
		return nil, err
	}

	return DecodeRecord(jsonData, path)
}

// ParseRecord decodes a YAML or JSON record held in memory. name is used
// for errors and its extension selects the format.
func ParseRecord(data []byte, name string) (*pkm.Record, error) {
	jsonData, err := toJSON(name, data)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(jsonData, name)
}

// DecodeRecord strictly decodes a JSON record and validates it. path is
// used only in errors.
func DecodeRecord(data []byte, path string) (*pkm.Record, error) {
	var rec pkm.Record
	if err := decodeStrict(data, &rec); err != nil {
		return nil, decodeError(path, err)
	}
	if err := ValidateRecord(&rec); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidRecord, Message: err.Error(), Path: path, Err: err}
	}
	rec.OTName = norm.NFC.String(rec.OTName)
	return &rec, nil
}

// ValidateRecord checks the fields the engine relies on to route a record.
func ValidateRecord(rec *pkm.Record) error {
	if !rec.Container.Valid() {
		return fmt.Errorf("unknown container %q", rec.Container)
	}
	if rec.Species <= 0 {
		return fmt.Errorf("species must be positive, got %d", rec.Species)
	}
	if rec.Version != pkm.VersionAny && !rec.Version.Known() {
		return fmt.Errorf("%w %d", pkm.ErrUnknownVersion, rec.Version)
	}
	gen := rec.OriginGeneration()
	if gen == 0 {
		return fmt.Errorf("origin generation unknown: set version or generation")
	}
	if gen > rec.Format() {
		return fmt.Errorf("record from generation %d cannot be stored in %s", gen, rec.Container)
	}
	return nil
}
