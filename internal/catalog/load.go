package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/giftcheck/internal/evolution"
	"github.com/roach88/giftcheck/internal/gift"
	"github.com/roach88/giftcheck/internal/pkm"
)

//go:embed schema.cue
var schemaCUE []byte

// LoadMode controls how errors are handled during directory loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Document is the decoded form of one catalog file.
type Document struct {
	gift.Catalog
	Evolutions []evolution.Edge `json:"evolutions,omitempty"`
}

// Result is everything loaded from a catalog directory.
type Result struct {
	Catalog    *gift.Catalog
	Evolutions []evolution.Edge
	Files      []string // files that contributed, in load order
}

func (r *Result) add(doc *Document, files ...string) {
	r.Catalog.Merge(&doc.Catalog)
	r.Evolutions = append(r.Evolutions, doc.Evolutions...)
	r.Files = append(r.Files, files...)
}

// loader carries one CUE context and the compiled schema across a load.
type loader struct {
	ctx    *cue.Context
	schema cue.Value
}

func newLoader() (*loader, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return &loader{ctx: ctx, schema: schema}, nil
}

// LoadDir loads every catalog file directly inside dir.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors and returns whatever
// loaded cleanly alongside them.
func LoadDir(dir string, mode LoadMode) (*Result, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: "catalog directory not found", Path: dir}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog directory: %v", err), Path: dir, Err: err}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: "not a directory", Path: dir}}
	}

	files, err := FindCatalogFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err), Path: dir, Err: err}}
	}
	if len(files) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: "no catalog files found", Path: dir}}
	}

	l, err := newLoader()
	if err != nil {
		return nil, []error{err}
	}

	result := &Result{Catalog: &gift.Catalog{}}
	var errs []error
	cueDone := false
	for _, path := range files {
		var doc *Document
		var loadErr error
		contributed := []string{path}

		if filepath.Ext(path) == ".cue" {
			if cueDone {
				continue
			}
			cueDone = true
			contributed = filterExt(files, ".cue")
			doc, loadErr = l.loadCUEPackage(dir)
		} else {
			doc, loadErr = l.loadDataFile(path)
		}

		if loadErr != nil {
			errs = append(errs, loadErr)
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}
		result.add(doc, contributed...)
	}

	return result, errs
}

// LoadFile loads a single YAML, JSON or CUE catalog file.
func LoadFile(path string) (*Result, error) {
	l, err := newLoader()
	if err != nil {
		return nil, err
	}

	var doc *Document
	if filepath.Ext(path) == ".cue" {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, notFound(path, readErr)
		}
		doc, err = l.decodeCUE(l.ctx.CompileBytes(data, cue.Filename(path)), path)
	} else {
		doc, err = l.loadDataFile(path)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Catalog: &gift.Catalog{}}
	result.add(doc, path)
	return result, nil
}

// Decode loads catalog bytes that did not come from a file, such as a
// catalog embedded in a larger document. name is used for errors and its
// extension selects YAML or JSON.
func Decode(data []byte, name string) (*Result, error) {
	l, err := newLoader()
	if err != nil {
		return nil, err
	}
	doc, err := l.decodeData(data, name)
	if err != nil {
		return nil, err
	}
	result := &Result{Catalog: &gift.Catalog{}}
	result.add(doc, name)
	return result, nil
}

// FindCatalogFiles returns the catalog files directly inside dir in
// lexical order.
func FindCatalogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml", ".json", ".cue":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func filterExt(files []string, ext string) []string {
	var out []string
	for _, f := range files {
		if filepath.Ext(f) == ext {
			out = append(out, f)
		}
	}
	return out
}

// loadDataFile reads a YAML or JSON file, checks it against the schema
// and decodes it.
func (l *loader) loadDataFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, notFound(path, err)
	}
	return l.decodeData(data, path)
}

// decodeData checks YAML or JSON bytes against the schema and decodes
// them. The extension of path selects the format.
func (l *loader) decodeData(data []byte, path string) (*Document, error) {
	jsonData, err := toJSON(path, data)
	if err != nil {
		return nil, err
	}

	// JSON is valid CUE, so the same schema covers every format.
	value := l.ctx.CompileBytes(jsonData, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, cueError(ErrCodeParseFailed, path, err)
	}
	if err := l.check(value, path); err != nil {
		return nil, err
	}
	return decodeDocument(jsonData, path)
}

// loadCUEPackage evaluates the CUE files in dir as one instance.
func (l *loader) loadCUEPackage(dir string) (*Document, error) {
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: "no CUE instances loaded", Path: dir}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, cueError(ErrCodeParseFailed, dir, inst.Err)
	}
	return l.decodeCUE(l.ctx.BuildInstance(inst), dir)
}

func (l *loader) decodeCUE(value cue.Value, path string) (*Document, error) {
	if err := value.Err(); err != nil {
		return nil, cueError(ErrCodeParseFailed, path, err)
	}
	if err := l.check(value, path); err != nil {
		return nil, err
	}

	jsonData, err := value.MarshalJSON()
	if err != nil {
		return nil, cueError(ErrCodeSchema, path, err)
	}
	return decodeDocument(jsonData, path)
}

// check unifies value with the schema and requires the result to be
// concrete.
func (l *loader) check(value cue.Value, path string) error {
	unified := l.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cueError(ErrCodeSchema, path, err)
	}
	return nil
}

// toJSON converts YAML to JSON. JSON input is returned unchanged.
func toJSON(path string, data []byte) ([]byte, error) {
	if filepath.Ext(path) == ".json" {
		return data, nil
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: err.Error(), Path: path, Err: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	out, err := json.Marshal(raw)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("not a JSON-compatible document: %v", err), Path: path, Err: err}
	}
	return out, nil
}

func decodeDocument(data []byte, path string) (*Document, error) {
	var doc Document
	if err := decodeStrict(data, &doc); err != nil {
		return nil, decodeError(path, err)
	}
	normalizeCatalog(&doc.Catalog)
	return &doc, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func decodeError(path string, err error) *LoadError {
	code := ErrCodeDecode
	if errors.Is(err, pkm.ErrUnknownVersion) {
		code = ErrCodeVersion
	}
	return &LoadError{Code: code, Message: err.Error(), Path: path, Err: err}
}

// cueError converts the first CUE error to a LoadError with position info.
func cueError(code, path string, err error) *LoadError {
	le := &LoadError{Code: code, Message: err.Error(), Path: path, Err: err}
	if list := cueerrors.Errors(err); len(list) > 0 {
		first := list[0]
		le.Pos = first.Position()
		le.Message = strings.TrimSpace(first.Error())
		if len(list) > 1 {
			le.Message = fmt.Sprintf("%s (and %d more errors)", le.Message, len(list)-1)
		}
	}
	return le
}

func notFound(path string, err error) *LoadError {
	return &LoadError{Code: ErrCodeNotFound, Message: err.Error(), Path: path, Err: err}
}

// normalizeCatalog NFC normalizes every trainer name and title so that
// canonically equal names compare equal.
func normalizeCatalog(c *gift.Catalog) {
	for _, g := range c.Gen3 {
		g.Title = norm.NFC.String(g.Title)
		if g.OTName != nil {
			name := norm.NFC.String(*g.OTName)
			g.OTName = &name
		}
	}
	for _, g := range c.Gen4 {
		g.Title = norm.NFC.String(g.Title)
		g.OTName = norm.NFC.String(g.OTName)
	}
	for _, g := range c.Gen5 {
		g.Title = norm.NFC.String(g.Title)
		g.OTName = norm.NFC.String(g.OTName)
	}
	for _, g := range c.Gen6 {
		g.Title = norm.NFC.String(g.Title)
		g.OTName = norm.NFC.String(g.OTName)
	}
	for _, g := range c.Gen7 {
		g.Title = norm.NFC.String(g.Title)
		g.OTName = norm.NFC.String(g.OTName)
	}
}

// Supported reports whether path has a catalog or record extension.
func Supported(path string) bool {
	return slices.Contains([]string{".yaml", ".yml", ".json", ".cue"}, filepath.Ext(path))
}
