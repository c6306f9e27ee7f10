// Package pdfgraph is a typed view over a PDF object graph loaded by pdfcpu.
//
// Every access returns one of a closed set of variants (Dict, Array, Name,
// String, Ref, ...) together with an ok flag, so callers never type-assert
// library objects directly.
package pdfgraph

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

var (
	// ErrUnreadable is returned when bytes cannot be loaded as a PDF document.
	ErrUnreadable = errors.New("unreadable pdf document")
	// ErrEncrypted is returned for encrypted documents, which are not supported.
	ErrEncrypted = errors.New("encrypted pdf documents are not supported")
	// ErrNilDict is returned when writing into a zero Dict.
	ErrNilDict = errors.New("nil dictionary")
)

// maxResolveDepth bounds reference chains so a cyclic file cannot loop forever.
const maxResolveDepth = 32

func init() {
	// pdfcpu otherwise creates a config directory in the user's home on first use.
	api.DisableConfigDir()
}

// Document is an in-memory object graph owned by a single caller.
type Document struct {
	ctx *model.Context
}

// Load parses data into a fresh Document. The input slice is not modified.
func Load(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnreadable)
	}

	ctx, err := api.ReadContext(bytes.NewReader(data), newConfiguration())
	if errors.Is(err, pdfcpu.ErrWrongPassword) {
		// A non-empty user password: pdfcpu cannot open it at all.
		return nil, ErrEncrypted
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	if ctx.Encrypt != nil {
		return nil, ErrEncrypted
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: page tree: %w", ErrUnreadable, err)
	}

	return &Document{ctx: ctx}, nil
}

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return conf
}

// PageCount returns the number of pages in document order.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Page returns the page dictionary for the 1-based page number n.
func (d *Document) Page(n int) (Dict, error) {
	if n < 1 || n > d.ctx.PageCount {
		return Dict{}, fmt.Errorf("page %d out of range [1,%d]", n, d.ctx.PageCount)
	}

	pageDict, _, _, err := d.ctx.PageDict(n, false)
	if err != nil {
		return Dict{}, fmt.Errorf("page %d: %w", n, err)
	}

	if pageDict == nil {
		return Dict{}, fmt.Errorf("page %d: missing page dictionary", n)
	}

	return Dict{d: pageDict}, nil
}

// Resolve follows v while it is an indirect reference. A dangling reference
// resolves to null, as the PDF format prescribes.
func (d *Document) Resolve(v Value) (Value, error) {
	for range maxResolveDepth {
		ref, ok := v.AsRef()
		if !ok {
			return v, nil
		}

		obj, err := d.ctx.Dereference(*types.NewIndirectRef(ref.num, ref.gen))
		if err != nil {
			return Value{}, fmt.Errorf("resolve %d %d R: %w", ref.num, ref.gen, err)
		}

		v = Value{obj: obj}
	}

	return Value{}, fmt.Errorf("resolve: reference chain longer than %d", maxResolveDepth)
}

// ResolveDict resolves v and returns it as a dictionary.
func (d *Document) ResolveDict(v Value) (Dict, bool) {
	resolved, err := d.Resolve(v)
	if err != nil {
		return Dict{}, false
	}

	return resolved.AsDict()
}

// ResolveArray resolves v and returns it as an array.
func (d *Document) ResolveArray(v Value) (Array, bool) {
	resolved, err := d.Resolve(v)
	if err != nil {
		return Array{}, false
	}

	return resolved.AsArray()
}

// Info returns the document information dictionary referenced by the trailer.
func (d *Document) Info() (Dict, bool) {
	if d.ctx.Info == nil {
		return Dict{}, false
	}

	return d.ResolveDict(Value{obj: *d.ctx.Info})
}

// Bytes serializes the current state of the graph.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	if err := api.WriteContext(d.ctx, &buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseDate parses a PDF date string such as "D:20240131120000+01'00'".
func ParseDate(s string) (time.Time, bool) {
	return types.DateTime(s, true)
}
