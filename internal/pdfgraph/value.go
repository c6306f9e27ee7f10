package pdfgraph

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Kind enumerates the object variants a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindName
	KindString
	KindArray
	KindDict
	KindStream
	KindRef
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindName:
		return "name"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	case KindStream:
		return "stream"
	case KindRef:
		return "ref"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a single PDF object. The zero Value is null.
type Value struct {
	obj types.Object
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	switch v.obj.(type) {
	case nil:
		return KindNull
	case types.Boolean:
		return KindBool
	case types.Integer, types.Float:
		return KindNumber
	case types.Name:
		return KindName
	case types.StringLiteral, types.HexLiteral:
		return KindString
	case types.Array:
		return KindArray
	case types.Dict:
		return KindDict
	case types.StreamDict:
		return KindStream
	case types.IndirectRef, *types.IndirectRef:
		return KindRef
	default:
		return KindUnknown
	}
}

// AsDict returns the dictionary view of v. A stream is not a dictionary here.
func (v Value) AsDict() (Dict, bool) {
	d, ok := v.obj.(types.Dict)
	if !ok || d == nil {
		return Dict{}, false
	}

	return Dict{d: d}, true
}

// AsArray returns the array view of v.
func (v Value) AsArray() (Array, bool) {
	a, ok := v.obj.(types.Array)

	return Array{a: a}, ok
}

// AsRef returns the indirect reference view of v.
func (v Value) AsRef() (Ref, bool) {
	switch r := v.obj.(type) {
	case types.IndirectRef:
		return Ref{num: int(r.ObjectNumber), gen: int(r.GenerationNumber)}, true
	case *types.IndirectRef:
		if r == nil {
			return Ref{}, false
		}

		return Ref{num: int(r.ObjectNumber), gen: int(r.GenerationNumber)}, true
	default:
		return Ref{}, false
	}
}

// AsName returns the name view of v.
func (v Value) AsName() (Name, bool) {
	n, ok := v.obj.(types.Name)

	return Name(n), ok
}

// AsString returns the string view of v, literal or hex.
func (v Value) AsString() (String, bool) {
	switch s := v.obj.(type) {
	case types.StringLiteral:
		return String{lit: s}, true
	case types.HexLiteral:
		return String{hex: s, isHex: true}, true
	default:
		return String{}, false
	}
}

// Name is a PDF name without its leading slash.
type Name string

func (n Name) String() string { return string(n) }

// Ref is an indirect reference.
type Ref struct {
	num int
	gen int
}

// Identity returns the object and generation numbers of r.
func (r Ref) Identity() (objectNumber, generationNumber int) {
	return r.num, r.gen
}

// String is a PDF string object in either literal or hex form.
type String struct {
	lit   types.StringLiteral
	hex   types.HexLiteral
	isHex bool
}

// Text decodes s into a Go string, honouring a UTF-16 byte order mark.
func (s String) Text() (string, error) {
	if s.isHex {
		return types.HexLiteralToString(s.hex)
	}

	return types.StringLiteralToString(s.lit)
}

// Array is a PDF array.
type Array struct {
	a types.Array
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a.a) }

// At returns the i-th element, or null when i is out of range.
func (a Array) At(i int) Value {
	if i < 0 || i >= len(a.a) {
		return Value{}
	}

	return Value{obj: a.a[i]}
}

// Dict is a PDF dictionary. Dicts share storage with the document they were
// read from, so SetString is visible to a later Bytes call.
type Dict struct {
	d types.Dict
}

// Lookup returns the entry for key and whether it is present.
func (d Dict) Lookup(key string) (Value, bool) {
	if d.d == nil {
		return Value{}, false
	}

	obj, ok := d.d.Find(key)

	return Value{obj: obj}, ok
}

// Get returns the entry for key, or null when absent.
func (d Dict) Get(key string) Value {
	v, _ := d.Lookup(key)

	return v
}

// Len returns the number of entries.
func (d Dict) Len() int { return len(d.d) }

// SetString stores s under key as a literal string, replacing any previous entry.
func (d Dict) SetString(key, s string) error {
	if d.d == nil {
		return fmt.Errorf("set %s: %w", key, ErrNilDict)
	}

	escaped, err := types.Escape(s)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	d.d[key] = types.StringLiteral(*escaped)

	return nil
}
