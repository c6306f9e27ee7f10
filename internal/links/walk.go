package links

import (
	"github.com/serroba/pdf-link-shortener/internal/pdfgraph"
)

// SkipReason explains why an annotation slot or page produced no link.
type SkipReason int

const (
	SkipPageUnreadable SkipReason = iota + 1
	SkipNoAnnotations
	SkipAnnotationsNotArray
	SkipNotReference
	SkipNotDictionary
	SkipNotLink
	SkipNoAction
	SkipActionNotDictionary
	SkipNoURI
	SkipExcludedScheme
)

func (r SkipReason) String() string {
	switch r {
	case SkipPageUnreadable:
		return "page unreadable"
	case SkipNoAnnotations:
		return "no annotations"
	case SkipAnnotationsNotArray:
		return "annotations not an array"
	case SkipNotReference:
		return "not an indirect reference"
	case SkipNotDictionary:
		return "not a dictionary"
	case SkipNotLink:
		return "not a link annotation"
	case SkipNoAction:
		return "no action"
	case SkipActionNotDictionary:
		return "action not a dictionary"
	case SkipNoURI:
		return "no uri"
	case SkipExcludedScheme:
		return "excluded scheme"
	default:
		return "unknown"
	}
}

// Skipped records one exclusion. Index is -1 for page-level skips, and
// Identity is the zero value when the slot was not a reference.
type Skipped struct {
	Page     int
	Index    int
	Identity Identity
	Reason   SkipReason
}

// annotation is a page's /Annots entry that resolved to a dictionary.
type annotation struct {
	page     int
	index    int
	identity Identity
	dict     pdfgraph.Dict
}

// walkAnnotations visits every annotation array entry that is an indirect
// reference to a dictionary, in page order and then array order. Anything
// else is reported to skip.
func walkAnnotations(doc *pdfgraph.Document, visit func(annotation), skip func(Skipped)) {
	for n := 1; n <= doc.PageCount(); n++ {
		page, err := doc.Page(n)
		if err != nil {
			skip(Skipped{Page: n, Index: -1, Reason: SkipPageUnreadable})

			continue
		}

		raw, ok := page.Lookup("Annots")
		if !ok {
			skip(Skipped{Page: n, Index: -1, Reason: SkipNoAnnotations})

			continue
		}

		annots, ok := doc.ResolveArray(raw)
		if !ok {
			skip(Skipped{Page: n, Index: -1, Reason: SkipAnnotationsNotArray})

			continue
		}

		for i := range annots.Len() {
			elem := annots.At(i)

			ref, ok := elem.AsRef()
			if !ok {
				skip(Skipped{Page: n, Index: i, Reason: SkipNotReference})

				continue
			}

			id := identityOf(ref)

			dict, ok := doc.ResolveDict(elem)
			if !ok {
				skip(Skipped{Page: n, Index: i, Identity: id, Reason: SkipNotDictionary})

				continue
			}

			visit(annotation{page: n, index: i, identity: id, dict: dict})
		}
	}
}
