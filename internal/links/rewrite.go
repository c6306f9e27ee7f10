package links

import (
	"fmt"

	"github.com/serroba/pdf-link-shortener/internal/pdfgraph"
)

// Rewrite loads its own copy of data, points every annotation whose identity
// appears in replacements at the new URL, and serializes the result.
//
// Replacements with an empty URL, or whose identity is not in the document,
// are skipped. If nothing was updated Rewrite returns ErrNoLinksUpdated and
// no bytes. The data slice is never modified.
func Rewrite(data []byte, replacements []Replacement) (*RewriteResult, error) {
	doc, err := pdfgraph.Load(data)
	if err != nil {
		return nil, err
	}

	lookup := make(map[Identity]string, len(replacements))

	for _, r := range replacements {
		if r.URL == "" {
			continue
		}

		lookup[r.Identity] = r.URL
	}

	updated := make(map[Identity]struct{})

	var setErr error

	walkAnnotations(doc, func(a annotation) {
		if setErr != nil {
			return
		}

		url, ok := lookup[a.identity]
		if !ok {
			return
		}

		action, ok := doc.ResolveDict(a.dict.Get("A"))
		if !ok {
			return
		}

		if err := action.SetString("URI", url); err != nil {
			setErr = fmt.Errorf("annotation %s: %w", a.identity, err)

			return
		}

		updated[a.identity] = struct{}{}
	}, func(Skipped) {})

	if setErr != nil {
		return nil, setErr
	}

	if len(updated) == 0 {
		return nil, ErrNoLinksUpdated
	}

	out, err := doc.Bytes()
	if err != nil {
		return nil, err
	}

	return &RewriteResult{Document: out, Updated: len(updated)}, nil
}
