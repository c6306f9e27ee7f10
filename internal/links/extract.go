package links

import (
	"strings"

	"github.com/serroba/pdf-link-shortener/internal/pdfgraph"
)

// excludedSchemes are matched case-sensitively anywhere in the URI.
var excludedSchemes = []string{"mailto:", "javascript:"}

// Report is the full outcome of a Scan.
type Report struct {
	PageCount int
	Links     []DiscoveredLink
	Skipped   []Skipped
}

// Extract returns the URI link annotations in data, in document order.
// Only a document that cannot be loaded is an error.
func Extract(data []byte) ([]DiscoveredLink, error) {
	report, err := Scan(data)
	if err != nil {
		return nil, err
	}

	return report.Links, nil
}

// Scan is Extract plus the reason every other annotation slot was left out.
func Scan(data []byte) (*Report, error) {
	doc, err := pdfgraph.Load(data)
	if err != nil {
		return nil, err
	}

	return scanDocument(doc), nil
}

func scanDocument(doc *pdfgraph.Document) *Report {
	report := &Report{PageCount: doc.PageCount()}

	skip := func(s Skipped) {
		report.Skipped = append(report.Skipped, s)
	}

	walkAnnotations(doc, func(a annotation) {
		uri, reason := linkURI(doc, a.dict)
		if reason != 0 {
			skip(Skipped{Page: a.page, Index: a.index, Identity: a.identity, Reason: reason})

			return
		}

		report.Links = append(report.Links, DiscoveredLink{
			Page:     a.page,
			Identity: a.identity,
			URL:      uri,
		})
	}, skip)

	return report
}

// linkURI applies the link filters to an annotation dictionary. It returns the
// decoded URI, or the reason the annotation does not qualify.
func linkURI(doc *pdfgraph.Document, annot pdfgraph.Dict) (string, SkipReason) {
	subtype, ok := annot.Get("Subtype").AsName()
	if !ok || subtype != "Link" {
		return "", SkipNotLink
	}

	rawAction, ok := annot.Lookup("A")
	if !ok {
		return "", SkipNoAction
	}

	action, ok := doc.ResolveDict(rawAction)
	if !ok {
		return "", SkipActionNotDictionary
	}

	rawURI, ok := action.Lookup("URI")
	if !ok {
		return "", SkipNoURI
	}

	resolved, err := doc.Resolve(rawURI)
	if err != nil {
		return "", SkipNoURI
	}

	str, ok := resolved.AsString()
	if !ok {
		return "", SkipNoURI
	}

	uri, err := str.Text()
	if err != nil {
		return "", SkipNoURI
	}

	for _, scheme := range excludedSchemes {
		if strings.Contains(uri, scheme) {
			return "", SkipExcludedScheme
		}
	}

	return uri, 0
}
