// Package links discovers URI link annotations in PDF documents and rewrites
// their targets.
//
// Annotations are correlated across calls by Identity, the object and
// generation numbers of the annotation's indirect reference. An Identity is
// only meaningful for the exact bytes it was discovered in: a document
// produced by Rewrite may number its objects differently.
package links

import (
	"errors"
	"fmt"

	"github.com/serroba/pdf-link-shortener/internal/pdfgraph"
)

// ErrNoLinksUpdated is returned by Rewrite when no annotation matched a replacement.
var ErrNoLinksUpdated = errors.New("no links were updated")

// Identity names one indirect object within one document snapshot.
type Identity struct {
	ObjectNumber     int `json:"objectNumber"`
	GenerationNumber int `json:"generationNumber"`
}

func (id Identity) String() string {
	return fmt.Sprintf("%d %d R", id.ObjectNumber, id.GenerationNumber)
}

func identityOf(ref pdfgraph.Ref) Identity {
	num, gen := ref.Identity()

	return Identity{ObjectNumber: num, GenerationNumber: gen}
}

// DiscoveredLink is a URI link annotation found by Extract.
type DiscoveredLink struct {
	Page     int      `json:"page"`
	Identity Identity `json:"identity"`
	URL      string   `json:"url"`
}

// Replacement asks Rewrite to point the annotation with Identity at URL.
// Entries with an empty URL are ignored.
type Replacement struct {
	Identity Identity `json:"identity"`
	URL      string   `json:"url"`
}

// RewriteResult is the output of a successful Rewrite.
type RewriteResult struct {
	Document []byte
	Updated  int
}
