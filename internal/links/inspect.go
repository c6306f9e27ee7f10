package links

import (
	"strings"
	"time"

	"github.com/serroba/pdf-link-shortener/internal/pdfgraph"
)

// DocumentInfo summarizes a loaded document and its links.
type DocumentInfo struct {
	PageCount    int              `json:"pageCount"`
	Title        string           `json:"title"`
	Author       string           `json:"author"`
	Subject      string           `json:"subject"`
	Keywords     []string         `json:"keywords"`
	Creator      string           `json:"creator"`
	Producer     string           `json:"producer"`
	CreationDate string           `json:"creationDate"`
	ModDate      string           `json:"modificationDate"`
	Links        []DiscoveredLink `json:"links"`
}

// Inspect loads data once and returns its metadata and links.
func Inspect(data []byte) (*DocumentInfo, error) {
	doc, err := pdfgraph.Load(data)
	if err != nil {
		return nil, err
	}

	report := scanDocument(doc)

	info := &DocumentInfo{
		PageCount: report.PageCount,
		Keywords:  []string{},
		Links:     report.Links,
	}

	if info.Links == nil {
		info.Links = []DiscoveredLink{}
	}

	dict, ok := doc.Info()
	if !ok {
		return info, nil
	}

	info.Title = infoText(doc, dict, "Title")
	info.Author = infoText(doc, dict, "Author")
	info.Subject = infoText(doc, dict, "Subject")
	info.Creator = infoText(doc, dict, "Creator")
	info.Producer = infoText(doc, dict, "Producer")
	info.CreationDate = infoDate(doc, dict, "CreationDate")
	info.ModDate = infoDate(doc, dict, "ModDate")

	if kw := infoText(doc, dict, "Keywords"); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				info.Keywords = append(info.Keywords, k)
			}
		}
	}

	return info, nil
}

func infoText(doc *pdfgraph.Document, dict pdfgraph.Dict, key string) string {
	v, err := doc.Resolve(dict.Get(key))
	if err != nil {
		return ""
	}

	s, ok := v.AsString()
	if !ok {
		return ""
	}

	text, err := s.Text()
	if err != nil {
		return ""
	}

	return text
}

func infoDate(doc *pdfgraph.Document, dict pdfgraph.Dict, key string) string {
	raw := infoText(doc, dict, key)
	if raw == "" {
		return ""
	}

	ts, ok := pdfgraph.ParseDate(raw)
	if !ok {
		return ""
	}

	return ts.UTC().Format(time.RFC3339)
}
