// Package pdftest assembles small, well-formed PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"slices"
)

// Builder collects indirect objects (generation 0) and writes them with a
// classic cross-reference table.
type Builder struct {
	objects map[int]string
	root    int
	info    int
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{objects: make(map[int]string)}
}

// Add sets the body of object num, e.g. "<< /Type /Catalog /Pages 2 0 R >>".
func (b *Builder) Add(num int, body string) *Builder {
	b.objects[num] = body

	return b
}

// Root marks object num as the document catalog.
func (b *Builder) Root(num int) *Builder {
	b.root = num

	return b
}

// Info marks object num as the document information dictionary.
func (b *Builder) Info(num int) *Builder {
	b.info = num

	return b
}

// Bytes renders the file.
func (b *Builder) Bytes() []byte {
	var buf bytes.Buffer

	buf.WriteString("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")

	nums := make([]int, 0, len(b.objects))
	for n := range b.objects {
		nums = append(nums, n)
	}

	slices.Sort(nums)

	size := 1
	if len(nums) > 0 {
		size = nums[len(nums)-1] + 1
	}

	offsets := make(map[int]int, len(nums))

	for _, n := range nums {
		offsets[n] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", n, b.objects[n])
	}

	xref := buf.Len()

	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f\r\n")

	for n := 1; n < size; n++ {
		if off, ok := offsets[n]; ok {
			fmt.Fprintf(&buf, "%010d 00000 n\r\n", off)
		} else {
			buf.WriteString("0000000000 00000 f\r\n")
		}
	}

	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R", size, b.root)

	if b.info != 0 {
		fmt.Fprintf(&buf, " /Info %d 0 R", b.info)
	}

	fmt.Fprintf(&buf, " >>\nstartxref\n%d\n%%%%EOF\n", xref)

	return buf.Bytes()
}

// Page returns a page dictionary body with the given parent and annotation array.
// An empty annots string omits the /Annots entry.
func Page(parent int, annots string) string {
	if annots == "" {
		return fmt.Sprintf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << >> >>", parent)
	}

	return fmt.Sprintf(
		"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << >> /Annots %s >>",
		parent, annots,
	)
}

// URILink returns a link annotation body whose action opens uri.
func URILink(uri string) string {
	return fmt.Sprintf(
		"<< /Type /Annot /Subtype /Link /Rect [72 700 300 720] /Border [0 0 0] /A << /S /URI /URI (%s) >> >>",
		uri,
	)
}

// TextNote returns a non-link annotation body.
func TextNote(contents string) string {
	return fmt.Sprintf(
		"<< /Type /Annot /Subtype /Text /Rect [72 600 92 620] /Contents (%s) >>",
		contents,
	)
}
