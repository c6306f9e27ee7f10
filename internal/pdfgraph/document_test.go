package pdfgraph_test

import (
	"bytes"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/serroba/pdf-link-shortener/internal/pdfgraph"
	"github.com/serroba/pdf-link-shortener/internal/pdfgraph/pdftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singlePageDoc() []byte {
	return pdftest.New().
		Add(1, "<< /Type /Catalog /Pages 2 0 R >>").
		Add(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>").
		Add(3, pdftest.Page(2, "[4 0 R]")).
		Add(4, pdftest.URILink("https://example.com/one")).
		Add(5, "<< /Title (Quarterly Report) /Author (Ada) /CreationDate (D:20240131120000Z) >>").
		Root(1).
		Info(5).
		Bytes()
}

func encrypted(t *testing.T, userPW string) []byte {
	t.Helper()

	conf := model.NewAESConfiguration(userPW, "owner", 256)
	conf.ValidationMode = model.ValidationRelaxed

	var out bytes.Buffer
	require.NoError(t, api.Encrypt(bytes.NewReader(singlePageDoc()), &out, conf))

	return out.Bytes()
}

func TestLoad(t *testing.T) {
	t.Run("loads a well-formed document", func(t *testing.T) {
		doc, err := pdfgraph.Load(singlePageDoc())

		require.NoError(t, err)
		assert.Equal(t, 1, doc.PageCount())
	})

	t.Run("rejects encrypted documents", func(t *testing.T) {
		for name, userPW := range map[string]string{"empty user password": "", "user password": "secret"} {
			t.Run(name, func(t *testing.T) {
				_, err := pdfgraph.Load(encrypted(t, userPW))

				require.ErrorIs(t, err, pdfgraph.ErrEncrypted)
				assert.NotErrorIs(t, err, pdfgraph.ErrUnreadable)
			})
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		doc, err := pdfgraph.Load(nil)

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, pdfgraph.ErrUnreadable)
	})

	t.Run("rejects bytes that are not a pdf", func(t *testing.T) {
		doc, err := pdfgraph.Load([]byte("definitely not a pdf"))

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, pdfgraph.ErrUnreadable)
	})

	t.Run("does not modify the input buffer", func(t *testing.T) {
		data := singlePageDoc()
		original := append([]byte(nil), data...)

		_, err := pdfgraph.Load(data)

		require.NoError(t, err)
		assert.Equal(t, original, data)
	})
}

func TestDocument_Page(t *testing.T) {
	doc, err := pdfgraph.Load(singlePageDoc())
	require.NoError(t, err)

	t.Run("returns the page dictionary", func(t *testing.T) {
		page, err := doc.Page(1)

		require.NoError(t, err)

		typ, ok := page.Get("Type").AsName()
		require.True(t, ok)
		assert.Equal(t, "Page", typ.String())
	})

	t.Run("rejects out of range pages", func(t *testing.T) {
		_, err := doc.Page(0)
		assert.Error(t, err)

		_, err = doc.Page(2)
		assert.Error(t, err)
	})
}

func TestDocument_Resolve(t *testing.T) {
	doc, err := pdfgraph.Load(singlePageDoc())
	require.NoError(t, err)

	page, err := doc.Page(1)
	require.NoError(t, err)

	annots, ok := doc.ResolveArray(page.Get("Annots"))
	require.True(t, ok)
	require.Equal(t, 1, annots.Len())

	elem := annots.At(0)
	assert.Equal(t, pdfgraph.KindRef, elem.Kind())

	ref, ok := elem.AsRef()
	require.True(t, ok)

	num, gen := ref.Identity()
	assert.Equal(t, 4, num)
	assert.Equal(t, 0, gen)

	annot, ok := doc.ResolveDict(elem)
	require.True(t, ok)

	action, ok := doc.ResolveDict(annot.Get("A"))
	require.True(t, ok)

	uri, ok := action.Get("URI").AsString()
	require.True(t, ok)

	text, err := uri.Text()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/one", text)
}

func TestValue_WrongShape(t *testing.T) {
	doc, err := pdfgraph.Load(singlePageDoc())
	require.NoError(t, err)

	page, err := doc.Page(1)
	require.NoError(t, err)

	typ := page.Get("Type")

	_, ok := typ.AsDict()
	assert.False(t, ok)

	_, ok = typ.AsArray()
	assert.False(t, ok)

	_, ok = typ.AsRef()
	assert.False(t, ok)

	_, ok = typ.AsString()
	assert.False(t, ok)

	missing, present := page.Lookup("NoSuchKey")
	assert.False(t, present)
	assert.Equal(t, pdfgraph.KindNull, missing.Kind())
	assert.Equal(t, pdfgraph.Value{}, page.Get("NoSuchKey"))
}

func TestDict_SetString(t *testing.T) {
	doc, err := pdfgraph.Load(singlePageDoc())
	require.NoError(t, err)

	page, err := doc.Page(1)
	require.NoError(t, err)

	annots, _ := doc.ResolveArray(page.Get("Annots"))
	annot, _ := doc.ResolveDict(annots.At(0))
	action, _ := doc.ResolveDict(annot.Get("A"))

	require.NoError(t, action.SetString("URI", "https://short.example/(x)"))

	out, err := doc.Bytes()
	require.NoError(t, err)

	reloaded, err := pdfgraph.Load(out)
	require.NoError(t, err)

	page, err = reloaded.Page(1)
	require.NoError(t, err)

	annots, _ = reloaded.ResolveArray(page.Get("Annots"))
	annot, _ = reloaded.ResolveDict(annots.At(0))
	action, _ = reloaded.ResolveDict(annot.Get("A"))

	uri, ok := action.Get("URI").AsString()
	require.True(t, ok)

	text, err := uri.Text()
	require.NoError(t, err)
	assert.Equal(t, "https://short.example/(x)", text)
}

func TestDict_SetStringOnZeroDict(t *testing.T) {
	err := pdfgraph.Dict{}.SetString("URI", "https://example.com")

	assert.ErrorIs(t, err, pdfgraph.ErrNilDict)
}

func TestDocument_Info(t *testing.T) {
	doc, err := pdfgraph.Load(singlePageDoc())
	require.NoError(t, err)

	info, ok := doc.Info()
	require.True(t, ok)

	title, ok := info.Get("Title").AsString()
	require.True(t, ok)

	text, err := title.Text()
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Report", text)
}

func TestParseDate(t *testing.T) {
	ts, ok := pdfgraph.ParseDate("D:20240131120000Z")

	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 31, ts.Day())

	_, ok = pdfgraph.ParseDate("yesterday")
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "dict", pdfgraph.KindDict.String())
	assert.Equal(t, "ref", pdfgraph.KindRef.String())
	assert.Equal(t, "Kind(42)", pdfgraph.Kind(42).String())
}
