package convert_test

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
	"unicode"

	"studyshare/pkg/convert"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 60))
	for x := range 40 {
		for y := range 60 {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func docx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func textPDF(t *testing.T, pages ...string) []byte {
	t.Helper()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for _, p := range pages {
		pdf.AddPage()
		pdf.Cell(0, 10, p)
	}
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	return buf.Bytes()
}

func TestImagesToPDF(t *testing.T) {
	out, err := convert.ImagesToPDF([][]byte{
		pngImage(t, color.White),
		pngImage(t, color.Black),
		pngImage(t, color.White),
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	n, err := convert.PageCount(out)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = convert.ImagesToPDF(nil)
	require.Error(t, err)
}

func TestSamplePDF(t *testing.T) {
	in := textPDF(t, "one", "two", "three", "four")

	sample, err := convert.SamplePDF(in, 2)
	require.NoError(t, err)
	n, err := convert.PageCount(sample)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// short documents pass through
	same, err := convert.SamplePDF(in, 10)
	require.NoError(t, err)
	require.Equal(t, in, same)

	_, err = convert.SamplePDF(in, 0)
	require.Error(t, err)
}

func TestPageCount_invalid(t *testing.T) {
	_, err := convert.PageCount([]byte("not a pdf"))
	require.Error(t, err)
}

func TestExtractText(t *testing.T) {
	in := textPDF(t, "Combined Mathematics 2019", "Second page")

	text, err := convert.ExtractText(in, 1, 0)
	require.NoError(t, err)
	require.Contains(t, text, "Mathematics")
	require.NotContains(t, text, "Second")

	text, err = convert.ExtractText(in, 0, 8)
	require.NoError(t, err)
	require.LessOrEqual(t, len([]rune(text)), 8)

	_, err = convert.ExtractText([]byte("garbage"), 1, 100)
	require.Error(t, err)
}

func TestDocxParagraphs(t *testing.T) {
	paragraphs, err := convert.DocxParagraphs(docx(t,
		`<w:p><w:r><w:t>Grade 11 </w:t></w:r><w:r><w:t>History</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Lesson</w:t><w:tab/><w:t>1</w:t></w:r></w:p>`+
			`<w:p/>`), 0)
	require.NoError(t, err)
	require.Equal(t, []string{"Grade 11 History", "Lesson\t1", ""}, paragraphs)

	_, err = convert.DocxParagraphs([]byte("not a zip"), 0)
	require.Error(t, err)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err = zw.Create("other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	_, err = convert.DocxParagraphs(buf.Bytes(), 0)
	require.ErrorContains(t, err, "word/document.xml")
}

func TestDocxToPDF(t *testing.T) {
	var body strings.Builder
	for range 120 {
		body.WriteString(`<w:p><w:r><w:t>Photosynthesis converts light energy into chemical energy.</w:t></w:r></w:p>`)
	}

	out, err := convert.DocxToPDF(docx(t, body.String()), convert.DocxOptions{})
	require.NoError(t, err)
	n, err := convert.PageCount(out)
	require.NoError(t, err)
	require.Greater(t, n, 1)

	_, err = convert.DocxToPDF(docx(t, `<w:p/>`), convert.DocxOptions{})
	require.ErrorContains(t, err, "no text")
}

func TestDocxParagraphs_TooLarge(t *testing.T) {
	body := strings.Repeat(`<w:p><w:r><w:t>aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa</w:t></w:r></w:p>`, 1<<15)
	in := docx(t, body)
	require.Less(t, len(in), 64<<10)

	_, err := convert.DocxParagraphs(in, 1<<20)
	require.ErrorIs(t, err, convert.ErrTooLarge)

	paragraphs, err := convert.DocxParagraphs(in, 4<<20)
	require.NoError(t, err)
	require.Len(t, paragraphs, 1<<15)
}

func TestDocxParagraphs_UnderstatedSize(t *testing.T) {
	xmlBody := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		strings.Repeat(`<w:p><w:r><w:t>bbbbbbbbbbbbbbbb</w:t></w:r></w:p>`, 1<<14) +
		`</w:body></w:document>`)

	var deflated bytes.Buffer
	fw, err := flate.NewWriter(&deflated, flate.BestCompression)
	require.NoError(t, err)
	_, err = fw.Write(xmlBody)
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.CreateRaw(&zip.FileHeader{
		Name:               "word/document.xml",
		Method:             zip.Deflate,
		CRC32:              crc32.ChecksumIEEE(xmlBody),
		CompressedSize64:   uint64(deflated.Len()),
		UncompressedSize64: 100,
	})
	require.NoError(t, err)
	_, err = w.Write(deflated.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = convert.DocxParagraphs(buf.Bytes(), 64<<10)
	require.ErrorIs(t, err, zip.ErrFormat)
}

func TestDocxToPDF_Scripts(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "sinhala", text: "ගණිතය 2019 ප්‍රශ්න පත්‍රය"},
		{name: "tamil", text: "கணிதம் வினாத்தாள்"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := docx(t, `<w:p><w:r><w:t>Grade 11</w:t></w:r></w:p><w:p><w:r><w:t>`+tt.text+`</w:t></w:r></w:p>`)

			_, err := convert.DocxToPDF(in, convert.DocxOptions{})
			require.ErrorIs(t, err, convert.ErrUnsupportedScript)

			// a font for the other script does not help
			other := unicode.Tamil
			if tt.name == "tamil" {
				other = unicode.Sinhala
			}
			_, err = convert.DocxToPDF(in, convert.DocxOptions{
				Fonts: []convert.Font{{Family: "other", TTF: []byte("unused"), Script: other}},
			})
			require.ErrorIs(t, err, convert.ErrUnsupportedScript)
		})
	}
}

// notoFont loads a Noto font from the usual system location or skips the test.
func notoFont(t *testing.T, family, file string, script *unicode.RangeTable) convert.Font {
	t.Helper()
	for _, dir := range []string{"/usr/share/fonts/truetype/noto", "/usr/share/fonts/noto"} {
		f, err := convert.LoadFont(family, filepath.Join(dir, file), script)
		if err == nil {
			return f
		}
	}
	t.Skipf("%s not installed", file)

	return convert.Font{}
}

func TestDocxToPDF_ScriptFonts(t *testing.T) {
	fonts := []convert.Font{
		notoFont(t, "sinhala", "NotoSansSinhala-Regular.ttf", unicode.Sinhala),
		notoFont(t, "tamil", "NotoSansTamil-Regular.ttf", unicode.Tamil),
	}

	out, err := convert.DocxToPDF(docx(t,
		`<w:p><w:r><w:t>Combined Maths 2019</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>ගණිතය 2019 ප්‍රශ්න පත්‍රය</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>கணிதம் வினாத்தாள்</w:t></w:r></w:p>`), convert.DocxOptions{Fonts: fonts})
	require.NoError(t, err)
	n, err := convert.PageCount(out)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestLoadFont_Missing(t *testing.T) {
	_, err := convert.LoadFont("sinhala", filepath.Join(t.TempDir(), "missing.ttf"), unicode.Sinhala)
	require.ErrorContains(t, err, "sinhala font")
}
