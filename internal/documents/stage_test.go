package documents_test

import (
	"os"
	"path/filepath"
	"strings"
	"studyshare/internal/config"
	"studyshare/internal/documents"
	"studyshare/pkg/convert"
	"studyshare/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStage_PDF(t *testing.T) {
	pdf := textPDF(t, "one", "two")

	staged, err := documents.Stage([]documents.File{{Name: "C:\\papers\\maths 2019.PDF", Data: pdf}}, documents.StageOptions{})
	require.NoError(t, err)
	require.Equal(t, pdf, staged.PDF)
	require.Equal(t, 2, staged.Pages)
	require.Equal(t, "pdf", staged.SourceKind)
	require.Equal(t, "maths 2019.pdf", staged.FileName)
}

func TestStage_Images(t *testing.T) {
	img := pngImage(t)

	staged, err := documents.Stage([]documents.File{
		{Name: "page1.png", Data: img},
		{Name: "page2.png", Data: img},
		{Name: "page3.png", Data: img},
	}, documents.StageOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, staged.Pages)
	require.Equal(t, "image", staged.SourceKind)
	require.Equal(t, "page1.pdf", staged.FileName)
}

func TestStage_Docx(t *testing.T) {
	staged, err := documents.Stage([]documents.File{{Name: "notes.docx", Data: docxFile(t, "Photosynthesis")}}, documents.StageOptions{})
	require.NoError(t, err)
	require.Equal(t, "docx", staged.SourceKind)
	require.Equal(t, "notes.pdf", staged.FileName)
	require.GreaterOrEqual(t, staged.Pages, 1)
}

func TestStage_DocxScripts(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "sinhala", text: "ගණිතය 2019 ප්‍රශ්න පත්‍රය"},
		{name: "tamil", text: "கணிதம் வினாத்தாள்"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := documents.Stage([]documents.File{{Name: "paper.docx", Data: docxFile(t, tt.text)}},
				documents.StageOptions{})
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.ErrorIs(t, err, convert.ErrUnsupportedScript)

			var sErr *serrors.Error
			require.ErrorAs(t, err, &sErr)
			require.Contains(t, sErr.Message(), "upload it as a PDF")
		})
	}
}

func TestStage_DocxTextTooLarge(t *testing.T) {
	_, err := documents.Stage([]documents.File{{Name: "big.docx", Data: docxFile(t, strings.Repeat("a", 4096))}},
		documents.StageOptions{Docx: convert.DocxOptions{MaxTextBytes: 1024}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorIs(t, err, convert.ErrTooLarge)
}

func TestStage_Rejects(t *testing.T) {
	pdf := textPDF(t, "one")
	img := pngImage(t)

	tests := []struct {
		name     string
		files    []documents.File
		maxBytes int64
	}{
		{name: "nothing"},
		{name: "empty file", files: []documents.File{{Name: "a.pdf"}}},
		{name: "unsupported", files: []documents.File{{Name: "a.txt", Data: []byte("just some text")}}},
		{name: "mixed", files: []documents.File{{Name: "a.pdf", Data: pdf}, {Name: "b.png", Data: img}}},
		{name: "two pdfs", files: []documents.File{{Name: "a.pdf", Data: pdf}, {Name: "b.pdf", Data: pdf}}},
		{name: "too large", files: []documents.File{{Name: "a.pdf", Data: pdf}}, maxBytes: 10},
		{name: "broken pdf", files: []documents.File{{Name: "a.pdf", Data: []byte("%PDF-1.4\nbroken")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := documents.Stage(tt.files, documents.StageOptions{MaxBytes: tt.maxBytes})
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestLoadFonts(t *testing.T) {
	dir := t.TempDir()
	sinhala := filepath.Join(dir, "sinhala.ttf")
	require.NoError(t, os.WriteFile(sinhala, []byte("ttf"), 0o600))

	cfg := &config.Config{}
	fonts, err := documents.LoadFonts(cfg)
	require.NoError(t, err)
	require.Empty(t, fonts)

	cfg.Conversion.SinhalaFont = sinhala
	fonts, err = documents.LoadFonts(cfg)
	require.NoError(t, err)
	require.Len(t, fonts, 1)
	require.Equal(t, "sinhala", fonts[0].Family)
	require.Equal(t, []byte("ttf"), fonts[0].TTF)

	cfg.Conversion.TamilFont = filepath.Join(dir, "missing.ttf")
	_, err = documents.LoadFonts(cfg)
	require.ErrorContains(t, err, "tamil font")
}
