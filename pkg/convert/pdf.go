package convert

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-faster/errors"
	pdftext "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once //nolint: gochecknoglobals

// conf returns a fresh pdfcpu configuration. pdfcpu would otherwise create
// a config directory under the user's home on first use.
func conf() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)

	c := model.NewDefaultConfiguration()
	c.ValidationMode = model.ValidationRelaxed

	return c
}

// PageCount returns the number of pages of a PDF.
func PageCount(pdf []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(pdf), conf())
	if err != nil {
		return 0, errors.Wrap(err, "count pages")
	}

	return n, nil
}

// SamplePDF keeps the first pages of a PDF. The input is returned as is when
// it has no more than pages pages.
func SamplePDF(pdf []byte, pages int) ([]byte, error) {
	if pages <= 0 {
		return nil, errors.New("sample needs at least one page")
	}

	total, err := PageCount(pdf)
	if err != nil {
		return nil, err
	}
	if total <= pages {
		return pdf, nil
	}

	var out bytes.Buffer
	if err := api.Trim(bytes.NewReader(pdf), &out, []string{fmt.Sprintf("1-%d", pages)}, conf()); err != nil {
		return nil, errors.Wrap(err, "trim pdf")
	}

	return out.Bytes(), nil
}

// ImagesToPDF places every image on its own page, in order.
func ImagesToPDF(images [][]byte) ([]byte, error) {
	if len(images) == 0 {
		return nil, errors.New("no images")
	}

	readers := make([]io.Reader, 0, len(images))
	for _, img := range images {
		readers = append(readers, bytes.NewReader(img))
	}

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, readers, pdfcpu.DefaultImportConfig(), conf()); err != nil {
		return nil, errors.Wrap(err, "import images")
	}

	return out.Bytes(), nil
}

// ExtractText returns the text layer of the first maxPages pages, cut at
// maxChars runes. Scanned documents without a text layer yield "".
func ExtractText(pdf []byte, maxPages, maxChars int) (text string, err error) {
	// the parser panics on some malformed files
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("extract text: %v", p)
		}
	}()

	r, err := pdftext.NewReader(bytes.NewReader(pdf), int64(len(pdf)))
	if err != nil {
		return "", errors.Wrap(err, "open pdf")
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage() && (maxPages <= 0 || i <= maxPages); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		t, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(strings.TrimSpace(t))
		sb.WriteString("\n\n")
		if maxChars > 0 && utf8.RuneCountInString(sb.String()) >= maxChars {
			break
		}
	}

	return truncate(strings.TrimSpace(sb.String()), maxChars), nil
}

func truncate(s string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(s) <= maxChars {
		return s
	}

	return string([]rune(s)[:maxChars])
}
