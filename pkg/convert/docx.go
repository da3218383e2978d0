package convert

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/go-faster/errors"
	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

const (
	documentPart = "word/document.xml"

	// DefaultMaxTextBytes caps the uncompressed document part when no limit is set.
	DefaultMaxTextBytes = 32 << 20

	coreFamily = "Helvetica"
	fontSize   = 11
	lineHeight = 5.5
)

var (
	// ErrTooLarge is returned when the uncompressed document text exceeds its cap.
	ErrTooLarge = errors.New("document text is too large")
	// ErrUnsupportedScript is returned when a character has no configured font.
	ErrUnsupportedScript = errors.New("document uses a script with no font")
)

// Font is a TrueType font used for one script the core fonts cannot encode.
type Font struct {
	Family string
	TTF    []byte
	Script *unicode.RangeTable
}

// LoadFont reads a TrueType font for script from path.
func LoadFont(family, path string, script *unicode.RangeTable) (Font, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return Font{}, errors.Wrapf(err, "read %s font", family)
	}

	return Font{Family: family, TTF: ttf, Script: script}, nil
}

// DocxOptions configure DocxToPDF.
type DocxOptions struct {
	// Fonts typeset characters outside Windows-1252.
	Fonts []Font
	// MaxTextBytes caps the uncompressed document part. Zero means DefaultMaxTextBytes.
	MaxTextBytes int64
}

// DocxParagraphs reads the paragraph text of a .docx file. Formatting,
// images and tables are dropped; table cells come out as paragraphs.
// The document part may not inflate beyond maxBytes.
func DocxParagraphs(docx []byte, maxBytes int64) ([]string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxTextBytes
	}

	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	if err != nil {
		return nil, errors.Wrap(err, "open docx")
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f

			break
		}
	}
	if part == nil {
		return nil, errors.Errorf("docx has no %s", documentPart)
	}
	if part.UncompressedSize64 > uint64(maxBytes) {
		return nil, ErrTooLarge
	}

	rc, err := part.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open document part")
	}
	defer func() {
		_ = rc.Close()
	}()

	// archive/zip fails reads past the declared size, so the check above bounds the inflated text
	return parseParagraphs(rc)
}

func parseParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		cur        strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "parse document part")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				cur.WriteString("\t")
			case "br", "cr":
				cur.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, cur.String())
				cur.Reset()
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	if cur.Len() > 0 {
		paragraphs = append(paragraphs, cur.String())
	}

	return paragraphs, nil
}

// run is a stretch of text set in one font. An empty family is the core font.
type run struct {
	family string
	text   string
}

// fontFor picks the font for r. cur is kept for spaces and combining
// characters so that a script run is not split around them.
func fontFor(r rune, cur string, fonts []Font) (string, bool) {
	if cur != "" && (unicode.IsSpace(r) || unicode.Is(unicode.Inherited, r) || unicode.Is(unicode.Mn, r)) {
		return cur, true
	}
	for _, f := range fonts {
		if f.Script != nil && unicode.Is(f.Script, r) {
			return f.Family, true
		}
	}
	if _, ok := charmap.Windows1252.EncodeRune(r); ok {
		return "", true
	}

	return "", false
}

// splitRuns cuts text into runs per font. It fails on the first character
// no font can render.
func splitRuns(text string, fonts []Font) ([]run, error) {
	var (
		runs []run
		cur  strings.Builder
		fam  string
	)
	for _, r := range text {
		f, ok := fontFor(r, fam, fonts)
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedScript, "character %U", r)
		}
		if f != fam && cur.Len() > 0 {
			runs = append(runs, run{family: fam, text: cur.String()})
			cur.Reset()
		}
		fam = f
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		runs = append(runs, run{family: fam, text: cur.String()})
	}

	return runs, nil
}

// DocxToPDF typesets the paragraphs of a .docx file on A4 pages. Text in
// Windows-1252 uses the core font and anything else needs a matching
// entry in opts.Fonts, otherwise ErrUnsupportedScript is returned.
func DocxToPDF(docx []byte, opts DocxOptions) ([]byte, error) {
	paragraphs, err := DocxParagraphs(docx, opts.MaxTextBytes)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(strings.Join(paragraphs, "")) == "" {
		return nil, errors.New("docx has no text")
	}

	laid := make([][]run, len(paragraphs))
	used := make(map[string]bool)
	for i, p := range paragraphs {
		runs, err := splitRuns(strings.ReplaceAll(p, "\t", "    "), opts.Fonts)
		if err != nil {
			return nil, err
		}
		for _, r := range runs {
			used[r.family] = true
		}
		laid[i] = runs
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	for _, f := range opts.Fonts {
		if used[f.Family] {
			pdf.AddUTF8FontFromBytes(f.Family, "", f.TTF)
		}
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont(coreFamily, "", fontSize)
	pdf.AddPage()

	for _, runs := range laid {
		if len(runs) == 0 || strings.TrimSpace(joinRuns(runs)) == "" {
			pdf.Ln(5)

			continue
		}
		for _, r := range runs {
			if r.family == "" {
				pdf.SetFont(coreFamily, "", fontSize)
				pdf.Write(lineHeight, tr(r.text))

				continue
			}
			pdf.SetFont(r.family, "", fontSize)
			pdf.Write(lineHeight, r.text)
		}
		pdf.Ln(lineHeight + 2)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}

	return out.Bytes(), nil
}

func joinRuns(runs []run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.text)
	}

	return b.String()
}
