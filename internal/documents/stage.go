package documents

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"studyshare/pkg/convert"
	"studyshare/pkg/serrors"

	"github.com/gabriel-vasile/mimetype"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

type fileKind int

const (
	kindUnsupported fileKind = iota
	kindPDF
	kindDOCX
	kindImage
)

func (k fileKind) String() string {
	switch k {
	case kindPDF:
		return "pdf"
	case kindDOCX:
		return "docx"
	case kindImage:
		return "image"
	default:
		return "unsupported"
	}
}

func detect(data []byte) (fileKind, string) {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is(mimePDF):
		return kindPDF, mt.String()
	case mt.Is(mimeDOCX):
		return kindDOCX, mt.String()
	case mt.Is(mimeJPEG), mt.Is(mimePNG):
		return kindImage, mt.String()
	default:
		return kindUnsupported, mt.String()
	}
}

// File is a single submitted file.
type File struct {
	Name string
	Data []byte
}

// Staged is a submission converted to a single PDF.
type Staged struct {
	PDF []byte
	// FileName is the download name of the PDF.
	FileName string
	// SourceKind is what was submitted: pdf, docx or image.
	SourceKind string
	Pages      int
}

// StageOptions configure Stage.
type StageOptions struct {
	// MaxBytes caps the total size of the files. Zero disables the check.
	MaxBytes int64
	Docx     convert.DocxOptions
}

// Stage validates a submission and converts it to one PDF. Accepted is a
// single PDF, a single DOCX or one or more JPEG/PNG images, which become one
// page each in the submitted order.
func Stage(files []File, opts StageOptions) (*Staged, error) {
	maxBytes := opts.MaxBytes
	if len(files) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no files submitted")
	}

	var (
		total int64
		kind  = kindUnsupported
	)
	for i, f := range files {
		if len(f.Data) == 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "file %q is empty", f.Name)
		}
		total += int64(len(f.Data))
		if maxBytes > 0 && total > maxBytes {
			return nil, serrors.With(serrors.ErrBadRequest, "upload exceeds %d MB", maxBytes>>20)
		}

		k, mt := detect(f.Data)
		if k == kindUnsupported {
			return nil, serrors.With(serrors.ErrBadRequest,
				"file %q has unsupported type %s, use PDF, DOCX, JPEG or PNG", f.Name, mt)
		}
		if i > 0 && k != kind {
			return nil, serrors.With(serrors.ErrBadRequest, "cannot mix %s and %s files in one upload", kind, k)
		}
		kind = k
	}
	if kind != kindImage && len(files) > 1 {
		return nil, serrors.With(serrors.ErrBadRequest, "only one %s file can be uploaded at a time", kind)
	}

	staged := &Staged{SourceKind: kind.String(), FileName: pdfName(files[0].Name)}
	switch kind {
	case kindPDF:
		staged.PDF = files[0].Data
	case kindDOCX:
		pdf, err := convert.DocxToPDF(files[0].Data, opts.Docx)
		switch {
		case errors.Is(err, convert.ErrUnsupportedScript):
			return nil, serrors.Wrap(serrors.ErrBadRequest, err,
				"document uses a script that cannot be converted, upload it as a PDF instead")
		case errors.Is(err, convert.ErrTooLarge):
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "document text is too large")
		case err != nil:
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not convert document")
		}
		staged.PDF = pdf
	case kindImage:
		images := make([][]byte, 0, len(files))
		for _, f := range files {
			images = append(images, f.Data)
		}
		pdf, err := convert.ImagesToPDF(images)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not convert images")
		}
		staged.PDF = pdf
	default:
		return nil, fmt.Errorf("unexpected file kind %d", kind)
	}

	pages, err := convert.PageCount(staged.PDF)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read pdf")
	}
	staged.Pages = pages

	return staged, nil
}

// pdfName swaps the extension of name for .pdf.
func pdfName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "document"
	}

	return base + ".pdf"
}
