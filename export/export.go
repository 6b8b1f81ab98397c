// Package export turns report markup into a portable document, PDF by
// default with DOCX as a fallback, and persists it to the local document
// directory before anything is sent over the network.
package export

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"fieldreport/bizerror"

	"github.com/jung-kurt/gofpdf"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// GeneratedDocument is a report exported to disk. Content is kept in memory
// for the subsequent upload so the file never has to be read back.
type GeneratedDocument struct {
	Format   Format
	FileName string
	LocalURI string
	Content  []byte
}

var documentDir = "."

func Bootstrap(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create document dir %s: %w", dir, err)
	}
	documentDir = dir
	return nil
}

var ExportFunc = Export

// Export renders markup into the requested format and writes the result
// under the document directory. fileName carries no extension. Empty markup
// still yields a valid, blank document.
func Export(markup, fileName string, format Format) (*GeneratedDocument, error) {
	var content []byte
	var err error
	switch format {
	case FormatDOCX:
		// Word opens HTML shipped under its own extension; good enough for
		// the fallback path and it keeps the markup intact.
		content = []byte(markup)
	case FormatPDF:
		content, err = renderPDF(markup)
		if err != nil {
			return nil, bizerror.WrapExport(err)
		}
	default:
		return nil, bizerror.WrapExport(fmt.Errorf("unsupported format %q", format))
	}

	name := fileName + "." + string(format)
	path := filepath.Join(documentDir, name)
	if err := ioutil.WriteFile(path, content, 0644); err != nil {
		return nil, bizerror.WrapExport(err)
	}

	return &GeneratedDocument{
		Format:   format,
		FileName: name,
		LocalURI: "file://" + path,
		Content:  content,
	}, nil
}

const (
	pageMargin = 54
	lineHeight = 14
	imageWidth = 144
)

// renderPDF lays the condensed report text and embedded images onto US
// Letter pages. Compression stays off so the text remains inspectable.
func renderPDF(markup string) ([]byte, error) {
	lines, images := condense(markup)

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range lines {
		pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for i, img := range images {
		name := fmt.Sprintf("embedded_%d", i)
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
		pdf.ImageOptions(name, pageMargin, pdf.GetY()+lineHeight, imageWidth, 0, true, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
