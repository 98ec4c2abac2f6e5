// Package extract pulls plain text out of uploaded resume documents.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"resumelens/internal/errors"
)

// MaxDocumentSize is the largest upload accepted for extraction.
const MaxDocumentSize = 10 << 20 // 10 MiB

// SupportedExtensions lists the file extensions the extractor handles.
var SupportedExtensions = []string{".pdf", ".docx", ".doc"}

// Supported reports whether the filename's extension can be extracted.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Text extracts plain text from an in-memory document, dispatching on
// the filename's extension. The result is trimmed; a document that
// yields only whitespace is an error.
func Text(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx", ".doc":
		text, err = extractDOCX(data)
	default:
		return "", errors.NewValidationError(
			errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported file format: %s", ext),
			nil,
		).WithContext("filename", filename)
	}
	if err != nil {
		return "", errors.NewProcessingError(
			errors.ErrCodeDocumentParse,
			fmt.Sprintf("failed to parse %s document", strings.TrimPrefix(ext, ".")),
			err,
		).WithContext("filename", filename)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.NewProcessingError(
			errors.ErrCodeEmptyExtractedText,
			"document contained no extractable text",
			nil,
		).WithContext("filename", filename)
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty document")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return collectDocumentText(rc)
}

// collectDocumentText walks the WordprocessingML stream, keeping
// character data and inserting newlines at paragraph and line breaks.
func collectDocumentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String(), nil
}
