package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"resumelens/internal/errors"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("writing zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>john.doe@example.com</w:t></w:r></w:p>
    <w:p><w:r><w:t>EXPERIENCE</w:t></w:r><w:r><w:br/></w:r><w:r><w:t>Backend Developer at Acme</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.doc", true},
		{"resume.txt", false},
		{"resume", false},
		{"archive.tar.gz", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.filename); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestTextDocx(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)
	text, err := Text("resume.docx", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"John Doe", "john.doe@example.com", "Backend Developer at Acme"} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text missing %q:\n%s", want, text)
		}
	}
	// br inside the paragraph should split the heading from the body line
	if !strings.Contains(text, "EXPERIENCE\n") {
		t.Errorf("expected newline after EXPERIENCE heading:\n%s", text)
	}
}

func TestTextErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantCode string
	}{
		{
			name:     "unsupported extension",
			filename: "resume.txt",
			data:     []byte("plain text"),
			wantCode: errors.ErrCodeUnsupportedFormat,
		},
		{
			name:     "no extension",
			filename: "resume",
			data:     []byte("plain text"),
			wantCode: errors.ErrCodeUnsupportedFormat,
		},
		{
			name:     "corrupt pdf",
			filename: "resume.pdf",
			data:     []byte("this is not a pdf"),
			wantCode: errors.ErrCodeDocumentParse,
		},
		{
			name:     "corrupt docx",
			filename: "resume.docx",
			data:     []byte("this is not a zip archive"),
			wantCode: errors.ErrCodeDocumentParse,
		},
		{
			name:     "empty docx",
			filename: "resume.docx",
			data:     nil,
			wantCode: errors.ErrCodeDocumentParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Text(tt.filename, tt.data)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsCode(err, tt.wantCode) {
				t.Errorf("expected code %s, got %s (%v)", tt.wantCode, errors.CodeOf(err), err)
			}
		})
	}
}

func TestTextEmptyDocument(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>   </w:t></w:r></w:p></w:body></w:document>`)
	_, err := Text("resume.docx", data)
	if err == nil {
		t.Fatal("expected error for whitespace-only document")
	}
	if !errors.IsCode(err, errors.ErrCodeEmptyExtractedText) {
		t.Errorf("expected code %s, got %s", errors.ErrCodeEmptyExtractedText, errors.CodeOf(err))
	}
}

func TestTextMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	if _, err := f.Write([]byte("<styles/>")); err != nil {
		t.Fatalf("writing zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}

	_, err = Text("resume.docx", buf.Bytes())
	if err == nil {
		t.Fatal("expected error for archive without document.xml")
	}
	if !errors.IsCode(err, errors.ErrCodeDocumentParse) {
		t.Errorf("expected code %s, got %s", errors.ErrCodeDocumentParse, errors.CodeOf(err))
	}
}
