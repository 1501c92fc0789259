package landing

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"golang.org/x/text/language/display"
)

// Document is a fully rendered landing page.
type Document string

// Bytes returns the UTF-8 encoding of the document.
func (d Document) Bytes() []byte {
	return []byte(d)
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// pageData holds the data passed to the page template.
type pageData struct {
	Content
	Lang          string
	AltLang       string
	ToAlternate   string
	ToDefault     string
	Stylesheet    template.CSS
	LogoIcon      template.HTML
	MockupIcon    template.HTML
	FontsURL      string
	DownloadURL   string
	RepositoryURL string
}

// Builder renders landing page content.
type Builder struct {
	Content Content
}

// NewBuilder creates a Builder for the ClaudeMD Viewer page.
func NewBuilder() *Builder {
	return &Builder{Content: DefaultContent()}
}

// Generate renders the built-in landing page.
func Generate() (Document, error) {
	return NewBuilder().Generate()
}

// Generate renders the page. Output depends only on b.Content.
func (b *Builder) Generate() (Document, error) {
	c := b.Content
	data := pageData{
		Content:       c,
		Lang:          c.Default.String(),
		AltLang:       c.Alternate.String(),
		ToAlternate:   c.ToggleFlags.JA + " " + display.Self.Name(c.Alternate),
		ToDefault:     c.ToggleFlags.EN + " " + display.Self.Name(c.Default),
		Stylesheet:    stylesheet,
		LogoIcon:      iconDocument,
		MockupIcon:    iconDocumentSmall,
		FontsURL:      FontsURL,
		DownloadURL:   DownloadURL,
		RepositoryURL: RepositoryURL,
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering landing page: %w", err)
	}
	return Document(buf.String()), nil
}

// Write stores doc at path, creating parent directories as needed and
// replacing any existing file.
func Write(doc Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
