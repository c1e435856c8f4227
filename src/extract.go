package fichegen

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractTableOfContents pulls the text layer of the first maxPages pages of
// a syllabus PDF. Scanned, image-only PDFs have no text layer and yield an
// empty string.
func ExtractTableOfContents(r io.ReaderAt, size int64, maxPages int) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("opening syllabus: %w", err)
	}

	n := reader.NumPage()
	if maxPages < n {
		n = maxPages
	}

	fonts := make(map[string]*pdf.Font)
	var b strings.Builder
	for i := 1; i <= n; i++ {
		text, err := extractPageText(reader, fonts, i)
		if err != nil {
			return "", fmt.Errorf("reading syllabus page %d: %w", i, err)
		}
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}
	return b.String(), nil
}

// ExtractLessonText pulls the text of the given pages. Out-of-range page
// numbers are skipped with a log notice; the model occasionally points past
// the end of the book.
func ExtractLessonText(r io.ReaderAt, size int64, pages []int) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("opening syllabus: %w", err)
	}

	fonts := make(map[string]*pdf.Font)
	var b strings.Builder
	for _, pageNum := range pages {
		if pageNum < 1 || pageNum > reader.NumPage() {
			log.Printf("lesson page %d out of bounds (syllabus has %d pages)", pageNum, reader.NumPage())
			continue
		}
		text, err := extractPageText(reader, fonts, pageNum)
		if err != nil {
			return "", fmt.Errorf("reading syllabus page %d: %w", pageNum, err)
		}
		if text != "" {
			fmt.Fprintf(&b, "\n\n--- TEXTE DE LA PAGE %d ---\n\n%s", pageNum, text)
		}
	}
	return b.String(), nil
}

func extractPageText(reader *pdf.Reader, fonts map[string]*pdf.Font, pageNum int) (string, error) {
	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}
	for _, name := range page.Fonts() {
		if _, ok := fonts[name]; !ok {
			font := page.Font(name)
			fonts[name] = &font
		}
	}
	text, err := page.GetPlainText(fonts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
