package fichegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBase builds the base file name for a fiche, e.g.
// "Fiche_Les_5_sens_CP".
func FileBase(f *Fiche) string {
	base := "Fiche"
	if f.Request.Topic != "" {
		base += "_" + strings.ReplaceAll(f.Request.Topic, " ", "_")
	}
	if f.Request.ClassLevel != "" {
		base += "_" + strings.ReplaceAll(f.Request.ClassLevel, " ", "_")
	}
	return base
}

// SaveToFiles writes the fiche markdown and, when provided, the rendered PDF
// into outputDir.
func SaveToFiles(f *Fiche, outputDir string, pdfBytes []byte) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	base := FileBase(f)
	mdPath := filepath.Join(outputDir, base+".md")
	if err := os.WriteFile(mdPath, []byte(f.Content), 0o644); err != nil {
		return fmt.Errorf("saving fiche markdown: %w", err)
	}

	if len(pdfBytes) > 0 {
		pdfPath := filepath.Join(outputDir, base+".pdf")
		if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("saving fiche pdf: %w", err)
		}
	}
	return nil
}
