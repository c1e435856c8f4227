// Package fichecompiler lays out fiche markup produced by a language model
// into a styled, paginated PDF. Input is line-oriented: "## " section
// headings, "### "/"#### " phase headings with an optional duration
// annotation, "- "/"* " bullets, recognized "Label: value" fields and plain
// paragraphs. The output is the finished PDF as a byte slice.
package fichecompiler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// FicheCompiler handles one render pass. It keeps mutable cursor and phase
// state, so an instance must not be shared between goroutines; create one
// per render.
type FicheCompiler struct {
	cfg   RenderConfig
	pdf   *gofpdf.Fpdf
	theme Theme

	fontFamily string
	translate  func(string) string

	pageTitle      string
	phase          PhaseState
	suppressHeader bool
	warnings       []string
}

// NewFicheCompiler validates the configuration and prepares a single-use
// compiler. An unknown theme name falls back to the default theme; invalid
// page geometry is fatal.
func NewFicheCompiler(cfg RenderConfig) (*FicheCompiler, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &FicheCompiler{
		cfg:   cfg,
		theme: ThemeByName(cfg.Theme),
	}
	c.pageTitle = "Fiche de Révision"
	if cfg.DocKind == DocTeacher {
		c.pageTitle = "Fiche Pédagogique"
	}
	c.pdf = c.newDoc()
	c.loadFonts()
	return c, nil
}

func (c *FicheCompiler) newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New(c.cfg.Orientation, "mm", c.cfg.PageFormat, "")
	pdf.SetLeftMargin(c.cfg.Margins.Left)
	pdf.SetRightMargin(c.cfg.Margins.Right)
	pdf.SetTopMargin(c.cfg.Margins.Top)
	pdf.SetAutoPageBreak(true, 15)
	if !c.cfg.CreationDate.IsZero() {
		pdf.SetCreationDate(c.cfg.CreationDate)
	}
	return pdf
}

// loadFonts tries the DejaVu UTF-8 fonts and downgrades to the Arial core
// font when they are unavailable. The downgrade is advisory only: rendering
// proceeds with cp1252 text coverage.
func (c *FicheCompiler) loadFonts() {
	regular := filepath.Join(c.cfg.FontDir, "DejaVuSans.ttf")
	bold := filepath.Join(c.cfg.FontDir, "DejaVuSans-Bold.ttf")
	if fileExists(regular) && fileExists(bold) {
		c.pdf.AddUTF8Font("DejaVu", "", regular)
		c.pdf.AddUTF8Font("DejaVu", "B", bold)
		if !c.pdf.Err() {
			c.fontFamily = "DejaVu"
			c.translate = func(s string) string { return s }
			return
		}
		// A bad font file poisons the document error state; start over
		// on a fresh document before falling back.
		c.warnings = append(c.warnings, fmt.Sprintf("unusable DejaVu fonts in %s: %v", c.cfg.FontDir, c.pdf.Error()))
		c.pdf = c.newDoc()
	} else {
		c.warnings = append(c.warnings, fmt.Sprintf("DejaVu fonts not found in %s; falling back to Arial (limited unicode)", c.cfg.FontDir))
	}
	c.fontFamily = "Arial"
	c.translate = c.pdf.UnicodeTranslatorFromDescriptor("")
}

// Warnings reports the non-fatal degradations of this render pass, such as a
// missing font asset.
func (c *FicheCompiler) Warnings() []string { return c.warnings }

// ThemeName reports the theme actually in effect after fallback.
func (c *FicheCompiler) ThemeName() string { return c.theme.Name() }

// Render feeds the markup through the line classifier, draws every line
// under the active theme and returns the finished PDF. The compiler must not
// be reused after Render returns.
func (c *FicheCompiler) Render(content string) ([]byte, error) {
	c.pdf.SetHeaderFunc(func() {
		if c.suppressHeader {
			return
		}
		c.theme.PageHeader(c)
		if c.cfg.WatermarkText != "" {
			c.writeWatermark()
		}
	})
	c.pdf.SetFooterFunc(func() {
		c.pdf.SetY(-12)
		size := c.cfg.BaseFontSize * 0.7
		if size < 8 {
			size = 8
		}
		c.setFont("", size)
		c.pdf.SetTextColor(130, 130, 130)
		c.pdf.CellFormat(0, 8, c.tr(fmt.Sprintf("Page %d", c.pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	if c.cfg.ShowCover {
		c.addCoverPage()
	}
	c.pdf.AddPage()
	c.phase.Reset()

	for _, raw := range strings.Split(content, "\n") {
		c.writeLine(ClassifyLine(raw))
	}

	if c.pdf.Err() {
		return nil, fmt.Errorf("rendering fiche: %w", c.pdf.Error())
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalizing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *FicheCompiler) writeLine(cl ClassifiedLine) {
	switch cl.Kind {
	case LineBlank:
		c.pdf.Ln(1)
	case LineSection:
		c.phase.Reset()
		c.theme.SectionHeading(c, cl.Text)
	case LinePhase:
		c.phase.Start(cl.Minutes)
		c.theme.PhaseHeading(c, cl.Text, cl.Minutes)
	case LineBullet:
		c.theme.Bullet(c, cl.Text)
	case LineKeyValue:
		c.theme.KeyValue(c, cl.Label, cl.Value)
	default:
		c.writeParagraph(cl.Text)
	}
}

// addCoverPage emits the cover with the per-page header suppressed. The
// following content page gets the normal header again.
func (c *FicheCompiler) addCoverPage() {
	c.suppressHeader = true
	c.pdf.AddPage()
	c.suppressHeader = false

	p := c.theme.Palette()
	c.textColor(p.Primary)
	c.setFont("B", c.cfg.BaseFontSize*2.2)
	c.pdf.Ln(40)
	c.centeredLine(12, c.pageTitle)

	c.setFont("", c.cfg.BaseFontSize*1.1)
	c.textColor(p.Text)
	c.pdf.Ln(6)
	rows := []struct{ label, value string }{
		{"Sujet", c.cfg.Cover.Title},
		{"Classe", c.cfg.Cover.ClassLevel},
		{"Durée", c.cfg.Cover.Duration},
	}
	for _, row := range rows {
		if row.value != "" {
			c.centeredLine(10, row.label+": "+row.value)
		}
	}

	if c.cfg.Cover.Author != "" || c.cfg.Cover.Date != "" {
		c.pdf.Ln(4)
		c.pdf.SetTextColor(120, 120, 120)
		line := c.cfg.Cover.Author
		if c.cfg.Cover.Date != "" {
			if line != "" {
				line += " — "
			}
			line += c.cfg.Cover.Date
		}
		c.centeredLine(8, line)
	}

	c.pdf.Ln(10)
	c.fillColor(p.Secondary)
	c.pdf.CellFormat(0, 4, "", "", 0, "", true, 0, "")
}

// writeWatermark overlays a pale centered line under the header, then
// restores the body text state.
func (c *FicheCompiler) writeWatermark() {
	c.pdf.SetTextColor(200, 200, 200)
	c.setFont("B", c.cfg.BaseFontSize*2)
	left, _, _, _ := c.pdf.GetMargins()
	c.pdf.SetXY(left, c.pdf.GetY()+2)
	c.pdf.CellFormat(0, 10, c.tr(c.cfg.WatermarkText), "", 0, "C", false, 0, "")
	c.textColor(c.theme.Palette().Text)
	c.setFont("", c.cfg.BaseFontSize)
	c.pdf.Ln(2)
}

func (c *FicheCompiler) writeParagraph(text string) {
	p := c.theme.Palette()
	c.setFont("", c.cfg.BaseFontSize*0.95)
	c.textColor(p.Text)
	c.multiCell(0, 7*c.cfg.LineSpacing, text, "", false)
	c.pdf.Ln(1.5)
}

// writeKeyValue draws the bold label column and the value on the same row
// grouping. Shared by all themes; only the palette differs.
func (c *FicheCompiler) writeKeyValue(p Palette, label, value string) {
	c.setFont("B", c.cfg.BaseFontSize*0.95)
	c.textColor(p.Primary)
	c.pdf.CellFormat(45, 7*c.cfg.LineSpacing, c.tr(label+" :"), "", 0, "", false, 0, "")
	c.setFont("", c.cfg.BaseFontSize*0.95)
	c.textColor(p.Text)
	c.multiCell(0, 7*c.cfg.LineSpacing, value, "", false)
	c.pdf.Ln(1)
}

// Low-level primitives used by the themes.

func (c *FicheCompiler) setFont(style string, size float64) {
	c.pdf.SetFont(c.fontFamily, style, size)
}

func (c *FicheCompiler) textColor(col RGB) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *FicheCompiler) fillColor(col RGB) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

func (c *FicheCompiler) drawColor(col RGB) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
}

func (c *FicheCompiler) centeredLine(height float64, text string) {
	c.pdf.CellFormat(0, height, c.tr(text), "", 1, "C", false, 0, "")
}

func (c *FicheCompiler) multiCell(width, height float64, text, border string, fill bool) {
	c.pdf.MultiCell(width, height, c.tr(text), border, "", fill)
}

// tr normalizes problem glyphs and, on the core-font fallback, maps text to
// the cp1252 code page.
func (c *FicheCompiler) tr(s string) string {
	return c.translate(cleanText(s))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
