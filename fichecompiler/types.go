package fichecompiler

import (
	"errors"
	"time"
)

// Document kinds. The kind only changes the page title printed on every page.
const (
	DocTeacher = "teacher"
	DocStudent = "student"
)

// ErrBadGeometry is returned when the page geometry of a RenderConfig cannot
// produce a usable page (non-positive margin, font size or line spacing).
var ErrBadGeometry = errors.New("fichecompiler: invalid page geometry")

// Margins holds the configurable page margins in millimeters. The bottom
// margin is owned by the automatic page break and is not configurable.
type Margins struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
	Top   float64 `json:"top"`
}

// CoverMeta carries the optional cover page fields. Empty fields are skipped.
type CoverMeta struct {
	Title      string `json:"title"`
	ClassLevel string `json:"class_level"`
	Duration   string `json:"duration"`
	Author     string `json:"author"`
	Date       string `json:"date"`
}

// RenderConfig controls a single render pass. It is copied by the compiler on
// construction and never mutated afterward.
type RenderConfig struct {
	DocKind       string    `json:"doc_kind"`
	Theme         string    `json:"base_template"`
	PageFormat    string    `json:"page_format"`
	Orientation   string    `json:"orientation"`
	Margins       Margins   `json:"margins"`
	BaseFontSize  float64   `json:"base_font_size"`
	LineSpacing   float64   `json:"line_spacing"`
	ShowCover     bool      `json:"show_cover"`
	Cover         CoverMeta `json:"cover_meta"`
	WatermarkText string    `json:"watermark_text"`

	// FontDir is where the DejaVu font files are looked up. When they are
	// missing the compiler falls back to the Arial core font.
	FontDir string `json:"-"`

	// CreationDate is stamped into the PDF metadata. Pinning it makes two
	// renders of the same input byte-identical.
	CreationDate time.Time `json:"-"`
}

// DefaultRenderConfig mirrors the defaults of the web form.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		DocKind:      DocStudent,
		Theme:        DefaultTheme,
		PageFormat:   "A4",
		Orientation:  "P",
		Margins:      Margins{Left: 15, Right: 15, Top: 20},
		BaseFontSize: 12,
		LineSpacing:  1.15,
		FontDir:      "fonts",
	}
}

func (c RenderConfig) withDefaults() RenderConfig {
	def := DefaultRenderConfig()
	if c.DocKind == "" {
		c.DocKind = def.DocKind
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.PageFormat == "" {
		c.PageFormat = def.PageFormat
	}
	if c.Orientation == "" {
		c.Orientation = def.Orientation
	}
	if c.Margins == (Margins{}) {
		c.Margins = def.Margins
	}
	if c.BaseFontSize == 0 {
		c.BaseFontSize = def.BaseFontSize
	}
	if c.LineSpacing == 0 {
		c.LineSpacing = def.LineSpacing
	}
	if c.FontDir == "" {
		c.FontDir = def.FontDir
	}
	return c
}

func (c RenderConfig) validate() error {
	if c.Margins.Left <= 0 || c.Margins.Right <= 0 || c.Margins.Top <= 0 {
		return ErrBadGeometry
	}
	if c.BaseFontSize <= 0 || c.LineSpacing <= 0 {
		return ErrBadGeometry
	}
	return nil
}
