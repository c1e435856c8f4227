package fichecompiler

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func testConfig(t *testing.T) RenderConfig {
	t.Helper()
	cfg := DefaultRenderConfig()
	// An empty font dir forces the deterministic Arial fallback in tests.
	cfg.FontDir = t.TempDir()
	cfg.CreationDate = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	return cfg
}

func renderWith(t *testing.T, cfg RenderConfig, content string) []byte {
	t.Helper()
	c, err := NewFicheCompiler(cfg)
	if err != nil {
		t.Fatalf("NewFicheCompiler: %v", err)
	}
	out, err := c.Render(content)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Render returned an empty document")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("Render output is not a PDF")
	}
	return out
}

const sampleFiche = `Titre de la leçon : Les 5 sens
Classe : CP

## Objectifs
- Nommer les 5 sens
- Comparer deux organes

## Déroulement de la séance
### Introduction - 5 min
- Je demande aux élèves d'observer
### Conclusion (10 min)
- Bullet un
- Bullet deux

## Remarques
Encourager la participation de tous les élèves.`

func TestRenderDeterministic(t *testing.T) {
	cfg := testConfig(t)
	first := renderWith(t, cfg, sampleFiche)
	second := renderWith(t, cfg, sampleFiche)
	if !bytes.Equal(first, second) {
		t.Error("two renders of identical input and config differ")
	}
}

func TestRenderAllThemes(t *testing.T) {
	for _, name := range ThemeNames() {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Theme = name
			renderWith(t, cfg, sampleFiche)
		})
	}
}

func TestRenderScenarios(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"section without phase", "## Objectifs\n- Nommer les 5 sens\n- Comparer deux organes"},
		{"phase with dash duration", "### Introduction - 5 min\n- Je demande aux élèves d'observer"},
		{"phase with paren duration", "### Conclusion (10 min)\n- Bullet un\n- Bullet deux"},
		{"phase without duration", "### Mise en commun\n- Bullet sans durée"},
		{"empty input", ""},
		{"paragraphs only", "Première ligne.\n\nSeconde ligne."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderWith(t, testConfig(t), tt.content)
		})
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	cfg := testConfig(t)
	cfg.Theme = "does-not-exist"
	c, err := NewFicheCompiler(cfg)
	if err != nil {
		t.Fatalf("NewFicheCompiler: %v", err)
	}
	if got := c.ThemeName(); got != DefaultTheme {
		t.Errorf("ThemeName() = %q, want %q", got, DefaultTheme)
	}
	if _, err := c.Render(sampleFiche); err != nil {
		t.Errorf("Render with fallback theme: %v", err)
	}
}

func TestBadGeometryFailsConstruction(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RenderConfig)
	}{
		{"negative left margin", func(c *RenderConfig) { c.Margins.Left = -1 }},
		{"negative right margin", func(c *RenderConfig) { c.Margins.Right = -5 }},
		{"negative top margin", func(c *RenderConfig) { c.Margins.Top = -2 }},
		{"negative font size", func(c *RenderConfig) { c.BaseFontSize = -12 }},
		{"negative line spacing", func(c *RenderConfig) { c.LineSpacing = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			if _, err := NewFicheCompiler(cfg); !errors.Is(err, ErrBadGeometry) {
				t.Errorf("NewFicheCompiler error = %v, want ErrBadGeometry", err)
			}
		})
	}
}

func TestFontFallbackWarnsAndRenders(t *testing.T) {
	cfg := testConfig(t)
	c, err := NewFicheCompiler(cfg)
	if err != nil {
		t.Fatalf("NewFicheCompiler: %v", err)
	}
	warnings := c.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "DejaVu") {
		t.Errorf("Warnings() = %v, want one DejaVu fallback notice", warnings)
	}
	out, err := c.Render(sampleFiche)
	if err != nil {
		t.Fatalf("Render with fallback font: %v", err)
	}
	if len(out) == 0 {
		t.Error("fallback render produced an empty document")
	}
}

func TestRenderWithCoverAndWatermark(t *testing.T) {
	cfg := testConfig(t)
	cfg.DocKind = DocTeacher
	cfg.ShowCover = true
	cfg.Cover = CoverMeta{
		Title:      "Les 5 sens",
		ClassLevel: "CP",
		Duration:   "45 min",
		Author:     "M. Dupont",
		Date:       "2024-09-01",
	}
	cfg.WatermarkText = "Créé avec FicheGen"
	renderWith(t, cfg, sampleFiche)
}

func TestRenderLongInputPaginates(t *testing.T) {
	var b strings.Builder
	b.WriteString("## Déroulement de la séance\n### Atelier (30 min)\n")
	for i := 0; i < 120; i++ {
		b.WriteString("- Une consigne suffisamment longue pour remplir la ligne et forcer des sauts de page réguliers.\n")
	}
	out := renderWith(t, testConfig(t), b.String())
	// A single A4 page of this content is impossible; /Page objects beyond
	// the first prove the automatic page break fired.
	if n := bytes.Count(out, []byte("/Page")); n < 2 {
		t.Errorf("expected multiple pages, found %d /Page markers", n)
	}
}
