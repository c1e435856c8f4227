package fichecompiler

// The three built-in themes. Teal is the classic look with the duration
// gutter; pro and study render phase durations inline instead.

type tealTheme struct{}

func (tealTheme) Name() string { return "teal" }

func (tealTheme) Palette() Palette {
	return Palette{
		Primary:   RGB{0, 128, 128},
		Secondary: RGB{255, 127, 80},
		Accent:    RGB{255, 127, 80},
		Text:      RGB{0, 0, 0},
		BgLight:   RGB{245, 245, 245},
	}
}

func (tealTheme) GutterColor() RGB     { return RGB{255, 192, 0} }
func (tealTheme) GutterWidth() float64 { return 22 }

func (t tealTheme) PageHeader(c *FicheCompiler) {
	p := t.Palette()
	c.setFont("B", 16)
	c.textColor(p.Primary)
	c.centeredLine(12, c.pageTitle)
	c.pdf.Ln(2)
	c.drawColor(p.Primary)
	c.pdf.SetLineWidth(0.6)
	left, _, right, _ := c.pdf.GetMargins()
	width, _ := c.pdf.GetPageSize()
	y := c.pdf.GetY()
	c.pdf.Line(left, y, width-right, y)
	c.pdf.Ln(6)
}

func (t tealTheme) SectionHeading(c *FicheCompiler, title string) {
	p := t.Palette()
	c.setFont("B", 14)
	c.textColor(p.Secondary)
	c.multiCell(0, 9*c.cfg.LineSpacing, title, "", false)
	c.pdf.Ln(2)
}

func (t tealTheme) PhaseHeading(c *FicheCompiler, title, minutes string) {
	p := t.Palette()
	c.setFont("B", 12)
	c.textColor(p.Primary)
	c.multiCell(0, 8*c.cfg.LineSpacing, title, "", false)
	c.pdf.Ln(1)
}

func (t tealTheme) Bullet(c *FicheCompiler, text string) {
	p := t.Palette()
	if label := c.phase.TakeLabel(); label != "" {
		c.fillColor(t.GutterColor())
		c.textColor(p.Secondary)
		c.setFont("B", 10)
		c.pdf.CellFormat(t.GutterWidth(), 8, c.tr(label), "", 0, "C", true, 0, "")
	} else {
		// Blank placeholder of the same width keeps bullets aligned.
		c.pdf.CellFormat(t.GutterWidth(), 8, "", "", 0, "", false, 0, "")
	}
	left, _, right, _ := c.pdf.GetMargins()
	width, _ := c.pdf.GetPageSize()
	bodyWidth := width - right - (left + t.GutterWidth())
	c.textColor(RGB{0, 0, 0})
	c.setFont("", 11)
	c.multiCell(bodyWidth, 8, "• "+text, "", false)
	c.pdf.Ln(1)
}

func (t tealTheme) KeyValue(c *FicheCompiler, label, value string) {
	c.writeKeyValue(t.Palette(), label, value)
}

type proTheme struct{}

func (proTheme) Name() string { return "pro" }

func (proTheme) Palette() Palette {
	return Palette{
		Primary:   RGB{34, 49, 63},
		Secondary: RGB{69, 170, 242},
		Accent:    RGB{46, 204, 113},
		Text:      RGB{51, 51, 51},
		BgLight:   RGB{245, 245, 245},
	}
}

func (t proTheme) PageHeader(c *FicheCompiler) {
	p := t.Palette()
	c.setFont("B", c.cfg.BaseFontSize*1.8)
	c.textColor(p.Primary)
	c.centeredLine(10, c.pageTitle)
	c.pdf.SetLineWidth(0.5)
	c.drawColor(p.Secondary)
	left, _, right, _ := c.pdf.GetMargins()
	width, _ := c.pdf.GetPageSize()
	y := c.pdf.GetY() + 2
	c.pdf.Line(left, y, width-right, y)
	c.pdf.Ln(8)
}

func (t proTheme) SectionHeading(c *FicheCompiler, title string) {
	writePlainSection(c, t.Palette(), title, "")
}

func (t proTheme) PhaseHeading(c *FicheCompiler, title, minutes string) {
	writeInlinePhase(c, t.Palette(), title, minutes)
}

func (t proTheme) Bullet(c *FicheCompiler, text string) {
	writePlainBullet(c, t.Palette(), "•", text)
}

func (t proTheme) KeyValue(c *FicheCompiler, label, value string) {
	c.writeKeyValue(t.Palette(), label, value)
}

type studyTheme struct{}

func (studyTheme) Name() string { return "study" }

func (studyTheme) Palette() Palette {
	return Palette{
		Primary:   RGB{44, 62, 80},
		Secondary: RGB{243, 156, 18},
		Accent:    RGB{231, 76, 60},
		Text:      RGB{51, 51, 51},
		BgLight:   RGB{236, 240, 241},
	}
}

func (t studyTheme) PageHeader(c *FicheCompiler) {
	p := t.Palette()
	c.setFont("B", c.cfg.BaseFontSize*1.8)
	c.textColor(p.Primary)
	c.centeredLine(10, c.pageTitle)
	c.fillColor(p.Secondary)
	c.pdf.CellFormat(0, 2, "", "", 1, "", true, 0, "")
	c.pdf.Ln(8)
}

func (t studyTheme) SectionHeading(c *FicheCompiler, title string) {
	writePlainSection(c, t.Palette(), title, "B")
}

func (t studyTheme) PhaseHeading(c *FicheCompiler, title, minutes string) {
	writeInlinePhase(c, t.Palette(), title, minutes)
}

func (t studyTheme) Bullet(c *FicheCompiler, text string) {
	writePlainBullet(c, t.Palette(), "✓", text)
}

func (t studyTheme) KeyValue(c *FicheCompiler, label, value string) {
	c.writeKeyValue(t.Palette(), label, value)
}

// Shared drawing for the non-gutter themes.

func writePlainSection(c *FicheCompiler, p Palette, title, border string) {
	c.setFont("B", c.cfg.BaseFontSize*1.2)
	c.textColor(p.Secondary)
	c.fillColor(p.BgLight)
	c.drawColor(p.Secondary)
	c.multiCell(0, 9*c.cfg.LineSpacing, " "+title+" ", border, true)
	c.pdf.Ln(3)
}

func writeInlinePhase(c *FicheCompiler, p Palette, title, minutes string) {
	if minutes != "" {
		title += " (" + minutes + " min)"
	}
	c.setFont("B", c.cfg.BaseFontSize*1.05)
	c.textColor(p.Accent)
	c.multiCell(0, 8*c.cfg.LineSpacing, title, "", false)
	c.pdf.Ln(1)
}

func writePlainBullet(c *FicheCompiler, p Palette, marker, text string) {
	c.setFont("", c.cfg.BaseFontSize*0.95)
	c.textColor(p.Text)
	c.multiCell(0, 7*c.cfg.LineSpacing, "  "+marker+"  "+text, "", false)
	c.pdf.Ln(0.5)
}
