package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/opd-ai/fichegen/fichecompiler"
	fichegen "github.com/opd-ai/fichegen/src"
)

var (
	role       = flag.String("role", "student", "who the fiche is for: student or teacher")
	topic      = flag.String("topic", "", "lesson topic, e.g. \"Les 5 sens\"")
	level      = flag.String("level", "", "class level, e.g. CP or 6ème")
	subject    = flag.String("subject", "", "school subject, e.g. Sciences")
	country    = flag.String("country", "", "country or curriculum, e.g. France")
	syllabus   = flag.String("syllabus", "", "path to a syllabus PDF to extract the lesson from")
	tocPages   = flag.Int("tocpages", fichegen.DefaultTocPages, "number of leading syllabus pages holding the table of contents")
	theme      = flag.String("theme", fichecompiler.DefaultTheme, "PDF theme: teal, pro or study")
	outputDir  = flag.String("out", "fiches", "output directory for the generated files")
	fontDir    = flag.String("fontdir", "fonts", "directory with DejaVu fonts")
	cover      = flag.Bool("cover", false, "add a cover page")
	watermark  = flag.String("watermark", "", "diagonal watermark text")
	preset     = flag.String("preset", "", "name of a saved rendering preset to load")
	savePreset = flag.String("savepreset", "", "save the rendering options under this preset name and continue")
	presetDir  = flag.String("presetdir", "presets", "directory holding rendering presets")
)

type stdoutProgress struct{}

func (stdoutProgress) UpdateOutput(message string) {
	fmt.Println(message)
}

func main() {
	flag.Parse()

	if *topic == "" {
		fmt.Println("Please provide a lesson topic with -topic")
		os.Exit(1)
	}

	config := fichegen.Config{
		APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		OutputDir: *outputDir,
		FontDir:   *fontDir,
	}
	if config.APIKey == "" {
		fmt.Println("Please set ANTHROPIC_API_KEY environment variable")
		os.Exit(1)
	}

	cfg := renderConfig()
	if *savePreset != "" {
		path, err := fichegen.SavePreset(*presetDir, *savePreset, cfg)
		if err != nil {
			fmt.Printf("Error saving preset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preset saved to %s\n", path)
	}

	req := fichegen.FicheRequest{
		Role:       fichegen.RoleStudent,
		Topic:      *topic,
		ClassLevel: *level,
		Subject:    *subject,
		Country:    *country,
	}
	if *role == "teacher" {
		req.Role = fichegen.RoleTeacher
	}

	client := fichegen.NewClaudeClient(config.APIKey)

	var fiche *fichegen.Fiche
	var err error
	if *syllabus != "" {
		fiche, err = generateFromSyllabus(client, req)
	} else {
		fmt.Println("🤖 Génération de la fiche...")
		fiche, err = fichegen.GenerateFiche(client, req)
	}
	if err != nil {
		fmt.Printf("Error generating fiche: %v\n", err)
		os.Exit(1)
	}

	pdfBytes, err := renderPDF(fiche, cfg)
	if err != nil {
		fmt.Printf("Error rendering PDF: %v\n", err)
		os.Exit(1)
	}

	if err := fichegen.SaveToFiles(fiche, *outputDir, pdfBytes); err != nil {
		fmt.Printf("Error saving fiche: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✨ Fiche saved to %s/%s.pdf\n", *outputDir, fichegen.FileBase(fiche))
}

func renderConfig() fichecompiler.RenderConfig {
	if *preset != "" {
		cfg, err := fichegen.LoadPreset(*presetDir, *preset)
		if err != nil {
			fmt.Printf("Error loading preset %q: %v\n", *preset, err)
			os.Exit(1)
		}
		cfg.FontDir = *fontDir
		return cfg
	}

	cfg := fichecompiler.DefaultRenderConfig()
	cfg.Theme = *theme
	cfg.FontDir = *fontDir
	cfg.ShowCover = *cover
	cfg.WatermarkText = *watermark
	return cfg
}

func renderPDF(fiche *fichegen.Fiche, cfg fichecompiler.RenderConfig) ([]byte, error) {
	if fiche.Request.Role == fichegen.RoleTeacher {
		cfg.DocKind = fichecompiler.DocTeacher
	} else {
		cfg.DocKind = fichecompiler.DocStudent
	}
	if cfg.ShowCover {
		cfg.Cover = fichecompiler.CoverMeta{
			Title:      fiche.Request.Topic,
			ClassLevel: fiche.Request.ClassLevel,
			Date:       time.Now().Format("02/01/2006"),
		}
	}

	compiler, err := fichecompiler.NewFicheCompiler(cfg)
	if err != nil {
		return nil, err
	}
	for _, warning := range compiler.Warnings() {
		fmt.Println(warning)
	}
	return compiler.Render(fiche.Content)
}

func generateFromSyllabus(client fichegen.Client, req fichegen.FicheRequest) (*fichegen.Fiche, error) {
	file, err := os.Open(*syllabus)
	if err != nil {
		return nil, fmt.Errorf("opening syllabus: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading syllabus info: %w", err)
	}

	return fichegen.GenerateFromSyllabus(client, file, info.Size(), *tocPages, req, stdoutProgress{})
}
