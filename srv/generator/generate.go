package generator

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/opd-ai/fichegen/fichecompiler"
	fichegen "github.com/opd-ai/fichegen/src"
)

// Request carries one generation job from the web form.
type Request struct {
	Role       fichegen.Role
	Topic      string
	ClassLevel string
	Subject    string
	Country    string
	Theme      string
	ShowCover  bool
	Watermark  string
	Syllabus   []byte
	TocPages   int
}

// Deps holds what a generation run needs from the server.
type Deps struct {
	Client    fichegen.Client
	OutputDir string
	FontDir   string
}

// GenerateFiche runs the full pipeline for one session: generate the
// markdown fiche, render the themed PDF and save both under the session's
// output directory.
func GenerateFiche(progress *GenerationProgress, deps Deps, req Request) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	var fiche *fichegen.Fiche

	steps := []struct {
		name     string
		function func() error
	}{
		{
			name: "génération du contenu",
			function: func() error {
				var err error
				fiche, err = generateContent(progress, deps, req)
				return err
			},
		},
		{
			name: "mise en page du PDF",
			function: func() error {
				progress.SendUpdate("🖨️ Mise en page du PDF...")
				outDir := filepath.Join(deps.OutputDir, progress.SessionID)
				return renderAndSave(fiche, deps.FontDir, outDir, req)
			},
		},
	}

	for _, step := range steps {
		select {
		case <-ctx.Done():
			return fmt.Errorf("generation timed out during %s", step.name)
		default:
			if err := step.function(); err != nil {
				progress.SendUpdate(fmt.Sprintf("❌ Erreur (%s): %v", step.name, err))
				return fmt.Errorf("failed during %s: %w", step.name, err)
			}
		}
	}

	progress.SendUpdate("✨ Fiche prête au téléchargement !")
	return nil
}

func generateContent(progress *GenerationProgress, deps Deps, req Request) (*fichegen.Fiche, error) {
	fr := fichegen.FicheRequest{
		Role:       req.Role,
		Topic:      req.Topic,
		ClassLevel: req.ClassLevel,
		Subject:    req.Subject,
		Country:    req.Country,
	}
	if len(req.Syllabus) > 0 {
		reader := bytes.NewReader(req.Syllabus)
		return fichegen.GenerateFromSyllabus(deps.Client, reader, int64(len(req.Syllabus)), req.TocPages, fr, progress)
	}
	progress.SendUpdate("🤖 Génération de la fiche (cela peut prendre un moment)...")
	return fichegen.GenerateFiche(deps.Client, fr)
}

func renderAndSave(fiche *fichegen.Fiche, fontDir, outDir string, req Request) error {
	cfg := fichecompiler.DefaultRenderConfig()
	cfg.Theme = req.Theme
	cfg.FontDir = fontDir
	cfg.ShowCover = req.ShowCover
	cfg.WatermarkText = req.Watermark
	if req.Role == fichegen.RoleTeacher {
		cfg.DocKind = fichecompiler.DocTeacher
	} else {
		cfg.DocKind = fichecompiler.DocStudent
	}
	if req.ShowCover {
		cfg.Cover = fichecompiler.CoverMeta{
			Title:      req.Topic,
			ClassLevel: req.ClassLevel,
			Date:       time.Now().Format("02/01/2006"),
		}
	}

	compiler, err := fichecompiler.NewFicheCompiler(cfg)
	if err != nil {
		return err
	}
	pdfBytes, err := compiler.Render(fiche.Content)
	if err != nil {
		return err
	}
	return fichegen.SaveToFiles(fiche, outDir, pdfBytes)
}
