package fichegen

import (
	"fmt"
	"io"
	"log"
)

type progressor interface {
	UpdateOutput(message string)
}

type nullProgressor struct{}

func (n nullProgressor) UpdateOutput(message string) {
}

func orNull(p progressor) progressor {
	if p != nil {
		return p
	}
	return nullProgressor{}
}

// FindLessonPages asks the model to locate the lesson in the extracted table
// of contents and parses its answer into a page list.
func FindLessonPages(client Client, tocText, topic string) ([]int, error) {
	answer, err := client.SendMessage(pageFinderSystemPrompt(), PagesFromToCPrompt(tocText, topic))
	if err != nil {
		return nil, fmt.Errorf("finding lesson pages: %w", err)
	}
	log.Printf("page finder answered %q for topic %q", answer, topic)

	pages := ParsePageNumbers(answer)
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages found for %q in the table of contents", topic)
	}
	return pages, nil
}

// GenerateFiche runs the single generation call for a request. The prompt is
// chosen from the role and whether syllabus material is attached.
func GenerateFiche(client Client, req FicheRequest) (*Fiche, error) {
	var prompt string
	switch {
	case req.Role == RoleTeacher && req.LessonText != "":
		prompt = TeacherFichePrompt(req.LessonText, req.Topic, req.ClassLevel)
	case req.LessonText != "":
		prompt = StudentNotesPrompt(req.LessonText, req.Topic, req.ClassLevel)
	default:
		prompt = StudentNotesFreePrompt(req.Topic, req.ClassLevel, req.Country, req.Subject)
	}

	content, err := client.SendMessage(ficheSystemPrompt(), prompt)
	if err != nil {
		return nil, fmt.Errorf("generating fiche: %w", err)
	}
	if content == "" {
		return nil, fmt.Errorf("model returned an empty fiche")
	}

	return &Fiche{Request: req, Content: content}, nil
}

// GenerateFromSyllabus runs the full syllabus pipeline: extract the table of
// contents, locate the lesson, extract its pages and generate the fiche.
func GenerateFromSyllabus(client Client, syllabus io.ReaderAt, size int64, tocPages int, req FicheRequest, p progressor) (*Fiche, error) {
	pr := orNull(p)
	if tocPages <= 0 {
		tocPages = DefaultTocPages
	}

	pr.UpdateOutput("📖 Extraction de la table des matières...")
	tocText, err := ExtractTableOfContents(syllabus, size, tocPages)
	if err != nil {
		return nil, err
	}
	if tocText == "" {
		return nil, fmt.Errorf("no text layer in the first %d syllabus pages", tocPages)
	}

	pr.UpdateOutput(fmt.Sprintf("🧠 Recherche des pages pour « %s »...", req.Topic))
	pages, err := FindLessonPages(client, tocText, req.Topic)
	if err != nil {
		return nil, err
	}

	pr.UpdateOutput(fmt.Sprintf("📄 Extraction du contenu (pages %v)...", pages))
	lessonText, err := ExtractLessonText(syllabus, size, pages)
	if err != nil {
		return nil, err
	}
	if lessonText == "" {
		return nil, fmt.Errorf("no text extracted from pages %v", pages)
	}
	req.LessonText = lessonText

	pr.UpdateOutput("🤖 Génération de la fiche (cela peut prendre un moment)...")
	fiche, err := GenerateFiche(client, req)
	if err != nil {
		return nil, err
	}
	fiche.Pages = pages
	return fiche, nil
}
