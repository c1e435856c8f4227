package fichegen

import (
	"strings"
	"testing"
)

// stubClient replays canned answers and records the prompts it saw.
type stubClient struct {
	answers []string
	calls   int
	system  []string
	user    []string
	err     error
}

func (s *stubClient) SendMessage(systemPrompt, userPrompt string) (string, error) {
	s.system = append(s.system, systemPrompt)
	s.user = append(s.user, userPrompt)
	if s.err != nil {
		return "", s.err
	}
	answer := s.answers[s.calls%len(s.answers)]
	s.calls++
	return answer, nil
}

func TestFindLessonPages(t *testing.T) {
	client := &stubClient{answers: []string{"42-44"}}
	pages, err := FindLessonPages(client, "Chapitre 3 ... page 42", "Les 5 sens")
	if err != nil {
		t.Fatalf("FindLessonPages: %v", err)
	}
	if len(pages) != 3 || pages[0] != 42 || pages[2] != 44 {
		t.Errorf("pages = %v, want [42 43 44]", pages)
	}
	if !strings.Contains(client.user[0], "Les 5 sens") {
		t.Error("topic missing from page finder prompt")
	}
}

func TestFindLessonPagesUnparseableAnswer(t *testing.T) {
	client := &stubClient{answers: []string{"je ne trouve pas cette leçon"}}
	if _, err := FindLessonPages(client, "toc", "Les 5 sens"); err == nil {
		t.Error("expected an error for an unparseable page answer")
	}
}

func TestGenerateFichePromptSelection(t *testing.T) {
	tests := []struct {
		name       string
		req        FicheRequest
		wantInside string
	}{
		{
			"teacher with syllabus",
			FicheRequest{Role: RoleTeacher, Topic: "Les 5 sens", ClassLevel: "CP", LessonText: "texte du manuel"},
			"fiche pédagogique",
		},
		{
			"student with syllabus",
			FicheRequest{Role: RoleStudent, Topic: "Les 5 sens", ClassLevel: "CP", LessonText: "texte du manuel"},
			"TEXTE SOURCE",
		},
		{
			"student free topic",
			FicheRequest{Role: RoleStudent, Topic: "La photosynthèse", ClassLevel: "4ème", Subject: "Biologie", Country: "France"},
			"Pays/Curriculum",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{answers: []string{"## Sujet Principal\n- contenu"}}
			fiche, err := GenerateFiche(client, tt.req)
			if err != nil {
				t.Fatalf("GenerateFiche: %v", err)
			}
			if fiche.Content == "" {
				t.Fatal("empty fiche content")
			}
			if !strings.Contains(client.user[0], tt.wantInside) {
				t.Errorf("prompt does not contain %q", tt.wantInside)
			}
			if !strings.Contains(client.user[0], tt.req.Topic) {
				t.Errorf("prompt does not contain topic %q", tt.req.Topic)
			}
		})
	}
}

func TestGenerateFicheEmptyAnswer(t *testing.T) {
	client := &stubClient{answers: []string{""}}
	if _, err := GenerateFiche(client, FicheRequest{Role: RoleStudent, Topic: "X"}); err == nil {
		t.Error("expected an error for an empty model answer")
	}
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		name string
		f    Fiche
		want string
	}{
		{"topic and level", Fiche{Request: FicheRequest{Topic: "Les 5 sens", ClassLevel: "CP"}}, "Fiche_Les_5_sens_CP"},
		{"topic only", Fiche{Request: FicheRequest{Topic: "La photosynthèse"}}, "Fiche_La_photosynthèse"},
		{"empty request", Fiche{}, "Fiche"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileBase(&tt.f); got != tt.want {
				t.Errorf("FileBase = %q, want %q", got, tt.want)
			}
		})
	}
}
