package ui

import (
	"reflect"
	"strings"
	"testing"
)

func TestDocumentOutline(t *testing.T) {
	markdown := strings.Join([]string{
		"## Déroulement de la séance",
		"",
		"### Mise en route — 10 min",
		"- Rituel de calcul mental",
		"",
		"#### Consigne (5 min)",
		"- Présenter la situation",
		"",
		"## Évaluation",
		"Un paragraphe sans titre.",
	}, "\n")

	got := DocumentOutline(markdown)
	want := []OutlineEntry{
		{Level: 2, Title: "Déroulement de la séance"},
		{Level: 3, Title: "Mise en route — 10 min"},
		{Level: 4, Title: "Consigne (5 min)"},
		{Level: 2, Title: "Évaluation"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DocumentOutline = %v, want %v", got, want)
	}
}

func TestDocumentOutlineEmpty(t *testing.T) {
	if got := DocumentOutline("juste un paragraphe"); got != nil {
		t.Errorf("DocumentOutline = %v, want nil", got)
	}
}

func TestFormatContentEscapes(t *testing.T) {
	got := formatContent(`<script>alert("x")</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("formatContent did not escape HTML: %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("formatContent missing escaped content: %s", got)
	}
}

func TestIsValidSession(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"", false},
		{"not-a-uuid", false},
		{"b1946ac9-2b7c-4f4e-9a5e-000000000001", true},
	}
	for _, tt := range tests {
		if got := isValidSession(tt.id); got != tt.want {
			t.Errorf("isValidSession(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
