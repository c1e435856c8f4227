package fichecompiler

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want ClassifiedLine
	}{
		{"empty", "", ClassifiedLine{Kind: LineBlank}},
		{"whitespace only", "   \t ", ClassifiedLine{Kind: LineBlank}},

		{"section", "## Objectifs", ClassifiedLine{Kind: LineSection, Text: "Objectifs"}},
		{"section keeps accents", "## Déroulement de la séance", ClassifiedLine{Kind: LineSection, Text: "Déroulement de la séance"}},

		{"phase hyphen duration", "### Introduction - 5 min", ClassifiedLine{Kind: LinePhase, Text: "Introduction", Minutes: "5"}},
		{"phase em dash duration", "### Introduction — 5 min", ClassifiedLine{Kind: LinePhase, Text: "Introduction", Minutes: "5"}},
		{"phase en dash duration", "### Synthèse – 7 min", ClassifiedLine{Kind: LinePhase, Text: "Synthèse", Minutes: "7"}},
		{"phase paren duration", "### Conclusion (10 min)", ClassifiedLine{Kind: LinePhase, Text: "Conclusion", Minutes: "10"}},
		{"phase level four", "#### Exercice (15 min)", ClassifiedLine{Kind: LinePhase, Text: "Exercice", Minutes: "15"}},
		{"phase no duration", "### Mise en commun", ClassifiedLine{Kind: LinePhase, Text: "Mise en commun"}},
		{"phase unparseable duration", "### Introduction - cinq min", ClassifiedLine{Kind: LinePhase, Text: "Introduction - cinq min"}},
		// Both annotation forms on one line is undefined input; the
		// parenthesized form wins, deterministically.
		{"phase both forms", "### Atelier - 5 min (10 min)", ClassifiedLine{Kind: LinePhase, Text: "Atelier - 5 min", Minutes: "10"}},

		{"bullet dash", "- Nommer les 5 sens", ClassifiedLine{Kind: LineBullet, Text: "Nommer les 5 sens"}},
		{"bullet star", "* Comparer deux organes", ClassifiedLine{Kind: LineBullet, Text: "Comparer deux organes"}},
		{"bullet wins over key-value", "- Durée : 45 min", ClassifiedLine{Kind: LineBullet, Text: "Durée : 45 min"}},

		{"key-value", "Durée : 45 min", ClassifiedLine{Kind: LineKeyValue, Label: "Durée", Value: "45 min"}},
		{"key-value tight colon", "Classe: CP", ClassifiedLine{Kind: LineKeyValue, Label: "Classe", Value: "CP"}},
		{"key-value case-insensitive", "durée : 45 min", ClassifiedLine{Kind: LineKeyValue, Label: "durée", Value: "45 min"}},
		{"key-value plural objectifs", "Objectifs : Nommer les organes", ClassifiedLine{Kind: LineKeyValue, Label: "Objectifs", Value: "Nommer les organes"}},
		{"key-value accented label", "Évaluation : Questions orales", ClassifiedLine{Kind: LineKeyValue, Label: "Évaluation", Value: "Questions orales"}},
		{"key-value empty value", "Pays :", ClassifiedLine{Kind: LineKeyValue, Label: "Pays", Value: ""}},

		{"unknown label is paragraph", "Professeur : Dupont", ClassifiedLine{Kind: LineParagraph, Text: "Professeur : Dupont"}},
		{"plain paragraph", "Je demande aux élèves d'observer.", ClassifiedLine{Kind: LineParagraph, Text: "Je demande aux élèves d'observer."}},
		{"single hash is paragraph", "# Titre", ClassifiedLine{Kind: LineParagraph, Text: "# Titre"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLine(tt.line)
			if got != tt.want {
				t.Errorf("ClassifyLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassifyLineStable(t *testing.T) {
	lines := []string{
		"## Objectifs",
		"### Introduction - 5 min",
		"- une puce",
		"Durée : 45 min",
		"du texte libre",
		"",
	}
	for _, line := range lines {
		first := ClassifyLine(line)
		second := ClassifyLine(line)
		if first != second {
			t.Errorf("ClassifyLine(%q) not stable: %+v vs %+v", line, first, second)
		}
	}
}
