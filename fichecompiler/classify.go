package fichecompiler

import (
	"regexp"
	"strings"
)

// LineKind tags the shape of one input line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineSection
	LinePhase
	LineBullet
	LineKeyValue
	LineParagraph
)

// ClassifiedLine is the result of classifying a single line of fiche markup.
// Only the fields relevant to the kind are populated.
type ClassifiedLine struct {
	Kind    LineKind
	Text    string // heading title, bullet text or paragraph body
	Label   string // key-value label, as written in the input
	Value   string // key-value value
	Minutes string // phase duration in minutes, empty when absent
}

// phaseRe accepts two trailing duration forms: a dash followed by "N min",
// or "(N min)". When a line somehow carries both, the regexp backtracks past
// the dash form and the parenthesized one wins.
var phaseRe = regexp.MustCompile(`^#{3,4}\s*(.+?)\s*(?:[—–-]\s*(\d+)\s*min|\((\d+)\s*min\))?\s*$`)

// keyValueRe recognizes the closed set of fiche field labels, matched
// case-insensitively.
var keyValueRe = regexp.MustCompile(`(?i)^(Titre du chapitre|Titre de la leçon|Durée|Classe|Objectifs?|Évaluation|Remarques?|Sujet|Niveau|Matière|Pays)\s*:\s*(.*)$`)

// lineRules is evaluated in order and the first match wins. The order is
// load-bearing: the patterns overlap, e.g. "Durée : 45 min" inside a bullet
// must stay a bullet.
var lineRules = []func(string) (ClassifiedLine, bool){
	matchBlank,
	matchSection,
	matchPhase,
	matchBullet,
	matchKeyValue,
}

// ClassifyLine maps one raw input line to its ClassifiedLine. Lines that
// match no rule are paragraphs; classification never fails.
func ClassifyLine(raw string) ClassifiedLine {
	line := strings.TrimSpace(raw)
	for _, rule := range lineRules {
		if cl, ok := rule(line); ok {
			return cl
		}
	}
	return ClassifiedLine{Kind: LineParagraph, Text: line}
}

func matchBlank(line string) (ClassifiedLine, bool) {
	if line != "" {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{Kind: LineBlank}, true
}

func matchSection(line string) (ClassifiedLine, bool) {
	if !strings.HasPrefix(line, "## ") {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{Kind: LineSection, Text: strings.TrimSpace(line[3:])}, true
}

func matchPhase(line string) (ClassifiedLine, bool) {
	m := phaseRe.FindStringSubmatch(line)
	if m == nil {
		return ClassifiedLine{}, false
	}
	minutes := m[2]
	if minutes == "" {
		minutes = m[3]
	}
	return ClassifiedLine{Kind: LinePhase, Text: m[1], Minutes: minutes}, true
}

func matchBullet(line string) (ClassifiedLine, bool) {
	if !strings.HasPrefix(line, "- ") && !strings.HasPrefix(line, "* ") {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{Kind: LineBullet, Text: strings.TrimSpace(line[2:])}, true
}

func matchKeyValue(line string) (ClassifiedLine, bool) {
	m := keyValueRe.FindStringSubmatch(line)
	if m == nil {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{Kind: LineKeyValue, Label: m[1], Value: m[2]}, true
}
