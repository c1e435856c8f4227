package fichegen

import "fmt"

// System prompts for the two pipeline calls.

func ficheSystemPrompt() string {
	return `Tu es un assistant expert pour les enseignants du primaire. Ta tâche est de créer des fiches pédagogiques et des fiches de révision claires, engageantes et structurées en français.
	Commence directement, sans phrases d'introduction.
	Formatage Markdown uniquement.`
}

func pageFinderSystemPrompt() string {
	return `You are an index analysis bot. Your task is to find the page numbers for a specific lesson topic from a book's table of contents.
	Respond with ONLY the page numbers. Do NOT add any other words, sentences, or explanations.`
}

// PagesFromToCPrompt asks the model to locate a lesson in an extracted table
// of contents. The expected answer shapes are "42" or "42-46".
func PagesFromToCPrompt(tocText, lessonTopic string) string {
	return fmt.Sprintf(`The lesson topic is: "%s"
	Here is the text of the table of contents:
	---
	%s
	---
	Analyze the table of contents and find the page or range of pages corresponding to the lesson topic.
	- If it's a single page, respond with the number (e.g., "42").
	- If it's a range of pages (which is most common), find the start page for "%s" and the start page for the *next* lesson, then subtract one. Respond with a dash (e.g., "42-46").
	Just the numbers.`, lessonTopic, tocText, lessonTopic)
}

// TeacherFichePrompt builds the full "fiche pédagogique" request from the
// extracted lesson material.
func TeacherFichePrompt(lessonText, lessonTopic, classLevel string) string {
	ficheStructure := `
	## Guide de conception d'une fiche pédagogique
	1. **Informations générales**
	   - Titre du chapitre: (déduire du texte)
	   - Titre de la leçon: (utiliser le sujet donné)
	   - Durée: 45 min
	   - Classe: (utiliser la classe donnée)
	2. **Objectifs**
	   - Formuler 2-3 objectifs précis que l'élève doit savoir ou savoir-faire. Utiliser des verbes d'action (nommer, identifier, comparer…).
	3. **Déroulement de la séance** (utiliser des puces phrases; regrouper par phases avec durée, ex: "### Introduction (5 min)")
	   - - phrase complète 1…
	   - - phrase complète 2…
	4. **Évaluation**
	   - Décrire les outils (questions orales, exercices écrits, etc.).
	5. **Remarques et conclusion**
	   - Consignes simples, s'appuyer sur le manuel, encourager la participation.
	`
	exampleFiche := `
	## EXEMPLE DE STYLE
	Titre du chapitre : La santé de l'être humain.
	Titre de la leçon : Les 5 sens.
	Durée : 45 min.
	Classe : C.P.
	Objectif : Faire connaître aux élèves nos cinq principaux organes sensoriels...
	Déroulement: Pour commencer, je demande aux élèves de bien observer... je pose la question... je demande aux élèves de prendre leur livres page 8... Je passe vérifier les réponses. Je lis la consigne de l'exercice 2... Je demande aux élèves d'observer les images dans le manuel... Je distribue les fiches d'activités... Je passe vérifier les réponses... Pour conclure, je résume les points clés...
	(Le style est direct, utilise "je", et les actions sont concrètes.)
	Conclusion du cours (Le résumé bref de 2-4 lignes que les élèves doivent écrire dans leur cahiers à la fin de la leçon) : (Basée sur les objectifs de la leçon, en général, un résumé de ce que les élèves ont appris.)
	`
	return fmt.Sprintf(`**MISSION:**
Crée une fiche pédagogique complète pour la leçon "%s" pour la classe de %s.

**MATÉRIEL SOURCE (Texte du manuel scolaire sur lequel tu dois te baser):**
---
%s
---

**STRUCTURE REQUISE (à remplir):**
---
%s
---

**EXEMPLE DE STYLE À IMITER (le professeur ici commence par interagir avec les élèves):**
---
%s
---

**INSTRUCTIONS DÉTAILLÉES:**
1. Analyse le MATÉRIEL SOURCE pour comprendre les concepts clés de la leçon.
2. Remplis chaque section de la STRUCTURE REQUISE en te basant sur le matériel.
3. Adopte le ton et le style de l'EXEMPLE: direct, pratique, et utilisant "je" pour décrire les actions de l'enseignant.
4. Sois créatif mais fidèle: activités engageantes, mais conformes au manuel.
5. Formatage Markdown: sous-titres de phase au format `+"`### Titre de phase (X min)`"+` puis des puces phrases complètes.
6. Reste faisable en 45 min pour le déroulement; garde un rythme et un avancement réalistes dans la classe.
7. Commence directement, sans phrases d'introduction.
8. Utilise des transitions claires entre les activités pour maintenir l'attention des élèves.
9. Réfère-toi aux activités/exercices dans le manuel (ex: Je demande aux élèves de prendre leur livre page X… Je lis la consigne de l'exercice Y…).`,
		lessonTopic, classLevel, lessonText, ficheStructure, exampleFiche)
}

// StudentNotesPrompt builds the revision-notes request from extracted
// syllabus material.
func StudentNotesPrompt(lessonText, topic, classLevel string) string {
	return fmt.Sprintf(`Crée une fiche de révision claire en français.

SUJET: %s
NIVEAU: %s

TEXTE SOURCE:
---
%s
---

FORMAT MARKDOWN:
## Sujet Principal
Titre: %s
Niveau: %s

## Les Idées Clés
- Puces simples. Mets en gras les termes clés.

## Définitions Importantes
- **Terme**: Définition simple.

## Exemples Pratiques
- 1–2 exemples.

## Résumé en une Phrase
- Une seule phrase qui résume tout.

IMPORTANT: Commence directement sans phrases d'intro.`,
		topic, classLevel, lessonText, topic, classLevel)
}

// StudentNotesFreePrompt builds the revision-notes request when no syllabus
// is available, from topic, level, country and subject alone.
func StudentNotesFreePrompt(topic, classLevel, country, subject string) string {
	return fmt.Sprintf(`Crée une fiche de révision en français pour un élève.

CONTEXTE:
- Matière: %s
- Niveau: %s
- Pays/Curriculum: %s

FORMAT MARKDOWN:
## Sujet Principal
Titre: %s
Matière: %s
Niveau: %s
Pays: %s

## Les Idées Clés
- Puces simples. Mets en gras les **termes clés**.

## Définitions Importantes
- **Terme**: Définition simple.

## Exemples Pratiques
- 1–2 exemples.

## Pour Aller Plus Loin (Optionnel)
- Suggestion liée ou fun fact.

IMPORTANT: Commence directement.`,
		subject, classLevel, country, topic, subject, classLevel, country)
}
