package ui

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
)

// OutlineEntry is one heading of a generated fiche. Level 2 is a section,
// levels 3 and 4 are phases.
type OutlineEntry struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// DocumentOutline extracts the section and phase headings from fiche
// markdown.
func DocumentOutline(markdown string) []OutlineEntry {
	htmlContent := blackfriday.Run([]byte(markdown))
	doc, err := html.Parse(bytes.NewReader(htmlContent))
	if err != nil {
		return nil
	}

	var entries []OutlineEntry
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			level := 0
			switch n.Data {
			case "h2":
				level = 2
			case "h3":
				level = 3
			case "h4":
				level = 4
			}
			if level > 0 {
				if title := strings.TrimSpace(textContent(n)); title != "" {
					entries = append(entries, OutlineEntry{Level: level, Title: title})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return entries
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return b.String()
}

// handleOutline returns the heading outline of a session's generated fiche.
func (ui *GeneratorUI) handleOutline(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if !isValidSession(sessionID) {
		http.Error(w, "Invalid session", http.StatusBadRequest)
		return
	}

	path, err := ui.sessionFile(sessionID, ".md")
	if err != nil {
		http.Error(w, "Fiche not found", http.StatusNotFound)
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "Fiche not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(DocumentOutline(string(content))); err != nil {
		log.Printf("failed to encode outline for session %s: %v", sessionID, err)
	}
}
