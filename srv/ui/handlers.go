package ui

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/opd-ai/fichegen/fichecompiler"
	"github.com/opd-ai/fichegen/srv/generator"
	fichegen "github.com/opd-ai/fichegen/src"
)

// 20 MB cap on uploaded syllabus PDFs.
const maxSyllabusBytes = 20 << 20

func (ui *GeneratorUI) handleHome(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Themes []string
	}{
		Themes: fichecompiler.ThemeNames(),
	}
	if err := ui.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("error rendering home: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (ui *GeneratorUI) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// handleGenerate accepts the fiche form, starts the generation in the
// background and answers with the session id the client should watch.
func (ui *GeneratorUI) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := ui.parseGenerateForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID := uuid.New().String()
	w.Header().Set("X-Session-Id", sessionID)

	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	progress := &generator.GenerationProgress{
		SessionID: sessionID,
		Done:      make(chan bool),
		StartTime: time.Now(),
		State:     generator.StateInitialized,
		IsActive:  true,
	}

	ui.sessionsM.Lock()
	ui.sessions[sessionID] = progress
	if _, exists := ui.msgHistory[sessionID]; !exists {
		ui.msgHistory[sessionID] = &MessageHistory{
			Messages: make([]generator.WSMessage, 0),
		}
	}
	ui.sessionsM.Unlock()

	go func() {
		defer ui.cleanupSession(sessionID, progress)

		progress.UpdateState(generator.StateGenerating)
		if err := generator.GenerateFiche(progress, ui.deps, req); err != nil {
			log.Printf("[Session %s] generation error: %v", sessionID, err)
			progress.Error = err
			progress.UpdateState(generator.StateError)
			return
		}
		progress.UpdateState(generator.StateCompleted)
	}()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"sessionId": sessionID,
	})
}

func (ui *GeneratorUI) parseGenerateForm(r *http.Request) (generator.Request, error) {
	var req generator.Request

	if err := r.ParseMultipartForm(maxSyllabusBytes); err != nil {
		// Plain forms without a syllabus upload are fine too.
		if err := r.ParseForm(); err != nil {
			return req, errBadForm
		}
	}

	req.Topic = r.FormValue("topic")
	if req.Topic == "" {
		return req, errMissingTopic
	}

	req.Role = fichegen.RoleStudent
	if r.FormValue("role") == string(fichegen.RoleTeacher) {
		req.Role = fichegen.RoleTeacher
	}
	req.ClassLevel = r.FormValue("level")
	req.Subject = r.FormValue("subject")
	req.Country = r.FormValue("country")
	req.Theme = r.FormValue("theme")
	req.ShowCover = r.FormValue("cover") != ""
	req.Watermark = r.FormValue("watermark")
	if n, err := strconv.Atoi(r.FormValue("tocpages")); err == nil && n > 0 {
		req.TocPages = n
	}

	if file, _, err := r.FormFile("syllabus"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxSyllabusBytes))
		if err != nil {
			return req, err
		}
		req.Syllabus = data
	}

	return req, nil
}

// handleDownload serves the generated fiche for a session, either the PDF or
// the markdown source.
func (ui *GeneratorUI) handleDownload(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	kind := chi.URLParam(r, "kind")
	if !isValidSession(sessionID) {
		http.Error(w, "Invalid session", http.StatusBadRequest)
		return
	}
	if kind != "pdf" && kind != "md" {
		http.Error(w, "Unknown download kind", http.StatusBadRequest)
		return
	}

	path, err := ui.sessionFile(sessionID, "."+kind)
	if err != nil {
		http.Error(w, "Fiche not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filepath.Base(path)))
	http.ServeFile(w, r, path)
}

// sessionFile finds the single fiche file with the given extension in a
// session's output directory.
func (ui *GeneratorUI) sessionFile(sessionID, ext string) (string, error) {
	dir := filepath.Join(ui.deps.OutputDir, sessionID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ext {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", os.ErrNotExist
}

func (ui *GeneratorUI) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	w.Header().Set("Content-Type", "application/json")

	ui.sessionsM.RLock()
	history, exists := ui.msgHistory[sessionID]
	ui.sessionsM.RUnlock()

	messages := []generator.WSMessage{}
	if exists {
		messages = history.GetMessages()
	}

	if err := json.NewEncoder(w).Encode(messages); err != nil {
		log.Printf("failed to encode messages for session %s: %v", sessionID, err)
		http.Error(w, "Failed to encode messages", http.StatusInternalServerError)
	}
}

// handleGetMessagesHTML is the polling fallback for clients without a
// WebSocket connection.
func (ui *GeneratorUI) handleGetMessagesHTML(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	ui.sessionsM.RLock()
	history, exists := ui.msgHistory[sessionID]
	ui.sessionsM.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !exists {
		return
	}
	io.WriteString(w, formatMessages(history.GetMessages()))
}

func (ui *GeneratorUI) handleCheckSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cookie, err := r.Cookie("session_id")
	if err != nil || !isValidSession(cookie.Value) {
		if err == nil {
			// Clear the bad cookie.
			http.SetCookie(w, &http.Cookie{
				Name:     "session_id",
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		json.NewEncoder(w).Encode(map[string]any{"active": false})
		return
	}

	sessionID := cookie.Value
	ui.sessionsM.RLock()
	_, active := ui.sessions[sessionID]
	ui.sessionsM.RUnlock()

	json.NewEncoder(w).Encode(map[string]any{
		"active":    active,
		"sessionId": sessionID,
	})
}
