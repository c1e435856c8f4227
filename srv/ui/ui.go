// Package ui provides the web interface for the fiche generator.
package ui

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	secure "github.com/srikrsna/security-headers"

	"github.com/opd-ai/fichegen/srv/generator"
)

//go:embed templates/index.html
var templateFS embed.FS

type GeneratorUI struct {
	router      chi.Router
	deps        generator.Deps
	templates   *template.Template
	sessions    map[string]*generator.GenerationProgress
	sessionsM   sync.RWMutex
	msgHistory  map[string]*MessageHistory
	cache       *cache.Cache
	historyFile string
}

func NewGeneratorUI(deps generator.Deps) *GeneratorUI {
	ui := &GeneratorUI{
		router:      chi.NewRouter(),
		deps:        deps,
		templates:   template.Must(template.ParseFS(templateFS, "templates/index.html")),
		sessions:    make(map[string]*generator.GenerationProgress),
		msgHistory:  make(map[string]*MessageHistory),
		cache:       cache.New(24*time.Hour, 1*time.Hour),
		historyFile: "session_history.json",
	}
	generator.SetMessageEmitter(func(sessionID string, msg generator.WSMessage) error {
		ui.AddMessage(sessionID, msg)
		return nil
	})
	ui.loadHistory()
	ui.setupRoutes()
	ui.startCleanup()
	return ui
}

func (ui *GeneratorUI) startCleanup() {
	go func() {
		cleanupTicker := time.NewTicker(10 * time.Minute)
		saveTicker := time.NewTicker(5 * time.Minute)
		defer cleanupTicker.Stop()
		defer saveTicker.Stop()

		for {
			select {
			case <-cleanupTicker.C:
				ui.cleanupOldSessions()
			case <-saveTicker.C:
				ui.saveHistory()
			}
		}
	}()
}

func (ui *GeneratorUI) cleanupOldSessions() {
	ui.sessionsM.Lock()
	defer ui.sessionsM.Unlock()

	changed := false
	for sessionID, history := range ui.msgHistory {
		history.mu.RLock()
		if len(history.Messages) > 0 {
			lastMsg := history.Messages[len(history.Messages)-1]
			if time.Since(lastMsg.Timestamp) > 1*time.Hour {
				delete(ui.msgHistory, sessionID)
				changed = true
			}
		}
		history.mu.RUnlock()
	}

	if changed {
		go ui.saveHistory()
	}
}

func (ui *GeneratorUI) loadHistory() {
	file, err := os.OpenFile(ui.historyFile, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		log.Printf("error opening history file: %v", err)
		return
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	var history map[string]*MessageHistory
	if err := decoder.Decode(&history); err != nil && err != io.EOF {
		log.Printf("error decoding history: %v", err)
	} else if err == nil {
		ui.msgHistory = history
	}

	if data, ok := ui.cache.Get("message_history"); ok {
		if history, ok := data.(map[string]*MessageHistory); ok {
			ui.msgHistory = history
		}
	}
}

func (ui *GeneratorUI) saveHistory() {
	ui.sessionsM.Lock()
	defer ui.sessionsM.Unlock()

	ui.cache.Set("message_history", ui.msgHistory, cache.DefaultExpiration)

	file, err := os.OpenFile(ui.historyFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		log.Printf("error opening history file for writing: %v", err)
		return
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(ui.msgHistory); err != nil {
		log.Printf("error encoding history: %v", err)
	}
}

func (ui *GeneratorUI) AddMessage(sessionID string, msg generator.WSMessage) {
	ui.sessionsM.Lock()
	history, exists := ui.msgHistory[sessionID]
	if !exists {
		history = &MessageHistory{
			Messages: make([]generator.WSMessage, 0),
		}
		ui.msgHistory[sessionID] = history
	}
	ui.sessionsM.Unlock()

	history.AddMessage(msg)
}

func (ui *GeneratorUI) cleanupSession(sessionID string, progress *generator.GenerationProgress) {
	progress.SetActive(false)
	progress.Lock()
	if progress.WSConn != nil {
		progress.WSConn.Close()
		progress.WSConn = nil
	}
	progress.Unlock()

	ui.sessionsM.Lock()
	delete(ui.sessions, sessionID)
	ui.sessionsM.Unlock()

	// Completed sessions stay retrievable for a day.
	ui.cache.Set(sessionID, progress, 24*time.Hour)

	ui.saveHistory()

	close(progress.Done)
}

func (ui *GeneratorUI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ui.router.ServeHTTP(w, r)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Expose-Headers", "X-Session-Id")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (ui *GeneratorUI) sessionCookieMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		if err != nil || cookie.Value == "" {
			sessionID := uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     "session_id",
				Value:    sessionID,
				Path:     "/",
				MaxAge:   86400,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r)
	})
}

func (ui *GeneratorUI) setupRoutes() {
	headers := &secure.Secure{
		STSMaxAgeSeconds:   86400,
		FrameOption:        secure.FrameSameOrigin,
		ContentTypeNoSniff: true,
		XSSFilterBlock:     true,
	}

	ui.router.Use(middleware.Logger)
	ui.router.Use(middleware.Recoverer)
	ui.router.Use(corsMiddleware)
	ui.router.Use(headers.Middleware())
	ui.router.Use(ui.sessionCookieMiddleware)

	ui.router.Get("/", ui.handleHome)
	ui.router.Get("/health", ui.handleHealthCheck)
	ui.router.With(httprate.LimitByIP(5, time.Minute)).Post("/generate", ui.handleGenerate)
	ui.router.Get("/api/messages/{sessionID}", ui.handleGetMessages)
	ui.router.Get("/api/messages/{sessionID}/html", ui.handleGetMessagesHTML)
	ui.router.Get("/api/outline/{sessionID}", ui.handleOutline)
	ui.router.Get("/download/{sessionID}/{kind}", ui.handleDownload)
	ui.router.Get("/ws/{sessionID}", ui.handleWebSocket)
	ui.router.Get("/check-session", ui.handleCheckSession)

	outputServer := http.FileServer(http.Dir(ui.deps.OutputDir))
	ui.router.Handle("/outputs/*", http.StripPrefix("/outputs/", outputServer))
}
