package ui

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/opd-ai/fichegen/srv/generator"
)

func (ui *GeneratorUI) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "No session found", http.StatusBadRequest)
		return
	}

	sessionID := cookie.Value
	if !isValidSession(sessionID) {
		http.Error(w, "Invalid session", http.StatusBadRequest)
		return
	}

	ui.sessionsM.RLock()
	progress, exists := ui.sessions[sessionID]
	ui.sessionsM.RUnlock()

	if !exists {
		// A finished session may still live in the cache.
		if cachedProgress, found := ui.cache.Get(sessionID); found {
			progress = cachedProgress.(*generator.GenerationProgress)
		} else {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Session %s] WebSocket upgrade failed: %v", sessionID, err)
		return
	}

	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("[Session %s] error closing WebSocket: %v", sessionID, err)
		}
		progress.Lock()
		if progress.WSConn == conn {
			progress.WSConn = nil
		}
		progress.Unlock()
	}()

	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	// Replay history so a reconnecting client catches up.
	ui.sessionsM.RLock()
	history, hasHistory := ui.msgHistory[sessionID]
	ui.sessionsM.RUnlock()
	if hasHistory {
		for _, msg := range history.GetMessages() {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("[Session %s] failed to send historical message: %v", sessionID, err)
			}
		}
	}

	progress.Lock()
	if progress.WSConn != nil {
		progress.WSConn.Close()
	}
	progress.WSConn = conn
	progress.Unlock()

	initialMsg := generator.NewWSMessage(
		"update",
		string(generator.StateConnected),
		"Connexion établie",
		"📝 Préparation de la fiche...",
	)
	if err := conn.WriteJSON(initialMsg); err != nil {
		log.Printf("[Session %s] failed to send initial message: %v", sessionID, err)
		return
	}
	ui.AddMessage(sessionID, initialMsg)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Session %s] WebSocket error: %v", sessionID, err)
			}
			break
		}
		if messageType == websocket.CloseMessage {
			break
		}
	}
}
