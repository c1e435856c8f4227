package generator

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type GenerationState string

const (
	StateInitialized GenerationState = "initialized"
	StateConnected   GenerationState = "connected"
	StateGenerating  GenerationState = "generating"
	StateCompleted   GenerationState = "completed"
	StateError       GenerationState = "error"
)

// GenerationProgress tracks one fiche generation session and relays progress
// messages to the attached WebSocket, when there is one.
type GenerationProgress struct {
	mu        sync.RWMutex
	SessionID string
	State     GenerationState
	Output    string
	Error     error
	WSConn    *websocket.Conn
	Done      chan bool
	StartTime time.Time
	IsActive  bool
}

func (gp *GenerationProgress) Close() {
	gp.Lock()
	defer gp.Unlock()
	if gp.WSConn != nil {
		gp.WSConn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		gp.WSConn.Close()
		gp.WSConn = nil
	}
}

func (p *GenerationProgress) SendUpdate(message string) error {
	p.Lock()
	defer p.Unlock()

	msg := WSMessage{
		Type:      "update",
		Status:    string(p.State),
		Message:   message,
		Output:    p.Output,
		Timestamp: time.Now(),
	}

	// History gets the message even when no socket is attached.
	if messageEmitter != nil {
		if err := messageEmitter(p.SessionID, msg); err != nil {
			log.Printf("[Session %s] failed to emit message to history: %v", p.SessionID, err)
		}
	}

	if p.WSConn != nil {
		if err := p.WSConn.WriteJSON(msg); err != nil {
			log.Printf("[Session %s] failed to send WebSocket message: %v", p.SessionID, err)
			return err
		}
	} else {
		log.Printf("[Session %s] message queued (no WebSocket): %s", p.SessionID, message)
	}

	return nil
}

func (p *GenerationProgress) UpdateState(state GenerationState) {
	p.Lock()
	p.State = state
	p.Unlock()

	message := ""
	switch state {
	case StateGenerating:
		message = "📝 Génération de la fiche en cours..."
	case StateCompleted:
		message = "✨ Fiche générée avec succès !"
	case StateError:
		message = "❌ Erreur pendant la génération"
	}

	p.SendUpdate(message)
}

// UpdateOutput satisfies the pipeline's progress interface.
func (p *GenerationProgress) UpdateOutput(output string) {
	p.Lock()
	p.Output = output
	p.Unlock()
	p.SendUpdate(output)
}

func (p *GenerationProgress) SetActive(active bool) {
	p.Lock()
	p.IsActive = active
	p.Unlock()
}

func (gp *GenerationProgress) Lock() {
	gp.mu.Lock()
}

func (gp *GenerationProgress) Unlock() {
	gp.mu.Unlock()
}

func (gp *GenerationProgress) GetState() GenerationState {
	gp.mu.RLock()
	defer gp.mu.RUnlock()
	return gp.State
}

func (gp *GenerationProgress) IsStillActive() bool {
	gp.mu.RLock()
	defer gp.mu.RUnlock()
	return gp.IsActive
}

func (gp *GenerationProgress) IsDone() bool {
	return gp.GetState() == StateCompleted
}

type WSMessage struct {
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

func NewWSMessage(msgType, status, message, output string) WSMessage {
	return WSMessage{
		Type:      msgType,
		Status:    status,
		Message:   message,
		Output:    output,
		Timestamp: time.Now(),
	}
}

var messageEmitter func(sessionID string, msg WSMessage) error

// SetMessageEmitter installs the history sink that receives every progress
// message, socket or not.
func SetMessageEmitter(emitter func(sessionID string, msg WSMessage) error) {
	messageEmitter = emitter
}
