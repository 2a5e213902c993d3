package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ludo-authority/ludo-backend/internal/entity"
	"github.com/ludo-authority/ludo-backend/transport/view"
)

const (
	writeWait     = 5 * time.Second
	actionUpdate  = "game:update"
	actionInitial = "game:state"
)

type matchGetter interface {
	GetMatch(ctx context.Context, matchID string) (*entity.Match, error)
}

// Message is one frame pushed to a subscriber.
type Message struct {
	Action  string          `json:"action"`
	Payload *view.MatchView `json:"payload"`
}

type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (that *client) send(payload []byte) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return that.conn.WriteMessage(websocket.TextMessage, payload)
}

// Hub pushes match state to the clients watching that match.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader
	matches  matchGetter

	mutex   sync.RWMutex
	clients map[string]map[*client]struct{}
}

func NewHub(logger *slog.Logger, allowedOrigins []string) *Hub {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = struct{}{}
	}

	return &Hub{
		logger: logger.With("component", "websocket"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},
		clients: make(map[string]map[*client]struct{}),
	}
}

// Attach sets the source of the initial snapshot sent on subscribe.
func (that *Hub) Attach(matches matchGetter) {
	that.matches = matches
}

func (that *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		http.Error(w, "gameId is required", http.StatusBadRequest)
		return
	}

	var initial *entity.Match
	if that.matches != nil {
		match, err := that.matches.GetMatch(r.Context(), gameID)
		if err != nil {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}
		initial = match
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{conn: conn}
	that.subscribe(gameID, c)
	defer func() {
		that.unsubscribe(gameID, c)
		conn.Close()
	}()

	log = log.With("gameID", gameID)
	log.Info("websocket connection established")

	if initial != nil {
		if err = that.write(c, actionInitial, initial); err != nil {
			log.Error("failed to send initial state", "error", err)
			return
		}
	}

	// clients only listen; reading detects the close
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			log.Info("websocket connection closed", "error", err)
			return
		}
	}
}

// Publish - sends the match to every subscriber of its id.
func (that *Hub) Publish(match *entity.Match) {
	that.mutex.RLock()
	subscribers := make([]*client, 0, len(that.clients[match.ID]))
	for c := range that.clients[match.ID] {
		subscribers = append(subscribers, c)
	}
	that.mutex.RUnlock()

	for _, c := range subscribers {
		if err := that.write(c, actionUpdate, match); err != nil {
			that.logger.Warn("failed to push match update", "gameID", match.ID, "error", err)
		}
	}
}

func (that *Hub) Subscribers(gameID string) int {
	that.mutex.RLock()
	defer that.mutex.RUnlock()

	return len(that.clients[gameID])
}

func (that *Hub) write(c *client, action string, match *entity.Match) error {
	payload, err := json.Marshal(Message{Action: action, Payload: view.NewMatchView(match)})
	if err != nil {
		return err
	}

	return c.send(payload)
}

func (that *Hub) subscribe(gameID string, c *client) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	if that.clients[gameID] == nil {
		that.clients[gameID] = make(map[*client]struct{})
	}
	that.clients[gameID][c] = struct{}{}
}

func (that *Hub) unsubscribe(gameID string, c *client) {
	that.mutex.Lock()
	defer that.mutex.Unlock()

	delete(that.clients[gameID], c)
	if len(that.clients[gameID]) == 0 {
		delete(that.clients, gameID)
	}
}
