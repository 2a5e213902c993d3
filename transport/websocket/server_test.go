package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
)

type stubMatches map[string]*entity.Match

func (that stubMatches) GetMatch(_ context.Context, matchID string) (*entity.Match, error) {
	match, ok := that[matchID]
	if !ok {
		return nil, apperror.ErrNotFound
	}

	return match, nil
}

func newTestHub(t *testing.T, matches stubMatches) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), []string{"http://localhost:3000"})
	hub.Attach(matches)

	server := httptest.NewServer(hub)
	t.Cleanup(server.Close)

	return hub, server
}

func dial(t *testing.T, server *httptest.Server, gameID string, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	target := "ws" + strings.TrimPrefix(server.URL, "http") + "/?gameId=" + gameID

	return websocket.DefaultDialer.Dial(target, header)
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var message Message
	require.NoError(t, json.Unmarshal(payload, &message))

	return message
}

func TestHub_Subscribe(t *testing.T) {
	match := entity.NewMatch("abc")
	match.Players = []*entity.Player{{ID: "p1", Name: "Ann", Color: entity.ColorGreen}}

	t.Run("Sends the current state, then every update", func(t *testing.T) {
		// Given: a client watching match abc
		hub, server := newTestHub(t, stubMatches{"abc": match})

		conn, _, err := dial(t, server, "abc", nil)
		require.NoError(t, err)
		defer conn.Close()

		initial := readMessage(t, conn)
		assert.Equal(t, actionInitial, initial.Action)
		assert.Equal(t, "abc", initial.Payload.GameID)
		assert.Equal(t, 1, hub.Subscribers("abc"))

		// When: the match changes
		updated := match.Clone()
		updated.Started = true
		hub.Publish(updated)

		// Then: the client receives the new state
		update := readMessage(t, conn)
		assert.Equal(t, actionUpdate, update.Action)
		assert.True(t, update.Payload.Started)
	})

	t.Run("Updates of other matches are not delivered", func(t *testing.T) {
		hub, server := newTestHub(t, stubMatches{"abc": match})

		conn, _, err := dial(t, server, "abc", nil)
		require.NoError(t, err)
		defer conn.Close()
		readMessage(t, conn)

		hub.Publish(entity.NewMatch("other"))

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
		_, _, err = conn.ReadMessage()
		assert.Error(t, err)
	})

	t.Run("Unknown match is rejected before upgrade", func(t *testing.T) {
		_, server := newTestHub(t, stubMatches{})

		_, resp, err := dial(t, server, "missing", nil)

		require.ErrorIs(t, err, websocket.ErrBadHandshake)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Foreign origin is refused", func(t *testing.T) {
		_, server := newTestHub(t, stubMatches{"abc": match})

		_, resp, err := dial(t, server, "abc", http.Header{"Origin": {"http://evil.example"}})

		require.ErrorIs(t, err, websocket.ErrBadHandshake)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Closed clients are dropped", func(t *testing.T) {
		hub, server := newTestHub(t, stubMatches{"abc": match})

		conn, _, err := dial(t, server, "abc", nil)
		require.NoError(t, err)
		readMessage(t, conn)

		require.NoError(t, conn.Close())

		assert.Eventually(t, func() bool {
			return hub.Subscribers("abc") == 0
		}, 2*time.Second, 10*time.Millisecond)
	})
}
