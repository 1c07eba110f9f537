package game

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(NewService()).RegisterRoute(engine)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dialPlayer(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) serverEnvelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var env serverEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func writeJSON(t *testing.T, conn *websocket.Conn, payload string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(payload)))
}

func TestHandler_CreateJoinReadyOverWebsocket(t *testing.T) {
	_, url := newTestServer(t)

	host := dialPlayer(t, url)
	ann := dialPlayer(t, url)
	bob := dialPlayer(t, url)

	writeJSON(t, host, `{"type":"create_room"}`)
	created := readEnvelope(t, host)
	require.Equal(t, typeRoomCreated, created.Type)
	require.NotEmpty(t, created.RoomId)

	join := `{"type":"join_room","roomId":"` + created.RoomId + `"}`
	writeJSON(t, ann, join)
	assert.Equal(t, typeJoined, readEnvelope(t, ann).Type)

	writeJSON(t, bob, join)
	assert.Equal(t, typeJoined, readEnvelope(t, bob).Type)
	assert.Equal(t, typeReadyToStart, readEnvelope(t, bob).Type)
	assert.Equal(t, typeReadyToStart, readEnvelope(t, ann).Type)
}

func TestHandler_MalformedFramesAreDroppedSilently(t *testing.T) {
	_, url := newTestServer(t)

	host := dialPlayer(t, url)
	writeJSON(t, host, `garbage{{{`)
	writeJSON(t, host, `{"type":"create_room"}`)

	// the connection survives the garbage and the next frame is served
	created := readEnvelope(t, host)
	assert.Equal(t, typeRoomCreated, created.Type)
}
