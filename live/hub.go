// Package live fans inventory change notifications out to connected
// storefront and admin clients over websockets. Messages carry only the
// changed storage key: receivers re-read, they never trust an inline
// value, since the writing surface may mutate again before a slow
// reader catches up.
package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/cartelroasters/storefront/utils"
)

const EventInventoryUpdate = "inventory_update"

type Message struct {
	Event string `json:"event"`
	Key   string `json:"key"`
}

type client struct {
	key       string // storage key the client watches
	sessionID string // writer exclusion: a surface never hears its own writes
}

type hub struct {
	clients map[*websocket.Conn]client
	mutex   sync.Mutex
}

var liveHub = hub{
	clients: make(map[*websocket.Conn]client),
}

// RegisterClient starts relaying changes of key to conn. A client
// watches exactly one key at a time; switching branches means
// reconnecting, which also drops the old subscription.
func RegisterClient(conn *websocket.Conn, key, sessionID string) {
	liveHub.mutex.Lock()
	defer liveHub.mutex.Unlock()
	liveHub.clients[conn] = client{key: key, sessionID: sessionID}
}

func UnregisterClient(conn *websocket.Conn) {
	liveHub.mutex.Lock()
	defer liveHub.mutex.Unlock()
	delete(liveHub.clients, conn)
	conn.Close()
}

// NotifyKey relays a change notification to every client watching
// exactly key, except clients registered under the writer's session.
func NotifyKey(key, writerID string) {
	liveHub.mutex.Lock()
	defer liveHub.mutex.Unlock()

	data, err := json.Marshal(Message{Event: EventInventoryUpdate, Key: key})
	if err != nil {
		utils.ErrorLogger.Errorf("error marshaling live message: %v", err)
		return
	}

	for conn, c := range liveHub.clients {
		if c.key != key || c.sessionID == writerID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Errorf("error sending live message: %v", err)
		}
	}
}
