package handler

import (
	"net/http"
)

type WebsocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

// Realtime promove a conexão para websocket; o handshake de sala acontece no próprio socket
func Realtime(hub WebsocketServer) http.HandlerFunc {
	return hub.ServeWS
}
