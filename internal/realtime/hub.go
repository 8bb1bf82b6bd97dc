// Package realtime mantém as conexões websocket do dashboard e entrega os eventos por sala
package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DashboardRoom = "dashboard"

	EventJoinDashboard = "join-dashboard"
	EventJoined        = "joined"
	EventNewSale       = "newSale"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 32
)

var ErrHubClosed = errors.New("hub encerrado")

// Frame é o envelope trocado com o navegador: {"event": "...", "data": ...}
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type inboundFrame struct {
	Event string              `json:"event"`
	Data  jsoniter.RawMessage `json:"data,omitempty"`
}

type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	rooms    map[string]map[*Client]struct{}
	closed   bool
	upgrader websocket.Upgrader
}

func NewHub(allowedOrigins []string) *Hub {
	h := &Hub{
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}

	return h
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowed["*"] {
			return true
		}
		return allowed[origin]
	}
}

// ServeWS faz o upgrade da conexão e registra o cliente no hub
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("Falha no upgrade do websocket")
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar id do cliente websocket")
		conn.Close()
		return
	}

	client := &Client{
		ID:   id,
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	if !h.register(client) {
		conn.Close()
		return
	}

	logrus.WithField("client_id", client.ID).Info("Cliente conectado ao websocket")

	go client.writePump()
	go client.readPump()
}

func (h *Hub) register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}

	delete(h.clients, c)
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	close(c.send)
	h.mu.Unlock()

	logrus.WithField("client_id", c.ID).Info("Cliente desconectado do websocket")
}

// Join adiciona o cliente à sala, chamadas repetidas não duplicam a inscrição
func (h *Hub) Join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
}

// BroadcastFrame serializa o frame uma única vez e entrega aos membros da sala
func (h *Hub) BroadcastFrame(room string, frame Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar evento %s", frame.Event)
	}
	return h.BroadcastRaw(room, payload)
}

// BroadcastRaw entrega um frame já serializado; clientes com buffer cheio são desconectados
func (h *Hub) BroadcastRaw(room string, payload []byte) error {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return ErrHubClosed
	}

	slow := make([]*Client, 0)
	for c := range h.rooms[room] {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logrus.WithField("client_id", c.ID).Warn("Cliente websocket lento, desconectando")
		h.unregister(c)
	}

	return nil
}

// NotifyNewSale emite o evento newSale para a sala do dashboard
func (h *Hub) NotifyNewSale(_ context.Context, sale *domain.SaleDetails) error {
	return h.BroadcastFrame(DashboardRoom, Frame{Event: EventNewSale, Data: sale})
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Close desconecta todos os clientes e recusa novas conexões
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

func (c *Client) handle(message []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(message, &frame); err != nil {
		logrus.WithFields(logrus.Fields{
			"client_id": c.ID,
			"error":     err,
		}).Debug("Mensagem websocket inválida ignorada")
		return
	}

	switch frame.Event {
	case EventJoinDashboard:
		c.hub.Join(c, DashboardRoom)
		c.reply(Frame{Event: EventJoined, Data: DashboardRoom})
		logrus.WithField("client_id", c.ID).Info("Cliente entrou na sala do dashboard")
	default:
		logrus.WithFields(logrus.Fields{
			"client_id": c.ID,
			"event":     frame.Event,
		}).Debug("Evento websocket desconhecido")
	}
}

func (c *Client) reply(frame Frame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}

	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()

	if _, ok := c.hub.clients[c]; !ok {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithFields(logrus.Fields{
					"client_id": c.ID,
					"error":     err,
				}).Warn("Conexão websocket encerrada inesperadamente")
			}
			return
		}
		c.handle(message)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
