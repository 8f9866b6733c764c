package ws

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/TheoHill/Piza-Motors/internal/listing"
)

// Message types sent to the client.
const (
	MsgTypeView  = "view"  // recomputed listing view
	MsgTypeError = "error" // bad event from the client
)

// Event types accepted from the client. Each maps onto one controller
// transition.
const (
	EventSetFilter    = "set_filter"
	EventSetSearch    = "set_search"
	EventSetSort      = "set_sort"
	EventSetPage      = "set_page"
	EventClearFilters = "clear_filters"
	EventClearSearch  = "clear_search"
)

// Message is the server-to-client frame.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Event is the client-to-server frame. Only the field matching the event
// type is consulted.
type Event struct {
	Type   string          `json:"type"`
	Filter *listing.Filter `json:"filter,omitempty"`
	Search string          `json:"search,omitempty"`
	Sort   string          `json:"sort,omitempty"`
	Page   int             `json:"page,omitempty"`
}

// Session is one live listing connection.
type Session struct {
	hub        *Hub
	conn       *websocket.Conn
	logger     *zap.Logger
	controller *listing.Controller
	send       chan []byte
}

// NewSession wraps an upgraded connection around its own controller.
func NewSession(hub *Hub, conn *websocket.Conn, logger *zap.Logger, controller *listing.Controller) *Session {
	return &Session{
		hub:        hub,
		conn:       conn,
		logger:     logger,
		controller: controller,
		send:       make(chan []byte, 16),
	}
}

// Register adds the session to the hub and queues the initial view so the
// client can render without sending anything first.
func (s *Session) Register() {
	s.hub.register <- s
	s.queueView()
}

// Unregister removes the session from the hub.
func (s *Session) Unregister() {
	s.hub.unregister <- s
}

// ReadPump consumes client events until the connection drops.
func (s *Session) ReadPump() {
	defer func() {
		s.Unregister()
		s.conn.Close()
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			break
		}
		s.handleEvent(data)
	}
}

// WritePump drains the send queue onto the connection.
func (s *Session) WritePump() {
	defer s.conn.Close()

	for message := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

func (s *Session) handleEvent(data []byte) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		s.queueError("malformed event")
		return
	}

	switch ev.Type {
	case EventSetFilter:
		f := listing.Filter{}
		if ev.Filter != nil {
			f = *ev.Filter
		}
		s.controller.SetFilter(f)
	case EventSetSearch:
		s.controller.SetSearch(ev.Search)
	case EventSetSort:
		s.controller.SetSort(listing.ParseSortKey(ev.Sort))
	case EventSetPage:
		s.controller.SetPage(ev.Page)
	case EventClearFilters:
		s.controller.ClearFilters()
	case EventClearSearch:
		s.controller.ClearSearch()
	default:
		s.queueError("unknown event type: " + ev.Type)
		return
	}

	s.queueView()
}

func (s *Session) queueView() {
	s.queue(Message{Type: MsgTypeView, Data: s.controller.View()})
}

func (s *Session) queueError(reason string) {
	s.queue(Message{Type: MsgTypeError, Data: reason})
}

func (s *Session) queue(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("Failed to marshal session message", zap.Error(err))
		return
	}
	select {
	case s.send <- data:
	default:
		s.logger.Warn("Session send buffer full, dropping message")
	}
}
