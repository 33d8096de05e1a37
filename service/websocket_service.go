package service

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nextute/chatbot-be/types"
)

type WebSocketService struct {
	chat     *ChatService
	upgrader websocket.Upgrader
}

func NewWebSocketService(chat *ChatService) *WebSocketService {
	return &WebSocketService{
		chat: chat,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

// HandleChat upgrades the connection and serves chat frames until the client
// disconnects. Each chat frame carries the same payload as POST /chat.
func (s *WebSocketService) HandleChat(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ctx := c.Request.Context()
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			s.writeError(conn, "Error processing message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "Error processing message")
				continue
			}
			var chatReq types.ChatRequest
			if err := json.Unmarshal(payloadBytes, &chatReq); err != nil {
				s.writeError(conn, "Error processing message")
				continue
			}
			resp, err := s.chat.Answer(ctx, chatReq.Query, chatReq.ConversationHistory, chatReq.UseSemanticSearch)
			if err != nil {
				if errors.Is(err, types.ErrEmptyQuery) {
					s.writeError(conn, err.Error())
				} else {
					s.writeError(conn, "Error processing message")
				}
				continue
			}
			if err := conn.WriteJSON(types.WebSocketResponse{
				Type:    types.TypeWebsocketChat,
				Payload: resp,
			}); err != nil {
				log.Println("Write error:", err)
			}
		case types.TypeWebsocketPing:
			if err := conn.WriteJSON(types.WebSocketResponse{
				Type: types.TypeWebsocketPong,
			}); err != nil {
				log.Println("Write error:", err)
			}
		default:
			log.Println("Invalid message type:", req.Type)
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebSocketErrorResponse{Message: message},
	}); err != nil {
		log.Println("Write error:", err)
	}
}
