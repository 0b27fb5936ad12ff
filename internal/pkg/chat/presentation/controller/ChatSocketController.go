package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrixIts/pickup/internal/infrastructure/realtime"
	chat "github.com/TrixIts/pickup/internal/pkg/chat/application/domain"
	"github.com/TrixIts/pickup/internal/pkg/chat/application/usecase"
	repoAdapter "github.com/TrixIts/pickup/internal/pkg/chat/persistence/repository/adapter"
	sessionAdapter "github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/adapter"
)

// ChatSocketController handles the websocket endpoint for realtime session chat.
type ChatSocketController struct {
	router          *realtime.Router
	sendMessageUC   *usecase.SendMessageUseCase
	joinRoomUC      *usecase.JoinRoomUseCase
	inflightTimeout time.Duration
}

func NewChatSocketController(pool *pgxpool.Pool, router *realtime.Router) *ChatSocketController {
	repo := repoAdapter.NewPgChatRepository(pool)
	roster := sessionAdapter.NewPgSessionRepository(pool)
	return &ChatSocketController{
		router:          router,
		sendMessageUC:   usecase.NewSendMessageUseCase(repo, roster),
		joinRoomUC:      usecase.NewJoinRoomUseCase(roster),
		inflightTimeout: 5 * time.Second,
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when auth is added.
		return true
	},
}

type inboundFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Body      string `json:"body,omitempty"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

type ackFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
}

type outboundMessage struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Message   messagePayload `json:"message"`
}

type messagePayload struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades HTTP connections to websocket and processes frames until the client disconnects.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just log and return.
			return
		}

		conn := realtime.NewConnection(userID, ws)
		ctl.router.Attach(conn)
		defer func() {
			ctl.router.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "socket closed")
		}()

		ws.SetReadLimit(1 << 20) // 1MB payload cap
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		handshakeAck := ackFrame{Type: "connected"}
		if payload, err := json.Marshal(handshakeAck); err == nil {
			_ = conn.Send(payload)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				ctl.replyError(conn, "read_error", err.Error())
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			switch frame.Type {
			case "join":
				ctl.handleJoin(c, conn, frame)
			case "leave":
				ctl.handleLeave(conn, frame)
			case "message":
				ctl.handleMessage(c, conn, userID, frame)
			default:
				ctl.replyError(conn, "unsupported_type", "unknown frame type")
			}
		}
	}
}

func (ctl *ChatSocketController) handleJoin(c *gin.Context, conn *realtime.Connection, frame inboundFrame) {
	if frame.SessionID == "" {
		ctl.replyError(conn, "bad_request", "session_id is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	err := ctl.joinRoomUC.Execute(ctx, usecase.JoinRoomInput{
		SessionID: frame.SessionID,
		UserID:    conn.UserID,
	})
	if err != nil {
		ctl.handleUseCaseError(conn, err)
		return
	}

	ctl.router.Join(frame.SessionID, conn)

	ack := ackFrame{Type: "joined", SessionID: frame.SessionID}
	if payload, err := json.Marshal(ack); err == nil {
		_ = conn.Send(payload)
	}
}

func (ctl *ChatSocketController) handleLeave(conn *realtime.Connection, frame inboundFrame) {
	if frame.SessionID == "" {
		ctl.replyError(conn, "bad_request", "session_id is required")
		return
	}
	ctl.router.Leave(frame.SessionID, conn)

	ack := ackFrame{Type: "left", SessionID: frame.SessionID}
	if payload, err := json.Marshal(ack); err == nil {
		_ = conn.Send(payload)
	}
}

func (ctl *ChatSocketController) handleMessage(c *gin.Context, conn *realtime.Connection, userID string, frame inboundFrame) {
	if frame.SessionID == "" {
		ctl.replyError(conn, "bad_request", "session_id is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	result, err := ctl.sendMessageUC.Execute(ctx, usecase.SendMessageInput{
		SessionID: frame.SessionID,
		SenderID:  userID,
		Body:      frame.Body,
	})
	if err != nil {
		ctl.handleUseCaseError(conn, err)
		return
	}

	out := outboundMessage{
		Type:      "message",
		SessionID: frame.SessionID,
		Message:   toPayload(*result),
	}

	payload, err := json.Marshal(out)
	if err != nil {
		ctl.replyError(conn, "internal_error", "failed to encode message")
		return
	}

	// Echo to the sender too so all clients render from one source of truth.
	ctl.router.Broadcast(frame.SessionID, payload, "")
}

func (ctl *ChatSocketController) handleUseCaseError(conn *realtime.Connection, err error) {
	switch {
	case errors.Is(err, chat.ErrNotParticipant):
		ctl.replyError(conn, "forbidden", err.Error())
	case errors.Is(err, usecase.ErrPersistence):
		ctl.replyError(conn, "internal_error", err.Error())
	default:
		ctl.replyError(conn, "bad_request", err.Error())
	}
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, code string, msg string) {
	frame := errorFrame{Type: "error", Code: code, Error: msg}
	if payload, err := json.Marshal(frame); err == nil {
		_ = conn.Send(payload)
	}
}

func toPayload(m chat.ChatMessage) messagePayload {
	return messagePayload{
		ID:        m.ID,
		SessionID: m.SessionID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}
