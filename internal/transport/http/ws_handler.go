package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"formquiz-service/internal/app"
	"formquiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Value string `json:"value"`
}

type jumpPayload struct {
	Index int `json:"index"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs one quiz session over the connection.
// The session lives as long as the socket.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := r.URL.Query().Get("quizId")
	participantID := r.URL.Query().Get("participantId")
	if quizID == "" {
		http.Error(w, "missing quizId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	view, err := h.service.Start(ctx, quizID, participantID)
	if err != nil {
		_ = conn.WriteJSON(failure(err))
		return
	}
	sessionID := view.SessionID
	defer h.service.Close(ctx, sessionID)

	updates, cancel, err := h.service.Subscribe(ctx, sessionID)
	if err != nil {
		_ = conn.WriteJSON(failure(err))
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		var reported string
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				msgs := []outboundMessage[any]{{Type: "state", Payload: update}}
				// one "completed" per attempt, whether submitted or timed out
				if update.Status == app.StatusCompleted && update.Attempt != nil && update.Attempt.ID != reported {
					reported = update.Attempt.ID
					msgs = append(msgs, outboundMessage[any]{Type: "completed", Payload: update.Attempt})
				}
				for _, msg := range msgs {
					select {
					case send <- msg:
					case <-closeSignals:
						return
					}
				}
			case <-closeSignals:
				return
			}
		}
	}()

	reply := func(msg outboundMessage[any]) {
		select {
		case send <- msg:
		case <-writerDone:
		}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(r, sessionID, inbound); err != nil {
			reply(failure(err))
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// dispatch applies one client command. Resulting views reach the client through the
// session subscription.
func (h *WSHandler) dispatch(r *http.Request, sessionID string, inbound inboundMessage) error {
	ctx := r.Context()
	var err error
	switch inbound.Type {
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errors.New("invalid answer payload")
		}
		_, err = h.service.Answer(ctx, sessionID, payload.Value)
	case "next":
		_, err = h.service.Next(ctx, sessionID)
	case "previous":
		_, err = h.service.Previous(ctx, sessionID)
	case "jump":
		var payload jumpPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errors.New("invalid jump payload")
		}
		_, err = h.service.JumpTo(ctx, sessionID, payload.Index)
	case "submit":
		_, err = h.service.Submit(ctx, sessionID)
	case "retake":
		_, err = h.service.Retake(ctx, sessionID)
	default:
		return errors.New("unsupported message type")
	}
	return err
}

func failure(err error) outboundMessage[any] {
	if domain.IsRefusal(err) {
		return outboundMessage[any]{Type: "refused", Payload: errorPayload{Message: err.Error()}}
	}
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
}
