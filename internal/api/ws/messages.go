package ws

import (
	"encoding/json"
	"time"
)

// MessageType тип сообщения живого календаря
type MessageType string

const (
	// клиент -> сервер
	TypeNavigate MessageType = "navigate"
	TypeSetView  MessageType = "setView"
	TypeSetDate  MessageType = "setDate"
	TypePing     MessageType = "ping"

	// сервер -> клиент
	TypeCalendar MessageType = "calendar"
	TypePong     MessageType = "pong"
	TypeError    MessageType = "error"
)

// Command команда клиента
type Command struct {
	Type  MessageType `json:"type"`
	Steps int         `json:"steps,omitempty"` // navigate: +1 вперед, -1 назад
	View  string      `json:"view,omitempty"`  // setView
	Date  string      `json:"date,omitempty"`  // setDate
}

// Message сообщение сервера
type Message struct {
	Type      MessageType `json:"type"`
	Seq       uint64      `json:"seq,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload,omitempty"`
}

// ErrorPayload описание ошибки команды
type ErrorPayload struct {
	Error string `json:"error"`
}

func newMessage(msgType MessageType, seq uint64, payload any) Message {
	return Message{
		Type:      msgType,
		Seq:       seq,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JSON сериализует сообщение
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}
