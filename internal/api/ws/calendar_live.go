package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-TravelDesk/internal/api/handlers"
	getCalendarHandler "github.com/m04kA/SMC-TravelDesk/internal/api/handlers/get_calendar"
	"github.com/m04kA/SMC-TravelDesk/internal/calendar"
	getCalendar "github.com/m04kA/SMC-TravelDesk/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 16

	msgInvalidQuery   = "некорректные параметры календаря"
	msgInvalidCommand = "некорректная команда"
	msgFetchFailed    = "не удалось загрузить cupos"
)

var errUnknownCommand = errors.New("ws: unknown command")

// CalendarLive живой календарь cupos поверх websocket
// Каждая навигация запускает выборку в отдельной горутине; применяется только ответ на последнюю навигацию
type CalendarLive struct {
	fetcher  CalendarFetcher
	observer calendar.StaleObserver
	upgrader websocket.Upgrader
	logger   Logger
	now      func() time.Time
}

// NewCalendarLive создает обработчик живого календаря; observer может быть nil
func NewCalendarLive(fetcher CalendarFetcher, observer calendar.StaleObserver, logger Logger) *CalendarLive {
	return &CalendarLive{
		fetcher:  fetcher,
		observer: observer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
		now:    time.Now,
	}
}

// Handle GET /api/v1/cupos/calendar/live?view=&date=&serviceId=&providerId=
func (c *CalendarLive) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := getCalendarHandler.ParseQuery(r.URL.Query(), c.now())
	if err != nil {
		c.logger.Warn("GET /cupos/calendar/live - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.Warn("GET /cupos/calendar/live - Upgrade failed: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc := &liveConn{
		conn:    conn,
		fetcher: c.fetcher,
		session: calendar.NewSession(req.View, req.Date, c.observer),
		filter:  req.Filter,
		send:    make(chan outgoing, sendBuffer),
		ctx:     ctx,
		cancel:  cancel,
		logger:  c.logger,
	}

	c.logger.Info("GET /cupos/calendar/live - Connection opened: view=%s, date=%s", req.View, req.Date.Format("2006-01-02"))

	go lc.writePump()
	lc.start(lc.session.Begin())
	lc.readPump()
}

// outgoing кадр в очереди на запись; кадр с тикетом пишется, только если тикет еще последний
type outgoing struct {
	ticket *calendar.Ticket
	data   []byte
}

// liveConn одно websocket соединение со своей сессией календаря
type liveConn struct {
	conn    *websocket.Conn
	fetcher CalendarFetcher
	session *calendar.Session
	filter  getCalendar.Filter
	send    chan outgoing
	ctx     context.Context
	cancel  context.CancelFunc
	logger  Logger
}

func (lc *liveConn) readPump() {
	defer func() {
		lc.cancel()
		lc.conn.Close()
	}()

	lc.conn.SetReadLimit(maxMessageSize)
	_ = lc.conn.SetReadDeadline(time.Now().Add(pongWait))
	lc.conn.SetPongHandler(func(string) error {
		return lc.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := lc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				lc.logger.Warn("CalendarLive: read error: %v", err)
			}
			return
		}

		if err := lc.handleCommand(raw); err != nil {
			lc.logger.Warn("CalendarLive: %v", err)
			lc.enqueue(newMessage(TypeError, 0, ErrorPayload{Error: msgInvalidCommand}))
		}
	}
}

func (lc *liveConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		lc.conn.Close()
	}()

	for {
		select {
		case <-lc.ctx.Done():
			_ = lc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = lc.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case out := <-lc.send:
			// writePump единственный писатель: проверка здесь гарантирует, что после кадра seq N
			// кадр с меньшим seq уже не уйдет
			if out.ticket != nil && !lc.session.Deliverable(*out.ticket) {
				continue
			}
			_ = lc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := lc.conn.WriteMessage(websocket.TextMessage, out.data); err != nil {
				lc.cancel()
				return
			}

		case <-ticker.C:
			_ = lc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := lc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				lc.cancel()
				return
			}
		}
	}
}

func (lc *liveConn) handleCommand(raw []byte) error {
	var cmd Command
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return fmt.Errorf("decode command: %w", err)
	}

	switch cmd.Type {
	case TypeNavigate:
		if cmd.Steps == 0 {
			return fmt.Errorf("navigate: steps must not be zero")
		}
		lc.start(lc.session.Navigate(cmd.Steps))

	case TypeSetView:
		view, err := calendar.ParseViewMode(cmd.View)
		if err != nil {
			return fmt.Errorf("setView: %w", err)
		}
		lc.start(lc.session.SetView(view))

	case TypeSetDate:
		date, err := validation.ParseDate(cmd.Date)
		if err != nil {
			return fmt.Errorf("setDate: %w", err)
		}
		lc.start(lc.session.SetDate(date))

	case TypePing:
		lc.enqueue(newMessage(TypePong, 0, nil))

	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, cmd.Type)
	}

	return nil
}

// start запускает выборку по тикету; результат применяется, только если тикет остался последним
func (lc *liveConn) start(t calendar.Ticket) {
	go func() {
		bucket, err := lc.fetcher.Fetch(lc.ctx, t.Period, lc.filter)
		if err != nil {
			if lc.ctx.Err() != nil || !lc.session.Deliverable(t) {
				return
			}
			lc.logger.Error("CalendarLive: fetch failed for period=%s: %v", t.Period, err)
			lc.enqueueFor(&t, newMessage(TypeError, t.Seq(), ErrorPayload{Error: msgFetchFailed}))
			return
		}

		if !lc.session.Apply(t, bucket) {
			return
		}

		resp := lc.fetcher.Materialize(t.View, t.Ref, bucket)
		if !lc.session.Deliverable(t) {
			return
		}
		lc.enqueueFor(&t, newMessage(TypeCalendar, t.Seq(), handlers.FromCalendar(resp)))
	}()
}

func (lc *liveConn) enqueue(msg Message) {
	lc.enqueueFor(nil, msg)
}

// enqueueFor ставит в очередь кадр, привязанный к тикету; nil для кадров вне навигации
func (lc *liveConn) enqueueFor(t *calendar.Ticket, msg Message) {
	data, err := msg.JSON()
	if err != nil {
		lc.logger.Error("CalendarLive: failed to encode message: %v", err)
		return
	}

	select {
	case lc.send <- outgoing{ticket: t, data: data}:
	case <-lc.ctx.Done():
	}
}
