package calendar

import (
	"sync"
	"sync/atomic"
	"time"
)

// StaleObserver учитывает отброшенные устаревшие ответы
type StaleObserver interface {
	IncStaleCalendarResponse()
}

// Ticket выдается на каждую навигацию; результат выборки применяется только по последнему тикету
type Ticket struct {
	seq    uint64
	View   ViewMode
	Ref    time.Time
	Period Period
}

// Seq порядковый номер запроса
func (t Ticket) Seq() uint64 {
	return t.seq
}

// Session состояние одного живого календаря: режим, опорная дата и текущий bucket
// Выборки завершаются в других горутинах, поэтому состояние защищено мьютексом
type Session struct {
	mu     sync.Mutex
	seq    atomic.Uint64
	view   ViewMode
	ref    time.Time
	bucket *Bucket

	observer StaleObserver
}

// NewSession создает сессию; observer может быть nil
func NewSession(view ViewMode, ref time.Time, observer StaleObserver) *Session {
	return &Session{
		view:     view,
		ref:      DateOnly(ref),
		observer: observer,
	}
}

// Begin начинает выборку для текущего режима и даты
func (s *Session) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginLocked()
}

// Navigate сдвигает опорную дату на steps единиц текущего режима и начинает выборку
func (s *Session) Navigate(steps int) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ref = Shift(s.view, s.ref, steps)
	return s.beginLocked()
}

// SetView меняет режим и начинает выборку
func (s *Session) SetView(view ViewMode) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = view
	return s.beginLocked()
}

// SetDate меняет опорную дату и начинает выборку
func (s *Session) SetDate(ref time.Time) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ref = DateOnly(ref)
	return s.beginLocked()
}

func (s *Session) beginLocked() Ticket {
	return Ticket{
		seq:    s.seq.Add(1),
		View:   s.view,
		Ref:    s.ref,
		Period: PeriodFor(s.view, s.ref),
	}
}

// Apply устанавливает bucket, если тикет последний; устаревший результат отбрасывается
func (s *Session) Apply(t Ticket, bucket *Bucket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Deliverable(t) {
		return false
	}

	s.bucket = bucket
	return true
}

// IsCurrent проверяет, что тикет еще не вытеснен
func (s *Session) IsCurrent(t Ticket) bool {
	return t.seq == s.seq.Load()
}

// Deliverable как IsCurrent, но вытесненный тикет учитывается как отброшенный ответ
// Вызывающий код должен отбросить результат сразу после false, чтобы он был учтен один раз
func (s *Session) Deliverable(t Ticket) bool {
	if s.IsCurrent(t) {
		return true
	}
	if s.observer != nil {
		s.observer.IncStaleCalendarResponse()
	}
	return false
}

// Snapshot текущий режим, опорная дата и bucket (nil до первой успешной выборки)
func (s *Session) Snapshot() (ViewMode, time.Time, *Bucket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view, s.ref, s.bucket
}
