package calendar

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
)

// Bucket cupos периода, сгруппированные по дате услуги (YYYY-MM-DD)
// Строится заново на каждую выборку и после построения не меняется
type Bucket struct {
	period Period
	days   map[string][]domain.CupoSlot
	total  int
}

// BuildBucket группирует cupos по точной дате услуги без учета времени
// Cupos вне периода отбрасываются, порядок внутри дня сохраняется
func BuildBucket(period Period, slots []domain.CupoSlot) *Bucket {
	b := &Bucket{
		period: period,
		days:   make(map[string][]domain.CupoSlot),
	}

	for _, slot := range slots {
		if !period.Contains(slot.Date) {
			continue
		}
		key := DateKey(slot.Date)
		b.days[key] = append(b.days[key], slot)
		b.total++
	}

	return b
}

// Period диапазон, для которого построен bucket
func (b *Bucket) Period() Period {
	return b.period
}

// Slots возвращает копию cupos за день
func (b *Bucket) Slots(day time.Time) []domain.CupoSlot {
	return b.SlotsByKey(DateKey(day))
}

// SlotsByKey возвращает копию cupos за день по ключу YYYY-MM-DD
func (b *Bucket) SlotsByKey(key string) []domain.CupoSlot {
	slots := b.days[key]
	out := make([]domain.CupoSlot, len(slots))
	copy(out, slots)
	return out
}

// Count количество cupos за день
func (b *Bucket) Count(day time.Time) int {
	return len(b.days[DateKey(day)])
}

// DayCounts количество cupos по каждому дню периода, включая пустые дни
func (b *Bucket) DayCounts() map[string]int {
	counts := make(map[string]int)
	for _, day := range b.period.Days() {
		key := DateKey(day)
		counts[key] = len(b.days[key])
	}
	return counts
}

// Keys отсортированные даты, в которых есть cupos
func (b *Bucket) Keys() []string {
	keys := make([]string, 0, len(b.days))
	for key := range b.days {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len общее количество cupos в bucket
func (b *Bucket) Len() int {
	return b.total
}

// DateKey ключ дня в формате YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}
