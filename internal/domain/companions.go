package domain

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrCompanionNotFound возвращается, когда сопровождающего с таким id нет в списке
	ErrCompanionNotFound = errors.New("companions: companion not found")

	// ErrFormNotOpen возвращается при сохранении без открытой формы добавления/редактирования
	ErrFormNotOpen = errors.New("companions: no companion form is open")
)

// FormMode состояние формы сопровождающего
type FormMode string

const (
	FormIdle    FormMode = "idle"
	FormAdding  FormMode = "adding"
	FormEditing FormMode = "editing"
)

// RecordValidator проверяет запись и возвращает карту ошибок
type RecordValidator func(rec PersonRecord) ValidationErrors

// Companion сопровождающий со стабильным идентификатором
type Companion struct {
	ID     uuid.UUID    `json:"id"`
	Record PersonRecord `json:"record"`
}

// CompanionList упорядоченный список сопровождающих, принадлежащий форме создания пассажира
// Записи адресуются по стабильному id, а не по индексу: удаление не сдвигает идентификаторы
type CompanionList struct {
	order   []uuid.UUID
	records map[uuid.UUID]PersonRecord

	mode    FormMode
	editing uuid.UUID
	draft   PersonRecord

	newID func() uuid.UUID
}

// NewCompanionList создает пустой список
func NewCompanionList() *CompanionList {
	return &CompanionList{
		records: make(map[uuid.UUID]PersonRecord),
		mode:    FormIdle,
		newID:   uuid.New,
	}
}

func (l *CompanionList) init() {
	if l.records == nil {
		l.records = make(map[uuid.UUID]PersonRecord)
	}
	if l.mode == "" {
		l.mode = FormIdle
	}
	if l.newID == nil {
		l.newID = uuid.New
	}
}

// Add валидирует запись и добавляет ее в конец списка
// При ошибках валидации список не меняется
func (l *CompanionList) Add(rec PersonRecord, validate RecordValidator) (uuid.UUID, ValidationErrors) {
	l.init()

	if errs := validate(rec); !errs.IsEmpty() {
		return uuid.Nil, errs
	}

	id := l.newID()
	l.order = append(l.order, id)
	l.records[id] = rec
	return id, nil
}

// Update валидирует запись и заменяет сопровождающего id на том же месте
func (l *CompanionList) Update(id uuid.UUID, rec PersonRecord, validate RecordValidator) (ValidationErrors, error) {
	l.init()

	if _, ok := l.records[id]; !ok {
		return nil, ErrCompanionNotFound
	}

	if errs := validate(rec); !errs.IsEmpty() {
		return errs, nil
	}

	l.records[id] = rec
	return nil, nil
}

// Remove удаляет сопровождающего без валидации
// Если он был открыт на редактирование, форма закрывается
func (l *CompanionList) Remove(id uuid.UUID) error {
	l.init()

	idx := l.IndexOf(id)
	if idx < 0 {
		return ErrCompanionNotFound
	}

	l.order = append(l.order[:idx], l.order[idx+1:]...)
	delete(l.records, id)

	if l.mode == FormEditing && l.editing == id {
		l.reset()
	}
	return nil
}

// Get возвращает копию записи
func (l *CompanionList) Get(id uuid.UUID) (PersonRecord, bool) {
	rec, ok := l.records[id]
	return rec, ok
}

// IndexOf возвращает позицию сопровождающего или -1
func (l *CompanionList) IndexOf(id uuid.UUID) int {
	for i, existing := range l.order {
		if existing == id {
			return i
		}
	}
	return -1
}

// Len количество сопровождающих
func (l *CompanionList) Len() int {
	return len(l.order)
}

// Companions возвращает сопровождающих в порядке добавления
func (l *CompanionList) Companions() []Companion {
	out := make([]Companion, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, Companion{ID: id, Record: l.records[id]})
	}
	return out
}

// Records возвращает только записи в порядке добавления
func (l *CompanionList) Records() []PersonRecord {
	out := make([]PersonRecord, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.records[id])
	}
	return out
}

// Mode текущее состояние формы
func (l *CompanionList) Mode() FormMode {
	l.init()
	return l.mode
}

// EditingID id редактируемого сопровождающего (uuid.Nil вне режима редактирования)
func (l *CompanionList) EditingID() uuid.UUID {
	return l.editing
}

// Draft текущий черновик формы
func (l *CompanionList) Draft() PersonRecord {
	return l.draft
}

// OpenAdd открывает форму добавления с пустой записью, закрывая редактирование
func (l *CompanionList) OpenAdd() {
	l.init()
	l.mode = FormAdding
	l.editing = uuid.Nil
	l.draft = PersonRecord{}
}

// OpenEdit открывает форму редактирования с копией записи, закрывая форму добавления
func (l *CompanionList) OpenEdit(id uuid.UUID) error {
	l.init()

	rec, ok := l.records[id]
	if !ok {
		return ErrCompanionNotFound
	}

	l.mode = FormEditing
	l.editing = id
	l.draft = rec
	return nil
}

// SetDraft заменяет черновик открытой формы
func (l *CompanionList) SetDraft(rec PersonRecord) error {
	if l.Mode() == FormIdle {
		return ErrFormNotOpen
	}
	l.draft = rec
	return nil
}

// Save валидирует черновик и применяет его: добавляет новую запись или заменяет редактируемую
// При ошибках валидации форма остается открытой, список не меняется
func (l *CompanionList) Save(validate RecordValidator) (uuid.UUID, ValidationErrors, error) {
	switch l.Mode() {
	case FormAdding:
		id, errs := l.Add(l.draft, validate)
		if !errs.IsEmpty() {
			return uuid.Nil, errs, nil
		}
		l.reset()
		return id, nil, nil

	case FormEditing:
		id := l.editing
		errs, err := l.Update(id, l.draft, validate)
		if err != nil {
			return uuid.Nil, nil, err
		}
		if !errs.IsEmpty() {
			return uuid.Nil, errs, nil
		}
		l.reset()
		return id, nil, nil

	default:
		return uuid.Nil, nil, ErrFormNotOpen
	}
}

// Cancel закрывает форму без изменения списка
func (l *CompanionList) Cancel() {
	l.init()
	l.reset()
}

func (l *CompanionList) reset() {
	l.mode = FormIdle
	l.editing = uuid.Nil
	l.draft = PersonRecord{}
}

type companionListJSON struct {
	Companions []Companion   `json:"companions"`
	Mode       FormMode      `json:"mode"`
	EditingID  *uuid.UUID    `json:"editingId,omitempty"`
	Draft      *PersonRecord `json:"draft,omitempty"`
}

// MarshalJSON сериализует список вместе с состоянием формы
func (l *CompanionList) MarshalJSON() ([]byte, error) {
	out := companionListJSON{
		Companions: l.Companions(),
		Mode:       l.Mode(),
	}
	if l.mode != FormIdle {
		draft := l.draft
		out.Draft = &draft
	}
	if l.mode == FormEditing {
		id := l.editing
		out.EditingID = &id
	}
	return json.Marshal(out)
}

// UnmarshalJSON восстанавливает список и состояние формы
func (l *CompanionList) UnmarshalJSON(data []byte) error {
	var in companionListJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	restored := NewCompanionList()
	for _, c := range in.Companions {
		restored.order = append(restored.order, c.ID)
		restored.records[c.ID] = c.Record
	}

	if in.Mode != "" {
		restored.mode = in.Mode
	}
	if in.Draft != nil {
		restored.draft = *in.Draft
	}
	if in.EditingID != nil {
		restored.editing = *in.EditingID
	}

	*l = *restored
	return nil
}
