package form

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/pkg/debounce"
)

// RulesProvider источник актуальных правил доступности
type RulesProvider interface {
	Rules() *availability.Rules
}

// Session сессия заполнения формы
// Все изменения проходят через Dispatch; текстовые поля фиксируются с задержкой через EditText
type Session struct {
	id       string
	rules    RulesProvider
	debounce *debounce.Group

	mu        sync.Mutex
	state     domain.FormState
	drafts    map[string]string
	createdAt time.Time
	touchedAt time.Time
	closed    bool
}

// NewSession создает сессию с состоянием по умолчанию
func NewSession(id string, now time.Time, rules RulesProvider, debounceDelay time.Duration) *Session {
	return &Session{
		id:        id,
		rules:     rules,
		debounce:  debounce.New(debounceDelay),
		state:     domain.NewFormState(now),
		drafts:    make(map[string]string),
		createdAt: now,
		touchedAt: now,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Dispatch применяет действие к состоянию
// При ошибке состояние не меняется
func (s *Session) Dispatch(action Action) error {
	rules := s.rules.Rules()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	next, err := action.reduce(s.state, rules)
	if err != nil {
		return err
	}

	s.state = next
	s.touchedAt = time.Now()
	return nil
}

// EditText принимает очередное значение текстового поля (name, surname, email)
// Значение фиксируется после паузы; новая правка отменяет ожидающую фиксацию
func (s *Session) EditText(field, value string) error {
	commit, err := textAction(field, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.drafts[field] = value
	s.touchedAt = time.Now()

	// Trigger под s.mu: порядок черновиков и отложенных фиксаций совпадает
	s.debounce.Trigger(field, func() {
		s.mu.Lock()
		if s.drafts[field] == value {
			delete(s.drafts, field)
		}
		s.mu.Unlock()

		_ = s.Dispatch(commit)
	})
	return nil
}

// CommitText немедленно фиксирует ожидающее значение поля (потеря фокуса)
// Возвращает false, если ожидающего значения не было
func (s *Session) CommitText(field string) (bool, error) {
	if _, err := textAction(field, ""); err != nil {
		return false, err
	}
	return s.debounce.Flush(field), nil
}

// FlushPending фиксирует все ожидающие значения
func (s *Session) FlushPending() {
	s.debounce.FlushAll()
}

// Pending возвращает true, если у поля есть незафиксированное значение
func (s *Session) Pending(field string) bool {
	return s.debounce.Pending(field)
}

// Drafts возвращает незафиксированные значения текстовых полей
func (s *Session) Drafts() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts := make(map[string]string, len(s.drafts))
	for k, v := range s.drafts {
		drafts[k] = v
	}
	return drafts
}

// Snapshot возвращает копию текущего состояния
func (s *Session) Snapshot() domain.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	if state.Photo != nil {
		photo := *state.Photo
		state.Photo = &photo
	}
	if state.Calendar.SelectedDate != nil {
		date := *state.Calendar.SelectedDate
		state.Calendar.SelectedDate = &date
	}
	return state
}

// Rules правила доступности, по которым работает сессия
func (s *Session) Rules() *availability.Rules {
	return s.rules.Rules()
}

// TouchedAt время последнего изменения
func (s *Session) TouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

// Close отменяет ожидающие фиксации и запрещает дальнейшие изменения
func (s *Session) Close() {
	s.debounce.Stop()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func textAction(field, value string) (Action, error) {
	switch field {
	case domain.FieldName:
		return SetName{Value: value}, nil
	case domain.FieldSurname:
		return SetSurname{Value: value}, nil
	case domain.FieldEmail:
		return SetEmail{Value: value}, nil
	default:
		return nil, ErrUnknownField
	}
}
