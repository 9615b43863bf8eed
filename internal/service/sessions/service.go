package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WorkoutForm/internal/infra/storage/session"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/calendar"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
	"github.com/m04kA/SMC-WorkoutForm/pkg/types"
)

// Service сервис сессий формы
type Service struct {
	repo          SessionRepository
	rules         RulesProvider
	metrics       Metrics
	logger        Logger
	debounceDelay time.Duration
	location      *time.Location
	now           func() time.Time
}

// NewService создает новый экземпляр сервиса сессий
// location определяет, какой месяц считается текущим при создании сессии
func NewService(
	repo SessionRepository,
	rules RulesProvider,
	metrics Metrics,
	logger Logger,
	debounceDelay time.Duration,
	location *time.Location,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:          repo,
		rules:         rules,
		metrics:       metrics,
		logger:        logger,
		debounceDelay: debounceDelay,
		location:      location,
		now:           time.Now,
	}
}

// Create создает новую сессию с состоянием по умолчанию
func (s *Service) Create(ctx context.Context) (*models.SessionResponse, error) {
	sess := form.NewSession(uuid.NewString(), s.now().In(s.location), s.rules, s.debounceDelay)

	if err := s.repo.Create(sess); err != nil {
		s.logger.Error("Create: failed to store session id=%s: %v", sess.ID(), err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	s.metrics.SetSessionsActive(s.repo.Count())

	s.logger.Info("Create: session id=%s created", sess.ID())
	return s.view(sess), nil
}

// Get возвращает представление сессии
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// UpdateFields принимает правку полей формы
// name, surname и email фиксируются после паузы; age применяется сразу
func (s *Service) UpdateFields(ctx context.Context, id string, req *models.UpdateFieldsRequest) (*models.SessionResponse, error) {
	if req == nil || req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	edits := []struct {
		field string
		value *string
	}{
		{domain.FieldName, req.Name},
		{domain.FieldSurname, req.Surname},
		{domain.FieldEmail, req.Email},
	}
	for _, e := range edits {
		if e.value == nil {
			continue
		}
		if err := sess.EditText(e.field, *e.value); err != nil {
			return nil, s.mapError("UpdateFields", id, err)
		}
	}

	if req.Age != nil {
		if err := sess.Dispatch(form.SetAge{Value: *req.Age}); err != nil {
			return nil, s.mapError("UpdateFields", id, err)
		}
	}

	return s.view(sess), nil
}

// CommitEmail немедленно фиксирует ожидающее значение email (потеря фокуса)
func (s *Service) CommitEmail(ctx context.Context, id string) (*models.SessionResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if _, err := sess.CommitText(domain.FieldEmail); err != nil {
		return nil, s.mapError("CommitEmail", id, err)
	}

	return s.view(sess), nil
}

// AttachPhoto прикрепляет фотографию, заменяя предыдущую
func (s *Service) AttachPhoto(ctx context.Context, id string, photo domain.Photo) (*models.SessionResponse, error) {
	return s.dispatch("AttachPhoto", id, form.AttachPhoto{Photo: photo})
}

// ClearPhoto удаляет фотографию
func (s *Service) ClearPhoto(ctx context.Context, id string) (*models.SessionResponse, error) {
	return s.dispatch("ClearPhoto", id, form.ClearPhoto{})
}

// Navigate листает календарь на месяц вперед или назад
func (s *Service) Navigate(ctx context.Context, id string, delta int) (*models.SessionResponse, error) {
	return s.dispatch("Navigate", id, form.NavigateMonth{Delta: delta})
}

// SelectDate выбирает день в формате YYYY-MM-DD
func (s *Service) SelectDate(ctx context.Context, id string, date string) (*models.SessionResponse, error) {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return s.dispatch("SelectDate", id, form.SelectDate{Date: parsed})
}

// SelectTime выбирает время тренировки в формате HH:MM
func (s *Service) SelectTime(ctx context.Context, id string, value string) (*models.SessionResponse, error) {
	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}
	return s.dispatch("SelectTime", id, form.SelectTime{Time: t})
}

// Month возвращает сетку месяца YYYY-MM без привязки к сессии
func (s *Service) Month(ctx context.Context, month string) (*models.CalendarResponse, error) {
	cursor := s.now().In(s.location)
	if month != "" {
		parsed, err := time.Parse(domain.MonthFormat, month)
		if err != nil {
			return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidInput)
		}
		cursor = parsed
	}

	resp := models.FromGrid(calendar.BuildGrid(domain.NewCalendarState(cursor), s.rules.Rules()))
	return &resp, nil
}

// PurgeIdle закрывает и удаляет сессии, простаивающие дольше ttl
func (s *Service) PurgeIdle(ttl time.Duration) int {
	purged := s.repo.PurgeIdle(s.now(), ttl)
	for _, sess := range purged {
		sess.Close()
	}

	s.metrics.SetSessionsActive(s.repo.Count())
	if len(purged) > 0 {
		s.logger.Info("PurgeIdle: removed %d idle sessions", len(purged))
	}
	return len(purged)
}

func (s *Service) dispatch(op, id string, action form.Action) (*models.SessionResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if err := sess.Dispatch(action); err != nil {
		return nil, s.mapError(op, id, err)
	}

	return s.view(sess), nil
}

func (s *Service) session(id string) (*form.Session, error) {
	sess, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("session: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return sess, nil
}

func (s *Service) view(sess *form.Session) *models.SessionResponse {
	return models.FromSession(sess.ID(), sess.Snapshot(), sess.Drafts(), sess.Rules())
}

func (s *Service) mapError(op, id string, err error) error {
	switch {
	case errors.Is(err, form.ErrClosed):
		return ErrSessionNotFound
	case errors.Is(err, calendar.ErrDayNotBookable),
		errors.Is(err, calendar.ErrDateOutsideMonth),
		errors.Is(err, calendar.ErrNoDateSelected),
		errors.Is(err, calendar.ErrObservanceDay):
		s.logger.Warn("%s: session id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %w", ErrTransitionRejected, err)
	case errors.Is(err, calendar.ErrInvalidDelta),
		errors.Is(err, calendar.ErrUnknownTime),
		errors.Is(err, form.ErrEmptyPhoto),
		errors.Is(err, form.ErrUnknownField):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		s.logger.Error("%s: session id=%s: unexpected error: %v", op, id, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
