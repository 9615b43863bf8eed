package submit_application

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WorkoutForm/internal/infra/storage/session"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
	"github.com/m04kA/SMC-WorkoutForm/pkg/metrics"
)

const statusSent = "sent"

// UseCase use case отправки формы
type UseCase struct {
	sessions SessionRepository
	client   SubmissionClient
	recorder AttemptRecorder
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// recorder может быть nil, если журнал попыток выключен
func NewUseCase(
	sessions SessionRepository,
	client SubmissionClient,
	recorder AttemptRecorder,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions: sessions,
		client:   client,
		recorder: recorder,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute проверяет форму и отправляет ее одним запросом
// Незаполненная форма не уходит в сеть и сессия сохраняется;
// после любой попытки отправки сессия удаляется независимо от результата
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitApplication: session=%s", req.SessionID)

	// 1. Получаем сессию
	sess, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("SubmitApplication: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrSubmissionFailed, err)
	}

	// 2. Фиксируем значения, ожидающие паузы ввода
	sess.FlushPending()

	// 3. Проверяем обязательные поля
	state := sess.Snapshot()
	if err := form.CheckRequired(state, sess.Rules()); err != nil {
		uc.metrics.IncSubmission(metrics.ResultBlocked)
		uc.logger.Warn("SubmitApplication: session=%s blocked: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %w", ErrIncomplete, err)
	}

	// 4. Забираем сессию из хранилища: повторная отправка той же формы невозможна
	if _, err := uc.sessions.Delete(req.SessionID); err != nil {
		uc.logger.Warn("SubmitApplication: session=%s already taken: %v", req.SessionID, err)
		return nil, ErrSessionNotFound
	}
	defer func() {
		sess.Close()
		uc.metrics.SetSessionsActive(uc.sessions.Count())
	}()

	// 5. Отправляем заявку (без повторов)
	sendErr := uc.client.Send(ctx, buildPayload(state))

	// 6. Пишем попытку в журнал
	appID := uc.record(ctx, req.SessionID, state, sendErr)

	if sendErr != nil {
		uc.metrics.IncSubmission(metrics.ResultFailure)
		uc.logger.Error("SubmitApplication: session=%s failed: %v", req.SessionID, sendErr)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, sendErr)
	}

	uc.metrics.IncSubmission(metrics.ResultSuccess)
	uc.logger.Info("SubmitApplication: session=%s sent", req.SessionID)

	return &Response{
		SessionID:     req.SessionID,
		Status:        statusSent,
		ApplicationID: appID,
	}, nil
}

// record сохраняет попытку; ошибка журнала не влияет на результат отправки
func (uc *UseCase) record(ctx context.Context, sessionID string, state domain.FormState, sendErr error) *int64 {
	if uc.recorder == nil {
		return nil
	}

	app, err := uc.recorder.Create(ctx, buildAttempt(sessionID, state, sendErr))
	if err != nil {
		uc.logger.Error("SubmitApplication: failed to record attempt for session=%s: %v", sessionID, err)
		return nil
	}
	return &app.ID
}
