package holidays

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/pkg/metrics"
)

// Status состояние источника праздников
type Status struct {
	Country   string
	Year      int
	Attempted bool
	Loaded    bool
	Count     int
	LoadedAt  time.Time
	LastError error
}

// Source источник праздников: один запрос при старте, дальше только чтение
// Пока список не загружен (или загрузка упала), правила доступности работают в режиме fail-open
type Source struct {
	client  HolidayClient
	country string
	metrics Metrics
	logger  Logger

	mu        sync.RWMutex
	attempted bool
	loaded    bool
	entries   []domain.HolidayEntry
	year      int
	loadedAt  time.Time
	lastErr   error
}

// NewSource создает новый источник праздников для страны
func NewSource(client HolidayClient, country string, metrics Metrics, logger Logger) *Source {
	return &Source{
		client:  client,
		country: country,
		metrics: metrics,
		logger:  logger,
	}
}

// Load выполняет единственную загрузку списка праздников за год
// Ошибка не скрывается: она возвращается вызывающему и сохраняется в Status
func (s *Source) Load(ctx context.Context, year int) error {
	s.mu.Lock()
	if s.attempted {
		s.mu.Unlock()
		return ErrAlreadyAttempted
	}
	s.attempted = true
	s.year = year
	s.mu.Unlock()

	s.logger.Info("Holidays: loading country=%s year=%d", s.country, year)

	result, err := s.client.GetHolidays(ctx, s.country, year)
	if err != nil {
		s.metrics.IncHolidayFetch(metrics.ResultFailure)

		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()

		s.logger.Error("Holidays: failed to load country=%s year=%d, calendar stays fail-open: %v",
			s.country, year, err)
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	s.mu.Lock()
	s.entries = result.Holidays
	s.loaded = true
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.metrics.IncHolidayFetch(metrics.ResultSuccess)
	s.metrics.SetHolidaysLoaded(len(result.Holidays))

	s.logger.Info("Holidays: loaded %d entries (skipped %d) for country=%s year=%d",
		len(result.Holidays), result.Skipped, s.country, year)
	return nil
}

// Entries возвращает загруженный список и признак загрузки
// Список неизменяем, вызывающий не должен его модифицировать
func (s *Source) Entries() ([]domain.HolidayEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries, s.loaded
}

// Rules возвращает правила доступности по текущему состоянию источника
func (s *Source) Rules() *availability.Rules {
	entries, loaded := s.Entries()
	return availability.New(entries, loaded)
}

// Status возвращает состояние источника
func (s *Source) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		Country:   s.country,
		Year:      s.year,
		Attempted: s.attempted,
		Loaded:    s.loaded,
		Count:     len(s.entries),
		LoadedAt:  s.loadedAt,
		LastError: s.lastErr,
	}
}
