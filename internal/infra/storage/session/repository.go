package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
)

// Repository хранилище живых сессий формы в памяти процесса
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]*form.Session
}

// NewRepository создает пустое хранилище
func NewRepository() *Repository {
	return &Repository{
		sessions: make(map[string]*form.Session),
	}
}

// Create сохраняет новую сессию
func (r *Repository) Create(s *form.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID()]; ok {
		return fmt.Errorf("%w: id=%s", ErrSessionExists, s.ID())
	}
	r.sessions[s.ID()] = s
	return nil
}

// Get возвращает сессию по ID
func (r *Repository) Get(id string) (*form.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete удаляет сессию и возвращает ее
// Закрытие сессии остается за вызывающим
func (r *Repository) Delete(id string) (*form.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return s, nil
}

// PurgeIdle удаляет сессии, не менявшиеся дольше ttl, и возвращает их
func (r *Repository) PurgeIdle(now time.Time, ttl time.Duration) []*form.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := make([]*form.Session, 0)
	for id, s := range r.sessions {
		if now.Sub(s.TouchedAt()) > ttl {
			purged = append(purged, s)
			delete(r.sessions, id)
		}
	}
	return purged
}

// Count количество живых сессий
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
