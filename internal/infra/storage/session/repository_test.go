package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
)

type failOpen struct{}

func (failOpen) Rules() *availability.Rules { return availability.FailOpen() }

func newSession(id string, now time.Time) *form.Session {
	return form.NewSession(id, now, failOpen{}, time.Hour)
}

func TestRepository_CRUD(t *testing.T) {
	repo := NewRepository()
	s := newSession("a", time.Now())

	require.NoError(t, repo.Create(s))
	assert.ErrorIs(t, repo.Create(newSession("a", time.Now())), ErrSessionExists)
	assert.Equal(t, 1, repo.Count())

	got, err := repo.Get("a")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = repo.Get("b")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	deleted, err := repo.Delete("a")
	require.NoError(t, err)
	assert.Same(t, s, deleted)
	assert.Equal(t, 0, repo.Count())

	_, err = repo.Delete("a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_PurgeIdle(t *testing.T) {
	repo := NewRepository()
	now := time.Now()

	require.NoError(t, repo.Create(newSession("old", now.Add(-2*time.Hour))))
	require.NoError(t, repo.Create(newSession("fresh", now.Add(-time.Minute))))

	purged := repo.PurgeIdle(now, time.Hour)
	require.Len(t, purged, 1)
	assert.Equal(t, "old", purged[0].ID())

	_, err := repo.Get("old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.Get("fresh")
	assert.NoError(t, err)
}
