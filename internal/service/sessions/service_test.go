package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	sessionRepo "github.com/m04kA/SMC-WorkoutForm/internal/infra/storage/session"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
)

type staticRules struct {
	rules *availability.Rules
}

func (s staticRules) Rules() *availability.Rules { return s.rules }

type fakeMetrics struct {
	active int
}

func (f *fakeMetrics) SetSessionsActive(n int) { f.active = n }

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func may(d int) time.Time {
	return time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, rules *availability.Rules) (*Service, *fakeMetrics) {
	t.Helper()

	m := &fakeMetrics{}
	svc := NewService(sessionRepo.NewRepository(), staticRules{rules: rules}, m, logger.NewNop(), time.Hour, time.UTC)
	svc.now = func() time.Time { return time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC) }
	return svc, m
}

func labourDayRules() *availability.Rules {
	return availability.New([]domain.HolidayEntry{
		{Date: may(1), Type: domain.HolidayNational, Name: "Labour Day"},
		{Date: may(2), Type: domain.HolidayObservance, Name: "Flag Day"},
	}, true)
}

func TestService_Create(t *testing.T) {
	svc, m := newTestService(t, availability.FailOpen())

	resp, err := svc.Create(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "unset", resp.EmailValidity)
	assert.Equal(t, domain.DefaultAge, resp.Age)
	assert.Equal(t, "2024-05", resp.Calendar.Month)
	assert.Equal(t, "May 2024", resp.Calendar.Title)
	assert.Equal(t, 2, resp.Calendar.Padding)
	assert.Len(t, resp.Calendar.Days, 31)
	assert.False(t, resp.CanSubmit)
	assert.Empty(t, resp.TimeSlots)
	assert.False(t, resp.HolidaysLoaded)
	assert.Equal(t, 1, m.active)

	got, err := svc.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestService_NotFound(t *testing.T) {
	svc, _ := newTestService(t, availability.FailOpen())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Navigate(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_UpdateFields(t *testing.T) {
	svc, _ := newTestService(t, availability.FailOpen())
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateFields(ctx, created.ID, &models.UpdateFieldsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.UpdateFields(ctx, created.ID, &models.UpdateFieldsRequest{
		Email: strPtr("a@b"),
		Age:   intPtr(200),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxAge, resp.Age)
	assert.Empty(t, resp.Email)
	assert.Equal(t, "unset", resp.EmailValidity)
	assert.Equal(t, map[string]string{domain.FieldEmail: "a@b"}, resp.Drafts)

	resp, err = svc.CommitEmail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b", resp.Email)
	assert.Equal(t, "invalid", resp.EmailValidity)
	assert.Empty(t, resp.Drafts)
	assert.Contains(t, resp.MissingFields, domain.FieldEmail)
}

func TestService_CalendarTransitions(t *testing.T) {
	svc, _ := newTestService(t, labourDayRules())
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.False(t, created.Calendar.Days[0].Bookable)
	assert.Equal(t, "Flag Day", created.Calendar.Days[1].Observance)

	_, err = svc.SelectDate(ctx, created.ID, "2024-05-01")
	assert.ErrorIs(t, err, ErrTransitionRejected)

	_, err = svc.SelectDate(ctx, created.ID, "01.05.2024")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SelectTime(ctx, created.ID, "12:00")
	assert.ErrorIs(t, err, ErrTransitionRejected)

	resp, err := svc.SelectDate(ctx, created.ID, "2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, "Flag Day", resp.Observance)
	assert.Empty(t, resp.TimeSlots)

	_, err = svc.SelectTime(ctx, created.ID, "12:00")
	assert.ErrorIs(t, err, ErrTransitionRejected)

	resp, err = svc.SelectDate(ctx, created.ID, "2024-05-14")
	require.NoError(t, err)
	assert.Empty(t, resp.Observance)
	require.Len(t, resp.TimeSlots, len(domain.WorkoutTimes))

	_, err = svc.SelectTime(ctx, created.ID, "13:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err = svc.SelectTime(ctx, created.ID, "16:30")
	require.NoError(t, err)
	assert.Equal(t, "16:30", resp.SelectedTime)
	assert.True(t, resp.TimeSlots[2].Selected)

	_, err = svc.Navigate(ctx, created.ID, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err = svc.Navigate(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-06", resp.Calendar.Month)
	assert.Empty(t, resp.SelectedDate)
	assert.Empty(t, resp.SelectedTime)
	assert.Empty(t, resp.TimeSlots)
	assert.Contains(t, resp.MissingFields, domain.FieldSelectedTime)

	_, err = svc.Navigate(ctx, created.ID, -1)
	require.NoError(t, err)

	// время, выбранное раньше, не показывается и не засчитывается на памятную дату
	resp, err = svc.SelectDate(ctx, created.ID, "2024-05-02")
	require.NoError(t, err)
	assert.Empty(t, resp.SelectedTime)
	assert.Contains(t, resp.MissingFields, domain.FieldSelectedTime)

	resp, err = svc.SelectDate(ctx, created.ID, "2024-05-14")
	require.NoError(t, err)
	assert.Equal(t, "16:30", resp.SelectedTime)
	assert.NotContains(t, resp.MissingFields, domain.FieldSelectedTime)
}

func TestService_Photo(t *testing.T) {
	svc, _ := newTestService(t, availability.FailOpen())
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.AttachPhoto(ctx, created.ID, domain.Photo{Name: "empty.png"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.AttachPhoto(ctx, created.ID, domain.Photo{Name: "me.png", ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)
	require.NotNil(t, resp.Photo)
	assert.Equal(t, models.PhotoResponse{Name: "me.png", ContentType: "image/png", Size: 3}, *resp.Photo)

	resp, err = svc.ClearPhoto(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.Photo)
}

func TestService_Month(t *testing.T) {
	svc, _ := newTestService(t, labourDayRules())

	resp, err := svc.Month(context.Background(), "2024-06")
	require.NoError(t, err)
	assert.Equal(t, "June 2024", resp.Title)
	assert.Equal(t, 5, resp.Padding)
	assert.Len(t, resp.Days, 30)

	resp, err = svc.Month(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", resp.Month)

	_, err = svc.Month(context.Background(), "2024/06")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_PurgeIdle(t *testing.T) {
	svc, m := newTestService(t, availability.FailOpen())
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, svc.PurgeIdle(time.Hour))

	svc.now = func() time.Time { return time.Date(2024, time.May, 10, 14, 0, 0, 0, time.UTC) }
	assert.Equal(t, 1, svc.PurgeIdle(time.Hour))
	assert.Equal(t, 0, m.active)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
