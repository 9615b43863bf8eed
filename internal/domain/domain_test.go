package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHolidayType(t *testing.T) {
	tests := []struct {
		raw  string
		want HolidayType
	}{
		{"NATIONAL_HOLIDAY", HolidayNational},
		{"national_holiday", HolidayNational},
		{"National holiday", HolidayNational},
		{" observance ", HolidayObservance},
		{"season", HolidayType("SEASON")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHolidayType(tt.raw))
		})
	}
}

func TestClampAge(t *testing.T) {
	assert.Equal(t, MinAge, ClampAge(0))
	assert.Equal(t, MinAge, ClampAge(-5))
	assert.Equal(t, 42, ClampAge(42))
	assert.Equal(t, MaxAge, ClampAge(150))
}

func TestIsWorkoutTime(t *testing.T) {
	assert.True(t, IsWorkoutTime("16:30"))
	assert.False(t, IsWorkoutTime("16:00"))
}

func TestNewFormState(t *testing.T) {
	now := time.Date(2024, time.May, 17, 13, 45, 0, 0, time.UTC)
	s := NewFormState(now)

	assert.Equal(t, EmailUnset, s.EmailValidity)
	assert.Equal(t, DefaultAge, s.Age)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), s.Calendar.MonthCursor)
	assert.Empty(t, s.Calendar.SelectedDateString())
	assert.Equal(t, 0, s.Photo.Size())
}
