package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayLabel(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "Should render a Monday in September",
			date: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
			want: "lundi 2 septembre",
		},
		{
			name: "Should render a date in August with accent",
			date: time.Date(2024, 8, 30, 0, 0, 0, 0, time.UTC),
			want: "vendredi 30 août",
		},
		{
			name: "Should render a Sunday in December",
			date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			want: "dimanche 1 décembre",
		},
		{
			name: "Should render a two digit day",
			date: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
			want: "mercredi 14 février",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayLabel(tt.date))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{
			name:  "Should lowercase and hyphenate",
			label: "Lundi 2 Septembre",
			want:  "lundi-2-septembre",
		},
		{
			name:  "Should collapse whitespace runs",
			label: "mardi   3  septembre",
			want:  "mardi-3-septembre",
		},
		{
			name:  "Should keep accents",
			label: "vendredi 30 août",
			want:  "vendredi-30-août",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.label))
		})
	}
}

func TestPlanningWindow(t *testing.T) {
	monday := time.Date(2024, 9, 2, 10, 30, 0, 0, time.UTC)

	t.Run("Should produce one entry per day in order", func(t *testing.T) {
		window := PlanningWindow(monday, 3)
		require.Len(t, window, 3)

		assert.Equal(t, "lundi-2-septembre", window[0].Slug)
		assert.Equal(t, "mardi-3-septembre", window[1].Slug)
		assert.Equal(t, "mercredi-4-septembre", window[2].Slug)
		assert.Equal(t, "lundi 2 septembre", window[0].Label)
	})

	t.Run("Should be deterministic for a fixed today", func(t *testing.T) {
		first := PlanningWindow(monday, 7)
		second := PlanningWindow(monday, 7)
		assert.Equal(t, first, second)
	})

	t.Run("Should cross month boundaries", func(t *testing.T) {
		friday := time.Date(2024, 8, 30, 0, 0, 0, 0, time.UTC)
		window := PlanningWindow(friday, 3)
		require.Len(t, window, 3)
		assert.Equal(t, "vendredi-30-août", window[0].Slug)
		assert.Equal(t, "samedi-31-août", window[1].Slug)
		assert.Equal(t, "dimanche-1-septembre", window[2].Slug)
	})

	t.Run("Should have no slug collisions within a window", func(t *testing.T) {
		window := PlanningWindow(monday, 30)
		seen := make(map[string]bool)
		for _, day := range window {
			assert.False(t, seen[day.Slug], "duplicate slug %s", day.Slug)
			seen[day.Slug] = true
		}
	})

	t.Run("Should return nothing for a non-positive window", func(t *testing.T) {
		assert.Nil(t, PlanningWindow(monday, 0))
		assert.Nil(t, PlanningWindow(monday, -1))
	})
}
