package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/mlemaire/gymbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_GUILD_ID", "G1")
}

func TestLoad_RequiredKeys(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "Should fail without DISCORD_TOKEN",
			setup: func(t *testing.T) {
				t.Setenv("DISCORD_TOKEN", "")
				t.Setenv("DISCORD_GUILD_ID", "G1")
			},
		},
		{
			name: "Should fail without DISCORD_GUILD_ID",
			setup: func(t *testing.T) {
				t.Setenv("DISCORD_TOKEN", "token")
				t.Setenv("DISCORD_GUILD_ID", "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCategoryName, cfg.CategoryName)
	assert.Equal(t, domain.DefaultDaysAhead, cfg.DaysAhead)
	assert.Equal(t, domain.DefaultPlanningCron, cfg.PlanningCron)
	assert.Equal(t, domain.DefaultSlots, cfg.Slots)
	assert.Equal(t, domain.DefaultMemberRole, cfg.MemberRole)
	assert.Equal(t, domain.DefaultRemindersChannel, cfg.RemindersChannel)
	assert.Equal(t, DefaultReminderRules, cfg.ReminderRules)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.NotNil(t, cfg.Location)
	assert.Equal(t, domain.DefaultTimezone, cfg.Location.String())
	assert.False(t, cfg.GateEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PLANNING_DAYS_AHEAD", "3")
	t.Setenv("PLANNING_SLOTS", "08:00 - 10:00, 10:00 - 12:00")
	t.Setenv("GATE_PHONE_NUMBERS", "+32470000001,+32470000002")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.DaysAhead)
	assert.Equal(t, []string{"08:00 - 10:00", "10:00 - 12:00"}, cfg.Slots)
	assert.Equal(t, []string{"+32470000001", "+32470000002"}, cfg.GatePhoneNumbers)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{
			name:  "Should reject a negative window",
			key:   "PLANNING_DAYS_AHEAD",
			value: "-1",
		},
		{
			name:  "Should reject a non-numeric window",
			key:   "PLANNING_DAYS_AHEAD",
			value: "soon",
		},
		{
			name:  "Should reject malformed reminder rules",
			key:   "REMINDER_RULES",
			value: "{not json",
		},
		{
			name:  "Should reject an unknown timezone",
			key:   "TIMEZONE",
			value: "Mars/Olympus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_ReminderRulesOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("REMINDER_RULES", `[{"trashType":"noir","weekday":3,"hour":20,"slots":["18:00 - 20:00"]}]`)

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.ReminderRules, 1)
	assert.Equal(t, "noir", cfg.ReminderRules[0].TrashType)
	assert.Equal(t, time.Wednesday, cfg.ReminderRules[0].Weekday)
	assert.Equal(t, 20, cfg.ReminderRules[0].Hour)
	assert.Equal(t, []string{"18:00 - 20:00"}, cfg.ReminderRules[0].Slots)
}

func TestGateEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_FROM_NUMBER", "+32460000000")
	t.Setenv("GATE_PHONE_NUMBERS", "+32470000001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.GateEnabled())
}
