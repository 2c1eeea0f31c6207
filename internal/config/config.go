package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mlemaire/gymbot/internal/domain"
	"github.com/mlemaire/gymbot/internal/domain/entity"
)

type Config struct {
	DiscordToken string
	GuildID      string

	CategoryName string
	DaysAhead    int
	PlanningCron string
	Slots        []string
	Timezone     string
	Location     *time.Location

	OpenImageURL   string
	ClosedImageURL string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	GatePhoneNumbers []string
	GateLogPath      string

	MemberRole   string
	RulesLogPath string

	RemindersChannel string
	ReminderRules    []entity.ReminderRule

	LogLevel slog.Level
}

// DefaultReminderRules covers the municipal collection evenings. Overridden
// wholesale by REMINDER_RULES when set.
var DefaultReminderRules = []entity.ReminderRule{
	{
		TrashType: "blanc",
		Weekday:   time.Sunday,
		Hour:      20,
		Slots:     []string{"18:00 - 20:00", "20:00 - 22:00", "22:00 - 00:00"},
	},
	{
		TrashType: "bleu et jaune",
		Weekday:   time.Wednesday,
		Hour:      20,
		Slots:     []string{"18:00 - 20:00", "20:00 - 22:00", "22:00 - 00:00"},
	},
}

func Load() (*Config, error) {
	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("DISCORD_GUILD_ID"),

		CategoryName: getEnv("PLANNING_CATEGORY", domain.DefaultCategoryName),
		PlanningCron: getEnv("PLANNING_CRON", domain.DefaultPlanningCron),
		Timezone:     getEnv("TIMEZONE", domain.DefaultTimezone),

		OpenImageURL:   getEnv("STATUS_OPEN_IMAGE_URL", domain.DefaultOpenImageURL),
		ClosedImageURL: getEnv("STATUS_CLOSED_IMAGE_URL", domain.DefaultClosedImageURL),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		GateLogPath:      getEnv("GATE_LOG_PATH", domain.DefaultGateLogPath),

		MemberRole:   getEnv("MEMBER_ROLE", domain.DefaultMemberRole),
		RulesLogPath: getEnv("RULES_LOG_PATH", domain.DefaultRulesLogPath),

		RemindersChannel: getEnv("REMINDERS_CHANNEL", domain.DefaultRemindersChannel),

		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.GuildID == "" {
		return nil, fmt.Errorf("DISCORD_GUILD_ID is required")
	}

	cfg.DaysAhead = domain.DefaultDaysAhead
	if v := os.Getenv("PLANNING_DAYS_AHEAD"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid PLANNING_DAYS_AHEAD %q", v)
		}
		cfg.DaysAhead = parsed
	}

	cfg.Slots = domain.DefaultSlots
	if v := os.Getenv("PLANNING_SLOTS"); v != "" {
		cfg.Slots = splitList(v)
	}

	cfg.GatePhoneNumbers = splitList(os.Getenv("GATE_PHONE_NUMBERS"))

	cfg.ReminderRules = DefaultReminderRules
	if v := os.Getenv("REMINDER_RULES"); v != "" {
		var rules []entity.ReminderRule
		if err := json.Unmarshal([]byte(v), &rules); err != nil {
			return nil, fmt.Errorf("invalid REMINDER_RULES: %w", err)
		}
		cfg.ReminderRules = rules
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// GateEnabled reports whether the SMS gate feature is fully configured.
// Absence of any piece disables the feature, it is not an error.
func (c *Config) GateEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioFromNumber != "" && len(c.GatePhoneNumbers) > 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
