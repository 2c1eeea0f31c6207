package service

import (
	"github.com/mlemaire/gymbot/internal/config"
	"github.com/mlemaire/gymbot/internal/domain/contract"
)

type Instance struct {
	Planning *planningService
	Reminder *reminderService
	Status   *statusService
	Gate     *gateService
	Rules    *rulesService
}

// NewInstance wires every service once at startup. sms may be nil when the
// gate feature is disabled.
func NewInstance(discord contract.DiscordClient, sms contract.SMSSender, gateLog, rulesLog contract.Logbook, cfg *config.Config) *Instance {
	return &Instance{
		Planning: newPlanning(discord, cfg.GuildID, cfg.CategoryName, cfg.DaysAhead, cfg.Slots, cfg.Location),
		Reminder: newReminder(discord, cfg.GuildID, cfg.CategoryName, cfg.RemindersChannel, cfg.Location),
		Status:   newStatus(discord, cfg.OpenImageURL, cfg.ClosedImageURL),
		Gate:     newGate(sms, cfg.GatePhoneNumbers, gateLog, cfg.Location),
		Rules:    newRules(discord, cfg.GuildID, cfg.MemberRole, rulesLog),
	}
}
