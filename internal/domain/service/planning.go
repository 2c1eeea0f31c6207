package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mlemaire/gymbot/internal/domain"
	"github.com/mlemaire/gymbot/internal/domain/contract"
	"github.com/mlemaire/gymbot/internal/domain/entity"
)

type planningService struct {
	discord      contract.DiscordClient
	guildID      string
	categoryName string
	daysAhead    int
	slots        []string
	loc          *time.Location
	now          func() time.Time
}

func newPlanning(discord contract.DiscordClient, guildID, categoryName string, daysAhead int, slots []string, loc *time.Location) *planningService {
	return &planningService{
		discord:      discord,
		guildID:      guildID,
		categoryName: categoryName,
		daysAhead:    daysAhead,
		slots:        slots,
		loc:          loc,
		now:          time.Now,
	}
}

// Reconcile converges the planning category to the rolling window: channels
// under the category whose name left the window are deleted first, then the
// missing window days are created and seeded. Individual channel failures
// are logged and collected in the result, they never abort the pass. Running
// it twice without a clock change is a no-op the second time.
func (s *planningService) Reconcile(ctx context.Context) (entity.ReconcileResult, error) {
	var result entity.ReconcileResult

	window := domain.PlanningWindow(s.now().In(s.loc), s.daysAhead)

	channels, err := s.discord.GuildChannels(s.guildID)
	if err != nil {
		return result, fmt.Errorf("failed to list guild channels: %w", err)
	}

	category := findCategory(channels, s.categoryName)
	if category == nil {
		category, err = s.discord.CreateChannel(s.guildID, s.categoryName, discordgo.ChannelTypeGuildCategory, "")
		if err != nil {
			return result, fmt.Errorf("failed to create category %q: %w", s.categoryName, err)
		}
		slog.Info("created planning category", "category", s.categoryName)
	}

	desired := make(map[string]bool, len(window))
	for _, day := range window {
		desired[day.Slug] = true
	}

	// Delete phase. Anything under the category that is not in the window
	// goes away, no grace period: under the default schedule a channel only
	// leaves the window once its day has fully passed.
	existing := make(map[string]bool)
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText || ch.ParentID != category.ID {
			continue
		}
		if desired[ch.Name] {
			existing[ch.Name] = true
			continue
		}
		if err := s.discord.DeleteChannel(ch.ID); err != nil {
			slog.Error("failed to delete planning channel", "channel", ch.Name, "error", err)
			result.Failed = append(result.Failed, ch.Name)
			continue
		}
		slog.Info("deleted planning channel", "channel", ch.Name)
		result.Deleted = append(result.Deleted, ch.Name)
	}

	// Create phase, in window order. A channel that already exists by name
	// is left alone even if a previous seeding was interrupted.
	for _, day := range window {
		if existing[day.Slug] {
			continue
		}
		ch, err := s.discord.CreateChannel(s.guildID, day.Slug, discordgo.ChannelTypeGuildText, category.ID)
		if err != nil {
			slog.Error("failed to create planning channel", "channel", day.Slug, "error", err)
			result.Failed = append(result.Failed, day.Slug)
			continue
		}
		s.seed(ch.ID, day)
		slog.Info("created planning channel", "channel", day.Slug)
		result.Created = append(result.Created, day.Slug)
	}

	return result, nil
}

// seed posts the day header and one placeholder message per configured slot,
// each pre-marked with the affirmative reaction. Not transactional: a failed
// message is logged and skipped, the channel stays partially seeded.
func (s *planningService) seed(channelID string, day entity.PlanningDay) {
	header := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       day.Label,
			Description: fmt.Sprintf("Réagis avec %s sur les créneaux où tu seras présent !", domain.AffirmativeReaction),
		}},
	}
	if _, err := s.discord.SendComplexMessage(channelID, header); err != nil {
		slog.Error("failed to post planning header", "channel", day.Slug, "error", err)
	}

	for _, slot := range s.slots {
		msg, err := s.discord.SendMessage(channelID, slot)
		if err != nil {
			slog.Error("failed to post slot placeholder", "channel", day.Slug, "slot", slot, "error", err)
			continue
		}
		if err := s.discord.AddReaction(channelID, msg.ID, domain.AffirmativeReaction); err != nil {
			slog.Error("failed to seed slot reaction", "channel", day.Slug, "slot", slot, "error", err)
		}
	}
}

func findCategory(channels []*discordgo.Channel, name string) *discordgo.Channel {
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == name {
			return ch
		}
	}
	return nil
}

func findTextChannel(channels []*discordgo.Channel, parentID, name string) *discordgo.Channel {
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.ParentID == parentID && ch.Name == name {
			return ch
		}
	}
	return nil
}
