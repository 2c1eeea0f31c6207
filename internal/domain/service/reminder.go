package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mlemaire/gymbot/internal/domain"
	"github.com/mlemaire/gymbot/internal/domain/contract"
	"github.com/mlemaire/gymbot/internal/domain/entity"
)

type reminderService struct {
	discord          contract.DiscordClient
	guildID          string
	categoryName     string
	remindersChannel string
	loc              *time.Location
	now              func() time.Time
}

func newReminder(discord contract.DiscordClient, guildID, categoryName, remindersChannel string, loc *time.Location) *reminderService {
	return &reminderService{
		discord:          discord,
		guildID:          guildID,
		categoryName:     categoryName,
		remindersChannel: remindersChannel,
		loc:              loc,
		now:              time.Now,
	}
}

// CollectRecipients scans today's planning channel for the rule's slot
// placeholders and returns the ids of everyone who reacted affirmatively,
// bots excluded, each id at most once. Missing category, channel or
// placeholder degrade to a smaller result, never to an error. Read-only:
// nothing is created, edited or deleted here.
func (s *reminderService) CollectRecipients(rule entity.ReminderRule, slug string) ([]string, error) {
	channels, err := s.discord.GuildChannels(s.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild channels: %w", err)
	}

	category := findCategory(channels, s.categoryName)
	if category == nil {
		slog.Warn("planning category not found, skipping reminder collection", "category", s.categoryName)
		return nil, nil
	}

	channel := findTextChannel(channels, category.ID, slug)
	if channel == nil {
		slog.Warn("planning channel not found, skipping reminder collection", "channel", slug)
		return nil, nil
	}

	messages, err := s.discord.ChannelMessages(channel.ID, domain.MessageFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages of %s: %w", slug, err)
	}

	botID := s.discord.CurrentUserID()
	seen := make(map[string]struct{})
	var recipients []string

	for _, slot := range rule.Slots {
		msg := findPlaceholder(messages, slot)
		if msg == nil {
			slog.Warn("slot placeholder not found", "channel", slug, "slot", slot)
			continue
		}
		users, err := s.discord.ReactionUsers(channel.ID, msg.ID, domain.AffirmativeReaction, domain.MessageFetchLimit)
		if err != nil {
			slog.Warn("failed to read slot reactions", "channel", slug, "slot", slot, "error", err)
			continue
		}
		for _, user := range users {
			if user.Bot || user.ID == botID {
				continue
			}
			if _, ok := seen[user.ID]; ok {
				continue
			}
			seen[user.ID] = struct{}{}
			recipients = append(recipients, user.ID)
		}
	}

	sort.Strings(recipients)
	return recipients, nil
}

// SendReminder evaluates the rule for today and posts the reminder in the
// reminders channel. The reminder goes out even when nobody signed up.
func (s *reminderService) SendReminder(ctx context.Context, rule entity.ReminderRule) error {
	today := domain.PlanningWindow(s.now().In(s.loc), 1)[0]

	recipients, err := s.CollectRecipients(rule, today.Slug)
	if err != nil {
		return err
	}

	channelID, err := s.ensureRemindersChannel()
	if err != nil {
		return err
	}

	if _, err := s.discord.SendMessage(channelID, reminderText(rule, recipients)); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	slog.Info("sent trash reminder", "trashType", rule.TrashType, "recipients", len(recipients))
	return nil
}

// ensureRemindersChannel finds the reminders channel by name, creating it on
// first use. The planning category is preferred as parent when it exists.
func (s *reminderService) ensureRemindersChannel() (string, error) {
	channels, err := s.discord.GuildChannels(s.guildID)
	if err != nil {
		return "", fmt.Errorf("failed to list guild channels: %w", err)
	}

	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == s.remindersChannel {
			return ch.ID, nil
		}
	}

	parentID := ""
	if category := findCategory(channels, s.categoryName); category != nil {
		parentID = category.ID
	}
	ch, err := s.discord.CreateChannel(s.guildID, s.remindersChannel, discordgo.ChannelTypeGuildText, parentID)
	if err != nil {
		return "", fmt.Errorf("failed to create reminders channel %q: %w", s.remindersChannel, err)
	}
	slog.Info("created reminders channel", "channel", s.remindersChannel)
	return ch.ID, nil
}

func findPlaceholder(messages []*discordgo.Message, slot string) *discordgo.Message {
	for _, msg := range messages {
		if msg.Content == slot {
			return msg
		}
	}
	return nil
}

func reminderText(rule entity.ReminderRule, recipients []string) string {
	if len(recipients) == 0 {
		return fmt.Sprintf("🗑️ Ce soir c'est la collecte des sacs %s ! Personne n'est inscrit sur les derniers créneaux, pensez à sortir les poubelles.", rule.TrashType)
	}
	mentions := make([]string, 0, len(recipients))
	for _, id := range recipients {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}
	return fmt.Sprintf("🗑️ %s : ce soir c'est la collecte des sacs %s, merci de sortir les poubelles en partant !", strings.Join(mentions, " "), rule.TrashType)
}
