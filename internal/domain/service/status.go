package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/mlemaire/gymbot/internal/domain"
	"github.com/mlemaire/gymbot/internal/domain/contract"
	"github.com/mlemaire/gymbot/internal/domain/entity"
)

const (
	colorOpen   = 0x2ecc71
	colorClosed = 0xe74c3c
)

// statusService owns the single in-memory open/closed state and the tracked
// status message. State is deliberately lost on restart. The mutex only
// guards the struct fields; no lock spans the read-modify-publish sequence,
// so two near-simultaneous button presses can both repost. Accepted.
type statusService struct {
	discord        contract.DiscordClient
	openImageURL   string
	closedImageURL string

	mu        sync.Mutex
	state     entity.GymState
	lastActor string
	channelID string
	messageID string
}

func newStatus(discord contract.DiscordClient, openImageURL, closedImageURL string) *statusService {
	return &statusService{
		discord:        discord,
		openImageURL:   openImageURL,
		closedImageURL: closedImageURL,
		state:          entity.StateClosed,
	}
}

func (s *statusService) UpdateStatus(state entity.GymState, actorName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.lastActor = actorName
}

func (s *statusService) State() (entity.GymState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.lastActor
}

// Publish deletes the previously tracked status message, best effort, then
// posts a fresh one in channelID and tracks it. The repost (rather than an
// in-place edit) intentionally produces a new-message notification.
func (s *statusService) Publish(channelID string) error {
	s.mu.Lock()
	prevChannelID, prevMessageID := s.channelID, s.messageID
	state, lastActor := s.state, s.lastActor
	s.mu.Unlock()

	if prevMessageID != "" {
		if err := s.discord.DeleteMessage(prevChannelID, prevMessageID); err != nil {
			slog.Warn("failed to delete previous status message", "error", err)
		}
	}

	msg, err := s.discord.SendComplexMessage(channelID, statusMessage(state, lastActor, s.openImageURL, s.closedImageURL))
	if err != nil {
		return fmt.Errorf("failed to publish status message: %w", err)
	}

	s.mu.Lock()
	s.channelID = channelID
	s.messageID = msg.ID
	s.mu.Unlock()
	return nil
}

// Refresh reposts the status message in its tracked channel.
func (s *statusService) Refresh() error {
	s.mu.Lock()
	channelID := s.channelID
	s.mu.Unlock()

	if channelID == "" {
		return fmt.Errorf("no status message published yet")
	}
	return s.Publish(channelID)
}

func statusMessage(state entity.GymState, lastActor, openImageURL, closedImageURL string) *discordgo.MessageSend {
	color := colorClosed
	imageURL := closedImageURL
	if state == entity.StateOpen {
		color = colorOpen
		imageURL = openImageURL
	}

	description := fmt.Sprintf("La salle est actuellement **%s**.", state)
	if lastActor != "" {
		description += fmt.Sprintf("\nDernière action par %s.", lastActor)
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "État de la salle",
			Description: description,
			Color:       color,
			Image:       &discordgo.MessageEmbedImage{URL: imageURL},
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Ouvrir la salle",
						Style:    discordgo.SuccessButton,
						CustomID: domain.ButtonOpenStatus,
						Disabled: state == entity.StateOpen,
					},
					discordgo.Button{
						Label:    "Fermer la salle",
						Style:    discordgo.DangerButton,
						CustomID: domain.ButtonCloseStatus,
						Disabled: state == entity.StateClosed,
					},
					discordgo.Button{
						Label:    "Ouvrir le portail",
						Style:    discordgo.SecondaryButton,
						CustomID: domain.ButtonRequestGateOpen,
					},
				},
			},
		},
	}
}
