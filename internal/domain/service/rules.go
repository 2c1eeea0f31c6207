package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/mlemaire/gymbot/internal/domain/contract"
)

// ErrRoleNotFound means the configured member role does not exist in the
// guild; an administrator has to create it before acceptances can work.
var ErrRoleNotFound = errors.New("member role not found")

type rulesService struct {
	discord  contract.DiscordClient
	guildID  string
	roleName string
	logbook  contract.Logbook
}

func newRules(discord contract.DiscordClient, guildID, roleName string, logbook contract.Logbook) *rulesService {
	return &rulesService{
		discord:  discord,
		guildID:  guildID,
		roleName: roleName,
		logbook:  logbook,
	}
}

// Accept grants the member role to the user and appends the acceptance to
// the log. Nothing is logged when the grant fails.
func (s *rulesService) Accept(userID, userTag string) error {
	roles, err := s.discord.GuildRoles(s.guildID)
	if err != nil {
		return fmt.Errorf("failed to list guild roles: %w", err)
	}

	var role *discordgo.Role
	for _, r := range roles {
		if r.Name == s.roleName {
			role = r
			break
		}
	}
	if role == nil {
		return ErrRoleNotFound
	}

	if err := s.discord.AddMemberRole(s.guildID, userID, role.ID); err != nil {
		return fmt.Errorf("failed to grant role %q: %w", s.roleName, err)
	}

	if err := s.logbook.Append(fmt.Sprintf("Règlement accepté par %s (%s)", userTag, userID)); err != nil {
		slog.Error("failed to append rules acceptance log", "error", err)
	}

	slog.Info("granted member role", "user", userTag)
	return nil
}
