package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mlemaire/gymbot/internal/domain"
)

// Commands returns the slash command surface: one root command with the
// status and setup subcommands.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        domain.CommandRoot,
			Description: "Gestion de la salle",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        domain.SubcommandState,
					Description: "Publie le message de statut dans ce salon",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        domain.SubcommandSetup,
					Description: "Synchronise les salons de planning",
				},
			},
		},
	}
}

// RegisterCommands registers the command surface on the configured guild.
// Guild-scoped registration propagates immediately, unlike global commands.
func RegisterCommands(session *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := session.ApplicationCommandCreate(session.State.User.ID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to register command %q: %w", cmd.Name, err)
		}
	}
	return nil
}
