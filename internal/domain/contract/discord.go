package contract

import "github.com/bwmarrin/discordgo"

// DiscordClient defines the interface for Discord operations.
// This allows mocking in tests while keeping the real implementation simple.
type DiscordClient interface {
	// GuildChannels lists every channel of the guild, categories included.
	GuildChannels(guildID string) ([]*discordgo.Channel, error)

	// CreateChannel creates a channel of the given type under parentID.
	// An empty parentID creates it at the guild root.
	CreateChannel(guildID, name string, channelType discordgo.ChannelType, parentID string) (*discordgo.Channel, error)

	// DeleteChannel removes a channel by id.
	DeleteChannel(channelID string) error

	// SendMessage posts a plain text message and returns it.
	SendMessage(channelID, content string) (*discordgo.Message, error)

	// SendComplexMessage posts a message with embeds and/or components.
	SendComplexMessage(channelID string, send *discordgo.MessageSend) (*discordgo.Message, error)

	// DeleteMessage removes a single message.
	DeleteMessage(channelID, messageID string) error

	// AddReaction attaches an emoji reaction as the bot account.
	AddReaction(channelID, messageID, emoji string) error

	// ChannelMessages fetches up to limit of the most recent messages.
	ChannelMessages(channelID string, limit int) ([]*discordgo.Message, error)

	// ReactionUsers lists the users who reacted with emoji on a message.
	ReactionUsers(channelID, messageID, emoji string, limit int) ([]*discordgo.User, error)

	// GuildRoles lists the guild's roles.
	GuildRoles(guildID string) ([]*discordgo.Role, error)

	// AddMemberRole grants a role to a guild member.
	AddMemberRole(guildID, userID, roleID string) error

	// InteractionRespond answers an interaction (command or button press).
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	// CurrentUserID returns the bot account's own user id.
	CurrentUserID() string
}
