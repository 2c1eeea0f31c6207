// Package discord wraps the discordgo session behind the contract interface
// the services depend on.
package discord

import (
	"github.com/bwmarrin/discordgo"
)

type Client struct {
	session *discordgo.Session
}

func NewClient(session *discordgo.Session) *Client {
	return &Client{session: session}
}

func (c *Client) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	return c.session.GuildChannels(guildID)
}

func (c *Client) CreateChannel(guildID, name string, channelType discordgo.ChannelType, parentID string) (*discordgo.Channel, error) {
	return c.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     channelType,
		ParentID: parentID,
	})
}

func (c *Client) DeleteChannel(channelID string) error {
	_, err := c.session.ChannelDelete(channelID)
	return err
}

func (c *Client) SendMessage(channelID, content string) (*discordgo.Message, error) {
	return c.session.ChannelMessageSend(channelID, content)
}

func (c *Client) SendComplexMessage(channelID string, send *discordgo.MessageSend) (*discordgo.Message, error) {
	return c.session.ChannelMessageSendComplex(channelID, send)
}

func (c *Client) DeleteMessage(channelID, messageID string) error {
	return c.session.ChannelMessageDelete(channelID, messageID)
}

func (c *Client) AddReaction(channelID, messageID, emoji string) error {
	return c.session.MessageReactionAdd(channelID, messageID, emoji)
}

func (c *Client) ChannelMessages(channelID string, limit int) ([]*discordgo.Message, error) {
	return c.session.ChannelMessages(channelID, limit, "", "", "")
}

func (c *Client) ReactionUsers(channelID, messageID, emoji string, limit int) ([]*discordgo.User, error) {
	return c.session.MessageReactions(channelID, messageID, emoji, limit, "", "")
}

func (c *Client) GuildRoles(guildID string) ([]*discordgo.Role, error) {
	return c.session.GuildRoles(guildID)
}

func (c *Client) AddMemberRole(guildID, userID, roleID string) error {
	return c.session.GuildMemberRoleAdd(guildID, userID, roleID)
}

func (c *Client) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return c.session.InteractionRespond(interaction, resp)
}

func (c *Client) CurrentUserID() string {
	if c.session.State != nil && c.session.State.User != nil {
		return c.session.State.User.ID
	}
	return ""
}
