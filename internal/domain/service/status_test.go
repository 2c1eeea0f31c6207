package service

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/mlemaire/gymbot/internal/domain"
	"github.com/mlemaire/gymbot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	openImg   = "https://example.com/open.png"
	closedImg = "https://example.com/closed.png"
)

func buttonsOf(send *discordgo.MessageSend) map[string]discordgo.Button {
	row := send.Components[0].(discordgo.ActionsRow)
	buttons := make(map[string]discordgo.Button, len(row.Components))
	for _, c := range row.Components {
		b := c.(discordgo.Button)
		buttons[b.CustomID] = b
	}
	return buttons
}

func TestStatusService_Publish(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newStatus(m.mockDiscord, openImg, closedImg)

	var published *discordgo.MessageSend
	m.mockDiscord.EXPECT().SendComplexMessage("CH", gomock.Any()).
		DoAndReturn(func(_ string, send *discordgo.MessageSend) (*discordgo.Message, error) {
			published = send
			return &discordgo.Message{ID: "MSG1"}, nil
		})

	require.NoError(t, s.Publish("CH"))

	// Fresh state is closed: red embed, closed image, "open" enabled and
	// "close" disabled.
	embed := published.Embeds[0]
	assert.Equal(t, colorClosed, embed.Color)
	assert.Equal(t, closedImg, embed.Image.URL)

	buttons := buttonsOf(published)
	assert.False(t, buttons[domain.ButtonOpenStatus].Disabled)
	assert.True(t, buttons[domain.ButtonCloseStatus].Disabled)
	assert.False(t, buttons[domain.ButtonRequestGateOpen].Disabled)
}

func TestStatusService_Refresh_RepostsAndDeletesPrevious(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newStatus(m.mockDiscord, openImg, closedImg)

	m.mockDiscord.EXPECT().SendComplexMessage("CH", gomock.Any()).
		Return(&discordgo.Message{ID: "MSG1"}, nil)
	require.NoError(t, s.Publish("CH"))

	s.UpdateStatus(entity.StateOpen, "Alice")

	m.mockDiscord.EXPECT().DeleteMessage("CH", "MSG1").Return(nil)

	var published *discordgo.MessageSend
	m.mockDiscord.EXPECT().SendComplexMessage("CH", gomock.Any()).
		DoAndReturn(func(_ string, send *discordgo.MessageSend) (*discordgo.Message, error) {
			published = send
			return &discordgo.Message{ID: "MSG2"}, nil
		})

	require.NoError(t, s.Refresh())

	embed := published.Embeds[0]
	assert.Equal(t, colorOpen, embed.Color)
	assert.Equal(t, openImg, embed.Image.URL)
	assert.Contains(t, embed.Description, "ouverte")
	assert.Contains(t, embed.Description, "Alice")

	buttons := buttonsOf(published)
	assert.True(t, buttons[domain.ButtonOpenStatus].Disabled)
	assert.False(t, buttons[domain.ButtonCloseStatus].Disabled)
}

func TestStatusService_Publish_DeleteFailureIsBestEffort(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newStatus(m.mockDiscord, openImg, closedImg)

	m.mockDiscord.EXPECT().SendComplexMessage("CH", gomock.Any()).
		Return(&discordgo.Message{ID: "MSG1"}, nil)
	require.NoError(t, s.Publish("CH"))

	// The old message is already gone; the new one is still posted.
	m.mockDiscord.EXPECT().DeleteMessage("CH", "MSG1").Return(errors.New("unknown message"))
	m.mockDiscord.EXPECT().SendComplexMessage("CH2", gomock.Any()).
		Return(&discordgo.Message{ID: "MSG2"}, nil)

	require.NoError(t, s.Publish("CH2"))
}

func TestStatusService_Refresh_WithoutPublish(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newStatus(m.mockDiscord, openImg, closedImg)

	err := s.Refresh()
	require.Error(t, err)
}

func TestStatusService_UpdateStatus(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newStatus(m.mockDiscord, openImg, closedImg)

	state, actor := s.State()
	assert.Equal(t, entity.StateClosed, state)
	assert.Empty(t, actor)

	s.UpdateStatus(entity.StateOpen, "Alice")

	state, actor = s.State()
	assert.Equal(t, entity.StateOpen, state)
	assert.Equal(t, "Alice", actor)
}
