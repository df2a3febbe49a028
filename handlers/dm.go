package handlers

import (
	"relay-bot/relay"
	"relay-bot/util"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

func (h *Handler) HandleDM(event *handler.CommandEvent) error {
	data := event.SlashCommandInteractionData()
	member := data.Member("user")
	message := data.String("message")

	messageBuilder := discord.NewMessageCreateBuilder().SetEphemeral(true)
	if len(message) > relay.MaxMessageLen {
		return event.CreateMessage(messageBuilder.
			SetContentf("Message is too long! Please keep it under %d characters.", relay.MaxMessageLen).
			Build())
	}
	if member.User.Bot {
		return event.CreateMessage(messageBuilder.
			SetContent("Cannot send DMs to bots!").
			Build())
	}

	guildName := h.Bot.Discord.GuildName(*event.GuildID())
	if err := h.Bot.Discord.SendPrivate(member.User.ID, serverMessage(guildName, message)); err != nil {
		return event.CreateMessage(messageBuilder.
			SetContentf("Could not send a DM to %s. They may have DMs disabled or have blocked the bot.", member.User.Mention()).
			Build())
	}
	return event.CreateMessage(discord.NewMessageCreateBuilder().
		SetContentf("✅ Message sent to %s.\n> %s", member.User.Mention(), util.Truncate(message, 500)).
		Build())
}
