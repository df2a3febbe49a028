package handlers

import (
	"errors"
	"log/slog"

	"relay-bot/relay"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

func (h *Handler) HandleBroadcast(event *handler.CommandEvent) error {
	data := event.SlashCommandInteractionData()
	message := data.String("message")
	guildID := *event.GuildID()

	if len(message) > relay.MaxMessageLen {
		return event.CreateMessage(discord.NewMessageCreateBuilder().
			SetContentf("Message is too long! Please keep it under %d characters.", relay.MaxMessageLen).
			SetEphemeral(true).
			Build())
	}
	// sending to every member takes a while, so respond later
	if err := event.DeferCreateMessage(false); err != nil {
		return err
	}

	guildName := h.Bot.Discord.GuildName(guildID)
	result, err := h.Bot.Broadcaster.Broadcast(guildID, serverMessage(guildName, message))

	followupBuilder := discord.NewMessageCreateBuilder()
	switch {
	case errors.Is(err, relay.ErrNoRecipients):
		followupBuilder.SetContent("No members to send DMs to!")
	case errors.Is(err, relay.ErrMessageTooLong):
		followupBuilder.SetContentf("Message is too long! Please keep it under %d characters.", relay.MaxMessageLen)
	case err != nil:
		slog.Error("relay: error while broadcasting to a guild", slog.Any("guild.id", guildID), tint.Err(err))
		followupBuilder.SetContent("There was an error while fetching the member list.")
	default:
		followupBuilder.SetContentf("📤 Sent the message to **%d** of **%d** members (**%d** failed).",
			result.Succeeded, result.Attempted, result.Failed)
	}
	_, err = event.CreateFollowupMessage(followupBuilder.Build())
	return err
}
