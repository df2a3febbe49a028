package handlers

import (
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

func (h *Handler) HandleSetChannel(event *handler.CommandEvent) error {
	guildID := *event.GuildID()
	channelID := event.Channel().ID()

	messageBuilder := discord.NewMessageCreateBuilder()
	if err := h.Bot.Registry.SetBinding(guildID, channelID); err != nil {
		// the binding still applies for this process, only durability is at risk
		slog.Error("relay: error while persisting a relay binding",
			slog.Any("guild.id", guildID),
			slog.Any("channel.id", channelID),
			tint.Err(err))
		return event.CreateMessage(messageBuilder.
			SetContentf("DM replies will be forwarded to <#%s>, but saving the setting failed; it may not survive a restart.", channelID).
			Build())
	}
	return event.CreateMessage(messageBuilder.
		SetContentf("✅ DM replies from members will now be forwarded to <#%s>.", channelID).
		Build())
}
