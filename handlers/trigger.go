package handlers

import (
	"errors"

	"relay-bot/relay"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

func (h *Handler) HandleTrigger(event *handler.CommandEvent) error {
	data := event.SlashCommandInteractionData()
	word := data.String("word")
	response := data.String("response")

	err := h.Bot.Triggers.SetTrigger(*event.GuildID(), word, response)
	messageBuilder := discord.NewMessageCreateBuilder()
	switch {
	case errors.Is(err, relay.ErrKeywordTooLong):
		return event.CreateMessage(messageBuilder.
			SetContentf("Trigger word is too long! Please keep it under %d characters.", relay.MaxKeywordLen).
			SetEphemeral(true).
			Build())
	case errors.Is(err, relay.ErrResponseTooLong):
		return event.CreateMessage(messageBuilder.
			SetContentf("Response is too long! Please keep it under %d characters.", relay.MaxResponseLen).
			SetEphemeral(true).
			Build())
	case err != nil:
		return err
	}
	return event.CreateMessage(messageBuilder.
		SetContentf("✅ When someone says **%s**, I'll respond with:\n> %s", word, response).
		Build())
}
