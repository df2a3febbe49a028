package handlers

import (
	"errors"
	"time"

	"relay-bot/relay"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

func (h *Handler) HandleRemind(event *handler.CommandEvent) error {
	data := event.SlashCommandInteractionData()
	duration := data.Int("duration")
	text := data.String("reminder")

	fireAt, err := h.Bot.Scheduler.Schedule(event.User().ID, time.Duration(duration)*time.Minute, text)
	messageBuilder := discord.NewMessageCreateBuilder()
	switch {
	case errors.Is(err, relay.ErrDelayOutOfRange):
		return event.CreateMessage(messageBuilder.
			SetContent("Duration must be between 1 minute and 24 hours (1440 minutes)!").
			SetEphemeral(true).
			Build())
	case errors.Is(err, relay.ErrReminderTooLong):
		return event.CreateMessage(messageBuilder.
			SetContentf("Reminder text is too long! Please keep it under %d characters.", relay.MaxReminderLen).
			SetEphemeral(true).
			Build())
	case err != nil:
		return err
	}
	return event.CreateMessage(messageBuilder.
		SetContentf("⏰ I'll remind you about **%s** in %d minute(s), at <t:%d:F>.", text, duration, fireAt.Unix()).
		Build())
}
