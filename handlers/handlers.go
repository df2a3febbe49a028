package handlers

import (
	"fmt"
	"log/slog"

	"relay-bot/internal"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

func NewHandler(b *internal.Bot) *Handler {
	mux := handler.New()
	mux.Error(func(e *handler.InteractionEvent, err error) {
		i := e.Interaction.(discord.ApplicationCommandInteraction)
		slog.Error("relay: error while handling a command", slog.String("command.name", i.Data.CommandName()), tint.Err(err))
		_ = e.Respond(discord.InteractionResponseTypeCreateMessage, discord.NewMessageCreateBuilder().
			SetContentf("There was an error while handling the command: %v", err).
			SetEphemeral(true).
			Build())
	})
	h := &Handler{
		Bot:    b,
		Router: mux,
	}
	h.Command("/setchannel", h.HandleSetChannel)
	h.Command("/dm", h.HandleDM)
	h.Command("/dmall", h.HandleBroadcast)
	h.Command("/remindme", h.HandleRemind)
	h.Command("/trigger", h.HandleTrigger)
	return h
}

type Handler struct {
	Bot *internal.Bot
	handler.Router
}

func serverMessage(guildName string, body string) string {
	return fmt.Sprintf("📬 Message from **%s**:\n%s\n\n_Reply to this message to respond back to the server._", guildName, body)
}
