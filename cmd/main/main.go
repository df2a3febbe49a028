package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relay-bot/db"
	"relay-bot/handlers"
	"relay-bot/internal"
	"relay-bot/relay"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry"
)

func main() {
	cfg := internal.LoadConfig()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:           os.Getenv("SENTRY_DSN"),
		EnableTracing: false,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if cfg.Environment == "PROD" { // only log events in prod
				return event
			}
			return nil
		},
	})
	if err != nil {
		panic(err)
	}

	defer sentry.Flush(2 * time.Second)

	logger := slog.New(slogmulti.Fanout(
		tint.NewHandler(os.Stdout, &tint.Options{
			Level: slog.LevelInfo,
		}),
		slogsentry.Option{Level: slog.LevelWarn}.NewSentryHandler()))
	slog.SetDefault(logger)

	slog.Info("starting the bot...", slog.String("disgo.version", disgo.Version))

	registry := db.Open(cfg.StoragePath)
	d := internal.NewDiscord()
	b := internal.NewBot(registry, d)
	h := handlers.NewHandler(b)

	client, err := disgo.New(cfg.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds, gateway.IntentGuildMessages, gateway.IntentMessageContent, gateway.IntentDirectMessages, gateway.IntentGuildMembers),
			gateway.WithPresenceOpts(gateway.WithListeningActivity("your DMs"))),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds, cache.FlagChannels)),
		bot.WithEventListeners(h, &events.ListenerAdapter{
			OnGuildReady: func(ev *events.GuildReady) {
				d.AddGuild(ev.GuildID)
			},
			OnGuildJoin: func(ev *events.GuildJoin) {
				d.AddGuild(ev.GuildID)
			},
			OnGuildLeave: func(ev *events.GuildLeave) {
				d.RemoveGuild(ev.GuildID)
			},
			OnDMMessageCreate: func(ev *events.DMMessageCreate) {
				dmListener(ev, b)
			},
			OnGuildMessageCreate: func(ev *events.GuildMessageCreate) {
				triggerListener(ev, b)
			},
		}))
	if err != nil {
		panic(err)
	}
	d.SetClient(client)

	defer client.Close(context.TODO())

	if err := client.OpenGateway(context.TODO()); err != nil {
		panic(err)
	}

	slog.Info("relay bot is now running.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-s
}

func dmListener(ev *events.DMMessageCreate, b *internal.Bot) {
	message := ev.Message
	if message.Author.Bot {
		return
	}
	attachments := make([]relay.Attachment, 0, len(message.Attachments))
	for _, attachment := range message.Attachments {
		attachments = append(attachments, relay.Attachment{
			Filename: attachment.Filename,
			URL:      attachment.URL,
		})
	}
	b.Router.RouteInbound(relay.InboundMessage{
		AuthorID:    message.Author.ID,
		AuthorName:  message.Author.EffectiveName(),
		Body:        message.Content,
		Attachments: attachments,
	})
}

func triggerListener(ev *events.GuildMessageCreate, b *internal.Bot) {
	if ev.Message.Author.Bot {
		return
	}
	response, ok := b.Triggers.Match(ev.GuildID, ev.Message.Content)
	if !ok {
		return
	}
	if _, err := ev.Client().Rest().CreateMessage(ev.ChannelID, discord.NewMessageCreateBuilder().
		SetContent(response).
		Build()); err != nil {
		slog.Error("relay: error while sending a trigger response", slog.Any("channel.id", ev.ChannelID), tint.Err(err))
	}
}
