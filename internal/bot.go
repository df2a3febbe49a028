package internal

import (
	"relay-bot/db"
	"relay-bot/relay"
)

type Bot struct {
	Discord     *Discord
	Registry    *db.Registry
	Triggers    *relay.TriggerTable
	Scheduler   *relay.Scheduler
	Broadcaster *relay.Broadcaster
	Router      *relay.Router
}

func NewBot(registry *db.Registry, discord *Discord) *Bot {
	return &Bot{
		Discord:     discord,
		Registry:    registry,
		Triggers:    relay.NewTriggerTable(),
		Scheduler:   relay.NewScheduler(discord),
		Broadcaster: &relay.Broadcaster{Roster: discord, Sender: discord},
		Router:      &relay.Router{Guilds: discord, Bindings: registry, Sender: discord},
	}
}
