package internal

import (
	"slices"
	"sync"

	"relay-bot/relay"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

const memberPageSize = 1000

// Discord adapts a disgo client to the platform surface the relay core
// consumes. The guild list is fed by gateway events and kept sorted so the
// router always sees the same iteration order.
type Discord struct {
	mu       sync.RWMutex
	guildIDs []snowflake.ID

	client bot.Client
}

func NewDiscord() *Discord {
	return &Discord{}
}

// SetClient attaches the gateway client once it has been built. Must be
// called before the gateway is opened.
func (d *Discord) SetClient(client bot.Client) {
	d.client = client
}

func (d *Discord) AddGuild(guildID snowflake.ID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if slices.Contains(d.guildIDs, guildID) {
		return
	}
	d.guildIDs = append(d.guildIDs, guildID)
	slices.Sort(d.guildIDs)
}

func (d *Discord) RemoveGuild(guildID snowflake.ID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i := slices.Index(d.guildIDs, guildID); i != -1 {
		d.guildIDs = slices.Delete(d.guildIDs, i, i+1)
	}
}

func (d *Discord) GuildIDs() []snowflake.ID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.guildIDs)
}

func (d *Discord) IsMember(guildID snowflake.ID, userID snowflake.ID) bool {
	if _, ok := d.client.Caches().Member(guildID, userID); ok {
		return true
	}
	_, err := d.client.Rest().GetMember(guildID, userID)
	return err == nil
}

func (d *Discord) ListMembers(guildID snowflake.ID) ([]relay.Member, error) {
	var members []relay.Member
	var after snowflake.ID
	for {
		page, err := d.client.Rest().GetMembers(guildID, memberPageSize, after)
		if err != nil {
			return nil, err
		}
		for _, member := range page {
			members = append(members, relay.Member{ID: member.User.ID, Bot: member.User.Bot})
		}
		if len(page) < memberPageSize {
			return members, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func (d *Discord) SendPrivate(userID snowflake.ID, content string) error {
	channel, err := d.client.Rest().CreateDMChannel(userID)
	if err != nil {
		return err
	}
	_, err = d.client.Rest().CreateMessage(channel.ID(), discord.NewMessageCreateBuilder().
		SetContent(content).
		Build())
	return err
}

func (d *Discord) SendToChannel(channelID snowflake.ID, content string) error {
	_, err := d.client.Rest().CreateMessage(channelID, discord.NewMessageCreateBuilder().
		SetContent(content).
		Build())
	return err
}

// GuildName resolves a guild's name from the cache, for message headers.
func (d *Discord) GuildName(guildID snowflake.ID) string {
	if guild, ok := d.client.Caches().Guild(guildID); ok {
		return guild.Name
	}
	return "the server"
}

var (
	_ relay.GuildSource = (*Discord)(nil)
	_ relay.Roster      = (*Discord)(nil)
	_ relay.Sender      = (*Discord)(nil)
)
