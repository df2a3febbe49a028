package relay

import "github.com/disgoorg/snowflake/v2"

// InboundMessage is a private message received from the platform layer.
type InboundMessage struct {
	AuthorID    snowflake.ID
	AuthorName  string
	Body        string
	Attachments []Attachment
}

// Attachment references an uploaded file by name and link; files are never
// re-uploaded, only linked.
type Attachment struct {
	Filename string
	URL      string
}

// Member is a single entry of a guild roster.
type Member struct {
	ID  snowflake.ID
	Bot bool
}

// GuildSource reports the guilds the bot serves. GuildIDs must return the
// guilds in a stable order between calls; the router relies on that order to
// resolve senders deterministically.
type GuildSource interface {
	GuildIDs() []snowflake.ID
	IsMember(guildID snowflake.ID, userID snowflake.ID) bool
}

// Roster lists the members of a guild.
type Roster interface {
	ListMembers(guildID snowflake.ID) ([]Member, error)
}

// Sender is the directed-send surface of the platform layer.
type Sender interface {
	SendPrivate(userID snowflake.ID, content string) error
	SendToChannel(channelID snowflake.ID, content string) error
}

// BindingSource looks up the relay channel bound to a guild.
type BindingSource interface {
	GetBinding(guildID snowflake.ID) (snowflake.ID, bool)
}
