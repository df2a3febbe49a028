package relay

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

// Router forwards private messages to the relay channel of the guild the
// sender belongs to.
type Router struct {
	Guilds   GuildSource
	Bindings BindingSource
	Sender   Sender
}

// RouteInbound resolves msg to its owning guild and forwards it to the bound
// relay channel, if any. A sender who shares several guilds with the bot is
// always resolved to the first one in the guild source's order; later guilds
// never see the reply. That is a known limitation, kept deterministic rather
// than fixed.
//
// The relay is best-effort: a missing binding or a failed send drops the
// message without notifying the sender. At most one post goes out per inbound
// message.
func (r *Router) RouteInbound(msg InboundMessage) {
	var owner snowflake.ID
	var found bool
	for _, guildID := range r.Guilds.GuildIDs() {
		if r.Guilds.IsMember(guildID, msg.AuthorID) {
			owner = guildID
			found = true
			break
		}
	}
	if !found {
		return
	}
	channelID, ok := r.Bindings.GetBinding(owner)
	if !ok {
		return
	}
	if err := r.Sender.SendToChannel(channelID, formatForward(msg)); err != nil {
		slog.Error("relay: error while forwarding a direct message",
			slog.Any("guild.id", owner),
			slog.Any("channel.id", channelID),
			slog.Any("user.id", msg.AuthorID),
			tint.Err(err))
	}
}

func formatForward(msg InboundMessage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "💬 DM reply from **%s** (`%s`):\n%s", msg.AuthorName, msg.AuthorID, msg.Body)
	if len(msg.Attachments) > 0 {
		sb.WriteString("\n📎 Attachments:")
		for _, attachment := range msg.Attachments {
			fmt.Fprintf(&sb, "\n[%s](%s)", attachment.Filename, attachment.URL)
		}
	}
	return sb.String()
}
