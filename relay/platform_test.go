package relay

import (
	"errors"
	"slices"
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

var errSendRefused = errors.New("send refused")

type fakeGuilds struct {
	order   []snowflake.ID
	members map[snowflake.ID][]snowflake.ID
}

func (f *fakeGuilds) GuildIDs() []snowflake.ID {
	return f.order
}

func (f *fakeGuilds) IsMember(guildID snowflake.ID, userID snowflake.ID) bool {
	return slices.Contains(f.members[guildID], userID)
}

type fakeBindings map[snowflake.ID]snowflake.ID

func (f fakeBindings) GetBinding(guildID snowflake.ID) (snowflake.ID, bool) {
	channelID, ok := f[guildID]
	return channelID, ok
}

type fakeRoster struct {
	members map[snowflake.ID][]Member
	err     error
}

func (f *fakeRoster) ListMembers(guildID snowflake.ID) ([]Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members[guildID], nil
}

type fakeSender struct {
	mu          sync.Mutex
	channel     map[snowflake.ID][]string
	private     map[snowflake.ID][]string
	failPrivate map[snowflake.ID]bool
	failChannel bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		channel:     make(map[snowflake.ID][]string),
		private:     make(map[snowflake.ID][]string),
		failPrivate: make(map[snowflake.ID]bool),
	}
}

func (f *fakeSender) SendPrivate(userID snowflake.ID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPrivate[userID] {
		return errSendRefused
	}
	f.private[userID] = append(f.private[userID], content)
	return nil
}

func (f *fakeSender) SendToChannel(channelID snowflake.ID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failChannel {
		return errSendRefused
	}
	f.channel[channelID] = append(f.channel[channelID], content)
	return nil
}

func (f *fakeSender) channelMessages(channelID snowflake.ID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.channel[channelID])
}

func (f *fakeSender) privateMessages(userID snowflake.ID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.private[userID])
}

func (f *fakeSender) privateCount(userID snowflake.ID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.private[userID])
}
