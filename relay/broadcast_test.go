package relay

import (
	"errors"
	"strings"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_TalliesPartialFailure(t *testing.T) {
	sender := newFakeSender()
	sender.failPrivate[102] = true
	sender.failPrivate[104] = true
	roster := &fakeRoster{members: map[snowflake.ID][]Member{
		10: {
			{ID: 101}, {ID: 102}, {ID: 103}, {ID: 104}, {ID: 105},
			{ID: 900, Bot: true},
		},
	}}
	b := &Broadcaster{Roster: roster, Sender: sender}

	result, err := b.Broadcast(10, "announcement")
	require.NoError(t, err)
	assert.Equal(t, Result{Attempted: 5, Succeeded: 3, Failed: 2}, result)

	assert.Zero(t, sender.privateCount(900)) // bots are never messaged
	assert.Equal(t, []string{"announcement"}, sender.privateMessages(101))
}

func TestBroadcaster_AllFailStillReturnsResult(t *testing.T) {
	sender := newFakeSender()
	roster := &fakeRoster{members: map[snowflake.ID][]Member{10: {{ID: 101}, {ID: 102}}}}
	for _, member := range roster.members[10] {
		sender.failPrivate[member.ID] = true
	}
	b := &Broadcaster{Roster: roster, Sender: sender}

	result, err := b.Broadcast(10, "announcement")
	require.NoError(t, err)
	assert.Equal(t, Result{Attempted: 2, Succeeded: 0, Failed: 2}, result)
}

func TestBroadcaster_NoRecipients(t *testing.T) {
	sender := newFakeSender()
	b := &Broadcaster{Sender: sender}

	b.Roster = &fakeRoster{members: map[snowflake.ID][]Member{}}
	_, err := b.Broadcast(10, "announcement")
	require.ErrorIs(t, err, ErrNoRecipients)

	// a roster of bots only is just as empty
	b.Roster = &fakeRoster{members: map[snowflake.ID][]Member{10: {{ID: 900, Bot: true}}}}
	_, err = b.Broadcast(10, "announcement")
	require.ErrorIs(t, err, ErrNoRecipients)
}

func TestBroadcaster_MessageTooLong(t *testing.T) {
	b := &Broadcaster{
		Roster: &fakeRoster{err: errors.New("roster must not be consulted")},
		Sender: newFakeSender(),
	}

	_, err := b.Broadcast(10, strings.Repeat("a", MaxMessageLen+1))
	require.ErrorIs(t, err, ErrMessageTooLong)
}

func TestBroadcaster_RosterError(t *testing.T) {
	rosterErr := errors.New("members unavailable")
	b := &Broadcaster{
		Roster: &fakeRoster{err: rosterErr},
		Sender: newFakeSender(),
	}

	_, err := b.Broadcast(10, "announcement")
	require.ErrorIs(t, err, rosterErr)
}

func TestBroadcaster_LargeRoster(t *testing.T) {
	sender := newFakeSender()
	var members []Member
	for i := range 500 {
		id := snowflake.ID(1000 + i)
		members = append(members, Member{ID: id})
		if i%3 == 0 {
			sender.failPrivate[id] = true
		}
	}
	b := &Broadcaster{
		Roster:    &fakeRoster{members: map[snowflake.ID][]Member{10: members}},
		Sender:    sender,
		SendLimit: 16,
	}

	result, err := b.Broadcast(10, "announcement")
	require.NoError(t, err)
	assert.Equal(t, 500, result.Attempted)
	assert.Equal(t, 167, result.Failed)
	assert.Equal(t, 333, result.Succeeded)
}
