package relay

import (
	"errors"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxMessageLen mirrors the platform's message content limit.
	MaxMessageLen = 2000

	defaultSendLimit = 8
)

var (
	ErrMessageTooLong = errors.New("message exceeds the length limit")
	ErrNoRecipients   = errors.New("no members to send the message to")
)

// Result tallies the outcome of a single broadcast.
type Result struct {
	Attempted int
	Succeeded int
	Failed    int
}

// Broadcaster sends a message to every non-bot member of a guild, one private
// message each. Recipients are attempted independently; a refused delivery
// only increments Failed and never aborts the rest. Partial failure is the
// normal case, not an exceptional one.
type Broadcaster struct {
	Roster Roster
	Sender Sender

	// SendLimit caps how many sends are in flight at once. Zero means the
	// default.
	SendLimit int
}

func (b *Broadcaster) Broadcast(guildID snowflake.ID, body string) (Result, error) {
	if len(body) > MaxMessageLen {
		return Result{}, ErrMessageTooLong
	}
	members, err := b.Roster.ListMembers(guildID)
	if err != nil {
		return Result{}, err
	}
	var recipients []Member
	for _, member := range members {
		if !member.Bot {
			recipients = append(recipients, member)
		}
	}
	if len(recipients) == 0 {
		return Result{}, ErrNoRecipients
	}
	limit := b.SendLimit
	if limit <= 0 {
		limit = defaultSendLimit
	}

	var mu sync.Mutex
	result := Result{Attempted: len(recipients)}

	var eg errgroup.Group
	eg.SetLimit(limit)
	for _, recipient := range recipients {
		eg.Go(func() error {
			err := b.Sender.SendPrivate(recipient.ID, body)
			mu.Lock()
			if err != nil {
				result.Failed++
			} else {
				result.Succeeded++
			}
			mu.Unlock()
			return nil // refused deliveries only count, they never abort the group
		})
	}
	_ = eg.Wait()
	return result, nil
}
