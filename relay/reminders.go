package relay

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

const (
	DefaultMinDelay = time.Minute
	DefaultMaxDelay = 24 * time.Hour
	MaxReminderLen  = 200
)

var (
	ErrDelayOutOfRange = errors.New("delay is out of range")
	ErrReminderTooLong = errors.New("reminder text exceeds the length limit")
)

// Scheduler delivers one-shot reminders. Each accepted reminder owns a
// goroutine between acceptance and its single delivery attempt, so thousands
// can be pending without holding anything else up. Nothing is persisted;
// reminders pending at shutdown are lost.
type Scheduler struct {
	Sender Sender

	MinDelay   time.Duration
	MaxDelay   time.Duration
	MaxTextLen int
}

func NewScheduler(sender Sender) *Scheduler {
	return &Scheduler{
		Sender:     sender,
		MinDelay:   DefaultMinDelay,
		MaxDelay:   DefaultMaxDelay,
		MaxTextLen: MaxReminderLen,
	}
}

// Schedule validates the reminder and, on acceptance, returns the computed
// fire time right away so the caller can confirm immediately. The wait and
// the delivery happen elsewhere; a failed delivery is logged and discarded,
// never retried, and there is no way to cancel an accepted reminder.
func (s *Scheduler) Schedule(requesterID snowflake.ID, delay time.Duration, text string) (time.Time, error) {
	if delay < s.MinDelay || delay > s.MaxDelay {
		return time.Time{}, ErrDelayOutOfRange
	}
	if len(text) > s.MaxTextLen {
		return time.Time{}, ErrReminderTooLong
	}
	fireAt := time.Now().Add(delay)
	go s.deliver(requesterID, delay, text)
	return fireAt, nil
}

func (s *Scheduler) deliver(requesterID snowflake.ID, delay time.Duration, text string) {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	<-timer.C
	content := fmt.Sprintf("⏰ You asked me to remind you about: **%s**", text)
	if err := s.Sender.SendPrivate(requesterID, content); err != nil {
		// requester unreachable, the reminder is simply dropped
		slog.Warn("relay: error while delivering a reminder", slog.Any("user.id", requesterID), tint.Err(err))
	}
}
