package relay

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/exp/maps"
)

const (
	MaxKeywordLen  = 50
	MaxResponseLen = 500
)

var (
	ErrKeywordTooLong  = errors.New("keyword exceeds the length limit")
	ErrResponseTooLong = errors.New("response exceeds the length limit")
)

// TriggerTable holds the per-guild keyword responses. Entries live for the
// lifetime of the process only; whether they should survive a restart is an
// open question inherited from the original behavior, so durability is left
// as an extension.
type TriggerTable struct {
	mu     sync.RWMutex
	guilds map[snowflake.ID]map[string]string
}

func NewTriggerTable() *TriggerTable {
	return &TriggerTable{guilds: make(map[snowflake.ID]map[string]string)}
}

// SetTrigger registers a response for keyword in guildID. The keyword is
// lowercased before storage; a later registration for the same keyword
// replaces the earlier one.
func (t *TriggerTable) SetTrigger(guildID snowflake.ID, keyword string, response string) error {
	if len(keyword) > MaxKeywordLen {
		return ErrKeywordTooLong
	}
	if len(response) > MaxResponseLen {
		return ErrResponseTooLong
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	triggers := t.guilds[guildID]
	if triggers == nil {
		triggers = make(map[string]string)
		t.guilds[guildID] = triggers
	}
	triggers[strings.ToLower(keyword)] = response
	return nil
}

// Match returns the response of the first trigger found in body. A trigger
// matches as a whitespace-delimited token or as a plain substring; the
// substring check subsumes the token check and both are kept to match the
// original policy. Keywords are tried in sorted order so repeated calls see
// the same winner.
func (t *TriggerTable) Match(guildID snowflake.ID, body string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	triggers := t.guilds[guildID]
	if len(triggers) == 0 {
		return "", false
	}
	body = strings.ToLower(body)
	tokens := strings.Fields(body)
	keywords := maps.Keys(triggers)
	slices.Sort(keywords)
	for _, keyword := range keywords {
		if slices.Contains(tokens, keyword) || strings.Contains(body, keyword) {
			return triggers[keyword], true
		}
	}
	return "", false
}
