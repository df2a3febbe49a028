package db

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
	"github.com/schollz/jsonstore"
)

// Registry maps guilds to their relay channels. The in-memory store is
// authoritative for the lifetime of the process; the JSON file at path is
// best-effort durability across restarts.
type Registry struct {
	mu       sync.Mutex // serializes saves
	keystore *jsonstore.JSONStore
	path     string
}

// Open loads the registry file at path. A missing or corrupt file yields an
// empty registry, never an error.
func Open(path string) *Registry {
	k, err := jsonstore.Open(path)
	if err != nil {
		slog.Warn("relay: starting with an empty channel registry", slog.String("storage.path", path), tint.Err(err))
		k = new(jsonstore.JSONStore)
	}
	return &Registry{keystore: k, path: path}
}

// SetBinding binds channelID as the relay channel of guildID, replacing any
// previous binding. The in-memory binding is applied even when persisting it
// fails; the returned error only means durability across a restart is not
// guaranteed.
func (r *Registry) SetBinding(guildID snowflake.ID, channelID snowflake.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.keystore.Set(guildID.String(), channelID); err != nil {
		return err
	}
	return jsonstore.Save(r.keystore, r.path)
}

// GetBinding returns the relay channel bound to guildID, if any.
func (r *Registry) GetBinding(guildID snowflake.ID) (snowflake.ID, bool) {
	var channelID snowflake.ID
	if err := r.keystore.Get(guildID.String(), &channelID); err != nil {
		var noSuchKeyError jsonstore.NoSuchKeyError
		if !errors.As(err, &noSuchKeyError) {
			slog.Error("relay: error while reading a relay binding", slog.Any("guild.id", guildID), tint.Err(err))
		}
		return 0, false
	}
	return channelID, true
}
