package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const lifetimeKey = "lifetime"

// ItemStore is the subset of gdata.Manager used for persistence.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedScore represents the score data stored on disk
type SavedScore struct {
	Eaten int `json:"eaten"`
}

var store ItemStore

// InitPersistence opens the gdata store for the lifetime score.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "clawd",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// SetItemStore replaces the persistence backend; nil disables persistence.
func SetItemStore(s ItemStore) {
	store = s
}

// LoadLifetimeScore returns the saved total, or 0 when nothing is stored.
func LoadLifetimeScore() int {
	if store == nil {
		return 0
	}

	data, err := store.LoadItem(lifetimeKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load lifetime score")
		return 0
	}
	if data == nil {
		return 0
	}

	var saved SavedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn().Err(err).Msg("could not parse lifetime score")
		return 0
	}
	return saved.Eaten
}

// SaveLifetimeScore writes the total; failures are logged and ignored.
func SaveLifetimeScore(eaten int) {
	if store == nil {
		return
	}

	data, err := json.Marshal(SavedScore{Eaten: eaten})
	if err != nil {
		log.Warn().Err(err).Msg("could not serialize lifetime score")
		return
	}
	if err := store.SaveItem(lifetimeKey, data); err != nil {
		log.Warn().Err(err).Msg("could not save lifetime score")
	}
}
