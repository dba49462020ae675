package services

import (
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	StorageKeyGuestID       = "guestId"
	StorageKeyCurrentUserID = "userId"
	StorageKeyTheme         = "theme"
	StorageKeyFontSize      = "fontSize"
	StorageKeyLayout        = "layout"
)

// LocalStorage is the state a client keeps for us between requests.
type LocalStorage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MapStorage is a LocalStorage held in memory.
type MapStorage map[string]string

func (v MapStorage) Get(key string) (string, bool) {
	val, ok := v[key]
	return val, ok && len(val) > 0
}

func (v MapStorage) Set(key, value string) {
	v[key] = value
}

type Actor struct {
	ID            string  `json:"id"`
	Email         *string `json:"email"`
	Authenticated bool    `json:"authenticated"`
}

// EnsureGuestID returns the persisted guest id, generating one when absent.
func EnsureGuestID(storage LocalStorage) string {
	if guestId, ok := storage.Get(StorageKeyGuestID); ok {
		return guestId
	}
	guestId := uuid.NewString()
	storage.Set(StorageKeyGuestID, guestId)
	log.Debug().Str("guest", guestId).Msg("Assigned a new guest id...")
	return guestId
}

// ResolveActor picks the signed-in account when there is one and falls back to the guest identity.
func ResolveActor(account *models.Account, storage LocalStorage) Actor {
	if account != nil && len(account.ID) > 0 {
		storage.Set(StorageKeyCurrentUserID, account.ID)
		email := account.Email
		return Actor{ID: account.ID, Email: &email, Authenticated: true}
	}

	guestId := EnsureGuestID(storage)
	storage.Set(StorageKeyCurrentUserID, guestId)
	return Actor{ID: guestId}
}

func ResolveActorID(account *models.Account, storage LocalStorage) string {
	return ResolveActor(account, storage).ID
}
