package state

import (
	"context"
	"strconv"
	"time"

	"github.com/futig/edututor/internal/entity"
	"github.com/patrickmn/go-cache"
)

// ChatState is the per-chat UI state: the login toggle and the chosen
// output language.
type ChatState struct {
	Unlocked  bool
	Language  entity.Language
	UpdatedAt time.Time
}

// Storage defines the interface for chat state persistence
type Storage interface {
	Get(ctx context.Context, chatID int64) (*ChatState, bool)
	Set(ctx context.Context, chatID int64, state *ChatState)
	Delete(ctx context.Context, chatID int64)
}

var _ Storage = &CacheStorage{}

// CacheStorage keeps chat state in memory; idle chats expire after ttl and
// have to log in again.
type CacheStorage struct {
	cache *cache.Cache
}

func NewCacheStorage(ttl time.Duration) *CacheStorage {
	cleanup := ttl * 2
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}

	return &CacheStorage{
		cache: cache.New(ttl, cleanup),
	}
}

func (s *CacheStorage) Get(_ context.Context, chatID int64) (*ChatState, bool) {
	v, ok := s.cache.Get(key(chatID))
	if !ok {
		return nil, false
	}

	st := *v.(*ChatState)
	return &st, true
}

func (s *CacheStorage) Set(_ context.Context, chatID int64, state *ChatState) {
	st := *state
	s.cache.SetDefault(key(chatID), &st)
}

func (s *CacheStorage) Delete(_ context.Context, chatID int64) {
	s.cache.Delete(key(chatID))
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
