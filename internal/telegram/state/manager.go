package state

import (
	"context"
	"time"

	"github.com/futig/edututor/internal/entity"
)

// Manager reads and updates chat state on top of a Storage.
type Manager struct {
	storage Storage
	now     func() time.Time
}

func NewManager(storage Storage) *Manager {
	return &Manager{
		storage: storage,
		now:     time.Now,
	}
}

// Get returns the chat state, or a locked default-language state for chats
// never seen before.
func (m *Manager) Get(ctx context.Context, chatID int64) *ChatState {
	if st, ok := m.storage.Get(ctx, chatID); ok {
		return st
	}
	return &ChatState{Language: entity.DefaultLanguage}
}

func (m *Manager) Unlock(ctx context.Context, chatID int64) {
	m.update(ctx, chatID, func(st *ChatState) { st.Unlocked = true })
}

// Lock hides the surface again and forgets the language choice.
func (m *Manager) Lock(ctx context.Context, chatID int64) {
	m.storage.Delete(ctx, chatID)
}

func (m *Manager) SetLanguage(ctx context.Context, chatID int64, lang entity.Language) {
	m.update(ctx, chatID, func(st *ChatState) { st.Language = lang })
}

func (m *Manager) update(ctx context.Context, chatID int64, fn func(st *ChatState)) {
	st := m.Get(ctx, chatID)
	fn(st)
	st.UpdatedAt = m.now()
	m.storage.Set(ctx, chatID, st)
}
