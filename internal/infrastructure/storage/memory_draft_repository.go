package storage

import (
	"context"
	"sync"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// MemoryDraftRepository in-memory хранилище черновиков чата
type MemoryDraftRepository struct {
	mu     sync.RWMutex
	drafts map[int64]*entity.Draft
}

// NewMemoryDraftRepository создаёт новое in-memory хранилище
func NewMemoryDraftRepository() *MemoryDraftRepository {
	return &MemoryDraftRepository{
		drafts: make(map[int64]*entity.Draft),
	}
}

// Get возвращает черновик чата, создаёт новый если не найден
func (r *MemoryDraftRepository) Get(ctx context.Context, chatID int64) (*entity.Draft, error) {
	r.mu.RLock()
	draft, exists := r.drafts[chatID]
	r.mu.RUnlock()

	if exists {
		cp := *draft
		return &cp, nil
	}

	newDraft := entity.NewDraft(chatID)

	r.mu.Lock()
	if existing, ok := r.drafts[chatID]; ok {
		newDraft = existing
	} else {
		r.drafts[chatID] = newDraft
	}
	r.mu.Unlock()

	cp := *newDraft
	return &cp, nil
}

// Save сохраняет черновик
func (r *MemoryDraftRepository) Save(ctx context.Context, draft *entity.Draft) error {
	cp := *draft

	r.mu.Lock()
	r.drafts[draft.ChatID] = &cp
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.DraftRepository = (*MemoryDraftRepository)(nil)
