package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// DefaultPackageLimit сколько пакетов держим в памяти.
const DefaultPackageLimit = 200

// MemoryPackageRepository in-memory хранилище пакетов. При переполнении
// вытесняет самые старые.
type MemoryPackageRepository struct {
	mu       sync.RWMutex
	packages map[string]*entity.Package
	order    []string
	limit    int
	now      func() time.Time
}

// NewMemoryPackageRepository создаёт хранилище на limit пакетов
func NewMemoryPackageRepository(limit int) *MemoryPackageRepository {
	if limit <= 0 {
		limit = DefaultPackageLimit
	}
	return &MemoryPackageRepository{
		packages: make(map[string]*entity.Package),
		limit:    limit,
		now:      time.Now,
	}
}

// Save сохраняет пакет, назначая ID и время создания если они пустые
func (r *MemoryPackageRepository) Save(ctx context.Context, pkg *entity.Package) error {
	if pkg.ID == "" {
		id, err := newID()
		if err != nil {
			return err
		}
		pkg.ID = id
	}
	if pkg.CreatedAt.IsZero() {
		pkg.CreatedAt = r.now()
	}
	cp := *pkg

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.packages[pkg.ID]; !exists {
		r.order = append(r.order, pkg.ID)
	}
	r.packages[pkg.ID] = &cp

	for len(r.order) > r.limit {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.packages, oldest)
	}

	return nil
}

// Get возвращает копию пакета по ID
func (r *MemoryPackageRepository) Get(ctx context.Context, id string) (*entity.Package, error) {
	r.mu.RLock()
	pkg, exists := r.packages[id]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", entity.ErrPackageNotFound, id)
	}

	cp := *pkg
	return &cp, nil
}

// Len число пакетов в памяти
func (r *MemoryPackageRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.packages)
}

func newID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

var _ port.PackageRepository = (*MemoryPackageRepository)(nil)
