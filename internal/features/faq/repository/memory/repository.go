package memory

import (
	"context"
	"sync"
	"time"

	"speakyz-backend/internal/features/faq/models"
	"speakyz-backend/internal/features/faq/repository"
)

// Repository — реализация каталога FAQ в памяти для тестов.
type Repository struct {
	mu      sync.Mutex
	nextID  int64
	entries []*models.FAQ
}

func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

func (r *Repository) Create(ctx context.Context, entry *models.FAQ) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &models.FAQ{
		ID:        r.nextID,
		Question:  entry.Question,
		Answer:    entry.Answer,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
		CreatedBy: entry.CreatedBy,
	}
	r.nextID++
	r.entries = append(r.entries, stored)

	c := *stored
	return &c, nil
}

func (r *Repository) Update(ctx context.Context, id int64, question, answer string) (*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.ID == id {
			entry.Question = question
			entry.Answer = answer
			c := *entry
			return &c, nil
		}
	}
	return nil, repository.ErrFAQNotFound
}

func (r *Repository) ListActive(ctx context.Context) ([]*models.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var active []*models.FAQ
	for _, entry := range r.entries {
		if entry.IsActive {
			c := *entry
			active = append(active, &c)
		}
	}
	return active, nil
}

func (r *Repository) CountActive(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, entry := range r.entries {
		if entry.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *Repository) HasAny(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries) > 0, nil
}

// Deactivate помечает запись неактивной. Используется только тестами:
// продуктовые операции мягкое удаление не выполняют.
func (r *Repository) Deactivate(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.ID == id {
			entry.IsActive = false
		}
	}
}
