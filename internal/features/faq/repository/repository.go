package repository

import (
	"context"
	"errors"

	"speakyz-backend/internal/features/faq/models"
)

var ErrFAQNotFound = errors.New("faq entry not found")

type FAQRepository interface {
	Create(ctx context.Context, entry *models.FAQ) (*models.FAQ, error)
	// Update безусловно перезаписывает вопрос и ответ записи.
	Update(ctx context.Context, id int64, question, answer string) (*models.FAQ, error)
	// ListActive возвращает активные записи в порядке вставки.
	ListActive(ctx context.Context) ([]*models.FAQ, error)
	CountActive(ctx context.Context) (int, error)
	// HasAny учитывает и неактивные записи; нужен сидированию.
	HasAny(ctx context.Context) (bool, error)
}
