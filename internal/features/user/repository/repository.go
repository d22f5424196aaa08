package repository

import (
	"context"
	"errors"
	"time"

	"speakyz-backend/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// Upsert вставляет пользователя или обновляет username/first_name/
	// last_name по конфликту telegram_id. Возвращает сохраненную строку.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateSubscription перезаписывает поля подписки пользователя.
	UpdateSubscription(ctx context.Context, telegramID int64, subType *string, subEnd *time.Time, clubsCount int) error
	List(ctx context.Context, limit int) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
	CountSubscribed(ctx context.Context) (int, error)
}
