package memory

import (
	"context"
	"sync"
	"time"

	"speakyz-backend/internal/features/user/models"
	"speakyz-backend/internal/features/user/repository"
)

// Repository — потокобезопасная реализация в памяти, используется в
// тестах вместо Postgres. Уникальность telegram_id соблюдается так же,
// как уникальным индексом в базе.
type Repository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User // ключ — telegram_id
}

func NewRepository() *Repository {
	return &Repository{
		nextID: 1,
		users:  make(map[int64]*models.User),
	}
}

func (r *Repository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	if existing, ok := r.users[user.TelegramID]; ok {
		existing.Username = user.Username
		existing.FirstName = user.FirstName
		existing.LastName = user.LastName
		existing.UpdatedAt = now
		return clone(existing), nil
	}

	stored := &models.User{
		ID:         r.nextID,
		TelegramID: user.TelegramID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.nextID++
	r.users[user.TelegramID] = stored

	return clone(stored), nil
}

func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[telegramID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return clone(user), nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			return clone(user), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *Repository) UpdateSubscription(ctx context.Context, telegramID int64, subType *string, subEnd *time.Time, clubsCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[telegramID]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.SubscriptionType = copyString(subType)
	user.SubscriptionEnd = copyTime(subEnd)
	user.SpeakingClubsCount = clubsCount
	user.UpdatedAt = time.Now().UTC()

	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, clone(user))
	}
	// Порядок регистрации — по внутреннему id.
	for i := 0; i < len(users); i++ {
		for j := i + 1; j < len(users); j++ {
			if users[j].ID < users[i].ID {
				users[i], users[j] = users[j], users[i]
			}
		}
	}
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *Repository) CountSubscribed(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, user := range r.users {
		if user.SubscriptionType != nil {
			count++
		}
	}
	return count, nil
}

func clone(u *models.User) *models.User {
	c := *u
	c.SubscriptionType = copyString(u.SubscriptionType)
	c.SubscriptionEnd = copyTime(u.SubscriptionEnd)
	return &c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
