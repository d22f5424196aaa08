package service

import (
	"context"

	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/common/validation"
	"speakyz-backend/internal/features/user/models"
	"speakyz-backend/internal/features/user/repository"
)

// UserService — справочник пользователей: идемпотентная регистрация
// при каждом контакте и поисковые/агрегатные запросы.
type UserService interface {
	RegisterOrTouch(ctx context.Context, telegramID int64, username, firstName, lastName string) (*models.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, limit int) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
	CountSubscribed(ctx context.Context) (int, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// RegisterOrTouch создает пользователя при первом контакте либо
// обновляет его имя и username (last-write-wins). Никогда не создает
// вторую строку для того же telegram_id: вставка идет через upsert,
// и гонка одновременных первых контактов вырождается в обновление.
func (s *userService) RegisterOrTouch(ctx context.Context, telegramID int64, username, firstName, lastName string) (*models.User, error) {
	if s.repo == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	user, err := s.repo.Upsert(ctx, &models.User{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("register user", err)
	}

	return user, nil
}

func (s *userService) FindByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	if s.repo == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user", telegramID)
		}
		return nil, apperrors.NewDatabaseError("get user", err)
	}

	return user, nil
}

// FindByUsername ищет пользователя по username; ведущая @ отбрасывается.
func (s *userService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.repo == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	username = validation.NormalizeUsername(username)

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user", username)
		}
		return nil, apperrors.NewDatabaseError("get user by username", err)
	}

	return user, nil
}

func (s *userService) List(ctx context.Context, limit int) ([]*models.User, error) {
	if s.repo == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	users, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list users", err)
	}

	return users, nil
}

func (s *userService) Count(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, apperrors.NewStoreUnavailableError()
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperrors.NewDatabaseError("count users", err)
	}

	return count, nil
}

func (s *userService) CountSubscribed(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, apperrors.NewStoreUnavailableError()
	}

	count, err := s.repo.CountSubscribed(ctx)
	if err != nil {
		return 0, apperrors.NewDatabaseError("count subscribed users", err)
	}

	return count, nil
}
