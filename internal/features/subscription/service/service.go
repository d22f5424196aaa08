package service

import (
	"context"
	"time"

	"speakyz-backend/internal/common/access"
	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/features/subscription/models"
	usermodels "speakyz-backend/internal/features/user/models"
	userrepo "speakyz-backend/internal/features/user/repository"
)

// SubscriptionService — журнал подписок: выдача, снятие и чтение
// подписки пользователя. Оплату сервис не проверяет: строки payments
// пишутся отдельно и здесь не читаются.
type SubscriptionService interface {
	// Grant выдает подписку на durationDays дней начиная с текущего
	// момента. Неположительная длительность принимается и дает уже
	// истекшую подписку.
	Grant(ctx context.Context, actor access.Identity, user *usermodels.User, tier models.Tier, durationDays int) (*usermodels.User, error)
	// Revoke безусловно снимает подписку; повторный вызов — no-op.
	Revoke(ctx context.Context, actor access.Identity, user *usermodels.User) (*usermodels.User, error)
	Describe(user *usermodels.User) models.Summary
	// IsCurrentlyEntitled в отличие от Subscribed учитывает срок
	// действия. Нигде в текущих поверхностях не используется.
	IsCurrentlyEntitled(user *usermodels.User, now time.Time) bool
}

type subscriptionService struct {
	users userrepo.UserRepository
	gate  *access.Gate
	now   func() time.Time
}

func NewSubscriptionService(users userrepo.UserRepository, gate *access.Gate) SubscriptionService {
	return &subscriptionService{
		users: users,
		gate:  gate,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *subscriptionService) Grant(ctx context.Context, actor access.Identity, user *usermodels.User, tier models.Tier, durationDays int) (*usermodels.User, error) {
	if !s.gate.IsAdmin(actor) {
		return nil, apperrors.NewNotAuthorizedError(actor.Username)
	}
	if s.users == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}
	if !tier.Valid() {
		return nil, apperrors.NewValidationError("tier", "must be one of start, smart, pro_plus, speaking_club")
	}

	now := s.now()
	end := now.AddDate(0, 0, durationDays)
	subType := string(tier)

	err := s.users.UpdateSubscription(ctx, user.TelegramID, &subType, &end, user.SpeakingClubsCount)
	if err != nil {
		if err == userrepo.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user", user.TelegramID)
		}
		return nil, apperrors.NewDatabaseError("grant subscription", err)
	}

	updated := *user
	updated.SubscriptionType = &subType
	updated.SubscriptionEnd = &end
	updated.UpdatedAt = now

	return &updated, nil
}

func (s *subscriptionService) Revoke(ctx context.Context, actor access.Identity, user *usermodels.User) (*usermodels.User, error) {
	if !s.gate.IsAdmin(actor) {
		return nil, apperrors.NewNotAuthorizedError(actor.Username)
	}
	if s.users == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	err := s.users.UpdateSubscription(ctx, user.TelegramID, nil, nil, 0)
	if err != nil {
		if err == userrepo.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user", user.TelegramID)
		}
		return nil, apperrors.NewDatabaseError("revoke subscription", err)
	}

	updated := *user
	updated.SubscriptionType = nil
	updated.SubscriptionEnd = nil
	updated.SpeakingClubsCount = 0
	updated.UpdatedAt = s.now()

	return &updated, nil
}

// Describe — чистая проекция без побочных эффектов.
func (s *subscriptionService) Describe(user *usermodels.User) models.Summary {
	summary := models.Summary{
		ClubsCount: user.SpeakingClubsCount,
	}

	if user.Subscribed() {
		summary.Subscribed = true
		summary.TierLabel = models.Tier(*user.SubscriptionType).Label()
		summary.Expiry = user.SubscriptionEnd
	}

	return summary
}

func (s *subscriptionService) IsCurrentlyEntitled(user *usermodels.User, now time.Time) bool {
	if !user.Subscribed() {
		return false
	}
	// Подписка без срока действия считается бессрочной.
	if user.SubscriptionEnd == nil {
		return true
	}
	return user.SubscriptionEnd.After(now)
}
