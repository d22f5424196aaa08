package service

import (
	"context"

	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/features/payment/models"
	"speakyz-backend/internal/features/payment/repository"
	subsmodels "speakyz-backend/internal/features/subscription/models"
	usermodels "speakyz-backend/internal/features/user/models"
)

// PaymentService фиксирует заявленные платежи. Никто их не читает и
// не сверяет: журнал существует под будущую функциональность
// верификации.
type PaymentService interface {
	Record(ctx context.Context, user *usermodels.User, tier subsmodels.Tier) (*models.Payment, error)
}

type paymentService struct {
	repo repository.PaymentRepository
}

func NewPaymentService(repo repository.PaymentRepository) PaymentService {
	return &paymentService{repo: repo}
}

// Record пишет строку платежа с суммой из прайс-листа тарифа.
func (s *paymentService) Record(ctx context.Context, user *usermodels.User, tier subsmodels.Tier) (*models.Payment, error) {
	if s.repo == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}
	if !tier.Valid() {
		return nil, apperrors.NewValidationError("tier", "must be one of start, smart, pro_plus, speaking_club")
	}

	payment, err := s.repo.Create(ctx, &models.Payment{
		UserID:           user.ID,
		TelegramID:       user.TelegramID,
		Amount:           float64(subsmodels.PricesUZS[tier]),
		SubscriptionType: string(tier),
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("record payment", err)
	}

	return payment, nil
}
