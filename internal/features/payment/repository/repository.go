package repository

import (
	"context"

	"speakyz-backend/internal/features/payment/models"
)

// PaymentRepository — журнал платежей, только добавление.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}
