package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"speakyz-backend/internal/features/payment/models"
	"speakyz-backend/internal/features/payment/repository"

	_ "github.com/lib/pq"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.PaymentRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	query := `
		INSERT INTO payments (user_id, telegram_id, amount, subscription_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, telegram_id, amount, subscription_type, payment_date, is_verified
	`

	var stored models.Payment
	err := r.db.QueryRowContext(ctx, query,
		payment.UserID, payment.TelegramID, payment.Amount, payment.SubscriptionType).Scan(
		&stored.ID, &stored.UserID, &stored.TelegramID, &stored.Amount,
		&stored.SubscriptionType, &stored.PaymentDate, &stored.IsVerified)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &stored, nil
}
