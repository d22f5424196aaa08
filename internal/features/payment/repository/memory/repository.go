package memory

import (
	"context"
	"sync"
	"time"

	"speakyz-backend/internal/features/payment/models"
)

// Repository — журнал платежей в памяти для тестов.
type Repository struct {
	mu       sync.Mutex
	nextID   int64
	payments []*models.Payment
}

func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

func (r *Repository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &models.Payment{
		ID:               r.nextID,
		UserID:           payment.UserID,
		TelegramID:       payment.TelegramID,
		Amount:           payment.Amount,
		SubscriptionType: payment.SubscriptionType,
		PaymentDate:      time.Now().UTC(),
		IsVerified:       false,
	}
	r.nextID++
	r.payments = append(r.payments, stored)

	c := *stored
	return &c, nil
}

// All возвращает копию журнала; используется тестами.
func (r *Repository) All() []*models.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		c := *p
		out = append(out, &c)
	}
	return out
}
