package models

import "time"

// Payment — заявленный платеж. Записи только добавляются: сверка с
// банком не выполняется, is_verified остается false до будущей
// функциональности верификации.
type Payment struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	TelegramID       int64     `json:"telegram_id"`
	Amount           float64   `json:"amount"`
	SubscriptionType string    `json:"subscription_type"`
	PaymentDate      time.Time `json:"payment_date"`
	IsVerified       bool      `json:"is_verified"`
}
