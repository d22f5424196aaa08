package models

import "time"

// User представляет студента школы, зарегистрированного через бота.
// Естественный ключ — telegram_id; одна строка на пользователя.
type User struct {
	ID                 int64      `json:"id"`
	TelegramID         int64      `json:"telegram_id"`
	Username           string     `json:"username"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	SubscriptionType   *string    `json:"subscription_type,omitempty"`
	SubscriptionEnd    *time.Time `json:"subscription_end,omitempty"`
	SpeakingClubsCount int        `json:"speaking_clubs_count"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Subscribed сообщает, есть ли у пользователя подписка. Срок действия
// здесь намеренно не учитывается: истекшая, но не снятая подписка
// считается активной до явного revoke.
func (u *User) Subscribed() bool {
	return u.SubscriptionType != nil && *u.SubscriptionType != ""
}
