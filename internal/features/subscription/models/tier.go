package models

import (
	"fmt"
	"time"
)

// Tier — уровень подписки студента.
type Tier string

const (
	TierStart        Tier = "start"
	TierSmart        Tier = "smart"
	TierProPlus      Tier = "pro_plus"
	TierSpeakingClub Tier = "speaking_club"
)

// AllTiers перечисляет допустимые уровни в порядке показа.
var AllTiers = []Tier{TierStart, TierSmart, TierProPlus, TierSpeakingClub}

// PricesUZS — статический прайс-лист, сумы в месяц. Start бесплатный.
var PricesUZS = map[Tier]int{
	TierStart:        0,
	TierSmart:        870000,
	TierProPlus:      1650000,
	TierSpeakingClub: 190000,
}

var labels = map[Tier]string{
	TierStart:        "Базовый (Start)",
	TierSmart:        "Продвинутый (Smart)",
	TierProPlus:      "Премиум (Pro+)",
	TierSpeakingClub: "Разговорный клуб",
}

// Valid сообщает, входит ли уровень в четыре определенных тарифа.
func (t Tier) Valid() bool {
	_, ok := PricesUZS[t]
	return ok
}

// Label возвращает отображаемое название тарифа.
func (t Tier) Label() string {
	if label, ok := labels[t]; ok {
		return label
	}
	return string(t)
}

// ParseTier разбирает строковое значение уровня подписки.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown subscription tier: %q", s)
	}
	return t, nil
}

// Summary — проекция подписки пользователя для показа в профиле.
type Summary struct {
	Subscribed bool
	TierLabel  string
	Expiry     *time.Time
	ClubsCount int
}
