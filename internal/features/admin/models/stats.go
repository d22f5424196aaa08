package models

// Stats — сводные показатели для панели администратора.
type Stats struct {
	TotalUsers          int `json:"total_users"`
	ActiveSubscriptions int `json:"active_subscriptions"`
	FAQCount            int `json:"faq_count"`
}

// SubscriptionRate возвращает долю пользователей с подпиской в процентах.
func (s Stats) SubscriptionRate() float64 {
	if s.TotalUsers == 0 {
		return 0
	}
	return float64(s.ActiveSubscriptions) / float64(s.TotalUsers) * 100
}
