package models

import "time"

// FAQ представляет пару вопрос/ответ. Удаление — только мягкое,
// через is_active; неактивные записи исчезают из выдачи, но остаются
// в хранилище.
type FAQ struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy int64     `json:"created_by,omitempty"`
}

// FAQResponse — публичное представление записи для веб-API.
type FAQResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func ToResponse(f *FAQ) FAQResponse {
	return FAQResponse{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
	}
}
