package service

import (
	"context"

	"speakyz-backend/internal/common/access"
	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/features/admin/models"
	faqservice "speakyz-backend/internal/features/faq/service"
	userservice "speakyz-backend/internal/features/user/service"
)

// StatsService собирает сводку по пользователям и каталогу FAQ.
type StatsService interface {
	Stats(ctx context.Context, actor access.Identity) (*models.Stats, error)
}

type statsService struct {
	users userservice.UserService
	faq   faqservice.FAQService
	gate  *access.Gate
}

func NewStatsService(users userservice.UserService, faq faqservice.FAQService, gate *access.Gate) StatsService {
	return &statsService{
		users: users,
		faq:   faq,
		gate:  gate,
	}
}

func (s *statsService) Stats(ctx context.Context, actor access.Identity) (*models.Stats, error) {
	if !s.gate.IsAdmin(actor) {
		return nil, apperrors.NewNotAuthorizedError(actor.Username)
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	activeSubs, err := s.users.CountSubscribed(ctx)
	if err != nil {
		return nil, err
	}

	faqCount, err := s.faq.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		TotalUsers:          totalUsers,
		ActiveSubscriptions: activeSubs,
		FAQCount:            faqCount,
	}, nil
}
