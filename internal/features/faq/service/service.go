package service

import (
	"context"
	"strings"

	"speakyz-backend/internal/common/access"
	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/common/logger"
	"speakyz-backend/internal/common/validation"
	"speakyz-backend/internal/features/faq/models"
	"speakyz-backend/internal/features/faq/repository"
)

// FAQService — каталог вопросов и ответов. Добавление и редактирование
// доступны только администратору; чтение публично.
type FAQService interface {
	Add(ctx context.Context, actor access.Identity, question, answer string) (*models.FAQ, error)
	Edit(ctx context.Context, actor access.Identity, id int64, question, answer string) (*models.FAQ, error)
	ListActive(ctx context.Context) ([]*models.FAQ, error)
	Count(ctx context.Context) (int, error)
	// SeedDefaults добавляет стартовые записи, если каталог пуст.
	SeedDefaults(ctx context.Context) error
}

type faqService struct {
	repo repository.FAQRepository
	gate *access.Gate
}

func NewFAQService(repo repository.FAQRepository, gate *access.Gate) FAQService {
	return &faqService{repo: repo, gate: gate}
}

// Add отклоняет запись с пустым вопросом или ответом до любой записи в
// хранилище.
func (s *faqService) Add(ctx context.Context, actor access.Identity, question, answer string) (*models.FAQ, error) {
	if !s.gate.IsAdmin(actor) {
		return nil, apperrors.NewNotAuthorizedError(actor.Username)
	}
	if s.repo == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if err := validation.ValidateQuestion(question); err != nil {
		return nil, apperrors.NewValidationError("question", err.Error())
	}
	if err := validation.ValidateAnswer(answer); err != nil {
		return nil, apperrors.NewValidationError("answer", err.Error())
	}

	entry, err := s.repo.Create(ctx, &models.FAQ{
		Question:  question,
		Answer:    answer,
		CreatedBy: actor.TelegramID,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("create faq entry", err)
	}

	return entry, nil
}

// Edit перезаписывает оба поля безусловно: в отличие от Add пустые
// значения не отклоняются. Асимметрия сохранена намеренно.
func (s *faqService) Edit(ctx context.Context, actor access.Identity, id int64, question, answer string) (*models.FAQ, error) {
	if !s.gate.IsAdmin(actor) {
		return nil, apperrors.NewNotAuthorizedError(actor.Username)
	}
	if s.repo == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	entry, err := s.repo.Update(ctx, id, strings.TrimSpace(question), strings.TrimSpace(answer))
	if err != nil {
		if err == repository.ErrFAQNotFound {
			return nil, apperrors.NewNotFoundError("faq entry", id)
		}
		return nil, apperrors.NewDatabaseError("update faq entry", err)
	}

	return entry, nil
}

func (s *faqService) ListActive(ctx context.Context) ([]*models.FAQ, error) {
	if s.repo == nil {
		return nil, apperrors.NewStoreUnavailableError()
	}

	entries, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list faq entries", err)
	}

	return entries, nil
}

func (s *faqService) Count(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, apperrors.NewStoreUnavailableError()
	}

	count, err := s.repo.CountActive(ctx)
	if err != nil {
		return 0, apperrors.NewDatabaseError("count faq entries", err)
	}

	return count, nil
}

// Стартовое наполнение каталога для нового развертывания.
var defaultEntries = []models.FAQ{
	{
		Question: "Как проходят занятия?",
		Answer:   "Занятия проходят онлайн через Zoom в удобное для вас время. Групповые занятия - до 8 человек, индивидуальные - один на один с преподавателем.",
	},
	{
		Question: "Какие тарифы доступны?",
		Answer:   "У нас 4 тарифа:\n• Start - 2 групповых занятия/неделю\n• Smart - 2 групповых + 1 разговорный клуб (870,000 UZS/мес)\n• Pro+ - 2 индивидуальных + 2 групповых (1,650,000 UZS/мес)\n• Разговорный клуб - 1 встреча/неделю (190,000 UZS/мес)",
	},
	{
		Question: "Как оплатить обучение?",
		Answer:   "Оплата производится переводом на карту. После оплаты ваша подписка активируется автоматически.",
	},
	{
		Question: "Можно ли вернуть деньги?",
		Answer:   "Если вы хотите оформить возврат средств то пишите нашему сотруднику @Dream565758",
	},
}

func (s *faqService) SeedDefaults(ctx context.Context) error {
	if s.repo == nil {
		return apperrors.NewStoreUnavailableError()
	}

	exists, err := s.repo.HasAny(ctx)
	if err != nil {
		return apperrors.NewDatabaseError("check faq entries", err)
	}
	if exists {
		return nil
	}

	for _, entry := range defaultEntries {
		e := entry
		if _, err := s.repo.Create(ctx, &e); err != nil {
			return apperrors.NewDatabaseError("seed faq entries", err)
		}
	}

	logger.Info().Int("count", len(defaultEntries)).Msg("Default FAQ entries seeded")
	return nil
}
