package bot

import (
	"context"
	"strings"
	"time"

	"speakyz-backend/internal/common/access"
	"speakyz-backend/internal/common/config"
	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/common/logger"
	adminservice "speakyz-backend/internal/features/admin/service"
	faqservice "speakyz-backend/internal/features/faq/service"
	paymentservice "speakyz-backend/internal/features/payment/service"
	subsservice "speakyz-backend/internal/features/subscription/service"
	userservice "speakyz-backend/internal/features/user/service"
	"speakyz-backend/internal/platform/telegram"
)

// api описывает методы Telegram Bot API, которые использует бот.
// Выделен в интерфейс, чтобы тесты могли подставить заглушку.
type api interface {
	GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]telegram.Update, error)
	SendMessage(ctx context.Context, params telegram.SendMessageParams) error
	EditMessageText(ctx context.Context, params telegram.EditMessageTextParams) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string) error
	DeleteWebhook(ctx context.Context, dropPending bool) error
}

// Bot обрабатывает обновления Telegram и связывает их с сервисами школы.
type Bot struct {
	api           api
	users         userservice.UserService
	subscriptions subsservice.SubscriptionService
	faq           faqservice.FAQService
	stats         adminservice.StatsService
	payments      paymentservice.PaymentService
	gate          *access.Gate

	websiteURL    string
	faqURL        string
	cardNumber    string
	supportHandle string
	pollTimeout   int
}

// Deps перечисляет зависимости, необходимые боту.
type Deps struct {
	Client        *telegram.Client
	Users         userservice.UserService
	Subscriptions subsservice.SubscriptionService
	FAQ           faqservice.FAQService
	Stats         adminservice.StatsService
	Payments      paymentservice.PaymentService
	Gate          *access.Gate
	Config        *config.Config
}

func New(deps Deps) *Bot {
	return &Bot{
		api:           deps.Client,
		users:         deps.Users,
		subscriptions: deps.Subscriptions,
		faq:           deps.FAQ,
		stats:         deps.Stats,
		payments:      deps.Payments,
		gate:          deps.Gate,
		websiteURL:    deps.Config.School.WebsiteURL,
		faqURL:        deps.Config.School.FAQURL,
		cardNumber:    deps.Config.School.CardNumber,
		supportHandle: deps.Config.School.SupportHandle,
		pollTimeout:   deps.Config.Telegram.PollTimeout,
	}
}

// Run запускает long polling и блокируется до отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.api.DeleteWebhook(ctx, true); err != nil {
		logger.Warn().Err(err).Msg("failed to delete webhook, continuing anyway")
	}

	logger.Info().Msg("bot polling started")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("bot polling stopped")
			return ctx.Err()
		default:
		}

		updates, err := b.api.GetUpdates(ctx, offset, b.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error().Err(err).Msg("failed to get updates")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update telegram.Update) {
	intent := Classify(update)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Int64("chat_id", intent.ChatID).Msg("panic while handling update")
		}
	}()

	switch intent.Kind {
	case IntentCommand:
		b.handleCommand(ctx, intent)
	case IntentCallback:
		b.handleCallback(ctx, intent)
	}
}

func (b *Bot) handleCommand(ctx context.Context, intent Intent) {
	switch intent.Command {
	case "start":
		b.cmdStart(ctx, intent)
	case "help":
		b.cmdHelp(ctx, intent)
	case "faq":
		b.cmdFAQ(ctx, intent)
	case "admineditbot":
		b.cmdAdminPanel(ctx, intent)
	case "add_faq":
		b.cmdAddFAQ(ctx, intent)
	case "edit_faq":
		b.cmdEditFAQ(ctx, intent)
	case "remove_subscription":
		b.cmdRemoveSubscription(ctx, intent)
	default:
		b.reply(ctx, intent.ChatID, unknownCommandText, nil)
	}
}

func (b *Bot) handleCallback(ctx context.Context, intent Intent) {
	// Telegram показывает "часики" на кнопке, пока callback не подтверждён.
	if err := b.api.AnswerCallbackQuery(ctx, intent.CallbackID, ""); err != nil {
		logger.Warn().Err(err).Msg("failed to answer callback query")
	}

	switch {
	case intent.Callback == "show_plans":
		b.cbShowPlans(ctx, intent)
	case intent.Callback == "show_faq":
		b.cbShowFAQ(ctx, intent)
	case intent.Callback == "my_profile":
		b.cbMyProfile(ctx, intent)
	case intent.Callback == "buy_subscription":
		b.cbBuySubscription(ctx, intent)
	case intent.Callback == "back_to_main":
		b.cbBackToMain(ctx, intent)
	case strings.HasPrefix(intent.Callback, "paid_"):
		b.cbPaid(ctx, intent)
	case strings.HasPrefix(intent.Callback, "admin_"):
		b.cbAdmin(ctx, intent)
	case strings.HasPrefix(intent.Callback, "faq_edit_"):
		b.cbFAQEdit(ctx, intent)
	default:
		logger.Debug().Str("callback", intent.Callback).Msg("unknown callback data")
	}
}

// reply отправляет новое сообщение; ошибки логируются, но не прерывают обработку.
func (b *Bot) reply(ctx context.Context, chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) {
	err := b.api.SendMessage(ctx, telegram.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "Markdown",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send message")
	}
}

// edit заменяет текст сообщения с кнопками; при ошибке редактирования
// отправляет обычный ответ, чтобы пользователь не остался без реакции.
func (b *Bot) edit(ctx context.Context, intent Intent, text string, keyboard *telegram.InlineKeyboardMarkup) {
	err := b.api.EditMessageText(ctx, telegram.EditMessageTextParams{
		ChatID:      intent.ChatID,
		MessageID:   intent.MessageID,
		Text:        text,
		ParseMode:   "Markdown",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Warn().Err(err).Int64("chat_id", intent.ChatID).Msg("failed to edit message, sending new one")
		b.reply(ctx, intent.ChatID, text, keyboard)
	}
}

// replyError превращает ошибку сервиса в понятное пользователю сообщение.
func (b *Bot) replyError(ctx context.Context, chatID int64, err error) {
	logger.Error().Err(err).Int64("chat_id", chatID).Msg("handler failed")

	switch {
	case apperrors.IsStoreUnavailable(err):
		b.reply(ctx, chatID, errStoreUnavailable, nil)
	case apperrors.IsNotAuthorized(err):
		b.reply(ctx, chatID, errNotAuthorized, nil)
	default:
		b.reply(ctx, chatID, errGeneric, nil)
	}
}
