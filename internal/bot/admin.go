package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/common/logger"
	"speakyz-backend/internal/platform/telegram"
)

const (
	addFAQUsage  = "Использование: /add_faq Вопрос | Ответ"
	editFAQUsage = "Использование: /edit_faq ID Вопрос | Ответ"
	removeUsage  = "Использование: /remove_subscription @username"

	adminUsersLimit = 20

	adminPanelText = "🔧 **Панель администратора SPEAKYZ**\n\nВыберите раздел:"
)

func adminPanelKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "📊 Статистика", CallbackData: "admin_stats"}},
			{{Text: "👥 Пользователи", CallbackData: "admin_users"}},
			{{Text: "⭐ Подписки", CallbackData: "admin_subscriptions"}},
			{{Text: "📝 Список FAQ", CallbackData: "admin_faq"}},
		},
	}
}

func adminBackKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "🔙 Назад", CallbackData: "admin_back"}},
		},
	}
}

func (b *Bot) cmdAdminPanel(ctx context.Context, intent Intent) {
	if !b.gate.IsAdmin(identityOf(intent)) {
		b.reply(ctx, intent.ChatID, errNotAuthorized, nil)
		return
	}

	b.reply(ctx, intent.ChatID, adminPanelText, adminPanelKeyboard())
}

// cmdAddFAQ добавляет запись каталога: /add_faq Вопрос | Ответ.
func (b *Bot) cmdAddFAQ(ctx context.Context, intent Intent) {
	question, answer, ok := splitQA(intent.Args)
	if !ok {
		b.reply(ctx, intent.ChatID, addFAQUsage, nil)
		return
	}

	entry, err := b.faq.Add(ctx, identityOf(intent), question, answer)
	if err != nil {
		if apperrors.IsValidation(err) {
			b.reply(ctx, intent.ChatID, "❌ Вопрос и ответ не могут быть пустыми.", nil)
			return
		}
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	logger.Info().Int64("faq_id", entry.ID).Msg("faq entry added via bot")
	b.reply(ctx, intent.ChatID, fmt.Sprintf("✅ FAQ добавлен (ID %d).", entry.ID), nil)
}

// cmdEditFAQ изменяет запись каталога: /edit_faq ID Вопрос | Ответ.
func (b *Bot) cmdEditFAQ(ctx context.Context, intent Intent) {
	idPart, rest, found := strings.Cut(intent.Args, " ")
	if !found {
		b.reply(ctx, intent.ChatID, editFAQUsage, nil)
		return
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		b.reply(ctx, intent.ChatID, editFAQUsage, nil)
		return
	}

	question, answer, ok := splitQA(rest)
	if !ok {
		b.reply(ctx, intent.ChatID, editFAQUsage, nil)
		return
	}

	if _, err := b.faq.Edit(ctx, identityOf(intent), id, question, answer); err != nil {
		if apperrors.IsNotFound(err) {
			b.reply(ctx, intent.ChatID, fmt.Sprintf("❌ FAQ с ID %d не найден.", id), nil)
			return
		}
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	logger.Info().Int64("faq_id", id).Msg("faq entry edited via bot")
	b.reply(ctx, intent.ChatID, fmt.Sprintf("✅ FAQ %d обновлен.", id), nil)
}

// cmdRemoveSubscription снимает подписку: /remove_subscription @username.
func (b *Bot) cmdRemoveSubscription(ctx context.Context, intent Intent) {
	target := strings.TrimSpace(intent.Args)
	if target == "" {
		b.reply(ctx, intent.ChatID, removeUsage, nil)
		return
	}

	if !b.gate.IsAdmin(identityOf(intent)) {
		b.reply(ctx, intent.ChatID, errNotAuthorized, nil)
		return
	}

	user, err := b.users.FindByUsername(ctx, target)
	if err != nil {
		if apperrors.IsNotFound(err) {
			b.reply(ctx, intent.ChatID, fmt.Sprintf("❌ Пользователь %s не найден.", target), nil)
			return
		}
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	if _, err := b.subscriptions.Revoke(ctx, identityOf(intent), user); err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	logger.Info().Str("username", user.Username).Msg("subscription revoked via bot")
	b.reply(ctx, intent.ChatID, fmt.Sprintf("✅ Подписка пользователя @%s удалена.", user.Username), nil)
}

func (b *Bot) cbAdmin(ctx context.Context, intent Intent) {
	if !b.gate.IsAdmin(identityOf(intent)) {
		b.reply(ctx, intent.ChatID, errNotAuthorized, nil)
		return
	}

	switch intent.Callback {
	case "admin_stats":
		b.adminStats(ctx, intent)
	case "admin_users":
		b.adminUsers(ctx, intent)
	case "admin_subscriptions":
		b.adminSubscriptions(ctx, intent)
	case "admin_faq":
		b.adminFAQList(ctx, intent)
	case "admin_back":
		b.edit(ctx, intent, adminPanelText, adminPanelKeyboard())
	default:
		logger.Debug().Str("callback", intent.Callback).Msg("unknown admin callback")
	}
}

func (b *Bot) adminStats(ctx context.Context, intent Intent) {
	stats, err := b.stats.Stats(ctx, identityOf(intent))
	if err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	text := fmt.Sprintf(
		"📊 **Статистика SPEAKYZ**\n\n👥 Всего пользователей: %d\n⭐ Активных подписок: %d\n❓ Записей FAQ: %d\n📈 Доля подписчиков: %.1f%%",
		stats.TotalUsers, stats.ActiveSubscriptions, stats.FAQCount, stats.SubscriptionRate())
	b.edit(ctx, intent, text, adminBackKeyboard())
}

func (b *Bot) adminUsers(ctx context.Context, intent Intent) {
	users, err := b.users.List(ctx, adminUsersLimit)
	if err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👥 **Последние пользователи** (до %d):\n\n", adminUsersLimit)
	for _, u := range users {
		sub := "—"
		if u.SubscriptionType != nil {
			sub = *u.SubscriptionType
		}
		fmt.Fprintf(&sb, "• @%s (id %d) — %s, до %s\n", u.Username, u.TelegramID, sub, expiryOrDash(u.SubscriptionEnd))
	}
	if len(users) == 0 {
		sb.WriteString("Пока никто не зарегистрирован.")
	}

	b.edit(ctx, intent, sb.String(), adminBackKeyboard())
}

// adminSubscriptions показывает действующих подписчиков и подсказку по снятию.
func (b *Bot) adminSubscriptions(ctx context.Context, intent Intent) {
	users, err := b.users.List(ctx, adminUsersLimit)
	if err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	var sb strings.Builder
	sb.WriteString("⭐ **Подписки:**\n\n")
	subscribed := 0
	for _, u := range users {
		if u.SubscriptionType == nil {
			continue
		}
		subscribed++
		fmt.Fprintf(&sb, "• @%s — %s, до %s\n", u.Username, *u.SubscriptionType, expiryOrDash(u.SubscriptionEnd))
	}
	if subscribed == 0 {
		sb.WriteString("Активных подписок нет.\n")
	}
	sb.WriteString("\nСнять подписку: /remove_subscription @username\nВыдать подписку можно из консоли администратора.")

	b.edit(ctx, intent, sb.String(), adminBackKeyboard())
}

// adminFAQList показывает каталог с кнопкой редактирования на каждую запись.
func (b *Bot) adminFAQList(ctx context.Context, intent Intent) {
	entries, err := b.faq.ListActive(ctx)
	if err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	if len(entries) == 0 {
		b.edit(ctx, intent, "Каталог FAQ пуст. Добавьте запись: "+addFAQUsage, adminBackKeyboard())
		return
	}

	var sb strings.Builder
	sb.WriteString("📝 **Каталог FAQ:**\n\n")
	rows := make([][]telegram.InlineKeyboardButton, 0, len(entries)+1)
	for _, e := range entries {
		fmt.Fprintf(&sb, "%d. %s\n", e.ID, e.Question)
		rows = append(rows, []telegram.InlineKeyboardButton{{
			Text:         fmt.Sprintf("✏️ %d", e.ID),
			CallbackData: fmt.Sprintf("faq_edit_%d", e.ID),
		}})
	}
	rows = append(rows, []telegram.InlineKeyboardButton{{Text: "🔙 Назад", CallbackData: "admin_back"}})

	b.edit(ctx, intent, sb.String(), &telegram.InlineKeyboardMarkup{InlineKeyboard: rows})
}

// cbFAQEdit показывает выбранную запись и подсказку по команде правки.
func (b *Bot) cbFAQEdit(ctx context.Context, intent Intent) {
	if !b.gate.IsAdmin(identityOf(intent)) {
		b.reply(ctx, intent.ChatID, errNotAuthorized, nil)
		return
	}

	raw := strings.TrimPrefix(intent.Callback, "faq_edit_")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn().Str("callback", intent.Callback).Msg("faq edit callback with bad id")
		return
	}

	entries, err := b.faq.ListActive(ctx)
	if err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	for _, e := range entries {
		if e.ID == id {
			text := fmt.Sprintf("✏️ **FAQ %d**\n\n❓ %s\n\n💬 %s\n\nДля изменения отправьте:\n`/edit_faq %d Новый вопрос | Новый ответ`",
				e.ID, e.Question, e.Answer, e.ID)
			b.reply(ctx, intent.ChatID, text, nil)
			return
		}
	}

	b.reply(ctx, intent.ChatID, fmt.Sprintf("❌ FAQ с ID %d не найден.", id), nil)
}
