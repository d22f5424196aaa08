package bot

import (
	"context"
	"strings"

	"speakyz-backend/internal/common/access"
	"speakyz-backend/internal/common/logger"
	subsmodels "speakyz-backend/internal/features/subscription/models"
)

func identityOf(intent Intent) access.Identity {
	return access.Identity{
		TelegramID: intent.From.ID,
		Username:   intent.From.Username,
	}
}

func (b *Bot) cmdStart(ctx context.Context, intent Intent) {
	user, err := b.users.RegisterOrTouch(ctx, intent.From.ID, intent.From.Username, intent.From.FirstName, intent.From.LastName)
	if err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	logger.Info().Int64("telegram_id", user.TelegramID).Str("username", user.Username).Msg("user started bot")
	b.reply(ctx, intent.ChatID, welcomeText, mainMenuKeyboard(b.websiteURL))
}

func (b *Bot) cmdHelp(ctx context.Context, intent Intent) {
	isAdmin := b.gate.IsAdmin(identityOf(intent))
	b.reply(ctx, intent.ChatID, helpText(b.supportHandle, b.websiteURL, isAdmin), nil)
}

func (b *Bot) cmdFAQ(ctx context.Context, intent Intent) {
	b.reply(ctx, intent.ChatID, faqText(b.faqURL), faqKeyboard(b.faqURL))
}

func (b *Bot) cbShowPlans(ctx context.Context, intent Intent) {
	b.edit(ctx, intent, plansText, plansKeyboard())
}

func (b *Bot) cbShowFAQ(ctx context.Context, intent Intent) {
	b.edit(ctx, intent, faqText(b.faqURL), faqKeyboard(b.faqURL))
}

func (b *Bot) cbMyProfile(ctx context.Context, intent Intent) {
	user, err := b.users.FindByTelegramID(ctx, intent.From.ID)
	if err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	summary := b.subscriptions.Describe(user)
	b.edit(ctx, intent, profileText(user, summary), profileKeyboard())
}

func (b *Bot) cbBuySubscription(ctx context.Context, intent Intent) {
	b.edit(ctx, intent, buyText(b.cardNumber, b.supportHandle), buyKeyboard())
}

func (b *Bot) cbBackToMain(ctx context.Context, intent Intent) {
	b.edit(ctx, intent, welcomeText, mainMenuKeyboard(b.websiteURL))
}

// cbPaid фиксирует заявку об оплате тарифа из callback вида paid_<tier>.
func (b *Bot) cbPaid(ctx context.Context, intent Intent) {
	raw := strings.TrimPrefix(intent.Callback, "paid_")
	tier, err := subsmodels.ParseTier(raw)
	if err != nil {
		logger.Warn().Str("callback", intent.Callback).Msg("payment callback with unknown tier")
		b.reply(ctx, intent.ChatID, errGeneric, nil)
		return
	}

	user, err := b.users.FindByTelegramID(ctx, intent.From.ID)
	if err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	if _, err := b.payments.Record(ctx, user, tier); err != nil {
		b.replyError(ctx, intent.ChatID, err)
		return
	}

	logger.Info().Int64("telegram_id", user.TelegramID).Str("tier", string(tier)).Msg("payment claim recorded")
	b.edit(ctx, intent, paymentRecordedText(tier, b.supportHandle), plansKeyboard())
}
