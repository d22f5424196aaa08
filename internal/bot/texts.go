package bot

import (
	"fmt"
	"strings"
	"time"

	subsmodels "speakyz-backend/internal/features/subscription/models"
	usermodels "speakyz-backend/internal/features/user/models"
	"speakyz-backend/internal/platform/telegram"
)

const welcomeText = `🎉 Добро пожаловать в SPEAKYZ - Онлайн-школу английского языка! 🎉

📚 **О нас:**
• Современные методики обучения английскому языку
• Опытные преподаватели с международными сертификатами
• Индивидуальный подход к каждому студенту
• Гибкое расписание, подходящее вашему ритму жизни

🌟 **SPEAKYZ — YOUR ENGLISH, YOUR WAY**
• Разговорная практика с носителями языка
• Подготовка к международным экзаменам
• Бизнес-английский для карьерного роста
• Интерактивные уроки и современные материалы

🚀 **Начните свой путь к свободному владению английским уже сегодня!**

Нажмите кнопку ниже, чтобы узнать больше о наших курсах и записаться на бесплатный пробный урок! 👇`

const plansText = `🎓 **Тарифы SPEAKYZ**

🆓 **Базовый — Start**
✅ 2 групповых занятия в неделю
✅ Учебные материалы и доступ к платформе
✅ Домашние задания с проверкой
❌ Без разговорной практики с носителем
📚 +40–60 новых слов / месяц

⭐ **Продвинутый — Smart**
✅ 2 групповых + 1 разговорный клуб в неделю
✅ Проверка ДЗ с обратной связью
✅ Чат с преподавателем
📚 +80–120 новых слов / месяц
💰 870,000 UZS / месяц

🌟 **Премиум — Pro+**
✅ 2 индивидуальных + 2 групповых занятия
✅ Персональный преподаватель
✅ Подготовка к IELTS / TOEFL
✅ Поддержка 24/7
📚 +150–200 новых слов / месяц
💰 1,650,000 UZS / месяц

💬 **Разговорный клуб**
✅ 1 встреча в неделю
✅ Тематические дискуссии
📚 +20–30 новых слов / месяц
💰 190,000 UZS / месяц`

const (
	errStoreUnavailable = "❌ База данных недоступна."
	errNotAuthorized    = "❌ У вас нет прав администратора."
	errGeneric          = "Извините, произошла ошибка. Попробуйте позже или обратитесь в поддержку."
	unknownCommandText  = "Извините, я не понимаю эту команду. Используйте /start для начала или /help для получения помощи."
)

func mainMenuKeyboard(websiteURL string) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "🎓 Наши тарифы", CallbackData: "show_plans"}},
			{{Text: "❓ FAQ", CallbackData: "show_faq"}},
			{{Text: "👤 Мой профиль", CallbackData: "my_profile"}},
			{{Text: "🌐 Перейти на сайт SPEAKYZ", URL: websiteURL}},
		},
	}
}

func plansKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "💳 Купить подписку", CallbackData: "buy_subscription"}},
			{{Text: "🔙 Назад", CallbackData: "back_to_main"}},
		},
	}
}

func faqText(faqURL string) string {
	var b strings.Builder
	b.WriteString("❓ **Часто задаваемые вопросы**\n\n")
	b.WriteString("Полный список ответов на популярные вопросы доступен на нашем сайте:\n")
	b.WriteString(faqURL + "\n\n")
	b.WriteString("Там вы найдете информацию о:\n")
	b.WriteString("• Процессе обучения\n")
	b.WriteString("• Тарифах и оплате\n")
	b.WriteString("• Возврате средств\n")
	b.WriteString("• И многое другое!")
	return b.String()
}

func faqKeyboard(faqURL string) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "🌐 Открыть FAQ", URL: faqURL}},
			{{Text: "🔙 Назад", CallbackData: "back_to_main"}},
		},
	}
}

func profileText(user *usermodels.User, summary subsmodels.Summary) string {
	var b strings.Builder
	b.WriteString("👤 **Ваш профиль**\n\n")

	name := user.FirstName
	if name == "" {
		name = "Не указано"
	}
	username := user.Username
	if username == "" {
		username = "Не указан"
	}
	fmt.Fprintf(&b, "Имя: %s\n", name)
	fmt.Fprintf(&b, "Username: @%s\n\n", username)

	if summary.Subscribed {
		fmt.Fprintf(&b, "📋 Подписка: %s\n", summary.TierLabel)
		if summary.Expiry != nil {
			fmt.Fprintf(&b, "📅 Действует до: %s\n", summary.Expiry.Format("02.01.2006"))
		}
		if summary.ClubsCount > 0 {
			fmt.Fprintf(&b, "💬 Разговорных клубов: %d\n", summary.ClubsCount)
		}
	} else {
		b.WriteString("📋 Подписка: Не активна\n")
	}

	return b.String()
}

func profileKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "💳 Купить подписку", CallbackData: "buy_subscription"}},
			{{Text: "🔙 Назад", CallbackData: "back_to_main"}},
		},
	}
}

func buyText(cardNumber, supportHandle string) string {
	var b strings.Builder
	b.WriteString("💳 **Оплата подписки**\n\n")
	b.WriteString("Для оплаты переведите нужную сумму на карту Humo:\n")
	fmt.Fprintf(&b, "`%s`\n\n", cardNumber)
	b.WriteString("**Тарифы:**\n")
	b.WriteString("• Smart: 870,000 UZS\n")
	b.WriteString("• Pro+: 1,650,000 UZS\n")
	b.WriteString("• Разговорный клуб: 190,000 UZS\n\n")
	b.WriteString("После перевода нажмите кнопку вашего тарифа, и мы зафиксируем оплату.\n\n")
	b.WriteString("❓ **Проблемы с оплатой?**\n")
	fmt.Fprintf(&b, "Обратитесь в поддержку: %s", supportHandle)
	return b.String()
}

func buyKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "✅ Я оплатил Smart", CallbackData: "paid_smart"}},
			{{Text: "✅ Я оплатил Pro+", CallbackData: "paid_pro_plus"}},
			{{Text: "✅ Я оплатил Разговорный клуб", CallbackData: "paid_speaking_club"}},
			{{Text: "🔙 Назад к тарифам", CallbackData: "show_plans"}},
		},
	}
}

func paymentRecordedText(tier subsmodels.Tier, supportHandle string) string {
	return fmt.Sprintf(
		"✅ Мы зафиксировали вашу оплату тарифа «%s».\n\nПодписка будет активирована после проверки перевода. Если возникнут вопросы — пишите %s.",
		tier.Label(), supportHandle)
}

func helpText(supportHandle, websiteURL string, isAdmin bool) string {
	var b strings.Builder
	b.WriteString("🤖 **Команды SPEAKYZ бота:**\n\n")
	b.WriteString("/start - Главное меню\n")
	b.WriteString("/faq - Часто задаваемые вопросы\n")
	b.WriteString("/help - Это сообщение\n\n")
	fmt.Fprintf(&b, "📞 **Поддержка:**\n%s\n\n", supportHandle)
	fmt.Fprintf(&b, "🌐 **Сайт школы:**\n%s", websiteURL)

	if isAdmin {
		b.WriteString("\n\n🔧 **Команды администратора:**\n")
		b.WriteString("/admineditbot - Панель администратора\n")
		b.WriteString("/add_faq Вопрос | Ответ - Добавить FAQ\n")
		b.WriteString("/edit_faq ID Вопрос | Ответ - Изменить FAQ\n")
		b.WriteString("/remove_subscription @username - Удалить подписку")
	}

	return b.String()
}

func expiryOrDash(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02.01.2006")
}
