package bot

import (
	"strings"

	"speakyz-backend/internal/platform/telegram"
)

// IntentKind различает виды входящих событий.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentCommand
	IntentCallback
)

// Intent — разобранное входящее событие: команда чата или нажатие
// inline-кнопки, приведенные к единому виду до диспетчеризации.
type Intent struct {
	Kind       IntentKind
	Command    string // команда без ведущего / и без @botname
	Args       string // остаток строки после команды
	Callback   string // callback_data кнопки
	CallbackID string
	ChatID     int64
	MessageID  int64
	From       telegram.User
}

// Classify разбирает обновление Telegram в Intent. Сообщения без
// команды и обновления без отправителя дают IntentNone.
func Classify(upd telegram.Update) Intent {
	if upd.CallbackQuery != nil {
		intent := Intent{
			Kind:       IntentCallback,
			Callback:   upd.CallbackQuery.Data,
			CallbackID: upd.CallbackQuery.ID,
			From:       upd.CallbackQuery.From,
		}
		if upd.CallbackQuery.Message != nil {
			intent.ChatID = upd.CallbackQuery.Message.Chat.ID
			intent.MessageID = upd.CallbackQuery.Message.MessageID
		}
		return intent
	}

	if upd.Message != nil && upd.Message.From != nil {
		text := strings.TrimSpace(upd.Message.Text)
		if !strings.HasPrefix(text, "/") {
			return Intent{Kind: IntentNone}
		}

		command := text
		args := ""
		if idx := strings.IndexAny(text, " \t"); idx > 0 {
			command = text[:idx]
			args = strings.TrimSpace(text[idx+1:])
		}

		command = strings.TrimPrefix(command, "/")
		// Команда может приходить в виде /start@speakyz_bot.
		if at := strings.Index(command, "@"); at >= 0 {
			command = command[:at]
		}

		return Intent{
			Kind:      IntentCommand,
			Command:   strings.ToLower(command),
			Args:      args,
			ChatID:    upd.Message.Chat.ID,
			MessageID: upd.Message.MessageID,
			From:      *upd.Message.From,
		}
	}

	return Intent{Kind: IntentNone}
}

// splitQA разбирает аргумент вида "Вопрос | Ответ".
func splitQA(text string) (question, answer string, ok bool) {
	idx := strings.Index(text, "|")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+1:]), true
}
