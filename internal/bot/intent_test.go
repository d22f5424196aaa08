package bot

import (
	"testing"

	"speakyz-backend/internal/platform/telegram"

	"github.com/stretchr/testify/assert"
)

func intentMessageUpdate(text string) telegram.Update {
	return telegram.Update{
		UpdateID: 1,
		Message: &telegram.Message{
			MessageID: 10,
			From:      &telegram.User{ID: 42, Username: "anna_k", FirstName: "Anna"},
			Chat:      telegram.Chat{ID: 42, Type: "private"},
			Text:      text,
		},
	}
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantCommand string
		wantArgs    string
	}{
		{"plain start", "/start", "start", ""},
		{"command with bot mention", "/start@speakyz_bot", "start", ""},
		{"add_faq with args", "/add_faq Вопрос | Ответ", "add_faq", "Вопрос | Ответ"},
		{"remove_subscription", "/remove_subscription @anna_k", "remove_subscription", "@anna_k"},
		{"uppercase command", "/HELP", "help", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Classify(intentMessageUpdate(tt.text))

			assert.Equal(t, IntentCommand, intent.Kind)
			assert.Equal(t, tt.wantCommand, intent.Command)
			assert.Equal(t, tt.wantArgs, intent.Args)
			assert.Equal(t, int64(42), intent.ChatID)
			assert.Equal(t, "anna_k", intent.From.Username)
		})
	}
}

func TestClassifyCallback(t *testing.T) {
	upd := telegram.Update{
		UpdateID: 2,
		CallbackQuery: &telegram.CallbackQuery{
			ID:   "cb-1",
			From: telegram.User{ID: 42, Username: "anna_k"},
			Message: &telegram.Message{
				MessageID: 11,
				Chat:      telegram.Chat{ID: 42},
			},
			Data: "show_plans",
		},
	}

	intent := Classify(upd)

	assert.Equal(t, IntentCallback, intent.Kind)
	assert.Equal(t, "show_plans", intent.Callback)
	assert.Equal(t, "cb-1", intent.CallbackID)
	assert.Equal(t, int64(42), intent.ChatID)
	assert.Equal(t, int64(11), intent.MessageID)
}

func TestClassifyNonCommandMessage(t *testing.T) {
	intent := Classify(intentMessageUpdate("привет"))
	assert.Equal(t, IntentNone, intent.Kind)
}

func TestClassifyEmptyUpdate(t *testing.T) {
	intent := Classify(telegram.Update{UpdateID: 3})
	assert.Equal(t, IntentNone, intent.Kind)
}

func TestSplitQA(t *testing.T) {
	q, a, ok := splitQA("Как заниматься? | Через Zoom.")
	assert.True(t, ok)
	assert.Equal(t, "Как заниматься?", q)
	assert.Equal(t, "Через Zoom.", a)

	_, _, ok = splitQA("нет разделителя")
	assert.False(t, ok)
}
