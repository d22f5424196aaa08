package console

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakyz-backend/internal/common/access"
	adminservice "speakyz-backend/internal/features/admin/service"
	faqmemory "speakyz-backend/internal/features/faq/repository/memory"
	faqservice "speakyz-backend/internal/features/faq/service"
	subsservice "speakyz-backend/internal/features/subscription/service"
	usermemory "speakyz-backend/internal/features/user/repository/memory"
	userservice "speakyz-backend/internal/features/user/service"
)

func newTestConsole(t *testing.T) (*Console, *usermemory.Repository, *bytes.Buffer) {
	t.Helper()

	userRepo := usermemory.NewRepository()
	faqRepo := faqmemory.NewRepository()

	gate := access.NewGate("prosto_993")
	users := userservice.NewUserService(userRepo)
	subs := subsservice.NewSubscriptionService(userRepo, gate)
	faq := faqservice.NewFAQService(faqRepo, gate)
	stats := adminservice.NewStatsService(users, faq, gate)

	out := &bytes.Buffer{}
	c := New(users, subs, stats, "prosto_993", strings.NewReader(""), out)
	return c, userRepo, out
}

func registerUser(t *testing.T, c *Console, username string, telegramID int64) {
	t.Helper()
	_, err := c.users.RegisterOrTouch(context.Background(), telegramID, username, "Имя", "")
	require.NoError(t, err)
}

func TestExecuteHelp(t *testing.T) {
	c, _, out := newTestConsole(t)

	cont := c.Execute(context.Background(), "help")

	assert.True(t, cont)
	assert.Contains(t, out.String(), "add_sub")
}

func TestExecuteExit(t *testing.T) {
	c, _, _ := newTestConsole(t)

	assert.False(t, c.Execute(context.Background(), "exit"))
	assert.False(t, c.Execute(context.Background(), "quit"))
	assert.False(t, c.Execute(context.Background(), "  EXIT  "))
}

func TestExecuteEmptyLineContinues(t *testing.T) {
	c, _, out := newTestConsole(t)

	assert.True(t, c.Execute(context.Background(), "   "))
	assert.Empty(t, out.String())
}

func TestExecuteUnknownCommand(t *testing.T) {
	c, _, out := newTestConsole(t)

	assert.True(t, c.Execute(context.Background(), "launch"))
	assert.Contains(t, out.String(), "Неизвестная команда: launch")
}

func TestUsersEmpty(t *testing.T) {
	c, _, out := newTestConsole(t)

	c.Execute(context.Background(), "users")

	assert.Contains(t, out.String(), "Пользователей пока нет")
}

func TestUsersListsRegistered(t *testing.T) {
	c, _, out := newTestConsole(t)
	registerUser(t, c, "alisher", 101)

	c.Execute(context.Background(), "users")

	assert.Contains(t, out.String(), "alisher")
	assert.Contains(t, out.String(), "101")
}

func TestUsersShowsRemainderBeyondLimit(t *testing.T) {
	c, _, out := newTestConsole(t)
	for i := int64(1); i <= 12; i++ {
		registerUser(t, c, fmt.Sprintf("user%02d", i), 100+i)
	}

	c.Execute(context.Background(), "users")

	assert.Contains(t, out.String(), "user01")
	assert.NotContains(t, out.String(), "user11")
	assert.Contains(t, out.String(), "... и еще 2")
}

func TestAddAndRemoveSubscription(t *testing.T) {
	c, repo, out := newTestConsole(t)
	ctx := context.Background()
	registerUser(t, c, "alisher", 101)

	c.Execute(ctx, "add_sub alisher smart 10")
	assert.Contains(t, out.String(), "Подписка Продвинутый (Smart) выдана")

	user, err := repo.GetByTelegramID(ctx, 101)
	require.NoError(t, err)
	require.NotNil(t, user.SubscriptionType)
	assert.Equal(t, "smart", *user.SubscriptionType)
	require.NotNil(t, user.SubscriptionEnd)

	out.Reset()
	c.Execute(ctx, "remove_sub alisher")
	assert.Contains(t, out.String(), "снята")

	user, err = repo.GetByTelegramID(ctx, 101)
	require.NoError(t, err)
	assert.Nil(t, user.SubscriptionType)
	assert.Nil(t, user.SubscriptionEnd)
}

func TestAddSubscriptionDefaultsTo30Days(t *testing.T) {
	c, repo, _ := newTestConsole(t)
	ctx := context.Background()
	registerUser(t, c, "alisher", 101)

	c.Execute(ctx, "add_sub alisher pro_plus")

	user, err := repo.GetByTelegramID(ctx, 101)
	require.NoError(t, err)
	require.NotNil(t, user.SubscriptionEnd)
}

func TestAddSubscriptionUnknownTier(t *testing.T) {
	c, _, out := newTestConsole(t)
	registerUser(t, c, "alisher", 101)

	c.Execute(context.Background(), "add_sub alisher platinum")

	assert.Contains(t, out.String(), "Неизвестный тариф: platinum")
}

func TestAddSubscriptionUnknownUser(t *testing.T) {
	c, _, out := newTestConsole(t)

	c.Execute(context.Background(), "add_sub nobody smart")

	assert.Contains(t, out.String(), "Пользователь не найден")
}

func TestAddSubscriptionUsage(t *testing.T) {
	c, _, out := newTestConsole(t)

	c.Execute(context.Background(), "add_sub")

	assert.Contains(t, out.String(), "Использование: add_sub")
}

func TestStats(t *testing.T) {
	c, _, out := newTestConsole(t)
	ctx := context.Background()
	registerUser(t, c, "alisher", 101)
	registerUser(t, c, "bekzod", 102)

	c.Execute(ctx, "add_sub alisher smart")
	out.Reset()

	c.Execute(ctx, "stats")

	assert.Contains(t, out.String(), "Всего пользователей:  2")
	assert.Contains(t, out.String(), "Активных подписок:    1")
}

func TestRunStopsOnExit(t *testing.T) {
	userRepo := usermemory.NewRepository()
	faqRepo := faqmemory.NewRepository()
	gate := access.NewGate("prosto_993")
	users := userservice.NewUserService(userRepo)
	subs := subsservice.NewSubscriptionService(userRepo, gate)
	faq := faqservice.NewFAQService(faqRepo, gate)
	stats := adminservice.NewStatsService(users, faq, gate)

	out := &bytes.Buffer{}
	c := New(users, subs, stats, "prosto_993", strings.NewReader("help\nexit\n"), out)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Выход из консоли")
}
