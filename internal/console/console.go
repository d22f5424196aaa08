// Package console реализует интерактивную консоль администратора,
// работающую параллельно с ботом и HTTP-сервером.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"speakyz-backend/internal/common/access"
	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/common/logger"
	adminservice "speakyz-backend/internal/features/admin/service"
	subsmodels "speakyz-backend/internal/features/subscription/models"
	subsservice "speakyz-backend/internal/features/subscription/service"
	userservice "speakyz-backend/internal/features/user/service"
)

const defaultGrantDays = 30

const helpMessage = `Доступные команды:
  help                              - показать эту справку
  users                             - список пользователей
  stats                             - статистика школы
  add_sub <username> <tier> [days]  - выдать подписку (start|smart|pro_plus|speaking_club)
  remove_sub <username>             - снять подписку
  exit | quit                       - выйти из консоли`

// Console читает команды администратора построчно и выполняет их
// от имени администратора школы.
type Console struct {
	users         userservice.UserService
	subscriptions subsservice.SubscriptionService
	stats         adminservice.StatsService
	identity      access.Identity

	in  io.Reader
	out io.Writer
}

func New(
	users userservice.UserService,
	subscriptions subsservice.SubscriptionService,
	stats adminservice.StatsService,
	adminUsername string,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		users:         users,
		subscriptions: subscriptions,
		stats:         stats,
		identity:      access.Identity{Username: adminUsername},
		in:            in,
		out:           out,
	}
}

// Run блокируется до команды выхода, конца ввода или отмены контекста.
func (c *Console) Run(ctx context.Context) {
	fmt.Fprintln(c.out, "Консоль администратора SPEAKYZ. Введите help для справки.")
	scanner := bufio.NewScanner(c.in)

	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}
		if !c.Execute(ctx, scanner.Text()) {
			return
		}
	}
}

// Execute выполняет одну строку; false означает команду выхода.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "exit", "quit":
		fmt.Fprintln(c.out, "Выход из консоли.")
		return false
	case "help":
		fmt.Fprintln(c.out, helpMessage)
	case "users":
		c.listUsers(ctx)
	case "stats":
		c.showStats(ctx)
	case "add_sub":
		c.addSubscription(ctx, args)
	case "remove_sub":
		c.removeSubscription(ctx, args)
	default:
		fmt.Fprintf(c.out, "Неизвестная команда: %s. Введите help для справки.\n", command)
	}

	return true
}

const listUsersLimit = 10

func (c *Console) listUsers(ctx context.Context) {
	users, err := c.users.List(ctx, listUsersLimit)
	if err != nil {
		c.printError(err)
		return
	}

	if len(users) == 0 {
		fmt.Fprintln(c.out, "Пользователей пока нет.")
		return
	}

	fmt.Fprintf(c.out, "%-12s %-20s %-15s %-12s %s\n", "TELEGRAM ID", "USERNAME", "ПОДПИСКА", "ДО", "КЛУБЫ")
	for _, u := range users {
		sub := "-"
		if u.SubscriptionType != nil {
			sub = *u.SubscriptionType
		}
		end := "-"
		if u.SubscriptionEnd != nil {
			end = u.SubscriptionEnd.Format("02.01.2006")
		}
		fmt.Fprintf(c.out, "%-12d %-20s %-15s %-12s %d\n", u.TelegramID, u.Username, sub, end, u.SpeakingClubsCount)
	}

	total, err := c.users.Count(ctx)
	if err == nil && total > len(users) {
		fmt.Fprintf(c.out, "... и еще %d\n", total-len(users))
	}
}

func (c *Console) showStats(ctx context.Context) {
	stats, err := c.stats.Stats(ctx, c.identity)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Всего пользователей:  %d\n", stats.TotalUsers)
	fmt.Fprintf(c.out, "Активных подписок:    %d\n", stats.ActiveSubscriptions)
	fmt.Fprintf(c.out, "Записей FAQ:          %d\n", stats.FAQCount)
	fmt.Fprintf(c.out, "Доля подписчиков:     %.1f%%\n", stats.SubscriptionRate())
}

func (c *Console) addSubscription(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "Использование: add_sub <username> <tier> [days]")
		return
	}

	days := defaultGrantDays
	if len(args) >= 3 {
		parsed, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintf(c.out, "Некорректное число дней: %s\n", args[2])
			return
		}
		days = parsed
	}

	tier, err := subsmodels.ParseTier(args[1])
	if err != nil {
		fmt.Fprintf(c.out, "Неизвестный тариф: %s. Допустимые: start, smart, pro_plus, speaking_club\n", args[1])
		return
	}

	user, err := c.users.FindByUsername(ctx, args[0])
	if err != nil {
		c.printError(err)
		return
	}

	updated, err := c.subscriptions.Grant(ctx, c.identity, user, tier, days)
	if err != nil {
		c.printError(err)
		return
	}

	logger.Info().Str("username", updated.Username).Str("tier", string(tier)).Int("days", days).Msg("subscription granted via console")
	fmt.Fprintf(c.out, "Подписка %s выдана пользователю @%s до %s.\n",
		tier.Label(), updated.Username, updated.SubscriptionEnd.Format("02.01.2006"))
}

func (c *Console) removeSubscription(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Использование: remove_sub <username>")
		return
	}

	user, err := c.users.FindByUsername(ctx, args[0])
	if err != nil {
		c.printError(err)
		return
	}

	updated, err := c.subscriptions.Revoke(ctx, c.identity, user)
	if err != nil {
		c.printError(err)
		return
	}

	logger.Info().Str("username", updated.Username).Msg("subscription revoked via console")
	fmt.Fprintf(c.out, "Подписка пользователя @%s снята.\n", updated.Username)
}

func (c *Console) printError(err error) {
	switch {
	case apperrors.IsStoreUnavailable(err):
		fmt.Fprintln(c.out, "База данных недоступна.")
	case apperrors.IsNotFound(err):
		fmt.Fprintln(c.out, "Пользователь не найден.")
	case apperrors.IsNotAuthorized(err):
		fmt.Fprintln(c.out, "Нет прав администратора.")
	default:
		fmt.Fprintf(c.out, "Ошибка: %v\n", err)
	}
}
