package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"speakyz-backend/internal/features/user/models"
	"speakyz-backend/internal/features/user/repository"

	_ "github.com/lib/pq"
)

const userColumns = `id, telegram_id, username, first_name, last_name,
	subscription_type, subscription_end, speaking_clubs_count, is_active, created_at, updated_at`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.UserRepository {
	return &postgresRepository{db: db}
}

// Upsert создает или обновляет пользователя. Конфликт по telegram_id
// означает, что параллельный запрос успел вставить строку первым —
// тогда просто перезаписываем изменяемые поля.
func (r *postgresRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (telegram_id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = NOW()
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		user.TelegramID, user.Username, user.FirstName, user.LastName)

	stored, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return stored, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *postgresRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, telegramID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByUsername получает пользователя по username (точное совпадение)
func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// UpdateSubscription перезаписывает поля подписки пользователя
func (r *postgresRepository) UpdateSubscription(ctx context.Context, telegramID int64, subType *string, subEnd *time.Time, clubsCount int) error {
	query := `
		UPDATE users
		SET subscription_type = $2, subscription_end = $3, speaking_clubs_count = $4, updated_at = NOW()
		WHERE telegram_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, telegramID, subType, subEnd, clubsCount)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List получает список пользователей в порядке регистрации
func (r *postgresRepository) List(ctx context.Context, limit int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Count возвращает общее число пользователей
func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountSubscribed возвращает число пользователей с подпиской.
// Срок действия не учитывается: считается только subscription_type.
func (r *postgresRepository) CountSubscribed(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE subscription_type IS NOT NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribed users: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user     models.User
		username sql.NullString
		first    sql.NullString
		last     sql.NullString
		subType  sql.NullString
		subEnd   sql.NullTime
	)

	err := row.Scan(
		&user.ID, &user.TelegramID, &username, &first, &last,
		&subType, &subEnd, &user.SpeakingClubsCount, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	user.Username = username.String
	user.FirstName = first.String
	user.LastName = last.String
	if subType.Valid {
		user.SubscriptionType = &subType.String
	}
	if subEnd.Valid {
		user.SubscriptionEnd = &subEnd.Time
	}

	return &user, nil
}
