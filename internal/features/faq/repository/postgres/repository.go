package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"speakyz-backend/internal/features/faq/models"
	"speakyz-backend/internal/features/faq/repository"

	_ "github.com/lib/pq"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.FAQRepository {
	return &postgresRepository{db: db}
}

// Create вставляет новую запись FAQ
func (r *postgresRepository) Create(ctx context.Context, entry *models.FAQ) (*models.FAQ, error) {
	query := `
		INSERT INTO faq (question, answer, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, question, answer, is_active, created_at, COALESCE(created_by, 0)
	`

	var stored models.FAQ
	err := r.db.QueryRowContext(ctx, query, entry.Question, entry.Answer, entry.CreatedBy).Scan(
		&stored.ID, &stored.Question, &stored.Answer, &stored.IsActive, &stored.CreatedAt, &stored.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create faq entry: %w", err)
	}

	return &stored, nil
}

// Update перезаписывает вопрос и ответ записи
func (r *postgresRepository) Update(ctx context.Context, id int64, question, answer string) (*models.FAQ, error) {
	query := `
		UPDATE faq
		SET question = $2, answer = $3
		WHERE id = $1
		RETURNING id, question, answer, is_active, created_at, COALESCE(created_by, 0)
	`

	var stored models.FAQ
	err := r.db.QueryRowContext(ctx, query, id, question, answer).Scan(
		&stored.ID, &stored.Question, &stored.Answer, &stored.IsActive, &stored.CreatedAt, &stored.CreatedBy)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrFAQNotFound
		}
		return nil, fmt.Errorf("failed to update faq entry: %w", err)
	}

	return &stored, nil
}

// ListActive возвращает активные записи в порядке вставки
func (r *postgresRepository) ListActive(ctx context.Context) ([]*models.FAQ, error) {
	query := `
		SELECT id, question, answer, is_active, created_at, COALESCE(created_by, 0)
		FROM faq
		WHERE is_active = TRUE
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.FAQ
	for rows.Next() {
		var entry models.FAQ
		err := rows.Scan(&entry.ID, &entry.Question, &entry.Answer, &entry.IsActive, &entry.CreatedAt, &entry.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faq entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// CountActive возвращает число активных записей
func (r *postgresRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM faq WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count faq entries: %w", err)
	}
	return count, nil
}

// HasAny сообщает, есть ли хоть одна запись (включая неактивные)
func (r *postgresRepository) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM faq)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check faq entries: %w", err)
	}
	return exists, nil
}
