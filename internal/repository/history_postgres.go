package repository

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/futig/edututor/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// HistoryRepository appends request audit rows.
type HistoryRepository interface {
	Record(ctx context.Context, record entity.HistoryRecord) error
}

// Execer is the subset of pgxpool.Pool the history repository uses.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ HistoryRepository = &HistoryPostgres{}

const insertHistoryQuery = `
INSERT INTO request_history (id, kind, input, language, output_chars, failed, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// maxStoredInput bounds the stored input; concepts are short, PDFs are stored
// as a size summary.
const maxStoredInput = 1024

// HistoryPostgres implements HistoryRepository using PostgreSQL
type HistoryPostgres struct {
	db  Execer
	now func() time.Time
}

func NewHistoryPostgres(db Execer) *HistoryPostgres {
	return &HistoryPostgres{
		db:  db,
		now: time.Now,
	}
}

func (r *HistoryPostgres) Record(ctx context.Context, record entity.HistoryRecord) error {
	id := uuid.New()
	if record.ID != "" {
		parsed, err := uuid.Parse(record.ID)
		if err != nil {
			return fmt.Errorf("invalid history ID: %w", err)
		}
		id = parsed
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	input := truncateUTF8(record.Input, maxStoredInput)

	_, err := r.db.Exec(ctx, insertHistoryQuery,
		id,
		string(record.Kind),
		input,
		record.Language,
		record.OutputChars,
		record.Failed,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}

	return nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune; Postgres
// rejects invalid UTF-8 in text columns.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// NoopHistory discards records when no database is configured.
type NoopHistory struct{}

func (NoopHistory) Record(context.Context, entity.HistoryRecord) error {
	return nil
}
