// Package sqlite implements forms.Store on SQLite through the pure Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/goliatone/go-formdesigner/pkg/forms"
)

const schema = `
CREATE TABLE IF NOT EXISTS forms (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	content     TEXT NOT NULL DEFAULT '[]',
	published   INTEGER NOT NULL DEFAULT 0,
	share_url   TEXT NOT NULL UNIQUE,
	visits      INTEGER NOT NULL DEFAULT 0,
	submissions INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	UNIQUE (user_id, name)
);

CREATE INDEX IF NOT EXISTS idx_forms_user_created ON forms (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS submissions (
	id         TEXT PRIMARY KEY,
	form_id    TEXT NOT NULL REFERENCES forms (id),
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_form_created ON submissions (form_id, created_at);
`

const formColumns = `id, user_id, name, description, content, published, share_url, visits, submissions, created_at`

// Store is a forms.Store backed by a *sql.DB.
type Store struct {
	db *sql.DB
}

// Open connects to dsn, e.g. "file:forms.db" or "file::memory:", and creates
// the schema. SQLite serialises writers, so the pool holds one connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := New(db)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an existing connection. Call Migrate before use.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates missing tables and indexes.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) CreateForm(ctx context.Context, form forms.Form) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO forms (`+formColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		form.ID, form.UserID, form.Name, form.Description, form.Content, form.Published,
		form.ShareURL, form.Visits, form.Submissions, formatTime(form.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) && strings.Contains(err.Error(), "forms.name") {
			return forms.ErrDuplicateName
		}
		return fmt.Errorf("sqlite: insert form: %w", err)
	}
	return nil
}

func (s *Store) GetForm(ctx context.Context, id string) (forms.Form, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+formColumns+` FROM forms WHERE id = ?`, id)
	return scanForm(row)
}

func (s *Store) GetFormByShareURL(ctx context.Context, shareURL string) (forms.Form, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+formColumns+` FROM forms WHERE share_url = ?`, shareURL)
	return scanForm(row)
}

func (s *Store) ListForms(ctx context.Context, userID string) ([]forms.Form, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+formColumns+` FROM forms WHERE user_id = ? ORDER BY created_at DESC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list forms: %w", err)
	}
	defer rows.Close()

	out := make([]forms.Form, 0)
	for rows.Next() {
		form, err := scanForm(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list forms: %w", err)
	}
	return out, nil
}

func (s *Store) UpdateContent(ctx context.Context, id, content string) error {
	return s.exec(ctx, "update content", `UPDATE forms SET content = ? WHERE id = ?`, content, id)
}

func (s *Store) Publish(ctx context.Context, id string) error {
	return s.exec(ctx, "publish", `UPDATE forms SET published = 1 WHERE id = ?`, id)
}

func (s *Store) IncrementVisits(ctx context.Context, id string) error {
	return s.exec(ctx, "count visit", `UPDATE forms SET visits = visits + 1 WHERE id = ?`, id)
}

func (s *Store) AddSubmission(ctx context.Context, sub forms.Submission) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var published bool
	if err = tx.QueryRowContext(ctx, `SELECT published FROM forms WHERE id = ?`, sub.FormID).Scan(&published); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return forms.ErrNotFound
		}
		return fmt.Errorf("sqlite: load form: %w", err)
	}
	if !published {
		return forms.ErrNotPublished
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO submissions (id, form_id, content, created_at) VALUES (?, ?, ?, ?)`,
		sub.ID, sub.FormID, sub.Content, formatTime(sub.CreatedAt),
	); err != nil {
		return fmt.Errorf("sqlite: insert submission: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `UPDATE forms SET submissions = submissions + 1 WHERE id = ?`, sub.FormID); err != nil {
		return fmt.Errorf("sqlite: count submission: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

func (s *Store) ListSubmissions(ctx context.Context, formID string) ([]forms.Submission, error) {
	if _, err := s.GetForm(ctx, formID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, form_id, content, created_at FROM submissions WHERE form_id = ? ORDER BY created_at ASC, id ASC`, formID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list submissions: %w", err)
	}
	defer rows.Close()

	out := make([]forms.Submission, 0)
	for rows.Next() {
		var sub forms.Submission
		var created string
		if err := rows.Scan(&sub.ID, &sub.FormID, &sub.Content, &created); err != nil {
			return nil, fmt.Errorf("sqlite: scan submission: %w", err)
		}
		if sub.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list submissions: %w", err)
	}
	return out, nil
}

func (s *Store) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite: %s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: %s: %w", op, err)
	}
	if affected == 0 {
		return forms.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanForm(row scanner) (forms.Form, error) {
	var form forms.Form
	var created string
	err := row.Scan(
		&form.ID, &form.UserID, &form.Name, &form.Description, &form.Content, &form.Published,
		&form.ShareURL, &form.Visits, &form.Submissions, &created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return forms.Form{}, forms.ErrNotFound
	}
	if err != nil {
		return forms.Form{}, fmt.Errorf("sqlite: scan form: %w", err)
	}
	if form.CreatedAt, err = parseTime(created); err != nil {
		return forms.Form{}, err
	}
	return form, nil
}

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse time %q: %w", value, err)
	}
	return t, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
