package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

const captureColumns = `id, user_id, raw_text, migrated_date, created_at, updated_at`

// CaptureWriteRepository handles capture write operations
type CaptureWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCaptureWriteRepository(db *sqlx.DB, txGetter TxGetter) *CaptureWriteRepository {
	return &CaptureWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a capture and returns the stored row. A zero ID is replaced by a new one.
func (r *CaptureWriteRepository) Save(ctx context.Context, capture *models.Capture) (*models.Capture, error) {
	query := `
		INSERT INTO captures (id, user_id, raw_text, migrated_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + captureColumns

	id := capture.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	args := []any{id, capture.UserID, capture.RawText, capture.MigratedDate}

	var saved models.Capture
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)
	logQuery(query, args, saved, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// Update applies a partial update and returns the new state of the capture.
func (r *CaptureWriteRepository) Update(ctx context.Context, update models.CaptureUpdate) (*models.Capture, error) {
	query := `
		UPDATE captures
		SET user_id = COALESCE($2, user_id),
		    raw_text = COALESCE($3, raw_text),
		    migrated_date = COALESCE($4, migrated_date),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + captureColumns

	args := []any{update.ID, update.UserID, update.RawText, update.MigratedDate}

	var updated models.Capture
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(query, args, updated, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

// Delete removes a capture by id.
func (r *CaptureWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM captures WHERE id = $1`
	args := []any{id}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// CaptureReadRepository handles capture read operations
type CaptureReadRepository struct {
	db *sqlx.DB
}

func NewCaptureReadRepository(db *sqlx.DB) *CaptureReadRepository {
	return &CaptureReadRepository{db: db}
}

// GetByID returns the capture with the given id, or nil when it does not exist.
func (r *CaptureReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Capture, error) {
	query := `SELECT ` + captureColumns + ` FROM captures WHERE id = $1`

	var capture models.Capture
	err := r.db.GetContext(ctx, &capture, query, id)
	logQuery(query, []any{id}, capture, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &capture, nil
}

// ListByUser returns captures of a user, newest first.
// A non-nil migrated restricts the result to migrated (true) or unmigrated (false) captures.
func (r *CaptureReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, migrated *bool) ([]models.Capture, error) {
	query := `
		SELECT ` + captureColumns + `
		FROM captures
		WHERE user_id = $1
		  AND ($2::BOOLEAN IS NULL OR (migrated_date IS NOT NULL) = $2)
		ORDER BY created_at DESC
	`

	captures := []models.Capture{}
	err := r.db.SelectContext(ctx, &captures, query, userID, migrated)
	logQuery(query, []any{userID, migrated}, len(captures), err)

	if err != nil {
		return nil, err
	}
	return captures, nil
}
