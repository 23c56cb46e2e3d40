package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// AppendExercise добавляет запись в конец журнала пользователя и возвращает его username.
// Пользователь блокируется на время транзакции, запись вставляется целиком или не вставляется вовсе.
func (s *Storage) AppendExercise(ctx context.Context, userID string, e models.Exercise) (string, error) {
	const op = "storage.postgresql.AppendExercise"

	if _, err := uuid.Parse(userID); err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", &models.StorageError{Op: op, Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var username string
	err = tx.QueryRowContext(ctx, `SELECT username FROM users WHERE uid = $1 FOR SHARE`, userID).Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	if err != nil {
		return "", &models.StorageError{Op: op, Err: err}
	}

	query := `INSERT INTO exercises (user_uid, description, duration, date_ms)
			  VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, query, userID, e.Description, e.Duration, e.Date.UnixMilli()); err != nil {
		return "", &models.StorageError{Op: op, Err: err}
	}

	if err = tx.Commit(); err != nil {
		return "", &models.StorageError{Op: op, Err: err}
	}
	return username, nil
}

// GetLog возвращает пользователя и записи его журнала с датой в диапазоне фильтра.
// Записи идут в порядке добавления.
func (s *Storage) GetLog(ctx context.Context, userID string, filter models.LogFilter) (*models.UserLog, error) {
	const op = "storage.postgresql.GetLog"

	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	result := &models.UserLog{ID: userID, Log: []models.Exercise{}}
	err := s.DB.QueryRowContext(ctx, `SELECT username FROM users WHERE uid = $1`, userID).Scan(&result.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	if err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}

	query := `SELECT description, duration, date_ms
			  FROM exercises
			  WHERE user_uid = $1
			    AND ($2::bigint IS NULL OR date_ms >= $2)
			    AND ($3::bigint IS NULL OR date_ms <= $3)
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userID, nullMillis(filter.From), nullMillis(filter.To))
	if err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			e  models.Exercise
			ms int64
		)
		if err = rows.Scan(&e.Description, &e.Duration, &ms); err != nil {
			return nil, &models.StorageError{Op: op, Err: err}
		}
		e.Date = time.UnixMilli(ms).UTC()
		result.Log = append(result.Log, e)
	}
	if err = rows.Err(); err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}
	return result, nil
}
